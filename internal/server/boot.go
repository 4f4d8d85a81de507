package server

import (
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/ziadkadry99/synthesis/internal/boot"
	"github.com/ziadkadry99/synthesis/internal/scheduler"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

const writeWait = 5 * time.Second

// frameMessage is one boot frame as sent to the browser.
type frameMessage struct {
	Session string `json:"session"`
	boot.Snapshot
}

// session is one websocket connection playing the boot sequence. Its timers
// live on their own scope so that ending the session cancels every pending
// callback.
type session struct {
	id     string
	seq    *boot.Sequence
	scope  *scheduler.Scope
	frames chan boot.Snapshot
	quit   chan struct{}

	once    sync.Once
	outcome string
}

// stop ends the session. Only the first outcome is kept.
func (sess *session) stop(outcome string) {
	sess.once.Do(func() {
		sess.outcome = outcome
		sess.seq.Dispose()
		sess.scope.Close()
		close(sess.quit)
	})
}

func (s *Server) handleBoot(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("boot: websocket upgrade", "error", err)
		return
	}
	defer conn.Close()

	sess := &session{
		id:     uuid.NewString(),
		scope:  scheduler.NewScope(s.sched),
		frames: make(chan boot.Snapshot, 16),
		quit:   make(chan struct{}),
	}
	sess.seq = boot.New(s.Content().BootScript, sess.scope,
		boot.WithTiming(s.cfg.Timing),
		boot.OnFrame(func(snap boot.Snapshot) {
			select {
			case sess.frames <- snap:
			case <-sess.quit:
			}
		}),
	)

	s.mu.Lock()
	if s.closing {
		s.mu.Unlock()
		conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "shutting down"), time.Now().Add(writeWait))
		return
	}
	s.sessions[sess] = struct{}{}
	s.mu.Unlock()

	log := s.log.With("session", sess.id)
	log.Debug("boot session started", "remote", r.RemoteAddr)
	start := time.Now()

	defer func() {
		sess.stop(outcomeDisconnected)
		s.mu.Lock()
		delete(s.sessions, sess)
		s.mu.Unlock()
		s.metrics.bootSessions.WithLabelValues(sess.outcome).Inc()
		s.metrics.bootDuration.Observe(time.Since(start).Seconds())
		log.Debug("boot session ended", "outcome", sess.outcome, "duration", time.Since(start))
	}()

	// The browser never sends anything; reading only notices the close.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					log.Debug("boot: websocket read", "error", err)
				}
				sess.stop(outcomeDisconnected)
				return
			}
		}
	}()

	sess.seq.Start()

	for {
		select {
		case snap := <-sess.frames:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(frameMessage{Session: sess.id, Snapshot: snap}); err != nil {
				log.Debug("boot: websocket write", "error", err)
				sess.stop(outcomeDisconnected)
				return
			}
			if snap.Complete {
				sess.stop(outcomeCompleted)
				conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, "complete"), time.Now().Add(writeWait))
				return
			}
		case <-sess.quit:
			if sess.outcome == outcomeShutdown {
				conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, "shutting down"), time.Now().Add(writeWait))
			}
			return
		}
	}
}
