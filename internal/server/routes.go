package server

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ziadkadry99/synthesis/internal/accordion"
	"github.com/ziadkadry99/synthesis/internal/site"
)

// registerRoutes mounts the pages, assets and JSON API onto r.
func (s *Server) registerRoutes(r chi.Router) {
	r.Get("/", s.handleIndex)
	r.Get("/assets/style.css", s.handleStylesheet)
	r.Get("/assets/script.js", s.handleScript)
	r.Get("/api/content", s.handleContent)
	r.Get("/api/faq", s.handleFAQ)
	if s.cfg.AssetsDir != "" {
		r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir(s.cfg.AssetsDir))))
	}
	r.Get("/{skin}", s.handlePage)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	opts := site.PageOptions{Assets: "/assets/", Home: "/", Live: true}
	if err := s.renderer.Index(&buf, s.Content(), opts, func(id string) string { return "/" + id }); err != nil {
		s.renderError(w, r, err)
		return
	}
	writeHTML(w, buf.Bytes())
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "skin")
	skin, ok := site.Get(id)
	if !ok {
		skin = site.Lookup(s.cfg.DefaultSkin)
	}

	q := r.URL.Query()
	state := accordion.ParseQuery(q.Get(accordion.QueryParam))
	opts := site.LiveOptions(s.cfg.BaseURL, skin.ID)
	// A question link was followed, so the visitor has already been through
	// the boot screen.
	_, toggled := q[accordion.QueryParam]
	opts.SkipBoot = toggled || q.Get("boot") == "skip"

	c := s.Content()
	var buf bytes.Buffer
	if err := s.renderer.Page(&buf, skin, c, state.Clamp(len(c.FAQ.Items)), opts); err != nil {
		s.renderError(w, r, err)
		return
	}

	s.metrics.pageViews.WithLabelValues(skin.ID).Inc()
	if toggled {
		s.metrics.faqToggles.WithLabelValues(skin.ID).Inc()
	}
	writeHTML(w, buf.Bytes())
}

func (s *Server) handleStylesheet(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := s.renderer.Stylesheet(&buf); err != nil {
		s.renderError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Write(buf.Bytes())
}

func (s *Server) handleScript(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := s.renderer.Script(&buf); err != nil {
		s.renderError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/javascript; charset=utf-8")
	w.Write(buf.Bytes())
}

func (s *Server) handleContent(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.Content())
}

// faqItem is one entry of the /api/faq response.
type faqItem struct {
	Index    int    `json:"index"`
	Question string `json:"q"`
	Answer   string `json:"a"`
	Expanded bool   `json:"expanded"`
	Toggle   string `json:"toggle"`
}

// faqResponse is the accordion after applying ?open=.
type faqResponse struct {
	Title string    `json:"title"`
	Open  *int      `json:"open"`
	Items []faqItem `json:"items"`
}

// handleFAQ returns the accordion in the state named by ?open=. The client
// script calls it on every toggle, so it also feeds the toggle counter.
func (s *Server) handleFAQ(w http.ResponseWriter, r *http.Request) {
	c := s.Content()
	q := r.URL.Query()
	state := accordion.ParseQuery(q.Get("open")).Clamp(len(c.FAQ.Items))

	resp := faqResponse{Title: c.FAQ.Title}
	if i, ok := state.Open(); ok {
		resp.Open = &i
	}
	for _, it := range accordion.Items(c.FAQ.Items, state) {
		resp.Items = append(resp.Items, faqItem{
			Index:    it.Index,
			Question: it.Entry.Question,
			Answer:   it.Entry.Answer,
			Expanded: it.Expanded,
			Toggle:   it.Next.Href(it.Index),
		})
	}

	if id := q.Get("skin"); id != "" {
		if skin, ok := site.Get(id); ok {
			s.metrics.faqToggles.WithLabelValues(skin.ID).Inc()
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) renderError(w http.ResponseWriter, r *http.Request, err error) {
	s.log.Error("render failed", "path", r.URL.Path, "error", err)
	http.Error(w, "internal error", http.StatusInternalServerError)
}

func writeHTML(w http.ResponseWriter, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
