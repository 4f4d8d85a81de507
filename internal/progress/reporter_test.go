package progress

import (
	"bytes"
	"fmt"
	"strings"
	"sync"
	"testing"
)

func TestCIReporterCountsConcurrentUpdates(t *testing.T) {
	var buf bytes.Buffer
	r := &CIReporter{Out: &buf}
	r.Start(20, "Writing site")

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			r.Update(fmt.Sprintf("page %d", i))
		}(i)
	}
	wg.Wait()
	r.Finish()

	out := buf.String()
	if !strings.HasPrefix(out, "Writing site: 20 files\n") {
		t.Errorf("unexpected header in %q", out)
	}
	if !strings.Contains(out, "[20/20]") {
		t.Errorf("missing final count in %q", out)
	}
	if !strings.HasSuffix(out, "done: 20/20\n") {
		t.Errorf("unexpected footer in %q", out)
	}
}

func TestNewReporterInCI(t *testing.T) {
	t.Setenv("CI", "true")
	if _, ok := NewReporter().(*CIReporter); !ok {
		t.Error("expected CIReporter when CI is set")
	}
}

func TestNewReporterInTerminal(t *testing.T) {
	t.Setenv("CI", "")
	t.Setenv("GITHUB_ACTIONS", "")
	if _, ok := NewReporter().(*TerminalReporter); !ok {
		t.Error("expected TerminalReporter outside CI")
	}
}

func TestNop(t *testing.T) {
	var r Reporter = Nop{}
	r.Start(1, "x")
	r.Update("y")
	r.Finish()
}
