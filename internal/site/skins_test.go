package site

import (
	"testing"

	"github.com/ziadkadry99/synthesis/internal/config"
)

func TestSkinsMatchConfig(t *testing.T) {
	got := Skins()
	if len(got) != len(config.Skins) {
		t.Fatalf("%d skins, config knows %d", len(got), len(config.Skins))
	}
	for i, s := range got {
		if s.ID != config.Skins[i] {
			t.Errorf("skin %d = %s, want %s", i, s.ID, config.Skins[i])
		}
		if s.Name == "" || s.Description == "" || s.Palette.Background == "" {
			t.Errorf("skin %s is incomplete", s.ID)
		}
	}
}

func TestOnlyTerminalGatesOnBoot(t *testing.T) {
	for _, s := range Skins() {
		if s.Features.BootGate != (s.ID == "v4") {
			t.Errorf("%s BootGate = %v", s.ID, s.Features.BootGate)
		}
	}
}

func TestLookupFallsBack(t *testing.T) {
	if s := Lookup("v6"); s.Name != "Brutalist" {
		t.Errorf("Lookup(v6) = %s", s.Name)
	}
	if s := Lookup("v99"); s.ID != DefaultSkin {
		t.Errorf("Lookup(v99) = %s, want %s", s.ID, DefaultSkin)
	}
	if _, ok := Get("v99"); ok {
		t.Error("Get(v99) should fail")
	}
}

func TestSkinsReturnsCopy(t *testing.T) {
	s := Skins()
	s[0].Name = "changed"
	if Skins()[0].Name == "changed" {
		t.Error("Skins() exposes the registry")
	}
}

func TestSectionsCoverPage(t *testing.T) {
	want := []string{"OVERVIEW", "WHAT_THIS_IS", "TRACKS", "REQUIREMENTS", "JUDGING", "PRIZE_POOL", "WHO_SHOULD_APPLY", "TIMELINE", "FAQ"}
	if len(Sections) != len(want) {
		t.Fatalf("%d sections", len(Sections))
	}
	for i, s := range Sections {
		if s.Label != want[i] {
			t.Errorf("section %d = %s, want %s", i, s.Label, want[i])
		}
	}
}

func TestOptions(t *testing.T) {
	s := StaticOptions("https://x.io/", "v2")
	if s.Canonical != "https://x.io/v2/" || s.BootURL != "../boot.json" || s.Live {
		t.Errorf("StaticOptions = %+v", s)
	}
	l := LiveOptions("", "v2")
	if l.Canonical != "" || l.Assets != "/assets/" || !l.Live {
		t.Errorf("LiveOptions = %+v", l)
	}
}
