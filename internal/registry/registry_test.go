package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/credit-balloons/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }

type describedGame struct{ stubGame }

func (g *describedGame) Blurb() string { return "described" }

func TestRegisterAndCreate(t *testing.T) {
	Register("zz_stub_b", func() Game { return &stubGame{id: "zz_stub_b"} })
	Register("zz_stub_a", func() Game { return &describedGame{stubGame{id: "zz_stub_a"}} })

	if !Exists("zz_stub_a") {
		t.Fatal("expected zz_stub_a to exist")
	}

	g, err := Create("zz_stub_b")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.ID() != "zz_stub_b" {
		t.Errorf("ID = %q, want zz_stub_b", g.ID())
	}

	idxA, idxB := -1, -1
	for i, info := range List() {
		switch info.ID {
		case "zz_stub_a":
			idxA = i
		case "zz_stub_b":
			idxB = i
		}
	}
	if idxA < 0 || idxB < 0 || idxA > idxB {
		t.Errorf("List not sorted or missing entries: a=%d b=%d", idxA, idxB)
	}
}

func TestLookup(t *testing.T) {
	Register("zz_stub_info", func() Game { return &describedGame{stubGame{id: "zz_stub_info"}} })
	Register("zz_stub_plain", func() Game { return &stubGame{id: "zz_stub_plain"} })

	tests := []struct {
		id        string
		wantOK    bool
		wantTitle string
		wantBlurb string
	}{
		{"zz_stub_info", true, "Stub zz_stub_info", "described"},
		{"zz_stub_plain", true, "Stub zz_stub_plain", ""},
		{"zz_missing", false, "", ""},
	}

	for _, tt := range tests {
		info, ok := Lookup(tt.id)
		if ok != tt.wantOK || info.Title != tt.wantTitle || info.Blurb != tt.wantBlurb {
			t.Errorf("Lookup(%q) = %+v, %v", tt.id, info, ok)
		}
	}
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("does-not-exist")
	if !errors.Is(err, ErrUnknownGame) {
		t.Fatalf("expected ErrUnknownGame, got %v", err)
	}
	if Exists("does-not-exist") {
		t.Error("Exists should be false")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz_stub_dup", func() Game { return &stubGame{id: "zz_stub_dup"} })
	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register("zz_stub_dup", func() Game { return &stubGame{id: "zz_stub_dup"} })
}
