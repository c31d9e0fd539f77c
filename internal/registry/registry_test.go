package registry

import (
	"testing"

	"github.com/vovakirdan/tui-connect4/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterCreate(t *testing.T) {
	Register("create-stub", func() Game { return &stubGame{id: "create-stub"} })

	if !Exists("create-stub") || Exists("missing") {
		t.Fatal("Exists reported the wrong registrations")
	}

	g, err := Create("create-stub")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "create-stub" {
		t.Errorf("Create returned %q", g.ID())
	}

	if _, err := Create("missing"); err == nil {
		t.Error("Create should fail for unknown IDs")
	}
}

func TestCreateReturnsFreshInstances(t *testing.T) {
	Register("fresh-stub", func() Game { return &stubGame{id: "fresh-stub"} })

	a, _ := Create("fresh-stub")
	b, _ := Create("fresh-stub")
	if a == b {
		t.Error("Create should return a new game on every call")
	}
}

func TestRegisterDoesNotBuildTheGame(t *testing.T) {
	calls := 0
	Register("lazy-stub", func() Game {
		calls++
		return &stubGame{id: "lazy-stub"}
	})
	if calls != 0 {
		t.Errorf("factory called %d times during Register", calls)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("dup-stub", func() Game { return &stubGame{id: "dup-stub"} })

	defer func() {
		if recover() == nil {
			t.Error("registering the same ID twice should panic")
		}
	}()
	Register("dup-stub", func() Game { return &stubGame{id: "dup-stub"} })
}
