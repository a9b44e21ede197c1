package registry

import (
	"testing"

	"github.com/vovakirdan/ski-runner/internal/core"
)

type stubGame struct{ id string }

func (g stubGame) ID() string { return g.id }
func (g stubGame) Title() string { return "Stub " + g.id }
func (g stubGame) Reset(core.RuntimeConfig) {}
func (g stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g stubGame) Render(*core.Screen) {}
func (g stubGame) State() core.GameState { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub-b", func() Game { return stubGame{id: "stub-b"} })
	Register("stub-a", func() Game { return stubGame{id: "stub-a"} })

	if !Exists("stub-a") {
		t.Fatal("stub-a should be registered")
	}

	g, err := Create("stub-b")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "stub-b" {
		t.Errorf("ID() = %q", g.ID())
	}

	list := List()
	if len(list) < 2 || list[0].ID != "stub-a" || list[0].Title != "Stub stub-a" {
		t.Errorf("List() = %+v, expected sorted entries with titles", list)
	}

	if _, err := Create("missing"); err == nil {
		t.Error("Create() of unknown id should fail")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub-dup", func() Game { return stubGame{id: "stub-dup"} })
	defer func() {
		if recover() == nil {
			t.Error("duplicate registration should panic")
		}
	}()
	Register("stub-dup", func() Game { return stubGame{id: "stub-dup"} })
}
