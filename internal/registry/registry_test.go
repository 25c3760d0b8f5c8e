package registry

import (
	"strings"
	"testing"

	"github.com/vovakirdan/office-chase/internal/core"
)

type stubGame struct {
	id   string
	runs int
}

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return strings.ToUpper(g.id) }
func (g *stubGame) RunID() string                        { return g.id + "-" + string(rune('0'+g.runs)) }
func (g *stubGame) Reset(core.RuntimeConfig)             { g.runs++ }
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }

func stubFactory(id string) Factory {
	return func() Game { return &stubGame{id: id} }
}

func TestRegisterAndCreate(t *testing.T) {
	Register("stub_b", stubFactory("stub_b"))
	Register("stub_a", stubFactory("stub_a"))

	if !Exists("stub_a") || Exists("stub_missing") {
		t.Error("Exists() disagrees with registrations")
	}

	g, err := Create("stub_a")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "stub_a" {
		t.Errorf("ID() = %q", g.ID())
	}

	if _, err := Create("stub_missing"); err == nil {
		t.Error("Create() of an unknown game should fail")
	}

	var ids []string
	for _, info := range List() {
		if strings.HasPrefix(info.ID, "stub_") {
			ids = append(ids, info.ID+":"+info.Title)
		}
	}
	if got := strings.Join(ids, ","); got != "stub_a:STUB_A,stub_b:STUB_B" {
		t.Errorf("List() = %s, want sorted stubs with titles", got)
	}
}

func TestCreateReturnsFreshGames(t *testing.T) {
	Register("stub_fresh", stubFactory("stub_fresh"))

	a, _ := Create("stub_fresh")
	b, _ := Create("stub_fresh")
	a.Reset(core.RuntimeConfig{})

	if a.RunID() == b.RunID() {
		t.Error("sessions should not share a game instance")
	}
}

func TestRegisterPanics(t *testing.T) {
	Register("stub_dup", stubFactory("stub_dup"))

	tests := []struct {
		name string
		id   string
		f    Factory
	}{
		{"duplicate", "stub_dup", stubFactory("stub_dup")},
		{"empty id", "", stubFactory("")},
		{"mismatched id", "stub_other", stubFactory("stub_wrong")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("Register(%q) should panic", tt.id)
				}
			}()
			Register(tt.id, tt.f)
		})
	}

	if Exists("stub_other") {
		t.Error("a rejected registration should not be listed")
	}
}
