package ski

import (
	"math"
	"strings"
	"testing"

	"github.com/vovakirdan/ski-runner/internal/config"
	"github.com/vovakirdan/ski-runner/internal/core"
	"github.com/vovakirdan/ski-runner/internal/registry"
	"github.com/vovakirdan/ski-runner/internal/state"
)

func newTestGame(seed int64) *Game {
	g := NewWithConfig(config.DefaultSkiConfig())
	rt := core.DefaultConfig()
	rt.Seed = seed
	g.Reset(rt)
	return g
}

func press(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	in.Delta = 1.0 / 60
	return in
}

func TestRegistered(t *testing.T) {
	if !registry.Exists(GameID) {
		t.Fatal("ski game should register itself")
	}
	g, err := registry.Create(GameID)
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.Title() != "Ski Runner" {
		t.Errorf("Title() = %q", g.Title())
	}
}

func TestMenuStartsRun(t *testing.T) {
	g := newTestGame(1)
	if g.Session().Status() != state.StatusMenu {
		t.Fatalf("expected MENU after Reset, got %v", g.Session().Status())
	}

	g.Step(press())
	if len(g.Engine().Objects()) != 0 {
		t.Error("nothing spawns in the menu")
	}

	g.Step(press(core.ActionConfirm))
	if g.Session().Status() != state.StatusPlaying {
		t.Fatalf("expected PLAYING, got %v", g.Session().Status())
	}
	if len(g.Engine().Objects()) == 0 {
		t.Error("first playing tick should spawn a batch")
	}
	if _, ok := g.Player().WorldPosition(); !ok {
		t.Error("player should be placed once the run starts")
	}
}

func TestJumpCueAndDrain(t *testing.T) {
	g := newTestGame(1)
	g.Step(press(core.ActionConfirm))

	res := g.Step(press(core.ActionJump))
	if len(res.Cues) == 0 || res.Cues[0] != string(CueJump) {
		t.Errorf("cues = %v, expected jump", res.Cues)
	}

	events := g.DrainEvents()
	found := false
	for _, e := range events {
		if e == (SoundEvent{Cue: CueJump}) {
			found = true
		}
	}
	if !found {
		t.Errorf("drained events %v missing jump cue", events)
	}
	if len(g.DrainEvents()) != 0 {
		t.Error("DrainEvents should clear the queue")
	}
}

func TestPauseFreezesWorld(t *testing.T) {
	g := newTestGame(1)
	g.Step(press(core.ActionConfirm))
	g.Step(press(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("expected paused state")
	}

	before := g.Engine().Distance()
	for i := 0; i < 10; i++ {
		g.Step(press())
	}
	if g.Engine().Distance() != before {
		t.Error("world moved while paused")
	}

	g.Step(press(core.ActionPause))
	g.Step(press())
	if g.Engine().Distance() == before {
		t.Error("world should move after unpausing")
	}
}

func TestDeterministicRuns(t *testing.T) {
	a := newTestGame(7)
	b := newTestGame(7)
	a.Step(press(core.ActionConfirm))
	b.Step(press(core.ActionConfirm))

	for i := 0; i < 600; i++ {
		a.Step(press())
		b.Step(press())
	}

	oa, ob := a.Engine().Objects(), b.Engine().Objects()
	if len(oa) != len(ob) {
		t.Fatalf("object counts differ: %d vs %d", len(oa), len(ob))
	}
	for i := range oa {
		if oa[i].ID != ob[i].ID || oa[i].Position != ob[i].Position || oa[i].Active != ob[i].Active {
			t.Fatalf("object %d differs between identical seeds", i)
		}
	}
	if a.State() != b.State() {
		t.Errorf("states differ: %+v vs %+v", a.State(), b.State())
	}
}

func TestRestartCountsRuns(t *testing.T) {
	g := newTestGame(5)
	if st := g.State(); st.Run != 0 || st.InRun {
		t.Fatalf("menu state = %+v, expected no run", st)
	}

	g.Step(press(core.ActionConfirm))
	for range 30 {
		g.Step(press())
	}
	if st := g.State(); st.Run != 1 || !st.InRun {
		t.Fatalf("state = %+v, expected run 1 in progress", st)
	}

	restart := press(core.ActionRestart)
	restart.Delta = 0.05
	st := g.Step(restart).State
	if st.Run != 2 || !st.InRun {
		t.Errorf("restart while playing should start run 2, got %+v", st)
	}

	g.Step(press(core.ActionBack))
	if st := g.State(); st.InRun || st.Run != 2 {
		t.Errorf("back to menu should leave the run, got %+v", st)
	}
}

// TestRunEndsWithDistance rides straight down the middle lane until the run ends.
func TestRunEndsWithDistance(t *testing.T) {
	g := newTestGame(3)
	g.Step(press(core.ActionConfirm))

	for i := 0; i < 60000 && !g.State().GameOver; i++ {
		if g.Session().Status() == state.StatusShop {
			g.Step(press(core.ActionConfirm))
			continue
		}
		g.Step(press())
	}

	st := g.State()
	if !st.GameOver {
		t.Fatal("run should end within the tick budget")
	}
	if st.Distance <= 0 || st.Distance != int(math.Floor(g.Engine().Distance())) {
		t.Errorf("distance = %d, engine traveled %v", st.Distance, g.Engine().Distance())
	}

	g.Step(press(core.ActionRestart))
	if g.Session().Status() != state.StatusPlaying || g.State().Score != 0 {
		t.Error("restart should begin a fresh run")
	}
	if g.Engine().Distance() > 1 {
		t.Errorf("distance after restart = %v", g.Engine().Distance())
	}
}

func TestShopPurchase(t *testing.T) {
	g := newTestGame(1)
	g.Step(press(core.ActionConfirm))
	s := g.Session()
	s.AddScore(100)
	for s.Score() < 10000 {
		s.AddScore(1000)
	}
	s.CollectLetter(0)
	s.CollectLetter(1)
	if s.Status() != state.StatusShop {
		t.Fatalf("expected SHOP, got %v", s.Status())
	}

	offer := s.Offers()[0]
	g.Step(press(core.ActionBuy1))
	if !strings.Contains(g.notice, offer.Name) {
		t.Errorf("notice = %q, expected purchase of %s", g.notice, offer.Name)
	}

	g.Step(press(core.ActionConfirm))
	if s.Status() != state.StatusPlaying {
		t.Errorf("ENTER should close the shop, got %v", s.Status())
	}
}

func TestSkillActivation(t *testing.T) {
	cfg := config.DefaultSkiConfig()
	cfg.Progression.ShopOffers = len(cfg.Progression.Items)
	g := NewWithConfig(cfg)
	g.Reset(core.DefaultConfig())
	g.Step(press(core.ActionConfirm))

	s := g.Session()
	s.AddScore(3000)
	s.OpenShop()
	for i, item := range s.Offers() {
		if item.ID == config.ItemImmortal {
			g.buy(i)
		}
	}
	g.Step(press(core.ActionConfirm))
	if !s.HasImmortality() {
		t.Fatalf("skill not unlocked: %q", g.notice)
	}

	g.Step(press(core.ActionSkill))
	if !s.IsImmortalityActive() {
		t.Error("E should activate the skill")
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(1)
	scr := core.NewScreen(80, 24)

	g.Render(scr)
	if !strings.Contains(scr.String(), "SKI RUNNER") {
		t.Error("menu title missing")
	}

	g.Step(press(core.ActionConfirm))
	for i := 0; i < 300; i++ {
		g.Step(press())
	}
	g.Render(scr)
	out := scr.String()
	if !strings.Contains(out, "Score:") || !strings.Contains(out, "1995") {
		t.Errorf("HUD missing from render:\n%s", out)
	}
}
