package state

import (
	"errors"
	"math"
	"testing"

	"github.com/vovakirdan/ski-runner/internal/config"
)

func newTestSession() *Session {
	cfg := config.DefaultSkiConfig()
	cfg.Difficulty.Enabled = false
	s := NewSession(cfg, 1)
	s.StartGame()
	return s
}

func TestSessionStartsInMenu(t *testing.T) {
	s := NewSession(config.DefaultSkiConfig(), 1)
	if s.Status() != StatusMenu {
		t.Fatalf("expected MENU, got %v", s.Status())
	}

	s.AddScore(100)
	s.TakeDamage()
	s.CollectLetter(0)
	if s.Score() != 0 || s.Lives() != 3 || len(s.CollectedLetters()) != 0 {
		t.Error("mutations outside PLAYING should be ignored")
	}

	s.StartGame()
	if s.Status() != StatusPlaying {
		t.Errorf("expected PLAYING after StartGame, got %v", s.Status())
	}
	if s.LaneCount() != 3 {
		t.Errorf("expected 3 lanes, got %d", s.LaneCount())
	}
}

func TestTakeDamageEndsRun(t *testing.T) {
	s := newTestSession()
	for i := 0; i < 3; i++ {
		s.TakeDamage()
	}
	if s.Status() != StatusGameOver {
		t.Fatalf("expected GAME_OVER, got %v", s.Status())
	}
	if s.Lives() != 0 {
		t.Errorf("lives = %d, expected 0", s.Lives())
	}
	if !s.Status().Ended() {
		t.Error("GAME_OVER should be an ended status")
	}

	s.TakeDamage()
	if s.Lives() != 0 {
		t.Error("damage after game over should be ignored")
	}
}

func TestCollectLetterProgression(t *testing.T) {
	s := newTestSession()

	s.CollectLetter(0)
	s.CollectLetter(0)
	s.CollectLetter(99)
	if got := s.CollectedLetters(); len(got) != 1 || got[0] != 0 {
		t.Fatalf("duplicates and out-of-range indexes should be ignored, got %v", got)
	}
	if got := s.Speed(); math.Abs(got-27.5) > 1e-9 {
		t.Errorf("speed after one year = %v, expected 27.5", got)
	}

	s.CollectLetter(1)
	if s.Status() != StatusShop {
		t.Fatalf("shop should open after second year, got %v", s.Status())
	}
	if len(s.Offers()) != 3 {
		t.Errorf("expected 3 offers, got %d", len(s.Offers()))
	}

	s.CollectLetter(2)
	if len(s.CollectedLetters()) != 2 {
		t.Error("collection while shopping should be ignored")
	}

	s.CloseShop()
	s.CollectLetter(2)
	if s.LaneCount() != 5 {
		t.Errorf("lanes after third year = %d, expected 5", s.LaneCount())
	}
}

func TestVictory(t *testing.T) {
	s := newTestSession()
	for i := range s.Targets() {
		if s.Status() == StatusShop {
			s.CloseShop()
		}
		s.CollectLetter(i)
	}
	if s.Status() != StatusVictory {
		t.Fatalf("expected VICTORY, got %v", s.Status())
	}
	if s.LaneCount() != 7 {
		t.Errorf("lanes = %d, expected max 7", s.LaneCount())
	}
}

func TestBuyItem(t *testing.T) {
	s := newTestSession()
	if err := s.BuyItem(config.ItemHeal); !errors.Is(err, ErrNotInShop) {
		t.Errorf("expected ErrNotInShop, got %v", err)
	}

	s.AddScore(5000)
	s.status = StatusShop
	s.offers = append([]config.ShopItem(nil), s.cfg.Progression.Items...)

	if err := s.BuyItem("BOGUS"); !errors.Is(err, ErrUnknownItem) {
		t.Errorf("expected ErrUnknownItem, got %v", err)
	}

	if err := s.BuyItem(config.ItemDoubleJump); err != nil {
		t.Fatalf("BuyItem(double jump) failed: %v", err)
	}
	if !s.HasDoubleJump() {
		t.Error("double jump should be owned")
	}
	if s.Score() != 4000 {
		t.Errorf("score = %d, expected 4000", s.Score())
	}
	for _, item := range s.Offers() {
		if item.ID == config.ItemDoubleJump {
			t.Error("one-time item should leave the offers")
		}
	}

	if err := s.BuyItem(config.ItemHeal); err != nil {
		t.Fatalf("BuyItem(heal) failed: %v", err)
	}
	if s.Lives() != 3 {
		t.Errorf("heal must not exceed max lives, got %d", s.Lives())
	}

	if err := s.BuyItem(config.ItemMaxLife); err != nil {
		t.Fatalf("BuyItem(max life) failed: %v", err)
	}
	if s.Lives() != 4 || s.MaxLives() != 4 {
		t.Errorf("lives = %d/%d, expected 4/4", s.Lives(), s.MaxLives())
	}

	if err := s.BuyItem(config.ItemImmortal); !errors.Is(err, ErrNotEnoughScore) {
		t.Errorf("expected ErrNotEnoughScore, got %v", err)
	}
}

func TestOffersSkipOwnedUpgrades(t *testing.T) {
	s := newTestSession()
	s.hasDoubleJump = true
	s.hasImmortality = true
	s.OpenShop()
	for _, item := range s.Offers() {
		if item.ID == config.ItemDoubleJump || item.ID == config.ItemImmortal {
			t.Errorf("owned upgrade %s should not be offered", item.ID)
		}
	}
	if len(s.Offers()) != 2 {
		t.Errorf("expected 2 offers, got %d", len(s.Offers()))
	}
}

func TestImmortality(t *testing.T) {
	s := newTestSession()
	if s.ActivateImmortality() {
		t.Fatal("skill should be locked before purchase")
	}

	s.hasImmortality = true
	if !s.ActivateImmortality() {
		t.Fatal("ActivateImmortality() should succeed once unlocked")
	}
	if s.ActivateImmortality() {
		t.Error("skill should not restart while active")
	}

	s.Advance(4.9)
	if !s.IsImmortalityActive() {
		t.Error("skill should still be active at 4.9s")
	}
	s.Advance(0.2)
	if s.IsImmortalityActive() {
		t.Error("skill should expire after 5s")
	}
	if s.ImmortalityRemaining() != 0 {
		t.Errorf("remaining = %v, expected 0", s.ImmortalityRemaining())
	}
	if !s.ActivateImmortality() {
		t.Error("skill should be reusable after expiry")
	}
}

func TestRestartClearsUpgrades(t *testing.T) {
	s := newTestSession()
	s.AddScore(300)
	s.hasDoubleJump = true
	s.SetDistance(500)
	s.CollectLetter(0)

	s.StartGame()
	if s.Score() != 0 || s.Distance() != 0 || s.HasDoubleJump() || len(s.CollectedLetters()) != 0 {
		t.Error("StartGame should reset the run")
	}
	if s.CashCollected() != 0 {
		t.Errorf("cash = %d, expected 0", s.CashCollected())
	}

	s.SetDistance(-4)
	if s.Distance() != 0 {
		t.Errorf("negative distance should clamp to 0, got %d", s.Distance())
	}

	s.ReturnToMenu()
	if s.Status() != StatusMenu {
		t.Errorf("expected MENU, got %v", s.Status())
	}
}
