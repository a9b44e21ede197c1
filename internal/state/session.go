package state

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"

	"github.com/vovakirdan/ski-runner/internal/config"
)

// Shop errors returned by BuyItem.
var (
	ErrNotInShop      = errors.New("state: shop is closed")
	ErrUnknownItem    = errors.New("state: item is not on offer")
	ErrNotEnoughScore = errors.New("state: not enough score")
)

// Session is the in-memory Store for one player.
type Session struct {
	cfg        config.SkiConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand

	status    Status
	score     int
	cash      int // pickups collected
	lives     int
	maxLives  int
	collected []int
	laneCount int
	distance  int
	ticks     int

	hasDoubleJump  bool
	hasImmortality bool
	clock          float64 // run clock in seconds
	immortalUntil  float64

	offers []config.ShopItem
}

var _ Store = (*Session)(nil)

// NewSession creates a session in MENU status.
func NewSession(cfg config.SkiConfig, seed int64) *Session {
	s := &Session{
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		rng:        rand.New(rand.NewSource(seed)),
	}
	s.resetRun()
	s.status = StatusMenu
	return s
}

// resetRun clears all per-run values. Upgrades do not survive a run.
func (s *Session) resetRun() {
	s.score = 0
	s.cash = 0
	s.lives = s.cfg.Progression.Lives
	s.maxLives = s.cfg.Progression.Lives
	s.collected = s.collected[:0]
	s.laneCount = s.cfg.World.StartLanes
	s.distance = 0
	s.ticks = 0
	s.hasDoubleJump = false
	s.hasImmortality = false
	s.clock = 0
	s.immortalUntil = 0
	s.offers = nil
}

// StartGame begins a fresh run from any status.
func (s *Session) StartGame() {
	s.resetRun()
	s.status = StatusPlaying
}

// ReturnToMenu abandons the current run.
func (s *Session) ReturnToMenu() {
	s.resetRun()
	s.status = StatusMenu
}

// Advance moves the run clock forward. Called once per tick with the clamped delta.
func (s *Session) Advance(dt float64) {
	if dt <= 0 {
		return
	}
	s.clock += dt
	if s.status == StatusPlaying {
		s.ticks++
	}
}

// Clock returns the run clock in seconds.
func (s *Session) Clock() float64 {
	return s.clock
}

// AddScore adds collected points.
func (s *Session) AddScore(amount int) {
	if s.status != StatusPlaying {
		return
	}
	s.score += amount
	s.cash++
}

// TakeDamage removes one life and ends the run at zero.
func (s *Session) TakeDamage() {
	if s.status != StatusPlaying {
		return
	}
	s.lives--
	if s.lives <= 0 {
		s.lives = 0
		s.status = StatusGameOver
	}
}

// CollectLetter records a target index. Duplicates and out-of-range indexes are ignored.
func (s *Session) CollectLetter(index int) {
	if s.status != StatusPlaying {
		return
	}
	if index < 0 || index >= len(s.cfg.Targets) || s.hasLetter(index) {
		return
	}
	s.collected = append(s.collected, index)
	sort.Ints(s.collected)

	n := len(s.collected)
	if every := s.cfg.Progression.LanesEveryLetters; every > 0 && n%every == 0 {
		s.laneCount = min(s.laneCount+2, s.cfg.World.MaxLanes)
	}

	if n == len(s.cfg.Targets) {
		s.status = StatusVictory
		return
	}
	if every := s.cfg.Progression.ShopEveryLetters; every > 0 && n%every == 0 {
		s.OpenShop()
	}
}

func (s *Session) hasLetter(index int) bool {
	for _, i := range s.collected {
		if i == index {
			return true
		}
	}
	return false
}

// SetDistance publishes the distance traveled.
func (s *Session) SetDistance(value int) {
	if value < 0 {
		value = 0
	}
	s.distance = value
}

// Speed returns the current forward speed: difficulty progression over the
// base speed plus a fixed step for every collected year.
func (s *Session) Speed() float64 {
	base := s.cfg.World.BaseSpeed
	speed := s.difficulty.Speed(base, float64(s.distance), s.ticks)
	return speed + base*s.cfg.Progression.LetterSpeedStep*float64(len(s.collected))
}

// LaneCount returns the number of lanes.
func (s *Session) LaneCount() int { return s.laneCount }

// CollectedLetters returns a sorted copy of the collected indexes.
func (s *Session) CollectedLetters() []int {
	out := make([]int, len(s.collected))
	copy(out, s.collected)
	return out
}

// Status returns the run status.
func (s *Session) Status() Status { return s.status }

// HasDoubleJump reports whether the double jump upgrade is owned.
func (s *Session) HasDoubleJump() bool { return s.hasDoubleJump }

// HasImmortality reports whether the immortality skill is unlocked.
func (s *Session) HasImmortality() bool { return s.hasImmortality }

// IsImmortalityActive reports whether the immortality skill is running.
func (s *Session) IsImmortalityActive() bool {
	return s.hasImmortality && s.clock < s.immortalUntil
}

// ImmortalityRemaining returns the seconds left on the skill.
func (s *Session) ImmortalityRemaining() float64 {
	if !s.IsImmortalityActive() {
		return 0
	}
	return s.immortalUntil - s.clock
}

// ActivateImmortality starts the skill. Returns false when it is locked,
// already running, or the run is not being played.
func (s *Session) ActivateImmortality() bool {
	if s.status != StatusPlaying || !s.hasImmortality || s.IsImmortalityActive() {
		return false
	}
	s.immortalUntil = s.clock + s.cfg.Progression.ImmortalitySeconds
	return true
}

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// CashCollected returns the number of pickups collected.
func (s *Session) CashCollected() int { return s.cash }

// Lives returns remaining lives.
func (s *Session) Lives() int { return s.lives }

// MaxLives returns the life capacity.
func (s *Session) MaxLives() int { return s.maxLives }

// Distance returns the last published distance.
func (s *Session) Distance() int { return s.distance }

// Targets returns the ordered target sequence.
func (s *Session) Targets() []config.YearTarget { return s.cfg.Targets }

// OpenShop pauses the run on the shop screen and draws fresh offers.
func (s *Session) OpenShop() {
	if s.status != StatusPlaying {
		return
	}
	pool := make([]config.ShopItem, 0, len(s.cfg.Progression.Items))
	for _, item := range s.cfg.Progression.Items {
		if item.ID == config.ItemDoubleJump && s.hasDoubleJump {
			continue
		}
		if item.ID == config.ItemImmortal && s.hasImmortality {
			continue
		}
		pool = append(pool, item)
	}
	s.rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	if n := s.cfg.Progression.ShopOffers; n > 0 && len(pool) > n {
		pool = pool[:n]
	}
	s.offers = pool
	s.status = StatusShop
}

// CloseShop resumes the run.
func (s *Session) CloseShop() {
	if s.status != StatusShop {
		return
	}
	s.offers = nil
	s.status = StatusPlaying
}

// Offers returns the items currently on sale.
func (s *Session) Offers() []config.ShopItem {
	return s.offers
}

// BuyItem purchases an offered item and applies its effect.
// One-time items leave the offer list once bought.
func (s *Session) BuyItem(id string) error {
	if s.status != StatusShop {
		return ErrNotInShop
	}
	idx := -1
	for i, item := range s.offers {
		if item.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrUnknownItem, id)
	}
	item := s.offers[idx]
	if s.score < item.Cost {
		return fmt.Errorf("%w: %s costs %d, have %d", ErrNotEnoughScore, item.Name, item.Cost, s.score)
	}

	s.score -= item.Cost
	switch item.ID {
	case config.ItemDoubleJump:
		s.hasDoubleJump = true
	case config.ItemMaxLife:
		s.maxLives++
		s.lives++
	case config.ItemHeal:
		s.lives = min(s.lives+1, s.maxLives)
	case config.ItemImmortal:
		s.hasImmortality = true
	}

	if item.OneTime {
		s.offers = append(s.offers[:idx:idx], s.offers[idx+1:]...)
	}
	return nil
}
