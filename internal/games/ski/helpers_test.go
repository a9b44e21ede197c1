package ski

import (
	"github.com/vovakirdan/ski-runner/internal/core"
	"github.com/vovakirdan/ski-runner/internal/state"
)

// fakeStore is a scriptable state.Store.
type fakeStore struct {
	status     state.Status
	speed      float64
	lanes      int
	doubleJump bool
	immortal   bool

	score    int
	damage   int
	letters  []int
	distance int
}

func newFakeStore() *fakeStore {
	return &fakeStore{status: state.StatusPlaying, speed: 20, lanes: 3}
}

func (f *fakeStore) AddScore(amount int) { f.score += amount }
func (f *fakeStore) TakeDamage() { f.damage++ }
func (f *fakeStore) CollectLetter(index int) { f.letters = append(f.letters, index) }
func (f *fakeStore) SetDistance(value int) { f.distance = value }
func (f *fakeStore) Speed() float64 { return f.speed }
func (f *fakeStore) LaneCount() int { return f.lanes }
func (f *fakeStore) CollectedLetters() []int { return f.letters }
func (f *fakeStore) Status() state.Status { return f.status }
func (f *fakeStore) HasDoubleJump() bool { return f.doubleJump }
func (f *fakeStore) IsImmortalityActive() bool { return f.immortal }

// recorder collects events and optionally routes hits to a player.
type recorder struct {
	events []Event
	player *Player
}

func (r *recorder) Emit(e Event) {
	if r.player != nil {
		switch e.(type) {
		case PlayerHit:
			r.player.Hit()
		case RampContact:
			r.player.RampContact()
		}
	}
	r.events = append(r.events, e)
}

func (r *recorder) count(match func(Event) bool) int {
	n := 0
	for _, e := range r.events {
		if match(e) {
			n++
		}
	}
	return n
}

// fixedPos is a PositionSource at a constant position.
type fixedPos struct {
	pos core.Vec3
	ok  bool
}

func (p *fixedPos) WorldPosition() (core.Vec3, bool) { return p.pos, p.ok }
