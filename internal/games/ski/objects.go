package ski

import (
	"io"

	"github.com/google/uuid"

	"github.com/vovakirdan/ski-runner/internal/core"
)

// ObjectType classifies world objects.
type ObjectType int

const (
	ObjectObstacle ObjectType = iota
	ObjectCash
	ObjectYearToken
	ObjectRamp
)

func (t ObjectType) String() string {
	switch t {
	case ObjectObstacle:
		return "OBSTACLE"
	case ObjectCash:
		return "CASH"
	case ObjectYearToken:
		return "YEAR_TOKEN"
	case ObjectRamp:
		return "RAMP"
	default:
		return "UNKNOWN"
	}
}

// ObjectID identifies an object for its whole lifetime.
type ObjectID uuid.UUID

func (id ObjectID) String() string {
	return uuid.UUID(id).String()
}

// newObjectID draws a version-4 UUID from r so seeded runs produce the same IDs.
func newObjectID(r io.Reader) ObjectID {
	id, err := uuid.NewRandomFromReader(r)
	if err != nil {
		return ObjectID(uuid.New())
	}
	return ObjectID(id)
}

// GameObject is an entity on the track.
// Z grows toward the player; negative Z is ahead.
type GameObject struct {
	ID       ObjectID
	Type     ObjectType
	Position core.Vec3
	Active   bool

	Kind        string // obstacle look: tree, snowman, rock, cone
	Points      int    // cash value
	TargetIndex int    // year token index into the target list
	Value       string // year token label
	Color       string // display color, hex
}
