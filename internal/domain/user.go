package domain

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DateLayout is the wire format for exercise dates (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// User is the primary persisted entity. Each user document embeds its own
// exercise log; exercises have no identity outside their owning user.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Username string             `bson:"username" json:"username"`

	// Exercises is append-only: entries are never removed or reordered,
	// so insertion order is the log order.
	Exercises []Exercise `bson:"exercises" json:"exercises"`
}
