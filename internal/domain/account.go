package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Account is the persisted record for one registered player. The Player
// snapshot is embedded whole and read-modify-written as a unit; there is a
// single active session per account, so no partial updates are needed.
type Account struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username     string             `bson:"username" json:"username"` // unique
	PasswordHash string             `bson:"passwordHash" json:"-"`
	Player       Player             `bson:"player" json:"player"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}
