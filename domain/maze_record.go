// Package domain holds the persistent models of the maze engine.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// MazeRecord is the stored form of a generated maze. The maze itself travels
// as its binary encoding; width and height are denormalized for listing
// without decoding.
type MazeRecord struct {
	ID        uuid.UUID `bson:"_id" json:"id"`
	Width     int       `bson:"width" json:"width"`
	Height    int       `bson:"height" json:"height"`
	Algorithm string    `bson:"algorithm" json:"algorithm"`
	Encoded   []byte    `bson:"encoded" json:"encoded"`
	CreatedAt time.Time `bson:"createdAt" json:"created_at"`
}
