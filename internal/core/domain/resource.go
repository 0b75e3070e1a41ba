package domain

import "time"

// Resource is a shared amenity of the condominium that residents can book
// (pool, gym, common room). Booking itself lives in a separate module; this
// aggregate only carries the catalogue entry.
type Resource struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	CondoID     string    `json:"condo_id" bson:"condo_id"`
	Name        string    `json:"name" bson:"name"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	Capacity    int       `json:"capacity" bson:"capacity"`
	OpensAt     string    `json:"opens_at" bson:"opens_at"`   // "08:00"
	ClosesAt    string    `json:"closes_at" bson:"closes_at"` // "22:00"
	Active      bool      `json:"active" bson:"active"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`
}
