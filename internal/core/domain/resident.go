package domain

import (
	"errors"
	"time"
)

// ResidentStatus represents the lifecycle state of a resident record.
type ResidentStatus string

const (
	ResidentActive   ResidentStatus = "active"
	ResidentInvited  ResidentStatus = "invited"
	ResidentInactive ResidentStatus = "inactive"
)

var ErrInvalidResidentStatus = errors.New("invalid resident status")

// Valid reports whether s is a known resident status.
func (s ResidentStatus) Valid() bool {
	switch s {
	case ResidentActive, ResidentInvited, ResidentInactive:
		return true
	}
	return false
}

// Resident is a person registered to a unit of the condominium.
type Resident struct {
	ID        string         `json:"id" bson:"_id,omitempty"`
	CondoID   string         `json:"condo_id" bson:"condo_id"`
	Name      string         `json:"name" bson:"name"`
	Surname   string         `json:"surname" bson:"surname"`
	Email     string         `json:"email" bson:"email"`
	Unit      string         `json:"unit" bson:"unit"`
	Phone     string         `json:"phone,omitempty" bson:"phone,omitempty"`
	Status    ResidentStatus `json:"status" bson:"status"`
	CreatedAt time.Time      `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time      `json:"updated_at" bson:"updated_at"`
}
