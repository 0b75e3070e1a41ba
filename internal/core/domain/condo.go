package domain

import "time"

// Condominium holds the property profile filled in by the setup wizard.
// SetupComplete flips once the owner finishes the wizard; the dashboard uses
// it to decide whether to keep steering new accounts into /dashboard/setup.
type Condominium struct {
	ID            string    `json:"id" bson:"_id,omitempty"`
	Name          string    `json:"name" bson:"name"`
	Address       string    `json:"address" bson:"address"`
	City          string    `json:"city" bson:"city"`
	Units         int       `json:"units" bson:"units"`
	SetupComplete bool      `json:"setup_complete" bson:"setup_complete"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" bson:"updated_at"`
}
