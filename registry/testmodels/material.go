package testmodels

import (
	"time"

	"github.com/go-openapi/strfmt"
)

// Material is a registrable entry definition shared by tests across
// the module.
type Material struct {
	rawID int

	// Timestamp when the material definition was created.
	// Required: true
	// Format: date-time
	CreatedAt *strfmt.DateTime `json:"CreatedAt"`

	// A description of the material.
	Description *string `json:"Description,omitempty"`

	// Hardness on the arena scale.
	Hardness float64 `json:"Hardness,omitempty"`

	// Display name of the material.
	// Required: true
	Name *string `json:"Name"`

	// Timestamp when the material definition was last updated.
	// Format: date-time
	UpdatedAt *strfmt.DateTime `json:"UpdatedAt,omitempty"`
}

// NewMaterial returns a material with the required fields populated and
// no raw id assigned yet.
func NewMaterial(name string) *Material {
	now := strfmt.DateTime(time.Now().UTC())
	return &Material{
		rawID:     -1,
		CreatedAt: &now,
		Name:      &name,
	}
}

// AcceptRawID stores the raw id assigned when the owning registry is
// frozen.
func (m *Material) AcceptRawID(id int) {
	m.rawID = id
}

// RawID returns the raw id accepted at freeze time.
func (m *Material) RawID() int {
	return m.rawID
}
