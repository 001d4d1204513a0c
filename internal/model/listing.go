package model

import (
	"time"

	"github.com/google/uuid"
)

// Listing is the persisted car listing row.
type Listing struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	Brand        string    `json:"brand"`
	Model        string    `json:"model"`
	Year         int       `json:"year"`
	Mileage      int       `json:"mileage"`
	Color        string    `json:"color"`
	Price        int       `json:"price"`
	Currency     string    `json:"currency"`
	FuelType     string    `json:"fuel_type"`
	Transmission string    `json:"transmission"`
	Location     string    `json:"location"`
	Description  string    `json:"description"`
	BodyType     string    `json:"body_type"`
	EngineSize   string    `json:"engine_size"`
	Power        string    `json:"power"`
	Doors        string    `json:"doors"`
	Condition    string    `json:"condition"`
	Features     []string  `json:"features"`
	Warranty     bool      `json:"warranty"`
	Negotiable   bool      `json:"negotiable"`
	Exchange     bool      `json:"exchange"`
	ImageKeys    []string  `json:"image_keys"`
	CreatedAt    time.Time `json:"created_at"`
}

// Photo is a validated image payload attached to a draft,
// already past size/dimension checks.
type Photo struct {
	Filename    string
	ContentType string
	Data        []byte
}

// SetFieldRequest patches a single draft field.
type SetFieldRequest struct {
	Name  string `json:"name" validate:"required"`
	Value string `json:"value"`
}

// ToggleFeatureRequest flips membership of one feature.
type ToggleFeatureRequest struct {
	Feature string `json:"feature" validate:"required"`
}

// SetFlagRequest sets one of the boolean draft flags.
type SetFlagRequest struct {
	Name  string `json:"name" validate:"required,oneof=warranty negotiable exchange"`
	Value bool   `json:"value"`
}

// ToggleDropdownRequest flips the open state of a selector dropdown.
type ToggleDropdownRequest struct {
	Name string `json:"name" validate:"required,oneof=currency color"`
}
