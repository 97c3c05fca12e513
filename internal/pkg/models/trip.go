package models

import (
	"time"
)

// TripStatus represents the current status of a trip
type TripStatus string

const (
	TripStatusActive    TripStatus = "active"
	TripStatusCompleted TripStatus = "completed"
	TripStatusCancelled TripStatus = "cancelled"
)

// SpaceCategory is the ordinal carrying-capacity category of a trip or package
type SpaceCategory string

const (
	SpaceSmall  SpaceCategory = "small"
	SpaceMedium SpaceCategory = "medium"
	SpaceLarge  SpaceCategory = "large"
)

// Trip represents a traveler's posted journey with spare carrying capacity
type Trip struct {
	ID             string        `json:"id" db:"id"`
	TravelerID     string        `json:"traveler_id" db:"traveler_id"`
	Origin         string        `json:"origin" db:"origin"`
	Destination    string        `json:"destination" db:"destination"`
	DepartureDate  time.Time     `json:"departure_date" db:"departure_date"`
	DepartureTime  string        `json:"departure_time" db:"departure_time"` // "HH:MM"
	AvailableSpace SpaceCategory `json:"available_space" db:"available_space"`
	Description    string        `json:"description,omitempty" db:"description"`
	Status         TripStatus    `json:"status" db:"status"`
	CreatedAt      time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at" db:"updated_at"`

	// Traveler is the owner projection joined in by list/search queries
	Traveler *UserInfo `json:"traveler,omitempty"`
}

// TripCandidate is a trip joined with its owner's verification status,
// as loaded for the ranking engine.
type TripCandidate struct {
	Trip
	TravelerName     string `json:"traveler_name" db:"traveler_name"`
	TravelerVerified bool   `json:"traveler_verified" db:"traveler_verified"`
}

// CreateTripRequest is the payload for posting a trip
type CreateTripRequest struct {
	Origin         string `json:"origin" validate:"required"`
	Destination    string `json:"destination" validate:"required"`
	DepartureDate  string `json:"departure_date" validate:"required"` // "2006-01-02"
	DepartureTime  string `json:"departure_time"`
	AvailableSpace string `json:"available_space" validate:"required"`
	Description    string `json:"description"`
}
