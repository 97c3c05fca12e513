package models

import (
	"time"
)

// DeliveryRequestStatus represents the current status of a delivery request
type DeliveryRequestStatus string

const (
	RequestStatusPending   DeliveryRequestStatus = "pending"
	RequestStatusMatched   DeliveryRequestStatus = "matched"
	RequestStatusInTransit DeliveryRequestStatus = "in_transit"
	RequestStatusDelivered DeliveryRequestStatus = "delivered"
	RequestStatusCancelled DeliveryRequestStatus = "cancelled"
)

// DeliveryRequest represents a business's posted package needing transport
type DeliveryRequest struct {
	ID              string                `json:"id" db:"id"`
	BusinessID      string                `json:"business_id" db:"business_id"`
	Origin          string                `json:"origin" db:"origin"`
	Destination     string                `json:"destination" db:"destination"`
	DeliveryDate    time.Time             `json:"delivery_date" db:"delivery_date"`
	PackageSize     SpaceCategory         `json:"package_size" db:"package_size"`
	ItemDescription string                `json:"item_description,omitempty" db:"item_description"`
	EstimatedCost   float64               `json:"estimated_cost" db:"estimated_cost"`
	Status          DeliveryRequestStatus `json:"status" db:"status"`
	CreatedAt       time.Time             `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time             `json:"updated_at" db:"updated_at"`

	Business *UserInfo `json:"business,omitempty"`
}

// RequestCandidate is a delivery request joined with its owner's verification
// status, as loaded for the reverse ranking direction.
type RequestCandidate struct {
	DeliveryRequest
	BusinessName     string `json:"business_name" db:"business_name"`
	BusinessVerified bool   `json:"business_verified" db:"business_verified"`
}

// CreateDeliveryRequest is the payload for posting a delivery request
type CreateDeliveryRequest struct {
	Origin          string  `json:"origin" validate:"required"`
	Destination     string  `json:"destination" validate:"required"`
	DeliveryDate    string  `json:"delivery_date" validate:"required"`
	PackageSize     string  `json:"package_size" validate:"required"`
	ItemDescription string  `json:"item_description"`
	EstimatedCost   float64 `json:"estimated_cost" validate:"required"`
}
