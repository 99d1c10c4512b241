package models

import "time"

// Rental statuses.
const (
	RentalStatusPending   = "pending"
	RentalStatusApproved  = "approved"
	RentalStatusRejected  = "rejected"
	RentalStatusCancelled = "cancelled"
	RentalStatusCompleted = "completed"
)

// Rental is a booking of one trailer for a date range.
type Rental struct {
	ID         string    `bson:"id" json:"id"`
	TrailerID  string    `bson:"trailerId" json:"trailerId"`
	RenterID   string    `bson:"renterId" json:"renterId"`
	OwnerID    string    `bson:"ownerId" json:"ownerId"`
	StartDate  string    `bson:"startDate" json:"startDate"` // "2006-01-02"
	EndDate    string    `bson:"endDate" json:"endDate"`
	Status     string    `bson:"status" json:"status"`
	TotalPrice float64   `bson:"totalPrice" json:"totalPrice"`
	Message    string    `bson:"message,omitempty" json:"message,omitempty"`
	Reviewed   bool      `bson:"reviewed" json:"reviewed"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time `bson:"updatedAt" json:"updatedAt"`
}

// RentalRequest is the create-rental payload.
type RentalRequest struct {
	TrailerID string `json:"trailerId" binding:"required"`
	StartDate string `json:"startDate" binding:"required"`
	EndDate   string `json:"endDate" binding:"required"`
	Message   string `json:"message"`
}
