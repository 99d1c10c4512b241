package models

import "time"

// Review is feedback on a completed rental. RevieweeID is the trailer owner
// when a renter reviews, or the renter when an owner reviews.
type Review struct {
	ID         string    `bson:"id" json:"id"`
	TrailerID  string    `bson:"trailerId" json:"trailerId"`
	RentalID   string    `bson:"rentalId" json:"rentalId"`
	ReviewerID string    `bson:"reviewerId" json:"reviewerId"`
	RevieweeID string    `bson:"revieweeId" json:"revieweeId"`
	Rating     float64   `bson:"rating" json:"rating"` // 1..5
	Comment    string    `bson:"comment" json:"comment"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
}

// ReviewRequest is the create-review payload.
type ReviewRequest struct {
	RentalID string  `json:"rentalId" binding:"required"`
	Rating   float64 `json:"rating" binding:"required"`
	Comment  string  `json:"comment"`
}
