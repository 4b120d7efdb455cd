package helpers

import "time"

// Request DTOs. Field names follow the public wire format.
type CreateAuctionRequest struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description" binding:"required"`
	StartingBid float64   `json:"startingBid" binding:"required,gt=0"`
	EndDate     time.Time `json:"endDate" binding:"required"`
}

type PlaceBidRequest struct {
	BidAmount  float64 `json:"bidAmount" binding:"required,gt=0"`
	BidderName string  `json:"bidderName" binding:"required"`
}

// UpdateAuctionRequest distinguishes an absent field (nil, leave unchanged)
// from a field explicitly set to its zero value.
type UpdateAuctionRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	StartingBid *float64   `json:"startingBid"`
	EndDate     *time.Time `json:"endDate"`
}
