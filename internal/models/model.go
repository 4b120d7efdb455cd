package models

import "time"

// User represents a registered account in the marketplace
type User struct {
	UserID       string `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
}

// AuctionItem represents one listing for sale together with its bid state
type AuctionItem struct {
	ItemID        string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	StartingBid   float64   `json:"startingBid"`
	CurrentBid    float64   `json:"currentBid"`
	HighestBidder string    `json:"highestBidder"`
	EndDate       time.Time `json:"endDate"`
	IsClosed      bool      `json:"isClosed"`
}
