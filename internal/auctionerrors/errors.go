package auctionerrors

import "errors"

// Repository-level errors
var (
	ErrUserExists      = errors.New("user already exists")
	ErrUserNotFound    = errors.New("user not found")
	ErrAuctionNotFound = errors.New("auction not found")
	ErrBidConflict     = errors.New("auction changed by a concurrent bid")
)

// business logic errors
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrBidTooLow          = errors.New("bid must be higher than current bid")
	ErrAuctionClosed      = errors.New("auction has ended")
)
