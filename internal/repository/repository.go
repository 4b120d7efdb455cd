package repository

import (
	"fmt"
	"sync"

	"auction-house/internal/auctionerrors"
	model "auction-house/internal/models"
)

// UserStore defines user persistence for the identity flows. The store
// enforces email uniqueness.
type UserStore interface {
	CreateUser(user model.User) error
	GetUserByEmail(email string) (model.User, error)
}

// AuctionStore defines persistence for auction listings
type AuctionStore interface {
	CreateAuction(item model.AuctionItem) error
	GetAuction(itemID string) (model.AuctionItem, error)
	ListAuctions() ([]model.AuctionItem, error)
	UpdateAuction(item model.AuctionItem) error
	DeleteAuction(itemID string) error
	// CompareAndSetBid applies a bid only if the stored current bid still
	// equals prevBid and the auction is open, so two racing bids cannot
	// overwrite each other. Returns the updated item on success.
	CompareAndSetBid(itemID string, prevBid, amount float64, bidder string) (model.AuctionItem, error)
	CloseAuction(itemID string) error
}

// MemoryRepo is a concurrency-safe in-memory implementation of UserStore and
// AuctionStore. It backs tests and local runs without a database file.
type MemoryRepo struct {
	mu           sync.RWMutex
	users        map[string]model.User        // key: userID
	usersByEmail map[string]string            // key: email -> userID (unique index)
	items        map[string]model.AuctionItem // key: itemID
	order        []string                     // itemIDs in insertion order
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		users:        make(map[string]model.User),
		usersByEmail: make(map[string]string),
		items:        make(map[string]model.AuctionItem),
	}
}

// CreateUser stores a new user, rejecting duplicate emails
func (r *MemoryRepo) CreateUser(user model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if user.UserID == "" || user.Email == "" {
		return fmt.Errorf("create user: %w: missing id or email", auctionerrors.ErrInvalidInput)
	}
	if _, ok := r.usersByEmail[user.Email]; ok {
		return fmt.Errorf("create user %s: %w", user.Email, auctionerrors.ErrUserExists)
	}

	r.users[user.UserID] = user
	r.usersByEmail[user.Email] = user.UserID
	return nil
}

// GetUserByEmail returns the user registered under email
func (r *MemoryRepo) GetUserByEmail(email string) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	userID, ok := r.usersByEmail[email]
	if !ok {
		return model.User{}, fmt.Errorf("get user %s: %w", email, auctionerrors.ErrUserNotFound)
	}
	return r.users[userID], nil
}

// CreateAuction stores a new auction listing
func (r *MemoryRepo) CreateAuction(item model.AuctionItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if item.ItemID == "" {
		return fmt.Errorf("create auction: %w: missing item id", auctionerrors.ErrInvalidInput)
	}
	if _, ok := r.items[item.ItemID]; !ok {
		r.order = append(r.order, item.ItemID)
	}
	r.items[item.ItemID] = item
	return nil
}

// GetAuction returns one auction listing by ID
func (r *MemoryRepo) GetAuction(itemID string) (model.AuctionItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[itemID]
	if !ok {
		return model.AuctionItem{}, fmt.Errorf("get auction %s: %w", itemID, auctionerrors.ErrAuctionNotFound)
	}
	return item, nil
}

// ListAuctions returns all listings in insertion order
func (r *MemoryRepo) ListAuctions() ([]model.AuctionItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]model.AuctionItem, 0, len(r.order))
	for _, id := range r.order {
		items = append(items, r.items[id])
	}
	return items, nil
}

// UpdateAuction overwrites an existing listing
func (r *MemoryRepo) UpdateAuction(item model.AuctionItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[item.ItemID]; !ok {
		return fmt.Errorf("update auction %s: %w", item.ItemID, auctionerrors.ErrAuctionNotFound)
	}
	r.items[item.ItemID] = item
	return nil
}

// DeleteAuction removes a listing
func (r *MemoryRepo) DeleteAuction(itemID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[itemID]; !ok {
		return fmt.Errorf("delete auction %s: %w", itemID, auctionerrors.ErrAuctionNotFound)
	}
	delete(r.items, itemID)
	for i, id := range r.order {
		if id == itemID {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// CompareAndSetBid atomically applies a bid guarded on the previous amount
func (r *MemoryRepo) CompareAndSetBid(itemID string, prevBid, amount float64, bidder string) (model.AuctionItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[itemID]
	if !ok {
		return model.AuctionItem{}, fmt.Errorf("bid on auction %s: %w", itemID, auctionerrors.ErrAuctionNotFound)
	}
	if item.IsClosed {
		return model.AuctionItem{}, fmt.Errorf("bid on auction %s: %w", itemID, auctionerrors.ErrAuctionClosed)
	}
	if item.CurrentBid != prevBid {
		return model.AuctionItem{}, fmt.Errorf("bid on auction %s: %w", itemID, auctionerrors.ErrBidConflict)
	}

	item.CurrentBid = amount
	item.HighestBidder = bidder
	r.items[itemID] = item
	return item, nil
}

// CloseAuction marks a listing closed; further bids are rejected
func (r *MemoryRepo) CloseAuction(itemID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[itemID]
	if !ok {
		return fmt.Errorf("close auction %s: %w", itemID, auctionerrors.ErrAuctionNotFound)
	}
	item.IsClosed = true
	r.items[itemID] = item
	return nil
}
