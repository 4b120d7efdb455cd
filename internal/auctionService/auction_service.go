package auction

import (
	"errors"
	"fmt"
	"time"

	"auction-house/internal/auctionerrors"
	model "auction-house/internal/models"
	"auction-house/internal/repository"
	"auction-house/utils"
)

// casRetries bounds how often a bid is re-validated after losing a
// conditional update to a concurrent bidder.
const casRetries = 3

// AuctionService owns creation, retrieval, mutation, deletion and bidding
// state transitions for auction listings
type AuctionService struct {
	repo repository.AuctionStore
}

// NewAuctionService creates a new AuctionService instance
func NewAuctionService(repo repository.AuctionStore) *AuctionService {
	return &AuctionService{
		repo: repo,
	}
}

// AuctionUpdate carries the optional fields of an edit. A nil field leaves
// the stored value unchanged; a non-nil field overwrites it, even with an
// empty or zero value.
type AuctionUpdate struct {
	Title       *string
	Description *string
	StartingBid *float64
	EndDate     *time.Time
}

// CreateAuction constructs a new listing with the current bid primed to the
// starting bid and the listing open.
func (s *AuctionService) CreateAuction(title, description string, startingBid float64, endDate time.Time) (model.AuctionItem, error) {
	if title == "" || description == "" {
		return model.AuctionItem{}, fmt.Errorf("service: %w - missing title or description", auctionerrors.ErrInvalidInput)
	}
	if startingBid <= 0 {
		return model.AuctionItem{}, fmt.Errorf("service: %w - non-positive starting bid", auctionerrors.ErrInvalidInput)
	}
	if endDate.IsZero() {
		return model.AuctionItem{}, fmt.Errorf("service: %w - missing end date", auctionerrors.ErrInvalidInput)
	}

	item := model.AuctionItem{
		ItemID:      utils.GenerateID(),
		Title:       title,
		Description: description,
		StartingBid: startingBid,
		CurrentBid:  startingBid,
		EndDate:     endDate,
	}

	if err := s.repo.CreateAuction(item); err != nil {
		return model.AuctionItem{}, fmt.Errorf("service: failed to create auction %s: %w", item.ItemID, err)
	}

	return item, nil
}

// ListAuctions returns all listings, unfiltered, in store order
func (s *AuctionService) ListAuctions() ([]model.AuctionItem, error) {
	items, err := s.repo.ListAuctions()
	if err != nil {
		return nil, fmt.Errorf("service: failed to list auctions: %w", err)
	}
	return items, nil
}

// GetAuction returns one listing by ID
func (s *AuctionService) GetAuction(itemID string) (model.AuctionItem, error) {
	if itemID == "" {
		return model.AuctionItem{}, fmt.Errorf("service: %w - empty item ID", auctionerrors.ErrAuctionNotFound)
	}

	item, err := s.repo.GetAuction(itemID)
	if err != nil {
		return model.AuctionItem{}, fmt.Errorf("service: failed to get auction %s: %w", itemID, err)
	}
	return item, nil
}

// PlaceBid validates and applies a bid on a listing.
//
// The amount check deliberately runs before the expiry check, so a too-low
// bid on an expired auction is reported as too low, not as closed. A bid
// attempted after the end date closes the auction on the spot before being
// rejected. The update itself is a conditional write guarded on the amount
// the bidder saw; if a concurrent bid lands first, the whole validation is
// re-run, so a higher bid is never overwritten by a lower one.
func (s *AuctionService) PlaceBid(itemID string, amount float64, bidder string) (model.AuctionItem, error) {
	if itemID == "" {
		return model.AuctionItem{}, fmt.Errorf("service: %w - empty item ID", auctionerrors.ErrAuctionNotFound)
	}
	if bidder == "" {
		return model.AuctionItem{}, fmt.Errorf("service: %w - missing bidder name", auctionerrors.ErrInvalidInput)
	}

	for attempt := 0; ; attempt++ {
		item, err := s.repo.GetAuction(itemID)
		if err != nil {
			return model.AuctionItem{}, fmt.Errorf("service: failed to fetch auction %s: %w", itemID, err)
		}

		if amount <= item.CurrentBid {
			return model.AuctionItem{}, fmt.Errorf("service: %w - current bid is %.2f", auctionerrors.ErrBidTooLow, item.CurrentBid)
		}

		if item.IsClosed {
			return model.AuctionItem{}, fmt.Errorf("service: auction %s: %w", itemID, auctionerrors.ErrAuctionClosed)
		}
		if time.Now().After(item.EndDate) {
			// Lazy close: the first bid after the end date persists the
			// closed flag, then fails.
			if err := s.repo.CloseAuction(itemID); err != nil {
				return model.AuctionItem{}, fmt.Errorf("service: failed to close expired auction %s: %w", itemID, err)
			}
			return model.AuctionItem{}, fmt.Errorf("service: auction %s: %w", itemID, auctionerrors.ErrAuctionClosed)
		}

		updated, err := s.repo.CompareAndSetBid(itemID, item.CurrentBid, amount, bidder)
		if err == nil {
			return updated, nil
		}
		if errors.Is(err, auctionerrors.ErrBidConflict) && attempt < casRetries {
			continue
		}
		return model.AuctionItem{}, fmt.Errorf("service: failed to place bid on %s: %w", itemID, err)
	}
}

// EditAuction overwrites only the fields present in the update and returns
// the stored result. No invariant re-validation is performed; shrinking the
// starting bid below the current bid is allowed.
func (s *AuctionService) EditAuction(itemID string, update AuctionUpdate) (model.AuctionItem, error) {
	if itemID == "" {
		return model.AuctionItem{}, fmt.Errorf("service: %w - empty item ID", auctionerrors.ErrAuctionNotFound)
	}

	item, err := s.repo.GetAuction(itemID)
	if err != nil {
		return model.AuctionItem{}, fmt.Errorf("service: failed to fetch auction %s: %w", itemID, err)
	}

	if update.Title != nil {
		item.Title = *update.Title
	}
	if update.Description != nil {
		item.Description = *update.Description
	}
	if update.StartingBid != nil {
		item.StartingBid = *update.StartingBid
	}
	if update.EndDate != nil {
		item.EndDate = *update.EndDate
	}

	if err := s.repo.UpdateAuction(item); err != nil {
		return model.AuctionItem{}, fmt.Errorf("service: failed to update auction %s: %w", itemID, err)
	}
	return item, nil
}

// DeleteAuction removes a listing. There are no child entities, so no
// cascading cleanup is needed.
func (s *AuctionService) DeleteAuction(itemID string) error {
	if itemID == "" {
		return fmt.Errorf("service: %w - empty item ID", auctionerrors.ErrAuctionNotFound)
	}

	if err := s.repo.DeleteAuction(itemID); err != nil {
		return fmt.Errorf("service: failed to delete auction %s: %w", itemID, err)
	}
	return nil
}
