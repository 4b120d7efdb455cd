package handler

import (
	"net/http"
	"time"

	auction "auction-house/internal/auctionService"
	model "auction-house/internal/models"
	"auction-house/services/auction/helpers"
	"auction-house/utils"

	"github.com/gin-gonic/gin"
)

type AuctionServiceInterface interface {
	CreateAuction(title, description string, startingBid float64, endDate time.Time) (model.AuctionItem, error)
	ListAuctions() ([]model.AuctionItem, error)
	GetAuction(itemID string) (model.AuctionItem, error)
	PlaceBid(itemID string, amount float64, bidder string) (model.AuctionItem, error)
	EditAuction(itemID string, update auction.AuctionUpdate) (model.AuctionItem, error)
	DeleteAuction(itemID string) error
}

type AuctionHandler struct {
	service AuctionServiceInterface
}

func NewAuctionHandler(service AuctionServiceInterface) *AuctionHandler {
	return &AuctionHandler{service: service}
}

// CreateAuctionHandler handles POST /auction
func (h *AuctionHandler) CreateAuctionHandler(c *gin.Context) {
	var req helpers.CreateAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateAuctionHandler", err)
		return
	}

	item, err := h.service.CreateAuction(req.Title, req.Description, req.StartingBid, req.EndDate)
	if err != nil {
		helpers.HandleServiceError(c, "CreateAuctionHandler", err)
		return
	}

	utils.JSONResponse(c, http.StatusCreated, item, "Auction created successfully")
	helpers.LogSuccess("CreateAuctionHandler", "auction created successfully", map[string]any{
		"item_id":      item.ItemID,
		"starting_bid": item.StartingBid,
	})
}

// ListAuctionsHandler handles GET /auctions
func (h *AuctionHandler) ListAuctionsHandler(c *gin.Context) {
	items, err := h.service.ListAuctions()
	if err != nil {
		helpers.HandleServiceError(c, "ListAuctionsHandler", err)
		return
	}

	if items == nil {
		items = []model.AuctionItem{}
	}

	utils.JSONResponse(c, http.StatusOK, items, "auctions retrieved successfully")
	helpers.LogSuccess("ListAuctionsHandler", "auctions retrieved successfully", map[string]any{
		"count": len(items),
	})
}

// GetAuctionHandler handles GET /auctions/:id
func (h *AuctionHandler) GetAuctionHandler(c *gin.Context) {
	itemID := c.Param("id")

	item, err := h.service.GetAuction(itemID)
	if err != nil {
		helpers.HandleServiceError(c, "GetAuctionHandler", err)
		return
	}

	utils.JSONResponse(c, http.StatusOK, item, "auction retrieved successfully")
	helpers.LogSuccess("GetAuctionHandler", "auction retrieved successfully", map[string]any{
		"item_id": item.ItemID,
	})
}

// PlaceBidHandler handles POST /bid/:id
func (h *AuctionHandler) PlaceBidHandler(c *gin.Context) {
	itemID := c.Param("id")

	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	item, err := h.service.PlaceBid(itemID, req.BidAmount, req.BidderName)
	if err != nil {
		helpers.HandleServiceError(c, "PlaceBidHandler", err)
		return
	}

	utils.JSONResponse(c, http.StatusOK, item, "Bid placed successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid placed successfully", map[string]any{
		"item_id":        item.ItemID,
		"current_bid":    item.CurrentBid,
		"highest_bidder": item.HighestBidder,
	})
}

// UpdateAuctionHandler handles PUT /auction/:id
func (h *AuctionHandler) UpdateAuctionHandler(c *gin.Context) {
	itemID := c.Param("id")

	var req helpers.UpdateAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateAuctionHandler", err)
		return
	}

	update := auction.AuctionUpdate{
		Title:       req.Title,
		Description: req.Description,
		StartingBid: req.StartingBid,
		EndDate:     req.EndDate,
	}

	item, err := h.service.EditAuction(itemID, update)
	if err != nil {
		helpers.HandleServiceError(c, "UpdateAuctionHandler", err)
		return
	}

	utils.JSONResponse(c, http.StatusOK, item, "Auction updated successfully")
	helpers.LogSuccess("UpdateAuctionHandler", "auction updated successfully", map[string]any{
		"item_id": item.ItemID,
	})
}

// DeleteAuctionHandler handles DELETE /auction/:id
func (h *AuctionHandler) DeleteAuctionHandler(c *gin.Context) {
	itemID := c.Param("id")

	if err := h.service.DeleteAuction(itemID); err != nil {
		helpers.HandleServiceError(c, "DeleteAuctionHandler", err)
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "Auction deleted successfully")
	helpers.LogSuccess("DeleteAuctionHandler", "auction deleted successfully", map[string]any{
		"item_id": itemID,
	})
}
