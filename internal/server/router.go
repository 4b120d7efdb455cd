package server

import (
	"auction-house/internal/config"
	"auction-house/internal/credentials"
	auctionhandler "auction-house/services/auction/handler"
	identityhandler "auction-house/services/identity/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application. When
// cfg.AuthRequired is set, the mutating auction routes demand a bearer
// token issued by signin; bidding stays open because the bidder is named
// in the request body.
func SetupRouter(cfg config.Config, identityService identityhandler.IdentityServiceInterface, auctionService auctionhandler.AuctionServiceInterface, tokens *credentials.TokenIssuer) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	identityHandler := identityhandler.NewIdentityHandler(identityService)
	auctionHandler := auctionhandler.NewAuctionHandler(auctionService)

	router.POST("/signup", identityHandler.SignUpHandler)
	router.POST("/signin", identityHandler.SignInHandler)

	router.GET("/auctions", auctionHandler.ListAuctionsHandler)
	router.GET("/auctions/:id", auctionHandler.GetAuctionHandler)
	router.POST("/bid/:id", auctionHandler.PlaceBidHandler)

	mutating := router.Group("")
	if cfg.AuthRequired {
		mutating.Use(RequireAuth(tokens))
	}
	mutating.POST("/auction", auctionHandler.CreateAuctionHandler)
	mutating.PUT("/auction/:id", auctionHandler.UpdateAuctionHandler)
	mutating.DELETE("/auction/:id", auctionHandler.DeleteAuctionHandler)

	return router
}
