package main

import (
	auction "auction-house/internal/auctionService"
	"auction-house/internal/config"
	"auction-house/internal/credentials"
	identity "auction-house/internal/identityService"
	"auction-house/internal/repository"
	"auction-house/internal/server"
	"auction-house/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		utils.Fatal("invalid configuration", map[string]any{"error": err.Error()})
	}

	users, auctions, cleanup := openStores(cfg)
	defer cleanup()

	if cfg.JWTSecret == "" {
		utils.Warn("JWT_SECRET not set - signin tokens are signed with an empty secret", nil)
	}

	hasher := credentials.NewPasswordHasher()
	tokens := credentials.NewTokenIssuer(cfg.JWTSecret)

	identitySvc := identity.NewIdentityService(users, hasher, tokens)
	auctionSvc := auction.NewAuctionService(auctions)

	router := server.SetupRouter(cfg, identitySvc, auctionSvc, tokens)

	utils.Info("starting auction server", map[string]any{
		"port":          cfg.Port,
		"db_path":       cfg.DBPath,
		"auth_required": cfg.AuthRequired,
	})
	if err := router.Run(cfg.Addr()); err != nil {
		utils.Fatal("failed to start server", map[string]any{"error": err.Error()})
	}
}

// openStores selects the persistence backend: the sqlite file when DB_PATH
// is set, the in-memory store otherwise.
func openStores(cfg config.Config) (repository.UserStore, repository.AuctionStore, func()) {
	if cfg.DBPath == "" {
		repo := repository.NewMemoryRepo()
		return repo, repo, func() {}
	}

	db, err := repository.NewSQLiteRepo(cfg.DBPath)
	if err != nil {
		utils.Fatal("failed to open database", map[string]any{"path": cfg.DBPath, "error": err.Error()})
	}
	return db, db, func() {
		if err := db.Close(); err != nil {
			utils.Error("failed to close database", map[string]any{"error": err.Error()})
		}
	}
}
