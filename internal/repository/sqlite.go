package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"auction-house/internal/auctionerrors"
	model "auction-house/internal/models"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
	user_id       TEXT PRIMARY KEY,
	username      TEXT NOT NULL,
	email         TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS auction_items (
	item_id        TEXT PRIMARY KEY,
	title          TEXT NOT NULL,
	description    TEXT NOT NULL,
	starting_bid   REAL NOT NULL,
	current_bid    REAL NOT NULL,
	highest_bidder TEXT NOT NULL DEFAULT '',
	end_date       TEXT NOT NULL,
	is_closed      INTEGER NOT NULL DEFAULT 0
);
`

// SQLiteRepo is a file-backed implementation of UserStore and AuctionStore.
type SQLiteRepo struct {
	db *sql.DB
}

// NewSQLiteRepo opens the database at path, creating the schema if needed.
func NewSQLiteRepo(path string) (*SQLiteRepo, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", path, err)
	}

	// sqlite allows a single writer; serializing through one connection
	// avoids SQLITE_BUSY under concurrent requests.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &SQLiteRepo{db: db}, nil
}

// Close releases the underlying database handle.
func (r *SQLiteRepo) Close() error {
	return r.db.Close()
}

// CreateUser stores a new user; the UNIQUE index on email enforces
// one account per address.
func (r *SQLiteRepo) CreateUser(user model.User) error {
	_, err := r.db.Exec(
		`INSERT INTO users (user_id, username, email, password_hash) VALUES (?, ?, ?, ?)`,
		user.UserID, user.Username, user.Email, user.PasswordHash,
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return fmt.Errorf("create user %s: %w", user.Email, auctionerrors.ErrUserExists)
		}
		return fmt.Errorf("create user %s: %w", user.Email, err)
	}
	return nil
}

// GetUserByEmail returns the user registered under email
func (r *SQLiteRepo) GetUserByEmail(email string) (model.User, error) {
	var user model.User
	err := r.db.QueryRow(
		`SELECT user_id, username, email, password_hash FROM users WHERE email = ?`, email,
	).Scan(&user.UserID, &user.Username, &user.Email, &user.PasswordHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, fmt.Errorf("get user %s: %w", email, auctionerrors.ErrUserNotFound)
		}
		return model.User{}, fmt.Errorf("get user %s: %w", email, err)
	}
	return user, nil
}

// CreateAuction stores a new auction listing
func (r *SQLiteRepo) CreateAuction(item model.AuctionItem) error {
	_, err := r.db.Exec(
		`INSERT INTO auction_items (item_id, title, description, starting_bid, current_bid, highest_bidder, end_date, is_closed)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		item.ItemID, item.Title, item.Description, item.StartingBid, item.CurrentBid,
		item.HighestBidder, item.EndDate.UTC().Format(time.RFC3339Nano), boolToInt(item.IsClosed),
	)
	if err != nil {
		return fmt.Errorf("create auction %s: %w", item.ItemID, err)
	}
	return nil
}

// GetAuction returns one auction listing by ID
func (r *SQLiteRepo) GetAuction(itemID string) (model.AuctionItem, error) {
	row := r.db.QueryRow(
		`SELECT item_id, title, description, starting_bid, current_bid, highest_bidder, end_date, is_closed
		 FROM auction_items WHERE item_id = ?`, itemID,
	)
	item, err := scanAuction(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.AuctionItem{}, fmt.Errorf("get auction %s: %w", itemID, auctionerrors.ErrAuctionNotFound)
		}
		return model.AuctionItem{}, fmt.Errorf("get auction %s: %w", itemID, err)
	}
	return item, nil
}

// ListAuctions returns all listings in insertion order
func (r *SQLiteRepo) ListAuctions() ([]model.AuctionItem, error) {
	rows, err := r.db.Query(
		`SELECT item_id, title, description, starting_bid, current_bid, highest_bidder, end_date, is_closed
		 FROM auction_items ORDER BY rowid`,
	)
	if err != nil {
		return nil, fmt.Errorf("list auctions: %w", err)
	}
	defer rows.Close()

	items := []model.AuctionItem{}
	for rows.Next() {
		item, err := scanAuction(rows)
		if err != nil {
			return nil, fmt.Errorf("list auctions: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list auctions: %w", err)
	}
	return items, nil
}

// UpdateAuction overwrites an existing listing
func (r *SQLiteRepo) UpdateAuction(item model.AuctionItem) error {
	res, err := r.db.Exec(
		`UPDATE auction_items SET title = ?, description = ?, starting_bid = ?, current_bid = ?,
		 highest_bidder = ?, end_date = ?, is_closed = ? WHERE item_id = ?`,
		item.Title, item.Description, item.StartingBid, item.CurrentBid,
		item.HighestBidder, item.EndDate.UTC().Format(time.RFC3339Nano), boolToInt(item.IsClosed), item.ItemID,
	)
	if err != nil {
		return fmt.Errorf("update auction %s: %w", item.ItemID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("update auction %s: %w", item.ItemID, auctionerrors.ErrAuctionNotFound)
	}
	return nil
}

// DeleteAuction removes a listing
func (r *SQLiteRepo) DeleteAuction(itemID string) error {
	res, err := r.db.Exec(`DELETE FROM auction_items WHERE item_id = ?`, itemID)
	if err != nil {
		return fmt.Errorf("delete auction %s: %w", itemID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("delete auction %s: %w", itemID, auctionerrors.ErrAuctionNotFound)
	}
	return nil
}

// CompareAndSetBid applies a bid in a single conditional UPDATE, guarded on
// the previous amount and the open flag. A zero row count is disambiguated
// with a follow-up read.
func (r *SQLiteRepo) CompareAndSetBid(itemID string, prevBid, amount float64, bidder string) (model.AuctionItem, error) {
	res, err := r.db.Exec(
		`UPDATE auction_items SET current_bid = ?, highest_bidder = ?
		 WHERE item_id = ? AND current_bid = ? AND is_closed = 0`,
		amount, bidder, itemID, prevBid,
	)
	if err != nil {
		return model.AuctionItem{}, fmt.Errorf("bid on auction %s: %w", itemID, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return model.AuctionItem{}, fmt.Errorf("bid on auction %s: %w", itemID, err)
	}
	if n == 0 {
		item, err := r.GetAuction(itemID)
		if err != nil {
			return model.AuctionItem{}, err
		}
		if item.IsClosed {
			return model.AuctionItem{}, fmt.Errorf("bid on auction %s: %w", itemID, auctionerrors.ErrAuctionClosed)
		}
		return model.AuctionItem{}, fmt.Errorf("bid on auction %s: %w", itemID, auctionerrors.ErrBidConflict)
	}

	return r.GetAuction(itemID)
}

// CloseAuction marks a listing closed; further bids are rejected
func (r *SQLiteRepo) CloseAuction(itemID string) error {
	res, err := r.db.Exec(`UPDATE auction_items SET is_closed = 1 WHERE item_id = ?`, itemID)
	if err != nil {
		return fmt.Errorf("close auction %s: %w", itemID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("close auction %s: %w", itemID, auctionerrors.ErrAuctionNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAuction(row rowScanner) (model.AuctionItem, error) {
	var (
		item     model.AuctionItem
		endDate  string
		isClosed int
	)
	err := row.Scan(&item.ItemID, &item.Title, &item.Description, &item.StartingBid,
		&item.CurrentBid, &item.HighestBidder, &endDate, &isClosed)
	if err != nil {
		return model.AuctionItem{}, err
	}

	item.EndDate, err = time.Parse(time.RFC3339Nano, endDate)
	if err != nil {
		return model.AuctionItem{}, fmt.Errorf("parse end date %q: %w", endDate, err)
	}
	item.IsClosed = isClosed != 0
	return item, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
