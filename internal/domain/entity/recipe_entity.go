package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Recipe is owned by exactly one user and carries its tag links.
type Recipe struct {
	ID          int64
	UserID      int64
	Title       string
	TimeMinutes int
	Price       decimal.Decimal
	Link        string
	Description string
	Tags        []Tag
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Tag names are unique per owner; different owners may reuse a name.
type Tag struct {
	ID        int64
	UserID    int64
	Name      string
	CreatedAt time.Time
}
