package domain

import "time"

// StockGroup is a member-owned named collection of stocks.
// Stocks form a set: no duplicates, no ordering.
type StockGroup struct {
	ID              uint      `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description,omitempty"`
	MemberID        uint      `json:"member_id"`
	Stocks          []Stock   `json:"stocks"`
	CreationDate    time.Time `json:"creation_date"`
	LastUpdatedDate time.Time `json:"last_updated_date"`
}
