package models

import "time"

// Booking is the durable booking record. Fields the web client attaches for
// its own bookkeeping (the toast "dismiss" handle) have no counterpart here,
// so they are dropped on decode and never written back.
type Booking struct {
	ID         int64     `json:"id"`
	PetID      FlexInt   `json:"petId"`
	WalkerID   FlexInt   `json:"walkerId"`
	Date       string    `json:"date"`
	Time       string    `json:"time"`
	Service    string    `json:"service"`
	Duration   FlexInt   `json:"duration"`
	Notes      string    `json:"notes"`
	TotalPrice float64   `json:"totalPrice"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
	UserID     int64     `json:"userId"`
}
