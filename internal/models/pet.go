package models

import "time"

type Pet struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Type         string    `json:"type,omitempty"`
	Breed        string    `json:"breed"`
	Age          string    `json:"age"`
	Weight       string    `json:"weight"`
	SpecialNeeds string    `json:"specialNeeds"`
	ImageURL     string    `json:"imageUrl,omitempty"`
	UserID       int64     `json:"userId"`
	CreatedAt    time.Time `json:"createdAt"`
}
