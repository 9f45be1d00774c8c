package dto

import "time"

type BookingListDTO struct {
	ID             int64     `json:"id"`
	PetID          int64     `json:"pet_id"`
	PetName        string    `json:"pet_name"`
	ProviderID     int64     `json:"provider_id"`
	ProviderName   string    `json:"provider_name"`
	ProviderAvatar string    `json:"provider_avatar,omitempty"`
	Date           string    `json:"date"`
	Time           string    `json:"time"`
	Service        string    `json:"service"`
	Duration       int64     `json:"duration"`
	Notes          string    `json:"notes"`
	TotalPrice     float64   `json:"total_price"`
	Status         string    `json:"status"`
	StatusLabel    string    `json:"status_label"`
	CreatedAt      time.Time `json:"created_at"`
}
