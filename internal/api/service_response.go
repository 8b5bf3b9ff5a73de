package api

import "time"

// swagger:model api.ServiceResponse
type ServiceResponse struct {
	ID              int       `json:"service_id" example:"1"`
	Name            string    `json:"name" example:"Web Design"`
	Slug            string    `json:"slug" example:"web-design"`
	Description     string    `json:"description" example:"Responsive website design"`
	LongDescription string    `json:"long_description" example:""`
	Status          string    `json:"status" example:"active"`
	Category        string    `json:"category" example:"design"`
	Icon            *string   `json:"icon"`
	ImageURL        *string   `json:"image_url"`
	CreatedAt       time.Time `json:"created_at" example:"2025-05-01T15:04:05Z07:00"`
}
