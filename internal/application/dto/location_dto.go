package dto

import "time"

// LocationResponse salida de una ubicación del registro.
type LocationResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// SeedResponse respuesta de POST /api/seed.
type SeedResponse struct {
	Message   string             `json:"message"`
	Locations []LocationResponse `json:"locations,omitempty"`
}
