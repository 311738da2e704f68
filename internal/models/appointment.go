package models

import "time"

type Appointment struct {
	ID string `json:"id"`

	ClientName  string `json:"client_name"`
	ClientPhone string `json:"client_phone"`

	// Referência ao catálogo estático de serviços. O registro guarda apenas
	// o id; a resolução para nome/preço é responsabilidade da camada de
	// exibição.
	ServiceID string `json:"service_id"`

	PreferredDate time.Time `json:"preferred_date"`
	PreferredTime string    `json:"preferred_time"` // "HH:mm"

	Note string `json:"note,omitempty"`

	Origin string `json:"origin"` // site | admin
	Status string `json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
