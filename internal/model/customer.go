package model

import "time"

// Customer is a CRM record. Customers are either entered by an
// administrator or synthesized from order history, keyed by phone number.
type Customer struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Phone         string     `json:"phone"`
	Email         string     `json:"email,omitempty"`
	Address       string     `json:"address"`
	Neighborhood  string     `json:"neighborhood,omitempty"`
	TotalOrders   int        `json:"totalOrders"`
	LastOrderDate *time.Time `json:"lastOrderDate,omitempty"`
	Notes         string     `json:"notes,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
}
