package entity

import "time"

// Warehouse representa una bodega física. El nombre es único entre
// bodegas activas.
type Warehouse struct {
	ID        string
	Name      string
	Location  string
	CreatedBy string // FK a User
	Status    string // active, deleted
	CreatedAt time.Time
	UpdatedAt time.Time
}
