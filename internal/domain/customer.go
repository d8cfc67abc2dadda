package domain

import "time"

// Customer represents a registered client of the rental service
type Customer struct {
	ID           int64
	Name         string
	Email        string // unique
	Phone        string
	Address      string
	PasswordHash string
	RegisteredAt time.Time
}
