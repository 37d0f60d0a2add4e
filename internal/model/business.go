package model

import "time"

// Business represents a listing registered by an authenticated user.
// Only the creator may change or delete it.
//
// Fields:
//  ID        – numeric identifier assigned on creation.
//  Name      – unique across all businesses (exact match after trimming).
//  Category  – free-form category used for list filtering.
//  Location  – free-form location string.
//  CreatedBy – email of the owning user.
//  Reviews   – append-only review texts left by other users.
//  CreatedAt – timestamp of creation.
//  UpdatedAt – timestamp of last update.
type Business struct {
	ID        uint64
	Name      string
	Category  string
	Location  string
	CreatedBy string
	Reviews   []string
	CreatedAt time.Time
	UpdatedAt time.Time
}
