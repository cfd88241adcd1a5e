package model

import "time"

// BaseModel carries the auto-increment ID and timestamps shared by all
// entities. IDs are assigned by the storage backend and increase
// monotonically within a process.
type BaseModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
