package models

import "time"

// BaseModel is gorm.Model without DeletedAt: every delete in this
// application is physical, soft-delete rows must never linger behind
// the cascade routines.
type BaseModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
