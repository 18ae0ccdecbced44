package domain

import (
	"time"

	"gorm.io/datatypes"
)

// Project is a portfolio entry. Tags holds a JSON array of strings.
// Image is the relative URL of the uploaded image, empty when none
// was provided.
type Project struct {
	ID          int64          `json:"id" gorm:"primaryKey"`
	Name        string         `json:"name" gorm:"not null"`
	Description string         `json:"description"`
	Tags        datatypes.JSON `json:"tags"`
	Image       string         `json:"image"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}
