package models

import "time"

// Category groups tasks. Timestamps are owned by the service layer, so
// gorm's automatic time tracking is disabled on them.
type Category struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title" gorm:"size:255;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime:false"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime:false"`

	Tasks []Task `json:"tasks,omitempty" gorm:"foreignKey:CategoryID"`
}
