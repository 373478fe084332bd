package models

import "time"

// Note is a free-standing record. Content is nullable; writing nil clears
// it. The category association arrived after the initial schema and stays
// optional.
type Note struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Title      string    `json:"title" gorm:"size:255;not null"`
	Content    *string   `json:"content" gorm:"type:text"`
	CategoryID *uint     `json:"category_id" gorm:"index"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime:false"`
	UpdatedAt  time.Time `json:"updated_at" gorm:"autoUpdateTime:false"`

	Category *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
}
