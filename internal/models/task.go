package models

import "time"

// Task always has exactly one category and one author. The author is fixed
// at creation and never changed by edits.
type Task struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Title      string    `json:"title" gorm:"size:255;not null"`
	CategoryID uint      `json:"category_id" gorm:"not null;index"`
	AuthorID   uint      `json:"author_id" gorm:"not null;index"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime:false"`
	UpdatedAt  time.Time `json:"updated_at" gorm:"autoUpdateTime:false"`

	Category Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Author   User     `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
}
