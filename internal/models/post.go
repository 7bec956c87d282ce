package models

import "time"

type Post struct {
	ID         uint64     `gorm:"primarykey" json:"id"`
	Title      string     `gorm:"type:varchar(255);not null" json:"title"`
	Content    string     `gorm:"type:text" json:"content"`
	PostTypeID uint64     `gorm:"not null" json:"postTypeId"`
	UserID     uint64     `gorm:"not null" json:"userId"`
	StartAt    *time.Time `json:"start_at"`
	EndAt      *time.Time `json:"end_at"`
	CreatedAt  time.Time  `json:"created_at"`

	// Relations
	PostType PostType    `gorm:"foreignKey:PostTypeID" json:"postType,omitempty"`
	User     User        `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Images   []PostImage `gorm:"foreignKey:PostID" json:"images"`
}
