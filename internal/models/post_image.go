package models

// PostImage belongs to exactly one post. The post owns its images: they are
// removed before the post itself is, and replaced wholesale on update.
type PostImage struct {
	ID       uint64 `gorm:"primarykey" json:"id"`
	PostID   uint64 `gorm:"not null;index" json:"postId"`
	ImageURL string `gorm:"type:varchar(500);not null" json:"image_url"`
	IsCover  bool   `gorm:"not null;default:false" json:"is_cover"`
}
