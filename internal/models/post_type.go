package models

// PostType is static reference data: "evento", "blog", "comunicado".
type PostType struct {
	ID   uint64 `gorm:"primarykey" json:"id"`
	Name string `gorm:"type:varchar(50);uniqueIndex;not null" json:"name"`
}
