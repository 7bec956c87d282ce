package models

type VideoPage string

const (
	VideoPageHome VideoPage = "home"
	VideoPageBlog VideoPage = "blog"
)

// Video is a promotional video link shown on a public page. Wire names stay
// Spanish (enlace, pagina) because the frontend depends on them.
type Video struct {
	ID     uint64    `gorm:"primarykey" json:"id"`
	Enlace string    `gorm:"type:varchar(500);not null" json:"enlace"`
	Pagina VideoPage `gorm:"type:varchar(10);not null" json:"pagina"`
}
