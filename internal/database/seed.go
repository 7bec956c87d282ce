package database

import (
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"school-cms-api/internal/constants"
	"school-cms-api/internal/models"
)

// Seed inserts the static reference data and the initial admin account.
// Every step is an upsert, so reseeding an existing database is a no-op.
func Seed(db *gorm.DB) error {
	for _, name := range []string{"evento", "blog", "comunicado"} {
		postType := models.PostType{Name: name}
		if err := db.Where("name = ?", name).FirstOrCreate(&postType).Error; err != nil {
			return fmt.Errorf("failed to seed post type %q: %w", name, err)
		}
	}
	log.Println("Post types seeded")

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), constants.BcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := models.User{
		Username:     "admin",
		Email:        "admin@mail.com",
		PasswordHash: string(hash),
		IsAdmin:      true,
	}
	if err := db.Where("email = ?", admin.Email).FirstOrCreate(&admin).Error; err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}
	log.Println("Admin user seeded")

	videos := []models.Video{
		{Enlace: "https://www.youtube.com/embed/K5o7U1WrJXc?autoplay=1&rel=0&modestbranding=1", Pagina: models.VideoPageHome},
		{Enlace: "https://www.youtube.com/embed/QEpJy9eiqX4", Pagina: models.VideoPageBlog},
		{Enlace: "https://www.youtube.com/embed/FOt91LmV_fY", Pagina: models.VideoPageBlog},
		{Enlace: "https://www.youtube.com/embed/Ic8EgWhbA9U", Pagina: models.VideoPageBlog},
	}
	for _, v := range videos {
		video := v
		if err := db.Where("enlace = ? AND pagina = ?", v.Enlace, v.Pagina).FirstOrCreate(&video).Error; err != nil {
			return fmt.Errorf("failed to seed video: %w", err)
		}
	}
	log.Println("Videos seeded")

	return nil
}
