package models

import "time"

// FormSubmission is created by the public contact form. Field names stay
// Spanish on the wire because the frontend depends on them.
type FormSubmission struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	Nombre    string    `gorm:"type:varchar(255);not null" json:"nombre"`
	DNI       string    `gorm:"type:varchar(20)" json:"dni"`
	Telefono  string    `gorm:"type:varchar(30)" json:"telefono"`
	Correo    string    `gorm:"type:varchar(255)" json:"correo"`
	Grado     string    `gorm:"type:varchar(100)" json:"grado"`
	Nivel     string    `gorm:"type:varchar(100)" json:"nivel"`
	CreatedAt time.Time `json:"created_at"`
}
