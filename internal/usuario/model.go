package usuario

import (
	"time"

	"gorm.io/gorm"
)

// Usuario representa um consultor com acesso à plataforma
type Usuario struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	Nome      string `gorm:"not null" json:"nome"`
	Email     string `gorm:"uniqueIndex;not null" json:"email"`
	SenhaHash string `gorm:"not null" json:"-"`
	IsAdmin   bool   `gorm:"default:false" json:"isAdmin"`
}

func (Usuario) TableName() string {
	return "usuarios"
}
