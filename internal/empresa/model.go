package empresa

import (
	"time"

	"gorm.io/gorm"
)

// Empresa representa um cliente atendido pela consultoria
type Empresa struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	Nome     string `gorm:"not null" json:"nome"`
	Contato  string `json:"contato"`
	Email    string `json:"email"`
	Telefone string `json:"telefone"`
	Setor    string `json:"setor"`
}

func (Empresa) TableName() string {
	return "empresas"
}
