package pipeline

import (
	"time"

	"gorm.io/gorm"
)

// Tipos de coluna. O tipo é informativo: não existe validação de transição
// e um lead pode entrar e sair de uma coluna ganho/perdido livremente.
const (
	ColunaNormal  = "normal"
	ColunaGanho   = "ganho"
	ColunaPerdido = "perdido"
)

// Coluna é uma etapa configurável do funil de vendas
type Coluna struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	Nome  string `gorm:"not null" json:"nome"`
	Cor   string `gorm:"not null;default:'#3b82f6'" json:"cor"`
	Tipo  string `gorm:"size:20;not null;default:'normal'" json:"tipo"`
	Ordem int    `gorm:"not null;default:0" json:"ordem"`
}

func (Coluna) TableName() string {
	return "colunas_pipeline"
}

// Lead é uma oportunidade comercial posicionada numa coluna do funil
type Lead struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	ColunaID uint `gorm:"not null;index" json:"colunaId"`

	Nome     string `gorm:"not null" json:"nome"`
	Contato  string `json:"contato"`
	Telefone string `json:"telefone"`
	Email    string `json:"email"`

	// Qualificação 0–100
	Pontuacao        int     `gorm:"default:0" json:"pontuacao"`
	PotencialReceita float64 `gorm:"default:0" json:"potencialReceita"`
	Urgencia         string  `json:"urgencia"`
}

func (Lead) TableName() string {
	return "leads"
}
