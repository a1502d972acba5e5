package plano

import (
	"time"

	"gorm.io/gorm"
)

// Plano é um pacote comercial reutilizável; só se relaciona a um diagnóstico
// quando uma proposta o referencia.
type Plano struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	Nome      string   `gorm:"not null" json:"nome"`
	Objetivo  string   `gorm:"type:text" json:"objetivo"`
	Tarefas   []string `gorm:"type:jsonb;serializer:json" json:"tarefas"`
	Preco     float64  `gorm:"default:0" json:"preco"`
	Categoria string   `json:"categoria"`
	Ativo     bool     `gorm:"default:true" json:"ativo"`
}

func (Plano) TableName() string {
	return "planos"
}
