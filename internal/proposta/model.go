package proposta

import (
	"time"

	"gorm.io/gorm"
)

const (
	StatusRascunho  = "rascunho"
	StatusEnviada   = "enviada"
	StatusAprovada  = "aprovada"
	StatusRejeitada = "rejeitada"
)

// StatusValido confere se o status está na lista aceita.
func StatusValido(status string) bool {
	switch status {
	case StatusRascunho, StatusEnviada, StatusAprovada, StatusRejeitada:
		return true
	}
	return false
}

// Proposta é a oferta comercial ancorada num diagnóstico; opcionalmente
// referencia um plano de serviço.
type Proposta struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	DiagnosticoID uint  `gorm:"not null;index" json:"diagnosticoId"`
	PlanoID       *uint `gorm:"index" json:"planoId,omitempty"`

	Objetivo       string   `gorm:"type:text" json:"objetivo"`
	Valor          float64  `gorm:"default:0" json:"valor"`
	AcoesSugeridas []string `gorm:"type:jsonb;serializer:json" json:"acoesSugeridas"`
	Status         string   `gorm:"size:20;not null;default:'rascunho';index" json:"status"`
}

func (Proposta) TableName() string {
	return "propostas"
}
