package diagnostico

import (
	"time"

	"gorm.io/gorm"
)

const (
	StatusRascunho  = "rascunho"
	StatusConcluido = "concluido"
)

// Diagnostico representa uma avaliação de maturidade concluída (ou em
// rascunho) de uma empresa.
type Diagnostico struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	EmpresaID uint `gorm:"not null;index" json:"empresaId"`

	// Pontuações em percentual inteiro 0–100; a geral é a média das
	// pontuações por categoria presentes.
	PontuacaoGeral  int            `gorm:"default:0" json:"pontuacaoGeral"`
	Pontuacoes      map[string]int `gorm:"type:jsonb;serializer:json" json:"pontuacoes"`
	NivelMaturidade string         `json:"nivelMaturidade"`

	PontosFortes  []string          `gorm:"type:jsonb;serializer:json" json:"pontosFortes"`
	PontosAtencao []string          `gorm:"type:jsonb;serializer:json" json:"pontosAtencao"`
	Recomendacoes map[string]string `gorm:"type:jsonb;serializer:json" json:"recomendacoes"`

	Observacoes string `gorm:"type:text" json:"observacoes"`
	Status      string `gorm:"size:20;not null;default:'rascunho';index" json:"status"`
}

func (Diagnostico) TableName() string {
	return "diagnosticos"
}

// NovoPlaceholder fabrica o diagnóstico zerado usado pelo fluxo de proposta
// personalizada, que exige um diagnóstico para ancorar a proposta.
func NovoPlaceholder(empresaID uint) Diagnostico {
	return Diagnostico{
		EmpresaID:       empresaID,
		PontuacaoGeral:  0,
		Pontuacoes:      map[string]int{},
		NivelMaturidade: NivelIniciante,
		PontosFortes:    []string{},
		PontosAtencao:   []string{},
		Recomendacoes:   map[string]string{},
		Status:          StatusRascunho,
	}
}
