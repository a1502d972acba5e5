package resposta

import (
	"time"
)

// Resposta registra a alternativa escolhida para uma pergunta de um
// diagnóstico. Criada uma única vez na submissão; imutável depois.
type Resposta struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`

	DiagnosticoID uint `gorm:"not null;index" json:"diagnosticoId"`
	PerguntaID    uint `gorm:"not null;index" json:"perguntaId"`

	Pontos int    `gorm:"not null" json:"pontos"`
	Texto  string `json:"texto"`
}

func (Resposta) TableName() string {
	return "respostas"
}
