package acompanhamento

import (
	"encoding/json"
	"time"

	"gorm.io/gorm"
)

// Status possíveis de uma ação do plano mensal. Transições são livres:
// qualquer ação pode ir para qualquer status a qualquer momento.
const (
	AcaoPendente    = "pendente"
	AcaoEmAndamento = "em_andamento"
	AcaoConcluida   = "concluido"
)

// Acao é um item do plano de ação embutido no check-up mensal.
type Acao struct {
	Acao   string `json:"acao"`
	Status string `json:"status"`
}

// Comparativo guarda a evolução de uma categoria dentro do mês.
type Comparativo struct {
	Anterior    float64 `json:"anterior"`
	Atual       float64 `json:"atual"`
	Observacoes string  `json:"observacoes"`
}

// Acompanhamento é o check-up mensal de uma empresa, um por mês, garantido
// pelo índice único (empresa_id, mes).
type Acompanhamento struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	EmpresaID uint   `gorm:"not null;uniqueIndex:idx_acompanhamento_empresa_mes" json:"empresaId"`
	Mes       string `gorm:"size:7;not null;uniqueIndex:idx_acompanhamento_empresa_mes" json:"mes"` // "2026-01"

	ScoreGeral  *float64 `json:"scoreGeral"`
	ROI         *float64 `json:"roi"`
	Faturamento *float64 `json:"faturamento"`

	// Coluna JSONB legada: linhas antigas podem carregar o array
	// serializado como string. Ler sempre via NormalizarAcoes.
	Acoes json.RawMessage `gorm:"type:jsonb;serializer:json" json:"acoes"`

	Comparativo map[string]Comparativo `gorm:"type:jsonb;serializer:json" json:"comparativo"`
}

func (Acompanhamento) TableName() string {
	return "acompanhamentos"
}

// NormalizarAcoes decodifica a coluna de ações aceitando tanto o array nativo
// quanto o array codificado como string JSON. Conteúdo ilegível vira zero
// ações: a falha é absorvida, nunca propagada.
func NormalizarAcoes(bruto json.RawMessage) []Acao {
	if len(bruto) == 0 {
		return nil
	}

	var acoes []Acao
	if err := json.Unmarshal(bruto, &acoes); err == nil {
		return acoes
	}

	var codificado string
	if err := json.Unmarshal(bruto, &codificado); err == nil {
		if err := json.Unmarshal([]byte(codificado), &acoes); err == nil {
			return acoes
		}
	}
	return nil
}
