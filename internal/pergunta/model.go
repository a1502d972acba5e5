package pergunta

import (
	"encoding/json"
	"strconv"
	"time"

	"gorm.io/gorm"
)

// Opcao é uma alternativa de resposta com a pontuação que ela vale.
type Opcao struct {
	Texto  string `json:"texto"`
	Pontos int    `json:"pontos"`
}

// UnmarshalJSON tolera 'pontos' malformado (float, string numérica ou lixo):
// qualquer valor que não seja um inteiro legível degrada para 0.
func (o *Opcao) UnmarshalJSON(b []byte) error {
	var bruto struct {
		Texto  string          `json:"texto"`
		Pontos json.RawMessage `json:"pontos"`
	}
	if err := json.Unmarshal(b, &bruto); err != nil {
		return err
	}
	o.Texto = bruto.Texto
	o.Pontos = pontosDe(bruto.Pontos)
	return nil
}

func pontosDe(raw json.RawMessage) int {
	if len(raw) == 0 {
		return 0
	}
	var n int
	if err := json.Unmarshal(raw, &n); err == nil {
		return n
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return int(f)
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if n, err := strconv.Atoi(s); err == nil {
			return n
		}
	}
	return 0
}

// Pergunta representa uma questão do diagnóstico
type Pergunta struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	Texto     string `gorm:"type:text;not null" json:"texto"`
	Categoria string `gorm:"not null;index" json:"categoria"`

	// Alternativas ordenadas em JSONB; vazio cai na escala padrão
	Opcoes []Opcao `gorm:"type:jsonb;serializer:json" json:"opcoes"`

	Obrigatoria bool `gorm:"default:false" json:"obrigatoria"`
	Ativa       bool `gorm:"default:true" json:"ativa"`
	Ordem       int  `gorm:"default:0" json:"ordem"`
}

func (Pergunta) TableName() string {
	return "perguntas"
}

// OpcoesPadrao é a escala usada quando o admin não configurou alternativas.
func OpcoesPadrao() []Opcao {
	return []Opcao{
		{Texto: "Não", Pontos: 0},
		{Texto: "Parcialmente", Pontos: 1},
		{Texto: "Em grande parte", Pontos: 2},
		{Texto: "Sim", Pontos: 3},
	}
}

// OpcoesOuPadrao retorna as alternativas configuradas ou a escala padrão.
func (p *Pergunta) OpcoesOuPadrao() []Opcao {
	if len(p.Opcoes) == 0 {
		return OpcoesPadrao()
	}
	return p.Opcoes
}

// PontuacaoMaxima é a maior pontuação entre as alternativas da pergunta.
func (p *Pergunta) PontuacaoMaxima() int {
	max := 0
	for _, o := range p.OpcoesOuPadrao() {
		if o.Pontos > max {
			max = o.Pontos
		}
	}
	return max
}

// TextoDaOpcao devolve o texto da primeira alternativa que vale a pontuação
// informada; vazio quando nenhuma bate.
func (p *Pergunta) TextoDaOpcao(pontos int) string {
	for _, o := range p.OpcoesOuPadrao() {
		if o.Pontos == pontos {
			return o.Texto
		}
	}
	return ""
}
