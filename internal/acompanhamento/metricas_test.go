package acompanhamento

import (
	"encoding/json"
	"math"
	"testing"
)

func f(v float64) *float64 { return &v }

func TestCalcularMetricasVariacao(t *testing.T) {
	lista := []Acompanhamento{
		{Mes: "2026-01", ScoreGeral: f(50)},
		{Mes: "2026-02", ScoreGeral: f(60)},
		{Mes: "2026-03", ScoreGeral: f(75)},
	}

	m := CalcularMetricas(lista)

	if m.TotalAcompanhamentos != 3 {
		t.Errorf("total = %d, esperado 3", m.TotalAcompanhamentos)
	}
	if m.VariacaoScore != 50 {
		t.Errorf("variação = %v, esperado 50 (50 -> 75)", m.VariacaoScore)
	}
	esperada := (50.0 + 60 + 75) / 3
	if math.Abs(m.MediaScore-esperada) > 1e-9 {
		t.Errorf("média = %v, esperado %v", m.MediaScore, esperada)
	}
}

func TestCalcularMetricasVariacaoDegenerada(t *testing.T) {
	casos := []struct {
		nome  string
		lista []Acompanhamento
	}{
		{"vazio", nil},
		{"um único score", []Acompanhamento{{ScoreGeral: f(80)}}},
		{"primeiro score zero", []Acompanhamento{{ScoreGeral: f(0)}, {ScoreGeral: f(90)}}},
		{"scores ausentes", []Acompanhamento{{}, {}}},
	}
	for _, c := range casos {
		t.Run(c.nome, func(t *testing.T) {
			m := CalcularMetricas(c.lista)
			if m.VariacaoScore != 0 {
				t.Errorf("variação = %v, esperado 0", m.VariacaoScore)
			}
		})
	}
}

func TestCalcularMetricasMediasIgnoramNulos(t *testing.T) {
	lista := []Acompanhamento{
		{ScoreGeral: f(40), ROI: f(2)},
		{ScoreGeral: nil, ROI: f(4), Faturamento: f(10000)},
		{ScoreGeral: f(60)},
	}

	m := CalcularMetricas(lista)

	if m.MediaScore != 50 {
		t.Errorf("média de score = %v, esperado 50", m.MediaScore)
	}
	if m.MediaROI != 3 {
		t.Errorf("média de ROI = %v, esperado 3", m.MediaROI)
	}
	if m.MediaFaturamento != 10000 {
		t.Errorf("média de faturamento = %v, esperado 10000", m.MediaFaturamento)
	}
}

func TestCalcularMetricasAcoesConcluidas(t *testing.T) {
	nativo, _ := json.Marshal([]Acao{
		{Acao: "revisar funil", Status: AcaoConcluida},
		{Acao: "contratar SDR", Status: AcaoPendente},
	})
	codificado, _ := json.Marshal(string(nativo))

	lista := []Acompanhamento{
		{Acoes: nativo},
		{Acoes: codificado},
		{Acoes: json.RawMessage(`{"corrompido":`)},
	}

	m := CalcularMetricas(lista)

	if m.AcoesConcluidas != 2 {
		t.Errorf("ações concluídas = %d, esperado 2 (uma por formato legível)", m.AcoesConcluidas)
	}
}

func TestNormalizarAcoes(t *testing.T) {
	casos := []struct {
		nome  string
		bruto string
		qtd   int
	}{
		{"array nativo", `[{"acao":"a","status":"pendente"}]`, 1},
		{"array como string", `"[{\"acao\":\"a\",\"status\":\"concluido\"}]"`, 1},
		{"vazio", ``, 0},
		{"lixo", `{"x":1}`, 0},
		{"string ilegível", `"não é json"`, 0},
	}
	for _, c := range casos {
		t.Run(c.nome, func(t *testing.T) {
			if got := NormalizarAcoes(json.RawMessage(c.bruto)); len(got) != c.qtd {
				t.Errorf("NormalizarAcoes = %v, esperado %d itens", got, c.qtd)
			}
		})
	}
}
