package diagnostico

import (
	"reflect"
	"testing"

	"github.com/MaisResultado/api-consultoria/internal/pergunta"
)

func perguntaPadrao(id uint, categoria string) pergunta.Pergunta {
	return pergunta.Pergunta{
		ID:        id,
		Texto:     "pergunta de teste",
		Categoria: categoria,
	}
}

func TestCalcularResultadoExemploBasico(t *testing.T) {
	perguntas := []pergunta.Pergunta{
		perguntaPadrao(1, "marketing"),
		perguntaPadrao(2, "vendas"),
	}
	respostas := map[uint]int{1: 3, 2: 1}

	r := CalcularResultado(respostas, perguntas)

	if r.Pontuacoes["marketing"] != 100 {
		t.Errorf("marketing = %d, esperado 100", r.Pontuacoes["marketing"])
	}
	if r.Pontuacoes["vendas"] != 33 {
		t.Errorf("vendas = %d, esperado 33", r.Pontuacoes["vendas"])
	}
	if r.PontuacaoGeral != 67 {
		t.Errorf("pontuação geral = %d, esperado 67", r.PontuacaoGeral)
	}
	if r.NivelMaturidade != NivelIntermediario {
		t.Errorf("nível = %q, esperado %q", r.NivelMaturidade, NivelIntermediario)
	}
}

func TestCalcularResultadoEntradaVazia(t *testing.T) {
	r := CalcularResultado(nil, nil)

	if r.PontuacaoGeral != 0 {
		t.Errorf("pontuação geral = %d, esperado 0", r.PontuacaoGeral)
	}
	if r.NivelMaturidade != NivelIniciante {
		t.Errorf("nível = %q, esperado %q", r.NivelMaturidade, NivelIniciante)
	}
	if r.PontosFortes == nil || len(r.PontosFortes) != 0 {
		t.Errorf("pontos fortes = %v, esperado slice vazio", r.PontosFortes)
	}
	if r.PontosAtencao == nil || len(r.PontosAtencao) != 0 {
		t.Errorf("pontos de atenção = %v, esperado slice vazio", r.PontosAtencao)
	}
}

func TestCalcularResultadoCategoriasPesamIgual(t *testing.T) {
	// Uma categoria com cinco perguntas não pesa mais que outra com uma.
	perguntas := []pergunta.Pergunta{perguntaPadrao(1, "gestao")}
	for id := uint(2); id <= 6; id++ {
		perguntas = append(perguntas, perguntaPadrao(id, "vendas"))
	}
	respostas := map[uint]int{1: 0}
	for id := uint(2); id <= 6; id++ {
		respostas[id] = 3
	}

	r := CalcularResultado(respostas, perguntas)

	if r.Pontuacoes["gestao"] != 0 || r.Pontuacoes["vendas"] != 100 {
		t.Fatalf("pontuações = %v", r.Pontuacoes)
	}
	if r.PontuacaoGeral != 50 {
		t.Errorf("pontuação geral = %d, esperado 50", r.PontuacaoGeral)
	}
}

func TestCalcularResultadoIgnoraNaoRespondidas(t *testing.T) {
	perguntas := []pergunta.Pergunta{
		perguntaPadrao(1, "marketing"),
		perguntaPadrao(2, "marketing"),
	}
	respostas := map[uint]int{1: 3}

	r := CalcularResultado(respostas, perguntas)

	if r.Pontuacoes["marketing"] != 100 {
		t.Errorf("marketing = %d, esperado 100 (sem resposta fica fora da média)", r.Pontuacoes["marketing"])
	}
}

func TestCalcularResultadoPontosForaDaFaixa(t *testing.T) {
	perguntas := []pergunta.Pergunta{
		perguntaPadrao(1, "marketing"),
		perguntaPadrao(2, "vendas"),
	}
	respostas := map[uint]int{1: 99, 2: -5}

	r := CalcularResultado(respostas, perguntas)

	if r.Pontuacoes["marketing"] != 100 {
		t.Errorf("marketing = %d, esperado 100 (acima do máximo satura)", r.Pontuacoes["marketing"])
	}
	if r.Pontuacoes["vendas"] != 0 {
		t.Errorf("vendas = %d, esperado 0 (negativo vira zero)", r.Pontuacoes["vendas"])
	}
}

func TestCalcularResultadoFortesEAtencao(t *testing.T) {
	perguntas := []pergunta.Pergunta{
		perguntaPadrao(1, "estrategia"),
		perguntaPadrao(2, "gestao"),
		perguntaPadrao(3, "marketing"),
	}
	respostas := map[uint]int{1: 3, 2: 0, 3: 2}

	r := CalcularResultado(respostas, perguntas)

	if !reflect.DeepEqual(r.PontosFortes, []string{"estrategia"}) {
		t.Errorf("pontos fortes = %v, esperado [estrategia]", r.PontosFortes)
	}
	if !reflect.DeepEqual(r.PontosAtencao, []string{"gestao"}) {
		t.Errorf("pontos de atenção = %v, esperado [gestao]", r.PontosAtencao)
	}
	for _, cat := range []string{"estrategia", "gestao", "marketing"} {
		if r.Recomendacoes[cat] == "" {
			t.Errorf("categoria %q sem recomendação", cat)
		}
	}
}

func TestNivelPorPontuacao(t *testing.T) {
	casos := []struct {
		pontuacao int
		nivel     string
	}{
		{0, NivelIniciante},
		{39, NivelIniciante},
		{40, NivelEmergente},
		{59, NivelEmergente},
		{60, NivelIntermediario},
		{79, NivelIntermediario},
		{80, NivelAvancado},
		{100, NivelAvancado},
	}
	for _, c := range casos {
		if got := NivelPorPontuacao(c.pontuacao); got != c.nivel {
			t.Errorf("NivelPorPontuacao(%d) = %q, esperado %q", c.pontuacao, got, c.nivel)
		}
	}
}
