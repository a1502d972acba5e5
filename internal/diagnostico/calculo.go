package diagnostico

import (
	"math"
	"sort"

	"github.com/MaisResultado/api-consultoria/internal/pergunta"
)

// Níveis de maturidade, do mais alto para o mais baixo.
const (
	NivelAvancado      = "Avançado"
	NivelIntermediario = "Intermediário"
	NivelEmergente     = "Emergente"
	NivelIniciante     = "Iniciante"
)

const (
	limiarAvancado      = 80
	limiarIntermediario = 60
	limiarEmergente     = 40

	// Limiares independentes: uma categoria pode não satisfazer nenhum
	// dos dois e, se forem reconfigurados com sobreposição, ambos.
	LimiarPontoForte   = 75
	LimiarPontoAtencao = 40
)

// Resultado é a saída completa do motor de pontuação.
type Resultado struct {
	PontuacaoGeral  int               `json:"pontuacaoGeral"`
	Pontuacoes      map[string]int    `json:"pontuacoes"`
	NivelMaturidade string            `json:"nivelMaturidade"`
	PontosFortes    []string          `json:"pontosFortes"`
	PontosAtencao   []string          `json:"pontosAtencao"`
	Recomendacoes   map[string]string `json:"recomendacoes"`
}

// CalcularResultado agrupa as perguntas respondidas por categoria, tira a
// média percentual de cada categoria e deriva pontuação geral, nível de
// maturidade, pontos fortes/de atenção e recomendações.
//
// A pontuação geral é a média das médias por categoria: categorias pesam
// igual, não importa quantas perguntas cada uma tem. Perguntas sem resposta
// ficam fora da média da sua categoria; a obrigatoriedade é travada no
// formulário, não aqui. Entrada vazia devolve pontuação 0 e o nível mais
// baixo, nunca um panic.
func CalcularResultado(respostas map[uint]int, perguntas []pergunta.Pergunta) Resultado {
	somas := map[string]float64{}
	contagens := map[string]int{}

	for _, p := range perguntas {
		pontos, respondida := respostas[p.ID]
		if !respondida {
			continue
		}
		max := p.PontuacaoMaxima()
		percentual := 0.0
		if max > 0 {
			if pontos < 0 {
				pontos = 0
			}
			if pontos > max {
				pontos = max
			}
			percentual = float64(pontos) / float64(max) * 100
		}
		somas[p.Categoria] += percentual
		contagens[p.Categoria]++
	}

	pontuacoes := make(map[string]int, len(somas))
	categorias := make([]string, 0, len(somas))
	for cat := range somas {
		pontuacoes[cat] = int(math.Round(somas[cat] / float64(contagens[cat])))
		categorias = append(categorias, cat)
	}
	sort.Strings(categorias)

	geral := 0
	if len(categorias) > 0 {
		soma := 0
		for _, cat := range categorias {
			soma += pontuacoes[cat]
		}
		geral = int(math.Round(float64(soma) / float64(len(categorias))))
	}

	fortes := []string{}
	atencao := []string{}
	recomendacoes := make(map[string]string, len(categorias))
	for _, cat := range categorias {
		nota := pontuacoes[cat]
		if nota >= LimiarPontoForte {
			fortes = append(fortes, cat)
		}
		if nota <= LimiarPontoAtencao {
			atencao = append(atencao, cat)
		}
		recomendacoes[cat] = RecomendacaoPara(cat, nota)
	}

	return Resultado{
		PontuacaoGeral:  geral,
		Pontuacoes:      pontuacoes,
		NivelMaturidade: NivelPorPontuacao(geral),
		PontosFortes:    fortes,
		PontosAtencao:   atencao,
		Recomendacoes:   recomendacoes,
	}
}

// NivelPorPontuacao é a tabela fixa de faixas da pontuação geral.
func NivelPorPontuacao(pontuacao int) string {
	switch {
	case pontuacao >= limiarAvancado:
		return NivelAvancado
	case pontuacao >= limiarIntermediario:
		return NivelIntermediario
	case pontuacao >= limiarEmergente:
		return NivelEmergente
	default:
		return NivelIniciante
	}
}
