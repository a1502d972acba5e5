package acompanhamento

// Metricas agrega a evolução mensal de uma empresa. Todos os valores são
// recalculados do zero a cada leitura; nada é mantido incrementalmente.
type Metricas struct {
	TotalAcompanhamentos int     `json:"totalAcompanhamentos"`
	VariacaoScore        float64 `json:"variacaoScore"` // % entre primeiro e último score_geral
	MediaScore           float64 `json:"mediaScore"`
	MediaROI             float64 `json:"mediaRoi"`
	MediaFaturamento     float64 `json:"mediaFaturamento"`
	AcoesConcluidas      int     `json:"acoesConcluidas"`
}

// CalcularMetricas recebe os check-ups de uma empresa ordenados por mês.
//
// A variação é calculada entre o primeiro e o último score_geral presentes;
// com menos de dois valores, ou primeiro valor zero, fica em 0, nunca NaN
// nem divisão por zero. As médias consideram só os check-ups com valor
// preenchido; conjunto vazio resulta em 0.
func CalcularMetricas(lista []Acompanhamento) Metricas {
	m := Metricas{TotalAcompanhamentos: len(lista)}

	var scores, rois, faturamentos []float64
	for _, a := range lista {
		if a.ScoreGeral != nil {
			scores = append(scores, *a.ScoreGeral)
		}
		if a.ROI != nil {
			rois = append(rois, *a.ROI)
		}
		if a.Faturamento != nil {
			faturamentos = append(faturamentos, *a.Faturamento)
		}
		for _, acao := range NormalizarAcoes(a.Acoes) {
			if acao.Status == AcaoConcluida {
				m.AcoesConcluidas++
			}
		}
	}

	if len(scores) >= 2 && scores[0] != 0 {
		primeiro := scores[0]
		ultimo := scores[len(scores)-1]
		m.VariacaoScore = (ultimo - primeiro) / primeiro * 100
	}

	m.MediaScore = media(scores)
	m.MediaROI = media(rois)
	m.MediaFaturamento = media(faturamentos)
	return m
}

func media(valores []float64) float64 {
	if len(valores) == 0 {
		return 0
	}
	soma := 0.0
	for _, v := range valores {
		soma += v
	}
	return soma / float64(len(valores))
}
