package acompanhamento

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const planilhaAba = "Acompanhamentos"

// ExportarPlanilha monta um .xlsx com um check-up por linha, na ordem
// recebida, para o consultor levar à reunião mensal.
func ExportarPlanilha(lista []Acompanhamento) (*excelize.File, error) {
	f := excelize.NewFile()
	idx, err := f.NewSheet(planilhaAba)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	cabecalho := []string{"Mês", "Score geral", "ROI", "Faturamento", "Ações concluídas", "Ações totais"}
	for col, titulo := range cabecalho {
		celula, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(planilhaAba, celula, titulo); err != nil {
			return nil, err
		}
	}

	for linha, a := range lista {
		acoes := NormalizarAcoes(a.Acoes)
		concluidas := 0
		for _, acao := range acoes {
			if acao.Status == AcaoConcluida {
				concluidas++
			}
		}

		valores := []any{
			a.Mes,
			floatOuVazio(a.ScoreGeral),
			floatOuVazio(a.ROI),
			floatOuVazio(a.Faturamento),
			concluidas,
			len(acoes),
		}
		for col, v := range valores {
			celula, _ := excelize.CoordinatesToCellName(col+1, linha+2)
			if err := f.SetCellValue(planilhaAba, celula, v); err != nil {
				return nil, fmt.Errorf("erro ao escrever célula %s: %w", celula, err)
			}
		}
	}

	return f, nil
}

func floatOuVazio(v *float64) any {
	if v == nil {
		return ""
	}
	return *v
}
