package acompanhamento

import (
	"encoding/json"
	"testing"
)

func TestExportarPlanilha(t *testing.T) {
	acoes, _ := json.Marshal([]Acao{
		{Acao: "revisar funil", Status: AcaoConcluida},
		{Acao: "contratar SDR", Status: AcaoPendente},
	})
	lista := []Acompanhamento{
		{Mes: "2026-01", ScoreGeral: f(55), ROI: f(1.8), Acoes: acoes},
		{Mes: "2026-02", ScoreGeral: f(62)},
	}

	arquivo, err := ExportarPlanilha(lista)
	if err != nil {
		t.Fatalf("ExportarPlanilha: %v", err)
	}
	defer func() { _ = arquivo.Close() }()

	if got, _ := arquivo.GetCellValue(planilhaAba, "A1"); got != "Mês" {
		t.Errorf("A1 = %q, esperado cabeçalho Mês", got)
	}
	if got, _ := arquivo.GetCellValue(planilhaAba, "A2"); got != "2026-01" {
		t.Errorf("A2 = %q, esperado 2026-01", got)
	}
	if got, _ := arquivo.GetCellValue(planilhaAba, "B2"); got != "55" {
		t.Errorf("B2 = %q, esperado 55", got)
	}
	if got, _ := arquivo.GetCellValue(planilhaAba, "E2"); got != "1" {
		t.Errorf("E2 = %q, esperado 1 ação concluída", got)
	}
	if got, _ := arquivo.GetCellValue(planilhaAba, "F2"); got != "2" {
		t.Errorf("F2 = %q, esperado 2 ações no total", got)
	}
	if got, _ := arquivo.GetCellValue(planilhaAba, "C3"); got != "" {
		t.Errorf("C3 = %q, ROI ausente deveria ficar vazio", got)
	}
}

func TestExportarPlanilhaVazia(t *testing.T) {
	arquivo, err := ExportarPlanilha(nil)
	if err != nil {
		t.Fatalf("ExportarPlanilha: %v", err)
	}
	defer func() { _ = arquivo.Close() }()

	if got, _ := arquivo.GetCellValue(planilhaAba, "A1"); got != "Mês" {
		t.Errorf("A1 = %q, cabeçalho deveria existir mesmo sem linhas", got)
	}
	if got, _ := arquivo.GetCellValue(planilhaAba, "A2"); got != "" {
		t.Errorf("A2 = %q, esperado vazio", got)
	}
}
