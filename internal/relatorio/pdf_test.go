package relatorio

import (
	"bytes"
	"strings"
	"testing"

	"github.com/MaisResultado/api-consultoria/internal/diagnostico"
	"github.com/MaisResultado/api-consultoria/internal/empresa"
)

func diagnosticoCompleto() diagnostico.Diagnostico {
	return diagnostico.Diagnostico{
		EmpresaID:       1,
		PontuacaoGeral:  67,
		Pontuacoes:      map[string]int{"marketing": 100, "vendas": 33},
		NivelMaturidade: diagnostico.NivelIntermediario,
		PontosFortes:    []string{"marketing"},
		PontosAtencao:   []string{"vendas"},
		Recomendacoes: map[string]string{
			"marketing": "Mantenha a consistência das campanhas.",
			"vendas":    "Estruture um processo comercial com etapas claras.",
		},
		Observacoes: "Empresa em fase de estruturação do time comercial.",
		Status:      diagnostico.StatusConcluido,
	}
}

func TestGerarRelatorio(t *testing.T) {
	e := empresa.Empresa{Nome: "ACME Consultoria", Contato: "João", Email: "joao@acme.com.br", Setor: "Serviços"}

	pdf, err := GerarRelatorio(e, diagnosticoCompleto())
	if err != nil {
		t.Fatalf("GerarRelatorio: %v", err)
	}
	if pdf.PageCount() < 1 {
		t.Fatalf("páginas = %d, esperado ao menos 1", pdf.PageCount())
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		t.Fatalf("output: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "%PDF") {
		t.Error("saída não começa com o cabeçalho %PDF")
	}
}

func TestGerarRelatorioCamposOpcionaisAusentes(t *testing.T) {
	e := empresa.Empresa{Nome: "Empresa Mínima"}
	d := diagnostico.Diagnostico{
		EmpresaID:       2,
		NivelMaturidade: diagnostico.NivelIniciante,
		Status:          diagnostico.StatusConcluido,
	}

	pdf, err := GerarRelatorio(e, d)
	if err != nil {
		t.Fatalf("GerarRelatorio sem opcionais: %v", err)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		t.Fatalf("output: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("PDF vazio")
	}
}

func TestGerarRelatorioMuitasCategorias(t *testing.T) {
	// Conteúdo longo o bastante para forçar quebra de página.
	d := diagnosticoCompleto()
	for _, cat := range []string{"estrategia", "gestao", "financeiro", "pessoas", "operacoes", "tecnologia", "inovacao", "cultura"} {
		d.Pontuacoes[cat] = 55
		d.Recomendacoes[cat] = strings.Repeat("Recomendação detalhada para evolução gradual da área. ", 4)
	}

	pdf, err := GerarRelatorio(empresa.Empresa{Nome: "ACME"}, d)
	if err != nil {
		t.Fatalf("GerarRelatorio: %v", err)
	}
	if pdf.PageCount() < 2 {
		t.Errorf("páginas = %d, conteúdo longo deveria quebrar página", pdf.PageCount())
	}
}
