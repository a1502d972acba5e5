package relatorio

import (
	"fmt"
	"sort"

	"github.com/MaisResultado/api-consultoria/internal/diagnostico"
	"github.com/MaisResultado/api-consultoria/internal/empresa"
	"github.com/jung-kurt/gofpdf"
)

// Geometria da página A4 em milímetros.
const (
	margemEsquerda = 15.0
	margemTopo     = 15.0
	margemDireita  = 15.0
	limiteInferior = 270.0
	larguraUtil    = 210.0 - margemEsquerda - margemDireita
)

// GerarRelatorio monta o PDF do diagnóstico numa sequência fixa de seções.
// Cada seção recebe o cursor vertical corrente e devolve o próximo; antes de
// desenhar, confere se o conteúdo projetado cabe na página e, se não couber,
// recomeça no topo de uma página nova. Campos opcionais ausentes são pulados.
func GerarRelatorio(e empresa.Empresa, d diagnostico.Diagnostico) (*gofpdf.Fpdf, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Diagnóstico Empresarial — %s", e.Nome), true)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.SetTextColor(130, 130, 130)
		pdf.CellFormat(0, 8, tr(fmt.Sprintf("Relatório de diagnóstico — página %d", pdf.PageNo())),
			"", 0, "C", false, 0, "")
	})

	pdf.AddPage()

	y := cabecalho(pdf, tr)
	y = blocoEmpresa(pdf, tr, y, e)
	y = circuloPontuacao(pdf, tr, y, d)
	y = tabelaCategorias(pdf, tr, y, d)
	y = caixasFortesAtencao(pdf, tr, y, d)
	y = listaRecomendacoes(pdf, tr, y, d)
	y = secaoObservacoes(pdf, tr, y, d)
	chamadaFinal(pdf, tr, y)

	if pdf.Err() {
		return nil, pdf.Error()
	}
	return pdf, nil
}

// quebraSePreciso devolve o cursor de desenho, abrindo página nova quando a
// altura projetada estoura o limite inferior.
func quebraSePreciso(pdf *gofpdf.Fpdf, y, altura float64) float64 {
	if y+altura > limiteInferior {
		pdf.AddPage()
		return margemTopo
	}
	return y
}

func cabecalho(pdf *gofpdf.Fpdf, tr func(string) string) float64 {
	pdf.SetFillColor(30, 58, 95)
	pdf.Rect(0, 0, 210, 30, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetXY(margemEsquerda, 8)
	pdf.CellFormat(larguraUtil, 10, tr("Diagnóstico Empresarial"), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetX(margemEsquerda)
	pdf.CellFormat(larguraUtil, 6, tr("Avaliação de maturidade de gestão"), "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	return 36
}

func blocoEmpresa(pdf *gofpdf.Fpdf, tr func(string) string, y float64, e empresa.Empresa) float64 {
	y = quebraSePreciso(pdf, y, 24)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.SetXY(margemEsquerda, y)
	pdf.CellFormat(larguraUtil, 7, tr(e.Nome), "", 1, "L", false, 0, "")
	y += 7

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(90, 90, 90)
	linhas := []string{}
	if e.Setor != "" {
		linhas = append(linhas, "Setor: "+e.Setor)
	}
	if e.Contato != "" {
		linhas = append(linhas, "Contato: "+e.Contato)
	}
	if e.Email != "" {
		linhas = append(linhas, "E-mail: "+e.Email)
	}
	for _, linha := range linhas {
		pdf.SetXY(margemEsquerda, y)
		pdf.CellFormat(larguraUtil, 5, tr(linha), "", 1, "L", false, 0, "")
		y += 5
	}
	pdf.SetTextColor(0, 0, 0)
	return y + 4
}

func circuloPontuacao(pdf *gofpdf.Fpdf, tr func(string) string, y float64, d diagnostico.Diagnostico) float64 {
	const altura = 48.0
	y = quebraSePreciso(pdf, y, altura)

	cx := 210.0 / 2
	cy := y + 20
	pdf.SetDrawColor(30, 58, 95)
	pdf.SetLineWidth(1.2)
	pdf.Circle(cx, cy, 17, "D")

	pdf.SetFont("Helvetica", "B", 20)
	pdf.SetXY(cx-17, cy-7)
	pdf.CellFormat(34, 10, fmt.Sprintf("%d%%", d.PontuacaoGeral), "", 0, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetXY(cx-17, cy+2)
	pdf.CellFormat(34, 5, tr("geral"), "", 0, "C", false, 0, "")

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(margemEsquerda, y+40)
	pdf.CellFormat(larguraUtil, 6, tr("Nível de maturidade: "+d.NivelMaturidade), "", 1, "C", false, 0, "")
	pdf.SetLineWidth(0.2)
	return y + altura + 4
}

func categoriasOrdenadas(pontuacoes map[string]int) []string {
	cats := make([]string, 0, len(pontuacoes))
	for c := range pontuacoes {
		cats = append(cats, c)
	}
	sort.Strings(cats)
	return cats
}

func tabelaCategorias(pdf *gofpdf.Fpdf, tr func(string) string, y float64, d diagnostico.Diagnostico) float64 {
	if len(d.Pontuacoes) == 0 {
		return y
	}
	linhaAltura := 8.0
	y = quebraSePreciso(pdf, y, 10+linhaAltura)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(margemEsquerda, y)
	pdf.CellFormat(larguraUtil, 7, tr("Pontuação por categoria"), "", 1, "L", false, 0, "")
	y += 10

	larguraRotulo := 45.0
	larguraBarra := larguraUtil - larguraRotulo - 15

	for _, cat := range categoriasOrdenadas(d.Pontuacoes) {
		y = quebraSePreciso(pdf, y, linhaAltura)
		nota := d.Pontuacoes[cat]

		pdf.SetFont("Helvetica", "", 10)
		pdf.SetXY(margemEsquerda, y)
		pdf.CellFormat(larguraRotulo, 6, tr(cat), "", 0, "L", false, 0, "")

		// trilho + barra proporcional à nota
		pdf.SetFillColor(230, 230, 230)
		pdf.Rect(margemEsquerda+larguraRotulo, y+1, larguraBarra, 4, "F")
		pdf.SetFillColor(30, 58, 95)
		pdf.Rect(margemEsquerda+larguraRotulo, y+1, larguraBarra*float64(nota)/100, 4, "F")

		pdf.SetXY(margemEsquerda+larguraRotulo+larguraBarra+2, y)
		pdf.CellFormat(13, 6, fmt.Sprintf("%d%%", nota), "", 0, "R", false, 0, "")
		y += linhaAltura
	}
	return y + 4
}

func caixasFortesAtencao(pdf *gofpdf.Fpdf, tr func(string) string, y float64, d diagnostico.Diagnostico) float64 {
	if len(d.PontosFortes) == 0 && len(d.PontosAtencao) == 0 {
		return y
	}
	maior := len(d.PontosFortes)
	if len(d.PontosAtencao) > maior {
		maior = len(d.PontosAtencao)
	}
	altura := 14 + float64(maior)*5
	y = quebraSePreciso(pdf, y, altura)

	larguraCaixa := (larguraUtil - 6) / 2
	desenhaCaixa := func(x float64, titulo string, itens []string, r, g, b int) {
		pdf.SetFillColor(r, g, b)
		pdf.Rect(x, y, larguraCaixa, altura, "F")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.SetXY(x+3, y+3)
		pdf.CellFormat(larguraCaixa-6, 6, tr(titulo), "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		linhaY := y + 10
		for _, item := range itens {
			pdf.SetXY(x+3, linhaY)
			pdf.CellFormat(larguraCaixa-6, 5, tr("• "+item), "", 1, "L", false, 0, "")
			linhaY += 5
		}
	}

	desenhaCaixa(margemEsquerda, "Pontos fortes", d.PontosFortes, 232, 245, 233)
	desenhaCaixa(margemEsquerda+larguraCaixa+6, "Pontos de atenção", d.PontosAtencao, 253, 236, 234)
	return y + altura + 6
}

func listaRecomendacoes(pdf *gofpdf.Fpdf, tr func(string) string, y float64, d diagnostico.Diagnostico) float64 {
	if len(d.Recomendacoes) == 0 {
		return y
	}
	y = quebraSePreciso(pdf, y, 16)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(margemEsquerda, y)
	pdf.CellFormat(larguraUtil, 7, tr("Recomendações"), "", 1, "L", false, 0, "")
	y += 9

	cats := make([]string, 0, len(d.Recomendacoes))
	for cat := range d.Recomendacoes {
		cats = append(cats, cat)
	}
	sort.Strings(cats)
	for _, cat := range cats {
		texto := d.Recomendacoes[cat]
		// projeção grosseira: ~90 caracteres por linha de MultiCell
		linhas := float64(len(texto)/90 + 1)
		y = quebraSePreciso(pdf, y, 6+linhas*5)

		pdf.SetFont("Helvetica", "B", 10)
		pdf.SetXY(margemEsquerda, y)
		pdf.CellFormat(larguraUtil, 5, tr(cat), "", 1, "L", false, 0, "")
		y += 5

		pdf.SetFont("Helvetica", "", 9)
		pdf.SetXY(margemEsquerda, y)
		pdf.MultiCell(larguraUtil, 4.5, tr(texto), "", "L", false)
		y = pdf.GetY() + 3
	}
	return y + 2
}

func secaoObservacoes(pdf *gofpdf.Fpdf, tr func(string) string, y float64, d diagnostico.Diagnostico) float64 {
	if d.Observacoes == "" {
		return y
	}
	linhas := float64(len(d.Observacoes)/90 + 1)
	y = quebraSePreciso(pdf, y, 10+linhas*5)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(margemEsquerda, y)
	pdf.CellFormat(larguraUtil, 7, tr("Observações"), "", 1, "L", false, 0, "")
	y += 8

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetXY(margemEsquerda, y)
	pdf.MultiCell(larguraUtil, 4.5, tr(d.Observacoes), "", "L", false)
	return pdf.GetY() + 4
}

func chamadaFinal(pdf *gofpdf.Fpdf, tr func(string) string, y float64) {
	const altura = 22.0
	y = quebraSePreciso(pdf, y, altura)

	pdf.SetFillColor(30, 58, 95)
	pdf.Rect(margemEsquerda, y, larguraUtil, altura, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetXY(margemEsquerda+4, y+4)
	pdf.CellFormat(larguraUtil-8, 6, tr("Vamos evoluir juntos?"), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetXY(margemEsquerda+4, y+11)
	pdf.CellFormat(larguraUtil-8, 5,
		tr("Agende uma reunião com nossa equipe para montar o plano de ação do seu diagnóstico."),
		"", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
}
