package relatorio

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/MaisResultado/api-consultoria/internal/diagnostico"
	"github.com/MaisResultado/api-consultoria/internal/empresa"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// Handler gera o PDF de um diagnóstico para download
type Handler struct {
	DB           *gorm.DB
	Diagnosticos diagnostico.Repository
	Empresas     empresa.Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:           db,
		Diagnosticos: diagnostico.NewRepository(),
		Empresas:     empresa.NewRepository(),
	}
}

func nomeArquivo(nomeEmpresa string) string {
	slug := strings.ToLower(strings.TrimSpace(nomeEmpresa))
	slug = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r == ' ' || r == '-' || r == '_':
			return '-'
		}
		return -1
	}, slug)
	if slug == "" {
		slug = "empresa"
	}
	return fmt.Sprintf("diagnostico-%s-%s.pdf", slug, uuid.NewString()[:8])
}

// Baixar trata GET /diagnosticos/{id}/relatorio
func (h *Handler) Baixar(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	d, err := h.Diagnosticos.BuscarPorID(h.DB, uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "Diagnóstico não encontrado", http.StatusNotFound)
			return
		}
		http.Error(w, "Erro ao buscar diagnóstico", http.StatusInternalServerError)
		return
	}

	e, err := h.Empresas.BuscarPorID(h.DB, d.EmpresaID)
	if err != nil {
		http.Error(w, "Empresa do diagnóstico não encontrada", http.StatusNotFound)
		return
	}

	pdf, err := GerarRelatorio(*e, *d)
	if err != nil {
		http.Error(w, "Erro ao gerar relatório", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, nomeArquivo(e.Nome)))
	if err := pdf.Output(w); err != nil {
		http.Error(w, "Erro ao enviar relatório", http.StatusInternalServerError)
		return
	}
}
