package acompanhamento

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// Handler encapsula DB e repository
type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db, Repository: NewRepository()}
}

type acompanhamentoDTO struct {
	Mes         string                 `json:"mes"`
	ScoreGeral  *float64               `json:"scoreGeral"`
	ROI         *float64               `json:"roi"`
	Faturamento *float64               `json:"faturamento"`
	Acoes       json.RawMessage        `json:"acoes"`
	Comparativo map[string]Comparativo `json:"comparativo"`
}

func mesValido(mes string) bool {
	_, err := time.Parse("2006-01", mes)
	return err == nil
}

func acoesParaPersistir(bruto json.RawMessage) json.RawMessage {
	acoes := NormalizarAcoes(bruto)
	if acoes == nil {
		acoes = []Acao{}
	}
	raw, _ := json.Marshal(acoes)
	return raw
}

// Criar trata POST /empresas/{id}/acompanhamentos
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	empresaID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID da empresa inválido", http.StatusBadRequest)
		return
	}

	var dto acompanhamentoDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if !mesValido(dto.Mes) {
		http.Error(w, "O campo 'mes' deve estar no formato AAAA-MM", http.StatusBadRequest)
		return
	}

	// Um check-up por empresa por mês
	existe, err := h.Repository.ExistePorEmpresaMes(h.DB, uint(empresaID), dto.Mes)
	if err != nil {
		http.Error(w, "Erro ao verificar acompanhamento", http.StatusInternalServerError)
		return
	}
	if existe {
		http.Error(w, fmt.Sprintf("Já existe acompanhamento para o mês %s", dto.Mes), http.StatusConflict)
		return
	}

	// Normaliza a coluna de ações na fronteira: o que persiste é sempre o
	// array, mesmo que o cliente tenha mandado a string codificada
	acoes := acoesParaPersistir(dto.Acoes)
	if dto.Comparativo == nil {
		dto.Comparativo = map[string]Comparativo{}
	}

	a := Acompanhamento{
		EmpresaID:   uint(empresaID),
		Mes:         dto.Mes,
		ScoreGeral:  dto.ScoreGeral,
		ROI:         dto.ROI,
		Faturamento: dto.Faturamento,
		Acoes:       acoes,
		Comparativo: dto.Comparativo,
	}
	if err := h.Repository.Salvar(h.DB, &a); err != nil {
		http.Error(w, "Erro ao salvar acompanhamento", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(a)
}

// ListarPorEmpresa trata GET /empresas/{id}/acompanhamentos
func (h *Handler) ListarPorEmpresa(w http.ResponseWriter, r *http.Request) {
	empresaID, _ := strconv.Atoi(mux.Vars(r)["id"])
	list, err := h.Repository.ListarPorEmpresa(h.DB, uint(empresaID))
	if err != nil {
		http.Error(w, "Erro ao listar acompanhamentos", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

// Atualizar trata PUT /acompanhamentos/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	existente, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "Acompanhamento não encontrado", http.StatusNotFound)
			return
		}
		http.Error(w, "Erro ao buscar acompanhamento", http.StatusInternalServerError)
		return
	}

	var dto acompanhamentoDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}

	if dto.Mes != "" && dto.Mes != existente.Mes {
		if !mesValido(dto.Mes) {
			http.Error(w, "O campo 'mes' deve estar no formato AAAA-MM", http.StatusBadRequest)
			return
		}
		existe, err := h.Repository.ExistePorEmpresaMes(h.DB, existente.EmpresaID, dto.Mes)
		if err != nil {
			http.Error(w, "Erro ao verificar acompanhamento", http.StatusInternalServerError)
			return
		}
		if existe {
			http.Error(w, fmt.Sprintf("Já existe acompanhamento para o mês %s", dto.Mes), http.StatusConflict)
			return
		}
		existente.Mes = dto.Mes
	}

	existente.ScoreGeral = dto.ScoreGeral
	existente.ROI = dto.ROI
	existente.Faturamento = dto.Faturamento
	existente.Acoes = acoesParaPersistir(dto.Acoes)
	if dto.Comparativo != nil {
		existente.Comparativo = dto.Comparativo
	}

	if err := h.Repository.Atualizar(h.DB, existente); err != nil {
		http.Error(w, "Erro ao atualizar acompanhamento", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(existente)
}

// Deletar trata DELETE /acompanhamentos/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	if _, err := h.Repository.BuscarPorID(h.DB, uint(id)); err != nil {
		http.Error(w, "Acompanhamento não encontrado", http.StatusNotFound)
		return
	}
	if err := h.Repository.Deletar(h.DB, uint(id)); err != nil {
		http.Error(w, "Erro ao excluir acompanhamento", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Metricas trata GET /empresas/{id}/metricas
func (h *Handler) Metricas(w http.ResponseWriter, r *http.Request) {
	empresaID, _ := strconv.Atoi(mux.Vars(r)["id"])
	list, err := h.Repository.ListarPorEmpresa(h.DB, uint(empresaID))
	if err != nil {
		http.Error(w, "Erro ao carregar acompanhamentos", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(CalcularMetricas(list))
}

// Exportar trata GET /empresas/{id}/acompanhamentos/export, planilha .xlsx
func (h *Handler) Exportar(w http.ResponseWriter, r *http.Request) {
	empresaID, _ := strconv.Atoi(mux.Vars(r)["id"])
	list, err := h.Repository.ListarPorEmpresa(h.DB, uint(empresaID))
	if err != nil {
		http.Error(w, "Erro ao carregar acompanhamentos", http.StatusInternalServerError)
		return
	}

	planilha, err := ExportarPlanilha(list)
	if err != nil {
		http.Error(w, "Erro ao gerar planilha", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf(`attachment; filename="acompanhamentos-empresa-%d.xlsx"`, empresaID))
	if err := planilha.Write(w); err != nil {
		http.Error(w, "Erro ao enviar planilha", http.StatusInternalServerError)
		return
	}
}
