package pipeline

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/MaisResultado/api-consultoria/internal/cache"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// ChaveCacheBoard é a chave da leitura agrupada do funil.
const ChaveCacheBoard = "pipeline:board"

// Handler encapsula DB, repository e o cache de leitura
type Handler struct {
	DB         *gorm.DB
	Repository Repository
	Cache      *cache.Cache
}

func NewHandler(db *gorm.DB, c *cache.Cache) *Handler {
	return &Handler{DB: db, Repository: NewRepository(), Cache: c}
}

type colunaDTO struct {
	Nome  string `json:"nome"`
	Cor   string `json:"cor"`
	Tipo  string `json:"tipo"`
	Ordem int    `json:"ordem"`
}

type leadDTO struct {
	ColunaID         uint    `json:"colunaId"`
	Nome             string  `json:"nome"`
	Contato          string  `json:"contato"`
	Telefone         string  `json:"telefone"`
	Email            string  `json:"email"`
	Pontuacao        int     `json:"pontuacao"`
	PotencialReceita float64 `json:"potencialReceita"`
	Urgencia         string  `json:"urgencia"`
}

type moverLeadRequest struct {
	ColunaID uint `json:"colunaId"`
}

func tipoValido(tipo string) bool {
	switch tipo {
	case ColunaNormal, ColunaGanho, ColunaPerdido:
		return true
	}
	return false
}

/* ================== Board ================== */

// Board trata GET /pipeline: colunas na ordem configurada com leads e totais
func (h *Handler) Board(w http.ResponseWriter, r *http.Request) {
	var grupos []GrupoColuna
	if !h.Cache.BuscarJSON(r.Context(), ChaveCacheBoard, &grupos) {
		colunas, err := h.Repository.ListarColunas(h.DB)
		if err != nil {
			http.Error(w, "Erro ao listar colunas", http.StatusInternalServerError)
			return
		}
		leads, err := h.Repository.ListarLeads(h.DB)
		if err != nil {
			http.Error(w, "Erro ao listar leads", http.StatusInternalServerError)
			return
		}
		grupos = AgruparPorColuna(colunas, leads)
		h.Cache.GravarJSON(r.Context(), ChaveCacheBoard, grupos)
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(grupos)
}

/* ================== Colunas ================== */

// CriarColuna trata POST /colunas
func (h *Handler) CriarColuna(w http.ResponseWriter, r *http.Request) {
	var dto colunaDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(dto.Nome) == "" {
		http.Error(w, "O campo 'nome' é obrigatório", http.StatusBadRequest)
		return
	}
	if dto.Tipo == "" {
		dto.Tipo = ColunaNormal
	}
	if !tipoValido(dto.Tipo) {
		http.Error(w, "Tipo de coluna inválido", http.StatusBadRequest)
		return
	}

	c := Coluna{Nome: strings.TrimSpace(dto.Nome), Cor: dto.Cor, Tipo: dto.Tipo, Ordem: dto.Ordem}
	if c.Cor == "" {
		c.Cor = "#3b82f6"
	}
	if err := h.Repository.SalvarColuna(h.DB, &c); err != nil {
		http.Error(w, "Erro ao salvar coluna", http.StatusInternalServerError)
		return
	}
	h.Cache.Invalidar(r.Context(), ChaveCacheBoard)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(c)
}

// ListarColunas trata GET /colunas
func (h *Handler) ListarColunas(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repository.ListarColunas(h.DB)
	if err != nil {
		http.Error(w, "Erro ao listar colunas", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

// AtualizarColuna trata PUT /colunas/{id}
func (h *Handler) AtualizarColuna(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	existente, err := h.Repository.BuscarColuna(h.DB, uint(id))
	if err != nil {
		http.Error(w, "Coluna não encontrada", http.StatusNotFound)
		return
	}

	var dto colunaDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if dto.Tipo != "" && !tipoValido(dto.Tipo) {
		http.Error(w, "Tipo de coluna inválido", http.StatusBadRequest)
		return
	}

	existente.Nome = dto.Nome
	if dto.Cor != "" {
		existente.Cor = dto.Cor
	}
	if dto.Tipo != "" {
		existente.Tipo = dto.Tipo
	}
	existente.Ordem = dto.Ordem

	if err := h.Repository.AtualizarColuna(h.DB, existente); err != nil {
		http.Error(w, "Erro ao atualizar coluna", http.StatusInternalServerError)
		return
	}
	h.Cache.Invalidar(r.Context(), ChaveCacheBoard)

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(existente)
}

// DeletarColuna trata DELETE /colunas/{id}. O funil precisa de ao menos uma
// coluna: com uma só restante, a exclusão é recusada.
func (h *Handler) DeletarColuna(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	if _, err := h.Repository.BuscarColuna(h.DB, uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "Coluna não encontrada", http.StatusNotFound)
			return
		}
		http.Error(w, "Erro ao buscar coluna", http.StatusInternalServerError)
		return
	}

	total, err := h.Repository.ContarColunas(h.DB)
	if err != nil {
		http.Error(w, "Erro ao contar colunas", http.StatusInternalServerError)
		return
	}
	if total <= 1 {
		http.Error(w, "O pipeline precisa de ao menos uma coluna", http.StatusConflict)
		return
	}

	if err := h.Repository.DeletarColuna(h.DB, uint(id)); err != nil {
		http.Error(w, "Erro ao excluir coluna", http.StatusInternalServerError)
		return
	}
	h.Cache.Invalidar(r.Context(), ChaveCacheBoard)
	w.WriteHeader(http.StatusNoContent)
}

/* ================== Leads ================== */

// CriarLead trata POST /leads
func (h *Handler) CriarLead(w http.ResponseWriter, r *http.Request) {
	var dto leadDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(dto.Nome) == "" {
		http.Error(w, "O campo 'nome' é obrigatório", http.StatusBadRequest)
		return
	}
	if dto.Pontuacao < 0 || dto.Pontuacao > 100 {
		http.Error(w, "A pontuação deve estar entre 0 e 100", http.StatusBadRequest)
		return
	}
	if _, err := h.Repository.BuscarColuna(h.DB, dto.ColunaID); err != nil {
		http.Error(w, "Coluna não encontrada", http.StatusBadRequest)
		return
	}

	l := Lead{
		ColunaID:         dto.ColunaID,
		Nome:             strings.TrimSpace(dto.Nome),
		Contato:          dto.Contato,
		Telefone:         dto.Telefone,
		Email:            dto.Email,
		Pontuacao:        dto.Pontuacao,
		PotencialReceita: dto.PotencialReceita,
		Urgencia:         dto.Urgencia,
	}
	if err := h.Repository.SalvarLead(h.DB, &l); err != nil {
		http.Error(w, "Erro ao salvar lead", http.StatusInternalServerError)
		return
	}
	h.Cache.Invalidar(r.Context(), ChaveCacheBoard)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(l)
}

// BuscarLead trata GET /leads/{id}
func (h *Handler) BuscarLead(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	l, err := h.Repository.BuscarLead(h.DB, uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "Lead não encontrado", http.StatusNotFound)
			return
		}
		http.Error(w, "Erro ao buscar lead", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(l)
}

// AtualizarLead trata PUT /leads/{id}
func (h *Handler) AtualizarLead(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	existente, err := h.Repository.BuscarLead(h.DB, uint(id))
	if err != nil {
		http.Error(w, "Lead não encontrado", http.StatusNotFound)
		return
	}

	var dto leadDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if dto.Pontuacao < 0 || dto.Pontuacao > 100 {
		http.Error(w, "A pontuação deve estar entre 0 e 100", http.StatusBadRequest)
		return
	}

	existente.Nome = dto.Nome
	existente.Contato = dto.Contato
	existente.Telefone = dto.Telefone
	existente.Email = dto.Email
	existente.Pontuacao = dto.Pontuacao
	existente.PotencialReceita = dto.PotencialReceita
	existente.Urgencia = dto.Urgencia

	if err := h.Repository.AtualizarLead(h.DB, existente); err != nil {
		http.Error(w, "Erro ao atualizar lead", http.StatusInternalServerError)
		return
	}
	h.Cache.Invalidar(r.Context(), ChaveCacheBoard)

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(existente)
}

// MoverLead trata POST /leads/{id}/mover, o drop do board. Soltar o lead na
// coluna em que ele já está não gera nenhuma atualização.
func (h *Handler) MoverLead(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	var req moverLeadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}

	l, err := h.Repository.BuscarLead(h.DB, uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "Lead não encontrado", http.StatusNotFound)
			return
		}
		http.Error(w, "Erro ao buscar lead", http.StatusInternalServerError)
		return
	}

	if !DeveMover(*l, req.ColunaID) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(l)
		return
	}

	if _, err := h.Repository.BuscarColuna(h.DB, req.ColunaID); err != nil {
		http.Error(w, "Coluna de destino não encontrada", http.StatusBadRequest)
		return
	}

	if err := h.Repository.MoverLead(h.DB, uint(id), req.ColunaID); err != nil {
		http.Error(w, "Erro ao mover lead", http.StatusInternalServerError)
		return
	}
	h.Cache.Invalidar(r.Context(), ChaveCacheBoard)

	l.ColunaID = req.ColunaID
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(l)
}

// DeletarLead trata DELETE /leads/{id}
func (h *Handler) DeletarLead(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	if _, err := h.Repository.BuscarLead(h.DB, uint(id)); err != nil {
		http.Error(w, "Lead não encontrado", http.StatusNotFound)
		return
	}
	if err := h.Repository.DeletarLead(h.DB, uint(id)); err != nil {
		http.Error(w, "Erro ao excluir lead", http.StatusInternalServerError)
		return
	}
	h.Cache.Invalidar(r.Context(), ChaveCacheBoard)
	w.WriteHeader(http.StatusNoContent)
}
