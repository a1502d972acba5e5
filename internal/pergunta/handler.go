package pergunta

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

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

type perguntaDTO struct {
	Texto       string  `json:"texto"`
	Categoria   string  `json:"categoria"`
	Opcoes      []Opcao `json:"opcoes"`
	Obrigatoria bool    `json:"obrigatoria"`
	Ordem       int     `json:"ordem"`
}

type patchAtivaRequest struct {
	Ativa bool `json:"ativa"`
}

// Criar trata POST /perguntas
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var dto perguntaDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(dto.Texto) == "" || strings.TrimSpace(dto.Categoria) == "" {
		http.Error(w, "Os campos 'texto' e 'categoria' são obrigatórios", http.StatusBadRequest)
		return
	}
	if dto.Opcoes == nil {
		dto.Opcoes = []Opcao{}
	}

	p := Pergunta{
		Texto:       strings.TrimSpace(dto.Texto),
		Categoria:   strings.TrimSpace(dto.Categoria),
		Opcoes:      dto.Opcoes,
		Obrigatoria: dto.Obrigatoria,
		Ativa:       true,
		Ordem:       dto.Ordem,
	}
	if err := h.Repository.Salvar(h.DB, &p); err != nil {
		http.Error(w, "Erro ao salvar pergunta", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(p)
}

// Listar trata GET /perguntas; ?ativas=true restringe às perguntas ativas
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	var (
		list []Pergunta
		err  error
	)
	if r.URL.Query().Get("ativas") == "true" {
		list, err = h.Repository.ListarAtivas(h.DB)
	} else {
		list, err = h.Repository.Listar(h.DB)
	}
	if err != nil {
		http.Error(w, "Erro ao listar perguntas", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

// BuscarPorID trata GET /perguntas/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	p, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "Pergunta não encontrada", http.StatusNotFound)
			return
		}
		http.Error(w, "Erro ao buscar pergunta", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(p)
}

// Atualizar trata PUT /perguntas/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	existente, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "Pergunta não encontrada", http.StatusNotFound)
		return
	}

	var dto perguntaDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if dto.Opcoes == nil {
		dto.Opcoes = []Opcao{}
	}

	existente.Texto = dto.Texto
	existente.Categoria = dto.Categoria
	existente.Opcoes = dto.Opcoes
	existente.Obrigatoria = dto.Obrigatoria
	existente.Ordem = dto.Ordem

	if err := h.Repository.Atualizar(h.DB, existente); err != nil {
		http.Error(w, "Erro ao atualizar pergunta", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(existente)
}

// AtualizarAtiva trata PATCH /perguntas/{id}/ativa: desativa em vez de apagar
func (h *Handler) AtualizarAtiva(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	var req patchAtivaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}

	if _, err := h.Repository.BuscarPorID(h.DB, uint(id)); err != nil {
		http.Error(w, "Pergunta não encontrada", http.StatusNotFound)
		return
	}
	if err := h.Repository.AtualizarAtiva(h.DB, uint(id), req.Ativa); err != nil {
		http.Error(w, "Erro ao atualizar pergunta", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Deletar trata DELETE /perguntas/{id} (exclusão definitiva)
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	if _, err := h.Repository.BuscarPorID(h.DB, uint(id)); err != nil {
		http.Error(w, "Pergunta não encontrada", http.StatusNotFound)
		return
	}
	if err := h.Repository.Deletar(h.DB, uint(id)); err != nil {
		http.Error(w, "Erro ao excluir pergunta", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
