package plano

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db, Repository: NewRepository()}
}

type planoDTO struct {
	Nome      string   `json:"nome"`
	Objetivo  string   `json:"objetivo"`
	Tarefas   []string `json:"tarefas"`
	Preco     float64  `json:"preco"`
	Categoria string   `json:"categoria"`
	Ativo     *bool    `json:"ativo"`
}

// Criar trata POST /planos (somente admin)
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var dto planoDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(dto.Nome) == "" {
		http.Error(w, "O campo 'nome' é obrigatório", http.StatusBadRequest)
		return
	}
	if dto.Tarefas == nil {
		dto.Tarefas = []string{}
	}

	p := Plano{
		Nome:      strings.TrimSpace(dto.Nome),
		Objetivo:  dto.Objetivo,
		Tarefas:   dto.Tarefas,
		Preco:     dto.Preco,
		Categoria: dto.Categoria,
		Ativo:     true,
	}
	if dto.Ativo != nil {
		p.Ativo = *dto.Ativo
	}
	if err := h.Repository.Salvar(h.DB, &p); err != nil {
		http.Error(w, "Erro ao salvar plano", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(p)
}

// Listar trata GET /planos
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repository.Listar(h.DB)
	if err != nil {
		http.Error(w, "Erro ao listar planos", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

// BuscarPorID trata GET /planos/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	p, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "Plano não encontrado", http.StatusNotFound)
			return
		}
		http.Error(w, "Erro ao buscar plano", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(p)
}

// Atualizar trata PUT /planos/{id} (somente admin)
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	existente, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "Plano não encontrado", http.StatusNotFound)
		return
	}

	var dto planoDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if dto.Tarefas == nil {
		dto.Tarefas = []string{}
	}

	existente.Nome = dto.Nome
	existente.Objetivo = dto.Objetivo
	existente.Tarefas = dto.Tarefas
	existente.Preco = dto.Preco
	existente.Categoria = dto.Categoria
	if dto.Ativo != nil {
		existente.Ativo = *dto.Ativo
	}

	if err := h.Repository.Atualizar(h.DB, existente); err != nil {
		http.Error(w, "Erro ao atualizar plano", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(existente)
}

// Deletar trata DELETE /planos/{id} (somente admin)
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	if _, err := h.Repository.BuscarPorID(h.DB, uint(id)); err != nil {
		http.Error(w, "Plano não encontrado", http.StatusNotFound)
		return
	}
	if err := h.Repository.Deletar(h.DB, uint(id)); err != nil {
		http.Error(w, "Erro ao excluir plano", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
