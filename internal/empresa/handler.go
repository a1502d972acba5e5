package empresa

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

type empresaDTO struct {
	Nome     string `json:"nome"`
	Contato  string `json:"contato"`
	Email    string `json:"email"`
	Telefone string `json:"telefone"`
	Setor    string `json:"setor"`
}

// Criar trata POST /empresas
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var dto empresaDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(dto.Nome) == "" {
		http.Error(w, "O campo 'nome' é obrigatório", http.StatusBadRequest)
		return
	}

	e := Empresa{
		Nome:     strings.TrimSpace(dto.Nome),
		Contato:  dto.Contato,
		Email:    dto.Email,
		Telefone: dto.Telefone,
		Setor:    dto.Setor,
	}
	if err := h.Repository.Salvar(h.DB, &e); err != nil {
		http.Error(w, "Erro ao salvar empresa", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(e)
}

// Listar trata GET /empresas
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repository.Listar(h.DB)
	if err != nil {
		http.Error(w, "Erro ao listar empresas", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

// BuscarPorID trata GET /empresas/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	e, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "Empresa não encontrada", http.StatusNotFound)
			return
		}
		http.Error(w, "Erro ao buscar empresa", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(e)
}

// Atualizar trata PUT /empresas/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	existente, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "Empresa não encontrada", http.StatusNotFound)
		return
	}

	var dto empresaDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}

	existente.Nome = dto.Nome
	existente.Contato = dto.Contato
	existente.Email = dto.Email
	existente.Telefone = dto.Telefone
	existente.Setor = dto.Setor

	if err := h.Repository.Atualizar(h.DB, existente); err != nil {
		http.Error(w, "Erro ao atualizar empresa", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(existente)
}

// Deletar trata DELETE /empresas/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	if _, err := h.Repository.BuscarPorID(h.DB, uint(id)); err != nil {
		http.Error(w, "Empresa não encontrada", http.StatusNotFound)
		return
	}
	if err := h.Repository.Deletar(h.DB, uint(id)); err != nil {
		http.Error(w, "Erro ao excluir empresa", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
