package configuracao

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

type configuracaoDTO struct {
	EmpresaID *uint  `json:"empresaId"`
	Chave     string `json:"chave"`
	Valor     string `json:"valor"`
}

type integracaoDTO struct {
	Nome  string `json:"nome"`
	Chave string `json:"chave"`
	Ativa bool   `json:"ativa"`
}

// CriarConfiguracao trata POST /configuracoes
func (h *Handler) CriarConfiguracao(w http.ResponseWriter, r *http.Request) {
	var dto configuracaoDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(dto.Chave) == "" {
		http.Error(w, "O campo 'chave' é obrigatório", http.StatusBadRequest)
		return
	}

	c := Configuracao{EmpresaID: dto.EmpresaID, Chave: strings.TrimSpace(dto.Chave), Valor: dto.Valor}
	if err := h.Repository.SalvarConfiguracao(h.DB, &c); err != nil {
		http.Error(w, "Erro ao salvar configuração", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(c)
}

// ListarConfiguracoes trata GET /configuracoes
func (h *Handler) ListarConfiguracoes(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repository.ListarConfiguracoes(h.DB)
	if err != nil {
		http.Error(w, "Erro ao listar configurações", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

// AtualizarConfiguracao trata PUT /configuracoes/{id}
func (h *Handler) AtualizarConfiguracao(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	existente, err := h.Repository.BuscarConfiguracao(h.DB, uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "Configuração não encontrada", http.StatusNotFound)
			return
		}
		http.Error(w, "Erro ao buscar configuração", http.StatusInternalServerError)
		return
	}

	var dto configuracaoDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	existente.Valor = dto.Valor

	if err := h.Repository.AtualizarConfiguracao(h.DB, existente); err != nil {
		http.Error(w, "Erro ao atualizar configuração", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(existente)
}

// DeletarConfiguracao trata DELETE /configuracoes/{id}
func (h *Handler) DeletarConfiguracao(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	if _, err := h.Repository.BuscarConfiguracao(h.DB, uint(id)); err != nil {
		http.Error(w, "Configuração não encontrada", http.StatusNotFound)
		return
	}
	if err := h.Repository.DeletarConfiguracao(h.DB, uint(id)); err != nil {
		http.Error(w, "Erro ao excluir configuração", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CriarIntegracao trata POST /integracoes (somente admin)
func (h *Handler) CriarIntegracao(w http.ResponseWriter, r *http.Request) {
	var dto integracaoDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(dto.Nome) == "" {
		http.Error(w, "O campo 'nome' é obrigatório", http.StatusBadRequest)
		return
	}

	i := Integracao{Nome: strings.TrimSpace(dto.Nome), Chave: dto.Chave, Ativa: dto.Ativa}
	if err := h.Repository.SalvarIntegracao(h.DB, &i); err != nil {
		http.Error(w, "Erro ao salvar integração", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(i)
}

// ListarIntegracoes trata GET /integracoes
func (h *Handler) ListarIntegracoes(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repository.ListarIntegracoes(h.DB)
	if err != nil {
		http.Error(w, "Erro ao listar integrações", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

// AtualizarIntegracao trata PUT /integracoes/{id} (somente admin)
func (h *Handler) AtualizarIntegracao(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	existente, err := h.Repository.BuscarIntegracao(h.DB, uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "Integração não encontrada", http.StatusNotFound)
			return
		}
		http.Error(w, "Erro ao buscar integração", http.StatusInternalServerError)
		return
	}

	var dto integracaoDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if dto.Chave != "" {
		existente.Chave = dto.Chave
	}
	existente.Ativa = dto.Ativa

	if err := h.Repository.AtualizarIntegracao(h.DB, existente); err != nil {
		http.Error(w, "Erro ao atualizar integração", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(existente)
}

// DeletarIntegracao trata DELETE /integracoes/{id} (somente admin)
func (h *Handler) DeletarIntegracao(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	if _, err := h.Repository.BuscarIntegracao(h.DB, uint(id)); err != nil {
		http.Error(w, "Integração não encontrada", http.StatusNotFound)
		return
	}
	if err := h.Repository.DeletarIntegracao(h.DB, uint(id)); err != nil {
		http.Error(w, "Erro ao excluir integração", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
