package proposta

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/MaisResultado/api-consultoria/internal/diagnostico"
	"github.com/MaisResultado/api-consultoria/internal/plano"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// Handler encapsula DB e repositories; o fluxo personalizado também cria
// diagnósticos, daí a dependência.
type Handler struct {
	DB           *gorm.DB
	Repository   Repository
	Diagnosticos diagnostico.Repository
	Planos       plano.Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:           db,
		Repository:   NewRepository(),
		Diagnosticos: diagnostico.NewRepository(),
		Planos:       plano.NewRepository(),
	}
}

type propostaDTO struct {
	DiagnosticoID  uint     `json:"diagnosticoId"`
	PlanoID        *uint    `json:"planoId"`
	Objetivo       string   `json:"objetivo"`
	Valor          float64  `json:"valor"`
	AcoesSugeridas []string `json:"acoesSugeridas"`
	Status         string   `json:"status"`
}

type atualizarStatusRequest struct {
	Status string `json:"status"`
}

func (h *Handler) montar(dto propostaDTO) (*Proposta, error) {
	if dto.AcoesSugeridas == nil {
		dto.AcoesSugeridas = []string{}
	}
	if dto.Status == "" {
		dto.Status = StatusRascunho
	}
	if !StatusValido(dto.Status) {
		return nil, errors.New("status inválido")
	}
	if dto.PlanoID != nil {
		if _, err := h.Planos.BuscarPorID(h.DB, *dto.PlanoID); err != nil {
			return nil, errors.New("plano não encontrado")
		}
	}
	return &Proposta{
		DiagnosticoID:  dto.DiagnosticoID,
		PlanoID:        dto.PlanoID,
		Objetivo:       dto.Objetivo,
		Valor:          dto.Valor,
		AcoesSugeridas: dto.AcoesSugeridas,
		Status:         dto.Status,
	}, nil
}

// Criar trata POST /propostas e exige um diagnóstico existente
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var dto propostaDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if dto.DiagnosticoID == 0 {
		http.Error(w, "O campo 'diagnosticoId' é obrigatório", http.StatusBadRequest)
		return
	}
	if _, err := h.Diagnosticos.BuscarPorID(h.DB, dto.DiagnosticoID); err != nil {
		http.Error(w, "Diagnóstico não encontrado", http.StatusBadRequest)
		return
	}

	p, err := h.montar(dto)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Repository.Salvar(h.DB, p); err != nil {
		http.Error(w, "Erro ao salvar proposta", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(p)
}

// CriarPersonalizada trata POST /empresas/{id}/propostas/personalizada:
// fabrica um diagnóstico zerado para ancorar a proposta e cria os dois numa
// transação.
func (h *Handler) CriarPersonalizada(w http.ResponseWriter, r *http.Request) {
	empresaID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID da empresa inválido", http.StatusBadRequest)
		return
	}

	var dto propostaDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}

	placeholder := diagnostico.NovoPlaceholder(uint(empresaID))
	var p *Proposta
	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := h.Diagnosticos.Salvar(tx, &placeholder); err != nil {
			return err
		}
		dto.DiagnosticoID = placeholder.ID
		montada, err := h.montar(dto)
		if err != nil {
			return err
		}
		p = montada
		return h.Repository.Salvar(tx, p)
	})
	if err != nil {
		http.Error(w, "Erro ao criar proposta personalizada", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(p)
}

// Listar trata GET /propostas; ?diagnosticoId= filtra por diagnóstico
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	var (
		list []Proposta
		err  error
	)
	if q := r.URL.Query().Get("diagnosticoId"); q != "" {
		id, convErr := strconv.Atoi(q)
		if convErr != nil {
			http.Error(w, "Parâmetro 'diagnosticoId' inválido", http.StatusBadRequest)
			return
		}
		list, err = h.Repository.ListarPorDiagnostico(h.DB, uint(id))
	} else {
		list, err = h.Repository.Listar(h.DB)
	}
	if err != nil {
		http.Error(w, "Erro ao listar propostas", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

// BuscarPorID trata GET /propostas/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	p, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "Proposta não encontrada", http.StatusNotFound)
			return
		}
		http.Error(w, "Erro ao buscar proposta", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(p)
}

// Atualizar trata PUT /propostas/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	existente, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "Proposta não encontrada", http.StatusNotFound)
		return
	}

	var dto propostaDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if dto.Status != "" && !StatusValido(dto.Status) {
		http.Error(w, "Status inválido", http.StatusBadRequest)
		return
	}
	if dto.AcoesSugeridas == nil {
		dto.AcoesSugeridas = []string{}
	}

	existente.Objetivo = dto.Objetivo
	existente.Valor = dto.Valor
	existente.AcoesSugeridas = dto.AcoesSugeridas
	existente.PlanoID = dto.PlanoID
	if dto.Status != "" {
		existente.Status = dto.Status
	}

	if err := h.Repository.Atualizar(h.DB, existente); err != nil {
		http.Error(w, "Erro ao atualizar proposta", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(existente)
}

// AtualizarStatus trata PATCH /propostas/{id}/status
func (h *Handler) AtualizarStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	var req atualizarStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if !StatusValido(req.Status) {
		http.Error(w, "Status inválido", http.StatusBadRequest)
		return
	}

	p, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "Proposta não encontrada", http.StatusNotFound)
			return
		}
		http.Error(w, "Erro ao buscar proposta", http.StatusInternalServerError)
		return
	}

	if err := h.Repository.AtualizarStatus(h.DB, uint(id), req.Status); err != nil {
		http.Error(w, "Erro ao atualizar status", http.StatusInternalServerError)
		return
	}

	p.Status = req.Status
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(p)
}

// Deletar trata DELETE /propostas/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	if _, err := h.Repository.BuscarPorID(h.DB, uint(id)); err != nil {
		http.Error(w, "Proposta não encontrada", http.StatusNotFound)
		return
	}
	if err := h.Repository.Deletar(h.DB, uint(id)); err != nil {
		http.Error(w, "Erro ao excluir proposta", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
