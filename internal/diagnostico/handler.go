package diagnostico

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MaisResultado/api-consultoria/internal/cache"
	"github.com/MaisResultado/api-consultoria/internal/pergunta"
	"github.com/MaisResultado/api-consultoria/internal/resposta"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// Handler encapsula DB, repositories e o cache de leitura
type Handler struct {
	DB         *gorm.DB
	Repository Repository
	Perguntas  pergunta.Repository
	Respostas  resposta.Repository
	Cache      *cache.Cache
}

func NewHandler(db *gorm.DB, c *cache.Cache) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(),
		Perguntas:  pergunta.NewRepository(),
		Respostas:  resposta.NewRepository(),
		Cache:      c,
	}
}

// ChaveCacheEmpresa é a chave da listagem de diagnósticos de uma empresa.
func ChaveCacheEmpresa(empresaID uint) string {
	return fmt.Sprintf("empresa:%d:diagnosticos", empresaID)
}

type submeterRequest struct {
	// pergunta id -> pontos da alternativa escolhida
	Respostas   map[uint]int `json:"respostas"`
	Observacoes string       `json:"observacoes"`
}

// Criar trata POST /empresas/{id}/diagnosticos: abre um rascunho
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	empresaID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID da empresa inválido", http.StatusBadRequest)
		return
	}

	d := Diagnostico{
		EmpresaID:       uint(empresaID),
		Pontuacoes:      map[string]int{},
		NivelMaturidade: NivelIniciante,
		PontosFortes:    []string{},
		PontosAtencao:   []string{},
		Recomendacoes:   map[string]string{},
		Status:          StatusRascunho,
	}
	if err := h.Repository.Salvar(h.DB, &d); err != nil {
		http.Error(w, "Erro ao criar diagnóstico", http.StatusInternalServerError)
		return
	}
	h.Cache.Invalidar(r.Context(), ChaveCacheEmpresa(uint(empresaID)))

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(d)
}

// Submeter trata POST /diagnosticos/{id}/submeter: grava as respostas,
// calcula o resultado e conclui o diagnóstico numa única transação.
func (h *Handler) Submeter(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	var req submeterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}

	d, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "Diagnóstico não encontrado", http.StatusNotFound)
			return
		}
		http.Error(w, "Erro ao buscar diagnóstico", http.StatusInternalServerError)
		return
	}
	// Respostas são imutáveis após a conclusão
	if d.Status == StatusConcluido {
		http.Error(w, "Diagnóstico já concluído", http.StatusConflict)
		return
	}

	perguntas, err := h.Perguntas.ListarAtivas(h.DB)
	if err != nil {
		http.Error(w, "Erro ao carregar perguntas", http.StatusInternalServerError)
		return
	}

	resultado := CalcularResultado(req.Respostas, perguntas)

	lote := make([]resposta.Resposta, 0, len(req.Respostas))
	for _, p := range perguntas {
		pontos, ok := req.Respostas[p.ID]
		if !ok {
			continue
		}
		lote = append(lote, resposta.Resposta{
			DiagnosticoID: d.ID,
			PerguntaID:    p.ID,
			Pontos:        pontos,
			Texto:         p.TextoDaOpcao(pontos),
		})
	}

	d.PontuacaoGeral = resultado.PontuacaoGeral
	d.Pontuacoes = resultado.Pontuacoes
	d.NivelMaturidade = resultado.NivelMaturidade
	d.PontosFortes = resultado.PontosFortes
	d.PontosAtencao = resultado.PontosAtencao
	d.Recomendacoes = resultado.Recomendacoes
	d.Observacoes = req.Observacoes
	d.Status = StatusConcluido

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := h.Respostas.SalvarLote(tx, lote); err != nil {
			return err
		}
		return h.Repository.Atualizar(tx, d)
	})
	if err != nil {
		http.Error(w, "Erro ao concluir diagnóstico", http.StatusInternalServerError)
		return
	}
	h.Cache.Invalidar(r.Context(), ChaveCacheEmpresa(d.EmpresaID))

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(d)
}

// ListarPorEmpresa trata GET /empresas/{id}/diagnosticos
func (h *Handler) ListarPorEmpresa(w http.ResponseWriter, r *http.Request) {
	empresaID, _ := strconv.Atoi(mux.Vars(r)["id"])
	chave := ChaveCacheEmpresa(uint(empresaID))

	var list []Diagnostico
	if !h.Cache.BuscarJSON(r.Context(), chave, &list) {
		var err error
		list, err = h.Repository.ListarPorEmpresa(h.DB, uint(empresaID))
		if err != nil {
			http.Error(w, "Erro ao listar diagnósticos", http.StatusInternalServerError)
			return
		}
		h.Cache.GravarJSON(r.Context(), chave, list)
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

// BuscarPorID trata GET /diagnosticos/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	d, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "Diagnóstico não encontrado", http.StatusNotFound)
			return
		}
		http.Error(w, "Erro ao buscar diagnóstico", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(d)
}

// Deletar trata DELETE /diagnosticos/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	d, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "Diagnóstico não encontrado", http.StatusNotFound)
		return
	}
	if err := h.Repository.Deletar(h.DB, uint(id)); err != nil {
		http.Error(w, "Erro ao excluir diagnóstico", http.StatusInternalServerError)
		return
	}
	h.Cache.Invalidar(r.Context(), ChaveCacheEmpresa(d.EmpresaID))
	w.WriteHeader(http.StatusNoContent)
}
