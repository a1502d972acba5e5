package notificacao

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/MaisResultado/api-consultoria/internal/diagnostico"
	"github.com/MaisResultado/api-consultoria/internal/empresa"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// Handler monta os links de compartilhamento de um diagnóstico
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

type compartilharResponse struct {
	WhatsApp string `json:"whatsapp"`
	Agenda   string `json:"agenda"`
}

// Compartilhar trata GET /diagnosticos/{id}/compartilhar. O parâmetro
// ?telefone= sobrepõe o telefone cadastrado da empresa.
func (h *Handler) Compartilhar(w http.ResponseWriter, r *http.Request) {
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

	telefone := r.URL.Query().Get("telefone")
	if telefone == "" {
		telefone = e.Telefone
	}

	mensagem := fmt.Sprintf(
		"Olá! O diagnóstico da %s está pronto: pontuação geral %d%% — nível %s. Vamos conversar sobre os próximos passos?",
		e.Nome, d.PontuacaoGeral, d.NivelMaturidade)

	inicio := time.Now().Add(24 * time.Hour).Truncate(time.Hour)
	resp := compartilharResponse{
		WhatsApp: LinkWhatsApp(telefone, mensagem),
		Agenda: LinkAgenda(
			fmt.Sprintf("Apresentação do diagnóstico — %s", e.Nome),
			inicio,
			inicio.Add(time.Hour),
			mensagem,
		),
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}
