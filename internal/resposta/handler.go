package resposta

import (
	"encoding/json"
	"net/http"
	"strconv"

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

// ListarPorDiagnostico trata GET /diagnosticos/{id}/respostas
func (h *Handler) ListarPorDiagnostico(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	list, err := h.Repository.ListarPorDiagnostico(h.DB, uint(id))
	if err != nil {
		http.Error(w, "Erro ao listar respostas", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}
