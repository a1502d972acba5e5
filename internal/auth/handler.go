package auth

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/MaisResultado/api-consultoria/internal/usuario"
	"github.com/MaisResultado/api-consultoria/internal/utils"
	"gorm.io/gorm"
)

type loginRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

type loginResponse struct {
	Token   string          `json:"token"`
	Usuario usuario.Usuario `json:"usuario"`
}

// LoginHandler trata POST /login e devolve um JWT de acesso
func LoginHandler(db *gorm.DB) http.HandlerFunc {
	repo := usuario.NewRepository()
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "JSON inválido", http.StatusBadRequest)
			return
		}

		u, err := repo.BuscarPorEmail(db, strings.ToLower(strings.TrimSpace(req.Email)))
		if err != nil {
			http.Error(w, "Credenciais inválidas", http.StatusUnauthorized)
			return
		}
		if !utils.VerificarSenha(u.SenhaHash, req.Senha) {
			http.Error(w, "Credenciais inválidas", http.StatusUnauthorized)
			return
		}

		token, err := GerarToken(u.ID, u.IsAdmin)
		if err != nil {
			http.Error(w, "Erro ao gerar token", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(loginResponse{Token: token, Usuario: *u})
	}
}
