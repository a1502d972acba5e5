package auth

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
)

func TestGerarEValidarToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "segredo-de-teste")

	token, err := GerarToken(42, true)
	if err != nil {
		t.Fatalf("GerarToken: %v", err)
	}

	claims, err := ValidarToken(token)
	if err != nil {
		t.Fatalf("ValidarToken: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("userId = %d, esperado 42", claims.UserID)
	}
	if !claims.IsAdmin {
		t.Error("isAdmin deveria ser true")
	}
}

func TestValidarTokenAdulterado(t *testing.T) {
	t.Setenv("JWT_SECRET", "segredo-de-teste")

	token, err := GerarToken(7, false)
	if err != nil {
		t.Fatalf("GerarToken: %v", err)
	}

	if _, err := ValidarToken(token + "x"); err == nil {
		t.Error("token adulterado deveria ser rejeitado")
	}
}

func TestValidarTokenAssinaturaErrada(t *testing.T) {
	t.Setenv("JWT_SECRET", "segredo-de-teste")

	alheio := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{UserID: 1})
	assinado, err := alheio.SignedString([]byte("outro-segredo"))
	if err != nil {
		t.Fatalf("assinatura: %v", err)
	}

	if _, err := ValidarToken(assinado); err == nil {
		t.Error("token assinado com outro segredo deveria ser rejeitado")
	}
}
