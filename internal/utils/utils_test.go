package utils

import "testing"

func TestHashEVerificarSenha(t *testing.T) {
	hash, err := HashSenha("minha-senha-secreta")
	if err != nil {
		t.Fatalf("HashSenha: %v", err)
	}
	if hash == "minha-senha-secreta" {
		t.Fatal("hash não pode ser a senha em texto puro")
	}
	if !VerificarSenha(hash, "minha-senha-secreta") {
		t.Error("senha correta deveria validar")
	}
	if VerificarSenha(hash, "senha-errada") {
		t.Error("senha errada não deveria validar")
	}
}

func TestGerarSenhaTemporaria(t *testing.T) {
	a, err := GerarSenhaTemporaria()
	if err != nil {
		t.Fatalf("GerarSenhaTemporaria: %v", err)
	}
	b, err := GerarSenhaTemporaria()
	if err != nil {
		t.Fatalf("GerarSenhaTemporaria: %v", err)
	}
	if len(a) != 12 {
		t.Errorf("tamanho = %d, esperado 12", len(a))
	}
	if a == b {
		t.Error("duas senhas temporárias iguais em sequência")
	}
}
