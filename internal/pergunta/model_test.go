package pergunta

import (
	"encoding/json"
	"testing"
)

func TestOpcoesOuPadrao(t *testing.T) {
	p := Pergunta{}
	if got := p.OpcoesOuPadrao(); len(got) != 4 || got[3].Pontos != 3 {
		t.Fatalf("sem opções configuradas deveria cair na escala padrão, veio %v", got)
	}

	p.Opcoes = []Opcao{{Texto: "Nunca", Pontos: 0}, {Texto: "Sempre", Pontos: 5}}
	if got := p.OpcoesOuPadrao(); len(got) != 2 || got[1].Texto != "Sempre" {
		t.Fatalf("opções configuradas deveriam prevalecer, veio %v", got)
	}
}

func TestPontuacaoMaxima(t *testing.T) {
	casos := []struct {
		nome   string
		opcoes []Opcao
		max    int
	}{
		{"escala padrão", nil, 3},
		{"escala própria", []Opcao{{Pontos: 0}, {Pontos: 10}, {Pontos: 4}}, 10},
		{"todas zero", []Opcao{{Pontos: 0}, {Pontos: 0}}, 0},
	}
	for _, c := range casos {
		t.Run(c.nome, func(t *testing.T) {
			p := Pergunta{Opcoes: c.opcoes}
			if got := p.PontuacaoMaxima(); got != c.max {
				t.Errorf("máxima = %d, esperado %d", got, c.max)
			}
		})
	}
}

func TestTextoDaOpcao(t *testing.T) {
	p := Pergunta{}
	if got := p.TextoDaOpcao(2); got != "Em grande parte" {
		t.Errorf("texto = %q, esperado %q", got, "Em grande parte")
	}
	if got := p.TextoDaOpcao(42); got != "" {
		t.Errorf("pontuação inexistente deveria dar vazio, veio %q", got)
	}
}

func TestOpcaoUnmarshalPontosMalformados(t *testing.T) {
	casos := []struct {
		nome   string
		bruto  string
		pontos int
	}{
		{"inteiro", `{"texto":"Sim","pontos":3}`, 3},
		{"float", `{"texto":"Sim","pontos":2.9}`, 2},
		{"string numérica", `{"texto":"Sim","pontos":"4"}`, 4},
		{"string lixo", `{"texto":"Sim","pontos":"abc"}`, 0},
		{"ausente", `{"texto":"Sim"}`, 0},
		{"null", `{"texto":"Sim","pontos":null}`, 0},
	}
	for _, c := range casos {
		t.Run(c.nome, func(t *testing.T) {
			var o Opcao
			if err := json.Unmarshal([]byte(c.bruto), &o); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if o.Pontos != c.pontos {
				t.Errorf("pontos = %d, esperado %d", o.Pontos, c.pontos)
			}
			if o.Texto != "Sim" {
				t.Errorf("texto = %q, esperado %q", o.Texto, "Sim")
			}
		})
	}
}
