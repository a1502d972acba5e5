package diagnostico

import "testing"

func TestFaixaDe(t *testing.T) {
	casos := []struct {
		pontuacao int
		faixa     string
	}{
		{0, faixaBaixa},
		{40, faixaBaixa},
		{41, faixaMedia},
		{74, faixaMedia},
		{75, faixaAlta},
		{100, faixaAlta},
	}
	for _, c := range casos {
		if got := faixaDe(c.pontuacao); got != c.faixa {
			t.Errorf("faixaDe(%d) = %q, esperado %q", c.pontuacao, got, c.faixa)
		}
	}
}

func TestRecomendacaoPara(t *testing.T) {
	if got := RecomendacaoPara("marketing", 20); got != textosRecomendacao["marketing"][faixaBaixa] {
		t.Errorf("marketing baixa = %q", got)
	}
	if got := RecomendacaoPara("Vendas", 90); got != textosRecomendacao["vendas"][faixaAlta] {
		t.Errorf("categoria com maiúscula deveria normalizar, veio %q", got)
	}
	if got := RecomendacaoPara("logística", 50); got != textosGenericos[faixaMedia] {
		t.Errorf("categoria desconhecida deveria cair no genérico, veio %q", got)
	}
}

func TestRecomendacaoParaAceitaAcentos(t *testing.T) {
	if got := RecomendacaoPara("Estratégia", 10); got != textosRecomendacao["estrategia"][faixaBaixa] {
		t.Errorf("grafia acentuada deveria mapear, veio %q", got)
	}
	if got := RecomendacaoPara("Gestão", 80); got != textosRecomendacao["gestao"][faixaAlta] {
		t.Errorf("grafia acentuada deveria mapear, veio %q", got)
	}
}
