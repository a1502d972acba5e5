package pipeline

import (
	"reflect"
	"testing"
)

func TestDeveMover(t *testing.T) {
	l := Lead{ID: 1, ColunaID: 2}
	if DeveMover(l, 2) {
		t.Error("drop na própria coluna não deveria gerar atualização")
	}
	if !DeveMover(l, 3) {
		t.Error("drop em outra coluna deveria gerar atualização")
	}
}

func TestTotais(t *testing.T) {
	leads := []Lead{
		{ColunaID: 1, PotencialReceita: 1000},
		{ColunaID: 1, PotencialReceita: 2500},
		{ColunaID: 2, PotencialReceita: 500},
	}

	totais := Totais(leads)

	esperado := map[uint]TotalColuna{
		1: {Quantidade: 2, PotencialReceita: 3500},
		2: {Quantidade: 1, PotencialReceita: 500},
	}
	if !reflect.DeepEqual(totais, esperado) {
		t.Errorf("totais = %v, esperado %v", totais, esperado)
	}
}

func TestAgruparPorColuna(t *testing.T) {
	colunas := []Coluna{
		{ID: 1, Nome: "Contato", Ordem: 0},
		{ID: 2, Nome: "Proposta", Ordem: 1},
		{ID: 3, Nome: "Fechado", Ordem: 2, Tipo: ColunaGanho},
	}
	leads := []Lead{
		{ID: 10, ColunaID: 2, PotencialReceita: 800},
		{ID: 11, ColunaID: 2, PotencialReceita: 200},
	}

	grupos := AgruparPorColuna(colunas, leads)

	if len(grupos) != 3 {
		t.Fatalf("grupos = %d, esperado 3", len(grupos))
	}
	if grupos[0].Leads == nil || len(grupos[0].Leads) != 0 {
		t.Errorf("coluna vazia deveria vir com lista vazia, veio %v", grupos[0].Leads)
	}
	if len(grupos[1].Leads) != 2 {
		t.Errorf("coluna 2 deveria ter 2 leads, veio %d", len(grupos[1].Leads))
	}
	if grupos[1].Total.PotencialReceita != 1000 {
		t.Errorf("potencial da coluna 2 = %v, esperado 1000", grupos[1].Total.PotencialReceita)
	}
	if grupos[2].Coluna.Tipo != ColunaGanho {
		t.Errorf("tipo da coluna 3 = %q, esperado %q", grupos[2].Coluna.Tipo, ColunaGanho)
	}
}
