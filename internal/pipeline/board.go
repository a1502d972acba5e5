package pipeline

// TotalColuna são os agregados derivados de uma coluna. Sempre recalculados
// da lista completa de leads; nada de manutenção incremental.
type TotalColuna struct {
	Quantidade       int     `json:"quantidade"`
	PotencialReceita float64 `json:"potencialReceita"`
}

// GrupoColuna é uma coluna do board com seus leads e totais.
type GrupoColuna struct {
	Coluna Coluna      `json:"coluna"`
	Leads  []Lead      `json:"leads"`
	Total  TotalColuna `json:"total"`
}

// DeveMover decide se um drop gera atualização: só quando o lead ainda não
// está na coluna de destino. A política não olha o tipo da coluna.
func DeveMover(l Lead, colunaDestino uint) bool {
	return l.ColunaID != colunaDestino
}

// Totais recalcula quantidade e soma de potencial de receita por coluna.
func Totais(leads []Lead) map[uint]TotalColuna {
	totais := make(map[uint]TotalColuna)
	for _, l := range leads {
		t := totais[l.ColunaID]
		t.Quantidade++
		t.PotencialReceita += l.PotencialReceita
		totais[l.ColunaID] = t
	}
	return totais
}

// AgruparPorColuna monta o board: colunas na ordem configurada, cada uma com
// seus leads e totais. Colunas vazias aparecem com lista vazia.
func AgruparPorColuna(colunas []Coluna, leads []Lead) []GrupoColuna {
	porColuna := make(map[uint][]Lead, len(colunas))
	for _, l := range leads {
		porColuna[l.ColunaID] = append(porColuna[l.ColunaID], l)
	}
	totais := Totais(leads)

	grupos := make([]GrupoColuna, 0, len(colunas))
	for _, c := range colunas {
		ls := porColuna[c.ID]
		if ls == nil {
			ls = []Lead{}
		}
		grupos = append(grupos, GrupoColuna{
			Coluna: c,
			Leads:  ls,
			Total:  totais[c.ID],
		})
	}
	return grupos
}
