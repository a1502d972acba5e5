package diagnostico

import "strings"

// Faixas usadas apenas para escolher o texto de recomendação.
const (
	faixaBaixa = "baixa"
	faixaMedia = "media"
	faixaAlta  = "alta"
)

func faixaDe(pontuacao int) string {
	switch {
	case pontuacao <= LimiarPontoAtencao:
		return faixaBaixa
	case pontuacao >= LimiarPontoForte:
		return faixaAlta
	default:
		return faixaMedia
	}
}

// Textos prontos por categoria conhecida e faixa. Puro lookup, sem inferência.
var textosRecomendacao = map[string]map[string]string{
	"marketing": {
		faixaBaixa: "Estruture presença digital básica: site institucional, perfil no Google e redes sociais ativas com calendário de publicações.",
		faixaMedia: "Invista em geração de demanda: campanhas segmentadas, produção de conteúdo e mensuração de custo por lead.",
		faixaAlta:  "Otimize os canais que já performam: testes A/B, automação de nutrição e expansão para novos segmentos.",
	},
	"vendas": {
		faixaBaixa: "Implante um processo comercial mínimo: funil definido, registro de oportunidades e rotina semanal de follow-up.",
		faixaMedia: "Padronize o playbook de vendas e acompanhe taxa de conversão por etapa do funil.",
		faixaAlta:  "Escale o time comercial com metas por etapa e remuneração atrelada a resultado.",
	},
	"estrategia": {
		faixaBaixa: "Defina missão, posicionamento e metas anuais por escrito; sem isso as demais áreas não têm direção.",
		faixaMedia: "Desdobre o planejamento anual em OKRs trimestrais com donos e revisões mensais.",
		faixaAlta:  "Revisite o posicionamento frente à concorrência e avalie novas linhas de receita.",
	},
	"gestao": {
		faixaBaixa: "Organize o financeiro: fluxo de caixa semanal, separação de contas PF/PJ e rotina de fechamento mensal.",
		faixaMedia: "Formalize processos-chave e indicadores por área, com reunião mensal de resultados.",
		faixaAlta:  "Profissionalize a governança: orçamento anual, delegação estruturada e plano de sucessão.",
	},
}

var textosGenericos = map[string]string{
	faixaBaixa: "Área em estágio inicial: priorize a estruturação de processos básicos e defina um responsável.",
	faixaMedia: "Área em evolução: padronize o que já funciona e acompanhe indicadores mensais.",
	faixaAlta:  "Área madura: mantenha a rotina atual e busque ganhos incrementais de eficiência.",
}

// RecomendacaoPara devolve o texto pronto da categoria na faixa em que a
// pontuação caiu. Categorias fora da tabela caem no texto genérico.
func RecomendacaoPara(categoria string, pontuacao int) string {
	faixa := faixaDe(pontuacao)
	if porFaixa, ok := textosRecomendacao[normalizarCategoria(categoria)]; ok {
		if texto, ok := porFaixa[faixa]; ok {
			return texto
		}
	}
	return textosGenericos[faixa]
}

func normalizarCategoria(categoria string) string {
	s := strings.ToLower(strings.TrimSpace(categoria))
	// Aceita as grafias acentuadas usadas no editor de perguntas
	switch s {
	case "estratégia":
		return "estrategia"
	case "gestão":
		return "gestao"
	}
	return s
}
