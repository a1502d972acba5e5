package notificacao

import (
	"net/url"
	"strings"
	"testing"
	"time"
)

func TestLinkWhatsApp(t *testing.T) {
	link := LinkWhatsApp("+55 (11) 98765-4321", "Olá, tudo bem?")

	u, err := url.Parse(link)
	if err != nil {
		t.Fatalf("link inválido: %v", err)
	}
	if u.Host != "wa.me" {
		t.Errorf("host = %q, esperado wa.me", u.Host)
	}
	if u.Path != "/5511987654321" {
		t.Errorf("path = %q, esperado só os dígitos do telefone", u.Path)
	}
	if got := u.Query().Get("text"); got != "Olá, tudo bem?" {
		t.Errorf("text = %q, a mensagem se perdeu no encoding", got)
	}
}

func TestLinkWhatsAppTelefoneSemDigitos(t *testing.T) {
	link := LinkWhatsApp("sem número", "oi")
	if !strings.Contains(link, "wa.me") {
		t.Errorf("link = %q, esperado host wa.me mesmo sem dígitos", link)
	}
}

func TestLinkAgenda(t *testing.T) {
	inicio := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)
	fim := inicio.Add(time.Hour)

	link := LinkAgenda("Apresentação do diagnóstico", inicio, fim, "Reunião de alinhamento")

	u, err := url.Parse(link)
	if err != nil {
		t.Fatalf("link inválido: %v", err)
	}
	q := u.Query()
	if q.Get("action") != "TEMPLATE" {
		t.Errorf("action = %q, esperado TEMPLATE", q.Get("action"))
	}
	if got := q.Get("dates"); got != "20260310T140000Z/20260310T150000Z" {
		t.Errorf("dates = %q", got)
	}
	if q.Get("text") != "Apresentação do diagnóstico" {
		t.Errorf("text = %q", q.Get("text"))
	}
	if q.Get("details") != "Reunião de alinhamento" {
		t.Errorf("details = %q", q.Get("details"))
	}
}

func TestLinkAgendaConverteFusoParaUTC(t *testing.T) {
	brasilia := time.FixedZone("BRT", -3*60*60)
	inicio := time.Date(2026, 3, 10, 11, 0, 0, 0, brasilia)
	fim := inicio.Add(30 * time.Minute)

	link := LinkAgenda("Reunião", inicio, fim, "")

	u, _ := url.Parse(link)
	if got := u.Query().Get("dates"); got != "20260310T140000Z/20260310T143000Z" {
		t.Errorf("dates = %q, horário deveria estar em UTC", got)
	}
	if u.Query().Has("details") {
		t.Error("descrição vazia não deveria virar parâmetro")
	}
}
