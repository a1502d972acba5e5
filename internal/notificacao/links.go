package notificacao

import (
	"net/url"
	"strings"
	"time"
)

// Links de compartilhamento montados no servidor e abertos pelo cliente.
// Não há entrega nem confirmação: são apenas URLs profundas.

// LinkWhatsApp monta o deep link wa.me com a mensagem pré-preenchida.
// Qualquer caractere não numérico do telefone é descartado.
func LinkWhatsApp(telefone, mensagem string) string {
	digitos := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, telefone)

	u := url.URL{Scheme: "https", Host: "wa.me", Path: "/" + digitos}
	q := url.Values{}
	q.Set("text", mensagem)
	u.RawQuery = q.Encode()
	return u.String()
}

// LinkAgenda monta a URL de criação de evento do Google Calendar.
func LinkAgenda(titulo string, inicio, fim time.Time, descricao string) string {
	const formato = "20060102T150405Z"
	q := url.Values{}
	q.Set("action", "TEMPLATE")
	q.Set("text", titulo)
	q.Set("dates", inicio.UTC().Format(formato)+"/"+fim.UTC().Format(formato))
	if descricao != "" {
		q.Set("details", descricao)
	}

	u := url.URL{Scheme: "https", Host: "calendar.google.com", Path: "/calendar/render"}
	u.RawQuery = q.Encode()
	return u.String()
}
