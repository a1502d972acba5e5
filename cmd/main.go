package main

import (
	"net/http"
	"os"

	"github.com/MaisResultado/api-consultoria/internal/acompanhamento"
	"github.com/MaisResultado/api-consultoria/internal/auth"
	"github.com/MaisResultado/api-consultoria/internal/cache"
	"github.com/MaisResultado/api-consultoria/internal/configuracao"
	"github.com/MaisResultado/api-consultoria/internal/diagnostico"
	"github.com/MaisResultado/api-consultoria/internal/empresa"
	"github.com/MaisResultado/api-consultoria/internal/notificacao"
	"github.com/MaisResultado/api-consultoria/internal/pergunta"
	"github.com/MaisResultado/api-consultoria/internal/pipeline"
	"github.com/MaisResultado/api-consultoria/internal/plano"
	"github.com/MaisResultado/api-consultoria/internal/proposta"
	"github.com/MaisResultado/api-consultoria/internal/relatorio"
	"github.com/MaisResultado/api-consultoria/internal/resposta"
	"github.com/MaisResultado/api-consultoria/internal/usuario"
	"github.com/MaisResultado/api-consultoria/internal/utils/db"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	conexao, err := db.Conectar()
	if err != nil {
		logger.Fatal("erro ao conectar no banco", zap.Error(err))
	}

	if err := conexao.AutoMigrate(
		&usuario.Usuario{},
		&empresa.Empresa{},
		&pergunta.Pergunta{},
		&diagnostico.Diagnostico{},
		&resposta.Resposta{},
		&acompanhamento.Acompanhamento{},
		&pipeline.Coluna{},
		&pipeline.Lead{},
		&plano.Plano{},
		&proposta.Proposta{},
		&configuracao.Configuracao{},
		&configuracao.Integracao{},
	); err != nil {
		logger.Fatal("erro ao migrar o banco", zap.Error(err))
	}

	leituras := cache.Novo(logger)

	usuarioHandler := usuario.NewHandler(conexao)
	empresaHandler := empresa.NewHandler(conexao)
	perguntaHandler := pergunta.NewHandler(conexao)
	diagnosticoHandler := diagnostico.NewHandler(conexao, leituras)
	respostaHandler := resposta.NewHandler(conexao)
	acompanhamentoHandler := acompanhamento.NewHandler(conexao)
	pipelineHandler := pipeline.NewHandler(conexao, leituras)
	planoHandler := plano.NewHandler(conexao)
	propostaHandler := proposta.NewHandler(conexao)
	relatorioHandler := relatorio.NewHandler(conexao)
	notificacaoHandler := notificacao.NewHandler(conexao)
	configuracaoHandler := configuracao.NewHandler(conexao)

	r := mux.NewRouter()

	/* ================== Rota pública ================== */
	r.HandleFunc("/login", auth.LoginHandler(conexao)).Methods("POST")

	api := r.NewRoute().Subrouter()
	api.Use(auth.MiddlewareAutenticacao)

	admin := api.NewRoute().Subrouter()
	admin.Use(auth.ExigirAdmin)

	/* ================== Usuários (admin) ================== */
	admin.HandleFunc("/usuarios", usuarioHandler.Criar).Methods("POST")
	admin.HandleFunc("/usuarios", usuarioHandler.Listar).Methods("GET")
	admin.HandleFunc("/usuarios/{id}", usuarioHandler.BuscarPorID).Methods("GET")
	admin.HandleFunc("/usuarios/{id}", usuarioHandler.Atualizar).Methods("PUT")
	admin.HandleFunc("/usuarios/{id}", usuarioHandler.Deletar).Methods("DELETE")

	/* ================== Empresas ================== */
	api.HandleFunc("/empresas", empresaHandler.Criar).Methods("POST")
	api.HandleFunc("/empresas", empresaHandler.Listar).Methods("GET")
	api.HandleFunc("/empresas/{id}", empresaHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/empresas/{id}", empresaHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/empresas/{id}", empresaHandler.Deletar).Methods("DELETE")

	/* ================== Perguntas ================== */
	admin.HandleFunc("/perguntas", perguntaHandler.Criar).Methods("POST")
	api.HandleFunc("/perguntas", perguntaHandler.Listar).Methods("GET")
	api.HandleFunc("/perguntas/{id}", perguntaHandler.BuscarPorID).Methods("GET")
	admin.HandleFunc("/perguntas/{id}", perguntaHandler.Atualizar).Methods("PUT")
	admin.HandleFunc("/perguntas/{id}/ativa", perguntaHandler.AtualizarAtiva).Methods("PATCH")
	admin.HandleFunc("/perguntas/{id}", perguntaHandler.Deletar).Methods("DELETE")

	/* ================== Diagnósticos ================== */
	api.HandleFunc("/empresas/{id}/diagnosticos", diagnosticoHandler.Criar).Methods("POST")
	api.HandleFunc("/empresas/{id}/diagnosticos", diagnosticoHandler.ListarPorEmpresa).Methods("GET")
	api.HandleFunc("/diagnosticos/{id}", diagnosticoHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/diagnosticos/{id}", diagnosticoHandler.Deletar).Methods("DELETE")
	api.HandleFunc("/diagnosticos/{id}/submeter", diagnosticoHandler.Submeter).Methods("POST")
	api.HandleFunc("/diagnosticos/{id}/respostas", respostaHandler.ListarPorDiagnostico).Methods("GET")
	api.HandleFunc("/diagnosticos/{id}/relatorio", relatorioHandler.Baixar).Methods("GET")
	api.HandleFunc("/diagnosticos/{id}/compartilhar", notificacaoHandler.Compartilhar).Methods("GET")

	/* ================== Acompanhamentos mensais ================== */
	api.HandleFunc("/empresas/{id}/acompanhamentos", acompanhamentoHandler.Criar).Methods("POST")
	api.HandleFunc("/empresas/{id}/acompanhamentos", acompanhamentoHandler.ListarPorEmpresa).Methods("GET")
	api.HandleFunc("/empresas/{id}/acompanhamentos/export", acompanhamentoHandler.Exportar).Methods("GET")
	api.HandleFunc("/empresas/{id}/metricas", acompanhamentoHandler.Metricas).Methods("GET")
	api.HandleFunc("/acompanhamentos/{id}", acompanhamentoHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/acompanhamentos/{id}", acompanhamentoHandler.Deletar).Methods("DELETE")

	/* ================== Pipeline de vendas ================== */
	api.HandleFunc("/pipeline", pipelineHandler.Board).Methods("GET")
	api.HandleFunc("/colunas", pipelineHandler.CriarColuna).Methods("POST")
	api.HandleFunc("/colunas", pipelineHandler.ListarColunas).Methods("GET")
	api.HandleFunc("/colunas/{id}", pipelineHandler.AtualizarColuna).Methods("PUT")
	api.HandleFunc("/colunas/{id}", pipelineHandler.DeletarColuna).Methods("DELETE")
	api.HandleFunc("/leads", pipelineHandler.CriarLead).Methods("POST")
	api.HandleFunc("/leads/{id}", pipelineHandler.BuscarLead).Methods("GET")
	api.HandleFunc("/leads/{id}", pipelineHandler.AtualizarLead).Methods("PUT")
	api.HandleFunc("/leads/{id}", pipelineHandler.DeletarLead).Methods("DELETE")
	api.HandleFunc("/leads/{id}/mover", pipelineHandler.MoverLead).Methods("POST")

	/* ================== Planos ================== */
	admin.HandleFunc("/planos", planoHandler.Criar).Methods("POST")
	api.HandleFunc("/planos", planoHandler.Listar).Methods("GET")
	api.HandleFunc("/planos/{id}", planoHandler.BuscarPorID).Methods("GET")
	admin.HandleFunc("/planos/{id}", planoHandler.Atualizar).Methods("PUT")
	admin.HandleFunc("/planos/{id}", planoHandler.Deletar).Methods("DELETE")

	/* ================== Propostas ================== */
	api.HandleFunc("/propostas", propostaHandler.Criar).Methods("POST")
	api.HandleFunc("/propostas", propostaHandler.Listar).Methods("GET")
	api.HandleFunc("/propostas/{id}", propostaHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/propostas/{id}", propostaHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/propostas/{id}", propostaHandler.Deletar).Methods("DELETE")
	api.HandleFunc("/propostas/{id}/status", propostaHandler.AtualizarStatus).Methods("PATCH")
	api.HandleFunc("/empresas/{id}/propostas/personalizada", propostaHandler.CriarPersonalizada).Methods("POST")

	/* ================== Configurações e integrações ================== */
	api.HandleFunc("/configuracoes", configuracaoHandler.CriarConfiguracao).Methods("POST")
	api.HandleFunc("/configuracoes", configuracaoHandler.ListarConfiguracoes).Methods("GET")
	api.HandleFunc("/configuracoes/{id}", configuracaoHandler.AtualizarConfiguracao).Methods("PUT")
	api.HandleFunc("/configuracoes/{id}", configuracaoHandler.DeletarConfiguracao).Methods("DELETE")
	admin.HandleFunc("/integracoes", configuracaoHandler.CriarIntegracao).Methods("POST")
	api.HandleFunc("/integracoes", configuracaoHandler.ListarIntegracoes).Methods("GET")
	admin.HandleFunc("/integracoes/{id}", configuracaoHandler.AtualizarIntegracao).Methods("PUT")
	admin.HandleFunc("/integracoes/{id}", configuracaoHandler.DeletarIntegracao).Methods("DELETE")

	handler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}).Handler(r)

	porta := os.Getenv("PORT")
	if porta == "" {
		porta = "8080"
	}

	logger.Info("servidor iniciado", zap.String("porta", porta))
	if err := http.ListenAndServe(":"+porta, handler); err != nil {
		logger.Fatal("erro no servidor http", zap.Error(err))
	}
}
