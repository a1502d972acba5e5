package db

import (
	"fmt"
	"os"
	"strconv"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Conectar abre a conexão com o Postgres usando as variáveis de ambiente
// DB_HOST, DB_PORT, DB_NAME e as credenciais resolvidas por credenciais().
func Conectar() (*gorm.DB, error) {
	host := os.Getenv("DB_HOST")
	porta, err := strconv.ParseUint(os.Getenv("DB_PORT"), 10, 32)
	if err != nil {
		porta = 5432
	}
	nome := os.Getenv("DB_NAME")
	secretID := os.Getenv("DB_SECRET_ID")

	usuario, senha, err := credenciais(secretID)
	if err != nil {
		return nil, fmt.Errorf("erro ao resolver credenciais do banco: %w", err)
	}

	var sslMode string
	if os.Getenv("DB_SSL_MODE_DISABLE") == "true" {
		sslMode = " sslmode=disable"
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d%s",
		host, usuario, senha, nome, porta, sslMode)

	return gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	})
}
