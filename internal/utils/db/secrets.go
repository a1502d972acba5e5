package db

import (
	"context"
	"encoding/json"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
)

type credenciaisBanco struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// credenciais resolve usuário e senha do banco. Variáveis de ambiente têm
// precedência; na ausência delas o segredo é lido do AWS Secrets Manager.
func credenciais(secretID string) (string, string, error) {
	usuario := os.Getenv("DB_USERNAME")
	senha := os.Getenv("DB_PASSWORD")
	if usuario != "" && senha != "" {
		return usuario, senha, nil
	}

	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		return "", "", err
	}
	client := secretsmanager.NewFromConfig(cfg)

	result, err := client.GetSecretValue(context.TODO(), &secretsmanager.GetSecretValueInput{
		SecretId:     aws.String(secretID),
		VersionStage: aws.String("AWSCURRENT"),
	})
	if err != nil {
		return "", "", err
	}

	var secret credenciaisBanco
	if err := json.Unmarshal([]byte(*result.SecretString), &secret); err != nil {
		return "", "", err
	}
	return secret.Username, secret.Password, nil
}
