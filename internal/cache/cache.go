package cache

import (
	"context"
	"encoding/json"
	"os"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// TTLPadrao é o tempo de vida das leituras em cache. Após qualquer mutação
// bem-sucedida as chaves afetadas são invalidadas; o TTL é só rede de segurança.
const TTLPadrao = 5 * time.Minute

// Cache embrulha o cliente Redis usado para leituras quentes (board do
// pipeline, diagnósticos por empresa). Todas as operações degradam para
// no-op quando o Redis não está configurado ou está fora do ar.
type Cache struct {
	rdb *redis.Client
	log *zap.Logger
}

// Novo cria o cache a partir de REDIS_ADDR / REDIS_PASSWORD / REDIS_DB.
// REDIS_ADDR vazio desabilita o cache por completo.
func Novo(log *zap.Logger) *Cache {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		return &Cache{log: log}
	}
	dbNum, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       dbNum,
	})
	return &Cache{rdb: rdb, log: log}
}

// BuscarJSON tenta preencher destino com o valor em cache. Retorna false em
// cache miss ou em qualquer falha de rede/decodificação.
func (c *Cache) BuscarJSON(ctx context.Context, chave string, destino any) bool {
	if c == nil || c.rdb == nil {
		return false
	}
	raw, err := c.rdb.Get(ctx, chave).Bytes()
	if err != nil {
		return false
	}
	if err := json.Unmarshal(raw, destino); err != nil {
		c.log.Warn("cache com payload inválido", zap.String("chave", chave), zap.Error(err))
		return false
	}
	return true
}

// GravarJSON serializa e grava o valor com o TTL padrão. Falhas são apenas
// logadas: o cache nunca bloqueia uma resposta.
func (c *Cache) GravarJSON(ctx context.Context, chave string, valor any) {
	if c == nil || c.rdb == nil {
		return
	}
	raw, err := json.Marshal(valor)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, chave, raw, TTLPadrao).Err(); err != nil {
		c.log.Warn("falha ao gravar cache", zap.String("chave", chave), zap.Error(err))
	}
}

// Invalidar remove as chaves informadas após uma mutação bem-sucedida.
func (c *Cache) Invalidar(ctx context.Context, chaves ...string) {
	if c == nil || c.rdb == nil || len(chaves) == 0 {
		return
	}
	if err := c.rdb.Del(ctx, chaves...).Err(); err != nil {
		c.log.Warn("falha ao invalidar cache", zap.Strings("chaves", chaves), zap.Error(err))
	}
}
