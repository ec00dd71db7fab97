package store

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/maelferrand/brume/services/code-service/internal/core/ports"
)

// takeIfMatch compare et supprime en un aller-retour. Le script est
// atomique côté Redis : pas de fenêtre entre GET et DEL.
var takeIfMatch = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

type RedisCodeStore struct {
	client *redis.Client
}

func NewRedisCodeStore(client *redis.Client) ports.CodeStore {
	return &RedisCodeStore{client: client}
}

// Put écrase l'entrée existante : réémettre invalide l'ancien code.
// L'expiration est portée par le TTL Redis, aucun timer applicatif.
func (s *RedisCodeStore) Put(ctx context.Context, key, code string, ttl time.Duration) error {
	return s.client.Set(ctx, key, code, ttl).Err()
}

func (s *RedisCodeStore) TakeIfMatch(ctx context.Context, key, code string) (bool, error) {
	deleted, err := takeIfMatch.Run(ctx, s.client, []string{key}, code).Int()
	if err != nil {
		return false, err
	}
	return deleted == 1, nil
}
