package rdx

import (
	"arone/globals"

	"github.com/redis/go-redis/v9"
)

// Store adapts the Redis client to the string-keyed blob store consumed by
// the offers and settings packages. A missing key reads as an empty value,
// not an error.
type Store struct{}

func (Store) Get(key string) (string, error) {
	v, err := Conn.Get(globals.Ctx, key).Result()
	if err == redis.Nil {
		return "", nil
	}
	return v, err
}

func (Store) Set(key, value string) error {
	return RdxSet(key, value)
}
