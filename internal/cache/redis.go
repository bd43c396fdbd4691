// Package cache provides a Redis-backed cache for inference results
package cache

import (
	"context"
	"encoding/binary"
	"fmt"
	"math"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/redis/go-redis/v9"
)

// Cache wraps a Redis client for storing output tensors keyed by input hash
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// New creates a Cache connected to the specified Redis address.
// If addr is empty, defaults to localhost:6379.
func New(addr string, ttl time.Duration) (*Cache, error) {
	if addr == "" {
		addr = "localhost:6379"
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: "",
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", addr, err)
	}

	return &Cache{client: client, ttl: ttl}, nil
}

// Key derives a cache key from the model identity and the input shape and
// data. The model path is part of the hash so a shared Redis, or a restart
// against a different model, never serves another model's outputs; the
// shape is hashed alongside the data so identical values under different
// geometry never collide.
func Key(modelPath string, shape []int64, data []float32) string {
	h := xxhash.New()
	h.WriteString(modelPath)
	h.Write([]byte{0})
	var buf [8]byte
	for _, d := range shape {
		binary.LittleEndian.PutUint64(buf[:], uint64(d))
		h.Write(buf[:])
	}
	for _, f := range data {
		binary.LittleEndian.PutUint32(buf[:4], math.Float32bits(f))
		h.Write(buf[:4])
	}
	return fmt.Sprintf("infer:%016x", h.Sum64())
}

// GetResult fetches a cached output tensor. A miss returns (nil, false, nil).
func (c *Cache) GetResult(ctx context.Context, key string) ([]float32, bool, error) {
	if c == nil || c.client == nil {
		return nil, false, nil
	}

	raw, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get %s: %w", key, err)
	}

	out, err := decodeFloats(raw)
	if err != nil {
		return nil, false, fmt.Errorf("corrupt cache entry %s: %w", key, err)
	}
	return out, true, nil
}

// SetResult stores an output tensor under the given key with the cache TTL.
func (c *Cache) SetResult(ctx context.Context, key string, output []float32) error {
	if c == nil || c.client == nil {
		return fmt.Errorf("cache client is nil")
	}

	if err := c.client.Set(ctx, key, encodeFloats(output), c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	return nil
}

// Close closes the Redis connection
func (c *Cache) Close() error {
	if c != nil && c.client != nil {
		return c.client.Close()
	}
	return nil
}

func encodeFloats(values []float32) []byte {
	buf := make([]byte, 4*len(values))
	for i, f := range values {
		binary.LittleEndian.PutUint32(buf[4*i:], math.Float32bits(f))
	}
	return buf
}

func decodeFloats(raw []byte) ([]float32, error) {
	if len(raw)%4 != 0 {
		return nil, fmt.Errorf("payload length %d is not a multiple of 4", len(raw))
	}
	out := make([]float32, len(raw)/4)
	for i := range out {
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(raw[4*i:]))
	}
	return out, nil
}
