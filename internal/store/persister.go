package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// documentKey is the single fixed key the whole document lives under.
const documentKey = "tripboard:itinerary"

// ErrAbsent reports that no document has ever been persisted. Callers treat
// a structurally unreadable stored value the same way, via the load outcome.
var ErrAbsent = errors.New("no persisted document")

// Persister reads and writes the serialized document as one opaque value.
// Implementations must be safe for concurrent use.
type Persister interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, data []byte) error
}

// RedisPersister keeps the document under one Redis key, no TTL.
type RedisPersister struct {
	client *redis.Client
}

func NewRedisPersister(client *redis.Client) *RedisPersister {
	return &RedisPersister{client: client}
}

func (p *RedisPersister) Load(ctx context.Context) ([]byte, error) {
	val, err := p.client.Get(ctx, documentKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrAbsent
		}
		return nil, err
	}
	return val, nil
}

func (p *RedisPersister) Save(ctx context.Context, data []byte) error {
	return p.client.Set(ctx, documentKey, data, 0).Err()
}

// PostgresPersister keeps the document as one JSONB row keyed by documentKey.
type PostgresPersister struct {
	pool *pgxpool.Pool
}

func NewPostgresPersister(pool *pgxpool.Pool) *PostgresPersister {
	return &PostgresPersister{pool: pool}
}

func (p *PostgresPersister) Load(ctx context.Context) ([]byte, error) {
	var data []byte
	err := p.pool.QueryRow(ctx,
		`SELECT document FROM itinerary_documents WHERE key = $1`, documentKey,
	).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAbsent
		}
		return nil, err
	}
	return data, nil
}

func (p *PostgresPersister) Save(ctx context.Context, data []byte) error {
	_, err := p.pool.Exec(ctx, `
		INSERT INTO itinerary_documents (key, document, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE SET document = $2, updated_at = $3
	`, documentKey, data, time.Now())
	return err
}

// MemoryPersister keeps the document for the process lifetime only. It backs
// the "memory" storage mode and the tests.
type MemoryPersister struct {
	mu   sync.Mutex
	data []byte
}

func NewMemoryPersister() *MemoryPersister {
	return &MemoryPersister{}
}

func (p *MemoryPersister) Load(ctx context.Context) ([]byte, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.data == nil {
		return nil, ErrAbsent
	}
	out := make([]byte, len(p.data))
	copy(out, p.data)
	return out, nil
}

func (p *MemoryPersister) Save(ctx context.Context, data []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.data = make([]byte, len(data))
	copy(p.data, data)
	return nil
}
