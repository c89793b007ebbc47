package repository

import "context"

// EventRepository persists raw webhook deliveries, one record per delivery.
// Save must write the payload verbatim: a Load with the returned key yields
// byte-identical content. Records are never updated or deleted.
type EventRepository interface {
	Save(ctx context.Context, payload []byte) (string, error)
	Load(ctx context.Context, key string) ([]byte, error)
}
