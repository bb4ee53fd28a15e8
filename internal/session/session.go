package session

import (
	"context"
	"net/http"
)

// Keys under which the signed-in identity is stored. The authorizer reads
// the role on every request; the subject is kept for audit logging.
const (
	KeyUserSubject = "user_subject"
	KeyUserRole    = "user_role"
)

// Manager is an interface that abstracts the session management implementation.
// This allows for easier testing and dependency injection.
type Manager interface {
	LoadAndSave(next http.Handler) http.Handler
	Put(ctx context.Context, key string, val interface{})
	GetString(ctx context.Context, key string) string
	Destroy(ctx context.Context) error
}
