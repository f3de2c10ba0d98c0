package session

import "context"

// Storage keys. The three together define session state; partial presence
// (for example a token without the isAuthenticated sentinel) is treated as
// Anonymous by the gate.
const (
	KeyToken           = "token"
	KeyIsAuthenticated = "isAuthenticated"
	KeyUser            = "user"

	// AuthenticatedSentinel is the value stored under KeyIsAuthenticated.
	AuthenticatedSentinel = "true"
)

// Storage is the durable key–value store the session lives in. It is an
// injected dependency so view code never reaches for ambient storage and
// tests can substitute an in-memory fake.
//
// Reads and writes are synchronous and must never touch the network.
type Storage interface {
	// Get returns the stored value, or "" if the key is absent.
	Get(ctx context.Context, key string) (string, error)

	// SetAll writes every given key atomically: a reader observes either
	// none or all of the values, never a torn subset.
	SetAll(ctx context.Context, values map[string]string) error

	// Clear removes every session key. Safe to call when already empty.
	Clear(ctx context.Context) error
}
