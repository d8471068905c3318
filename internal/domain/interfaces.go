package domain

// ─── Service Interfaces ─────────────────────────────────────────────────────
// These interfaces define boundaries between layers.
// Infrastructure implements them; the application layer depends on them.

// Store is the durable key-value collaborator the leveling engine runs on.
// Values are JSON-encoded strings; the engine owns (de)serialization.
// Get returns "" for an absent key — "" is never a valid stored value.
type Store interface {
	Get(key string) (string, error)
	GetMulti(keys []string) (map[string]string, error)
	Set(key, value string) error
	Delete(keys ...string) error
	Keys() ([]string, error)
}
