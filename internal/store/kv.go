package store

// StorageKey is the slot the shopping list lives in.
const StorageKey = "shopping-list-items"

// KV is a persistent key-value slot. Implementations live in jsonstore,
// sqlitestore and memstore.
type KV interface {
	// Get returns found=false with a nil error when the key was never set.
	Get(key string) (value []byte, found bool, err error)
	Set(key string, value []byte) error
}
