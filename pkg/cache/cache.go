package cache

// ByteCache defines the interface for caching immutable asset bytes.
// Implementations must never hand out a slice that a later Set can mutate.
type ByteCache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	Delete(key string)
	Len() int
}
