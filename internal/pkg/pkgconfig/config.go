package pkgconfig

// Config abstracts configuration access so modules do not depend on a
// concrete configuration library.
type Config interface {
	GetString(key string) string
	GetInt(key string) int
	GetBool(key string) bool
	Close() error
}
