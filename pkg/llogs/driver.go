package llogs

// Driver is a log sink that owns an underlying resource.
type Driver interface {
	Close() bool
}
