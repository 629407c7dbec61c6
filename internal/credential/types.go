package credential

// Source tells where the active key came from.
type Source string

const (
	SourceNone   Source = "none"
	SourceStore  Source = "store"
	SourceConfig Source = "config"
)

// Status is the public view of the credential; it never carries the key itself.
type Status struct {
	Configured bool
	Source     Source
}
