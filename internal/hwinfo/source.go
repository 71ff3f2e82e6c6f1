package hwinfo

// Source supplies raw driver readings for hardware categories. Lookup
// returns ok=false when the source has nothing for the category; sources
// never return errors, they simply declare themselves unavailable.
type Source interface {
	Name() string
	Lookup(c Category) (value string, ok bool)
}

// ModuleCounter is implemented by sources that can report the number of
// loaded kernel modules. The resolver takes the first nonzero answer.
type ModuleCounter interface {
	ModuleCount() int
}
