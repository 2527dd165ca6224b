package schemadiff

type (
	// DiffOptions controls which presence-only records are produced for an entity kind.
	DiffOptions struct {
		// IgnoreExtra suppresses drops of entities that only exist in the target
		IgnoreExtra bool `yaml:"extra"`
		// IgnoreMissing suppresses creates of entities that only exist in the source
		IgnoreMissing bool `yaml:"missing"`
	}

	// Options configures a comparison. Columns, constraints, indexes and triggers have
	// no options of their own; they follow their table.
	Options struct {
		Tables     DiffOptions `yaml:"tables"`
		Functions  DiffOptions `yaml:"functions"`
		Enums      DiffOptions `yaml:"enums"`
		Extensions DiffOptions `yaml:"extensions"`
		Parameters DiffOptions `yaml:"parameters"`
	}
)

// ignored reports whether a pair of entities must not produce any record. A zero value
// of T means the entity is absent on that side.
func ignored[T comparable](source, target T, opts DiffOptions, synchronized func(T) bool) bool {
	var absent T

	if opts.IgnoreExtra && source == absent {
		return true
	}

	if opts.IgnoreMissing && target == absent {
		return true
	}

	return (source != absent && !synchronized(source)) || (target != absent && !synchronized(target))
}
