package generator

// Options configures puzzle generation behavior.
type Options struct {
	// Seed for the random stream. Every random draw during generation
	// comes from one stream, so a fixed non-zero seed reproduces the
	// same puzzle. 0 means derive a seed from the wall clock.
	Seed int64

	// ExtraHints is the number of solution cells copied back into the
	// puzzle after hint removal, to make it easier. Values larger than
	// the number of empty cells fill every empty cell.
	ExtraHints int
}

// DefaultOptions returns standard generator options: a clock-derived
// seed and a minimal puzzle with no hints added back.
func DefaultOptions() *Options {
	return &Options{
		Seed:       0,
		ExtraHints: 0,
	}
}
