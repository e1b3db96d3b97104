package config

// DuplicateConfig holds settings for duplicate position detection.
type DuplicateConfig struct {
	// Suppress drops positions that were already output
	Suppress bool

	// ExactMatch also compares the move clocks
	ExactMatch bool

	// Capacity limits the number of remembered positions (0 = unlimited)
	Capacity int
}

// NewDuplicateConfig creates a DuplicateConfig with default values.
func NewDuplicateConfig() *DuplicateConfig {
	return &DuplicateConfig{}
}
