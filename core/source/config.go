package source

// Config describes the external tabular sources.
type Config struct {
	// PrimaryID names the authoritative sheet synchronized into the store.
	PrimaryID string `mapstructure:"primary_id" default:"inventory"`
	// SecondaryID names the independently maintained sheet used for validation.
	SecondaryID string `mapstructure:"secondary_id" default:"audit"`
	// Prefix is the object prefix under which sheets are exported as <id>.csv.
	Prefix string `mapstructure:"prefix" default:"sheets"`
	// HeaderRow is the zero-based row index of the header; rows above it are banners.
	HeaderRow int `mapstructure:"header_row" default:"1"`
	// ChunkSize is the number of data rows decoded per task.
	ChunkSize int `mapstructure:"chunk_size" default:"5000"`
	// Workers bounds the concurrency of chunk decoding.
	Workers int `mapstructure:"workers" default:"4"`
	// FetchAttempts is the number of tries for a transient fetch failure.
	FetchAttempts int `mapstructure:"fetch_attempts" default:"3"`
}

// Options returns the normalization options derived from the config.
func (c Config) Options() Options {
	return Options{
		HeaderRow: c.HeaderRow,
		ChunkSize: c.ChunkSize,
		Workers:   c.Workers,
	}
}
