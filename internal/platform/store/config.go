package store

import "io/fs"

// Config aggregates per backend configuration
type Config struct {
	AppName string

	PG    PGConfig
	Files FilesConfig
}

// PGConfig configures postgres connectivity and tracing
type PGConfig struct {
	Enabled     bool
	URL         string
	MaxConns    int32
	LogSQL      bool
	SlowQueryMs int
}

// FilesConfig configures the json document source
type FilesConfig struct {
	Enabled bool

	// Dir overrides Seed when set
	Dir string

	// Seed is read when Dir is empty
	Seed fs.FS

	// Required documents are checked by Guard
	Required []string
}
