package config

import _ "embed"

// DefaultConfigYAML built-in defaults, overridden by external files and env
//
//go:embed default.yaml
var DefaultConfigYAML []byte
