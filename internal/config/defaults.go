package config

import (
	_ "embed"
)

//go:embed defaults/t2048.yaml
var defaultYAML []byte
