package smoothview

import (
	_ "embed"
)

//go:embed VERSION
var Version string

//go:embed smoothview.toml
var DefaultConfig string
