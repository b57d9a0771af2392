package macrogen

import (
	_ "embed"
)

// PPMapTemplate renders the full generated block. Lists that need wrapping
// are pre-rendered by the generator and passed in as strings.
//
//go:embed templates/pp_map.h.tmpl
var PPMapTemplate string
