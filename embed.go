package lingua

import "embed"

//go:embed data
var dataFS embed.FS
