package embedded

import (
	_ "embed"
)

// Embed the web UI assets

//go:embed web/index.html
var IndexHTML []byte
