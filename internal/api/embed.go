package api

import _ "embed"

// indexPage is the static endpoint overview served at /.
//
//go:embed index.html
var indexPage []byte
