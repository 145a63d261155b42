package devblog

import "embed"

// EmbeddedAssets contains the default stylesheet and favicon. Files of the
// same name in PublicDir take precedence.
//
//go:embed embedded/*
var EmbeddedAssets embed.FS
