// Copyright © 2025 The gnaw authors

// Package docs embeds user guides for use by the CLI.
package docs

import _ "embed"

//go:embed errors.md
var ErrorsGuide string
