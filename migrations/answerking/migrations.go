// Package answerking embeds the goose migrations for the menu and ordering schema.
package answerking

import "embed"

//go:embed *.sql
var FS embed.FS
