// Package resources embeds the files shipped with the application.
package resources

import "embed"

//go:embed layout/*.yaml
var LayoutFiles embed.FS
