// Package config loads the editor options file.
//
// Options are read from TOML (.toml) or YAML (.yaml, .yml) files chosen by
// extension. Keys missing from the file keep their defaults; a missing file
// yields the defaults unchanged.
//
// # File Format
//
//	[editor]
//	tab_width = 4
//	text_limit = -1
//	double_click = true
//	overwrite = false
//	editable = true
//	line_delimiter = "\n"
//
//	[font]
//	name = "Go"
//	size = 12
//
//	[colors]
//	foreground = "#d4d4d4"
//	background = "#1e1e1e"
//	selection_foreground = "#ffffff"
//	selection_background = "#264f78"
//
//	[highlight]
//	language = "go"
//	style = "monokai"
//
//	[log]
//	level = "info"
//
// # Live Reload
//
// A Watcher observes the options file through fsnotify and hands freshly
// parsed options to a callback after each write:
//
//	w, err := config.NewWatcher(path, func(opts config.Options, err error) {
//	    // apply opts
//	})
//	defer w.Close()
package config
