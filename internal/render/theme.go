package render

import "diff-annotator/internal/config"

// Theme carries every styling decision the renderer recognizes. It is
// populated from config and handed to decorators; the projector never sees it.
type Theme struct {
	AddedLineBorder    string
	ModifiedLineBorder string
	InsertedTextColor  string
	DeletedTextColor   string
	GhostLineColor     string
}

func ThemeFromConfig(cfg *config.Config) Theme {
	return Theme{
		AddedLineBorder:    cfg.AddedLineBorder,
		ModifiedLineBorder: cfg.ModifiedLineBorder,
		InsertedTextColor:  cfg.InsertedTextColor,
		DeletedTextColor:   cfg.DeletedTextColor,
		GhostLineColor:     cfg.GhostLineColor,
	}
}

// ansi maps the recognized color names to foreground escape codes. Unknown
// names fall back to no styling.
func ansi(color string) string {
	switch color {
	case "red":
		return "\x1b[31m"
	case "green":
		return "\x1b[32m"
	case "yellow":
		return "\x1b[33m"
	case "blue":
		return "\x1b[34m"
	case "magenta":
		return "\x1b[35m"
	case "cyan":
		return "\x1b[36m"
	default:
		return ""
	}
}

const ansiReset = "\x1b[0m"
