package snippet

// Style names a visual role that a Colorizer knows how to render.
type Style int

const (
	StyleLineNumber Style = iota
	StyleHighlight
)

func (s Style) String() string {
	switch s {
	case StyleLineNumber:
		return "line-number"
	case StyleHighlight:
		return "highlight"
	default:
		return "unknown"
	}
}

// Colorizer renders text in the given style.
type Colorizer func(text string, style Style) string

// Plain returns text unchanged. It is the default for non-terminal output.
func Plain(text string, _ Style) string {
	return text
}
