package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/thecubes/internal/core"
	"github.com/vovakirdan/thecubes/internal/games/cubes"
)

// ansiCodes maps palette colors to terminal color codes.
var ansiCodes = map[core.Color]lipgloss.Color{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
}

// styleKey selects a style: sprite blocks are filled with their color in
// the background too, so a cube reads as one solid area even where the
// font leaves gaps between glyphs.
type styleKey struct {
	color core.Color
	block bool
}

var styles = func() map[styleKey]lipgloss.Style {
	m := map[styleKey]lipgloss.Style{
		{core.ColorDefault, false}: lipgloss.NewStyle(),
		{core.ColorDefault, true}:  lipgloss.NewStyle(),
	}
	for c, code := range ansiCodes {
		m[styleKey{c, false}] = lipgloss.NewStyle().Foreground(code)
		m[styleKey{c, true}] = lipgloss.NewStyle().Foreground(code).Background(code)
	}
	return m
}()

// isBlock reports whether r is one of the glyphs sprites are drawn with.
func isBlock(r rune) bool {
	return r == cubes.CubeChar || r == cubes.PlayerChar
}

// span is a run of adjacent cells drawn with one style.
type span struct {
	key  styleKey
	text string
}

// rowSpans splits row y into spans of cells that share a style.
func rowSpans(s *core.Screen, y int) []span {
	var spans []span
	var text strings.Builder
	var cur styleKey

	for x, w := 0, s.Width(); x < w; x++ {
		cell := s.GetCell(x, y)
		key := styleKey{color: cell.Color, block: cell.Color != core.ColorDefault && isBlock(cell.Rune)}
		if x > 0 && key != cur {
			spans = append(spans, span{key: cur, text: text.String()})
			text.Reset()
		}
		cur = key
		text.WriteRune(cell.Rune)
	}
	if s.Width() > 0 {
		spans = append(spans, span{key: cur, text: text.String()})
	}
	return spans
}

// RenderScreen turns the screen buffer into styled terminal output, one
// escape sequence per span rather than per cell.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y, h := 0, s.Height(); y < h; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, sp := range rowSpans(s, y) {
			style, ok := styles[sp.key]
			if !ok {
				style = styles[styleKey{}]
			}
			sb.WriteString(style.Render(sp.text))
		}
	}
	return sb.String()
}
