package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderMacroBar renders a share-of-calories bar like "█████░░░░░ 34.5%".
// pct is a percentage in [0, 100]; out-of-range values are clamped. The bar
// is colored with the given style (use MacroStyle for the standard mapping).
func RenderMacroBar(style lipgloss.Style, pct float64, width int) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	if width < 2 {
		width = 2
	}

	filled := int(pct / 100 * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	return fmt.Sprintf("%s %s", style.Render(bar), FormatPct(pct))
}
