package constants

// Glyphs drawn into the field
const (
	GlyphHead  = "█"
	GlyphFood  = "❤"
	GlyphEmpty = " "
)

// Border pieces
const (
	BorderTopLeft     = "┌"
	BorderTopRight    = "┐"
	BorderBottomLeft  = "└"
	BorderBottomRight = "┘"
	BorderHorizontal  = "─"
	BorderVertical    = "│"
)

// GameOverText is the round-over banner
const GameOverText = "Game Over!"
