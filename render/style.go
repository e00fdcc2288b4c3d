package render

// Style selects one fixed SGR attribute set; styles never nest
type Style uint8

const (
	StyleDefault Style = iota
	StyleRed
	StyleGreen
	StyleBlink

	styleCount
)

// styleSequences is indexed by Style
var styleSequences = [styleCount][]byte{
	StyleDefault: []byte("\x1b[0m"),
	StyleRed:     []byte("\x1b[0;31m"),
	StyleGreen:   []byte("\x1b[0;32m"),
	StyleBlink:   []byte("\x1b[5m"),
}

// Sequence returns the SGR bytes for s, falling back to the default style
func (s Style) Sequence() []byte {
	if s >= styleCount {
		return styleSequences[StyleDefault]
	}
	return styleSequences[s]
}

var styleNames = [styleCount]string{
	StyleDefault: "default",
	StyleRed:     "red",
	StyleGreen:   "green",
	StyleBlink:   "blink",
}

func (s Style) String() string {
	if s >= styleCount {
		return "invalid"
	}
	return styleNames[s]
}
