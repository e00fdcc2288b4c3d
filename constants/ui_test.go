package constants

import (
	"testing"
	"unicode/utf8"
)

func TestSpeedRange(t *testing.T) {
	if MinSpeed < 1 || MinSpeed > MaxSpeed {
		t.Fatalf("Invalid speed range [%d,%d]", MinSpeed, MaxSpeed)
	}
	if InitialSpeed < MinSpeed || InitialSpeed > MaxSpeed {
		t.Errorf("Initial speed %d outside [%d,%d]", InitialSpeed, MinSpeed, MaxSpeed)
	}
	// Both bounds are reachable from the start value in whole steps
	if (MaxSpeed-InitialSpeed)%SpeedStep != 0 || (InitialSpeed-MinSpeed)%SpeedStep != 0 {
		t.Errorf("Speed step %d does not land on bounds from %d", SpeedStep, InitialSpeed)
	}
}

func TestGlyphsAreSingleRunes(t *testing.T) {
	glyphs := map[string]string{
		"head":   GlyphHead,
		"food":   GlyphFood,
		"empty":  GlyphEmpty,
		"top":    BorderTopLeft + BorderTopRight,
		"bottom": BorderBottomLeft + BorderBottomRight,
	}
	for name, g := range glyphs {
		want := 1
		if name == "top" || name == "bottom" {
			want = 2
		}
		if n := utf8.RuneCountInString(g); n != want {
			t.Errorf("%s: expected %d runes, got %d", name, want, n)
		}
	}
}

func TestGameOverFitsField(t *testing.T) {
	if n := utf8.RuneCountInString(GameOverText); n > FieldCols {
		t.Errorf("Banner of %d runes wider than field of %d", n, FieldCols)
	}
	if FieldRows < 1 {
		t.Errorf("Field needs at least one row, got %d", FieldRows)
	}
}
