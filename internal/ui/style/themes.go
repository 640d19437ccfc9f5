package style

import (
	"os"
	"strings"

	"github.com/muesli/termenv"
)

// Palette holds the colors used for each semantic role.
// Values are ANSI color numbers (0-255) or "bold".
type Palette struct {
	Success   string
	Warning   string
	Error     string
	Info      string
	Muted     string
	Header    string
	Converter string
	Terminal  string
}

// Dark backgrounds get bright colors, light backgrounds get dark ones.
var (
	DarkPalette = Palette{
		Success:   "10",
		Warning:   "11",
		Error:     "9",
		Info:      "14",
		Muted:     "245",
		Header:    "bold",
		Converter: "12",
		Terminal:  "13",
	}
	LightPalette = Palette{
		Success:   "28",
		Warning:   "130",
		Error:     "124",
		Info:      "25",
		Muted:     "242",
		Header:    "bold",
		Converter: "19",
		Terminal:  "90",
	}
)

// LoadPalette picks the palette from ARGTREE_THEME ("dark" or "light"),
// falling back to the terminal's background.
func LoadPalette() Palette {
	switch strings.ToLower(os.Getenv("ARGTREE_THEME")) {
	case "dark":
		return DarkPalette
	case "light":
		return LightPalette
	}

	if termenv.HasDarkBackground() {
		return DarkPalette
	}
	return LightPalette
}
