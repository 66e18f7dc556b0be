package core

// Color is a semantic foreground color for a screen cell.
// The platform layer maps each value to a concrete terminal style.
type Color uint8

// Palette used by the game renderer.
const (
	ColorDefault Color = iota
	ColorSky
	ColorGround
	ColorPipe
	ColorPipeCap
	ColorAvatar
	ColorScore
	ColorPrompt
	ColorFaded
	ColorDanger
)

// String returns the palette name of the color.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorSky:
		return "sky"
	case ColorGround:
		return "ground"
	case ColorPipe:
		return "pipe"
	case ColorPipeCap:
		return "pipe-cap"
	case ColorAvatar:
		return "avatar"
	case ColorScore:
		return "score"
	case ColorPrompt:
		return "prompt"
	case ColorFaded:
		return "faded"
	case ColorDanger:
		return "danger"
	default:
		return "unknown"
	}
}
