package core

// Color is the foreground color of a screen cell. The front end maps each
// value to a terminal color.
type Color uint8

const (
	ColorDefault Color = iota
	ColorSky
	ColorBird
	ColorBeak
	ColorPipe
	ColorPipeEdge
	ColorGround
	ColorGrass
	ColorText
	ColorHighlight
	ColorPanel
	ColorButton
)

// String returns the color name.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorSky:
		return "sky"
	case ColorBird:
		return "bird"
	case ColorBeak:
		return "beak"
	case ColorPipe:
		return "pipe"
	case ColorPipeEdge:
		return "pipe-edge"
	case ColorGround:
		return "ground"
	case ColorGrass:
		return "grass"
	case ColorText:
		return "text"
	case ColorHighlight:
		return "highlight"
	case ColorPanel:
		return "panel"
	case ColorButton:
		return "button"
	default:
		return "unknown"
	}
}
