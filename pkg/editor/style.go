package editor

import "github.com/matzehuels/nodecanvas/pkg/draw"

// ColorID indexes the editor color table.
type ColorID int

const (
	ColorGridBackground ColorID = iota
	ColorGridPrimaryLines
	ColorGridSecondaryLines

	ColorNodeBackground
	ColorNodeHoveredBackground
	ColorNodeActiveBackground
	ColorNodeOutline
	ColorNodeOutlineSelected

	ColorPinBackground

	ColorText

	ColorSelectRegionBackground
	ColorSelectRegionOutline

	colorCount
)

// Style holds the visual parameters of a graph. All lengths are in
// unscaled screen units; the camera scale is applied at draw time.
type Style struct {
	GridPrimaryStep        float32
	GridPrimaryThickness   float32
	GridSecondaryThickness float32

	NodeRounding                 float32
	NodePadding                  float32
	NodeOutlineThickness         float32
	NodeOutlineSelectedThickness float32

	SelectRegionRounding         float32
	SelectRegionOutlineThickness float32

	ItemSpacing         float32
	PinRadius           float32
	PinOutlineThickness float32

	ConnectionThickness float32

	// TextWidth and TextHeight are the advance and line height the host's
	// renderer uses for the editor font. Layout treats text as a fixed grid.
	TextWidth  float32
	TextHeight float32

	Colors [colorCount]draw.Color

	// PinColors maps pin type tags to colors. Applications with typed pins
	// replace this; missing types fall back to the last entry.
	PinColors []draw.Color
}

// Color returns the table entry for id.
func (s *Style) Color(id ColorID) draw.Color { return s.Colors[id] }

// PinColor returns the color for a pin type tag.
func (s *Style) PinColor(t PinType) draw.Color {
	if len(s.PinColors) == 0 {
		return draw.RGB(0xCC, 0xCC, 0xCC)
	}
	if int(t) >= len(s.PinColors) || t < 0 {
		return s.PinColors[len(s.PinColors)-1]
	}
	return s.PinColors[t]
}

// DefaultStyle returns the stock dark theme.
func DefaultStyle() Style {
	s := Style{
		GridPrimaryStep:        5,
		GridPrimaryThickness:   2,
		GridSecondaryThickness: 1,

		NodeRounding:                 8,
		NodePadding:                  8,
		NodeOutlineThickness:         2,
		NodeOutlineSelectedThickness: 4,

		SelectRegionRounding:         2,
		SelectRegionOutlineThickness: 2,

		ItemSpacing:         4,
		PinRadius:           8,
		PinOutlineThickness: 3,

		ConnectionThickness: 2,

		TextWidth:  8,
		TextHeight: 20,

		PinColors: []draw.Color{draw.RGB(0xCC, 0xCC, 0xCC)},
	}

	s.Colors[ColorGridBackground] = draw.RGB(0x11, 0x11, 0x11)
	s.Colors[ColorGridPrimaryLines] = draw.RGB(0x88, 0x88, 0x88)
	s.Colors[ColorGridSecondaryLines] = draw.RGB(0x44, 0x44, 0x44)

	s.Colors[ColorNodeBackground] = draw.RGB(0x88, 0x88, 0x88)
	s.Colors[ColorNodeHoveredBackground] = draw.RGB(0x9C, 0x9C, 0x9C)
	s.Colors[ColorNodeActiveBackground] = draw.RGB(0x7A, 0x7A, 0x7A)
	s.Colors[ColorNodeOutline] = draw.RGB(0x33, 0x33, 0x33)
	s.Colors[ColorNodeOutlineSelected] = draw.RGB(0xEF, 0xAE, 0x4B)

	s.Colors[ColorPinBackground] = draw.RGB(0x22, 0x22, 0x22)

	s.Colors[ColorText] = draw.RGB(0xE0, 0xE0, 0xE0)

	s.Colors[ColorSelectRegionBackground] = draw.RGBA(0xC9, 0x8E, 0x36, 0x44)
	s.Colors[ColorSelectRegionOutline] = draw.RGBA(0xEF, 0xAE, 0x4B, 0xBB)

	return s
}

// Settings holds the interaction parameters of a graph.
type Settings struct {
	// ZoomRate is the zoom step applied per wheel notch, proportional to the
	// current scale.
	ZoomRate float32
	// ZoomSmoothing controls how quickly the camera eases toward the zoom
	// target (higher is snappier).
	ZoomSmoothing float32
	// ZoomMin and ZoomMax clamp the zoom target.
	ZoomMin, ZoomMax float32
}

// DefaultSettings returns the stock interaction parameters.
func DefaultSettings() Settings {
	return Settings{
		ZoomRate:      0.1,
		ZoomSmoothing: 8,
		ZoomMin:       0.6,
		ZoomMax:       2.5,
	}
}
