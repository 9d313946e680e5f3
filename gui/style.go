package gui

// Spacing constants for consistent layout.
const (
	SpaceXS float32 = 2
	SpaceSM float32 = 4 // default item spacing
	SpaceMD float32 = 8
	SpaceLG float32 = 12
)

// Style defines the visual appearance of UI elements.
type Style struct {
	TextColor         uint32
	TextDisabledColor uint32 // also used for weak labels
	ErrorColor        uint32

	PanelColor     uint32
	ExtremeBgColor uint32 // background of header frames

	ButtonColor         uint32
	ButtonHoveredColor  uint32
	ButtonActiveColor   uint32
	ButtonDisabledColor uint32

	SelectedBgColor   uint32
	SelectedTextColor uint32
	HoveredBgColor    uint32

	InputBgColor        uint32
	InputFocusedBgColor uint32
	InputBorderColor    uint32

	SeparatorColor  uint32
	DropdownBgColor uint32
	ArrowColor      uint32
	ToggleOnColor   uint32

	ScrollbarBgColor   uint32
	ScrollbarGrabColor uint32

	FontScale     float32
	CharWidth     float32
	CharHeight    float32
	ItemSpacing   float32 // gap between items
	PanelPadding  float32
	ButtonPadding float32
	InputPadding  float32
	IconWidth     float32 // collapse icon and checkbox box
	IndentWidth   float32 // width of one indent mark in nested rows
	TextEditWidth float32 // default width of text and drag fields
	ScrollbarSize float32

	AnimationTime float32 // seconds for open/close transitions
}

// DefaultStyle returns the default style with sensible defaults.
func DefaultStyle() Style {
	return Style{
		TextColor:         ColorWhite,
		TextDisabledColor: ColorGray,
		ErrorColor:        RGBA(230, 70, 70, 255),

		PanelColor:     RGBA(20, 20, 20, 200),
		ExtremeBgColor: RGBA(10, 10, 10, 255),

		ButtonColor:         RGBA(50, 50, 50, 255),
		ButtonHoveredColor:  RGBA(70, 70, 70, 255),
		ButtonActiveColor:   RGBA(90, 90, 90, 255),
		ButtonDisabledColor: RGBA(30, 30, 30, 255),

		SelectedBgColor:   RGBA(50, 100, 150, 255),
		SelectedTextColor: ColorWhite,
		HoveredBgColor:    RGBA(60, 60, 60, 255),

		InputBgColor:        RGBA(30, 30, 30, 255),
		InputFocusedBgColor: RGBA(40, 40, 50, 255),
		InputBorderColor:    RGBA(100, 100, 100, 255),

		SeparatorColor:  RGBA(80, 80, 80, 255),
		DropdownBgColor: RGBA(25, 25, 25, 250),
		ArrowColor:      RGBA(180, 180, 180, 255),
		ToggleOnColor:   RGBA(50, 100, 150, 255),

		ScrollbarBgColor:   RGBA(20, 20, 20, 200),
		ScrollbarGrabColor: RGBA(90, 90, 90, 255),

		FontScale:     1.0,
		CharWidth:     8,
		CharHeight:    8,
		ItemSpacing:   4,
		PanelPadding:  8,
		ButtonPadding: 6,
		InputPadding:  4,
		IconWidth:     10,
		IndentWidth:   8,
		TextEditWidth: 160,
		ScrollbarSize: 10,

		AnimationTime: 0.1,
	}
}

// GTAStyle returns a GTA San Andreas-inspired style.
// Dark theme with cyan/yellow accents reminiscent of the game's menus.
func GTAStyle() Style {
	s := DefaultStyle()

	s.TextDisabledColor = RGBA(128, 128, 128, 255)
	s.PanelColor = RGBA(0, 0, 0, 220)
	s.ExtremeBgColor = RGBA(0, 60, 90, 255)

	s.ButtonColor = RGBA(40, 40, 40, 255)
	s.ButtonHoveredColor = RGBA(60, 80, 100, 255)
	s.ButtonActiveColor = RGBA(0, 150, 200, 255)
	s.ButtonDisabledColor = RGBA(30, 30, 30, 150)

	s.SelectedBgColor = RGBA(0, 120, 180, 255)
	s.HoveredBgColor = RGBA(50, 70, 90, 255)

	s.InputBgColor = RGBA(20, 20, 20, 255)
	s.InputFocusedBgColor = RGBA(30, 40, 50, 255)
	s.InputBorderColor = RGBA(0, 150, 200, 255)

	s.SeparatorColor = RGBA(0, 150, 200, 128)
	s.DropdownBgColor = RGBA(10, 10, 10, 250)
	s.ArrowColor = RGBA(0, 180, 230, 255)
	s.ToggleOnColor = RGBA(255, 200, 0, 255)
	s.ScrollbarGrabColor = RGBA(0, 150, 200, 255)

	s.FontScale = 1.5
	s.ItemSpacing = 6
	s.PanelPadding = 12
	s.ButtonPadding = 8
	s.InputPadding = 6
	s.IconWidth = 14
	s.IndentWidth = 12
	s.TextEditWidth = 220
	return s
}

// LightStyle returns a light theme.
func LightStyle() Style {
	s := DefaultStyle()

	s.TextColor = RGBA(20, 20, 20, 255)
	s.TextDisabledColor = RGBA(150, 150, 150, 255)
	s.ErrorColor = RGBA(200, 30, 30, 255)

	s.PanelColor = RGBA(245, 245, 245, 250)
	s.ExtremeBgColor = RGBA(255, 255, 255, 255)

	s.ButtonColor = RGBA(220, 220, 220, 255)
	s.ButtonHoveredColor = RGBA(200, 200, 200, 255)
	s.ButtonActiveColor = RGBA(180, 180, 180, 255)
	s.ButtonDisabledColor = RGBA(230, 230, 230, 255)

	s.SelectedBgColor = RGBA(0, 120, 215, 255)
	s.HoveredBgColor = RGBA(230, 230, 230, 255)

	s.InputBgColor = ColorWhite
	s.InputFocusedBgColor = ColorWhite
	s.InputBorderColor = RGBA(150, 150, 150, 255)

	s.SeparatorColor = RGBA(200, 200, 200, 255)
	s.DropdownBgColor = RGBA(255, 255, 255, 255)
	s.ArrowColor = RGBA(80, 80, 80, 255)
	s.ToggleOnColor = RGBA(0, 120, 215, 255)
	s.ScrollbarBgColor = RGBA(230, 230, 230, 255)
	s.ScrollbarGrabColor = RGBA(170, 170, 170, 255)
	return s
}

// StyleByName returns a built-in style by name.
func StyleByName(name string) (Style, bool) {
	switch name {
	case "", "default", "dark":
		return DefaultStyle(), true
	case "gta":
		return GTAStyle(), true
	case "light":
		return LightStyle(), true
	}
	return Style{}, false
}
