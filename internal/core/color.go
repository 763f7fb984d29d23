package core

// Color is the foreground colour of a screen cell. The TUI maps each value
// to an ANSI 256 code; Screen.String ignores it.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed           // walker
	ColorGreen         // goal
	ColorYellow        // remaining path
	ColorBlue          // visited trail
	ColorWhite         // walls
	ColorGray          // HUD chrome
)
