package core

// Color is the foreground color of a screen cell. The platform maps each
// value to an ANSI color; games only pick from this palette.
type Color uint8

const (
	ColorDefault Color = iota
	ColorWall
	ColorDoor
	ColorPellet
	ColorPower
	ColorPacman
	ColorBlinky
	ColorPinky
	ColorInky
	ColorClyde
	ColorScared
	ColorScaredFlash
	ColorEyes
	ColorText
	ColorDim
)
