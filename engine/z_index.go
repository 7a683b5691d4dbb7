package engine

// Z-layer constants determine draw ordering for spawned consoles.
// Higher values are "on top".
const (
	ZBackground  = 0
	ZConsoleBase = 100
	ZConsoleStep = 10
	ZOverlay     = 1000
)

// ConsoleZ returns the depth layer for the console at stack position idx.
// Console 0 is the bottom layer; each further console draws above the last.
func ConsoleZ(idx int) int {
	return ZConsoleBase + idx*ZConsoleStep
}
