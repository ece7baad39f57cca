package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit       // q, Esc, Ctrl+C
	IntentResize     // Terminal resize event
	IntentToggleMute // s, Ctrl+S
	IntentToggleMenu // m, ?
	IntentPause      // Space

	// Gravity (keyboard sensor)
	IntentTiltLeft     // Left arrow
	IntentTiltRight    // Right arrow
	IntentGravityUp    // Up arrow, weaker
	IntentGravityDown  // Down arrow, stronger
	IntentGravityReset // 0

	// Population
	IntentBodiesMore  // +, =
	IntentBodiesFewer // -, _
	IntentBlocksMore  // ]
	IntentBlocksFewer // [
	IntentPaletteNext // c
	IntentRestart     // r

	// Mouse
	IntentMouseDown // Left button press
	IntentMouseDrag // Motion with left button held
	IntentMouseUp   // Left button release
)

// Intent represents a parsed semantic action
// Pure data struct with no function pointers or engine dependencies
type Intent struct {
	Type IntentType
	// X, Y are the cell for mouse intents, or the new size for IntentResize
	X, Y int
}
