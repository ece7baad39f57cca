package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Esc)
	SpecialKeys map[tcell.Key]IntentType

	// Printable rune bindings
	Runes map[rune]IntentType
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]IntentType{
			tcell.KeyCtrlC:  IntentQuit,
			tcell.KeyEscape: IntentQuit,
			tcell.KeyCtrlS:  IntentToggleMute,
			tcell.KeyLeft:   IntentTiltLeft,
			tcell.KeyRight:  IntentTiltRight,
			tcell.KeyUp:     IntentGravityUp,
			tcell.KeyDown:   IntentGravityDown,
		},

		Runes: map[rune]IntentType{
			'q': IntentQuit,
			's': IntentToggleMute,
			'm': IntentToggleMenu,
			'?': IntentToggleMenu,
			' ': IntentPause,
			'0': IntentGravityReset,
			'+': IntentBodiesMore,
			'=': IntentBodiesMore,
			'-': IntentBodiesFewer,
			'_': IntentBodiesFewer,
			']': IntentBlocksMore,
			'[': IntentBlocksFewer,
			'c': IntentPaletteNext,
			'r': IntentRestart,

			// vi-style tilt
			'h': IntentTiltLeft,
			'l': IntentTiltRight,
			'k': IntentGravityUp,
			'j': IntentGravityDown,
		},
	}
}
