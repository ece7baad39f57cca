package input

import "github.com/gdamore/tcell/v2"

// Machine parses tcell events into Intents
// Tracks the left button so motion events become drags only while it is held
type Machine struct {
	keyTable   *KeyTable
	buttonDown bool
}

// NewMachine creates a machine with the default key table
func NewMachine() *Machine {
	return &Machine{keyTable: DefaultKeyTable()}
}

// Reset clears pending pointer state
func (m *Machine) Reset() {
	m.buttonDown = false
}

// Process parses an event and returns an Intent
// Returns nil for events with no binding
func (m *Machine) Process(ev tcell.Event) *Intent {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		// A button release can be lost while the terminal reflows
		m.Reset()
		w, h := ev.Size()
		return &Intent{Type: IntentResize, X: w, Y: h}
	case *tcell.EventFocus:
		// Releases outside the window never arrive; end any drag on focus loss
		if !ev.Focused && m.buttonDown {
			m.Reset()
			return &Intent{Type: IntentMouseUp, X: -1, Y: -1}
		}
		return nil
	case *tcell.EventKey:
		return m.processKey(ev)
	case *tcell.EventMouse:
		return m.processMouse(ev)
	}
	return nil
}

func (m *Machine) processKey(ev *tcell.EventKey) *Intent {
	if ev.Key() == tcell.KeyRune {
		if t, ok := m.keyTable.Runes[ev.Rune()]; ok {
			return &Intent{Type: t}
		}
		return nil
	}
	if t, ok := m.keyTable.SpecialKeys[ev.Key()]; ok {
		return &Intent{Type: t}
	}
	return nil
}

func (m *Machine) processMouse(ev *tcell.EventMouse) *Intent {
	x, y := ev.Position()
	pressed := ev.Buttons()&tcell.Button1 != 0

	switch {
	case pressed && !m.buttonDown:
		m.buttonDown = true
		return &Intent{Type: IntentMouseDown, X: x, Y: y}
	case pressed:
		return &Intent{Type: IntentMouseDrag, X: x, Y: y}
	case m.buttonDown:
		m.buttonDown = false
		return &Intent{Type: IntentMouseUp, X: x, Y: y}
	}
	return nil
}
