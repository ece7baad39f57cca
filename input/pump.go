package input

import "github.com/gdamore/tcell/v2"

// EventSource is the blocking half of tcell.Screen
type EventSource interface {
	PollEvent() tcell.Event
}

// Pump feeds events through the machine into the controller
// Returns when the user quits or the source is finalized
func Pump(src EventSource, m *Machine, c *Controller, onEvent func(tcell.Event)) {
	for {
		ev := src.PollEvent()
		if ev == nil {
			return
		}
		if onEvent != nil {
			onEvent(ev)
		}
		if !c.Apply(m.Process(ev)) {
			return
		}
	}
}
