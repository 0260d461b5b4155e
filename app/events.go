package app

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

type EventHandler struct {
	options map[glfw.Key]keyOption
	onLook  func(dx, dy float32)

	cursorX, cursorY float64
	cursorSeen       bool
}

func NewEventHandler() *EventHandler {
	return &EventHandler{options: make(map[glfw.Key]keyOption)}
}

type KeyCallbackKind int

const (
	Switch KeyCallbackKind = iota
	Hold
)

type keyOption struct {
	kind  KeyCallbackKind
	value *bool
}

func (eh *EventHandler) AddOption(key glfw.Key, value *bool, kind KeyCallbackKind) {
	eh.options[key] = keyOption{
		kind:  kind,
		value: value,
	}
}

// OnLook registers a handler for cursor movement deltas.
func (eh *EventHandler) OnLook(handler func(dx, dy float32)) {
	eh.onLook = handler
}

func (eh *EventHandler) KeyCallback() glfw.KeyCallback {
	return func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		option, found := eh.options[key]
		if !found {
			return
		}

		switch option.kind {
		case Switch:
			if action == glfw.Press {
				*option.value = !*option.value
			}
		case Hold:
			*option.value = (action != glfw.Release)
		}
	}
}

func (eh *EventHandler) CursorCallback() glfw.CursorPosCallback {
	return func(w *glfw.Window, x, y float64) {
		// The first event only establishes the reference position, otherwise
		// the initial cursor placement would register as a huge jump.
		if !eh.cursorSeen {
			eh.cursorX, eh.cursorY = x, y
			eh.cursorSeen = true
			return
		}
		dx := float32(x - eh.cursorX)
		dy := float32(y - eh.cursorY)
		eh.cursorX, eh.cursorY = x, y
		if eh.onLook != nil {
			eh.onLook(dx, dy)
		}
	}
}
