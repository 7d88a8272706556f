package tui

import (
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Input modes a binding can be limited to.
const (
	modeViewing = iota
	modeEditing
	modeAlert
)

type KeyHandler func(m BoardModel, key string) (BoardModel, tea.Cmd, bool)

type KeyBinding struct {
	Key         string
	Handler     KeyHandler
	Description string
	Modes       []int
	Priority    int
}

func (b KeyBinding) AppliesTo(mode int) bool {
	if len(b.Modes) == 0 {
		return true
	}
	for _, v := range b.Modes {
		if v == mode {
			return true
		}
	}
	return false
}

type HandlerRegistry struct {
	bindings []KeyBinding
}

func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{}
}

func (r *HandlerRegistry) Register(b KeyBinding) {
	r.bindings = append(r.bindings, b)
	sort.SliceStable(r.bindings, func(i, j int) bool {
		return r.bindings[i].Priority > r.bindings[j].Priority
	})
}

func (r *HandlerRegistry) Handle(m BoardModel, key string) (BoardModel, tea.Cmd, bool) {
	mode := m.mode()
	for _, b := range r.bindings {
		if b.Key == key && b.AppliesTo(mode) {
			next, cmd, handled := b.Handler(m, key)
			if handled {
				return next, cmd, true
			}
		}
	}
	return m, nil, false
}

func (r *HandlerRegistry) BindingsFor(mode int) []KeyBinding {
	var out []KeyBinding
	for _, b := range r.bindings {
		if b.AppliesTo(mode) {
			out = append(out, b)
		}
	}
	return out
}

// HelpFor lists one entry per described binding, in priority order.
func (r *HandlerRegistry) HelpFor(mode int) string {
	seen := make(map[string]bool)
	var parts []string
	for _, b := range r.BindingsFor(mode) {
		if b.Description == "" || seen[b.Description] {
			continue
		}
		seen[b.Description] = true
		parts = append(parts, "["+b.Key+"]"+b.Description)
	}
	return strings.Join(parts, " | ")
}

// defaultRegistry wires the board keys. Aliases carry no description so
// the help line lists each action once.
func defaultRegistry() *HandlerRegistry {
	r := NewHandlerRegistry()
	view := []int{modeViewing}
	edit := []int{modeEditing}
	alert := []int{modeAlert}

	r.Register(KeyBinding{Key: "enter", Handler: handleDismissAlert, Description: "ok", Modes: alert, Priority: 10})
	r.Register(KeyBinding{Key: "esc", Handler: handleDismissAlert, Modes: alert, Priority: 10})
	r.Register(KeyBinding{Key: " ", Handler: handleDismissAlert, Modes: alert, Priority: 10})

	r.Register(KeyBinding{Key: "enter", Handler: handleConfirmEdit, Description: "save", Modes: edit, Priority: 9})
	r.Register(KeyBinding{Key: "esc", Handler: handleCancelEdit, Description: "cancel", Modes: edit, Priority: 9})

	r.Register(KeyBinding{Key: "up", Handler: handleMove, Description: "move", Modes: view, Priority: 5})
	for _, k := range []string{"down", "left", "right", "k", "j", "h", "l"} {
		r.Register(KeyBinding{Key: k, Handler: handleMove, Modes: view, Priority: 5})
	}
	r.Register(KeyBinding{Key: " ", Handler: handleTogglePresence, Description: "present", Modes: view, Priority: 4})
	r.Register(KeyBinding{Key: "p", Handler: handleTogglePresence, Modes: view, Priority: 4})
	r.Register(KeyBinding{Key: "e", Handler: handleBeginEdit, Description: "edit", Modes: view, Priority: 4})
	r.Register(KeyBinding{Key: "enter", Handler: handleBeginEdit, Modes: view, Priority: 4})
	r.Register(KeyBinding{Key: "r", Handler: handleReload, Description: "reload", Modes: view, Priority: 3})
	r.Register(KeyBinding{Key: "x", Handler: handleExport, Description: "export pdf", Modes: view, Priority: 3})
	r.Register(KeyBinding{Key: "?", Handler: handleToggleHelp, Description: "help", Modes: view, Priority: 2})
	r.Register(KeyBinding{Key: "q", Handler: handleQuit, Description: "quit", Modes: view, Priority: 1})
	return r
}
