package shell

import "github.com/llehouerou/mediashelf/internal/keymap"

// State is a node of the menu state machine.
type State int

const (
	StateMenu State = iota
	StateAddBook
	StateAddEBook
	StateAddAudiobook
	StateList
	StateBorrow
	StateInvalid
	StateExit
)

func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StateAddBook:
		return "add_book"
	case StateAddEBook:
		return "add_ebook"
	case StateAddAudiobook:
		return "add_audiobook"
	case StateList:
		return "list"
	case StateBorrow:
		return "borrow"
	case StateInvalid:
		return "invalid"
	case StateExit:
		return "exit"
	default:
		return "unknown"
	}
}

// stateFor maps a menu action to the state that handles it.
func stateFor(a keymap.Action) State {
	switch a {
	case keymap.ActionAddBook:
		return StateAddBook
	case keymap.ActionAddEBook:
		return StateAddEBook
	case keymap.ActionAddAudiobook:
		return StateAddAudiobook
	case keymap.ActionList:
		return StateList
	case keymap.ActionBorrow:
		return StateBorrow
	case keymap.ActionExit:
		return StateExit
	default:
		return StateInvalid
	}
}
