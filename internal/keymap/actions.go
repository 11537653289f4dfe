// Package keymap defines the menu options and action dispatch for the shell.
package keymap

// Action represents a user-triggerable menu action.
type Action string

const (
	ActionAddBook      Action = "add_book"
	ActionAddEBook     Action = "add_ebook"
	ActionAddAudiobook Action = "add_audiobook"
	ActionList         Action = "list"
	ActionBorrow       Action = "borrow"
	ActionExit         Action = "exit"
)
