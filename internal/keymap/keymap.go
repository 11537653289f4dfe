package keymap

import (
	"fmt"
	"io"
)

// Binding ties a menu key to an action.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
}

// Menu is the main menu, in display order.
var Menu = []Binding{
	{ActionAddBook, []string{"1"}, "Add a new book"},
	{ActionAddEBook, []string{"2"}, "Add a new eBook"},
	{ActionAddAudiobook, []string{"3"}, "Add a new audiobook"},
	{ActionList, []string{"4"}, "Display all items"},
	{ActionBorrow, []string{"5"}, "Borrow an item"},
	{ActionExit, []string{"6"}, "Exit"},
}

// WriteMenu writes one "key. description" line per binding.
func WriteMenu(w io.Writer, bindings []Binding) {
	for _, b := range bindings {
		if len(b.Keys) == 0 {
			continue
		}
		fmt.Fprintf(w, "%s. %s\n", b.Keys[0], b.Description)
	}
}
