package media

import (
	"fmt"
	"io"
)

// Outcome reports what a borrow attempt did.
type Outcome int

const (
	OutcomeBorrowed Outcome = iota
	OutcomeOutOfStock
	OutcomeNotFound
)

func (o Outcome) String() string {
	switch o {
	case OutcomeBorrowed:
		return "borrowed"
	case OutcomeOutOfStock:
		return "out_of_stock"
	case OutcomeNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}

// Borrow checks the record out and writes the result message to w.
// Books consume one copy of stock; eBooks and audiobooks are unlimited.
func (r *Record) Borrow(w io.Writer) Outcome {
	switch v := r.variant.(type) {
	case *Book:
		if v.Stock <= 0 {
			fmt.Fprintln(w, "Sorry, this book is out of stock!")
			return OutcomeOutOfStock
		}
		v.Stock--
		fmt.Fprintf(w, "You have borrowed the book. Stock remaining: %d\n", v.Stock)
	case *EBook:
		fmt.Fprintf(w, "You have downloaded the eBook in %s format.\n", v.Format)
	case *Audiobook:
		fmt.Fprintf(w, "You have borrowed the audiobook narrated by %s.\n", v.Narrator)
	}
	return OutcomeBorrowed
}
