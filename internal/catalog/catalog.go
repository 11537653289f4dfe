// Package catalog holds the ordered collection of media records.
package catalog

import (
	"fmt"
	"io"

	"github.com/llehouerou/mediashelf/internal/media"
)

// Catalog owns its records and keeps them in insertion order.
type Catalog struct {
	items []*media.Record
}

func New() *Catalog {
	return &Catalog{}
}

// Add appends r. Duplicate IDs are allowed.
func (c *Catalog) Add(r *media.Record) {
	c.items = append(c.items, r)
}

// Len returns the number of records.
func (c *Catalog) Len() int {
	return len(c.items)
}

// Items returns the records in insertion order.
func (c *Catalog) Items() []*media.Record {
	out := make([]*media.Record, len(c.items))
	copy(out, c.items)
	return out
}

// Find returns the first record with the given ID.
func (c *Catalog) Find(id int) (*media.Record, bool) {
	for _, r := range c.items {
		if r.ID() == id {
			return r, true
		}
	}
	return nil, false
}

// DisplayAll writes every record, labelled "Item N:" from 1.
func (c *Catalog) DisplayAll(w io.Writer) {
	if len(c.items) == 0 {
		fmt.Fprintln(w, "No items in the catalog.")
		return
	}
	for i, r := range c.items {
		fmt.Fprintf(w, "\nItem %d:\n", i+1)
		r.Describe(w)
	}
}

// BorrowByID borrows the first record whose ID matches.
// A miss is reported on w and leaves the catalog untouched.
func (c *Catalog) BorrowByID(w io.Writer, id int) media.Outcome {
	r, ok := c.Find(id)
	if !ok {
		fmt.Fprintf(w, "Item with ID %d not found.\n", id)
		return media.OutcomeNotFound
	}
	return r.Borrow(w)
}
