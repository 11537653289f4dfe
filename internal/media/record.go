// Package media defines the catalog's record types: books, eBooks and
// audiobooks sharing a common bibliographic header.
package media

import (
	"fmt"
	"io"
	"strconv"
)

// InitialStock is the number of copies a newly added book starts with.
const InitialStock = 5

// Kind identifies which variant a record carries.
type Kind int

const (
	KindBook Kind = iota
	KindEBook
	KindAudiobook
)

func (k Kind) String() string {
	switch k {
	case KindBook:
		return "book"
	case KindEBook:
		return "ebook"
	case KindAudiobook:
		return "audiobook"
	default:
		return "unknown"
	}
}

// Info holds the fields shared by every record.
type Info struct {
	Title  string
	Author string
	Year   int
	ID     int
}

// Variant is the type-specific payload of a record.
// Only *Book, *EBook and *Audiobook implement it.
type Variant interface {
	kind() Kind
}

// Book is a physical copy with limited stock.
type Book struct {
	Pages     int
	Hardcover bool
	Stock     int
}

// EBook is a downloadable file; borrowing never runs out.
type EBook struct {
	FileSizeMB float64
	Format     string
}

// Audiobook is a narrated recording; borrowing never runs out.
type Audiobook struct {
	DurationMinutes int
	Narrator        string
}

func (*Book) kind() Kind      { return KindBook }
func (*EBook) kind() Kind     { return KindEBook }
func (*Audiobook) kind() Kind { return KindAudiobook }

// Record is a single catalog entry.
type Record struct {
	Title  string
	Author string
	Year   int

	id      int
	variant Variant
}

// NewBook creates a book record with InitialStock copies.
func NewBook(info Info, pages int, hardcover bool) *Record {
	return newRecord(info, &Book{Pages: pages, Hardcover: hardcover, Stock: InitialStock})
}

// NewEBook creates an eBook record.
func NewEBook(info Info, fileSizeMB float64, format string) *Record {
	return newRecord(info, &EBook{FileSizeMB: fileSizeMB, Format: format})
}

// NewAudiobook creates an audiobook record.
func NewAudiobook(info Info, durationMinutes int, narrator string) *Record {
	return newRecord(info, &Audiobook{DurationMinutes: durationMinutes, Narrator: narrator})
}

func newRecord(info Info, v Variant) *Record {
	return &Record{
		Title:   info.Title,
		Author:  info.Author,
		Year:    info.Year,
		id:      info.ID,
		variant: v,
	}
}

// ID returns the item identifier given at creation.
func (r *Record) ID() int { return r.id }

// Kind returns the record's variant kind.
func (r *Record) Kind() Kind { return r.variant.kind() }

// Variant returns the type-specific payload.
func (r *Record) Variant() Variant { return r.variant }

// Book returns the book payload if the record is a book.
func (r *Record) Book() (*Book, bool) {
	b, ok := r.variant.(*Book)
	return b, ok
}

// EBook returns the eBook payload if the record is an eBook.
func (r *Record) EBook() (*EBook, bool) {
	e, ok := r.variant.(*EBook)
	return e, ok
}

// Audiobook returns the audiobook payload if the record is an audiobook.
func (r *Record) Audiobook() (*Audiobook, bool) {
	a, ok := r.variant.(*Audiobook)
	return a, ok
}

// Describe writes the record's details to w, one field per line.
func (r *Record) Describe(w io.Writer) {
	fmt.Fprintf(w, "Title: %s\n", r.Title)
	fmt.Fprintf(w, "Author: %s\n", r.Author)
	fmt.Fprintf(w, "Year: %d\n", r.Year)
	fmt.Fprintf(w, "Item ID: %d\n", r.id)

	switch v := r.variant.(type) {
	case *Book:
		fmt.Fprintf(w, "Pages: %d\n", v.Pages)
		fmt.Fprintf(w, "Hardcover: %s\n", yesNo(v.Hardcover))
		fmt.Fprintf(w, "Stock: %d\n", v.Stock)
	case *EBook:
		fmt.Fprintf(w, "File Size: %s MB\n", FormatSize(v.FileSizeMB))
		fmt.Fprintf(w, "Format: %s\n", v.Format)
	case *Audiobook:
		fmt.Fprintf(w, "Duration: %d minutes\n", v.DurationMinutes)
		fmt.Fprintf(w, "Narrator: %s\n", v.Narrator)
	}
}

// FormatSize renders a size in megabytes using the shortest exact decimal form.
func FormatSize(mb float64) string {
	return strconv.FormatFloat(mb, 'f', -1, 64)
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
