// Package shell runs the interactive catalog menu over injected input and output.
package shell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/llehouerou/mediashelf/internal/catalog"
	"github.com/llehouerou/mediashelf/internal/keymap"
	"github.com/llehouerou/mediashelf/internal/logger"
	"github.com/llehouerou/mediashelf/internal/media"
	"github.com/llehouerou/mediashelf/internal/prompt"
	"github.com/llehouerou/mediashelf/internal/ui/styles"
)

const (
	menuTitle     = "Library Management System Menu:"
	choicePrompt  = "Enter your choice: "
	borrowPrompt  = "Enter the item ID to borrow: "
	farewell      = "Exiting the system. Goodbye!"
	invalidChoice = "Invalid choice. Please try again."
)

// Shell drives the menu loop for one catalog.
type Shell struct {
	catalog  *catalog.Catalog
	input    *prompt.Reader
	out      io.Writer
	log      *logger.Logger
	styles   *styles.Styles
	resolver *keymap.Resolver
	state    State
}

// Option configures a Shell.
type Option func(*Shell)

// WithLogger sets the diagnostics logger.
func WithLogger(l *logger.Logger) Option {
	return func(s *Shell) { s.log = l }
}

// WithStyles sets console styling. The default renders plain text.
func WithStyles(st *styles.Styles) Option {
	return func(s *Shell) { s.styles = st }
}

func New(cat *catalog.Catalog, in io.Reader, out io.Writer, opts ...Option) *Shell {
	s := &Shell{
		catalog:  cat,
		input:    prompt.New(in, out),
		out:      out,
		resolver: keymap.NewResolver(keymap.Menu),
		state:    StateMenu,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = logger.Discard()
	}
	if s.styles == nil {
		s.styles = styles.Plain(out)
	}
	s.input.OnInvalid = func(label, input string) {
		s.log.Warn("input rejected", "prompt", label, "input", input)
	}
	return s
}

// State returns the current state.
func (s *Shell) State() State {
	return s.state
}

// Run loops until the user exits. End of input at the menu counts as
// exit; end of input inside a form returns prompt.ErrInputClosed.
func (s *Shell) Run(ctx context.Context) error {
	for s.state != StateExit {
		if err := ctx.Err(); err != nil {
			return err
		}
		next, err := s.step()
		if err != nil {
			s.log.WithError(err).Debug("session aborted", "state", s.state.String())
			return err
		}
		s.log.Debug("transition", "from", s.state.String(), "to", next.String())
		s.state = next
	}
	s.log.Info("session ended", "items", s.catalog.Len())
	return nil
}

func (s *Shell) step() (State, error) {
	switch s.state {
	case StateMenu:
		return s.menu()
	case StateAddBook:
		return StateMenu, s.addBook()
	case StateAddEBook:
		return StateMenu, s.addEBook()
	case StateAddAudiobook:
		return StateMenu, s.addAudiobook()
	case StateList:
		s.catalog.DisplayAll(s.out)
		return StateMenu, nil
	case StateBorrow:
		return StateMenu, s.borrow()
	case StateInvalid:
		s.println(s.styles.Warning.Render(invalidChoice))
		return StateMenu, nil
	default:
		return StateExit, fmt.Errorf("unexpected state %d", s.state)
	}
}

func (s *Shell) menu() (State, error) {
	fmt.Fprintln(s.out)
	s.println(s.styles.Header(menuTitle))
	keymap.WriteMenu(s.out, keymap.Menu)

	line, err := s.input.Line(choicePrompt)
	if errors.Is(err, prompt.ErrInputClosed) {
		fmt.Fprintln(s.out)
		s.println(s.styles.Muted.Render(farewell))
		return StateExit, nil
	}
	if err != nil {
		return StateMenu, err
	}

	next := stateFor(s.resolver.Resolve(line))
	if next == StateExit {
		s.println(s.styles.Muted.Render(farewell))
	}
	if next == StateInvalid {
		s.log.Debug("unknown menu choice", "input", line)
	}
	return next, nil
}

func (s *Shell) readInfo(heading string) (media.Info, error) {
	var info media.Info
	var err error

	fmt.Fprintln(s.out)
	s.println(s.styles.Title.Render(heading))
	if info.Title, err = s.input.Line("Title: "); err != nil {
		return info, err
	}
	if info.Author, err = s.input.Line("Author: "); err != nil {
		return info, err
	}
	if info.Year, err = s.input.Int("Year: "); err != nil {
		return info, err
	}
	if info.ID, err = s.input.Int("Item ID: "); err != nil {
		return info, err
	}
	return info, nil
}

func (s *Shell) addBook() error {
	info, err := s.readInfo("Enter book details:")
	if err != nil {
		return err
	}
	pages, err := s.input.Int("Number of pages: ")
	if err != nil {
		return err
	}
	hardcover, err := s.input.Flag("Is it hardcover (1 for yes, 0 for no)? ")
	if err != nil {
		return err
	}
	s.add(media.NewBook(info, pages, hardcover), "Book added successfully!")
	return nil
}

func (s *Shell) addEBook() error {
	info, err := s.readInfo("Enter eBook details:")
	if err != nil {
		return err
	}
	size, err := s.input.Float("File Size (MB): ")
	if err != nil {
		return err
	}
	format, err := s.input.Line("Format (e.g., PDF, EPUB): ")
	if err != nil {
		return err
	}
	s.add(media.NewEBook(info, size, format), "eBook added successfully!")
	return nil
}

func (s *Shell) addAudiobook() error {
	info, err := s.readInfo("Enter audiobook details:")
	if err != nil {
		return err
	}
	minutes, err := s.input.Int("Duration (minutes): ")
	if err != nil {
		return err
	}
	narrator, err := s.input.Line("Narrator: ")
	if err != nil {
		return err
	}
	s.add(media.NewAudiobook(info, minutes, narrator), "Audiobook added successfully!")
	return nil
}

func (s *Shell) add(r *media.Record, confirmation string) {
	s.catalog.Add(r)
	s.println(s.styles.Success.Render(confirmation))
	attrs := []any{
		"kind", r.Kind().String(),
		"id", r.ID(),
		"title", r.Title,
		"items", s.catalog.Len(),
	}
	if e, ok := r.EBook(); ok && e.FileSizeMB >= 0 {
		attrs = append(attrs, "size", humanize.Bytes(uint64(e.FileSizeMB*1e6)))
	}
	s.log.Info("record added", attrs...)
}

func (s *Shell) borrow() error {
	fmt.Fprintln(s.out)
	id, err := s.input.Int(borrowPrompt)
	if err != nil {
		return err
	}

	var msg bytes.Buffer
	outcome := s.catalog.BorrowByID(&msg, id)
	style := s.styles.Success
	if outcome != media.OutcomeBorrowed {
		style = s.styles.Error
	}
	s.println(style.Render(strings.TrimSuffix(msg.String(), "\n")))

	attrs := []any{"id", id, "outcome", outcome.String()}
	if r, ok := s.catalog.Find(id); ok {
		if b, isBook := r.Book(); isBook {
			attrs = append(attrs, "stock", b.Stock)
		}
	}
	s.log.Info("borrow", attrs...)
	return nil
}

func (s *Shell) println(line string) {
	fmt.Fprintln(s.out, line)
}
