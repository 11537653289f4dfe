// Package prompt reads typed answers from line-oriented input.
//
// Every prompt consumes exactly one line; malformed numbers and flags are
// reported and asked again, so stray text never spills into the next field.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// ErrInputClosed is returned when input ends before an answer is read.
var ErrInputClosed = errors.New("input closed")

var errLineTooLong = errors.New("line too long")

// Lines longer than this are discarded and asked again.
const maxLineSize = 1024 * 1024

// Messages written before re-prompting.
const (
	MsgInvalidInt   = "Invalid input: please enter a whole number."
	MsgInvalidFloat = "Invalid input: please enter a number."
	MsgInvalidFlag  = "Invalid input: please enter 1 for yes or 0 for no."
	MsgLineTooLong  = "Invalid input: line too long."
)

// Reader asks questions on out and reads answers from in.
type Reader struct {
	in  *bufio.Reader
	out io.Writer

	// OnInvalid, if set, is called with the prompt label and the rejected
	// line each time an answer is re-asked.
	OnInvalid func(label, input string)
}

func New(in io.Reader, out io.Writer) *Reader {
	return &Reader{in: bufio.NewReader(in), out: out}
}

// Line writes label and returns the next input line with surrounding
// whitespace removed. Oversized lines are dropped and asked again.
func (r *Reader) Line(label string) (string, error) {
	for {
		fmt.Fprint(r.out, label)
		line, err := r.readLine()
		switch {
		case err == nil:
			return strings.TrimSpace(line), nil
		case errors.Is(err, errLineTooLong):
			r.reject(label, "", MsgLineTooLong)
		case errors.Is(err, io.EOF):
			return "", ErrInputClosed
		default:
			return "", fmt.Errorf("reading %q: %w", strings.TrimSpace(label), err)
		}
	}
}

// readLine returns the next line without its terminator. A line over
// maxLineSize is consumed up to its newline and reported as errLineTooLong.
func (r *Reader) readLine() (string, error) {
	var buf []byte
	tooLong := false
	for {
		chunk, isPrefix, err := r.in.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) && (len(buf) > 0 || tooLong) {
				break
			}
			return "", err
		}
		if !tooLong {
			if len(buf)+len(chunk) > maxLineSize {
				tooLong, buf = true, nil
			} else {
				buf = append(buf, chunk...)
			}
		}
		if !isPrefix {
			break
		}
	}
	if tooLong {
		return "", errLineTooLong
	}
	return string(buf), nil
}

// Int asks until the answer parses as a base-10 integer.
func (r *Reader) Int(label string) (int, error) {
	for {
		line, err := r.Line(label)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(line)
		if err == nil {
			return n, nil
		}
		r.reject(label, line, MsgInvalidInt)
	}
}

// Float asks until the answer parses as a finite number.
func (r *Reader) Float(label string) (float64, error) {
	for {
		line, err := r.Line(label)
		if err != nil {
			return 0, err
		}
		f, err := strconv.ParseFloat(line, 64)
		if err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
			return f, nil
		}
		r.reject(label, line, MsgInvalidFloat)
	}
}

// Flag asks until the answer is a recognised yes/no value.
func (r *Reader) Flag(label string) (bool, error) {
	for {
		line, err := r.Line(label)
		if err != nil {
			return false, err
		}
		if v, ok := ParseFlag(line); ok {
			return v, nil
		}
		r.reject(label, line, MsgInvalidFlag)
	}
}

// ParseFlag accepts 1/0, y/n, yes/no and true/false in any case.
func ParseFlag(s string) (value, ok bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "y", "yes", "true":
		return true, true
	case "0", "n", "no", "false":
		return false, true
	default:
		return false, false
	}
}

func (r *Reader) reject(label, input, msg string) {
	fmt.Fprintln(r.out, msg)
	if r.OnInvalid != nil {
		r.OnInvalid(strings.TrimSpace(label), input)
	}
}
