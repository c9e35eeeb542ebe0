// Package codec saves and loads board documents.
//
// JSON ({"figuras": [...]}) is the canonical format. A flat one-line-per
// primitive text format is read and written for older drawings.
package codec

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"PrimitiveBoard/internal/logging"
	"PrimitiveBoard/internal/state"
)

var (
	// ErrIO wraps failures opening, reading, writing or closing a file.
	ErrIO = errors.New("codec: i/o error")
	// ErrMalformedDocument wraps content that parses but does not describe
	// a valid document, and content that does not parse at all.
	ErrMalformedDocument = errors.New("codec: malformed document")
)

// Format identifies an on-disk encoding.
type Format int

const (
	FormatJSON Format = iota
	FormatLegacy
)

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatLegacy:
		return "legacy"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// ParseFormat accepts json or legacy (also csv and txt).
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json":
		return FormatJSON, nil
	case "legacy", "csv", "txt":
		return FormatLegacy, nil
	}
	return FormatJSON, fmt.Errorf("unknown format %q", s)
}

var utf8BOM = []byte("\ufeff")

// DetectFormat treats content whose first non-space byte is '{' as JSON
// and anything else as the legacy format.
func DetectFormat(data []byte) Format {
	if t := bytes.TrimLeft(data, " \t\r\n\ufeff"); len(t) > 0 && t[0] == '{' {
		return FormatJSON
	}
	return FormatLegacy
}

// Encode writes ps to w in format f.
func Encode(w io.Writer, ps []state.Primitive, f Format) error {
	switch f {
	case FormatLegacy:
		return EncodeLegacy(w, ps)
	default:
		return EncodeJSON(w, ps)
	}
}

// Decode reads a whole document from r, detecting its format.
func Decode(r io.Reader) ([]state.Primitive, Format, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, FormatJSON, fmt.Errorf("%w: read: %v", ErrIO, err)
	}
	data = bytes.TrimPrefix(data, utf8BOM)
	f := DetectFormat(data)
	var ps []state.Primitive
	switch f {
	case FormatJSON:
		ps, err = DecodeJSON(data)
	default:
		ps, err = DecodeLegacy(data)
	}
	return ps, f, err
}

// ReadFile loads the document stored at path.
func ReadFile(path string) ([]state.Primitive, Format, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, FormatJSON, fmt.Errorf("%w: %v", ErrIO, err)
	}
	defer file.Close()

	ps, f, err := Decode(file)
	if err != nil {
		logging.For("codec").Warn("load failed", "path", path, "err", err)
		return nil, f, err
	}
	logging.For("codec").Info("loaded", "path", path, "format", f, "count", len(ps))
	return ps, f, nil
}

// WriteFile stores ps at path, replacing any existing file.
func WriteFile(path string, ps []state.Primitive, f Format) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: close: %v", ErrIO, cerr)
		}
	}()

	bw := bufio.NewWriter(file)
	if err = Encode(bw, ps, f); err != nil {
		return err
	}
	if err = bw.Flush(); err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	logging.For("codec").Info("saved", "path", path, "format", f, "count", len(ps))
	return nil
}

func malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformedDocument, fmt.Sprintf(format, args...))
}

func checkStyle(c [3]int, width int) (state.RGB, error) {
	for i, v := range c {
		if v < 0 || v > 255 {
			return state.RGB{}, malformed("color channel %d out of range: %d", i, v)
		}
	}
	if width < 1 {
		return state.RGB{}, malformed("stroke width must be positive, got %d", width)
	}
	return state.RGB{R: uint8(c[0]), G: uint8(c[1]), B: uint8(c[2])}, nil
}
