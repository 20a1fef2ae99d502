package off

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/spatial/r3"
)

// MaxCount bounds the vertex and face counts accepted from a header.
const MaxCount = 1 << 28

// Header counts are untrusted; slices start at most this large and grow as
// lines actually arrive.
const preallocLimit = 1 << 16

// lineReader yields significant lines split into fields, tracking line
// numbers for error context.
type lineReader struct {
	sc   *bufio.Scanner
	line int
}

func newLineReader(r io.Reader) *lineReader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	return &lineReader{sc: sc}
}

// next returns the fields of the next non-blank, non-comment line.
func (lr *lineReader) next() ([]string, error) {
	for lr.sc.Scan() {
		lr.line++
		text := lr.sc.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		if fields := strings.Fields(text); len(fields) > 0 {
			return fields, nil
		}
	}
	if err := lr.sc.Err(); err != nil {
		return nil, errors.Wrap(err, "off: read")
	}
	return nil, io.EOF
}

func (lr *lineReader) fail(err error, format string, args ...any) error {
	return errors.Wrapf(err, "line %d: "+format, append([]any{lr.line}, args...)...)
}

// Read parses an OFF document.
func Read(r io.Reader) (*Data, error) {
	lr := newLineReader(r)

	fields, err := lr.next()
	if err == io.EOF {
		return nil, errors.Wrap(ErrImportFormat, "empty input")
	}
	if err != nil {
		return nil, err
	}
	if fields[0] != Keyword {
		return nil, lr.fail(ErrImportFormat, "header %q, want %q", fields[0], Keyword)
	}
	counts := fields[1:]
	if len(counts) == 0 {
		if counts, err = lr.next(); err != nil {
			return nil, lr.truncated(err, "counts")
		}
	}
	if len(counts) < 2 {
		return nil, lr.fail(ErrImportFormat, "counts line needs V F [E], got %d fields", len(counts))
	}
	nv, err := lr.count(counts[0])
	if err != nil {
		return nil, err
	}
	nf, err := lr.count(counts[1])
	if err != nil {
		return nil, err
	}
	d := &Data{
		Points: make([]r3.Vec, 0, min(nv, preallocLimit)),
		Faces:  make([][]int, 0, min(nf, preallocLimit)),
	}
	if len(counts) > 2 {
		if d.Edges, err = lr.count(counts[2]); err != nil {
			return nil, err
		}
	}

	for i := 0; i < nv; i++ {
		f, err := lr.next()
		if err != nil {
			return nil, lr.truncated(err, "vertex %d", i)
		}
		if len(f) < 3 {
			return nil, lr.fail(ErrImportFormat, "vertex %d has %d coordinates", i, len(f))
		}
		var c [3]float64
		for k := range c {
			if c[k], err = strconv.ParseFloat(f[k], 64); err != nil {
				return nil, lr.fail(ErrImportFormat, "vertex %d coordinate %q", i, f[k])
			}
		}
		d.Points = append(d.Points, r3.Vec{X: c[0], Y: c[1], Z: c[2]})
	}

	for i := 0; i < nf; i++ {
		f, err := lr.next()
		if err != nil {
			return nil, lr.truncated(err, "face %d", i)
		}
		n, err := strconv.Atoi(f[0])
		if err != nil {
			return nil, lr.fail(ErrImportFormat, "face %d size %q", i, f[0])
		}
		if n < 3 {
			return nil, lr.fail(ErrImportFormat, "face %d has %d corners", i, n)
		}
		if len(f) < n+1 {
			return nil, lr.fail(ErrImportFormat, "face %d lists %d of %d corners", i, len(f)-1, n)
		}
		face := make([]int, n)
		for k := range face {
			idx, err := strconv.Atoi(f[k+1])
			if err != nil {
				return nil, lr.fail(ErrImportFormat, "face %d index %q", i, f[k+1])
			}
			if idx < 0 || idx >= nv {
				return nil, lr.fail(ErrIndexOutOfRange, "face %d index %d outside [0,%d)", i, idx, nv)
			}
			face[k] = idx
		}
		d.Faces = append(d.Faces, face)
	}
	return d, nil
}

func (lr *lineReader) count(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, lr.fail(ErrImportFormat, "count %q", s)
	}
	if n > MaxCount {
		return 0, lr.fail(ErrImportFormat, "count %d exceeds %d", n, MaxCount)
	}
	return n, nil
}

func (lr *lineReader) truncated(err error, format string, args ...any) error {
	if err == io.EOF {
		return lr.fail(ErrImportFormat, "unexpected end of input before "+format, args...)
	}
	return err
}
