package off

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/spatial/r3"
)

var (
	// ErrImportFormat indicates malformed OFF input.
	ErrImportFormat = errors.New("off: malformed input")

	// ErrIndexOutOfRange indicates a face index outside [0, len(Points)).
	ErrIndexOutOfRange = errors.New("off: vertex index out of range")
)

// Keyword is the header token of an OFF file.
const Keyword = "OFF"

// Data is the content of an OFF file: points and polygons over point
// indices.
type Data struct {
	Points []r3.Vec
	Faces  [][]int
	// Edges is the informational edge count of the header.
	Edges int
}

// Validate checks every face against the point count.
func (d *Data) Validate() error {
	for i, f := range d.Faces {
		if len(f) < 3 {
			return errors.Wrapf(ErrImportFormat, "face %d has %d corners", i, len(f))
		}
		for _, idx := range f {
			if idx < 0 || idx >= len(d.Points) {
				return errors.Wrapf(ErrIndexOutOfRange, "face %d: index %d outside [0,%d)", i, idx, len(d.Points))
			}
		}
	}
	return nil
}
