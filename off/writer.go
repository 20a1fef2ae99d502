package off

import (
	"bufio"
	"io"
	"strconv"

	"github.com/pkg/errors"
)

// Write serializes d. Coordinates use the shortest representation that
// parses back to the same float64.
func Write(w io.Writer, d *Data) error {
	if err := d.Validate(); err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 64)

	buf = append(buf, Keyword...)
	buf = append(buf, '\n')
	buf = strconv.AppendInt(buf, int64(len(d.Points)), 10)
	buf = append(buf, ' ')
	buf = strconv.AppendInt(buf, int64(len(d.Faces)), 10)
	buf = append(buf, ' ')
	buf = strconv.AppendInt(buf, int64(d.Edges), 10)
	buf = append(buf, '\n')
	if _, err := bw.Write(buf); err != nil {
		return errors.Wrap(err, "off: write header")
	}

	for _, p := range d.Points {
		buf = buf[:0]
		buf = strconv.AppendFloat(buf, p.X, 'g', -1, 64)
		buf = append(buf, ' ')
		buf = strconv.AppendFloat(buf, p.Y, 'g', -1, 64)
		buf = append(buf, ' ')
		buf = strconv.AppendFloat(buf, p.Z, 'g', -1, 64)
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return errors.Wrap(err, "off: write vertex")
		}
	}
	for _, f := range d.Faces {
		buf = buf[:0]
		buf = strconv.AppendInt(buf, int64(len(f)), 10)
		for _, idx := range f {
			buf = append(buf, ' ')
			buf = strconv.AppendInt(buf, int64(idx), 10)
		}
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return errors.Wrap(err, "off: write face")
		}
	}
	return errors.Wrap(bw.Flush(), "off: flush")
}
