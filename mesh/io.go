// SPDX-License-Identifier: MIT
//
// File: io.go
// Role: OFF import/export on top of the off package.

package mesh

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/katalvlaran/surfmesh/off"
)

// ToOFF returns the live mesh as OFF data: points and faces in enumeration
// order, face corners as indices into the point list.
func (m *Mesh) ToOFF() *off.Data {
	idx := m.vertexIndex()
	d := &off.Data{
		Points: m.Points(),
		Faces:  make([][]int, 0, m.FaceCount()),
		Edges:  m.EdgeCount(),
	}
	for f := range m.faces {
		if m.faces[f].removed {
			continue
		}
		corners := make([]int, 0, 4)
		m.forFace(FaceHandle(f), func(h HalfedgeHandle) bool {
			corners = append(corners, idx[m.halfedges[h^1].target])
			return true
		})
		d.Faces = append(d.Faces, corners)
	}
	return d
}

// WriteOFF writes the live mesh in OFF format.
func (m *Mesh) WriteOFF(w io.Writer) error {
	if err := off.Write(w, m.ToOFF()); err != nil {
		return fmt.Errorf("WriteOFF: %w", err)
	}
	return nil
}

// AppendOFF adds the points and faces of d to m. Faces the editor rejects
// are skipped and counted.
//
// Errors:
//   - off.ErrIndexOutOfRange / off.ErrImportFormat if d is inconsistent;
//     nothing is added then.
func (m *Mesh) AppendOFF(d *off.Data) (skipped int, err error) {
	if err := d.Validate(); err != nil {
		return 0, fmt.Errorf("AppendOFF: %w", err)
	}
	handles := make([]VertexHandle, len(d.Points))
	for i, p := range d.Points {
		handles[i] = m.AddVertex(p)
	}
	vs := make([]VertexHandle, 0, 4)
	for _, face := range d.Faces {
		vs = vs[:0]
		for _, i := range face {
			vs = append(vs, handles[i])
		}
		if _, err := m.AddFace(vs...); err != nil {
			skipped++
		}
	}
	if skipped > 0 {
		m.log.Debug("off import skipped faces", zap.Int("skipped", skipped), zap.Int("faces", len(d.Faces)))
	}
	return skipped, nil
}

// ReadOFF parses an OFF document and appends it to m.
func (m *Mesh) ReadOFF(r io.Reader) (skipped int, err error) {
	d, err := off.Read(r)
	if err != nil {
		return 0, fmt.Errorf("ReadOFF: %w", err)
	}
	return m.AppendOFF(d)
}

// FromOFF builds a new mesh from an OFF document. Faces that would break
// the manifold invariant are rejected with ErrNonManifoldEdit.
func FromOFF(r io.Reader, opts ...Option) (*Mesh, error) {
	m := NewMesh(opts...)
	skipped, err := m.ReadOFF(r)
	if err != nil {
		return nil, err
	}
	if skipped > 0 {
		return nil, fmt.Errorf("FromOFF: %d faces rejected: %w", skipped, ErrNonManifoldEdit)
	}
	return m, nil
}
