// Package off reads and writes the Object File Format (OFF) used to
// exchange polygon meshes as plain text.
//
// Layout:
//
//	OFF
//	# comments and blank lines are ignored anywhere
//	V F E
//	x y z            (V vertex lines; extra columns are ignored)
//	n i0 i1 ... in-1 (F face lines; trailing colour values are ignored)
//
// The edge count E is written for information and ignored on read. The
// counts may also follow the keyword on the header line ("OFF 8 6 12").
//
// Read is strict: a malformed header, a bad number, a face with fewer than
// three corners, an index outside [0, V) or a truncated body is an error.
// Errors wrap ErrImportFormat or ErrIndexOutOfRange and carry the line
// number, so errors.Is keeps working.
package off
