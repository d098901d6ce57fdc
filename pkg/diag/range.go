// Package diag contains types for locating tags and edits in markup source.
package diag

// Ranging represents a byte range [From, To) within a markup source. Structs
// can embed Ranging to carry their location; tag.Token does this.
type Ranging struct {
	From int
	To   int
}

// Text returns the part of src covered by the range.
func (r Ranging) Text(src string) string { return src[r.From:r.To] }

// PointRanging returns a zero-width Ranging at the given point.
func PointRanging(p int) Ranging {
	return Ranging{p, p}
}
