package barcode

import "strconv"

// UniqueAssigner regenerates barcodes for a whole catalog document while
// guaranteeing document-level uniqueness. It is a conflict-resolution loop
// over the set of barcodes already assigned, not a pure function; use one
// assigner per document and a single writer.
type UniqueAssigner struct {
	used map[string]struct{}
}

// NewUniqueAssigner returns an assigner with an empty used set.
func NewUniqueAssigner() *UniqueAssigner {
	return &UniqueAssigner{used: map[string]struct{}{}}
}

// Assign generates a barcode for base with gen, regenerating with a salted
// key until the result does not collide with any barcode assigned so far.
func (a *UniqueAssigner) Assign(gen Generator, base string) string {
	code := gen.Generate(base)
	for salt := len(a.used); ; salt++ {
		if _, taken := a.used[code]; !taken {
			break
		}
		code = gen.Generate(base + strconv.Itoa(salt))
	}
	a.used[code] = struct{}{}
	return code
}

// Seen reports whether code was already assigned in this document.
func (a *UniqueAssigner) Seen(code string) bool {
	_, taken := a.used[code]
	return taken
}
