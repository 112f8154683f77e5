// Package array converts numeric slices to and from their in-memory byte layout.
package array

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Number is any fixed size numeric element type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Encode returns the bytes backing a numeric slice. The result aliases s.
func Encode[E Number](s []E) []byte {
	if len(s) == 0 {
		return nil
	}
	size := int(unsafe.Sizeof(s[0]))
	return unsafe.Slice((*byte)(unsafe.Pointer(&s[0])), len(s)*size)
}

// Decode points target at the elements stored in b. The result aliases b.
// Trailing bytes that do not fill a whole element are ignored.
func Decode[E Number](target *[]E, b []byte) {
	var zero E
	size := int(unsafe.Sizeof(zero))
	n := len(b) / size
	if n == 0 {
		*target = nil
		return
	}
	*target = unsafe.Slice((*E)(unsafe.Pointer(&b[0])), n)
}
