package byteconv

import "unsafe"

// ReinterpretSlice returns a slice of Out that shares the memory of slice.
// The length is truncated to whole elements of Out.
func ReinterpretSlice[Out, T any](slice []T) []Out {
	if cap(slice) == 0 {
		return nil
	}
	out := (*Out)(unsafe.Pointer(&slice[:1][0]))
	size := int(unsafe.Sizeof(slice[0]))
	outSize := int(unsafe.Sizeof(*out))
	lenInBytes := len(slice) * size
	capInBytes := cap(slice) * size
	return unsafe.Slice(out, capInBytes/outSize)[:lenInBytes/outSize]
}
