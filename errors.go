package dynarray

import "errors"

// Errors returned by DynamicArray and FixedArray. Returned errors wrap one of
// these with the size and index involved; match them with errors.Is.
var (
	// ErrOutOfRange reports an index or position outside the addressable range.
	ErrOutOfRange = errors.New("dynarray: index out of range")

	// ErrEmpty reports a removal from an array with no live elements.
	ErrEmpty = errors.New("dynarray: array is empty")

	// ErrUnderflow is ErrEmpty under the name DynamicArray.Pop documents.
	ErrUnderflow = ErrEmpty

	// ErrFull reports an insertion into a FixedArray already at its logical length.
	ErrFull = errors.New("dynarray: array is full")

	// ErrTypeMismatch reports an element whose type differs from the array's element type.
	ErrTypeMismatch = errors.New("dynarray: element type mismatch")

	// ErrNotFound reports a lookup for a value that is not stored.
	ErrNotFound = errors.New("dynarray: element not found")
)
