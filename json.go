package dynarray

import (
	"github.com/goccy/go-json"
)

// MarshalJSON encodes the live elements as a JSON array.
func (a *DynamicArray[E]) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.buf.live(a.size))
}

// UnmarshalJSON replaces the contents with the elements of a JSON array,
// pushing them in order so capacity follows the usual growth rule.
// A zero DynamicArray is initialized with the default options first.
func (a *DynamicArray[E]) UnmarshalJSON(data []byte) error {
	var elems []E
	if err := json.Unmarshal(data, &elems); err != nil {
		return err
	}
	if a.buf == nil {
		*a = *NewDynamicArray[E]()
	} else {
		a.Clear()
	}
	for _, e := range elems {
		a.Push(e)
	}
	return nil
}

// MarshalJSON encodes the live elements as a JSON array.
func (f *FixedArray[E]) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.buf.live(f.fill))
}
