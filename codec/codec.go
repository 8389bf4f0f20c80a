package codec

import (
	"github.com/goccy/go-json"
	"github.com/rotisserie/eris"
)

func Decode[T any](bz []byte) (T, error) {
	comp := new(T)
	err := json.Unmarshal(bz, comp)
	if err != nil {
		return *comp, eris.Wrap(err, "")
	}
	return *comp, nil
}

func Encode(comp any) ([]byte, error) {
	bz, err := json.Marshal(comp)
	if err != nil {
		return nil, eris.Wrap(err, "")
	}
	return bz, nil
}

// Clone deep-copies src by round-tripping it through the codec, so the copy
// shares no mutable sub-objects (slices, maps, pointers) with the source.
func Clone[T any](src *T) (*T, error) {
	bz, err := Encode(src)
	if err != nil {
		return nil, err
	}
	dst, err := Decode[T](bz)
	if err != nil {
		return nil, err
	}
	return &dst, nil
}
