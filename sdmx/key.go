package sdmx

import (
	"fmt"
	"strconv"
	"strings"
)

// KeySeparator joins the dimension indices of a key
const KeySeparator = ":"

type keyContext struct {
	dataSet   int
	level     Level
	seriesKey string
}

// DecodeKey splits key into one value index per dimension, in dimension order
func DecodeKey(key string, dims []*Component) ([]int, error) {
	return keyContext{dataSet: -1}.decode(key, dims)
}

// ResolveKey decodes key and returns the matching value of each dimension
func ResolveKey(key string, dims []*Component) ([]*ComponentValue, error) {
	return keyContext{dataSet: -1}.resolve(key, dims)
}

// EncodeKey joins value indices into a key
func EncodeKey(indices []int) string {
	tokens := make([]string, len(indices))
	for i, idx := range indices {
		tokens[i] = strconv.Itoa(idx)
	}
	return strings.Join(tokens, KeySeparator)
}

func (kc keyContext) decode(key string, dims []*Component) ([]int, error) {
	if key == "" {
		if len(dims) == 0 {
			return []int{}, nil
		}
		return nil, kc.malformed(key, fmt.Sprintf("empty key for %d dimensions", len(dims)))
	}

	tokens := strings.Split(key, KeySeparator)
	if len(tokens) != len(dims) {
		return nil, kc.malformed(key, fmt.Sprintf("%d tokens for %d dimensions", len(tokens), len(dims)))
	}

	indices := make([]int, len(tokens))
	for i, tok := range tokens {
		idx, err := strconv.Atoi(tok)
		if err != nil || idx < 0 || strconv.Itoa(idx) != tok {
			return nil, kc.malformed(key, fmt.Sprintf("token %d (%q) is not an index", i, tok))
		}
		if _, ok := dims[i].ValueAt(idx); !ok {
			return nil, &IndexResolutionError{
				DataSet:     kc.dataSet,
				Level:       kc.level,
				SeriesKey:   kc.seriesKey,
				Key:         key,
				ComponentID: dims[i].ID,
				Index:       idx,
			}
		}
		indices[i] = idx
	}
	return indices, nil
}

func (kc keyContext) resolve(key string, dims []*Component) ([]*ComponentValue, error) {
	indices, err := kc.decode(key, dims)
	if err != nil {
		return nil, err
	}
	values := make([]*ComponentValue, len(indices))
	for i, idx := range indices {
		values[i], _ = dims[i].ValueAt(idx)
	}
	return values, nil
}

func (kc keyContext) malformed(key, reason string) error {
	return &MalformedKeyError{
		DataSet:   kc.dataSet,
		Level:     kc.level,
		SeriesKey: kc.seriesKey,
		Key:       key,
		Reason:    reason,
	}
}
