package lexical

import (
	"fmt"

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"
)

var (
	stringSliceMUS  = ord.NewSliceSer[string](ord.String)
	int32SliceMUS   = ord.NewSliceSer[int32](varint.Int32)
	float32SliceMUS = ord.NewSliceSer[float32](raw.Float32)
)

// Marshal serializes the fitted index. The vocabulary map is not written;
// it is rebuilt from the term list on load.
func (x *Index) Marshal() []byte {
	size := stringSliceMUS.Size(x.terms)
	size += float32SliceMUS.Size(x.idf)
	size += varint.Int.Size(len(x.rows))
	for _, row := range x.rows {
		size += int32SliceMUS.Size(row.Indices)
		size += float32SliceMUS.Size(row.Values)
	}

	bs := make([]byte, size)
	n := stringSliceMUS.Marshal(x.terms, bs)
	n += float32SliceMUS.Marshal(x.idf, bs[n:])
	n += varint.Int.Marshal(len(x.rows), bs[n:])
	for _, row := range x.rows {
		n += int32SliceMUS.Marshal(row.Indices, bs[n:])
		n += float32SliceMUS.Marshal(row.Values, bs[n:])
	}
	return bs
}

// UnmarshalIndex deserializes an index written by Marshal.
func UnmarshalIndex(bs []byte) (*Index, error) {
	terms, n, err := stringSliceMUS.Unmarshal(bs)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal lexical terms: %w", err)
	}

	idf, consumed, err := float32SliceMUS.Unmarshal(bs[n:])
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal lexical idf weights: %w", err)
	}
	n += consumed

	rowCount, consumed, err := varint.Int.Unmarshal(bs[n:])
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal lexical row count: %w", err)
	}
	n += consumed

	rows := make([]SparseVector, rowCount)
	for i := 0; i < rowCount; i++ {
		indices, consumed, err := int32SliceMUS.Unmarshal(bs[n:])
		if err != nil {
			return nil, fmt.Errorf("failed to unmarshal lexical row %d: %w", i, err)
		}
		n += consumed

		values, consumed, err := float32SliceMUS.Unmarshal(bs[n:])
		if err != nil {
			return nil, fmt.Errorf("failed to unmarshal lexical row %d: %w", i, err)
		}
		n += consumed

		rows[i] = SparseVector{Indices: indices, Values: values}
	}

	vocabulary := make(map[string]int32, len(terms))
	for i, term := range terms {
		vocabulary[term] = int32(i)
	}

	return &Index{
		terms:      terms,
		vocabulary: vocabulary,
		idf:        idf,
		rows:       rows,
	}, nil
}
