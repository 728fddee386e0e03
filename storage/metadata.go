package storage

import (
	"fmt"

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"
	"github.com/poiesic/framesift/core"
)

var (
	frameSliceMUS     = ord.NewSliceSer[core.FrameRecord](core.FrameRecordMUS)
	aggregateSliceMUS = ord.NewSliceSer[core.VideoAggregate](core.VideoAggregateMUS)
)

// Metadata is the non-vector artifact: every frame record in row order,
// the video-level aggregates derived from them, and the ID counter the
// next incremental run continues from.
type Metadata struct {
	NextID     core.ID
	Frames     []core.FrameRecord
	Aggregates []core.VideoAggregate
}

// MarshalMetadata serializes a metadata store.
func MarshalMetadata(m *Metadata) []byte {
	size := varint.Int64.Size(int64(m.NextID))
	size += frameSliceMUS.Size(m.Frames)
	size += aggregateSliceMUS.Size(m.Aggregates)

	bs := make([]byte, size)
	n := varint.Int64.Marshal(int64(m.NextID), bs)
	n += frameSliceMUS.Marshal(m.Frames, bs[n:])
	n += aggregateSliceMUS.Marshal(m.Aggregates, bs[n:])
	return bs
}

// UnmarshalMetadata deserializes a metadata store.
func UnmarshalMetadata(bs []byte) (*Metadata, error) {
	nextID, n, err := varint.Int64.Unmarshal(bs)
	if err != nil {
		return nil, fmt.Errorf("%w: next id: %s", ErrSerializationFailed, err)
	}

	frames, consumed, err := frameSliceMUS.Unmarshal(bs[n:])
	if err != nil {
		return nil, fmt.Errorf("%w: frame records: %s", ErrSerializationFailed, err)
	}
	n += consumed

	aggregates, _, err := aggregateSliceMUS.Unmarshal(bs[n:])
	if err != nil {
		return nil, fmt.Errorf("%w: video aggregates: %s", ErrSerializationFailed, err)
	}

	return &Metadata{
		NextID:     core.ID(nextID),
		Frames:     frames,
		Aggregates: aggregates,
	}, nil
}
