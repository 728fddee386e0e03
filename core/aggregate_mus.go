package core

import (
	"github.com/mus-format/mus-go"
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"
)

// VideoAggregateMUS is the binary serializer for VideoAggregate. Unlike the
// generated serializers it is maintained by hand: MoodCounts is a map, and
// marshaling its entries in sorted mood order keeps the encoded bytes
// deterministic across runs.
var VideoAggregateMUS = videoAggregateMUS{}

var _ mus.Serializer[VideoAggregate] = VideoAggregateMUS

type videoAggregateMUS struct{}

func (s videoAggregateMUS) Marshal(v VideoAggregate, bs []byte) (n int) {
	n = ord.String.Marshal(v.VideoPath, bs)
	n += stringSliceMUS.Marshal(v.Captions, bs[n:])
	n += varint.Int.Marshal(len(v.MoodCounts), bs[n:])
	for _, mood := range sortedMoods(v.MoodCounts) {
		n += ord.String.Marshal(mood, bs[n:])
		n += varint.Int64.Marshal(v.MoodCounts[mood], bs[n:])
	}
	n += ord.String.Marshal(v.DominantMood, bs[n:])
	n += stringSliceMUS.Marshal(v.SemanticFeatures, bs[n:])
	return n
}

func (s videoAggregateMUS) Unmarshal(bs []byte) (v VideoAggregate, n int, err error) {
	var n1 int
	v.VideoPath, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	v.Captions, n1, err = stringSliceMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	var length int
	length, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	if length > 0 {
		v.MoodCounts = make(map[string]int64, length)
	}
	for i := 0; i < length; i++ {
		var mood string
		var count int64
		mood, n1, err = ord.String.Unmarshal(bs[n:])
		n += n1
		if err != nil {
			return
		}
		count, n1, err = varint.Int64.Unmarshal(bs[n:])
		n += n1
		if err != nil {
			return
		}
		v.MoodCounts[mood] = count
	}
	v.DominantMood, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.SemanticFeatures, n1, err = stringSliceMUS.Unmarshal(bs[n:])
	n += n1
	return
}

func (s videoAggregateMUS) Size(v VideoAggregate) (size int) {
	size = ord.String.Size(v.VideoPath)
	size += stringSliceMUS.Size(v.Captions)
	size += varint.Int.Size(len(v.MoodCounts))
	for mood, count := range v.MoodCounts {
		size += ord.String.Size(mood)
		size += varint.Int64.Size(count)
	}
	size += ord.String.Size(v.DominantMood)
	size += stringSliceMUS.Size(v.SemanticFeatures)
	return size
}

func (s videoAggregateMUS) Skip(bs []byte) (n int, err error) {
	var n1 int
	n, err = ord.String.Skip(bs)
	if err != nil {
		return
	}
	n1, err = stringSliceMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	var length int
	length, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	for i := 0; i < length; i++ {
		n1, err = ord.String.Skip(bs[n:])
		n += n1
		if err != nil {
			return
		}
		n1, err = varint.Int64.Skip(bs[n:])
		n += n1
		if err != nil {
			return
		}
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = stringSliceMUS.Skip(bs[n:])
	n += n1
	return
}
