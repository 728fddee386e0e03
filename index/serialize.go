// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package index

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

const (
	indexMagic   = uint32(0x46534931) // "FSI1"
	indexVersion = uint32(1)

	kindFlat = uint8(0)
	kindIVF  = uint8(1)
)

var (
	ErrInvalidMagic   = errors.New("invalid index magic number")
	ErrInvalidVersion = errors.New("unsupported index version")
	ErrUnknownKind    = errors.New("unknown index kind")
)

type indexHeader struct {
	Magic    uint32
	Version  uint32
	Kind     uint8
	_        [3]byte
	Dim      uint32
	RowCount uint32
}

// WriteIndex serializes an index. Vectors are written in bulk as
// little-endian float32 rows, so large indices round-trip without
// per-element overhead.
func WriteIndex(w io.Writer, idx Index) error {
	header := indexHeader{
		Magic:    indexMagic,
		Version:  indexVersion,
		Dim:      uint32(idx.Dim()),
		RowCount: uint32(idx.Len()),
	}

	switch concrete := idx.(type) {
	case *Flat:
		header.Kind = kindFlat
		if err := binary.Write(w, binary.LittleEndian, header); err != nil {
			return err
		}
		return writeRows(w, concrete.ids, concrete.vectors)

	case *IVF:
		header.Kind = kindIVF
		if err := binary.Write(w, binary.LittleEndian, header); err != nil {
			return err
		}
		if err := writeRows(w, concrete.ids, concrete.vectors); err != nil {
			return err
		}
		if err := binary.Write(w, binary.LittleEndian, uint32(concrete.nlist)); err != nil {
			return err
		}
		if err := binary.Write(w, binary.LittleEndian, uint32(concrete.nprobe)); err != nil {
			return err
		}
		if err := binary.Write(w, binary.LittleEndian, concrete.centroids); err != nil {
			return err
		}
		for _, list := range concrete.lists {
			if err := binary.Write(w, binary.LittleEndian, uint32(len(list))); err != nil {
				return err
			}
			if err := binary.Write(w, binary.LittleEndian, list); err != nil {
				return err
			}
		}
		return nil

	default:
		return fmt.Errorf("%w: %T", ErrUnknownKind, idx)
	}
}

// ReadIndex deserializes an index written by WriteIndex.
func ReadIndex(r io.Reader) (Index, error) {
	var header indexHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("failed to read index header: %w", err)
	}
	if header.Magic != indexMagic {
		return nil, ErrInvalidMagic
	}
	if header.Version != indexVersion {
		return nil, ErrInvalidVersion
	}

	dim := int(header.Dim)
	rows := int(header.RowCount)

	ids, vectors, err := readRows(r, rows, dim)
	if err != nil {
		return nil, err
	}

	switch header.Kind {
	case kindFlat:
		return &Flat{dim: dim, ids: ids, vectors: vectors}, nil

	case kindIVF:
		var nlist, nprobe uint32
		if err := binary.Read(r, binary.LittleEndian, &nlist); err != nil {
			return nil, err
		}
		if err := binary.Read(r, binary.LittleEndian, &nprobe); err != nil {
			return nil, err
		}
		centroids := make([]float32, int(nlist)*dim)
		if err := binary.Read(r, binary.LittleEndian, centroids); err != nil {
			return nil, err
		}
		lists := make([][]int32, nlist)
		for i := range lists {
			var length uint32
			if err := binary.Read(r, binary.LittleEndian, &length); err != nil {
				return nil, err
			}
			list := make([]int32, length)
			if err := binary.Read(r, binary.LittleEndian, list); err != nil {
				return nil, err
			}
			lists[i] = list
		}
		return &IVF{
			dim:       dim,
			nlist:     int(nlist),
			nprobe:    int(nprobe),
			centroids: centroids,
			lists:     lists,
			ids:       ids,
			vectors:   vectors,
		}, nil

	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, header.Kind)
	}
}

func writeRows(w io.Writer, ids []int64, vectors []float32) error {
	if err := binary.Write(w, binary.LittleEndian, ids); err != nil {
		return err
	}
	return binary.Write(w, binary.LittleEndian, vectors)
}

func readRows(r io.Reader, rows, dim int) ([]int64, []float32, error) {
	ids := make([]int64, rows)
	if err := binary.Read(r, binary.LittleEndian, ids); err != nil {
		return nil, nil, fmt.Errorf("failed to read index ids: %w", err)
	}
	vectors := make([]float32, rows*dim)
	if err := binary.Read(r, binary.LittleEndian, vectors); err != nil {
		return nil, nil, fmt.Errorf("failed to read index vectors: %w", err)
	}
	return ids, vectors, nil
}
