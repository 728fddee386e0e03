package storage

import (
	"encoding/binary"
	"fmt"
	"os"

	"github.com/klauspost/compress/zstd"
)

const (
	artifactMagic   = uint32(0x46534156) // "FSAV"
	artifactVersion = uint32(1)

	frameHeaderSize = 8
)

// writeArtifact compresses a payload and writes it to a temporary file next
// to the target path. The caller renames it into place once every artifact
// in the set has been written.
func writeArtifact(tmpPath string, payload []byte) error {
	f, err := os.Create(tmpPath)
	if err != nil {
		return fmt.Errorf("failed to create artifact %s: %w", tmpPath, err)
	}

	header := make([]byte, frameHeaderSize)
	binary.LittleEndian.PutUint32(header[0:], artifactMagic)
	binary.LittleEndian.PutUint32(header[4:], artifactVersion)
	if _, err := f.Write(header); err != nil {
		f.Close()
		return fmt.Errorf("failed to write artifact header: %w", err)
	}

	enc, err := zstd.NewWriter(f)
	if err != nil {
		f.Close()
		return err
	}
	if _, err := enc.Write(payload); err != nil {
		enc.Close()
		f.Close()
		return fmt.Errorf("failed to compress artifact %s: %w", tmpPath, err)
	}
	if err := enc.Close(); err != nil {
		f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// readArtifact reads and decompresses an artifact file.
func readArtifact(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrIndexNotFound, path)
		}
		return nil, err
	}
	if len(data) < frameHeaderSize {
		return nil, fmt.Errorf("%w: %s is truncated", ErrInvalidArtifact, path)
	}
	if binary.LittleEndian.Uint32(data[0:]) != artifactMagic {
		return nil, fmt.Errorf("%w: %s", ErrInvalidArtifact, path)
	}
	if binary.LittleEndian.Uint32(data[4:]) != artifactVersion {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedVersion, path)
	}

	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	payload, err := dec.DecodeAll(data[frameHeaderSize:], nil)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress artifact %s: %w", path, err)
	}
	return payload, nil
}
