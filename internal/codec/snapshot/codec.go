// Package snapshot encodes a full ordered block sequence as zstd-compressed
// canonical CBOR.
package snapshot

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/fxamacker/cbor/v2"
	"github.com/goodnatureofminers/hashledger/internal/model"
	"github.com/klauspost/compress/zstd"
)

// Version is the snapshot envelope version written by Marshal.
const Version = 1

// maxElements lifts the decoder's array and map limits to the largest value it
// accepts, so any chain the encoder writes can be read back.
const maxElements = math.MaxInt32

// ErrUnsupportedVersion is returned when decoding an unknown envelope version.
var ErrUnsupportedVersion = errors.New("unsupported snapshot version")

// Snapshot is the persisted form of a chain. Pending transactions are not part of it.
type Snapshot struct {
	Version          uint          `cbor:"1,keyasint"`
	CanonicalVersion uint          `cbor:"2,keyasint"`
	Difficulty       uint          `cbor:"3,keyasint"`
	Blocks           []model.Block `cbor:"4,keyasint"`
}

// New wraps blocks sealed at difficulty into a snapshot.
func New(difficulty uint, blocks []model.Block) Snapshot {
	return Snapshot{
		Version:          Version,
		CanonicalVersion: model.CanonicalVersion,
		Difficulty:       difficulty,
		Blocks:           blocks,
	}
}

// Codec marshals snapshots.
type Codec struct {
	encoder      cbor.EncMode
	decoder      cbor.DecMode
	compressor   *zstd.Encoder
	decompressor *zstd.Decoder
}

// NewCodec creates a new Codec.
func NewCodec() (*Codec, error) {
	encOpts := cbor.CanonicalEncOptions()
	encOpts.Time = cbor.TimeRFC3339Nano
	encoder, err := encOpts.EncMode()
	if err != nil {
		return nil, fmt.Errorf("create cbor encoder: %w", err)
	}
	decoder, err := cbor.DecOptions{
		MaxArrayElements: maxElements,
		MaxMapPairs:      maxElements,
	}.DecMode()
	if err != nil {
		return nil, fmt.Errorf("create cbor decoder: %w", err)
	}
	compressor, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, fmt.Errorf("create zstd encoder: %w", err)
	}
	decompressor, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("create zstd decoder: %w", err)
	}

	return &Codec{
		encoder:      encoder,
		decoder:      decoder,
		compressor:   compressor,
		decompressor: decompressor,
	}, nil
}

// Marshal encodes and compresses s.
func (c *Codec) Marshal(s Snapshot) ([]byte, error) {
	data, err := c.encoder.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return c.compressor.EncodeAll(data, nil), nil
}

// Unmarshal decompresses and decodes data, rejecting unknown versions.
func (c *Codec) Unmarshal(data []byte) (Snapshot, error) {
	raw, err := c.decompressor.DecodeAll(data, nil)
	if err != nil {
		return Snapshot{}, fmt.Errorf("decompress snapshot: %w", err)
	}

	var s Snapshot
	if err := c.decoder.Unmarshal(raw, &s); err != nil {
		return Snapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}
	if s.Version != Version {
		return Snapshot{}, fmt.Errorf("snapshot version %d: %w", s.Version, ErrUnsupportedVersion)
	}
	if s.CanonicalVersion != model.CanonicalVersion {
		return Snapshot{}, fmt.Errorf("canonical serialization version %d: %w", s.CanonicalVersion, ErrUnsupportedVersion)
	}
	return s, nil
}

// Write marshals s into w.
func (c *Codec) Write(w io.Writer, s Snapshot) error {
	data, err := c.Marshal(s)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}

// Read reads all of r and unmarshals it.
func (c *Codec) Read(r io.Reader) (Snapshot, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Snapshot{}, fmt.Errorf("read snapshot: %w", err)
	}
	return c.Unmarshal(data)
}
