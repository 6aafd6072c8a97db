package loader

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"

	"umc/internal/loader/interfaces"
)

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// SniffingDecompressor inflates gzip and zstd payloads by magic number and
// passes everything else through untouched.
type SniffingDecompressor struct {
	decoder *zstd.Decoder
}

func (d *SniffingDecompressor) Decompress(val []byte) ([]byte, error) {
	switch {
	case bytes.HasPrefix(val, gzipMagic):
		reader, err := gzip.NewReader(bytes.NewReader(val))
		if err != nil {
			return nil, err
		}
		defer reader.Close()
		return io.ReadAll(reader)
	case bytes.HasPrefix(val, zstdMagic):
		return d.decoder.DecodeAll(val, nil)
	default:
		return val, nil
	}
}

func (d *SniffingDecompressor) Close() {
	d.decoder.Close()
}

func NewDecompressor() (interfaces.DecompressorInterface, error) {
	decoder, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(0))
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd decoder: %w", err)
	}
	return &SniffingDecompressor{decoder: decoder}, nil
}
