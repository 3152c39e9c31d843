package electra

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/golang/snappy"
)

// maxFrameBytes bounds the uncompressed size of a single framed
// message. Large enough for a full-blob block under every preset.
const maxFrameBytes = 64 * 1024 * 1024

// ReadSnappyFrame reads a varint-length-prefixed snappy frame encoded message.
// Wire format: varint(uncompressed_len) + snappy_frame(data)
func ReadSnappyFrame(r io.Reader) ([]byte, error) {
	length, err := binary.ReadUvarint(byteReader{r})
	if err != nil {
		return nil, err
	}
	if length > maxFrameBytes {
		return nil, fmt.Errorf("message too large: %d", length)
	}
	sr := snappy.NewReader(r)
	decoded := make([]byte, length)
	if _, err := io.ReadFull(sr, decoded); err != nil {
		return nil, fmt.Errorf("snappy frame decode: %w", err)
	}
	return decoded, nil
}

// WriteSnappyFrame writes a varint-length-prefixed snappy frame encoded message.
// Wire format: varint(uncompressed_len) + snappy_frame(data)
func WriteSnappyFrame(w io.Writer, data []byte) error {
	var lenBuf [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(lenBuf[:], uint64(len(data)))
	if _, err := w.Write(lenBuf[:n]); err != nil {
		return err
	}
	var buf bytes.Buffer
	sw := snappy.NewBufferedWriter(&buf)
	if _, err := sw.Write(data); err != nil {
		return err
	}
	if err := sw.Close(); err != nil {
		return err
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// ReadSSZSnappy reads one snappy-framed message and decodes it as SSZ
// under the codec's preset.
func ReadSSZSnappy[T any](c *Codec, r io.Reader) (*T, error) {
	data, err := ReadSnappyFrame(r)
	if err != nil {
		return nil, err
	}
	return DecodeSSZ[T](c, data)
}

// WriteSSZSnappy encodes a container as SSZ and writes it as one
// snappy-framed message.
func WriteSSZSnappy[T any](c *Codec, w io.Writer, v *T) error {
	data, err := EncodeSSZ(c, v)
	if err != nil {
		return err
	}
	return WriteSnappyFrame(w, data)
}

// byteReader wraps an io.Reader to implement io.ByteReader.
type byteReader struct {
	io.Reader
}

func (br byteReader) ReadByte() (byte, error) {
	var buf [1]byte
	_, err := br.Reader.Read(buf[:])
	return buf[0], err
}
