package electra

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/geanlabs/beacontypes/types"
)

func TestSnappyFrameRoundTrip(t *testing.T) {
	payload := bytes.Repeat([]byte{0xab, 0xcd}, 1000)

	var buf bytes.Buffer
	if err := WriteSnappyFrame(&buf, payload); err != nil {
		t.Fatalf("write: %v", err)
	}
	back, err := ReadSnappyFrame(&buf)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !bytes.Equal(back, payload) {
		t.Fatal("payload corrupted in round trip")
	}
}

func TestSnappyFrameTooLarge(t *testing.T) {
	var buf bytes.Buffer
	var lenBuf [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(lenBuf[:], maxFrameBytes+1)
	buf.Write(lenBuf[:n])

	if _, err := ReadSnappyFrame(&buf); err == nil {
		t.Fatal("expected error for oversized frame")
	}
}

func TestSSZSnappyRoundTrip(t *testing.T) {
	c := Minimal
	block := testSignedBlock(c.Preset(), 5)

	var buf bytes.Buffer
	if err := WriteSSZSnappy(c, &buf, block); err != nil {
		t.Fatalf("write: %v", err)
	}
	back, err := ReadSSZSnappy[types.SignedBeaconBlock](c, &buf)
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	want, err := HashTreeRoot(c, block)
	if err != nil {
		t.Fatalf("root: %v", err)
	}
	got, err := HashTreeRoot(c, back)
	if err != nil {
		t.Fatalf("root: %v", err)
	}
	if got != want {
		t.Fatal("snappy transport changed the block root")
	}
}
