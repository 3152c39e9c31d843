package electra

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/geanlabs/beacontypes/preset"
	"github.com/geanlabs/beacontypes/types"
)

func TestSSZRoundTripSignedBlock(t *testing.T) {
	for _, c := range []*Codec{Mainnet, Minimal, Gnosis} {
		block := testSignedBlock(c.Preset(), 5)

		encoded, err := EncodeSSZ(c, block)
		if err != nil {
			t.Fatalf("%s: encode: %v", c.Preset().Name, err)
		}
		decoded, err := DecodeSSZ[types.SignedBeaconBlock](c, encoded)
		if err != nil {
			t.Fatalf("%s: decode: %v", c.Preset().Name, err)
		}
		reencoded, err := EncodeSSZ(c, decoded)
		if err != nil {
			t.Fatalf("%s: re-encode: %v", c.Preset().Name, err)
		}
		if !bytes.Equal(encoded, reencoded) {
			t.Fatalf("%s: re-encoded bytes differ", c.Preset().Name)
		}
	}
}

func TestSSZRoundTripBlindedBlock(t *testing.T) {
	c := Minimal
	signed := &types.SignedBlindedBeaconBlock{
		Message:   testBlindedBlock(c.Preset(), 8),
		Signature: fillSig(0xee),
	}
	encoded, err := EncodeSSZ(c, signed)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	decoded, err := DecodeSSZ[types.SignedBlindedBeaconBlock](c, encoded)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.Message.Body.ExecutionPayloadHeader.TransactionsRoot != fillRoot(0x07) {
		t.Fatal("transactions root lost in round trip")
	}
}

func TestSSZRoundTripContents(t *testing.T) {
	c := Minimal
	contents := testContents(t, c.Preset())

	encoded, err := EncodeSSZ(c, contents)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	decoded, err := DecodeSSZ[types.BeaconBlockContents](c, encoded)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(decoded.Blobs) != 1 || decoded.Blobs[0][0] != 0x42 {
		t.Fatal("blob data lost in round trip")
	}
	if uint64(len(decoded.Blobs[0])) != c.Preset().BytesPerBlob {
		t.Fatalf("blob size %d, want %d", len(decoded.Blobs[0]), c.Preset().BytesPerBlob)
	}
}

func TestDecodeSSZMalformed(t *testing.T) {
	c := Minimal
	if _, err := DecodeSSZ[types.SignedBeaconBlock](c, []byte{0x01, 0x02, 0x03}); !errors.Is(err, ErrMalformedBinary) {
		t.Fatalf("short buffer: got %v, want ErrMalformedBinary", err)
	}

	encoded, err := EncodeSSZ(c, testSignedBlock(c.Preset(), 5))
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if _, err := DecodeSSZ[types.SignedBeaconBlock](c, encoded[:len(encoded)-4]); !errors.Is(err, ErrMalformedBinary) {
		t.Fatalf("truncated buffer: got %v, want ErrMalformedBinary", err)
	}
}

func TestDecodeSSZOverCapacity(t *testing.T) {
	c := Minimal
	block := testSignedBlock(c.Preset(), 5)
	payload := block.Message.Body.ExecutionPayload
	for i := uint64(0); i < 10; i++ {
		payload.Withdrawals = append(payload.Withdrawals, &types.Withdrawal{
			Index:          types.Uint64(i),
			ValidatorIndex: types.Uint64(i),
			Address:        fillAddr(0x09),
			Amount:         1,
		})
	}

	// The engine encodes whatever it is handed; the bound must hold on
	// the way back in.
	encoded, err := EncodeSSZ(c, block)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if _, err := DecodeSSZ[types.SignedBeaconBlock](c, encoded); !errors.Is(err, ErrMalformedBinary) {
		t.Fatalf("over-capacity withdrawals: got %v, want ErrMalformedBinary", err)
	}

	block = testSignedBlock(c.Preset(), 5)
	for i := uint64(0); i <= c.Preset().MaxAttestationsElectra; i++ {
		block.Message.Body.Attestations = append(block.Message.Body.Attestations, testAttestation(c.Preset()))
	}
	encoded, err = EncodeSSZ(c, block)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if _, err := DecodeSSZ[types.SignedBeaconBlock](c, encoded); !errors.Is(err, ErrMalformedBinary) {
		t.Fatalf("over-capacity attestations: got %v, want ErrMalformedBinary", err)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	c := Gnosis
	block := testSignedBlock(c.Preset(), 12)

	encoded, err := EncodeJSON(c, block)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if !strings.Contains(string(encoded), `"data"`) {
		t.Fatal("json output missing data envelope")
	}
	if !strings.Contains(string(encoded), `"slot":"12"`) {
		t.Fatalf("slot not encoded as decimal string:\n%s", encoded)
	}

	decoded, err := DecodeJSON[types.SignedBeaconBlock](c, encoded)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	want, err := HashTreeRoot(c, block)
	if err != nil {
		t.Fatalf("root: %v", err)
	}
	got, err := HashTreeRoot(c, decoded)
	if err != nil {
		t.Fatalf("root: %v", err)
	}
	if got != want {
		t.Fatal("json round trip changed the hash tree root")
	}
}

func TestDecodeJSONMalformed(t *testing.T) {
	c := Minimal
	cases := []struct {
		name string
		in   string
	}{
		{"invalid syntax", `{"data":`},
		{"missing envelope", `{}`},
		{"null data", `{"data":null}`},
		{"mistyped field", `{"data":{"message":{"slot":true}}}`},
	}
	for _, tc := range cases {
		if _, err := DecodeJSON[types.SignedBeaconBlock](c, []byte(tc.in)); !errors.Is(err, ErrMalformedText) {
			t.Fatalf("%s: got %v, want ErrMalformedText", tc.name, err)
		}
	}
}

func TestDecodeJSONOverCapacity(t *testing.T) {
	c := Minimal
	block := testSignedBlock(c.Preset(), 5)
	for i := uint64(0); i <= c.Preset().MaxAttestationsElectra; i++ {
		block.Message.Body.Attestations = append(block.Message.Body.Attestations, testAttestation(c.Preset()))
	}

	encoded, err := EncodeJSON(c, block)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if _, err := DecodeJSON[types.SignedBeaconBlock](c, encoded); !errors.Is(err, ErrMalformedText) {
		t.Fatalf("over-capacity list: got %v, want ErrMalformedText", err)
	}
}

func TestHashTreeRootDeterministic(t *testing.T) {
	c := Minimal
	block := testSignedBlock(c.Preset(), 5)

	r1, err := HashTreeRoot(c, block)
	if err != nil {
		t.Fatalf("root: %v", err)
	}
	r2, err := HashTreeRoot(c, block)
	if err != nil {
		t.Fatalf("root: %v", err)
	}
	if r1 != r2 {
		t.Fatal("hash tree root is not deterministic")
	}

	other := testSignedBlock(c.Preset(), 6)
	r3, err := HashTreeRoot(c, other)
	if err != nil {
		t.Fatalf("root: %v", err)
	}
	if r3 == r1 {
		t.Fatal("hash tree root did not change with the slot")
	}
}

func TestHashTreeRootListOrderSensitive(t *testing.T) {
	c := Minimal
	block := testBlock(c.Preset(), 5)
	block.Body.BlobKzgCommitments = []types.KzgCommitment{{0x01}, {0x02}}

	before, err := HashTreeRoot(c, block)
	if err != nil {
		t.Fatalf("root: %v", err)
	}

	commitments := block.Body.BlobKzgCommitments
	commitments[0], commitments[1] = commitments[1], commitments[0]

	after, err := HashTreeRoot(c, block)
	if err != nil {
		t.Fatalf("root: %v", err)
	}
	if after == before {
		t.Fatal("reordering a list did not change the root")
	}
}

func TestCrossPresetIsolation(t *testing.T) {
	encoded, err := EncodeSSZ(Minimal, testSignedBlock(preset.Minimal, 5))
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	// The sync committee bitvector width differs, so the mainnet layout
	// cannot accept minimal bytes.
	if _, err := DecodeSSZ[types.SignedBeaconBlock](Mainnet, encoded); err == nil {
		t.Fatal("mainnet codec accepted minimal-encoded bytes")
	}

	rMinimal, err := HashTreeRoot(Minimal, testBlock(preset.Minimal, 5))
	if err != nil {
		t.Fatalf("root: %v", err)
	}
	rMainnet, err := HashTreeRoot(Mainnet, testBlock(preset.Mainnet, 5))
	if err != nil {
		t.Fatalf("root: %v", err)
	}
	if rMinimal == rMainnet {
		t.Fatal("presets with different capacities produced the same root")
	}
}

func TestForName(t *testing.T) {
	c, err := ForName("gnosis")
	if err != nil {
		t.Fatalf("ForName: %v", err)
	}
	if c != Gnosis {
		t.Fatal("ForName did not return the shared gnosis codec")
	}
	if _, err := ForName("holesky"); err == nil {
		t.Fatal("expected error for unknown preset")
	}
}
