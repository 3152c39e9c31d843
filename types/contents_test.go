package types

import (
	"strings"
	"testing"

	"github.com/geanlabs/beacontypes/preset"
)

func TestNewBeaconBlockContents(t *testing.T) {
	p := preset.Minimal
	block := testBlock(p, 3)
	proofs := []KzgProof{{0x01}}
	blobs := []Blob{make(Blob, p.BytesPerBlob)}

	c, err := NewBeaconBlockContents(block, proofs, blobs)
	if err != nil {
		t.Fatalf("NewBeaconBlockContents: %v", err)
	}
	if len(c.KzgProofs) != 1 || len(c.Blobs) != 1 {
		t.Fatal("contents lost proofs or blobs")
	}
}

func TestNewBeaconBlockContentsMismatch(t *testing.T) {
	p := preset.Minimal
	_, err := NewBeaconBlockContents(testBlock(p, 3), []KzgProof{{0x01}}, nil)
	if err == nil {
		t.Fatal("expected error for proof/blob length mismatch")
	}
	if !strings.Contains(err.Error(), "1 kzg proofs for 0 blobs") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestNewBeaconBlockContentsNilBlock(t *testing.T) {
	if _, err := NewBeaconBlockContents(nil, nil, nil); err == nil {
		t.Fatal("expected error for nil block")
	}
}

func TestContentsCheckCapacity(t *testing.T) {
	p := preset.Minimal
	good := &BeaconBlockContents{
		Block:     testBlock(p, 3),
		KzgProofs: []KzgProof{{0x01}},
		Blobs:     []Blob{make(Blob, p.BytesPerBlob)},
	}
	if err := good.CheckCapacity(p); err != nil {
		t.Fatalf("valid contents rejected: %v", err)
	}

	shortBlob := &BeaconBlockContents{
		Block:     testBlock(p, 3),
		KzgProofs: []KzgProof{{0x01}},
		Blobs:     []Blob{make(Blob, 10)},
	}
	if err := shortBlob.CheckCapacity(p); err == nil {
		t.Fatal("expected error for wrong blob size")
	}

	tooMany := &BeaconBlockContents{Block: testBlock(p, 3)}
	for i := uint64(0); i <= p.MaxBlobCommitmentsPerBlock; i++ {
		tooMany.KzgProofs = append(tooMany.KzgProofs, KzgProof{})
		tooMany.Blobs = append(tooMany.Blobs, make(Blob, p.BytesPerBlob))
	}
	if err := tooMany.CheckCapacity(p); err == nil {
		t.Fatal("expected error for over-capacity blob list")
	}
}

func TestBodyCheckCapacity(t *testing.T) {
	p := preset.Minimal
	body := testBody(p)
	if err := body.CheckCapacity(p); err != nil {
		t.Fatalf("valid body rejected: %v", err)
	}

	for i := uint64(0); i <= p.MaxAttestationsElectra; i++ {
		body.Attestations = append(body.Attestations, testAttestation(p))
	}
	if err := body.CheckCapacity(p); err == nil {
		t.Fatal("expected error for over-capacity attestation list")
	}

	body = testBody(p)
	body.SyncAggregate.SyncCommitteeBits = make(Bitvector, 3)
	if err := body.CheckCapacity(p); err == nil {
		t.Fatal("expected error for wrong sync committee bits width")
	}
}
