package types

import "fmt"

// BeaconBlockContents is a full block together with the KZG proofs and
// blobs it commits to. Proofs and blobs are index aligned: proof i
// belongs to blob i.
type BeaconBlockContents struct {
	Block     *BeaconBlock `json:"block"`
	KzgProofs []KzgProof   `json:"kzg_proofs" ssz-max:"4096" ssz-size:"?,48" dynssz-max:"MAX_BLOB_COMMITMENTS_PER_BLOCK"`
	Blobs     []Blob       `json:"blobs" ssz-max:"4096" ssz-size:"?,131072" dynssz-max:"MAX_BLOB_COMMITMENTS_PER_BLOCK" dynssz-size:"?,BYTES_PER_BLOB"`
}

// SignedBeaconBlockContents is the signed variant: the inner block is
// wrapped in a SignedBeaconBlock, proofs and blobs ride alongside.
type SignedBeaconBlockContents struct {
	SignedBlock *SignedBeaconBlock `json:"signed_block"`
	KzgProofs   []KzgProof         `json:"kzg_proofs" ssz-max:"4096" ssz-size:"?,48" dynssz-max:"MAX_BLOB_COMMITMENTS_PER_BLOCK"`
	Blobs       []Blob             `json:"blobs" ssz-max:"4096" ssz-size:"?,131072" dynssz-max:"MAX_BLOB_COMMITMENTS_PER_BLOCK" dynssz-size:"?,BYTES_PER_BLOB"`
}

// NewBeaconBlockContents builds block contents, rejecting mismatched
// proof and blob list lengths up front rather than at encode time.
func NewBeaconBlockContents(block *BeaconBlock, proofs []KzgProof, blobs []Blob) (*BeaconBlockContents, error) {
	if block == nil {
		return nil, fmt.Errorf("block contents: nil block")
	}
	if len(proofs) != len(blobs) {
		return nil, fmt.Errorf("block contents: %d kzg proofs for %d blobs", len(proofs), len(blobs))
	}
	return &BeaconBlockContents{Block: block, KzgProofs: proofs, Blobs: blobs}, nil
}
