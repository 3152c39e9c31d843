package electra

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/geanlabs/beacontypes/types"
)

// ParseSignature decodes a hex signature string, with or without the
// 0x prefix, into a fixed 96-byte signature. No cryptographic checks
// are made; the result is opaque data.
func ParseSignature(s string) (types.Signature, error) {
	if !strings.HasPrefix(s, "0x") {
		s = "0x" + s
	}
	raw, err := hexutil.Decode(s)
	if err != nil {
		return types.Signature{}, fmt.Errorf("%w: %v", ErrInvalidSignatureEncoding, err)
	}
	if len(raw) != types.SignatureLength {
		return types.Signature{}, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidSignatureLength, len(raw), types.SignatureLength)
	}
	var sig types.Signature
	copy(sig[:], raw)
	return sig, nil
}

// SignBlock wraps a block with the given hex signature. The wrapper
// owns a deep copy of the block; the original stays independently
// usable. The signature is attached as-is, never verified.
func SignBlock(b *types.BeaconBlock, signature string) (*types.SignedBeaconBlock, error) {
	sig, err := ParseSignature(signature)
	if err != nil {
		return nil, err
	}
	return &types.SignedBeaconBlock{Message: b.Copy(), Signature: sig}, nil
}

// SignBlindedBlock wraps a blinded block with the given hex signature.
func SignBlindedBlock(b *types.BlindedBeaconBlock, signature string) (*types.SignedBlindedBeaconBlock, error) {
	sig, err := ParseSignature(signature)
	if err != nil {
		return nil, err
	}
	return &types.SignedBlindedBeaconBlock{Message: b.Copy(), Signature: sig}, nil
}

// SignBlockContents signs the inner block and carries the proof and
// blob lists into the signed wrapper, all deep copied.
func SignBlockContents(c *types.BeaconBlockContents, signature string) (*types.SignedBeaconBlockContents, error) {
	sig, err := ParseSignature(signature)
	if err != nil {
		return nil, err
	}
	cp := c.Copy()
	return &types.SignedBeaconBlockContents{
		SignedBlock: &types.SignedBeaconBlock{Message: cp.Block, Signature: sig},
		KzgProofs:   cp.KzgProofs,
		Blobs:       cp.Blobs,
	}, nil
}

// FormatRoot renders a root in the canonical 0x-prefixed lowercase hex
// form used by the text format and header dict.
func FormatRoot(r types.Root) string { return r.String() }

// BlockRoot computes a block's own hash tree root under the codec's
// preset. Defined for both block shapes through HeaderFields.
func BlockRoot(c *Codec, h types.HeaderFields) (types.Root, error) {
	root, err := c.ds.HashTreeRoot(h)
	if err != nil {
		return types.Root{}, fmt.Errorf("block root: %w", err)
	}
	return types.Root(root), nil
}

// BodyRoot computes the hash tree root of a block's body under the
// codec's preset. Defined for both body shapes through HeaderFields.
func BodyRoot(c *Codec, h types.HeaderFields) (types.Root, error) {
	root, err := c.ds.HashTreeRoot(h.BodyValue())
	if err != nil {
		return types.Root{}, fmt.Errorf("body root: %w", err)
	}
	return types.Root(root), nil
}

// HeaderDict extracts the block header fields as a string map with
// keys slot, proposer_index, parent_root, state_root and body_root.
// Integers use decimal strings, roots 0x-prefixed lowercase hex. The
// map is a read-only projection.
func HeaderDict(c *Codec, h types.HeaderFields) (map[string]string, error) {
	bodyRoot, err := BodyRoot(c, h)
	if err != nil {
		return nil, err
	}
	return map[string]string{
		"slot":           strconv.FormatUint(h.HeaderSlot(), 10),
		"proposer_index": strconv.FormatUint(h.HeaderProposerIndex(), 10),
		"parent_root":    h.HeaderParentRoot().String(),
		"state_root":     h.HeaderStateRoot().String(),
		"body_root":      bodyRoot.String(),
	}, nil
}
