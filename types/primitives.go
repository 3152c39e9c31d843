// Package types defines the Electra consensus containers: beacon
// blocks, blinded blocks, block contents with blob sidecar data, and
// their signed wrappers.
//
// Containers carry fastssz-style ssz-size/ssz-max tags with Mainnet
// defaults; fields whose bound differs between presets also carry a
// dynssz tag naming the preset constant that overrides it. The SSZ
// engine resolves those against the active preset's spec table, so one
// container family serves all presets.
//
// JSON follows the beacon API conventions: integers as decimal strings,
// byte content as 0x-prefixed lowercase hex.
package types

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/holiman/uint256"
)

// Byte lengths of the fixed-size primitives.
const (
	RootLength      = 32
	SignatureLength = 96
	PubkeyLength    = 48
	KzgLength       = 48
	AddressLength   = 20
	BloomLength     = 256
)

// Root is a 32-byte hash tree root or block/state hash.
type Root [RootLength]byte

// Signature is a 96-byte BLS signature. It is treated as an opaque
// byte string; no cryptographic checks happen in this module.
type Signature [SignatureLength]byte

// Pubkey is a 48-byte BLS public key.
type Pubkey [PubkeyLength]byte

// KzgCommitment is a 48-byte KZG commitment to a blob.
type KzgCommitment [KzgLength]byte

// KzgProof is a 48-byte KZG proof for a blob commitment.
type KzgProof [KzgLength]byte

// Address is a 20-byte execution layer address.
type Address [AddressLength]byte

// LogsBloom is the 256-byte execution logs bloom filter.
type LogsBloom [BloomLength]byte

// Blob is one blob's data: FIELD_ELEMENTS_PER_BLOB * 32 bytes under
// the active preset.
type Blob []byte

// Transaction is an opaque execution layer transaction.
type Transaction []byte

// ExtraData is the execution payload extra data field.
type ExtraData []byte

// Bitlist is an SSZ bitlist carried as its serialized bytes, delimiter
// bit included.
type Bitlist []byte

// Bitvector is an SSZ bitvector carried as its packed bytes. Its width
// is fixed by the active preset.
type Bitvector []byte

// Uint64 is a uint64 that marshals to a decimal string in JSON, per
// the beacon API convention.
type Uint64 uint64

// Uint256 is a little-endian 256-bit unsigned integer. JSON uses the
// decimal string form.
type Uint256 [32]byte

func marshalHex(b []byte) ([]byte, error) {
	return json.Marshal(hexutil.Encode(b))
}

// unmarshalHex decodes a JSON "0x..." string. want < 0 accepts any
// length; otherwise the decoded length must match exactly.
func unmarshalHex(data []byte, want int) ([]byte, error) {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	s = strings.TrimPrefix(s, "0x")
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid hex: %w", err)
	}
	if want >= 0 && len(b) != want {
		return nil, fmt.Errorf("got %d bytes, want %d", len(b), want)
	}
	return b, nil
}

func (r Root) MarshalJSON() ([]byte, error) { return marshalHex(r[:]) }

func (r *Root) UnmarshalJSON(data []byte) error {
	b, err := unmarshalHex(data, RootLength)
	if err != nil {
		return fmt.Errorf("root: %w", err)
	}
	copy(r[:], b)
	return nil
}

// String returns the 0x-prefixed lowercase hex form.
func (r Root) String() string { return hexutil.Encode(r[:]) }

func (s Signature) MarshalJSON() ([]byte, error) { return marshalHex(s[:]) }

func (s *Signature) UnmarshalJSON(data []byte) error {
	b, err := unmarshalHex(data, SignatureLength)
	if err != nil {
		return fmt.Errorf("signature: %w", err)
	}
	copy(s[:], b)
	return nil
}

func (s Signature) String() string { return hexutil.Encode(s[:]) }

func (p Pubkey) MarshalJSON() ([]byte, error) { return marshalHex(p[:]) }

func (p *Pubkey) UnmarshalJSON(data []byte) error {
	b, err := unmarshalHex(data, PubkeyLength)
	if err != nil {
		return fmt.Errorf("pubkey: %w", err)
	}
	copy(p[:], b)
	return nil
}

func (c KzgCommitment) MarshalJSON() ([]byte, error) { return marshalHex(c[:]) }

func (c *KzgCommitment) UnmarshalJSON(data []byte) error {
	b, err := unmarshalHex(data, KzgLength)
	if err != nil {
		return fmt.Errorf("kzg commitment: %w", err)
	}
	copy(c[:], b)
	return nil
}

func (p KzgProof) MarshalJSON() ([]byte, error) { return marshalHex(p[:]) }

func (p *KzgProof) UnmarshalJSON(data []byte) error {
	b, err := unmarshalHex(data, KzgLength)
	if err != nil {
		return fmt.Errorf("kzg proof: %w", err)
	}
	copy(p[:], b)
	return nil
}

func (a Address) MarshalJSON() ([]byte, error) { return marshalHex(a[:]) }

func (a *Address) UnmarshalJSON(data []byte) error {
	b, err := unmarshalHex(data, AddressLength)
	if err != nil {
		return fmt.Errorf("address: %w", err)
	}
	copy(a[:], b)
	return nil
}

func (l LogsBloom) MarshalJSON() ([]byte, error) { return marshalHex(l[:]) }

func (l *LogsBloom) UnmarshalJSON(data []byte) error {
	b, err := unmarshalHex(data, BloomLength)
	if err != nil {
		return fmt.Errorf("logs bloom: %w", err)
	}
	copy(l[:], b)
	return nil
}

func (b Blob) MarshalJSON() ([]byte, error) { return marshalHex(b) }

func (b *Blob) UnmarshalJSON(data []byte) error {
	raw, err := unmarshalHex(data, -1)
	if err != nil {
		return fmt.Errorf("blob: %w", err)
	}
	*b = raw
	return nil
}

func (t Transaction) MarshalJSON() ([]byte, error) { return marshalHex(t) }

func (t *Transaction) UnmarshalJSON(data []byte) error {
	raw, err := unmarshalHex(data, -1)
	if err != nil {
		return fmt.Errorf("transaction: %w", err)
	}
	*t = raw
	return nil
}

func (e ExtraData) MarshalJSON() ([]byte, error) { return marshalHex(e) }

func (e *ExtraData) UnmarshalJSON(data []byte) error {
	raw, err := unmarshalHex(data, -1)
	if err != nil {
		return fmt.Errorf("extra data: %w", err)
	}
	*e = raw
	return nil
}

func (b Bitlist) MarshalJSON() ([]byte, error) { return marshalHex(b) }

func (b *Bitlist) UnmarshalJSON(data []byte) error {
	raw, err := unmarshalHex(data, -1)
	if err != nil {
		return fmt.Errorf("bitlist: %w", err)
	}
	*b = raw
	return nil
}

func (b Bitvector) MarshalJSON() ([]byte, error) { return marshalHex(b) }

func (b *Bitvector) UnmarshalJSON(data []byte) error {
	raw, err := unmarshalHex(data, -1)
	if err != nil {
		return fmt.Errorf("bitvector: %w", err)
	}
	*b = raw
	return nil
}

func (u Uint64) MarshalJSON() ([]byte, error) {
	return json.Marshal(strconv.FormatUint(uint64(u), 10))
}

func (u *Uint64) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		// Accept bare JSON numbers as well; some producers emit them.
		var n uint64
		if err2 := json.Unmarshal(data, &n); err2 != nil {
			return fmt.Errorf("uint64: %w", err)
		}
		*u = Uint64(n)
		return nil
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return fmt.Errorf("uint64: %w", err)
	}
	*u = Uint64(n)
	return nil
}

// Int converts the little-endian SSZ form to a uint256.Int.
func (u Uint256) Int() *uint256.Int {
	var be [32]byte
	for i := range u {
		be[31-i] = u[i]
	}
	return new(uint256.Int).SetBytes(be[:])
}

// SetInt stores the big-endian integer in little-endian SSZ form.
func (u *Uint256) SetInt(v *uint256.Int) {
	be := v.Bytes32()
	for i := range u {
		u[i] = be[31-i]
	}
}

func (u Uint256) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.Int().Dec())
}

func (u *Uint256) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("uint256: %w", err)
	}
	v, err := uint256.FromDecimal(s)
	if err != nil {
		return fmt.Errorf("uint256: %w", err)
	}
	u.SetInt(v)
	return nil
}
