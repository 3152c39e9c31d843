package types

// HeaderFields is the shared header view over the full and blinded
// block shapes. Header extraction and signing helpers are written once
// against this interface instead of per shape.
//
// BodyRoot is not part of the interface: it depends on the active
// preset's hashing engine, so preset-bound helpers compute it from
// BodyValue.
type HeaderFields interface {
	HeaderSlot() uint64
	HeaderProposerIndex() uint64
	HeaderParentRoot() Root
	HeaderStateRoot() Root
	// BodyValue returns the shape's body for root computation.
	BodyValue() any
}

func (b *BeaconBlock) HeaderSlot() uint64          { return uint64(b.Slot) }
func (b *BeaconBlock) HeaderProposerIndex() uint64 { return uint64(b.ProposerIndex) }
func (b *BeaconBlock) HeaderParentRoot() Root      { return b.ParentRoot }
func (b *BeaconBlock) HeaderStateRoot() Root       { return b.StateRoot }
func (b *BeaconBlock) BodyValue() any              { return b.Body }

func (b *BlindedBeaconBlock) HeaderSlot() uint64          { return uint64(b.Slot) }
func (b *BlindedBeaconBlock) HeaderProposerIndex() uint64 { return uint64(b.ProposerIndex) }
func (b *BlindedBeaconBlock) HeaderParentRoot() Root      { return b.ParentRoot }
func (b *BlindedBeaconBlock) HeaderStateRoot() Root       { return b.StateRoot }
func (b *BlindedBeaconBlock) BodyValue() any              { return b.Body }
