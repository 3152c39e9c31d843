package types

import (
	"github.com/holiman/uint256"

	"github.com/geanlabs/beacontypes/preset"
)

func fillRoot(b byte) Root {
	var r Root
	for i := range r {
		r[i] = b
	}
	return r
}

func fillSig(b byte) Signature {
	var s Signature
	for i := range s {
		s[i] = b
	}
	return s
}

func fillAddr(b byte) Address {
	var a Address
	for i := range a {
		a[i] = b
	}
	return a
}

func fillPubkey(b byte) Pubkey {
	var p Pubkey
	for i := range p {
		p[i] = b
	}
	return p
}

func fillKzg(b byte) KzgCommitment {
	var c KzgCommitment
	for i := range c {
		c[i] = b
	}
	return c
}

func testAttestation(p *preset.Preset) *Attestation {
	bits := make(Bitvector, p.CommitteeBitsBytes)
	bits[0] = 0x01
	return &Attestation{
		AggregationBits: Bitlist{0xff, 0x01},
		Data: &AttestationData{
			Slot:            9,
			Index:           0,
			BeaconBlockRoot: fillRoot(0x07),
			Source:          &Checkpoint{Epoch: 0, Root: fillRoot(0x08)},
			Target:          &Checkpoint{Epoch: 1, Root: fillRoot(0x09)},
		},
		Signature:     fillSig(0xbb),
		CommitteeBits: bits,
	}
}

func testPayload() *ExecutionPayload {
	var baseFee Uint256
	baseFee.SetInt(uint256.NewInt(7_000_000_000))
	return &ExecutionPayload{
		ParentHash:    fillRoot(0x01),
		FeeRecipient:  fillAddr(0x02),
		StateRoot:     fillRoot(0x03),
		ReceiptsRoot:  fillRoot(0x04),
		PrevRandao:    fillRoot(0x05),
		BlockNumber:   1234,
		GasLimit:      30_000_000,
		GasUsed:       21_000,
		Timestamp:     1_700_000_000,
		ExtraData:     ExtraData{0x01, 0x02},
		BaseFeePerGas: baseFee,
		BlockHash:     fillRoot(0x06),
		Transactions:  []Transaction{{0x02, 0xf8, 0x71}, {0x01}},
		Withdrawals: []*Withdrawal{
			{Index: 1, ValidatorIndex: 2, Address: fillAddr(0x09), Amount: 32_000_000_000},
		},
	}
}

func testBody(p *preset.Preset) *BeaconBlockBody {
	return &BeaconBlockBody{
		RandaoReveal: fillSig(0xaa),
		Eth1Data: &Eth1Data{
			DepositRoot:  fillRoot(0x03),
			DepositCount: 42,
			BlockHash:    fillRoot(0x04),
		},
		Graffiti:     fillRoot(0x67),
		Attestations: []*Attestation{testAttestation(p)},
		SyncAggregate: &SyncAggregate{
			SyncCommitteeBits:      make(Bitvector, p.SyncCommitteeBitsBytes),
			SyncCommitteeSignature: fillSig(0xcc),
		},
		ExecutionPayload:   testPayload(),
		BlobKzgCommitments: []KzgCommitment{fillKzg(0xdd)},
		ExecutionRequests: &ExecutionRequests{
			Withdrawals: []*WithdrawalRequest{
				{SourceAddress: fillAddr(0x01), ValidatorPubkey: fillPubkey(0x02), Amount: 1},
			},
		},
	}
}

func testBlock(p *preset.Preset, slot uint64) *BeaconBlock {
	return &BeaconBlock{
		Slot:          Uint64(slot),
		ProposerIndex: 7,
		ParentRoot:    fillRoot(0x11),
		StateRoot:     fillRoot(0x22),
		Body:          testBody(p),
	}
}
