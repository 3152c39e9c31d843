package electra

import (
	"testing"

	"github.com/holiman/uint256"

	"github.com/geanlabs/beacontypes/preset"
	"github.com/geanlabs/beacontypes/types"
)

func fillRoot(b byte) types.Root {
	var r types.Root
	for i := range r {
		r[i] = b
	}
	return r
}

func fillSig(b byte) types.Signature {
	var s types.Signature
	for i := range s {
		s[i] = b
	}
	return s
}

func fillAddr(b byte) types.Address {
	var a types.Address
	for i := range a {
		a[i] = b
	}
	return a
}

func testPayload() *types.ExecutionPayload {
	var baseFee types.Uint256
	baseFee.SetInt(uint256.NewInt(7_000_000_000))
	return &types.ExecutionPayload{
		ParentHash:    fillRoot(0x01),
		FeeRecipient:  fillAddr(0x02),
		StateRoot:     fillRoot(0x03),
		ReceiptsRoot:  fillRoot(0x04),
		PrevRandao:    fillRoot(0x05),
		BlockNumber:   1234,
		GasLimit:      30_000_000,
		GasUsed:       21_000,
		Timestamp:     1_700_000_000,
		ExtraData:     types.ExtraData{0x01, 0x02},
		BaseFeePerGas: baseFee,
		BlockHash:     fillRoot(0x06),
		Transactions:  []types.Transaction{{0x02, 0xf8, 0x71}},
		Withdrawals: []*types.Withdrawal{
			{Index: 1, ValidatorIndex: 2, Address: fillAddr(0x09), Amount: 32_000_000_000},
		},
	}
}

func testPayloadHeader() *types.ExecutionPayloadHeader {
	var baseFee types.Uint256
	baseFee.SetInt(uint256.NewInt(7_000_000_000))
	return &types.ExecutionPayloadHeader{
		ParentHash:       fillRoot(0x01),
		FeeRecipient:     fillAddr(0x02),
		StateRoot:        fillRoot(0x03),
		ReceiptsRoot:     fillRoot(0x04),
		PrevRandao:       fillRoot(0x05),
		BlockNumber:      1234,
		GasLimit:         30_000_000,
		GasUsed:          21_000,
		Timestamp:        1_700_000_000,
		ExtraData:        types.ExtraData{0x01, 0x02},
		BaseFeePerGas:    baseFee,
		BlockHash:        fillRoot(0x06),
		TransactionsRoot: fillRoot(0x07),
		WithdrawalsRoot:  fillRoot(0x08),
	}
}

func testAttestation(p *preset.Preset) *types.Attestation {
	bits := make(types.Bitvector, p.CommitteeBitsBytes)
	bits[0] = 0x01
	return &types.Attestation{
		AggregationBits: types.Bitlist{0xff, 0x01},
		Data: &types.AttestationData{
			Slot:            9,
			BeaconBlockRoot: fillRoot(0x07),
			Source:          &types.Checkpoint{Epoch: 0, Root: fillRoot(0x08)},
			Target:          &types.Checkpoint{Epoch: 1, Root: fillRoot(0x09)},
		},
		Signature:     fillSig(0xbb),
		CommitteeBits: bits,
	}
}

func testBody(p *preset.Preset) *types.BeaconBlockBody {
	return &types.BeaconBlockBody{
		RandaoReveal: fillSig(0xaa),
		Eth1Data: &types.Eth1Data{
			DepositRoot:  fillRoot(0x03),
			DepositCount: 42,
			BlockHash:    fillRoot(0x04),
		},
		Graffiti:     fillRoot(0x67),
		Attestations: []*types.Attestation{testAttestation(p)},
		SyncAggregate: &types.SyncAggregate{
			SyncCommitteeBits:      make(types.Bitvector, p.SyncCommitteeBitsBytes),
			SyncCommitteeSignature: fillSig(0xcc),
		},
		ExecutionPayload:   testPayload(),
		BlobKzgCommitments: []types.KzgCommitment{{0xdd}},
		ExecutionRequests:  &types.ExecutionRequests{},
	}
}

func testBlindedBody(p *preset.Preset) *types.BlindedBeaconBlockBody {
	return &types.BlindedBeaconBlockBody{
		RandaoReveal: fillSig(0xaa),
		Eth1Data: &types.Eth1Data{
			DepositRoot:  fillRoot(0x03),
			DepositCount: 42,
			BlockHash:    fillRoot(0x04),
		},
		Graffiti:     fillRoot(0x67),
		Attestations: []*types.Attestation{testAttestation(p)},
		SyncAggregate: &types.SyncAggregate{
			SyncCommitteeBits:      make(types.Bitvector, p.SyncCommitteeBitsBytes),
			SyncCommitteeSignature: fillSig(0xcc),
		},
		ExecutionPayloadHeader: testPayloadHeader(),
		BlobKzgCommitments:     []types.KzgCommitment{{0xdd}},
		ExecutionRequests:      &types.ExecutionRequests{},
	}
}

func testBlock(p *preset.Preset, slot uint64) *types.BeaconBlock {
	return &types.BeaconBlock{
		Slot:          types.Uint64(slot),
		ProposerIndex: 7,
		ParentRoot:    fillRoot(0x11),
		StateRoot:     fillRoot(0x22),
		Body:          testBody(p),
	}
}

func testBlindedBlock(p *preset.Preset, slot uint64) *types.BlindedBeaconBlock {
	return &types.BlindedBeaconBlock{
		Slot:          types.Uint64(slot),
		ProposerIndex: 7,
		ParentRoot:    fillRoot(0x11),
		StateRoot:     fillRoot(0x22),
		Body:          testBlindedBody(p),
	}
}

func testSignedBlock(p *preset.Preset, slot uint64) *types.SignedBeaconBlock {
	return &types.SignedBeaconBlock{
		Message:   testBlock(p, slot),
		Signature: fillSig(0xee),
	}
}

func testContents(t *testing.T, p *preset.Preset) *types.BeaconBlockContents {
	t.Helper()
	blob := make(types.Blob, p.BytesPerBlob)
	blob[0] = 0x42
	c, err := types.NewBeaconBlockContents(
		testBlock(p, 3),
		[]types.KzgProof{{0x01}},
		[]types.Blob{blob},
	)
	if err != nil {
		t.Fatalf("test contents: %v", err)
	}
	return c
}
