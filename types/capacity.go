package types

import (
	"fmt"

	"github.com/geanlabs/beacontypes/preset"
)

// Capacity validation against the active preset. The SSZ engine
// enforces these bounds on the binary path; the JSON path runs these
// checks after decoding so that over-capacity input is rejected rather
// than silently accepted.

func checkLen(what string, got int, max uint64) error {
	if uint64(got) > max {
		return fmt.Errorf("%s: %d items exceeds capacity %d", what, got, max)
	}
	return nil
}

func checkByteLen(what string, got int, want uint64) error {
	if uint64(got) != want {
		return fmt.Errorf("%s: %d bytes, want %d", what, got, want)
	}
	return nil
}

func (a *Attestation) CheckCapacity(p *preset.Preset) error {
	if a == nil {
		return nil
	}
	if err := checkLen("attestation aggregation bits", len(a.AggregationBits), p.AttestationBitsMaxBytes); err != nil {
		return err
	}
	return checkByteLen("attestation committee bits", len(a.CommitteeBits), p.CommitteeBitsBytes)
}

func (a *IndexedAttestation) CheckCapacity(p *preset.Preset) error {
	if a == nil {
		return nil
	}
	return checkLen("attesting indices", len(a.AttestingIndices), p.MaxAttestersPerSlot)
}

func (a *AttesterSlashing) CheckCapacity(p *preset.Preset) error {
	if a == nil {
		return nil
	}
	if err := a.Attestation1.CheckCapacity(p); err != nil {
		return err
	}
	return a.Attestation2.CheckCapacity(p)
}

func (s *SyncAggregate) CheckCapacity(p *preset.Preset) error {
	if s == nil {
		return nil
	}
	return checkByteLen("sync committee bits", len(s.SyncCommitteeBits), p.SyncCommitteeBitsBytes)
}

func (e *ExecutionPayload) CheckCapacity(p *preset.Preset) error {
	if e == nil {
		return nil
	}
	if err := checkLen("extra data", len(e.ExtraData), p.MaxExtraDataBytes); err != nil {
		return err
	}
	if err := checkLen("transactions", len(e.Transactions), p.MaxTransactionsPerPayload); err != nil {
		return err
	}
	for i, tx := range e.Transactions {
		if err := checkLen(fmt.Sprintf("transaction %d", i), len(tx), p.MaxBytesPerTransaction); err != nil {
			return err
		}
	}
	return checkLen("withdrawals", len(e.Withdrawals), p.MaxWithdrawalsPerPayload)
}

func (h *ExecutionPayloadHeader) CheckCapacity(p *preset.Preset) error {
	if h == nil {
		return nil
	}
	return checkLen("extra data", len(h.ExtraData), p.MaxExtraDataBytes)
}

func (e *ExecutionRequests) CheckCapacity(p *preset.Preset) error {
	if e == nil {
		return nil
	}
	if err := checkLen("deposit requests", len(e.Deposits), p.MaxDepositRequestsPerPayload); err != nil {
		return err
	}
	if err := checkLen("withdrawal requests", len(e.Withdrawals), p.MaxWithdrawalRequestsPerPayload); err != nil {
		return err
	}
	return checkLen("consolidation requests", len(e.Consolidations), p.MaxConsolidationRequestsPerPayload)
}

func (b *BeaconBlockBody) CheckCapacity(p *preset.Preset) error {
	if b == nil {
		return nil
	}
	if err := checkLen("proposer slashings", len(b.ProposerSlashings), p.MaxProposerSlashings); err != nil {
		return err
	}
	if err := checkLen("attester slashings", len(b.AttesterSlashings), p.MaxAttesterSlashingsElectra); err != nil {
		return err
	}
	for _, s := range b.AttesterSlashings {
		if err := s.CheckCapacity(p); err != nil {
			return err
		}
	}
	if err := checkLen("attestations", len(b.Attestations), p.MaxAttestationsElectra); err != nil {
		return err
	}
	for _, a := range b.Attestations {
		if err := a.CheckCapacity(p); err != nil {
			return err
		}
	}
	if err := checkLen("deposits", len(b.Deposits), p.MaxDeposits); err != nil {
		return err
	}
	if err := checkLen("voluntary exits", len(b.VoluntaryExits), p.MaxVoluntaryExits); err != nil {
		return err
	}
	if err := b.SyncAggregate.CheckCapacity(p); err != nil {
		return err
	}
	if err := b.ExecutionPayload.CheckCapacity(p); err != nil {
		return err
	}
	if err := checkLen("bls to execution changes", len(b.BlsToExecutionChanges), p.MaxBlsToExecutionChanges); err != nil {
		return err
	}
	if err := checkLen("blob kzg commitments", len(b.BlobKzgCommitments), p.MaxBlobCommitmentsPerBlock); err != nil {
		return err
	}
	return b.ExecutionRequests.CheckCapacity(p)
}

func (b *BlindedBeaconBlockBody) CheckCapacity(p *preset.Preset) error {
	if b == nil {
		return nil
	}
	if err := checkLen("proposer slashings", len(b.ProposerSlashings), p.MaxProposerSlashings); err != nil {
		return err
	}
	if err := checkLen("attester slashings", len(b.AttesterSlashings), p.MaxAttesterSlashingsElectra); err != nil {
		return err
	}
	for _, s := range b.AttesterSlashings {
		if err := s.CheckCapacity(p); err != nil {
			return err
		}
	}
	if err := checkLen("attestations", len(b.Attestations), p.MaxAttestationsElectra); err != nil {
		return err
	}
	for _, a := range b.Attestations {
		if err := a.CheckCapacity(p); err != nil {
			return err
		}
	}
	if err := checkLen("deposits", len(b.Deposits), p.MaxDeposits); err != nil {
		return err
	}
	if err := checkLen("voluntary exits", len(b.VoluntaryExits), p.MaxVoluntaryExits); err != nil {
		return err
	}
	if err := b.SyncAggregate.CheckCapacity(p); err != nil {
		return err
	}
	if err := b.ExecutionPayloadHeader.CheckCapacity(p); err != nil {
		return err
	}
	if err := checkLen("bls to execution changes", len(b.BlsToExecutionChanges), p.MaxBlsToExecutionChanges); err != nil {
		return err
	}
	if err := checkLen("blob kzg commitments", len(b.BlobKzgCommitments), p.MaxBlobCommitmentsPerBlock); err != nil {
		return err
	}
	return b.ExecutionRequests.CheckCapacity(p)
}

func (b *BeaconBlock) CheckCapacity(p *preset.Preset) error {
	if b == nil {
		return nil
	}
	return b.Body.CheckCapacity(p)
}

func (b *BlindedBeaconBlock) CheckCapacity(p *preset.Preset) error {
	if b == nil {
		return nil
	}
	return b.Body.CheckCapacity(p)
}

func (s *SignedBeaconBlock) CheckCapacity(p *preset.Preset) error {
	if s == nil {
		return nil
	}
	return s.Message.CheckCapacity(p)
}

func (s *SignedBlindedBeaconBlock) CheckCapacity(p *preset.Preset) error {
	if s == nil {
		return nil
	}
	return s.Message.CheckCapacity(p)
}

func checkBlobSet(p *preset.Preset, proofs []KzgProof, blobs []Blob) error {
	if len(proofs) != len(blobs) {
		return fmt.Errorf("block contents: %d kzg proofs for %d blobs", len(proofs), len(blobs))
	}
	if err := checkLen("kzg proofs", len(proofs), p.MaxBlobCommitmentsPerBlock); err != nil {
		return err
	}
	if err := checkLen("blobs", len(blobs), p.MaxBlobCommitmentsPerBlock); err != nil {
		return err
	}
	for i, b := range blobs {
		if err := checkByteLen(fmt.Sprintf("blob %d", i), len(b), p.BytesPerBlob); err != nil {
			return err
		}
	}
	return nil
}

func (c *BeaconBlockContents) CheckCapacity(p *preset.Preset) error {
	if c == nil {
		return nil
	}
	if err := c.Block.CheckCapacity(p); err != nil {
		return err
	}
	return checkBlobSet(p, c.KzgProofs, c.Blobs)
}

func (c *SignedBeaconBlockContents) CheckCapacity(p *preset.Preset) error {
	if c == nil {
		return nil
	}
	if err := c.SignedBlock.CheckCapacity(p); err != nil {
		return err
	}
	return checkBlobSet(p, c.KzgProofs, c.Blobs)
}
