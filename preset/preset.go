// Package preset holds the compiled-in protocol constant tables for the
// supported chain configurations: Mainnet, Minimal and Gnosis.
//
// A Preset is an immutable table of capacity constants (vector and list
// bounds used by every container shape) and economic/timing constants.
// Presets are a closed menu: adding one means extending this package,
// not passing runtime data. Containers built under one preset never
// interoperate with another.
package preset

import "fmt"

// Preset is a named table of protocol constants. The Derived block is
// computed once from the other fields by build; it is never configured
// independently, so it cannot drift out of consistency with its inputs.
type Preset struct {
	Name string

	// Phase 0 capacities.
	EpochsPerEth1VotingPeriod uint64
	EpochsPerHistoricalRoot   uint64
	EpochsPerHistoricalVector uint64
	EpochsPerSlashingsVector  uint64
	HistoricalRootsLimit      uint64
	MaxAttestations           uint64
	MaxAttesterSlashings      uint64
	MaxCommitteesPerSlot      uint64
	MaxDeposits               uint64
	MaxProposerSlashings      uint64
	MaxValidatorsPerCommittee uint64
	MaxVoluntaryExits         uint64
	MinSeedLookahead          uint64
	SlotsPerEpoch             uint64
	ValidatorRegistryLimit    uint64

	// Altair capacities.
	SyncCommitteeSize uint64

	// Bellatrix capacities.
	BytesPerLogsBloom         uint64
	MaxBytesPerTransaction    uint64
	MaxExtraDataBytes         uint64
	MaxTransactionsPerPayload uint64

	// Capella capacities.
	MaxBlsToExecutionChanges uint64
	MaxWithdrawalsPerPayload uint64

	// Deneb capacities.
	FieldElementsPerBlob             uint64
	MaxBlobCommitmentsPerBlock       uint64
	KzgCommitmentInclusionProofDepth uint64

	// Electra capacities.
	MaxAttestationsElectra             uint64
	MaxAttesterSlashingsElectra        uint64
	MaxConsolidationRequestsPerPayload uint64
	MaxDepositRequestsPerPayload       uint64
	MaxWithdrawalRequestsPerPayload    uint64
	PendingDepositsLimit               uint64
	PendingConsolidationsLimit         uint64
	PendingPartialWithdrawalsLimit     uint64

	// Fulu capacities.
	FieldElementsPerCell              uint64
	FieldElementsPerExtBlob           uint64
	KzgCommitmentsInclusionProofDepth uint64
	NumberOfColumns                   uint64

	// Derived capacities, filled in by build.
	MaxAttestersPerSlot     uint64 // MaxValidatorsPerCommittee * MaxCommitteesPerSlot
	MaxCellProofsPerBlock   uint64 // FieldElementsPerExtBlob * MaxBlobCommitmentsPerBlock
	CellsPerExtBlob         uint64 // FieldElementsPerExtBlob / FieldElementsPerCell
	BytesPerBlob            uint64 // FieldElementsPerBlob * 32
	SyncCommitteeBitsBytes  uint64 // ceil(SyncCommitteeSize / 8), bitvector width
	CommitteeBitsBytes      uint64 // ceil(MaxCommitteesPerSlot / 8), bitvector width
	AttestationBitsMaxBytes uint64 // MaxAttestersPerSlot/8 + 1, serialized bitlist bound

	// Economic and timing constants. Not consulted by the codec path,
	// but part of the same table so a preset is a complete description
	// of its configuration.
	BaseRewardFactor                        uint64
	EffectiveBalanceIncrement               uint64
	HysteresisDownwardMultiplier            uint64
	HysteresisQuotient                      uint64
	HysteresisUpwardMultiplier              uint64
	InactivityPenaltyQuotient               uint64
	MaxEffectiveBalance                     uint64
	MaxSeedLookahead                        uint64
	MinAttestationInclusionDelay            uint64
	MinDepositAmount                        uint64
	MinEpochsToInactivityPenalty            uint64
	MinSlashingPenaltyQuotient              uint64
	ProportionalSlashingMultiplier          uint64
	ProposerRewardQuotient                  uint64
	ShuffleRoundCount                       uint64
	TargetCommitteeSize                     uint64
	WhistleblowerRewardQuotient             uint64
	EpochsPerSyncCommitteePeriod            uint64
	InactivityPenaltyQuotientAltair         uint64
	MinSlashingPenaltyQuotientAltair        uint64
	MinSyncCommitteeParticipants            uint64
	ProportionalSlashingMultiplierAltair    uint64
	InactivityPenaltyQuotientBellatrix      uint64
	MinSlashingPenaltyQuotientBellatrix     uint64
	ProportionalSlashingMultiplierBellatrix uint64
	MaxValidatorsPerWithdrawalsSweep        uint64
	MaxEffectiveBalanceElectra              uint64
	MaxPendingPartialsPerWithdrawalsSweep   uint64
	MaxPendingDepositsPerEpoch              uint64
	MinActivationBalance                    uint64
	MinSlashingPenaltyQuotientElectra       uint64
	WhistleblowerRewardQuotientElectra      uint64
}

// build fills in the derived constants and returns the completed table.
// Derived values are computed here and nowhere else.
func build(p Preset) *Preset {
	p.MaxAttestersPerSlot = p.MaxValidatorsPerCommittee * p.MaxCommitteesPerSlot
	p.MaxCellProofsPerBlock = p.FieldElementsPerExtBlob * p.MaxBlobCommitmentsPerBlock
	p.CellsPerExtBlob = p.FieldElementsPerExtBlob / p.FieldElementsPerCell
	p.BytesPerBlob = p.FieldElementsPerBlob * 32
	p.SyncCommitteeBitsBytes = (p.SyncCommitteeSize + 7) / 8
	p.CommitteeBitsBytes = (p.MaxCommitteesPerSlot + 7) / 8
	p.AttestationBitsMaxBytes = p.MaxAttestersPerSlot/8 + 1
	return &p
}

// Verify checks that the derived constants still satisfy their defining
// arithmetic relationships and that values the container family relies
// on are non-zero. A failure indicates a corrupted table, which would
// produce structurally invalid containers.
func (p *Preset) Verify() error {
	if p.MaxAttestersPerSlot != p.MaxValidatorsPerCommittee*p.MaxCommitteesPerSlot {
		return fmt.Errorf("preset %s: MaxAttestersPerSlot %d != MaxValidatorsPerCommittee*MaxCommitteesPerSlot %d",
			p.Name, p.MaxAttestersPerSlot, p.MaxValidatorsPerCommittee*p.MaxCommitteesPerSlot)
	}
	if p.MaxCellProofsPerBlock != p.FieldElementsPerExtBlob*p.MaxBlobCommitmentsPerBlock {
		return fmt.Errorf("preset %s: MaxCellProofsPerBlock %d != FieldElementsPerExtBlob*MaxBlobCommitmentsPerBlock %d",
			p.Name, p.MaxCellProofsPerBlock, p.FieldElementsPerExtBlob*p.MaxBlobCommitmentsPerBlock)
	}
	if p.FieldElementsPerCell == 0 || p.CellsPerExtBlob != p.FieldElementsPerExtBlob/p.FieldElementsPerCell {
		return fmt.Errorf("preset %s: CellsPerExtBlob inconsistent", p.Name)
	}
	if p.BytesPerBlob != p.FieldElementsPerBlob*32 {
		return fmt.Errorf("preset %s: BytesPerBlob %d != FieldElementsPerBlob*32", p.Name, p.BytesPerBlob)
	}
	if p.SyncCommitteeBitsBytes != (p.SyncCommitteeSize+7)/8 {
		return fmt.Errorf("preset %s: SyncCommitteeBitsBytes inconsistent", p.Name)
	}
	if p.CommitteeBitsBytes != (p.MaxCommitteesPerSlot+7)/8 {
		return fmt.Errorf("preset %s: CommitteeBitsBytes inconsistent", p.Name)
	}
	if p.AttestationBitsMaxBytes != p.MaxAttestersPerSlot/8+1 {
		return fmt.Errorf("preset %s: AttestationBitsMaxBytes inconsistent", p.Name)
	}
	if p.SlotsPerEpoch == 0 || p.MaxBlobCommitmentsPerBlock == 0 {
		return fmt.Errorf("preset %s: zero capacity constant", p.Name)
	}
	return nil
}

// ByName resolves a preset from its canonical lowercase name. The menu
// is fixed at compile time.
func ByName(name string) (*Preset, error) {
	switch name {
	case "mainnet":
		return Mainnet, nil
	case "minimal":
		return Minimal, nil
	case "gnosis":
		return Gnosis, nil
	default:
		return nil, fmt.Errorf("unknown preset %q (supported: mainnet, minimal, gnosis)", name)
	}
}

// All returns the compiled-in presets in a stable order.
func All() []*Preset {
	return []*Preset{Mainnet, Minimal, Gnosis}
}

// Specs returns the constant table keyed by the upstream
// UPPER_SNAKE_CASE names. This is the spec map consumed by the SSZ
// engine to resolve dynssz-size/dynssz-max tags, and the shape exported
// to YAML.
func (p *Preset) Specs() map[string]any {
	return map[string]any{
		"EPOCHS_PER_ETH1_VOTING_PERIOD":          p.EpochsPerEth1VotingPeriod,
		"EPOCHS_PER_HISTORICAL_ROOT":             p.EpochsPerHistoricalRoot,
		"EPOCHS_PER_HISTORICAL_VECTOR":           p.EpochsPerHistoricalVector,
		"EPOCHS_PER_SLASHINGS_VECTOR":            p.EpochsPerSlashingsVector,
		"HISTORICAL_ROOTS_LIMIT":                 p.HistoricalRootsLimit,
		"MAX_ATTESTATIONS":                       p.MaxAttestations,
		"MAX_ATTESTER_SLASHINGS":                 p.MaxAttesterSlashings,
		"MAX_COMMITTEES_PER_SLOT":                p.MaxCommitteesPerSlot,
		"MAX_DEPOSITS":                           p.MaxDeposits,
		"MAX_PROPOSER_SLASHINGS":                 p.MaxProposerSlashings,
		"MAX_VALIDATORS_PER_COMMITTEE":           p.MaxValidatorsPerCommittee,
		"MAX_VOLUNTARY_EXITS":                    p.MaxVoluntaryExits,
		"MIN_SEED_LOOKAHEAD":                     p.MinSeedLookahead,
		"SLOTS_PER_EPOCH":                        p.SlotsPerEpoch,
		"VALIDATOR_REGISTRY_LIMIT":               p.ValidatorRegistryLimit,
		"SYNC_COMMITTEE_SIZE":                    p.SyncCommitteeSize,
		"BYTES_PER_LOGS_BLOOM":                   p.BytesPerLogsBloom,
		"MAX_BYTES_PER_TRANSACTION":              p.MaxBytesPerTransaction,
		"MAX_EXTRA_DATA_BYTES":                   p.MaxExtraDataBytes,
		"MAX_TRANSACTIONS_PER_PAYLOAD":           p.MaxTransactionsPerPayload,
		"MAX_BLS_TO_EXECUTION_CHANGES":           p.MaxBlsToExecutionChanges,
		"MAX_WITHDRAWALS_PER_PAYLOAD":            p.MaxWithdrawalsPerPayload,
		"FIELD_ELEMENTS_PER_BLOB":                p.FieldElementsPerBlob,
		"MAX_BLOB_COMMITMENTS_PER_BLOCK":         p.MaxBlobCommitmentsPerBlock,
		"KZG_COMMITMENT_INCLUSION_PROOF_DEPTH":   p.KzgCommitmentInclusionProofDepth,
		"MAX_ATTESTATIONS_ELECTRA":               p.MaxAttestationsElectra,
		"MAX_ATTESTER_SLASHINGS_ELECTRA":         p.MaxAttesterSlashingsElectra,
		"MAX_CONSOLIDATION_REQUESTS_PER_PAYLOAD": p.MaxConsolidationRequestsPerPayload,
		"MAX_DEPOSIT_REQUESTS_PER_PAYLOAD":       p.MaxDepositRequestsPerPayload,
		"MAX_WITHDRAWAL_REQUESTS_PER_PAYLOAD":    p.MaxWithdrawalRequestsPerPayload,
		"PENDING_DEPOSITS_LIMIT":                 p.PendingDepositsLimit,
		"PENDING_CONSOLIDATIONS_LIMIT":           p.PendingConsolidationsLimit,
		"PENDING_PARTIAL_WITHDRAWALS_LIMIT":      p.PendingPartialWithdrawalsLimit,
		"FIELD_ELEMENTS_PER_CELL":                p.FieldElementsPerCell,
		"FIELD_ELEMENTS_PER_EXT_BLOB":            p.FieldElementsPerExtBlob,
		"KZG_COMMITMENTS_INCLUSION_PROOF_DEPTH":  p.KzgCommitmentsInclusionProofDepth,
		"NUMBER_OF_COLUMNS":                      p.NumberOfColumns,
		"MAX_ATTESTERS_PER_SLOT":                 p.MaxAttestersPerSlot,
		"MAX_CELL_PROOFS_PER_BLOCK":              p.MaxCellProofsPerBlock,
		"CELLS_PER_EXT_BLOB":                     p.CellsPerExtBlob,
		"BYTES_PER_BLOB":                         p.BytesPerBlob,
		"SYNC_COMMITTEE_BITS_BYTES":              p.SyncCommitteeBitsBytes,
		"COMMITTEE_BITS_BYTES":                   p.CommitteeBitsBytes,
		"ATTESTATION_BITS_MAX_BYTES":             p.AttestationBitsMaxBytes,
	}
}
