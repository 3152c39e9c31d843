package preset

// Tables for the three supported configurations. Values follow the
// consensus-specs preset files (mainnet, minimal) and the Gnosis Chain
// specs (https://github.com/gnosischain/specs).
//
// Key Gnosis differences from Mainnet:
//   - BASE_REWARD_FACTOR: 25 (Mainnet: 64)
//   - SLOTS_PER_EPOCH: 16 (Mainnet: 32)
//   - EPOCHS_PER_SYNC_COMMITTEE_PERIOD: 512 (Mainnet: 256)
//   - MAX_VALIDATORS_PER_WITHDRAWALS_SWEEP: 8192 (Mainnet: 16384)
//   - MAX_WITHDRAWALS_PER_PAYLOAD: 8 (Mainnet: 16)
//   - MAX_PENDING_PARTIALS_PER_WITHDRAWALS_SWEEP: 6 (Mainnet: 8)

// Mainnet is the production Ethereum configuration.
var Mainnet = build(Preset{
	Name: "mainnet",

	EpochsPerEth1VotingPeriod: 64,
	EpochsPerHistoricalRoot:   256,
	EpochsPerHistoricalVector: 65536,
	EpochsPerSlashingsVector:  8192,
	HistoricalRootsLimit:      16777216,
	MaxAttestations:           128,
	MaxAttesterSlashings:      2,
	MaxCommitteesPerSlot:      64,
	MaxDeposits:               16,
	MaxProposerSlashings:      16,
	MaxValidatorsPerCommittee: 2048,
	MaxVoluntaryExits:         16,
	MinSeedLookahead:          1,
	SlotsPerEpoch:             32,
	ValidatorRegistryLimit:    1099511627776,

	SyncCommitteeSize: 512,

	BytesPerLogsBloom:         256,
	MaxBytesPerTransaction:    1073741824,
	MaxExtraDataBytes:         32,
	MaxTransactionsPerPayload: 1048576,

	MaxBlsToExecutionChanges: 16,
	MaxWithdrawalsPerPayload: 16,

	FieldElementsPerBlob:             4096,
	MaxBlobCommitmentsPerBlock:       4096,
	KzgCommitmentInclusionProofDepth: 17,

	MaxAttestationsElectra:             8,
	MaxAttesterSlashingsElectra:        1,
	MaxConsolidationRequestsPerPayload: 2,
	MaxDepositRequestsPerPayload:       8192,
	MaxWithdrawalRequestsPerPayload:    16,
	PendingDepositsLimit:               134217728,
	PendingConsolidationsLimit:         262144,
	PendingPartialWithdrawalsLimit:     134217728,

	FieldElementsPerCell:              64,
	FieldElementsPerExtBlob:           8192,
	KzgCommitmentsInclusionProofDepth: 4,
	NumberOfColumns:                   128,

	BaseRewardFactor:                        64,
	EffectiveBalanceIncrement:               1_000_000_000,
	HysteresisDownwardMultiplier:            1,
	HysteresisQuotient:                      4,
	HysteresisUpwardMultiplier:              5,
	InactivityPenaltyQuotient:               1 << 26,
	MaxEffectiveBalance:                     32_000_000_000,
	MaxSeedLookahead:                        4,
	MinAttestationInclusionDelay:            1,
	MinDepositAmount:                        1_000_000_000,
	MinEpochsToInactivityPenalty:            4,
	MinSlashingPenaltyQuotient:              128,
	ProportionalSlashingMultiplier:          1,
	ProposerRewardQuotient:                  8,
	ShuffleRoundCount:                       90,
	TargetCommitteeSize:                     128,
	WhistleblowerRewardQuotient:             512,
	EpochsPerSyncCommitteePeriod:            256,
	InactivityPenaltyQuotientAltair:         3 << 24,
	MinSlashingPenaltyQuotientAltair:        64,
	MinSyncCommitteeParticipants:            1,
	ProportionalSlashingMultiplierAltair:    2,
	InactivityPenaltyQuotientBellatrix:      1 << 24,
	MinSlashingPenaltyQuotientBellatrix:     32,
	ProportionalSlashingMultiplierBellatrix: 3,
	MaxValidatorsPerWithdrawalsSweep:        16384,
	MaxEffectiveBalanceElectra:              2_048_000_000_000,
	MaxPendingPartialsPerWithdrawalsSweep:   8,
	MaxPendingDepositsPerEpoch:              16,
	MinActivationBalance:                    32_000_000_000,
	MinSlashingPenaltyQuotientElectra:       4096,
	WhistleblowerRewardQuotientElectra:      4096,
})

// Minimal is the small configuration used by spec tests and devnets.
var Minimal = build(Preset{
	Name: "minimal",

	EpochsPerEth1VotingPeriod: 4,
	EpochsPerHistoricalRoot:   8,
	EpochsPerHistoricalVector: 64,
	EpochsPerSlashingsVector:  64,
	HistoricalRootsLimit:      16777216,
	MaxAttestations:           128,
	MaxAttesterSlashings:      2,
	MaxCommitteesPerSlot:      4,
	MaxDeposits:               16,
	MaxProposerSlashings:      16,
	MaxValidatorsPerCommittee: 2048,
	MaxVoluntaryExits:         16,
	MinSeedLookahead:          1,
	SlotsPerEpoch:             8,
	ValidatorRegistryLimit:    1099511627776,

	SyncCommitteeSize: 32,

	BytesPerLogsBloom:         256,
	MaxBytesPerTransaction:    1073741824,
	MaxExtraDataBytes:         32,
	MaxTransactionsPerPayload: 1048576,

	MaxBlsToExecutionChanges: 16,
	MaxWithdrawalsPerPayload: 4,

	FieldElementsPerBlob:             4096,
	MaxBlobCommitmentsPerBlock:       32,
	KzgCommitmentInclusionProofDepth: 10,

	MaxAttestationsElectra:             8,
	MaxAttesterSlashingsElectra:        1,
	MaxConsolidationRequestsPerPayload: 2,
	MaxDepositRequestsPerPayload:       4,
	MaxWithdrawalRequestsPerPayload:    2,
	PendingDepositsLimit:               134217728,
	PendingConsolidationsLimit:         64,
	PendingPartialWithdrawalsLimit:     64,

	FieldElementsPerCell:              64,
	FieldElementsPerExtBlob:           8192,
	KzgCommitmentsInclusionProofDepth: 4,
	NumberOfColumns:                   128,

	BaseRewardFactor:                        64,
	EffectiveBalanceIncrement:               1_000_000_000,
	HysteresisDownwardMultiplier:            1,
	HysteresisQuotient:                      4,
	HysteresisUpwardMultiplier:              5,
	InactivityPenaltyQuotient:               1 << 25,
	MaxEffectiveBalance:                     32_000_000_000,
	MaxSeedLookahead:                        4,
	MinAttestationInclusionDelay:            1,
	MinDepositAmount:                        1_000_000_000,
	MinEpochsToInactivityPenalty:            4,
	MinSlashingPenaltyQuotient:              64,
	ProportionalSlashingMultiplier:          2,
	ProposerRewardQuotient:                  8,
	ShuffleRoundCount:                       10,
	TargetCommitteeSize:                     4,
	WhistleblowerRewardQuotient:             512,
	EpochsPerSyncCommitteePeriod:            8,
	InactivityPenaltyQuotientAltair:         3 << 24,
	MinSlashingPenaltyQuotientAltair:        64,
	MinSyncCommitteeParticipants:            1,
	ProportionalSlashingMultiplierAltair:    2,
	InactivityPenaltyQuotientBellatrix:      1 << 24,
	MinSlashingPenaltyQuotientBellatrix:     32,
	ProportionalSlashingMultiplierBellatrix: 3,
	MaxValidatorsPerWithdrawalsSweep:        16,
	MaxEffectiveBalanceElectra:              2_048_000_000_000,
	MaxPendingPartialsPerWithdrawalsSweep:   2,
	MaxPendingDepositsPerEpoch:              16,
	MinActivationBalance:                    32_000_000_000,
	MinSlashingPenaltyQuotientElectra:       4096,
	WhistleblowerRewardQuotientElectra:      4096,
})

// Gnosis is the Gnosis Chain configuration.
var Gnosis = build(Preset{
	Name: "gnosis",

	EpochsPerEth1VotingPeriod: 64,
	EpochsPerHistoricalRoot:   512,
	EpochsPerHistoricalVector: 65536,
	EpochsPerSlashingsVector:  8192,
	HistoricalRootsLimit:      16777216,
	MaxAttestations:           128,
	MaxAttesterSlashings:      2,
	MaxCommitteesPerSlot:      64,
	MaxDeposits:               16,
	MaxProposerSlashings:      16,
	MaxValidatorsPerCommittee: 2048,
	MaxVoluntaryExits:         16,
	MinSeedLookahead:          1,
	SlotsPerEpoch:             16,
	ValidatorRegistryLimit:    1099511627776,

	SyncCommitteeSize: 512,

	BytesPerLogsBloom:         256,
	MaxBytesPerTransaction:    1073741824,
	MaxExtraDataBytes:         32,
	MaxTransactionsPerPayload: 1048576,

	MaxBlsToExecutionChanges: 16,
	MaxWithdrawalsPerPayload: 8,

	FieldElementsPerBlob:             4096,
	MaxBlobCommitmentsPerBlock:       4096,
	KzgCommitmentInclusionProofDepth: 17,

	MaxAttestationsElectra:             8,
	MaxAttesterSlashingsElectra:        1,
	MaxConsolidationRequestsPerPayload: 2,
	MaxDepositRequestsPerPayload:       8192,
	MaxWithdrawalRequestsPerPayload:    16,
	PendingDepositsLimit:               134217728,
	PendingConsolidationsLimit:         262144,
	PendingPartialWithdrawalsLimit:     134217728,

	FieldElementsPerCell:              64,
	FieldElementsPerExtBlob:           8192,
	KzgCommitmentsInclusionProofDepth: 4,
	NumberOfColumns:                   128,

	BaseRewardFactor:                        25,
	EffectiveBalanceIncrement:               1_000_000_000,
	HysteresisDownwardMultiplier:            1,
	HysteresisQuotient:                      4,
	HysteresisUpwardMultiplier:              5,
	InactivityPenaltyQuotient:               1 << 26,
	MaxEffectiveBalance:                     32_000_000_000,
	MaxSeedLookahead:                        4,
	MinAttestationInclusionDelay:            1,
	MinDepositAmount:                        1_000_000_000,
	MinEpochsToInactivityPenalty:            4,
	MinSlashingPenaltyQuotient:              128,
	ProportionalSlashingMultiplier:          1,
	ProposerRewardQuotient:                  8,
	ShuffleRoundCount:                       90,
	TargetCommitteeSize:                     128,
	WhistleblowerRewardQuotient:             512,
	EpochsPerSyncCommitteePeriod:            512,
	InactivityPenaltyQuotientAltair:         3 << 24,
	MinSlashingPenaltyQuotientAltair:        64,
	MinSyncCommitteeParticipants:            1,
	ProportionalSlashingMultiplierAltair:    2,
	InactivityPenaltyQuotientBellatrix:      1 << 24,
	MinSlashingPenaltyQuotientBellatrix:     32,
	ProportionalSlashingMultiplierBellatrix: 3,
	MaxValidatorsPerWithdrawalsSweep:        8192,
	MaxEffectiveBalanceElectra:              2_048_000_000_000,
	MaxPendingPartialsPerWithdrawalsSweep:   6,
	MaxPendingDepositsPerEpoch:              16,
	MinActivationBalance:                    32_000_000_000,
	MinSlashingPenaltyQuotientElectra:       4096,
	WhistleblowerRewardQuotientElectra:      4096,
})
