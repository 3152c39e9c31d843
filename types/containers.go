package types

// Nested containers shared by the block shapes. Field order is the wire
// format; do not reorder.

// Checkpoint is an (epoch, root) finality reference.
type Checkpoint struct {
	Epoch Uint64 `json:"epoch"`
	Root  Root   `json:"root" ssz-size:"32"`
}

// Eth1Data is the block's view of the deposit contract.
type Eth1Data struct {
	DepositRoot  Root   `json:"deposit_root" ssz-size:"32"`
	DepositCount Uint64 `json:"deposit_count"`
	BlockHash    Root   `json:"block_hash" ssz-size:"32"`
}

// AttestationData identifies what an attestation votes for.
type AttestationData struct {
	Slot            Uint64      `json:"slot"`
	Index           Uint64      `json:"index"`
	BeaconBlockRoot Root        `json:"beacon_block_root" ssz-size:"32"`
	Source          *Checkpoint `json:"source"`
	Target          *Checkpoint `json:"target"`
}

// Attestation is the Electra on-chain attestation shape: aggregation
// bits span every committee of the slot, with the participating
// committees flagged in CommitteeBits.
type Attestation struct {
	AggregationBits Bitlist          `json:"aggregation_bits" ssz-max:"16385" dynssz-max:"ATTESTATION_BITS_MAX_BYTES"`
	Data            *AttestationData `json:"data"`
	Signature       Signature        `json:"signature" ssz-size:"96"`
	CommitteeBits   Bitvector        `json:"committee_bits" ssz-size:"8" dynssz-size:"COMMITTEE_BITS_BYTES"`
}

// IndexedAttestation lists the attesting validators explicitly. Used
// inside attester slashings.
type IndexedAttestation struct {
	AttestingIndices []Uint64         `json:"attesting_indices" ssz-max:"131072" dynssz-max:"MAX_ATTESTERS_PER_SLOT"`
	Data             *AttestationData `json:"data"`
	Signature        Signature        `json:"signature" ssz-size:"96"`
}

// AttesterSlashing carries two conflicting indexed attestations.
type AttesterSlashing struct {
	Attestation1 *IndexedAttestation `json:"attestation_1"`
	Attestation2 *IndexedAttestation `json:"attestation_2"`
}

// BeaconBlockHeader is the fixed-size header summary of a block.
type BeaconBlockHeader struct {
	Slot          Uint64 `json:"slot"`
	ProposerIndex Uint64 `json:"proposer_index"`
	ParentRoot    Root   `json:"parent_root" ssz-size:"32"`
	StateRoot     Root   `json:"state_root" ssz-size:"32"`
	BodyRoot      Root   `json:"body_root" ssz-size:"32"`
}

// SignedBeaconBlockHeader is a header with its proposer signature.
type SignedBeaconBlockHeader struct {
	Message   *BeaconBlockHeader `json:"message"`
	Signature Signature          `json:"signature" ssz-size:"96"`
}

// ProposerSlashing carries two conflicting signed headers from one
// proposer.
type ProposerSlashing struct {
	SignedHeader1 *SignedBeaconBlockHeader `json:"signed_header_1"`
	SignedHeader2 *SignedBeaconBlockHeader `json:"signed_header_2"`
}

// DepositData is the deposit contract payload.
type DepositData struct {
	Pubkey                Pubkey    `json:"pubkey" ssz-size:"48"`
	WithdrawalCredentials Root      `json:"withdrawal_credentials" ssz-size:"32"`
	Amount                Uint64    `json:"amount"`
	Signature             Signature `json:"signature" ssz-size:"96"`
}

// Deposit is a deposit with its Merkle proof against the deposit root.
// The proof has DEPOSIT_CONTRACT_TREE_DEPTH + 1 = 33 elements.
type Deposit struct {
	Proof [33]Root     `json:"proof" ssz-size:"33,32"`
	Data  *DepositData `json:"data"`
}

// VoluntaryExit is a validator's request to exit.
type VoluntaryExit struct {
	Epoch          Uint64 `json:"epoch"`
	ValidatorIndex Uint64 `json:"validator_index"`
}

// SignedVoluntaryExit is a voluntary exit with its signature.
type SignedVoluntaryExit struct {
	Message   *VoluntaryExit `json:"message"`
	Signature Signature      `json:"signature" ssz-size:"96"`
}

// SyncAggregate is the sync committee participation summary. The bit
// width follows the preset's SYNC_COMMITTEE_SIZE.
type SyncAggregate struct {
	SyncCommitteeBits      Bitvector `json:"sync_committee_bits" ssz-size:"64" dynssz-size:"SYNC_COMMITTEE_BITS_BYTES"`
	SyncCommitteeSignature Signature `json:"sync_committee_signature" ssz-size:"96"`
}

// BLSToExecutionChange rotates a validator's withdrawal credential to
// an execution address.
type BLSToExecutionChange struct {
	ValidatorIndex     Uint64  `json:"validator_index"`
	FromBlsPubkey      Pubkey  `json:"from_bls_pubkey" ssz-size:"48"`
	ToExecutionAddress Address `json:"to_execution_address" ssz-size:"20"`
}

// SignedBLSToExecutionChange is a credential change with its signature.
type SignedBLSToExecutionChange struct {
	Message   *BLSToExecutionChange `json:"message"`
	Signature Signature             `json:"signature" ssz-size:"96"`
}

// Withdrawal is a single validator withdrawal in the execution payload.
type Withdrawal struct {
	Index          Uint64  `json:"index"`
	ValidatorIndex Uint64  `json:"validator_index"`
	Address        Address `json:"address" ssz-size:"20"`
	Amount         Uint64  `json:"amount"`
}

// DepositRequest is an Electra execution layer deposit request.
type DepositRequest struct {
	Pubkey                Pubkey    `json:"pubkey" ssz-size:"48"`
	WithdrawalCredentials Root      `json:"withdrawal_credentials" ssz-size:"32"`
	Amount                Uint64    `json:"amount"`
	Signature             Signature `json:"signature" ssz-size:"96"`
	Index                 Uint64    `json:"index"`
}

// WithdrawalRequest is an Electra execution layer withdrawal request.
type WithdrawalRequest struct {
	SourceAddress   Address `json:"source_address" ssz-size:"20"`
	ValidatorPubkey Pubkey  `json:"validator_pubkey" ssz-size:"48"`
	Amount          Uint64  `json:"amount"`
}

// ConsolidationRequest is an Electra validator consolidation request.
type ConsolidationRequest struct {
	SourceAddress Address `json:"source_address" ssz-size:"20"`
	SourcePubkey  Pubkey  `json:"source_pubkey" ssz-size:"48"`
	TargetPubkey  Pubkey  `json:"target_pubkey" ssz-size:"48"`
}

// ExecutionRequests bundles the Electra execution layer requests.
type ExecutionRequests struct {
	Deposits       []*DepositRequest       `json:"deposits" ssz-max:"8192" dynssz-max:"MAX_DEPOSIT_REQUESTS_PER_PAYLOAD"`
	Withdrawals    []*WithdrawalRequest    `json:"withdrawals" ssz-max:"16" dynssz-max:"MAX_WITHDRAWAL_REQUESTS_PER_PAYLOAD"`
	Consolidations []*ConsolidationRequest `json:"consolidations" ssz-max:"2" dynssz-max:"MAX_CONSOLIDATION_REQUESTS_PER_PAYLOAD"`
}
