package types

// BlindedBeaconBlock is a beacon block whose body replaces the bulk
// execution payload with its header commitment. Given equivalent
// content it hashes to the same root as the full block.
type BlindedBeaconBlock struct {
	Slot          Uint64                  `json:"slot"`
	ProposerIndex Uint64                  `json:"proposer_index"`
	ParentRoot    Root                    `json:"parent_root" ssz-size:"32"`
	StateRoot     Root                    `json:"state_root" ssz-size:"32"`
	Body          *BlindedBeaconBlockBody `json:"body"`
}

// BlindedBeaconBlockBody mirrors BeaconBlockBody with the payload
// header in place of the payload.
type BlindedBeaconBlockBody struct {
	RandaoReveal           Signature                     `json:"randao_reveal" ssz-size:"96"`
	Eth1Data               *Eth1Data                     `json:"eth1_data"`
	Graffiti               Root                          `json:"graffiti" ssz-size:"32"`
	ProposerSlashings      []*ProposerSlashing           `json:"proposer_slashings" ssz-max:"16"`
	AttesterSlashings      []*AttesterSlashing           `json:"attester_slashings" ssz-max:"1" dynssz-max:"MAX_ATTESTER_SLASHINGS_ELECTRA"`
	Attestations           []*Attestation                `json:"attestations" ssz-max:"8" dynssz-max:"MAX_ATTESTATIONS_ELECTRA"`
	Deposits               []*Deposit                    `json:"deposits" ssz-max:"16"`
	VoluntaryExits         []*SignedVoluntaryExit        `json:"voluntary_exits" ssz-max:"16"`
	SyncAggregate          *SyncAggregate                `json:"sync_aggregate"`
	ExecutionPayloadHeader *ExecutionPayloadHeader       `json:"execution_payload_header"`
	BlsToExecutionChanges  []*SignedBLSToExecutionChange `json:"bls_to_execution_changes" ssz-max:"16"`
	BlobKzgCommitments     []KzgCommitment               `json:"blob_kzg_commitments" ssz-max:"4096" ssz-size:"?,48" dynssz-max:"MAX_BLOB_COMMITMENTS_PER_BLOCK"`
	ExecutionRequests      *ExecutionRequests            `json:"execution_requests"`
}

// SignedBlindedBeaconBlock pairs a blinded block with its signature.
type SignedBlindedBeaconBlock struct {
	Message   *BlindedBeaconBlock `json:"message"`
	Signature Signature           `json:"signature" ssz-size:"96"`
}
