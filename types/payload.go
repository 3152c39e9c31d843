package types

// ExecutionPayload is the full execution layer payload carried by a
// beacon block body (Deneb layout, unchanged in Electra).
type ExecutionPayload struct {
	ParentHash    Root          `json:"parent_hash" ssz-size:"32"`
	FeeRecipient  Address       `json:"fee_recipient" ssz-size:"20"`
	StateRoot     Root          `json:"state_root" ssz-size:"32"`
	ReceiptsRoot  Root          `json:"receipts_root" ssz-size:"32"`
	LogsBloom     LogsBloom     `json:"logs_bloom" ssz-size:"256"`
	PrevRandao    Root          `json:"prev_randao" ssz-size:"32"`
	BlockNumber   Uint64        `json:"block_number"`
	GasLimit      Uint64        `json:"gas_limit"`
	GasUsed       Uint64        `json:"gas_used"`
	Timestamp     Uint64        `json:"timestamp"`
	ExtraData     ExtraData     `json:"extra_data" ssz-max:"32"`
	BaseFeePerGas Uint256       `json:"base_fee_per_gas" ssz-size:"32"`
	BlockHash     Root          `json:"block_hash" ssz-size:"32"`
	Transactions  []Transaction `json:"transactions" ssz-max:"1048576,1073741824"`
	Withdrawals   []*Withdrawal `json:"withdrawals" ssz-max:"16" dynssz-max:"MAX_WITHDRAWALS_PER_PAYLOAD"`
	BlobGasUsed   Uint64        `json:"blob_gas_used"`
	ExcessBlobGas Uint64        `json:"excess_blob_gas"`
}

// ExecutionPayloadHeader replaces the bulk payload data in a blinded
// block with commitments: transactions and withdrawals collapse to
// their hash tree roots.
type ExecutionPayloadHeader struct {
	ParentHash       Root      `json:"parent_hash" ssz-size:"32"`
	FeeRecipient     Address   `json:"fee_recipient" ssz-size:"20"`
	StateRoot        Root      `json:"state_root" ssz-size:"32"`
	ReceiptsRoot     Root      `json:"receipts_root" ssz-size:"32"`
	LogsBloom        LogsBloom `json:"logs_bloom" ssz-size:"256"`
	PrevRandao       Root      `json:"prev_randao" ssz-size:"32"`
	BlockNumber      Uint64    `json:"block_number"`
	GasLimit         Uint64    `json:"gas_limit"`
	GasUsed          Uint64    `json:"gas_used"`
	Timestamp        Uint64    `json:"timestamp"`
	ExtraData        ExtraData `json:"extra_data" ssz-max:"32"`
	BaseFeePerGas    Uint256   `json:"base_fee_per_gas" ssz-size:"32"`
	BlockHash        Root      `json:"block_hash" ssz-size:"32"`
	TransactionsRoot Root      `json:"transactions_root" ssz-size:"32"`
	WithdrawalsRoot  Root      `json:"withdrawals_root" ssz-size:"32"`
	BlobGasUsed      Uint64    `json:"blob_gas_used"`
	ExcessBlobGas    Uint64    `json:"excess_blob_gas"`
}
