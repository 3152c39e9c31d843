package preset

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// specKeys fixes the key order for YAML export, grouped by the fork
// that introduced each constant, matching the upstream preset files.
var specKeys = []string{
	"MAX_COMMITTEES_PER_SLOT",
	"MAX_VALIDATORS_PER_COMMITTEE",
	"SLOTS_PER_EPOCH",
	"EPOCHS_PER_ETH1_VOTING_PERIOD",
	"EPOCHS_PER_HISTORICAL_ROOT",
	"EPOCHS_PER_HISTORICAL_VECTOR",
	"EPOCHS_PER_SLASHINGS_VECTOR",
	"HISTORICAL_ROOTS_LIMIT",
	"VALIDATOR_REGISTRY_LIMIT",
	"MAX_PROPOSER_SLASHINGS",
	"MAX_ATTESTER_SLASHINGS",
	"MAX_ATTESTATIONS",
	"MAX_DEPOSITS",
	"MAX_VOLUNTARY_EXITS",
	"MIN_SEED_LOOKAHEAD",
	"SYNC_COMMITTEE_SIZE",
	"BYTES_PER_LOGS_BLOOM",
	"MAX_BYTES_PER_TRANSACTION",
	"MAX_EXTRA_DATA_BYTES",
	"MAX_TRANSACTIONS_PER_PAYLOAD",
	"MAX_BLS_TO_EXECUTION_CHANGES",
	"MAX_WITHDRAWALS_PER_PAYLOAD",
	"FIELD_ELEMENTS_PER_BLOB",
	"MAX_BLOB_COMMITMENTS_PER_BLOCK",
	"KZG_COMMITMENT_INCLUSION_PROOF_DEPTH",
	"MAX_ATTESTATIONS_ELECTRA",
	"MAX_ATTESTER_SLASHINGS_ELECTRA",
	"MAX_CONSOLIDATION_REQUESTS_PER_PAYLOAD",
	"MAX_DEPOSIT_REQUESTS_PER_PAYLOAD",
	"MAX_WITHDRAWAL_REQUESTS_PER_PAYLOAD",
	"PENDING_DEPOSITS_LIMIT",
	"PENDING_CONSOLIDATIONS_LIMIT",
	"PENDING_PARTIAL_WITHDRAWALS_LIMIT",
	"FIELD_ELEMENTS_PER_CELL",
	"FIELD_ELEMENTS_PER_EXT_BLOB",
	"KZG_COMMITMENTS_INCLUSION_PROOF_DEPTH",
	"NUMBER_OF_COLUMNS",
	"MAX_ATTESTERS_PER_SLOT",
	"MAX_CELL_PROOFS_PER_BLOCK",
	"CELLS_PER_EXT_BLOB",
	"BYTES_PER_BLOB",
	"SYNC_COMMITTEE_BITS_BYTES",
	"COMMITTEE_BITS_BYTES",
	"ATTESTATION_BITS_MAX_BYTES",
}

// MarshalYAML emits the capacity table in the flat UPPER_SNAKE_CASE
// shape used by the consensus-specs preset files.
func (p *Preset) MarshalYAML() (any, error) {
	specs := p.Specs()
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, key := range specKeys {
		v, ok := specs[key]
		if !ok {
			return nil, fmt.Errorf("preset %s: missing spec key %s", p.Name, key)
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: key},
			&yaml.Node{Kind: yaml.ScalarNode, Value: fmt.Sprintf("%d", v)},
		)
	}
	return node, nil
}
