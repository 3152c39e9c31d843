package types

// Deep copies for every container. Signed wrappers own a copy of the
// message they wrap, so signing never aliases the unsigned original.

func copyBytes[T ~[]byte](b T) T {
	if b == nil {
		return nil
	}
	out := make(T, len(b))
	copy(out, b)
	return out
}

func copySlice[T interface{ Copy() T }](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	for i, v := range in {
		out[i] = v.Copy()
	}
	return out
}

// Copy returns a deep copy of the checkpoint.
func (c *Checkpoint) Copy() *Checkpoint {
	if c == nil {
		return nil
	}
	cp := *c
	return &cp
}

func (e *Eth1Data) Copy() *Eth1Data {
	if e == nil {
		return nil
	}
	cp := *e
	return &cp
}

func (a *AttestationData) Copy() *AttestationData {
	if a == nil {
		return nil
	}
	return &AttestationData{
		Slot:            a.Slot,
		Index:           a.Index,
		BeaconBlockRoot: a.BeaconBlockRoot,
		Source:          a.Source.Copy(),
		Target:          a.Target.Copy(),
	}
}

func (a *Attestation) Copy() *Attestation {
	if a == nil {
		return nil
	}
	return &Attestation{
		AggregationBits: copyBytes(a.AggregationBits),
		Data:            a.Data.Copy(),
		Signature:       a.Signature,
		CommitteeBits:   copyBytes(a.CommitteeBits),
	}
}

func (a *IndexedAttestation) Copy() *IndexedAttestation {
	if a == nil {
		return nil
	}
	out := &IndexedAttestation{
		Data:      a.Data.Copy(),
		Signature: a.Signature,
	}
	if a.AttestingIndices != nil {
		out.AttestingIndices = make([]Uint64, len(a.AttestingIndices))
		copy(out.AttestingIndices, a.AttestingIndices)
	}
	return out
}

func (a *AttesterSlashing) Copy() *AttesterSlashing {
	if a == nil {
		return nil
	}
	return &AttesterSlashing{
		Attestation1: a.Attestation1.Copy(),
		Attestation2: a.Attestation2.Copy(),
	}
}

func (h *BeaconBlockHeader) Copy() *BeaconBlockHeader {
	if h == nil {
		return nil
	}
	cp := *h
	return &cp
}

func (s *SignedBeaconBlockHeader) Copy() *SignedBeaconBlockHeader {
	if s == nil {
		return nil
	}
	return &SignedBeaconBlockHeader{Message: s.Message.Copy(), Signature: s.Signature}
}

func (p *ProposerSlashing) Copy() *ProposerSlashing {
	if p == nil {
		return nil
	}
	return &ProposerSlashing{
		SignedHeader1: p.SignedHeader1.Copy(),
		SignedHeader2: p.SignedHeader2.Copy(),
	}
}

func (d *DepositData) Copy() *DepositData {
	if d == nil {
		return nil
	}
	cp := *d
	return &cp
}

func (d *Deposit) Copy() *Deposit {
	if d == nil {
		return nil
	}
	return &Deposit{Proof: d.Proof, Data: d.Data.Copy()}
}

func (v *VoluntaryExit) Copy() *VoluntaryExit {
	if v == nil {
		return nil
	}
	cp := *v
	return &cp
}

func (s *SignedVoluntaryExit) Copy() *SignedVoluntaryExit {
	if s == nil {
		return nil
	}
	return &SignedVoluntaryExit{Message: s.Message.Copy(), Signature: s.Signature}
}

func (s *SyncAggregate) Copy() *SyncAggregate {
	if s == nil {
		return nil
	}
	return &SyncAggregate{
		SyncCommitteeBits:      copyBytes(s.SyncCommitteeBits),
		SyncCommitteeSignature: s.SyncCommitteeSignature,
	}
}

func (b *BLSToExecutionChange) Copy() *BLSToExecutionChange {
	if b == nil {
		return nil
	}
	cp := *b
	return &cp
}

func (s *SignedBLSToExecutionChange) Copy() *SignedBLSToExecutionChange {
	if s == nil {
		return nil
	}
	return &SignedBLSToExecutionChange{Message: s.Message.Copy(), Signature: s.Signature}
}

func (w *Withdrawal) Copy() *Withdrawal {
	if w == nil {
		return nil
	}
	cp := *w
	return &cp
}

func (d *DepositRequest) Copy() *DepositRequest {
	if d == nil {
		return nil
	}
	cp := *d
	return &cp
}

func (w *WithdrawalRequest) Copy() *WithdrawalRequest {
	if w == nil {
		return nil
	}
	cp := *w
	return &cp
}

func (c *ConsolidationRequest) Copy() *ConsolidationRequest {
	if c == nil {
		return nil
	}
	cp := *c
	return &cp
}

func (e *ExecutionRequests) Copy() *ExecutionRequests {
	if e == nil {
		return nil
	}
	return &ExecutionRequests{
		Deposits:       copySlice(e.Deposits),
		Withdrawals:    copySlice(e.Withdrawals),
		Consolidations: copySlice(e.Consolidations),
	}
}

func (p *ExecutionPayload) Copy() *ExecutionPayload {
	if p == nil {
		return nil
	}
	cp := *p
	cp.ExtraData = copyBytes(p.ExtraData)
	if p.Transactions != nil {
		cp.Transactions = make([]Transaction, len(p.Transactions))
		for i, tx := range p.Transactions {
			cp.Transactions[i] = copyBytes(tx)
		}
	}
	cp.Withdrawals = copySlice(p.Withdrawals)
	return &cp
}

func (h *ExecutionPayloadHeader) Copy() *ExecutionPayloadHeader {
	if h == nil {
		return nil
	}
	cp := *h
	cp.ExtraData = copyBytes(h.ExtraData)
	return &cp
}

func (b *BeaconBlockBody) Copy() *BeaconBlockBody {
	if b == nil {
		return nil
	}
	out := &BeaconBlockBody{
		RandaoReveal:          b.RandaoReveal,
		Eth1Data:              b.Eth1Data.Copy(),
		Graffiti:              b.Graffiti,
		ProposerSlashings:     copySlice(b.ProposerSlashings),
		AttesterSlashings:     copySlice(b.AttesterSlashings),
		Attestations:          copySlice(b.Attestations),
		Deposits:              copySlice(b.Deposits),
		VoluntaryExits:        copySlice(b.VoluntaryExits),
		SyncAggregate:         b.SyncAggregate.Copy(),
		ExecutionPayload:      b.ExecutionPayload.Copy(),
		BlsToExecutionChanges: copySlice(b.BlsToExecutionChanges),
		ExecutionRequests:     b.ExecutionRequests.Copy(),
	}
	if b.BlobKzgCommitments != nil {
		out.BlobKzgCommitments = make([]KzgCommitment, len(b.BlobKzgCommitments))
		copy(out.BlobKzgCommitments, b.BlobKzgCommitments)
	}
	return out
}

func (b *BeaconBlock) Copy() *BeaconBlock {
	if b == nil {
		return nil
	}
	return &BeaconBlock{
		Slot:          b.Slot,
		ProposerIndex: b.ProposerIndex,
		ParentRoot:    b.ParentRoot,
		StateRoot:     b.StateRoot,
		Body:          b.Body.Copy(),
	}
}

func (b *BlindedBeaconBlockBody) Copy() *BlindedBeaconBlockBody {
	if b == nil {
		return nil
	}
	out := &BlindedBeaconBlockBody{
		RandaoReveal:           b.RandaoReveal,
		Eth1Data:               b.Eth1Data.Copy(),
		Graffiti:               b.Graffiti,
		ProposerSlashings:      copySlice(b.ProposerSlashings),
		AttesterSlashings:      copySlice(b.AttesterSlashings),
		Attestations:           copySlice(b.Attestations),
		Deposits:               copySlice(b.Deposits),
		VoluntaryExits:         copySlice(b.VoluntaryExits),
		SyncAggregate:          b.SyncAggregate.Copy(),
		ExecutionPayloadHeader: b.ExecutionPayloadHeader.Copy(),
		BlsToExecutionChanges:  copySlice(b.BlsToExecutionChanges),
		ExecutionRequests:      b.ExecutionRequests.Copy(),
	}
	if b.BlobKzgCommitments != nil {
		out.BlobKzgCommitments = make([]KzgCommitment, len(b.BlobKzgCommitments))
		copy(out.BlobKzgCommitments, b.BlobKzgCommitments)
	}
	return out
}

func (b *BlindedBeaconBlock) Copy() *BlindedBeaconBlock {
	if b == nil {
		return nil
	}
	return &BlindedBeaconBlock{
		Slot:          b.Slot,
		ProposerIndex: b.ProposerIndex,
		ParentRoot:    b.ParentRoot,
		StateRoot:     b.StateRoot,
		Body:          b.Body.Copy(),
	}
}

func (s *SignedBeaconBlock) Copy() *SignedBeaconBlock {
	if s == nil {
		return nil
	}
	return &SignedBeaconBlock{Message: s.Message.Copy(), Signature: s.Signature}
}

func (s *SignedBlindedBeaconBlock) Copy() *SignedBlindedBeaconBlock {
	if s == nil {
		return nil
	}
	return &SignedBlindedBeaconBlock{Message: s.Message.Copy(), Signature: s.Signature}
}

func copyKzgProofs(in []KzgProof) []KzgProof {
	if in == nil {
		return nil
	}
	out := make([]KzgProof, len(in))
	copy(out, in)
	return out
}

func copyBlobs(in []Blob) []Blob {
	if in == nil {
		return nil
	}
	out := make([]Blob, len(in))
	for i, b := range in {
		out[i] = copyBytes(b)
	}
	return out
}

func (c *BeaconBlockContents) Copy() *BeaconBlockContents {
	if c == nil {
		return nil
	}
	return &BeaconBlockContents{
		Block:     c.Block.Copy(),
		KzgProofs: copyKzgProofs(c.KzgProofs),
		Blobs:     copyBlobs(c.Blobs),
	}
}

func (c *SignedBeaconBlockContents) Copy() *SignedBeaconBlockContents {
	if c == nil {
		return nil
	}
	return &SignedBeaconBlockContents{
		SignedBlock: c.SignedBlock.Copy(),
		KzgProofs:   copyKzgProofs(c.KzgProofs),
		Blobs:       copyBlobs(c.Blobs),
	}
}
