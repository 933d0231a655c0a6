package verification

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/convert"
	"github.com/nspcc-dev/neo-go/pkg/interop/iterator"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/ledger"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/greenproof/greenproof-contract/common"
	"github.com/greenproof/greenproof-contract/contracts/verification/satsource"
	"github.com/greenproof/greenproof-contract/contracts/verification/verificationconst"
)

type (
	// Verification groups data of a single proof record attested by an
	// oracle for a parcel and period. Only the Status field may change
	// after creation.
	Verification struct {
		// Parcel the proof attests to.
		ParcelID int

		// Reporting period the proof attests to.
		Period int

		// Oracle account that submitted the proof.
		Oracle interop.Hash160

		// Digest of the satellite imagery proof.
		ProofHash interop.Hash256

		// Normalized vegetation score, [0, 10000].
		NDVIScore int

		// Proof confidence percentage, [0, 100].
		Confidence int

		// Imagery source the score was derived from.
		Source satsource.Type

		// Digest binding the proof to the parcel location.
		LocationHash interop.Hash256

		// Block height at which the proof was accepted.
		SubmittedAt int

		// Whether the proof is currently considered valid. Flipped by
		// admin override or dispute resolution.
		Status bool
	}

	// HistoryEntry is an append-only audit record of a status-changing
	// admin action over a verification.
	HistoryEntry struct {
		// Monotonic sequence id of the entry.
		ID int

		// Parcel of the audited verification.
		ParcelID int

		// Period of the audited verification.
		Period int

		// Verification status at the time of recording.
		Status bool

		// Block height at which the entry was recorded.
		RecordedAt int

		// Account that recorded the entry.
		RecordedBy interop.Hash160
	}
)

const (
	recordPrefix  = 'r'
	historyPrefix = 'h'

	historyCounterKey  = 'i'
	oracleContractKey  = 'o'
	tokenContractKey   = 't'
	disputeContractKey = 'd'
	feeCollectorKey    = 'f'
	submissionFeeKey   = 'g'
)

// nolint:deadcode,unused
func _deploy(data any, isUpdate bool) {
	ctx := storage.GetContext()

	if isUpdate {
		args := data.([]any)
		version := args[len(args)-1].(int)

		common.CheckVersion(version)
		return
	}

	var args = data.(struct {
		admin         interop.Hash160
		oracle        interop.Hash160
		token         interop.Hash160
		dispute       interop.Hash160
		feeCollector  interop.Hash160
		submissionFee int
	})

	if len(args.oracle) != interop.Hash160Len {
		panic("invalid oracle contract")
	}
	if len(args.token) != interop.Hash160Len {
		panic("invalid token contract")
	}
	if len(args.dispute) != interop.Hash160Len {
		panic("invalid dispute contract")
	}
	if args.submissionFee < 0 {
		panic("invalid submission fee")
	}

	common.SetAdmin(ctx, args.admin)
	storage.Put(ctx, oracleContractKey, args.oracle)
	storage.Put(ctx, tokenContractKey, args.token)
	storage.Put(ctx, disputeContractKey, args.dispute)
	storage.Put(ctx, submissionFeeKey, args.submissionFee)
	storage.Put(ctx, historyCounterKey, 0)

	if len(args.feeCollector) == interop.Hash160Len {
		storage.Put(ctx, feeCollectorKey, args.feeCollector)
	}

	runtime.Log("verification contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by committee.
func Update(script []byte, manifest []byte, data any) {
	if !common.HasUpdateAccess() {
		panic("only committee can update contract")
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, script, manifest, common.AppendVersion(data))
	runtime.Log("verification contract updated")
}

// SubmitProof method stores a verification record for the given parcel and
// period. Call transaction MUST be signed by the oracle account and the
// account must be an active oracle in the oracle registry.
//
// The proof is rejected once the recency window of the attested period has
// elapsed, and at most one record per (parcel, period) key is ever accepted.
// If a fee collector was configured at deploy, the configured submission fee
// is charged from the oracle; a failed fee transfer aborts the submission.
//
// It produces ProofSubmitted notification.
func SubmitProof(oracle interop.Hash160, parcelID, period int, proofHash interop.Hash256, ndviScore, confidence int, source satsource.Type, locationHash interop.Hash256) {
	ctx := storage.GetContext()

	common.CheckWitness(oracle)

	oracleContract := storage.Get(ctx, oracleContractKey).(interop.Hash160)
	if !contract.Call(oracleContract, "isActive", contract.ReadOnly, oracle).(bool) {
		panic("not an active oracle")
	}

	if parcelID <= 0 {
		panic("invalid parcel id")
	}
	if period <= 0 {
		panic("invalid period")
	}
	if len(proofHash) != interop.Hash256Len {
		panic("invalid proof hash length")
	}
	if len(locationHash) != interop.Hash256Len {
		panic("invalid location hash")
	}
	if ndviScore < 0 || ndviScore > verificationconst.MaxNDVIScore {
		panic("invalid ndvi score")
	}
	if confidence < 0 || confidence > verificationconst.MaxConfidence {
		panic("invalid confidence")
	}
	if !satsource.IsValid(source) {
		panic("invalid satellite source")
	}

	height := ledger.CurrentIndex()
	if period <= height-verificationconst.RecencyWindow {
		panic("verification period expired")
	}

	key := recordKey(parcelID, period)
	if storage.Get(ctx, key) != nil {
		panic("verification already exists")
	}

	chargeSubmissionFee(ctx, oracle, parcelID, period)

	v := Verification{
		ParcelID:     parcelID,
		Period:       period,
		Oracle:       oracle,
		ProofHash:    proofHash,
		NDVIScore:    ndviScore,
		Confidence:   confidence,
		Source:       source,
		LocationHash: locationHash,
		SubmittedAt:  height,
		Status:       true,
	}

	common.SetSerialized(ctx, key, v)

	contract.Call(oracleContract, "incrementSubmissions", contract.All, oracle)

	runtime.Notify("ProofSubmitted", parcelID, period, ndviScore, oracle)
}

// GetVerification method returns the verification record of the given parcel
// and period. It panics if there is no such record.
func GetVerification(parcelID, period int) Verification {
	ctx := storage.GetReadOnlyContext()
	return getVerification(ctx, parcelID, period)
}

// Exists method returns true if a verification record exists for the given
// parcel and period.
func Exists(parcelID, period int) bool {
	ctx := storage.GetReadOnlyContext()
	return storage.Get(ctx, recordKey(parcelID, period)) != nil
}

// IsApproved method returns true if a verification record exists for the
// given parcel and period and its status has not been invalidated.
func IsApproved(parcelID, period int) bool {
	ctx := storage.GetReadOnlyContext()

	data := storage.Get(ctx, recordKey(parcelID, period))
	if data == nil {
		return false
	}

	return std.Deserialize(data.([]byte)).(Verification).Status
}

// UpdateVerificationStatus method overrides the validity of the stored
// verification record. It can be invoked by the contract administrator or by
// the dispute contract when a dispute is resolved against the proof.
//
// It produces VerificationStatusUpdated notification.
func UpdateVerificationStatus(parcelID, period int, status bool) {
	ctx := storage.GetContext()

	dispute := storage.Get(ctx, disputeContractKey).(interop.Hash160)
	if !runtime.GetCallingScriptHash().Equals(dispute) {
		common.CheckAdminWitness(ctx)
	}

	v := getVerification(ctx, parcelID, period)
	v.Status = status

	common.SetSerialized(ctx, recordKey(parcelID, period), v)

	runtime.Notify("VerificationStatusUpdated", parcelID, period, status)
}

// RecordVerificationHistory method appends an audit entry capturing the
// current status of the verification record and returns the new sequence id.
// It can be invoked only by the contract administrator. Entries are never
// mutated or deleted.
//
// It produces HistoryRecorded notification.
func RecordVerificationHistory(parcelID, period int) int {
	ctx := storage.GetContext()

	common.CheckAdminWitness(ctx)

	v := getVerification(ctx, parcelID, period)

	id := storage.Get(ctx, historyCounterKey).(int) + 1

	entry := HistoryEntry{
		ID:         id,
		ParcelID:   parcelID,
		Period:     period,
		Status:     v.Status,
		RecordedAt: ledger.CurrentIndex(),
		RecordedBy: common.Admin(ctx),
	}

	common.SetSerialized(ctx, historyKey(id), entry)
	storage.Put(ctx, historyCounterKey, id)

	runtime.Notify("HistoryRecorded", id, parcelID, period, v.Status)

	return id
}

// GetHistory method returns the audit entry with the given sequence id. It
// panics if there is no such entry.
func GetHistory(id int) HistoryEntry {
	ctx := storage.GetReadOnlyContext()

	data := storage.Get(ctx, historyKey(id))
	if data == nil {
		panic("history entry not found")
	}

	return std.Deserialize(data.([]byte)).(HistoryEntry)
}

// HistoryLength method returns the sequence id of the latest audit entry.
func HistoryLength() int {
	ctx := storage.GetReadOnlyContext()
	return storage.Get(ctx, historyCounterKey).(int)
}

// ListByParcel method returns byte-encoded periods of every verification
// record stored for the given parcel.
func ListByParcel(parcelID int) [][]byte {
	ctx := storage.GetReadOnlyContext()

	prefix := append([]byte{recordPrefix}, common.FixedIntKey(parcelID)...)
	it := storage.Find(ctx, prefix, storage.KeysOnly|storage.RemovePrefix)

	var result [][]byte

	for iterator.Next(it) {
		key := iterator.Value(it).([]byte) // iterator MUST BE `storage.KeysOnly`
		result = append(result, key)
	}

	return result
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

// nolint:unused
func chargeSubmissionFee(ctx storage.Context, oracle interop.Hash160, parcelID, period int) {
	collector := storage.Get(ctx, feeCollectorKey)
	if collector == nil {
		return
	}

	fee := storage.Get(ctx, submissionFeeKey).(int)
	if fee == 0 {
		return
	}

	tokenContract := storage.Get(ctx, tokenContractKey).(interop.Hash160)
	details := common.FeeTransferDetails(parcelID, period)

	ok := contract.Call(tokenContract, "transfer", contract.All,
		oracle, collector.(interop.Hash160), fee, details).(bool)
	if !ok {
		panic("fee payment failed")
	}
}

func getVerification(ctx storage.Context, parcelID, period int) Verification {
	data := storage.Get(ctx, recordKey(parcelID, period))
	if data == nil {
		panic("verification not found")
	}

	return std.Deserialize(data.([]byte)).(Verification)
}

func recordKey(parcelID, period int) []byte {
	key := append([]byte{recordPrefix}, common.FixedIntKey(parcelID)...)
	return append(key, common.FixedIntKey(period)...)
}

func historyKey(id int) []byte {
	return append([]byte{historyPrefix}, convert.ToBytes(id)...)
}
