package dispute

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/iterator"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/ledger"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/greenproof/greenproof-contract/common"
	"github.com/greenproof/greenproof-contract/contracts/dispute/disputeconst"
)

// Dispute groups data of a single staked challenge against a verification
// record. A dispute is mutated exactly once, by its resolution, and is
// terminal afterwards.
type Dispute struct {
	// Parcel of the challenged verification.
	ParcelID int

	// Period of the challenged verification.
	Period int

	// Account that raised the challenge.
	Challenger interop.Hash160

	// Escrowed stake amount.
	Stake int

	// Block height at which the dispute was raised.
	RaisedAt int

	// Whether the dispute has been resolved.
	Resolved bool

	// True if the challenge was upheld and the proof invalidated.
	Winner bool
}

const (
	disputePrefix = 'd'

	verificationContractKey = 'v'
	tokenContractKey        = 't'
)

var disputeTag = []byte("dispute")

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
		admin        interop.Hash160
		verification interop.Hash160
		token        interop.Hash160
	})

	if len(args.verification) != interop.Hash160Len {
		panic("invalid verification contract")
	}
	if len(args.token) != interop.Hash160Len {
		panic("invalid token contract")
	}

	common.SetAdmin(ctx, args.admin)
	storage.Put(ctx, verificationContractKey, args.verification)
	storage.Put(ctx, tokenContractKey, args.token)

	runtime.Log("dispute contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by committee.
func Update(script []byte, manifest []byte, data any) {
	if !common.HasUpdateAccess() {
		panic("only committee can update contract")
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, script, manifest, common.AppendVersion(data))
	runtime.Log("dispute contract updated")
}

// DisputeID method derives the deterministic dispute identifier of the given
// parcel and period.
func DisputeID(parcelID, period int) []byte {
	return common.CompositeID(disputeTag, [][]byte{
		common.FixedIntKey(parcelID),
		common.FixedIntKey(period),
	})
}

// RaiseDispute method challenges the verification record of the given parcel
// and period and returns the dispute id. Call transaction MUST be signed by
// the challenger, whose stake is escrowed to the dispute treasury; a failed
// escrow transfer aborts the challenge. At most one dispute per verification
// is ever created.
//
// It produces DisputeRaised notification.
func RaiseDispute(challenger interop.Hash160, parcelID, period int) []byte {
	ctx := storage.GetContext()

	common.CheckOwnerWitness(challenger)

	verificationContract := storage.Get(ctx, verificationContractKey).(interop.Hash160)
	if !contract.Call(verificationContract, "exists", contract.ReadOnly, parcelID, period).(bool) {
		panic("verification not found")
	}

	id := DisputeID(parcelID, period)

	key := disputeKey(id)
	if storage.Get(ctx, key) != nil {
		panic("dispute already exists")
	}

	tokenContract := storage.Get(ctx, tokenContractKey).(interop.Hash160)
	details := common.StakeTransferDetails(id)

	ok := contract.Call(tokenContract, "transfer", contract.All,
		challenger, runtime.GetExecutingScriptHash(), disputeconst.StakeAmount, details).(bool)
	if !ok {
		panic("stake escrow failed")
	}

	d := Dispute{
		ParcelID:   parcelID,
		Period:     period,
		Challenger: challenger,
		Stake:      disputeconst.StakeAmount,
		RaisedAt:   ledger.CurrentIndex(),
		Resolved:   false,
		Winner:     false,
	}

	common.SetSerialized(ctx, key, d)

	runtime.Notify("DisputeRaised", id, challenger, parcelID, period, disputeconst.StakeAmount)

	return id
}

// ResolveDispute method settles the dispute with the given id. It can be
// invoked only by the contract administrator and exactly once per dispute, a
// second resolution is rejected.
//
// If the proof stands, the challenger forfeits the slashed portion of the
// stake to the treasury and is refunded the remainder. If the proof falls,
// the verification record is invalidated and the challenger receives the full
// stake back plus a bounty of one stake unit from the treasury.
//
// It produces DisputeResolved notification.
func ResolveDispute(id []byte, proofValid bool) {
	ctx := storage.GetContext()

	common.CheckAdminWitness(ctx)

	d := getDispute(ctx, id)
	if d.Resolved {
		panic("dispute already resolved")
	}

	var (
		self          = runtime.GetExecutingScriptHash()
		tokenContract = storage.Get(ctx, tokenContractKey).(interop.Hash160)
		slashAmount   = d.Stake * disputeconst.SlashRate / 100
	)

	if proofValid {
		remainder := d.Stake - slashAmount
		if remainder > 0 {
			ok := contract.Call(tokenContract, "transfer", contract.All,
				self, d.Challenger, remainder, common.RefundTransferDetails(id)).(bool)
			if !ok {
				panic("stake refund failed")
			}
		}
	} else {
		verificationContract := storage.Get(ctx, verificationContractKey).(interop.Hash160)
		contract.Call(verificationContract, "updateVerificationStatus", contract.All,
			d.ParcelID, d.Period, false)

		payout := d.Stake + disputeconst.BountyAmount

		ok := contract.Call(tokenContract, "transfer", contract.All,
			self, d.Challenger, payout, common.BountyTransferDetails(id)).(bool)
		if !ok {
			panic("bounty payout failed")
		}
	}

	d.Resolved = true
	d.Winner = !proofValid

	common.SetSerialized(ctx, disputeKey(id), d)

	runtime.Notify("DisputeResolved", id, proofValid, slashAmount)
}

// GetDispute method returns the dispute with the given id. It panics if
// there is no such dispute.
func GetDispute(id []byte) Dispute {
	ctx := storage.GetReadOnlyContext()
	return getDispute(ctx, id)
}

// ListDisputes method returns ids of every dispute ever raised.
func ListDisputes() [][]byte {
	ctx := storage.GetReadOnlyContext()

	it := storage.Find(ctx, []byte{disputePrefix}, storage.KeysOnly|storage.RemovePrefix)

	var result [][]byte

	for iterator.Next(it) {
		key := iterator.Value(it).([]byte) // iterator MUST BE `storage.KeysOnly`
		result = append(result, key)
	}

	return result
}

// Treasury method returns the account dispute stakes are escrowed to and
// bounties are paid from, which is the dispute contract itself.
func Treasury() interop.Hash160 {
	return runtime.GetExecutingScriptHash()
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

func getDispute(ctx storage.Context, id []byte) Dispute {
	data := storage.Get(ctx, disputeKey(id))
	if data == nil {
		panic("dispute not found")
	}

	return std.Deserialize(data.([]byte)).(Dispute)
}

func disputeKey(id []byte) []byte {
	return append([]byte{disputePrefix}, id...)
}
