package reward

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/greenproof/greenproof-contract/common"
	"github.com/greenproof/greenproof-contract/contracts/reward/rewardconst"
	"github.com/greenproof/greenproof-contract/contracts/verification/satsource"
)

// parcelInfo is a copy of github.com/greenproof/greenproof-contract/contracts/parcel.Parcel
// to prevent cross-contract imports that may fail due to internal `_deploy` calls.
type parcelInfo struct {
	ID           int
	Owner        interop.Hash160
	AreaSqMeters int
	RegisteredAt int
}

// verificationRecord is a copy of github.com/greenproof/greenproof-contract/contracts/verification.Verification
// to prevent cross-contract imports that may fail due to internal `_deploy` calls.
type verificationRecord struct {
	ParcelID     int
	Period       int
	Oracle       interop.Hash160
	ProofHash    interop.Hash256
	NDVIScore    int
	Confidence   int
	Source       satsource.Type
	LocationHash interop.Hash256
	SubmittedAt  int
	Status       bool
}

const (
	claimPrefix = 'c'

	parcelContractKey       = 'p'
	verificationContractKey = 'v'
	tokenContractKey        = 't'
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
		parcel       interop.Hash160
		verification interop.Hash160
		token        interop.Hash160
	})

	if len(args.parcel) != interop.Hash160Len {
		panic("invalid parcel contract")
	}
	if len(args.verification) != interop.Hash160Len {
		panic("invalid verification contract")
	}
	if len(args.token) != interop.Hash160Len {
		panic("invalid token contract")
	}

	storage.Put(ctx, parcelContractKey, args.parcel)
	storage.Put(ctx, verificationContractKey, args.verification)
	storage.Put(ctx, tokenContractKey, args.token)

	runtime.Log("reward contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by committee.
func Update(script []byte, manifest []byte, data any) {
	if !common.HasUpdateAccess() {
		panic("only committee can update contract")
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, script, manifest, common.AppendVersion(data))
	runtime.Log("reward contract updated")
}

// CalculateReward method computes the token amount earned by a parcel of the
// given area for a pair of consecutive-period vegetation scores. It is pure:
// the result depends on the arguments only.
//
// Scores below the minimum threshold earn nothing. Otherwise the base amount
// proportional to the parcel area is multiplied by the improvement factor of
// the score delta; declining vegetation floors the factor at zero, a reward
// is never negative.
func CalculateReward(areaSqMeters, ndviScore, prevNdviScore int) int {
	if ndviScore < rewardconst.MinNDVIScore {
		return 0
	}

	base := areaSqMeters / rewardconst.AreaUnit * rewardconst.RewardRate

	factor := 1 + (ndviScore-prevNdviScore)/rewardconst.ImprovementStep
	if factor < 0 {
		factor = 0
	}

	return base * factor
}

// ClaimRewards method settles the reward of the given parcel and period and
// returns the paid amount. Call transaction MUST be signed by the parcel
// owner.
//
// The claim requires the parcel to be registered for the caller, an approved
// verification for the claimed period, a verification for the preceding
// period to measure improvement against, and no earlier claim of the same
// key. The claim marker is set only after the treasury transfer succeeds, so
// a failed payout never consumes the claim while a successful one can never
// be replayed.
//
// It produces RewardClaimed notification.
func ClaimRewards(owner interop.Hash160, parcelID, period int) int {
	ctx := storage.GetContext()

	common.CheckOwnerWitness(owner)

	parcelContract := storage.Get(ctx, parcelContractKey).(interop.Hash160)
	p := contract.Call(parcelContract, "getParcel", contract.ReadOnly, owner, parcelID).(parcelInfo)

	verificationContract := storage.Get(ctx, verificationContractKey).(interop.Hash160)
	if !contract.Call(verificationContract, "exists", contract.ReadOnly, parcelID, period).(bool) {
		panic("verification not found")
	}

	v := contract.Call(verificationContract, "getVerification", contract.ReadOnly, parcelID, period).(verificationRecord)
	if !v.Status {
		panic("verification not approved")
	}

	if !contract.Call(verificationContract, "exists", contract.ReadOnly, parcelID, period-1).(bool) {
		panic("no verification for previous period")
	}

	prev := contract.Call(verificationContract, "getVerification", contract.ReadOnly, parcelID, period-1).(verificationRecord)

	key := claimKey(parcelID, period)
	if storage.Get(ctx, key) != nil {
		panic("reward already claimed")
	}

	amount := CalculateReward(p.AreaSqMeters, v.NDVIScore, prev.NDVIScore)
	if amount == 0 {
		panic("nothing to claim")
	}

	tokenContract := storage.Get(ctx, tokenContractKey).(interop.Hash160)
	details := common.RewardTransferDetails(parcelID, period)

	ok := contract.Call(tokenContract, "transfer", contract.All,
		runtime.GetExecutingScriptHash(), owner, amount, details).(bool)
	if !ok {
		panic("reward payout failed")
	}

	storage.Put(ctx, key, true)

	runtime.Notify("RewardClaimed", owner, parcelID, period, amount)

	return amount
}

// IsClaimed method returns true if the reward of the given parcel and period
// has already been disbursed.
func IsClaimed(parcelID, period int) bool {
	ctx := storage.GetReadOnlyContext()
	return storage.Get(ctx, claimKey(parcelID, period)) != nil
}

// Treasury method returns the account rewards are disbursed from, which is
// the reward contract itself.
func Treasury() interop.Hash160 {
	return runtime.GetExecutingScriptHash()
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

func claimKey(parcelID, period int) []byte {
	key := append([]byte{claimPrefix}, common.FixedIntKey(parcelID)...)
	return append(key, common.FixedIntKey(period)...)
}
