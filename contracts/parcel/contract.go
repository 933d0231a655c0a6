package parcel

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/convert"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/ledger"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/greenproof/greenproof-contract/common"
)

// Parcel groups data about a single registered land parcel. Parcels are
// identified by the pair of the owner account and a per-owner sequential id.
type Parcel struct {
	// Sequential id of the parcel within its owner's registry.
	ID int

	// Owner account of the parcel.
	Owner interop.Hash160

	// Parcel area in square meters.
	AreaSqMeters int

	// Block height at which the parcel was registered.
	RegisteredAt int
}

const (
	parcelPrefix  = 'p'
	counterPrefix = 'c'
)

// nolint:deadcode,unused
func _deploy(data any, isUpdate bool) {
	if isUpdate {
		args := data.([]any)
		version := args[len(args)-1].(int)

		common.CheckVersion(version)
		return
	}

	runtime.Log("parcel contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by committee.
func Update(script []byte, manifest []byte, data any) {
	if !common.HasUpdateAccess() {
		panic("only committee can update contract")
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, script, manifest, common.AppendVersion(data))
	runtime.Log("parcel contract updated")
}

// RegisterParcel method registers a new land parcel for the given owner and
// returns its id. Call transaction MUST be signed by the owner.
//
// It produces RegisterParcel notification.
func RegisterParcel(owner interop.Hash160, areaSqMeters int) int {
	ctx := storage.GetContext()

	common.CheckOwnerWitness(owner)

	if areaSqMeters <= 0 {
		panic("invalid parcel area")
	}

	id := nextID(ctx, owner)

	p := Parcel{
		ID:           id,
		Owner:        owner,
		AreaSqMeters: areaSqMeters,
		RegisteredAt: ledger.CurrentIndex(),
	}

	common.SetSerialized(ctx, parcelKey(owner, id), p)

	runtime.Notify("RegisterParcel", owner, id, areaSqMeters)

	return id
}

// TransferParcel method moves a parcel from its current owner to a new one.
// The parcel is re-keyed under the next sequential id of the receiving owner.
// Call transaction MUST be signed by the current owner. Returns the parcel id
// within the new owner's registry.
//
// It produces TransferParcel notification.
func TransferParcel(owner interop.Hash160, parcelID int, newOwner interop.Hash160) int {
	ctx := storage.GetContext()

	common.CheckOwnerWitness(owner)

	if len(newOwner) != interop.Hash160Len || newOwner.Equals(owner) {
		panic("invalid new owner")
	}

	p := getParcel(ctx, owner, parcelID)

	newID := nextID(ctx, newOwner)

	p.ID = newID
	p.Owner = newOwner

	storage.Delete(ctx, parcelKey(owner, parcelID))
	common.SetSerialized(ctx, parcelKey(newOwner, newID), p)

	runtime.Notify("TransferParcel", owner, newOwner, parcelID, newID)

	return newID
}

// GetParcel method returns the parcel registered for the given owner under
// the given id. It panics if there is no such parcel.
func GetParcel(owner interop.Hash160, parcelID int) Parcel {
	ctx := storage.GetReadOnlyContext()
	return getParcel(ctx, owner, parcelID)
}

// Count method returns the number of parcels ever registered for the given
// owner. Transferred parcels do not decrease the counter, their ids are never
// reused.
func Count(owner interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()
	return counter(ctx, owner)
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

func getParcel(ctx storage.Context, owner interop.Hash160, parcelID int) Parcel {
	data := storage.Get(ctx, parcelKey(owner, parcelID))
	if data == nil {
		panic("parcel not found")
	}

	return std.Deserialize(data.([]byte)).(Parcel)
}

func counter(ctx storage.Context, owner interop.Hash160) int {
	data := storage.Get(ctx, counterKey(owner))
	if data == nil {
		return 0
	}

	return data.(int)
}

func nextID(ctx storage.Context, owner interop.Hash160) int {
	id := counter(ctx, owner) + 1
	storage.Put(ctx, counterKey(owner), id)

	return id
}

func parcelKey(owner interop.Hash160, parcelID int) []byte {
	return append(append([]byte{parcelPrefix}, owner...), convert.ToBytes(parcelID)...)
}

func counterKey(owner interop.Hash160) []byte {
	return append([]byte{counterPrefix}, owner...)
}
