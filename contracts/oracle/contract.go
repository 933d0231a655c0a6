package oracle

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
)

// Oracle groups data about a single authorized reporter. Oracles are never
// physically deleted, deactivation is the terminal mutation of a record.
type Oracle struct {
	// Sequential id of the oracle.
	ID int

	// Oracle account.
	Account interop.Hash160

	// Whether the oracle is allowed to submit proofs.
	Active bool

	// Block height at which the oracle was added.
	AddedAt int

	// Number of proofs the oracle has submitted.
	Submissions int
}

const (
	oraclePrefix = 'o'

	counterKey      = 'n'
	maxOraclesKey   = 'm'
	verificationKey = 'v'
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
		admin        interop.Hash160
		maxOracles   int
		verification interop.Hash160
	})

	if args.maxOracles <= 0 {
		panic("invalid oracle ceiling")
	}
	if len(args.verification) != interop.Hash160Len {
		panic("invalid verification contract")
	}

	common.SetAdmin(ctx, args.admin)
	storage.Put(ctx, maxOraclesKey, args.maxOracles)
	storage.Put(ctx, verificationKey, args.verification)
	storage.Put(ctx, counterKey, 0)

	runtime.Log("oracle contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by committee.
func Update(script []byte, manifest []byte, data any) {
	if !common.HasUpdateAccess() {
		panic("only committee can update contract")
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, script, manifest, common.AppendVersion(data))
	runtime.Log("oracle contract updated")
}

// AddOracle method authorizes a new reporter account. It can be invoked only
// by the contract administrator. The number of ever-added oracles is limited
// by the ceiling set at deploy, removed oracles still count against it.
//
// It produces AddOracle notification.
func AddOracle(addr interop.Hash160) int {
	ctx := storage.GetContext()

	common.CheckAdminWitness(ctx)

	if len(addr) != interop.Hash160Len {
		panic("invalid oracle account")
	}

	count := storage.Get(ctx, counterKey).(int)
	if count >= storage.Get(ctx, maxOraclesKey).(int) {
		panic("maximum number of oracles reached")
	}

	if storage.Get(ctx, oracleKey(addr)) != nil {
		panic("oracle already registered")
	}

	id := count + 1

	o := Oracle{
		ID:          id,
		Account:     addr,
		Active:      true,
		AddedAt:     ledger.CurrentIndex(),
		Submissions: 0,
	}

	common.SetSerialized(ctx, oracleKey(addr), o)
	storage.Put(ctx, counterKey, id)

	runtime.Notify("AddOracle", id, addr)

	return id
}

// RemoveOracle method deactivates the reporter account. It can be invoked
// only by the contract administrator. The oracle record with its id and
// submission counter is retained, only the activity flag is dropped.
//
// It produces RemoveOracle notification.
func RemoveOracle(addr interop.Hash160) {
	ctx := storage.GetContext()

	common.CheckAdminWitness(ctx)

	o := getOracle(ctx, addr)
	o.Active = false

	common.SetSerialized(ctx, oracleKey(addr), o)

	runtime.Notify("RemoveOracle", o.ID, addr)
}

// IsActive method returns true if the given account is an oracle currently
// allowed to submit proofs. It is the capability check used by the
// verification contract.
func IsActive(addr interop.Hash160) bool {
	ctx := storage.GetReadOnlyContext()

	data := storage.Get(ctx, oracleKey(addr))
	if data == nil {
		return false
	}

	return std.Deserialize(data.([]byte)).(Oracle).Active
}

// Get method returns the oracle record of the given account. It panics if
// there is no such oracle.
func Get(addr interop.Hash160) Oracle {
	ctx := storage.GetReadOnlyContext()
	return getOracle(ctx, addr)
}

// Count method returns the number of ever-added oracles, deactivated ones
// included.
func Count() int {
	ctx := storage.GetReadOnlyContext()
	return storage.Get(ctx, counterKey).(int)
}

// ListOracles method returns all oracle records known to the contract.
func ListOracles() []Oracle {
	ctx := storage.GetReadOnlyContext()

	var result []Oracle

	it := storage.Find(ctx, []byte{oraclePrefix}, storage.ValuesOnly|storage.DeserializeValues)
	for iterator.Next(it) {
		result = append(result, iterator.Value(it).(Oracle))
	}

	return result
}

// SetAdmin method replaces the administrator account gating every privileged
// method of the engine. It can be invoked only by the current administrator.
// No-op self-assignment is rejected.
//
// It produces SetAdmin notification.
func SetAdmin(addr interop.Hash160) {
	ctx := storage.GetContext()

	common.CheckAdminWitness(ctx)

	if len(addr) != interop.Hash160Len || addr.Equals(common.Admin(ctx)) {
		panic("invalid admin account")
	}

	common.SetAdmin(ctx, addr)

	runtime.Notify("SetAdmin", addr)
}

// IncrementSubmissions method bumps the submission counter of the oracle. It
// can be invoked only by the verification contract when a proof is accepted.
func IncrementSubmissions(addr interop.Hash160) {
	ctx := storage.GetContext()

	verification := storage.Get(ctx, verificationKey).(interop.Hash160)
	if !runtime.GetCallingScriptHash().Equals(verification) {
		panic("caller is not the verification contract")
	}

	o := getOracle(ctx, addr)
	o.Submissions = o.Submissions + 1

	common.SetSerialized(ctx, oracleKey(addr), o)
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

func getOracle(ctx storage.Context, addr interop.Hash160) Oracle {
	data := storage.Get(ctx, oracleKey(addr))
	if data == nil {
		panic("oracle not found")
	}

	return std.Deserialize(data.([]byte)).(Oracle)
}

func oracleKey(addr interop.Hash160) []byte {
	return append([]byte{oraclePrefix}, addr...)
}
