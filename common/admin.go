package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

const adminKey = "admin"

// ErrAdminWitnessFailed appears when a method restricted to the contract
// administrator is called by someone else.
const ErrAdminWitnessFailed = "admin witness check failed"

// SetAdmin stores the administrator account of the contract. Every privileged
// method of the contract is gated by this account, there is no process-wide
// admin shared between contracts.
func SetAdmin(ctx storage.Context, admin interop.Hash160) {
	if len(admin) != interop.Hash160Len {
		panic("invalid admin account")
	}

	storage.Put(ctx, adminKey, admin)
}

// Admin returns the administrator account of the contract.
func Admin(ctx storage.Context) interop.Hash160 {
	return storage.Get(ctx, adminKey).(interop.Hash160)
}

// CheckAdminWitness checks that the carrier transaction is signed by the
// contract administrator. It panics with ErrAdminWitnessFailed otherwise.
func CheckAdminWitness(ctx storage.Context) {
	if !runtime.CheckWitness(Admin(ctx)) {
		panic(ErrAdminWitnessFailed)
	}
}
