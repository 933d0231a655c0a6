package tests

import (
	"math/big"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

func TestParcelRegister(t *testing.T) {
	e := newExecutor(t)
	s := deployEngine(t, e, engineOptions{})

	owner := e.NewAccount(t)
	ownerInv := e.NewInvoker(s.parcel, owner)

	ownerInv.Invoke(t, stackitem.Make(1), "registerParcel", owner.ScriptHash(), int64(100))
	ownerInv.Invoke(t, stackitem.Make(2), "registerParcel", owner.ScriptHash(), int64(2500))
	ownerInv.Invoke(t, stackitem.Make(2), "count", owner.ScriptHash())

	res, err := ownerInv.TestInvoke(t, "getParcel", owner.ScriptHash(), int64(2))
	require.NoError(t, err)

	fields := res.Pop().Array()
	require.Equal(t, int64(2), fields[0].Value().(*big.Int).Int64())
	require.Equal(t, int64(2500), fields[2].Value().(*big.Int).Int64())

	t.Run("invalid area", func(t *testing.T) {
		ownerInv.InvokeFail(t, "invalid parcel area", "registerParcel", owner.ScriptHash(), int64(0))
	})

	t.Run("no owner witness", func(t *testing.T) {
		other := e.NewAccount(t)
		otherInv := e.NewInvoker(s.parcel, other)
		otherInv.InvokeFail(t, "owner witness check failed", "registerParcel", owner.ScriptHash(), int64(100))
	})

	t.Run("unknown parcel", func(t *testing.T) {
		ownerInv.InvokeFail(t, "parcel not found", "transferParcel",
			owner.ScriptHash(), int64(42), e.NewAccount(t).ScriptHash())
	})
}

func TestParcelTransfer(t *testing.T) {
	e := newExecutor(t)
	s := deployEngine(t, e, engineOptions{})

	owner := e.NewAccount(t)
	newOwner := e.NewAccount(t)

	ownerInv := e.NewInvoker(s.parcel, owner)
	ownerInv.Invoke(t, stackitem.Make(1), "registerParcel", owner.ScriptHash(), int64(300))

	t.Run("self transfer", func(t *testing.T) {
		ownerInv.InvokeFail(t, "invalid new owner", "transferParcel",
			owner.ScriptHash(), int64(1), owner.ScriptHash())
	})

	ownerInv.Invoke(t, stackitem.Make(1), "transferParcel",
		owner.ScriptHash(), int64(1), newOwner.ScriptHash())

	// the parcel left the old owner's registry
	ownerInv.InvokeFail(t, "parcel not found", "transferParcel",
		owner.ScriptHash(), int64(1), newOwner.ScriptHash())

	res, err := ownerInv.TestInvoke(t, "getParcel", newOwner.ScriptHash(), int64(1))
	require.NoError(t, err)

	fields := res.Pop().Array()
	require.Equal(t, int64(300), fields[2].Value().(*big.Int).Int64())
}
