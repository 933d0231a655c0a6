package tests

import (
	"math/big"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

func TestOracleAdd(t *testing.T) {
	e := newExecutor(t)
	s := deployEngine(t, e, engineOptions{})

	acc := e.NewAccount(t)
	adminInv := e.CommitteeInvoker(s.oracle)

	adminInv.Invoke(t, stackitem.Make(1), "addOracle", acc.ScriptHash())
	adminInv.Invoke(t, stackitem.NewBool(true), "isActive", acc.ScriptHash())
	adminInv.Invoke(t, stackitem.Make(1), "count")

	t.Run("duplicate", func(t *testing.T) {
		adminInv.InvokeFail(t, "oracle already registered", "addOracle", acc.ScriptHash())
	})

	t.Run("not an admin", func(t *testing.T) {
		userInv := e.NewInvoker(s.oracle, acc)
		userInv.InvokeFail(t, "admin witness check failed", "addOracle", e.NewAccount(t).ScriptHash())
	})
}

func TestOracleCeiling(t *testing.T) {
	e := newExecutor(t)
	s := deployEngine(t, e, engineOptions{maxOracles: 2})

	adminInv := e.CommitteeInvoker(s.oracle)

	adminInv.Invoke(t, stackitem.Make(1), "addOracle", e.NewAccount(t).ScriptHash())
	adminInv.Invoke(t, stackitem.Make(2), "addOracle", e.NewAccount(t).ScriptHash())
	adminInv.InvokeFail(t, "maximum number of oracles reached", "addOracle", e.NewAccount(t).ScriptHash())
	adminInv.Invoke(t, stackitem.Make(2), "count")

	t.Run("removal frees no slot", func(t *testing.T) {
		res, err := adminInv.TestInvoke(t, "listOracles")
		require.NoError(t, err)

		first := res.Pop().Array()[0].Value().([]stackitem.Item)
		addr, err := first[1].TryBytes()
		require.NoError(t, err)

		adminInv.Invoke(t, stackitem.Null{}, "removeOracle", addr)
		adminInv.InvokeFail(t, "maximum number of oracles reached", "addOracle", e.NewAccount(t).ScriptHash())
	})
}

func TestOracleRemove(t *testing.T) {
	e := newExecutor(t)
	s := deployEngine(t, e, engineOptions{})

	acc := e.NewAccount(t)
	adminInv := e.CommitteeInvoker(s.oracle)

	t.Run("unknown oracle", func(t *testing.T) {
		adminInv.InvokeFail(t, "oracle not found", "removeOracle", acc.ScriptHash())
	})

	adminInv.Invoke(t, stackitem.Make(1), "addOracle", acc.ScriptHash())
	adminInv.Invoke(t, stackitem.Null{}, "removeOracle", acc.ScriptHash())
	adminInv.Invoke(t, stackitem.NewBool(false), "isActive", acc.ScriptHash())

	// the record survives deactivation
	res, err := adminInv.TestInvoke(t, "get", acc.ScriptHash())
	require.NoError(t, err)

	fields := res.Pop().Array()
	require.Equal(t, int64(1), fields[0].Value().(*big.Int).Int64())
	require.False(t, fields[2].Value().(bool))
}

func TestOracleSetAdmin(t *testing.T) {
	e := newExecutor(t)
	s := deployEngine(t, e, engineOptions{})

	newAdmin := e.NewAccount(t)
	adminInv := e.CommitteeInvoker(s.oracle)

	t.Run("self assignment", func(t *testing.T) {
		adminInv.InvokeFail(t, "invalid admin account", "setAdmin", e.CommitteeHash)
	})

	adminInv.Invoke(t, stackitem.Null{}, "setAdmin", newAdmin.ScriptHash())

	// the old admin lost its privileges
	adminInv.InvokeFail(t, "admin witness check failed", "addOracle", e.NewAccount(t).ScriptHash())

	newAdminInv := e.NewInvoker(s.oracle, newAdmin)
	newAdminInv.Invoke(t, stackitem.Make(1), "addOracle", e.NewAccount(t).ScriptHash())
}

func TestOracleSubmissionCounterGate(t *testing.T) {
	e := newExecutor(t)
	s := deployEngine(t, e, engineOptions{})

	acc := e.NewAccount(t)
	adminInv := e.CommitteeInvoker(s.oracle)
	adminInv.Invoke(t, stackitem.Make(1), "addOracle", acc.ScriptHash())

	// the counter is writable by the verification contract only
	adminInv.InvokeFail(t, "caller is not the verification contract",
		"incrementSubmissions", acc.ScriptHash())
}
