package tests

import (
	"crypto/sha256"
	"math/big"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/encoding/bigint"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/greenproof/greenproof-contract/contracts/dispute/disputeconst"
	"github.com/stretchr/testify/require"
)

// expectedDisputeID mirrors the on-chain dispute identifier derivation.
func expectedDisputeID(parcelID, period int64) []byte {
	data := append([]byte("dispute"), fixedKeyPart(parcelID)...)
	data = append(data, fixedKeyPart(period)...)

	h := sha256.Sum256(data)
	return h[:]
}

// fixedKeyPart mirrors the 8-byte little-endian key part encoding of the
// contracts.
func fixedKeyPart(v int64) []byte {
	b := bigint.ToBytes(big.NewInt(v))
	for len(b) < 8 {
		b = append(b, 0)
	}

	return b
}

func TestRaiseDispute(t *testing.T) {
	e := newExecutor(t)
	s := deployEngine(t, e, engineOptions{})

	oracleAcc := e.NewAccount(t)
	s.addOracle(t, e, oracleAcc.ScriptHash(), 1)
	s.submitProof(t, e, oracleAcc, 1, 1, 7000)

	challenger := e.NewAccount(t)
	s.mint(t, e, challenger.ScriptHash(), 2*disputeconst.StakeAmount)

	id := expectedDisputeID(1, 1)
	disputeInv := e.NewInvoker(s.dispute, challenger)

	disputeInv.Invoke(t, stackitem.NewByteArray(id), "disputeID", int64(1), int64(1))
	disputeInv.Invoke(t, stackitem.NewByteArray(expectedDisputeID(1, 257)), "disputeID", int64(1), int64(257))
	disputeInv.Invoke(t, stackitem.NewByteArray(expectedDisputeID(257, 1)), "disputeID", int64(257), int64(1))

	disputeInv.Invoke(t, stackitem.NewByteArray(id), "raiseDispute",
		challenger.ScriptHash(), int64(1), int64(1))

	// the stake left the challenger for the escrow account
	require.EqualValues(t, disputeconst.StakeAmount, s.balanceOf(t, e, challenger.ScriptHash()))
	require.EqualValues(t, disputeconst.StakeAmount, s.balanceOf(t, e, s.dispute))

	res, err := disputeInv.TestInvoke(t, "getDispute", id)
	require.NoError(t, err)

	fields := res.Pop().Array()
	require.Equal(t, int64(1), fields[0].Value().(*big.Int).Int64())
	gotChallenger, err := fields[2].TryBytes()
	require.NoError(t, err)
	require.Equal(t, challenger.ScriptHash().BytesBE(), gotChallenger)
	require.Equal(t, int64(disputeconst.StakeAmount), fields[3].Value().(*big.Int).Int64())
	require.False(t, fields[5].Value().(bool))

	res, err = disputeInv.TestInvoke(t, "listDisputes")
	require.NoError(t, err)
	require.Len(t, res.Pop().Array(), 1)

	t.Run("duplicate", func(t *testing.T) {
		disputeInv.InvokeFail(t, "dispute already exists", "raiseDispute",
			challenger.ScriptHash(), int64(1), int64(1))
	})

	t.Run("unknown verification", func(t *testing.T) {
		disputeInv.InvokeFail(t, "verification not found", "raiseDispute",
			challenger.ScriptHash(), int64(9), int64(9))
	})

	t.Run("no challenger witness", func(t *testing.T) {
		other := e.NewAccount(t)
		otherInv := e.NewInvoker(s.dispute, other)
		otherInv.InvokeFail(t, "owner witness check failed", "raiseDispute",
			challenger.ScriptHash(), int64(1), int64(1))
	})

	t.Run("no funds to stake", func(t *testing.T) {
		s.submitProof(t, e, oracleAcc, 1, 2, 7100)

		poor := e.NewAccount(t)
		poorInv := e.NewInvoker(s.dispute, poor)
		poorInv.InvokeFail(t, "stake escrow failed", "raiseDispute",
			poor.ScriptHash(), int64(1), int64(2))
	})
}

func TestResolveDisputeUpheld(t *testing.T) {
	e := newExecutor(t)
	s := deployEngine(t, e, engineOptions{})

	oracleAcc := e.NewAccount(t)
	s.addOracle(t, e, oracleAcc.ScriptHash(), 1)
	s.submitProof(t, e, oracleAcc, 1, 1, 7000)

	challenger := e.NewAccount(t)
	s.mint(t, e, challenger.ScriptHash(), disputeconst.StakeAmount)

	id := expectedDisputeID(1, 1)
	disputeInv := e.NewInvoker(s.dispute, challenger)
	disputeInv.Invoke(t, stackitem.NewByteArray(id), "raiseDispute",
		challenger.ScriptHash(), int64(1), int64(1))

	adminInv := e.CommitteeInvoker(s.dispute)

	t.Run("unknown dispute", func(t *testing.T) {
		adminInv.InvokeFail(t, "dispute not found", "resolveDispute", randomBytes(32), true)
	})

	t.Run("not an admin", func(t *testing.T) {
		disputeInv.InvokeFail(t, "admin witness check failed", "resolveDispute", id, true)
	})

	adminInv.Invoke(t, stackitem.Null{}, "resolveDispute", id, true)

	// half of the stake is slashed to the treasury, the rest returns
	slash := int64(disputeconst.StakeAmount) * disputeconst.SlashRate / 100
	require.EqualValues(t, int64(disputeconst.StakeAmount)-slash, s.balanceOf(t, e, challenger.ScriptHash()))
	require.EqualValues(t, slash, s.balanceOf(t, e, s.dispute))

	// the challenged record stands
	e.CommitteeInvoker(s.verification).Invoke(t, stackitem.NewBool(true), "isApproved", int64(1), int64(1))

	res, err := disputeInv.TestInvoke(t, "getDispute", id)
	require.NoError(t, err)

	fields := res.Pop().Array()
	require.True(t, fields[5].Value().(bool))
	require.False(t, fields[6].Value().(bool))

	t.Run("double resolution", func(t *testing.T) {
		adminInv.InvokeFail(t, "dispute already resolved", "resolveDispute", id, false)
	})
}

func TestResolveDisputeOverturned(t *testing.T) {
	e := newExecutor(t)
	s := deployEngine(t, e, engineOptions{})

	oracleAcc := e.NewAccount(t)
	s.addOracle(t, e, oracleAcc.ScriptHash(), 1)
	s.submitProof(t, e, oracleAcc, 1, 1, 7000)
	s.submitProof(t, e, oracleAcc, 1, 2, 7100)

	challenger := e.NewAccount(t)
	s.mint(t, e, challenger.ScriptHash(), 2*disputeconst.StakeAmount)

	id := expectedDisputeID(1, 1)
	disputeInv := e.NewInvoker(s.dispute, challenger)
	disputeInv.Invoke(t, stackitem.NewByteArray(id), "raiseDispute",
		challenger.ScriptHash(), int64(1), int64(1))

	// the bounty is paid on top of the returned stake
	s.mint(t, e, s.dispute, disputeconst.BountyAmount)

	adminInv := e.CommitteeInvoker(s.dispute)
	adminInv.Invoke(t, stackitem.Null{}, "resolveDispute", id, false)

	require.EqualValues(t, 2*disputeconst.StakeAmount+disputeconst.BountyAmount,
		s.balanceOf(t, e, challenger.ScriptHash()))
	require.EqualValues(t, 0, s.balanceOf(t, e, s.dispute))

	// the challenged record is invalidated
	e.CommitteeInvoker(s.verification).Invoke(t, stackitem.NewBool(false), "isApproved", int64(1), int64(1))

	res, err := disputeInv.TestInvoke(t, "getDispute", id)
	require.NoError(t, err)

	fields := res.Pop().Array()
	require.True(t, fields[5].Value().(bool))
	require.True(t, fields[6].Value().(bool))

	t.Run("unfunded bounty", func(t *testing.T) {
		secondID := expectedDisputeID(1, 2)
		disputeInv.Invoke(t, stackitem.NewByteArray(secondID), "raiseDispute",
			challenger.ScriptHash(), int64(1), int64(2))

		adminInv.InvokeFail(t, "bounty payout failed", "resolveDispute", secondID, false)
	})
}
