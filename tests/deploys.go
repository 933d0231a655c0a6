package tests

import (
	"path"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/greenproof/greenproof-contract/contracts/verification/satsource"
)

const (
	tokenPath        = "../contracts/token"
	parcelPath       = "../contracts/parcel"
	oraclePath       = "../contracts/oracle"
	verificationPath = "../contracts/verification"
	rewardPath       = "../contracts/reward"
	disputePath      = "../contracts/dispute"
)

const defaultMaxOracles = 10

// engine groups script hashes of a deployed contract suite.
type engine struct {
	token        util.Uint160
	parcel       util.Uint160
	oracle       util.Uint160
	verification util.Uint160
	reward       util.Uint160
	dispute      util.Uint160
}

// engineOptions alter the deploy arguments of the suite. Zero value gives a
// feeless engine administered by the committee with the default oracle
// ceiling.
type engineOptions struct {
	maxOracles    int64
	feeCollector  any // util.Uint160 or nil
	submissionFee int64
}

func compileContract(t *testing.T, e *neotest.Executor, ctrPath string) *neotest.Contract {
	return neotest.CompileFile(t, e.CommitteeHash, ctrPath, path.Join(ctrPath, "config.yml"))
}

// deployEngine compiles and deploys the whole contract suite with
// collaborator hashes wired through deploy arguments. Contract hashes are
// known before deployment, so mutually referencing contracts are not a
// problem.
func deployEngine(t *testing.T, e *neotest.Executor, opts engineOptions) engine {
	if opts.maxOracles == 0 {
		opts.maxOracles = defaultMaxOracles
	}

	var (
		ctrToken        = compileContract(t, e, tokenPath)
		ctrParcel       = compileContract(t, e, parcelPath)
		ctrOracle       = compileContract(t, e, oraclePath)
		ctrVerification = compileContract(t, e, verificationPath)
		ctrReward       = compileContract(t, e, rewardPath)
		ctrDispute      = compileContract(t, e, disputePath)
	)

	e.DeployContract(t, ctrToken, nil)
	e.DeployContract(t, ctrParcel, nil)
	e.DeployContract(t, ctrOracle, []any{
		e.CommitteeHash, opts.maxOracles, ctrVerification.Hash,
	})
	e.DeployContract(t, ctrVerification, []any{
		e.CommitteeHash, ctrOracle.Hash, ctrToken.Hash, ctrDispute.Hash,
		opts.feeCollector, opts.submissionFee,
	})
	e.DeployContract(t, ctrReward, []any{
		ctrParcel.Hash, ctrVerification.Hash, ctrToken.Hash,
	})
	e.DeployContract(t, ctrDispute, []any{
		e.CommitteeHash, ctrVerification.Hash, ctrToken.Hash,
	})

	return engine{
		token:        ctrToken.Hash,
		parcel:       ctrParcel.Hash,
		oracle:       ctrOracle.Hash,
		verification: ctrVerification.Hash,
		reward:       ctrReward.Hash,
		dispute:      ctrDispute.Hash,
	}
}

// mint issues tokens to the account from the committee.
func (s engine) mint(t *testing.T, e *neotest.Executor, to util.Uint160, amount int64) {
	inv := e.CommitteeInvoker(s.token)
	inv.Invoke(t, stackitem.Null{}, "mint", to, amount, []byte{})
}

// balanceOf returns the token balance of the account.
func (s engine) balanceOf(t *testing.T, e *neotest.Executor, acc util.Uint160) int64 {
	inv := e.CommitteeInvoker(s.token)

	res, err := inv.TestInvoke(t, "balanceOf", acc)
	if err != nil {
		t.Fatal(err)
	}

	return res.Pop().BigInt().Int64()
}

// addOracle authorizes the account as a reporter via the committee admin.
func (s engine) addOracle(t *testing.T, e *neotest.Executor, acc util.Uint160, id int64) {
	inv := e.CommitteeInvoker(s.oracle)
	inv.Invoke(t, stackitem.Make(id), "addOracle", acc)
}

// submitProof stores a well-formed verification record signed by the oracle.
func (s engine) submitProof(t *testing.T, e *neotest.Executor, oracle neotest.Signer, parcelID, period, ndviScore int64) {
	inv := e.NewInvoker(s.verification, oracle)
	inv.Invoke(t, stackitem.Null{}, "submitProof",
		oracle.ScriptHash(), parcelID, period, randomBytes(32),
		ndviScore, int64(95), int64(satsource.Sentinel), randomBytes(32))
}
