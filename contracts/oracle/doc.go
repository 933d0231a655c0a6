/*
Package oracle implements the oracle registry contract of the GreenProof chain.

The registry manages the permissioned set of reporter accounts allowed to
submit verification proofs. Oracles are added and deactivated by the engine
administrator; the number of ever-added oracles is capped by a ceiling fixed
at deploy. An identity maps to at most one oracle id and ids are never reused.
The verification contract consults the registry before accepting a proof and
reports accepted submissions back so the per-oracle counters stay current.

# Contract notifications

AddOracle notification:

	AddOracle:
	  - name: id
	    type: Integer
	  - name: account
	    type: Hash160

RemoveOracle notification:

	RemoveOracle:
	  - name: id
	    type: Integer
	  - name: account
	    type: Hash160

SetAdmin notification:

	SetAdmin:
	  - name: account
	    type: Hash160
*/
package oracle

/*
Contract storage model.

# Summary
Key-value storage format:
 - 'o' + [20]byte oracle script hash -> std.Serialize(Oracle)
   Registered oracles, deactivated ones included.
 - 'n' -> int
   Number of ever-added oracles.
 - 'm' -> int
   Oracle ceiling set at deploy.
 - 'v' -> [20]byte
   Verification contract script hash, the only caller allowed to bump
   submission counters.
 - "admin" -> [20]byte
   Administrator account.

# Registry
Contract stores one record per oracle ever added; deactivation keeps the
record and only drops the activity flag.
*/
