/*
Package reward implements the reward settlement contract of the GreenProof
chain.

The contract turns approved verification records into token payouts. The
reward formula is a pure function over the parcel area and the vegetation
score improvement between two consecutive periods; settlement is computed at
claim time from the current proof store state, never precomputed. Every
(parcel, period) reward is disbursed at most once: the claim marker is written
after the treasury transfer succeeds and is never unset, so concurrent or
replayed claims are decided by commit order.

The contract account itself is the reward treasury; the committee funds it by
minting tokens to the contract address.

# Contract notifications

RewardClaimed notification:

	RewardClaimed:
	  - name: owner
	    type: Hash160
	  - name: parcelId
	    type: Integer
	  - name: period
	    type: Integer
	  - name: amount
	    type: Integer
*/
package reward

/*
Contract storage model.

# Summary
Key-value storage format:
 - 'c' + little-endian parcel id + little-endian period -> bool
   Claim markers, set on first successful claim.
 - 'p', 'v', 't' -> [20]byte
   Parcel, verification and token contract script hashes set at deploy.

# Claim ledger
Contract stores one marker per settled (parcel, period) reward.
*/
