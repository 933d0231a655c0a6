/*
Package dispute implements the dispute resolution contract of the GreenProof
chain.

Any account may challenge a stored verification record by escrowing a fixed
stake. The dispute id is derived deterministically from the challenged parcel
and period, so a verification can be disputed at most once. Resolution is an
administrator action and is terminal: a losing challenger forfeits the slashed
portion of the stake and is refunded the remainder, a winning challenger gets
the stake back plus a bounty while the challenged proof is retroactively
invalidated in the proof store. The contract account acts as the dispute
treasury, accruing slashed stakes and funding bounties.

# Contract notifications

DisputeRaised notification:

	DisputeRaised:
	  - name: id
	    type: ByteArray
	  - name: challenger
	    type: Hash160
	  - name: parcelId
	    type: Integer
	  - name: period
	    type: Integer
	  - name: stake
	    type: Integer

DisputeResolved notification:

	DisputeResolved:
	  - name: id
	    type: ByteArray
	  - name: proofValid
	    type: Boolean
	  - name: slashAmount
	    type: Integer
*/
package dispute

/*
Contract storage model.

# Summary
Key-value storage format:
 - 'd' + [32]byte dispute id -> std.Serialize(Dispute)
   Raised disputes, resolved ones included.
 - 'v', 't' -> [20]byte
   Verification and token contract script hashes set at deploy.
 - "admin" -> [20]byte
   Administrator account.

# Dispute ledger
Contract stores one record per raised dispute; resolution flips the Resolved
flag and is the terminal mutation.
*/
