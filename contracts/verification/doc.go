/*
Package verification implements the proof store contract of the GreenProof
chain.

Active oracles submit one verification record per parcel and period, carrying
the proof digest, the normalized vegetation score and the imagery source. The
contract enforces structural well-formedness and the temporal recency window
at write time; everything but the validity status is immutable after creation.
The status may later be flipped by an administrator override or by the dispute
contract when a challenge against the proof succeeds. Status-changing admin
actions can be captured in an append-only audit history.

The reward contract reads records from here when settling claims, so the proof
store is the single source of truth for what has been verified on chain.

# Contract notifications

ProofSubmitted notification:

	ProofSubmitted:
	  - name: parcelId
	    type: Integer
	  - name: period
	    type: Integer
	  - name: ndviScore
	    type: Integer
	  - name: oracle
	    type: Hash160

VerificationStatusUpdated notification:

	VerificationStatusUpdated:
	  - name: parcelId
	    type: Integer
	  - name: period
	    type: Integer
	  - name: status
	    type: Boolean

HistoryRecorded notification:

	HistoryRecorded:
	  - name: id
	    type: Integer
	  - name: parcelId
	    type: Integer
	  - name: period
	    type: Integer
	  - name: status
	    type: Boolean
*/
package verification

/*
Contract storage model.

# Summary
Key-value storage format:
 - 'r' + little-endian parcel id + little-endian period -> std.Serialize(Verification)
   Proof records, one per (parcel, period) key.
 - 'h' + little-endian sequence id -> std.Serialize(HistoryEntry)
   Append-only audit history of admin actions.
 - 'i' -> int
   Latest audit history sequence id.
 - 'o', 't', 'd' -> [20]byte
   Oracle, token and dispute contract script hashes set at deploy.
 - 'f' -> [20]byte
   Optional fee collector account.
 - 'g' -> int
   Submission fee charged per accepted proof.
 - "admin" -> [20]byte
   Administrator account.

# Proof store
Contract stores every accepted verification record and the audit trail of
administrative status changes.
*/
