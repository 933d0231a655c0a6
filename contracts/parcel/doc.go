/*
Package parcel implements the land parcel registry of the GreenProof chain.

Parcels are plain keyed records owned by user accounts. The registry is a
collaborator of the verification engine: the reward contract resolves the
claimed parcel here to check ownership and to obtain the parcel area used by
the reward formula. Parcel ids are sequential per owner and are never reused;
transferring a parcel re-registers it under the receiving owner's next id.

# Contract notifications

RegisterParcel notification:

	RegisterParcel:
	  - name: owner
	    type: Hash160
	  - name: id
	    type: Integer
	  - name: areaSqMeters
	    type: Integer

TransferParcel notification:

	TransferParcel:
	  - name: owner
	    type: Hash160
	  - name: newOwner
	    type: Hash160
	  - name: id
	    type: Integer
	  - name: newId
	    type: Integer
*/
package parcel

/*
Contract storage model.

# Summary
Key-value storage format:
 - 'p' + [20]byte owner script hash + little-endian parcel id -> std.Serialize(Parcel)
   Registered parcels.
 - 'c' + [20]byte owner script hash -> int
   Per-owner sequential id counter.

# Registry
Contract stores one record per registered parcel and the id allocation
counter of every owner.
*/
