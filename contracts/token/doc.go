/*
Package token implements the fungible token contract of the GreenProof chain.

The token backs every financial flow of the verification engine: proof
submission fees, reward payouts, dispute stakes and bounties. Engine contracts
never keep balances of their own, they move value through this contract only.
A transfer is authorized either by the witness of the sender or, for contract
treasuries, by the sending contract itself being the direct caller. Mint, burn
and forced transfers are reserved for the chain committee.

# Contract notifications

Transfer notification:

	Transfer:
	  - name: from
	    type: Hash160
	  - name: to
	    type: Hash160
	  - name: amount
	    type: Integer

TransferX notification:

	TransferX:
	  - name: from
	    type: Hash160
	  - name: to
	    type: Hash160
	  - name: amount
	    type: Integer
	  - name: details
	    type: ByteArray
*/
package token

/*
Contract storage model.

# Summary
Key-value storage format:
 - 'a' + [20]byte account script hash -> std.Serialize(Account)
   Balance of the account.
 - "TotalSupply" -> int
   Amount of tokens in circulation.

# Accounting
Contract stores the balance of every token holder and the total supply.
Accounts with zero balance are removed from storage.
*/
