package disputeconst

const (
	// StakeAmount is the stake escrowed by a challenger when a dispute is
	// raised, in the smallest token unit.
	StakeAmount = 1_0000_0000

	// SlashRate is the percentage of the stake forfeited by a losing
	// challenger.
	SlashRate = 50

	// BountyAmount is the extra payout, one stake unit, earned by a
	// winning challenger on top of the returned stake.
	BountyAmount = StakeAmount
)
