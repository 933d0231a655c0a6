package rewardconst

const (
	// MinNDVIScore is the vegetation score threshold below which a period
	// earns no reward.
	MinNDVIScore = 5000

	// RewardRate is the amount of tokens paid per area unit and
	// improvement factor.
	RewardRate = 1

	// AreaUnit is the parcel area, in square meters, earning one reward
	// rate unit.
	AreaUnit = 10

	// ImprovementStep is the score delta raising the improvement factor
	// by one.
	ImprovementStep = 1000
)
