package verificationconst

const (
	// RecencyWindow is the number of blocks (~1 day) after the attested
	// period during which a proof is still accepted.
	RecencyWindow = 144

	// MaxNDVIScore is the upper bound of the normalized vegetation score.
	MaxNDVIScore = 10000

	// MaxConfidence is the upper bound of the proof confidence percentage.
	MaxConfidence = 100
)
