package common

var (
	feePrefix    = []byte{0x01}
	rewardPrefix = []byte{0x02}
	stakePrefix  = []byte{0x03}
	refundPrefix = []byte{0x04}
	bountyPrefix = []byte{0x05}
)

// FeeTransferDetails marks a token transfer as a proof submission fee for the
// given parcel and period.
func FeeTransferDetails(parcelID, period int) []byte {
	return append(feePrefix, periodKey(parcelID, period)...)
}

// RewardTransferDetails marks a token transfer as a reward payout for the
// given parcel and period.
func RewardTransferDetails(parcelID, period int) []byte {
	return append(rewardPrefix, periodKey(parcelID, period)...)
}

// StakeTransferDetails marks a token transfer as a dispute stake escrow.
func StakeTransferDetails(disputeID []byte) []byte {
	return append(stakePrefix, disputeID...)
}

// RefundTransferDetails marks a token transfer as a dispute stake refund.
func RefundTransferDetails(disputeID []byte) []byte {
	return append(refundPrefix, disputeID...)
}

// BountyTransferDetails marks a token transfer as a dispute bounty payout.
func BountyTransferDetails(disputeID []byte) []byte {
	return append(bountyPrefix, disputeID...)
}

func periodKey(parcelID, period int) []byte {
	return append(FixedIntKey(parcelID), FixedIntKey(period)...)
}
