package domain

// Reward economy constants. These are product-level rules, not tunables:
// changing them changes what persisted balances mean.
const (
	// ActivityReward is the honey-drop credit for the first completion of an activity.
	ActivityReward = 33

	// BadgeReward is the honey-drop credit for claiming a day badge.
	BadgeReward = 33

	// RedeemCost is the honey-drop debit for issuing one voucher.
	RedeemCost = 990

	// VoucherAmount is the currency-denominated payout carried by a voucher.
	VoucherAmount = 10

	// DailyActivityQuota is the number of first-time activity completions
	// allowed per local calendar day.
	DailyActivityQuota = 3

	// ChallengeDays is the number of day slots in every strategy challenge.
	ChallengeDays = 30
)

// VoucherCodePrefix prefixes every issued voucher code.
const VoucherCodePrefix = "SPEECHIVE-"
