package domain

// Profile holds the caregiver/child record and the honey-drop balance.
// The balance lives here because it is persisted with the profile record,
// mirroring how the rest of the profile travels.
type Profile struct {
	CaregiverName     string `json:"caregiver_name"`
	ChildName         string `json:"child_name"`
	ChildDOB          string `json:"child_dob,omitempty"` // ISO date, advisory
	ParentalEducation string `json:"parental_education,omitempty"`
	HomeLanguage      string `json:"home_language,omitempty"`
	HoneyDrops        int    `json:"honey_drops"`
}

// Voucher is the record produced by redeeming honey drops. Issuing one does
// not move money; it only witnesses the exchange.
type Voucher struct {
	Code       string `json:"code"`
	Amount     int    `json:"amount"`
	IssueDate  string `json:"issue_date"` // dd/mm/yyyy
	RedeemedTo string `json:"redeemed_to"`
}
