package domain

// Tier is a per-field disclosure level. The directory only distinguishes
// public and private; "members" is the deprecated middle tier of the old
// three-tier model and collapses to private.
type Tier string

const (
	TierPublic  Tier = "public"
	TierPrivate Tier = "private"
	TierMembers Tier = "members"
)

type ContactVisibility struct {
	Email   Tier `json:"email,omitempty"`
	Phone   Tier `json:"phoneNumber,omitempty"`
	Address Tier `json:"address,omitempty"`
}

type EmploymentVisibility struct {
	Current Tier `json:"current,omitempty"`
	History Tier `json:"history,omitempty"`
}

// Visibility is the per-field disclosure map controlling directory display.
type Visibility struct {
	Profile    Tier                 `json:"profile,omitempty"`
	Contact    ContactVisibility    `json:"contact"`
	Employment EmploymentVisibility `json:"employment"`
	Social     Tier                 `json:"social,omitempty"`
}
