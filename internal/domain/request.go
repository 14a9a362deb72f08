package domain

import "time"

type LifecycleState string

const (
	StatePending     LifecycleState = "PENDING"
	StateApproved    LifecycleState = "APPROVED"
	StateNeedsUpdate LifecycleState = "NEEDS_UPDATE"
)

// EmploymentTag is one value of the comma-joined employment status field.
type EmploymentTag string

const (
	TagEmployed      EmploymentTag = "employed"
	TagBusinessOwner EmploymentTag = "business_owner"
	TagStudent       EmploymentTag = "student"
	TagOther         EmploymentTag = "other"
)

type PersonalInfo struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	AgeRange  string `json:"ageRange,omitempty"`
}

type ContactInfo struct {
	Email   string `json:"email"`
	Phone   string `json:"phoneNumber"`
	Address string `json:"address,omitempty"`
}

type EmploymentDetails struct {
	CompanyName    string `json:"companyName"`
	JobTitle       string `json:"jobTitle"`
	Specialization string `json:"specialization"`
}

type Business struct {
	BusinessName string `json:"businessName"`
	Industry     string `json:"industry"`
	Description  string `json:"description"`
	Website      string `json:"website,omitempty"`
	Phone        string `json:"phoneNumber,omitempty"`
	Email        string `json:"email,omitempty"`
}

type StudentDetails struct {
	School             string `json:"school,omitempty"`
	FieldOfStudy       string `json:"fieldOfStudy,omitempty"`
	ExpectedGraduation string `json:"expectedGraduation,omitempty"`
}

// ProfessionalInfo carries the employment-status-driven sections of a request.
// Business is the legacy singular shape; it is folded into Businesses before
// validation and never read downstream of normalization.
type ProfessionalInfo struct {
	EmploymentStatus  string             `json:"employmentStatus"`
	EmploymentDetails *EmploymentDetails `json:"employmentDetails,omitempty"`
	Business          *Business          `json:"business,omitempty"`
	Businesses        []Business         `json:"businesses,omitempty"`
	Student           *StudentDetails    `json:"student,omitempty"`
}

type SocialPresence struct {
	LinkedIn  string `json:"linkedin,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	Website   string `json:"website,omitempty"`
}

type ConsentFlags struct {
	TermsAccepted        bool `json:"termsAccepted"`
	DisplayInYellowPages bool `json:"displayInYellowPages"`
	DisplayPhonePublicly bool `json:"displayPhonePublicly"`
}

type MembershipRequest struct {
	ID int32 `json:"id"`
	// Identity is the external-auth subject the request belongs to; one
	// request lineage exists per identity.
	Identity string `json:"identity"`
	// SubmissionKey is the idempotency key (identity + creation timestamp)
	// backed by a unique index so concurrent duplicate inserts fail safely.
	SubmissionKey string            `json:"-"`
	Personal      PersonalInfo      `json:"personal"`
	Contact       ContactInfo       `json:"contact"`
	Professional  ProfessionalInfo  `json:"professionalInfo"`
	Social        *SocialPresence   `json:"socialPresence,omitempty"`
	Consent       ConsentFlags      `json:"privacyConsent"`
	Visibility    *Visibility       `json:"visibility,omitempty"`
	State         LifecycleState    `json:"state"`
	Notes         string            `json:"notes,omitempty"`
	CreatedOn     time.Time         `json:"createdOn"`
	UpdatedOn     time.Time         `json:"updatedOn"`
}
