package membership

import "memberdir-backend/internal/domain"

// ValidationError is a user-facing rejection of a submission. Exactly one is
// reported per submission even when several sections are invalid; the rule
// order below decides which one wins.
type ValidationError string

func (e ValidationError) Error() string { return string(e) }

const (
	errOtherExclusive     = ValidationError("employment status 'other' cannot be combined with another status")
	errFirstNameRequired  = ValidationError("first name is required")
	errLastNameRequired   = ValidationError("last name is required")
	errEmailRequired      = ValidationError("email address is required")
	errPhoneRequired      = ValidationError("phone number is required")
	errTermsNotAccepted   = ValidationError("terms and conditions must be accepted")
	errStatusRequired     = ValidationError("employment status is required")
	errEmployedIncomplete = ValidationError("company name, job title and specialization are required for employed members")
	errBusinessIncomplete = ValidationError("at least one business with name, industry and description is required for business owners")
)

// sectionRule ties an employment status tag to its required-section predicate.
// A nil check means the tag has no hard requirement. The student entry is
// intentionally rule-less; changing that policy is a one-line edit here.
type sectionRule struct {
	tag   domain.EmploymentTag
	check func(p *domain.ProfessionalInfo) bool
	err   ValidationError
}

var sectionRules = []sectionRule{
	{tag: domain.TagEmployed, check: employedSectionComplete, err: errEmployedIncomplete},
	{tag: domain.TagBusinessOwner, check: businessSectionComplete, err: errBusinessIncomplete},
	{tag: domain.TagStudent, check: nil},
}

// Validate applies the full submission rule set and returns the single most
// relevant ValidationError, or nil. It expects NormalizeBusinesses to have run
// first so the legacy singular business shape is already folded in.
func Validate(req *domain.MembershipRequest) error {
	if req.Personal.FirstName == "" {
		return errFirstNameRequired
	}
	if req.Personal.LastName == "" {
		return errLastNameRequired
	}
	if req.Contact.Email == "" {
		return errEmailRequired
	}
	if req.Contact.Phone == "" {
		return errPhoneRequired
	}
	if !req.Consent.TermsAccepted {
		return errTermsNotAccepted
	}

	set, err := ParseStatusSet(req.Professional.EmploymentStatus)
	if err != nil {
		return err
	}
	if set.Empty() {
		return errStatusRequired
	}

	for _, rule := range sectionRules {
		if rule.check == nil || !set.Contains(rule.tag) {
			continue
		}
		if !rule.check(&req.Professional) {
			return rule.err
		}
	}
	return nil
}

func employedSectionComplete(p *domain.ProfessionalInfo) bool {
	d := p.EmploymentDetails
	return d != nil && d.CompanyName != "" && d.JobTitle != "" && d.Specialization != ""
}

func businessSectionComplete(p *domain.ProfessionalInfo) bool {
	for i := range p.Businesses {
		if businessComplete(&p.Businesses[i]) {
			return true
		}
	}
	return false
}
