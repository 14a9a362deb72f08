package membership

import "memberdir-backend/internal/domain"

// ResolveVisibility produces the canonical two-tier visibility map for a
// request. With no explicit visibility the public-able fields follow the
// consent flags; an explicit map is collapsed field by field, with the
// deprecated "members" tier and missing sub-fields both becoming private.
func ResolveVisibility(consent domain.ConsentFlags, v *domain.Visibility) domain.Visibility {
	if v == nil {
		listed := tierFor(consent.DisplayInYellowPages)
		return domain.Visibility{
			Profile: listed,
			Contact: domain.ContactVisibility{
				Email:   listed,
				Phone:   tierFor(consent.DisplayPhonePublicly),
				Address: domain.TierPrivate,
			},
			Employment: domain.EmploymentVisibility{
				Current: listed,
				History: domain.TierPrivate,
			},
			Social: listed,
		}
	}

	return domain.Visibility{
		Profile: collapseTier(v.Profile),
		Contact: domain.ContactVisibility{
			Email:   collapseTier(v.Contact.Email),
			Phone:   collapseTier(v.Contact.Phone),
			Address: collapseTier(v.Contact.Address),
		},
		Employment: domain.EmploymentVisibility{
			Current: collapseTier(v.Employment.Current),
			History: collapseTier(v.Employment.History),
		},
		Social: collapseTier(v.Social),
	}
}

func tierFor(public bool) domain.Tier {
	if public {
		return domain.TierPublic
	}
	return domain.TierPrivate
}

// collapseTier maps the legacy three-tier vocabulary onto two tiers. Anything
// that is not explicitly public (members, empty, unknown) is private.
func collapseTier(t domain.Tier) domain.Tier {
	if t == domain.TierPublic {
		return domain.TierPublic
	}
	return domain.TierPrivate
}
