package membership

import "memberdir-backend/internal/domain"

// businessComplete reports whether the three required business fields are set.
func businessComplete(b *domain.Business) bool {
	return b.BusinessName != "" && b.Industry != "" && b.Description != ""
}

// NormalizeBusinesses reconciles the legacy singular business field with the
// businesses array into one canonical list. If the array already carries a
// complete entry it is kept unchanged; otherwise a complete singular business
// replaces it. The function is idempotent and runs at every entry point
// (submission, pre-persist and approval) instead of hiding in a storage hook.
func NormalizeBusinesses(p *domain.ProfessionalInfo) {
	for i := range p.Businesses {
		if businessComplete(&p.Businesses[i]) {
			return
		}
	}
	if p.Business != nil && businessComplete(p.Business) {
		p.Businesses = []domain.Business{*p.Business}
	}
}
