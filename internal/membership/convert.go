package membership

import (
	"time"

	"memberdir-backend/internal/domain"
)

// BuildEmployments emits one employment entry per known tag in the status set,
// in submission order, each populated from its validated section and marked
// active as of now. Unknown tags and "other" produce no entry.
func BuildEmployments(set StatusSet, p *domain.ProfessionalInfo, now time.Time) []domain.Employment {
	var out []domain.Employment
	for _, tag := range set {
		e := domain.Employment{Type: tag, IsActive: true, StartDate: now}
		switch tag {
		case domain.TagEmployed:
			e.Employed = p.EmploymentDetails
		case domain.TagBusinessOwner:
			e.Businesses = p.Businesses
		case domain.TagStudent:
			e.Student = p.Student
		default:
			continue
		}
		out = append(out, e)
	}
	return out
}
