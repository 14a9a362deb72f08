package membership

import (
	"testing"
	"time"

	"memberdir-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildEmployments(t *testing.T) {
	now := time.Now().UTC()
	prof := &domain.ProfessionalInfo{
		EmploymentDetails: &domain.EmploymentDetails{
			CompanyName: "Acme", JobTitle: "Engineer", Specialization: "Widgets",
		},
		Businesses: []domain.Business{
			{BusinessName: "Side Shop", Industry: "Retail", Description: "Widgets retail"},
		},
		Student: &domain.StudentDetails{},
	}

	t.Run("OneEntryPerTagInOrder", func(t *testing.T) {
		set := StatusSet{domain.TagBusinessOwner, domain.TagEmployed}
		employments := BuildEmployments(set, prof, now)
		require.Len(t, employments, 2)

		assert.Equal(t, domain.TagBusinessOwner, employments[0].Type)
		assert.Equal(t, prof.Businesses, employments[0].Businesses)
		assert.Equal(t, domain.TagEmployed, employments[1].Type)
		assert.Equal(t, prof.EmploymentDetails, employments[1].Employed)

		for _, e := range employments {
			assert.True(t, e.IsActive)
			assert.Equal(t, now, e.StartDate)
		}
	})

	t.Run("StudentEntry", func(t *testing.T) {
		employments := BuildEmployments(StatusSet{domain.TagStudent}, prof, now)
		require.Len(t, employments, 1)
		assert.Equal(t, prof.Student, employments[0].Student)
	})

	t.Run("OtherAndUnknownTagsProduceNothing", func(t *testing.T) {
		set := StatusSet{domain.TagOther, domain.EmploymentTag("retired")}
		assert.Empty(t, BuildEmployments(set, prof, now))
	})
}
