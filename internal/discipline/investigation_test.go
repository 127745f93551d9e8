package discipline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/hr-disciplinary-api/internal/models"
	appErrors "github.com/noah-isme/hr-disciplinary-api/pkg/errors"
)

func TestNewInvestigation(t *testing.T) {
	c := baseCase()
	today := day("2024-01-15")

	_, _, err := NewInvestigation(models.Investigation{}, &c, today)
	assert.True(t, appErrors.IsValidation(err))

	inv, _, err := NewInvestigation(models.Investigation{OfficerID: "off-1"}, &c, today)
	require.NoError(t, err)
	assert.Equal(t, today, inv.StartDate)
	assert.Equal(t, models.InvestigationOngoing, inv.State)
	assert.Equal(t, "emp-1", inv.EmployeeID)

	_, _, err = NewInvestigation(models.Investigation{OfficerID: "off-1", EndDate: dayPtr("2024-01-01")}, &c, today)
	assert.True(t, appErrors.IsValidation(err))
}

func TestInvestigationStates(t *testing.T) {
	inv := models.Investigation{ID: "inv-1", OfficerID: "off-1", State: models.InvestigationOngoing, StartDate: day("2024-01-15")}

	suspended, _, err := SuspendInvestigation(inv)
	require.NoError(t, err)
	_, _, err = SuspendInvestigation(*suspended)
	assert.True(t, appErrors.IsUserError(err))

	resumed, _, err := ResumeInvestigation(*suspended)
	require.NoError(t, err)
	assert.Equal(t, models.InvestigationOngoing, resumed.State)

	findings := "corroborated by two witnesses"
	done, tr, err := CompleteInvestigation(*resumed, &findings, day("2024-01-20"))
	require.NoError(t, err)
	assert.Equal(t, models.InvestigationCompleted, done.State)
	assert.Equal(t, day("2024-01-20"), *done.EndDate)
	assert.Equal(t, "ongoing", tr.From)

	_, _, err = CompleteInvestigation(*done, nil, day("2024-01-21"))
	assert.True(t, appErrors.IsUserError(err))
}

func TestIsOverdue(t *testing.T) {
	inv := models.Investigation{State: models.InvestigationOngoing, EndDate: dayPtr("2024-01-20")}
	assert.False(t, IsOverdue(&inv, day("2024-01-20")))
	assert.True(t, IsOverdue(&inv, day("2024-01-21")))

	inv.State = models.InvestigationSuspended
	assert.False(t, IsOverdue(&inv, day("2024-01-21")))

	inv = models.Investigation{State: models.InvestigationOngoing}
	assert.False(t, IsOverdue(&inv, day("2030-01-01")))
}
