package discipline

import "github.com/noah-isme/hr-disciplinary-api/internal/models"

// Recommendation is the advisory next sanction for a case.
type Recommendation string

const (
	RecommendVerbalWarning            Recommendation = "verbal_warning"
	RecommendWrittenWarning           Recommendation = "written_warning"
	RecommendFinalWarning             Recommendation = "final_warning"
	RecommendSuspension               Recommendation = "suspension"
	RecommendTerminationWithNotice    Recommendation = "termination_with_notice"
	RecommendTerminationWithoutNotice Recommendation = "termination_without_notice"
)

// Thresholds after which repeated, individually warned conduct justifies
// dismissal without notice.
const (
	AbsenceDismissalDays      = 5
	LateArrivalDismissalCount = 8
)

// RecommendationInput gathers everything the recommender looks at.
type RecommendationInput struct {
	Severity                models.Severity
	ImmediateDismissal      bool
	Prior                   models.WarningCounts
	UnauthorizedAbsenceDays int
	LateArrivalCount        int
	AbsenceWarningsIssued   bool
}

// InputForCase builds the recommender input from a case and the employee's
// prior closed-case outcomes.
func InputForCase(c *models.DisciplinaryCase, prior models.WarningCounts) RecommendationInput {
	return RecommendationInput{
		Severity:                c.Severity,
		ImmediateDismissal:      c.ImmediateDismissal,
		Prior:                   prior,
		UnauthorizedAbsenceDays: c.UnauthorizedAbsenceDays,
		LateArrivalCount:        c.LateArrivalCount,
		AbsenceWarningsIssued:   c.AbsenceWarningsIssued,
	}
}

// Recommend applies the progressive discipline table. The first matching rule
// wins; the result is advisory and never blocks a transition.
func Recommend(in RecommendationInput) Recommendation {
	switch {
	case in.ImmediateDismissal:
		return RecommendTerminationWithoutNotice
	case in.UnauthorizedAbsenceDays >= AbsenceDismissalDays && in.AbsenceWarningsIssued:
		return RecommendTerminationWithoutNotice
	case in.LateArrivalCount >= LateArrivalDismissalCount && in.AbsenceWarningsIssued:
		return RecommendTerminationWithoutNotice
	case in.Prior.Final >= 1:
		return RecommendTerminationWithNotice
	case in.Prior.Written >= 1:
		return RecommendFinalWarning
	case in.Prior.Verbal >= 1:
		return RecommendWrittenWarning
	}

	switch in.Severity {
	case models.SeverityGross:
		return RecommendTerminationWithoutNotice
	case models.SeveritySerious:
		return RecommendFinalWarning
	case models.SeverityModerate:
		return RecommendWrittenWarning
	default:
		return RecommendVerbalWarning
	}
}

// DefaultAction is the sanction an offense implies before progressive history
// is considered.
func DefaultAction(o *models.OffenseClassification) models.ActionType {
	if o.ImmediateDismissal {
		return models.ActionTermination
	}
	switch o.Severity {
	case models.SeverityModerate:
		return models.ActionWrittenWarning
	case models.SeveritySerious:
		return models.ActionFinalWarning
	case models.SeverityGross:
		return models.ActionTermination
	default:
		return models.ActionVerbalWarning
	}
}

// NoticePeriodMonths suggests the Art. 28 notice period from length of
// service: under a year gives 1 month, up to nine years 2, beyond that 3.
func NoticePeriodMonths(serviceYears float64) int {
	switch {
	case serviceYears < 1:
		return 1
	case serviceYears <= 9:
		return 2
	default:
		return 3
	}
}
