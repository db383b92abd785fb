// Package eligibility implements the donor eligibility rule engine.
// Evaluate is pure domain logic: no I/O, no side effects. Callers pass the
// donor, their donation history sorted by date descending, and the date the
// verdict should hold for.
package eligibility

import (
	"fmt"
	"time"

	"bloodbank-backend/internal/domain"
)

// Rule identifiers, used for metrics labels and tests.
const (
	RuleGap     = "gap"
	RuleTTI     = "tti"
	RuleMalaria = "malaria"
)

// Minimum days required between two donations, by gender.
const (
	MinGapDaysMale   = 90
	MinGapDaysFemale = 120
)

// Verdict is the outcome of an eligibility evaluation. A blocked verdict
// must reject the donation; a warning verdict allows it but advises the
// operator. Rule names the rule that fired, empty when nothing did.
type Verdict struct {
	Blocked bool   `json:"blocked"`
	Warning bool   `json:"warning"`
	Message string `json:"message"`
	Rule    string `json:"rule,omitempty"`
}

// MinimumGapDays returns the required inter-donation gap for a gender.
// Unknown genders get the stricter female gap.
func MinimumGapDays(g domain.Gender) int {
	if g == domain.GenderMale {
		return MinGapDaysMale
	}
	return MinGapDaysFemale
}

// Evaluate applies the deferral rules in strict precedence order against the
// most recent donation record. historyDesc must be sorted by donation date
// descending; only historyDesc[0] is consulted. An empty history is always
// eligible.
//
// Rule order:
//  1. inter-donation gap (day-granularity, gender-dependent) - blocks
//  2. permanent TTI deferral (any of HIV/HBsAg/HCV/Syphilis Reactive) - blocks
//  3. malaria advisory (Malaria Reactive) - warns only
//
// The first blocking rule wins; the advisory fires only when nothing blocked.
func Evaluate(donor *domain.Donor, historyDesc []domain.DonationRecord, asOf time.Time) Verdict {
	if len(historyDesc) == 0 {
		return Verdict{}
	}
	last := &historyDesc[0]

	gap := daysBetween(last.DonationDate, asOf)
	required := MinimumGapDays(donor.Gender)
	if gap < required {
		return Verdict{
			Blocked: true,
			Rule:    RuleGap,
			Message: fmt.Sprintf(
				"STOP: %s donor last donated %d days ago on %s; a minimum gap of %d days is required.",
				donor.Gender, gap, last.DonationDate.Format("2006-01-02"), required),
		}
	}

	if last.HasReactiveTTI() {
		return Verdict{
			Blocked: true,
			Rule:    RuleTTI,
			Message: "CRITICAL ALERT: previous donation screening was REACTIVE for a transfusion-transmissible infection (HIV/HBsAg/HCV/Syphilis). Donor is permanently deferred.",
		}
	}

	if last.Malaria == domain.ResultReactive {
		return Verdict{
			Warning: true,
			Rule:    RuleMalaria,
			Message: "Previous donation screening was Malaria reactive. Re-verify donor fitness before accepting this donation.",
		}
	}

	return Verdict{}
}

// daysBetween counts whole calendar days from one date to another,
// ignoring time-of-day and zone. Exact day counts are required here: a
// days-per-month approximation erodes the medical safety margin at rule
// boundaries.
func daysBetween(from, to time.Time) int {
	f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(t.Sub(f).Hours() / 24)
}
