package eligibility

import (
	"testing"
	"time"

	"bloodbank-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func record(donated string) domain.DonationRecord {
	return domain.DonationRecord{
		DonationDate: date(donated),
		HIV:          domain.ResultNonReactive,
		HBsAg:        domain.ResultNonReactive,
		HCV:          domain.ResultNonReactive,
		Syphilis:     domain.ResultNonReactive,
		Malaria:      domain.ResultNonReactive,
	}
}

func TestEvaluate_EmptyHistory(t *testing.T) {
	donor := &domain.Donor{Gender: domain.GenderMale}
	v := Evaluate(donor, nil, date("2024-06-01"))
	assert.False(t, v.Blocked)
	assert.False(t, v.Warning)
	assert.Empty(t, v.Message)
}

func TestEvaluate_GapRuleBoundaries(t *testing.T) {
	tests := []struct {
		name    string
		gender  domain.Gender
		last    string
		asOf    string
		blocked bool
	}{
		{"male day 89 blocked", domain.GenderMale, "2024-01-01", "2024-03-30", true},
		{"male day 90 allowed", domain.GenderMale, "2024-01-01", "2024-03-31", false},
		{"male day 91 allowed", domain.GenderMale, "2024-01-01", "2024-04-01", false},
		{"female day 119 blocked", domain.GenderFemale, "2024-01-01", "2024-04-29", true},
		{"female day 120 allowed", domain.GenderFemale, "2024-01-01", "2024-04-30", false},
		{"female day 90 blocked", domain.GenderFemale, "2024-01-01", "2024-03-31", true},
		{"same day blocked", domain.GenderMale, "2024-01-01", "2024-01-01", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			donor := &domain.Donor{Gender: tt.gender}
			v := Evaluate(donor, []domain.DonationRecord{record(tt.last)}, date(tt.asOf))
			assert.Equal(t, tt.blocked, v.Blocked)
			if tt.blocked {
				assert.Equal(t, RuleGap, v.Rule)
			}
		})
	}
}

func TestEvaluate_GapMessageCitesDaysAndRequirement(t *testing.T) {
	donor := &domain.Donor{Gender: domain.GenderMale}
	v := Evaluate(donor, []domain.DonationRecord{record("2024-01-01")}, date("2024-03-01"))
	assert.True(t, v.Blocked)
	assert.Contains(t, v.Message, "60 days ago")
	assert.Contains(t, v.Message, "90 days")
}

func TestEvaluate_TTIPermanentDeferral(t *testing.T) {
	donor := &domain.Donor{Gender: domain.GenderMale}
	for _, set := range []func(*domain.DonationRecord){
		func(r *domain.DonationRecord) { r.HIV = domain.ResultReactive },
		func(r *domain.DonationRecord) { r.HBsAg = domain.ResultReactive },
		func(r *domain.DonationRecord) { r.HCV = domain.ResultReactive },
		func(r *domain.DonationRecord) { r.Syphilis = domain.ResultReactive },
	} {
		r := record("2024-01-01")
		set(&r)
		// Gap long satisfied (200 days): the reactive history still blocks.
		v := Evaluate(donor, []domain.DonationRecord{r}, date("2024-07-19"))
		assert.True(t, v.Blocked)
		assert.Equal(t, RuleTTI, v.Rule)
		assert.Contains(t, v.Message, "CRITICAL ALERT")
		assert.NotContains(t, v.Message, "minimum gap")
	}
}

func TestEvaluate_GapRuleCheckedBeforeTTI(t *testing.T) {
	donor := &domain.Donor{Gender: domain.GenderMale}
	r := record("2024-01-01")
	r.HIV = domain.ResultReactive
	v := Evaluate(donor, []domain.DonationRecord{r}, date("2024-02-01"))
	assert.True(t, v.Blocked)
	assert.Equal(t, RuleGap, v.Rule)
}

func TestEvaluate_MalariaAdvisory(t *testing.T) {
	donor := &domain.Donor{Gender: domain.GenderFemale}
	r := record("2024-01-01")
	r.Malaria = domain.ResultReactive
	v := Evaluate(donor, []domain.DonationRecord{r}, date("2024-07-01"))
	assert.False(t, v.Blocked)
	assert.True(t, v.Warning)
	assert.Equal(t, RuleMalaria, v.Rule)
}

func TestEvaluate_MalariaSuppressedWhenBlocked(t *testing.T) {
	donor := &domain.Donor{Gender: domain.GenderMale}
	r := record("2024-01-01")
	r.Malaria = domain.ResultReactive
	r.Syphilis = domain.ResultReactive
	v := Evaluate(donor, []domain.DonationRecord{r}, date("2024-07-01"))
	assert.True(t, v.Blocked)
	assert.False(t, v.Warning)
	assert.Equal(t, RuleTTI, v.Rule)
}

func TestEvaluate_OnlyMostRecentRecordConsulted(t *testing.T) {
	donor := &domain.Donor{Gender: domain.GenderMale}
	old := record("2023-01-01")
	old.HIV = domain.ResultReactive // older reactive record is ignored
	latest := record("2024-01-01")
	v := Evaluate(donor, []domain.DonationRecord{latest, old}, date("2024-05-01"))
	assert.False(t, v.Blocked)
}

func TestEvaluate_NonReactiveVariantsDoNotTrigger(t *testing.T) {
	donor := &domain.Donor{Gender: domain.GenderMale}
	r := record("2024-01-01")
	r.HIV = "Positive" // only the exact string "Reactive" triggers deferral
	v := Evaluate(donor, []domain.DonationRecord{r}, date("2024-07-01"))
	assert.False(t, v.Blocked)
}

func TestEvaluate_96DayGapMaleAllowed(t *testing.T) {
	donor := &domain.Donor{Gender: domain.GenderMale}
	v := Evaluate(donor, []domain.DonationRecord{record("2024-01-10")}, date("2024-04-15"))
	assert.False(t, v.Blocked)
	assert.False(t, v.Warning)
}

func TestMinimumGapDays(t *testing.T) {
	assert.Equal(t, 90, MinimumGapDays(domain.GenderMale))
	assert.Equal(t, 120, MinimumGapDays(domain.GenderFemale))
	assert.Equal(t, 120, MinimumGapDays(domain.Gender("")))
}
