package domain

import (
	"testing"
	"time"
)

func dobYearsAgo(years int) *time.Time {
	dob := time.Now().UTC().AddDate(-years, 0, -2)
	return &dob
}

func fullProfile(id string) Profile {
	return Profile{
		UserID:           id,
		Gender:           "MALE",
		DOB:              dobYearsAgo(30),
		City:             "Lahore",
		State:            "Punjab",
		Country:          "PK",
		Education:        EducationMasters,
		Profession:       "ENGINEER",
		Religion:         "ISLAM",
		PurposeDomain:    "FAITH",
		PurposeArchetype: "TEACHER",
		PurposeModality:  "COMMUNITY",
		Interests:        []string{"reading", "hiking", "coding"},
		Smoke:            "NEVER",
		Alcohol:          "NEVER",
		Drugs:            "NEVER",
		IsActive:         true,
	}
}

func TestCompatibilityScoreIdenticalProfiles(t *testing.T) {
	a := fullProfile("a")
	b := fullProfile("b")
	if got := CompatibilityScore(a, b); got != 100 {
		t.Fatalf("expected 100 for identical profiles, got %d", got)
	}
}

func TestCompatibilityScoreDeterministic(t *testing.T) {
	a := fullProfile("a")
	b := fullProfile("b")
	b.City = "Karachi"
	b.Interests = []string{"reading", "chess"}
	first := CompatibilityScore(a, b)
	second := CompatibilityScore(a, b)
	if first != second {
		t.Fatalf("expected deterministic score, got %d then %d", first, second)
	}
}

func TestCompatibilityScoreSymmetric(t *testing.T) {
	pairs := []struct {
		name string
		a, b Profile
	}{
		{"full vs full", fullProfile("a"), fullProfile("b")},
		{"full vs empty", fullProfile("a"), Profile{UserID: "b"}},
		{"empty vs empty", Profile{UserID: "a"}, Profile{UserID: "b"}},
	}
	pairs[0].b.Education = EducationPrimary
	pairs[0].b.City = "Karachi"
	pairs[0].b.Interests = []string{"hiking"}
	for _, tc := range pairs {
		t.Run(tc.name, func(t *testing.T) {
			ab := CompatibilityScore(tc.a, tc.b)
			ba := CompatibilityScore(tc.b, tc.a)
			if ab != ba {
				t.Fatalf("expected symmetry, got score(a,b)=%d score(b,a)=%d", ab, ba)
			}
		})
	}
}

func TestCompatibilityScoreBounds(t *testing.T) {
	profiles := []Profile{
		{},
		fullProfile("a"),
		{Interests: []string{"x"}},
		{Education: "SOMETHING_UNKNOWN"},
	}
	for _, a := range profiles {
		for _, b := range profiles {
			got := CompatibilityScore(a, b)
			if got < 0 || got > 100 {
				t.Fatalf("score out of bounds: %d", got)
			}
		}
	}
}

func TestCompatibilityScorePurposeDomainOnly(t *testing.T) {
	a := fullProfile("a")
	a.Education = EducationPhD
	b := Profile{
		UserID:           "b",
		DOB:              dobYearsAgo(60),
		City:             "Karachi",
		State:            "Sindh",
		Education:        EducationNone,
		PurposeDomain:    "FAITH",
		PurposeArchetype: "HEALER",
		PurposeModality:  "SOLO",
		Interests:        []string{"painting"},
		Smoke:            "SOCIALLY",
		Alcohol:          "SOCIALLY",
		Drugs:            "SOCIALLY",
	}
	// Solo coincide purpose_domain: 30 de 130 puntos alcanzables.
	if got := CompatibilityScore(a, b); got != 23 {
		t.Fatalf("expected 23, got %d", got)
	}
}

func TestCompatibilityScoreEducationMonotonic(t *testing.T) {
	ranks := []string{
		EducationMasters,    // diff 0
		EducationBachelors,  // diff 1
		EducationHighSchool, // diff 2
		EducationSecondary,  // diff 3
		EducationPrimary,    // diff 4
		EducationNone,       // diff 5
	}
	a := fullProfile("a")
	prev := 101
	for _, edu := range ranks {
		b := fullProfile("b")
		b.Education = edu
		got := CompatibilityScore(a, b)
		if got > prev {
			t.Fatalf("education gap %s increased score: %d > %d", edu, got, prev)
		}
		prev = got
	}
}

func TestCompatibilityScoreAgeMonotonic(t *testing.T) {
	a := fullProfile("a")
	prev := 101
	for _, years := range []int{30, 33, 38, 45, 55} {
		b := fullProfile("b")
		b.DOB = dobYearsAgo(years)
		got := CompatibilityScore(a, b)
		if got > prev {
			t.Fatalf("age gap %d increased score: %d > %d", years, got, prev)
		}
		prev = got
	}
}

func TestCompatibilityScoreAbsentDOBDefaultsTo25(t *testing.T) {
	a := Profile{UserID: "a"}
	withDOB := Profile{UserID: "b", DOB: dobYearsAgo(25)}
	withoutDOB := Profile{UserID: "b"}
	if CompatibilityScore(a, withDOB) != CompatibilityScore(a, withoutDOB) {
		t.Fatalf("expected absent dob to behave as age 25")
	}
}

func TestCompatibilityScoreCitySupersedesState(t *testing.T) {
	a := fullProfile("a")
	sameCity := fullProfile("b")
	sameState := fullProfile("c")
	sameState.City = "Karachi"
	differentAll := fullProfile("d")
	differentAll.City = "Karachi"
	differentAll.State = "Sindh"

	cityScore := CompatibilityScore(a, sameCity)
	stateScore := CompatibilityScore(a, sameState)
	noneScore := CompatibilityScore(a, differentAll)
	if !(cityScore > stateScore && stateScore > noneScore) {
		t.Fatalf("expected city > state > none, got %d %d %d", cityScore, stateScore, noneScore)
	}
}

func TestCompatibilityScoreInterestOverlap(t *testing.T) {
	a := fullProfile("a")
	partial := fullProfile("b")
	partial.Interests = []string{"reading", "chess", "golf"}
	none := fullProfile("c")
	none.Interests = []string{"chess", "golf", "tennis"}

	fullScore := CompatibilityScore(a, fullProfile("d"))
	partialScore := CompatibilityScore(a, partial)
	noneScore := CompatibilityScore(a, none)
	if !(fullScore > partialScore && partialScore > noneScore) {
		t.Fatalf("expected overlap ordering, got %d %d %d", fullScore, partialScore, noneScore)
	}
}

func TestCompatibilityScoreAbsentFieldsNeverMatch(t *testing.T) {
	a := Profile{UserID: "a"}
	b := Profile{UserID: "b"}
	withPurpose := fullProfile("c")
	// Dos campos ausentes no cuentan como coincidencia.
	if CompatibilityScore(a, b) >= CompatibilityScore(withPurpose, fullProfile("d")) {
		t.Fatalf("expected absent fields to contribute zero")
	}
}

func TestAgeAtFloors(t *testing.T) {
	now := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	cases := []struct {
		dob  time.Time
		want int
	}{
		{time.Date(2000, 8, 28, 0, 0, 0, 0, time.UTC), 25},
		{time.Date(2000, 8, 29, 0, 0, 0, 0, time.UTC), 25},
		{time.Date(2001, 8, 27, 0, 0, 0, 0, time.UTC), 25},
		{time.Date(2001, 8, 30, 0, 0, 0, 0, time.UTC), 24},
	}
	for _, tc := range cases {
		if got := AgeAt(tc.dob, now); got != tc.want {
			t.Fatalf("AgeAt(%s) = %d, want %d", tc.dob.Format("2006-01-02"), got, tc.want)
		}
	}
}
