// Package gpa implements credit-weighted grade point aggregation. All
// functions are pure; callers assemble entries from whatever storage they use.
package gpa

import (
	"math"
	"sort"
)

// Entry is one graded result paired with the credit weight of its subject.
type Entry struct {
	Points   float64
	Credits  int
	Semester int
}

// Summary holds the aggregate over a set of entries. GPA and TotalGradePoints
// carry two decimal places; TotalCredits is an exact integer sum.
type Summary struct {
	GPA              float64 `json:"gpa"`
	TotalCredits     int     `json:"totalCredits"`
	TotalGradePoints float64 `json:"totalGradePoints"`
}

// SemesterSummary is the per-semester slice of a breakdown.
type SemesterSummary struct {
	Semester int     `json:"semester"`
	GPA      float64 `json:"gpa"`
	Credits  int     `json:"credits"`
}

var gradePoints = map[string]float64{
	"A":  4.00,
	"A-": 3.70,
	"B+": 3.30,
	"B":  3.00,
	"B-": 2.70,
	"C+": 2.30,
	"C":  2.00,
	"C-": 1.70,
	"D":  1.00,
	"F":  0.00,
}

// PointsFor maps a letter grade to its grade point value. Unknown grades map
// to 0 rather than failing, so a bad row degrades the average instead of
// breaking aggregation.
func PointsFor(grade string) float64 {
	return gradePoints[grade]
}

// KnownGrade reports whether the grade is part of the fixed table.
func KnownGrade(grade string) bool {
	_, ok := gradePoints[grade]
	return ok
}

// Calculate reduces entries to a credit-weighted summary. An empty input
// yields the zero summary without attempting a division.
func Calculate(entries []Entry) Summary {
	if len(entries) == 0 {
		return Summary{}
	}

	var gradePointSum float64
	var creditSum int
	for _, entry := range entries {
		gradePointSum += entry.Points * float64(entry.Credits)
		creditSum += entry.Credits
	}

	var average float64
	if creditSum > 0 {
		average = gradePointSum / float64(creditSum)
	}

	return Summary{
		GPA:              round2(average),
		TotalCredits:     creditSum,
		TotalGradePoints: round2(gradePointSum),
	}
}

// CalculateSemester aggregates only the entries recorded in the given semester.
func CalculateSemester(entries []Entry, semester int) Summary {
	filtered := make([]Entry, 0, len(entries))
	for _, entry := range entries {
		if entry.Semester == semester {
			filtered = append(filtered, entry)
		}
	}
	return Calculate(filtered)
}

// CalculateCumulative aggregates all entries across semesters (CGPA).
func CalculateCumulative(entries []Entry) Summary {
	return Calculate(entries)
}

// SemesterBreakdown returns one summary per distinct semester present in the
// input, ordered by ascending semester number.
func SemesterBreakdown(entries []Entry) []SemesterSummary {
	seen := map[int]bool{}
	semesters := make([]int, 0)
	for _, entry := range entries {
		if !seen[entry.Semester] {
			seen[entry.Semester] = true
			semesters = append(semesters, entry.Semester)
		}
	}
	sort.Ints(semesters)

	breakdown := make([]SemesterSummary, 0, len(semesters))
	for _, semester := range semesters {
		summary := CalculateSemester(entries, semester)
		breakdown = append(breakdown, SemesterSummary{
			Semester: semester,
			GPA:      summary.GPA,
			Credits:  summary.TotalCredits,
		})
	}
	return breakdown
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
