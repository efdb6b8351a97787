package gpa

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPointsForCoversFullTable(t *testing.T) {
	expected := map[string]float64{
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
	for grade, points := range expected {
		require.Equal(t, points, PointsFor(grade), "grade %s", grade)
		require.True(t, KnownGrade(grade))
	}
}

func TestPointsForUnknownGradeIsZero(t *testing.T) {
	for _, grade := range []string{"", "E", "a", "A+", " B", "pass"} {
		require.Zero(t, PointsFor(grade), "grade %q", grade)
		require.False(t, KnownGrade(grade))
	}
}

func TestCalculateEmptyInput(t *testing.T) {
	require.Equal(t, Summary{}, Calculate(nil))
	require.Equal(t, Summary{}, Calculate([]Entry{}))
}

func TestCalculateWeightsByCredits(t *testing.T) {
	entries := []Entry{
		{Points: 4.00, Credits: 3, Semester: 1},
		{Points: 3.70, Credits: 4, Semester: 1},
		{Points: 3.00, Credits: 3, Semester: 2},
	}

	summary := Calculate(entries)
	require.Equal(t, 3.58, summary.GPA)
	require.Equal(t, 10, summary.TotalCredits)
	require.Equal(t, 35.8, summary.TotalGradePoints)
}

func TestCalculateIsOrderInvariant(t *testing.T) {
	forward := []Entry{
		{Points: 4.00, Credits: 3, Semester: 1},
		{Points: 3.30, Credits: 4, Semester: 1},
		{Points: 2.00, Credits: 2, Semester: 2},
	}
	reversed := []Entry{forward[2], forward[1], forward[0]}

	require.Equal(t, Calculate(forward), Calculate(reversed))
}

func TestCalculateRoundsHalfUp(t *testing.T) {
	// 3.125 scaled to 312.5 must round up to 3.13.
	entries := []Entry{
		{Points: 3.50, Credits: 1, Semester: 1},
		{Points: 2.75, Credits: 1, Semester: 1},
	}
	require.Equal(t, 3.13, Calculate(entries).GPA)
}

func TestCalculateSemesterFilters(t *testing.T) {
	entries := []Entry{
		{Points: 4.00, Credits: 3, Semester: 1},
		{Points: 3.70, Credits: 4, Semester: 1},
		{Points: 3.00, Credits: 3, Semester: 2},
	}

	first := CalculateSemester(entries, 1)
	require.Equal(t, 3.83, first.GPA)
	require.Equal(t, 7, first.TotalCredits)

	second := CalculateSemester(entries, 2)
	require.Equal(t, 3.00, second.GPA)
	require.Equal(t, 3, second.TotalCredits)

	require.Equal(t, Summary{}, CalculateSemester(entries, 3))
}

func TestCalculateCumulativeMatchesCalculate(t *testing.T) {
	entries := []Entry{
		{Points: 4.00, Credits: 3, Semester: 1},
		{Points: 3.00, Credits: 3, Semester: 2},
	}
	require.Equal(t, Calculate(entries), CalculateCumulative(entries))
}

func TestSemesterBreakdownSortedAndDistinct(t *testing.T) {
	entries := []Entry{
		{Points: 3.00, Credits: 3, Semester: 2},
		{Points: 4.00, Credits: 3, Semester: 1},
		{Points: 3.70, Credits: 4, Semester: 1},
		{Points: 2.00, Credits: 2, Semester: 3},
	}

	breakdown := SemesterBreakdown(entries)
	require.Len(t, breakdown, 3)
	require.Equal(t, []int{1, 2, 3}, []int{breakdown[0].Semester, breakdown[1].Semester, breakdown[2].Semester})

	for _, slice := range breakdown {
		summary := CalculateSemester(entries, slice.Semester)
		require.Equal(t, summary.GPA, slice.GPA)
		require.Equal(t, summary.TotalCredits, slice.Credits)
	}
}

func TestSemesterBreakdownEmpty(t *testing.T) {
	require.Empty(t, SemesterBreakdown(nil))
}
