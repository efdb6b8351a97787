package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/campusgrid/results-api/internal/models"
)

func TestSeedServiceLoadsSampleDataOnce(t *testing.T) {
	fixture := newServiceFixture(t)
	svc := NewSeedService(fixture.students, fixture.teachers, fixture.subjects, fixture.results, true, zerolog.Nop())
	ctx := context.Background()

	require.NoError(t, svc.EnsureSampleData(ctx))

	students, err := fixture.students.List(ctx)
	require.NoError(t, err)
	require.Len(t, students, 3)

	subjects, err := fixture.subjects.List(ctx)
	require.NoError(t, err)
	require.Len(t, subjects, 6)

	resultCount, err := fixture.results.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(7), resultCount)

	// points must come from the grade table, not hardcoded values
	var aMinus models.Result
	require.NoError(t, fixture.db.Where("grade = ?", "A-").First(&aMinus).Error)
	require.Equal(t, 3.70, aMinus.Points)

	// second run must not duplicate anything
	require.NoError(t, svc.EnsureSampleData(ctx))
	students, err = fixture.students.List(ctx)
	require.NoError(t, err)
	require.Len(t, students, 3)
}

func TestSeedServiceDisabled(t *testing.T) {
	fixture := newServiceFixture(t)
	svc := NewSeedService(fixture.students, fixture.teachers, fixture.subjects, fixture.results, false, zerolog.Nop())

	require.ErrorIs(t, svc.EnsureSampleData(context.Background()), ErrSeedDisabled)
}
