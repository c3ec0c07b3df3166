package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/planboard/internal/domain"
	"github.com/alexanderramin/planboard/internal/testutil"
)

func seedPlanForElements(t *testing.T) (*SQLiteElementRepo, *domain.Plan) {
	t.Helper()
	database := testutil.NewTestDB(t)
	planRepo := NewSQLitePlanRepo(database)
	p := testutil.NewTestPlan("Plan", testutil.Day(0), testutil.Day(30))
	require.NoError(t, planRepo.Create(context.Background(), p))
	return NewSQLiteElementRepo(database), p
}

func TestElementRepo_CreateAndGet(t *testing.T) {
	elements, p := seedPlanForElements(t)
	ctx := context.Background()

	e := testutil.NewTestElement(p.ID, "Wireframes", testutil.Day(3),
		testutil.WithElementKind(domain.ElementDeliverable),
		testutil.WithElementStatus(domain.ElementInProgress),
		testutil.WithElementEnd(testutil.Day(6)))
	e.Progress = 25
	e.Color = "#d3869b"
	require.NoError(t, elements.Create(ctx, e))

	got, err := elements.GetByID(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, "Wireframes", got.Label)
	assert.Equal(t, domain.ElementDeliverable, got.Kind)
	assert.Equal(t, domain.ElementInProgress, got.Status)
	assert.Equal(t, testutil.Day(3), got.Date)
	require.NotNil(t, got.EndDate)
	assert.Equal(t, testutil.Day(6), *got.EndDate)
	assert.Equal(t, 25.0, got.Progress)
	assert.Equal(t, "#d3869b", got.Color)
}

func TestElementRepo_NilEndDateRoundTrips(t *testing.T) {
	elements, p := seedPlanForElements(t)
	ctx := context.Background()

	e := testutil.NewTestElement(p.ID, "single-day", testutil.Day(1))
	require.NoError(t, elements.Create(ctx, e))

	got, err := elements.GetByID(ctx, e.ID)
	require.NoError(t, err)
	assert.Nil(t, got.EndDate)

	start, end := got.Span()
	assert.Equal(t, start, end)
}

func TestElementRepo_InvalidStatusRejected(t *testing.T) {
	elements, p := seedPlanForElements(t)

	e := testutil.NewTestElement(p.ID, "bad", testutil.Day(1))
	e.Status = domain.ElementStatus("done")

	err := elements.Create(context.Background(), e)
	assert.Error(t, err)
}

func TestElementRepo_UpdateStatus(t *testing.T) {
	elements, p := seedPlanForElements(t)
	ctx := context.Background()

	e := testutil.NewTestElement(p.ID, "task", testutil.Day(1))
	require.NoError(t, elements.Create(ctx, e))

	require.NoError(t, elements.UpdateStatus(ctx, e.ID, domain.ElementFinished))

	got, err := elements.GetByID(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ElementFinished, got.Status)
	assert.True(t, got.Status.IsCompleted())
}

func TestElementRepo_UpdateStatusMissingFails(t *testing.T) {
	elements, _ := seedPlanForElements(t)

	err := elements.UpdateStatus(context.Background(), "ghost", domain.ElementFinished)
	assert.Error(t, err)
}

func TestElementRepo_ListByPlan(t *testing.T) {
	elements, p := seedPlanForElements(t)
	ctx := context.Background()

	require.NoError(t, elements.Create(ctx, testutil.NewTestElement(p.ID, "b", testutil.Day(5))))
	require.NoError(t, elements.Create(ctx, testutil.NewTestElement(p.ID, "a", testutil.Day(2))))

	got, err := elements.ListByPlan(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].Label, "elements list in date order")

	other, err := elements.ListByPlan(ctx, "other-plan")
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestElementRepo_Delete(t *testing.T) {
	elements, p := seedPlanForElements(t)
	ctx := context.Background()

	e := testutil.NewTestElement(p.ID, "gone", testutil.Day(1))
	require.NoError(t, elements.Create(ctx, e))
	require.NoError(t, elements.Delete(ctx, e.ID))

	_, err := elements.GetByID(ctx, e.ID)
	assert.Error(t, err)
}
