package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/planboard/internal/domain"
	"github.com/alexanderramin/planboard/internal/repository"
	"github.com/alexanderramin/planboard/internal/testutil"
)

func TestPlanService_CreateMintsIDAndTimestamps(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := NewPlanService(repository.NewSQLitePlanRepo(database))
	ctx := context.Background()

	p := &domain.Plan{
		Name:      "Launch",
		StartDate: testutil.Day(0),
		EndDate:   testutil.Day(30),
	}
	require.NoError(t, svc.Create(ctx, p))

	assert.NotEmpty(t, p.ID)
	assert.False(t, p.CreatedAt.IsZero())

	got, err := svc.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Launch", got.Name)
}

func TestPlanService_CreateValidation(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := NewPlanService(repository.NewSQLitePlanRepo(database))
	ctx := context.Background()

	err := svc.Create(ctx, &domain.Plan{
		StartDate: testutil.Day(0), EndDate: testutil.Day(5),
	})
	assert.Error(t, err, "empty name rejected")

	err = svc.Create(ctx, &domain.Plan{
		Name: "Backwards", StartDate: testutil.Day(5), EndDate: testutil.Day(0),
	})
	assert.Error(t, err, "inverted range rejected")
}

func TestPlanService_GetByNameAndDelete(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := NewPlanService(repository.NewSQLitePlanRepo(database))
	ctx := context.Background()

	p := testutil.NewTestPlan("Named", testutil.Day(0), testutil.Day(5))
	require.NoError(t, svc.Create(ctx, p))

	got, err := svc.GetByName(ctx, "Named")
	require.NoError(t, err)
	assert.Equal(t, p.ID, got.ID)

	require.NoError(t, svc.Delete(ctx, p.ID))
	plans, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, plans)
}

func TestStageService_CreateValidatesKind(t *testing.T) {
	database := testutil.NewTestDB(t)
	plans := repository.NewSQLitePlanRepo(database)
	svc := NewStageService(
		repository.NewSQLiteStageRepo(database),
		repository.NewSQLiteElementRepo(database))
	ctx := context.Background()

	p := testutil.NewTestPlan("P", testutil.Day(0), testutil.Day(10))
	require.NoError(t, plans.Create(ctx, p))

	s := testutil.NewTestStage(p.ID, "Bad", testutil.Day(0), testutil.Day(1))
	s.Kind = domain.StageKind("era")
	assert.Error(t, svc.Create(ctx, s))

	s.Kind = domain.StageSequence
	assert.NoError(t, svc.Create(ctx, s))
}

func TestStageService_AssignElementsVerifiesExistence(t *testing.T) {
	database := testutil.NewTestDB(t)
	plans := repository.NewSQLitePlanRepo(database)
	elements := repository.NewSQLiteElementRepo(database)
	svc := NewStageService(repository.NewSQLiteStageRepo(database), elements)
	ctx := context.Background()

	p := testutil.NewTestPlan("P", testutil.Day(0), testutil.Day(10))
	require.NoError(t, plans.Create(ctx, p))
	s := testutil.NewTestStage(p.ID, "S", testutil.Day(0), testutil.Day(5))
	require.NoError(t, svc.Create(ctx, s))
	e := testutil.NewTestElement(p.ID, "e", testutil.Day(1))
	require.NoError(t, elements.Create(ctx, e))

	assert.Error(t, svc.AssignElements(ctx, s.ID, []string{e.ID, "ghost"}),
		"one unknown ID fails the whole assignment")
	assert.NoError(t, svc.AssignElements(ctx, s.ID, []string{e.ID}))
}

func TestElementService_CreateDefaultsStatus(t *testing.T) {
	database := testutil.NewTestDB(t)
	plans := repository.NewSQLitePlanRepo(database)
	svc := NewElementService(repository.NewSQLiteElementRepo(database))
	ctx := context.Background()

	p := testutil.NewTestPlan("P", testutil.Day(0), testutil.Day(10))
	require.NoError(t, plans.Create(ctx, p))

	e := &domain.Element{
		PlanID: p.ID,
		Label:  "task",
		Kind:   domain.ElementTask,
		Date:   testutil.Day(1),
	}
	require.NoError(t, svc.Create(ctx, e))
	assert.Equal(t, domain.ElementPending, e.Status)
}

func TestElementService_SetStatusRejectsUnknown(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := NewElementService(repository.NewSQLiteElementRepo(database))

	err := svc.SetStatus(context.Background(), "any", domain.ElementStatus("done"))
	assert.Error(t, err)
}

func TestElementService_EndBeforeStartRejected(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := NewElementService(repository.NewSQLiteElementRepo(database))

	e := testutil.NewTestElement("p", "span", testutil.Day(5),
		testutil.WithElementEnd(testutil.Day(2)))
	assert.Error(t, svc.Create(context.Background(), e))
}

func TestCapacityService_SetValidation(t *testing.T) {
	database := testutil.NewTestDB(t)
	plans := repository.NewSQLitePlanRepo(database)
	svc := NewCapacityService(repository.NewSQLiteCapacityRepo(database))
	ctx := context.Background()

	p := testutil.NewTestPlan("P", testutil.Day(0), testutil.Day(10))
	require.NoError(t, plans.Create(ctx, p))

	assert.Error(t, svc.Set(ctx, &domain.Capacity{Date: testutil.Day(1)}),
		"missing plan id rejected")

	c := testutil.NewTestCapacity(p.ID, testutil.Day(1), 8, 3)
	c.Busy = -1
	assert.Error(t, svc.Set(ctx, c), "negative figures rejected")

	c.Busy = 3
	require.NoError(t, svc.Set(ctx, c))

	all, err := svc.ListByPlan(ctx, p.ID)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
