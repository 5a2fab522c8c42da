package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platewise/backend/internal/datastore"
	"github.com/platewise/backend/internal/models"
	"github.com/platewise/backend/internal/testutil"
)

func newMealPlanService(t *testing.T) (*MealPlanService, *testutil.FakeStore) {
	store := testutil.NewFakeStore(t)
	client := datastore.New(store.URL(), 5*time.Second)
	return NewMealPlanService(client), store
}

func TestCreateMealPlanAssignsIdentity(t *testing.T) {
	svc, _ := newMealPlanService(t)

	plan, err := svc.Create(context.Background(), "user-1", models.MealPlan{
		Name: "Week 1",
		Days: map[string]models.DayPlan{"monday": {}},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, plan.ID)
	assert.Equal(t, "user-1", plan.UserID)
	assert.False(t, plan.CreatedAt.IsZero())
}

func TestCreateMealPlanRequiresName(t *testing.T) {
	svc, _ := newMealPlanService(t)

	_, err := svc.Create(context.Background(), "user-1", models.MealPlan{Name: "   "})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdateMealPlanEnforcesOwnership(t *testing.T) {
	svc, _ := newMealPlanService(t)
	ctx := context.Background()

	plan, err := svc.Create(ctx, "owner", models.MealPlan{Name: "Week 1"})
	require.NoError(t, err)

	_, err = svc.Update(ctx, plan.ID, "intruder", models.MealPlan{Name: "Hijacked"})
	assert.ErrorIs(t, err, ErrUnauthorized)

	updated, err := svc.Update(ctx, plan.ID, "owner", models.MealPlan{Name: "Week 2"})
	require.NoError(t, err)
	assert.Equal(t, "Week 2", updated.Name)
	assert.Equal(t, plan.ID, updated.ID)
	assert.Equal(t, "owner", updated.UserID)
}

func TestDeleteMealPlanEnforcesOwnership(t *testing.T) {
	svc, store := newMealPlanService(t)
	ctx := context.Background()

	plan, err := svc.Create(ctx, "owner", models.MealPlan{Name: "Week 1"})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(ctx, plan.ID, "intruder"), ErrUnauthorized)
	assert.Equal(t, 1, store.Count("mealPlans"))

	require.NoError(t, svc.Delete(ctx, plan.ID, "owner"))
	assert.Equal(t, 0, store.Count("mealPlans"))
	assert.ErrorIs(t, svc.Delete(ctx, plan.ID, "owner"), ErrNotFound)
}

func TestListMealPlansScopedToUser(t *testing.T) {
	svc, _ := newMealPlanService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, "alice", models.MealPlan{Name: "A"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, "bob", models.MealPlan{Name: "B"})
	require.NoError(t, err)

	plans, err := svc.ListByUser(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, plans, 1)
	assert.Equal(t, "A", plans[0].Name)
}
