package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/platewise/backend/internal/datastore"
	"github.com/platewise/backend/internal/models"
)

// MealPlanService is simple CRUD over the mealPlans collection with the same
// single-owner rule as custom recipes.
type MealPlanService struct {
	store *datastore.Client
}

// NewMealPlanService creates a MealPlanService.
func NewMealPlanService(store *datastore.Client) *MealPlanService {
	return &MealPlanService{store: store}
}

// Create stores a new plan owned by userID.
func (s *MealPlanService) Create(ctx context.Context, userID string, plan models.MealPlan) (*models.MealPlan, error) {
	if strings.TrimSpace(plan.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	now := nowUTC()
	plan.ID = uuid.NewString()
	plan.UserID = userID
	plan.CreatedAt = now
	plan.UpdatedAt = now

	var stored models.MealPlan
	if err := s.store.Create(ctx, datastore.MealPlans, plan, &stored); err != nil {
		return nil, err
	}
	return &stored, nil
}

// Update replaces a plan after the ownership check.
func (s *MealPlanService) Update(ctx context.Context, planID, userID string, plan models.MealPlan) (*models.MealPlan, error) {
	existing, err := s.getOwned(ctx, planID, userID)
	if err != nil {
		return nil, err
	}

	plan.ID = existing.ID
	plan.UserID = existing.UserID
	plan.CreatedAt = existing.CreatedAt
	plan.UpdatedAt = nowUTC()

	var stored models.MealPlan
	if err := s.store.Put(ctx, datastore.MealPlans, planID, plan, &stored); err != nil {
		return nil, err
	}
	return &stored, nil
}

// Delete removes a plan after the ownership check.
func (s *MealPlanService) Delete(ctx context.Context, planID, userID string) error {
	if _, err := s.getOwned(ctx, planID, userID); err != nil {
		return err
	}
	if err := s.store.Delete(ctx, datastore.MealPlans, planID); err != nil {
		if errors.Is(err, datastore.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// ListByUser returns the user's plans.
func (s *MealPlanService) ListByUser(ctx context.Context, userID string) ([]models.MealPlan, error) {
	filter := url.Values{}
	filter.Set("userId", userID)
	var plans []models.MealPlan
	if err := s.store.List(ctx, datastore.MealPlans, filter, &plans); err != nil {
		return nil, err
	}
	return plans, nil
}

func (s *MealPlanService) getOwned(ctx context.Context, planID, userID string) (*models.MealPlan, error) {
	var plan models.MealPlan
	err := s.store.Get(ctx, datastore.MealPlans, planID, &plan)
	if errors.Is(err, datastore.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if plan.UserID != userID {
		return nil, ErrUnauthorized
	}
	return &plan, nil
}
