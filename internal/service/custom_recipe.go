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
	"github.com/platewise/backend/internal/types"
)

// CustomRecipeService is CRUD over user-authored recipes with a single-owner
// authorization rule: only the owning user may update or delete a recipe.
// Reads by id are unrestricted so recipes can be viewed cross-user.
type CustomRecipeService struct {
	store *datastore.Client
}

// NewCustomRecipeService creates a CustomRecipeService.
func NewCustomRecipeService(store *datastore.Client) *CustomRecipeService {
	return &CustomRecipeService{store: store}
}

var _ ICustomRecipeService = (*CustomRecipeService)(nil)

// Create stores a new recipe owned by ownerID.
func (s *CustomRecipeService) Create(ctx context.Context, ownerID string, req *types.CreateRecipeRequest) (*models.CustomRecipe, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}

	now := nowUTC()
	recipe := models.CustomRecipe{
		ID:           uuid.NewString(),
		OwnerID:      ownerID,
		Title:        req.Title,
		Description:  req.Description,
		Image:        req.Image,
		Servings:     req.Servings,
		PrepTime:     req.PrepTime,
		CookTime:     req.CookTime,
		TotalTime:    req.TotalTime,
		Difficulty:   req.Difficulty,
		Cuisine:      req.Cuisine,
		Category:     req.Category,
		Ingredients:  req.Ingredients,
		Instructions: req.Instructions,
		Tags:         req.Tags,
		IsPublic:     req.IsPublic,
		Notes:        req.Notes,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	var stored models.CustomRecipe
	if err := s.store.Create(ctx, datastore.CustomRecipes, recipe, &stored); err != nil {
		return nil, err
	}
	return &stored, nil
}

// Update merges the patch over the existing recipe and persists a full
// replacement. PUT rather than PATCH at the store level, so two concurrent
// partial patches cannot interleave into a half-applied record.
func (s *CustomRecipeService) Update(ctx context.Context, recipeID, actingUserID string, req *types.UpdateRecipeRequest) (*models.CustomRecipe, error) {
	existing, err := s.getOwned(ctx, recipeID, actingUserID)
	if err != nil {
		return nil, err
	}

	applyPatch(existing, req)
	if strings.TrimSpace(existing.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}
	existing.UpdatedAt = nowUTC()

	var stored models.CustomRecipe
	if err := s.store.Put(ctx, datastore.CustomRecipes, recipeID, existing, &stored); err != nil {
		return nil, err
	}
	return &stored, nil
}

// Delete removes a recipe after the ownership check. Deleting an id that no
// longer exists reports ErrNotFound, not success.
func (s *CustomRecipeService) Delete(ctx context.Context, recipeID, actingUserID string) error {
	if _, err := s.getOwned(ctx, recipeID, actingUserID); err != nil {
		return err
	}
	if err := s.store.Delete(ctx, datastore.CustomRecipes, recipeID); err != nil {
		if errors.Is(err, datastore.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// GetByID returns a recipe without any ownership check, or nil on miss.
func (s *CustomRecipeService) GetByID(ctx context.Context, recipeID string) (*models.CustomRecipe, error) {
	var recipe models.CustomRecipe
	err := s.store.Get(ctx, datastore.CustomRecipes, recipeID, &recipe)
	if errors.Is(err, datastore.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

// ListByOwner returns every recipe owned by ownerID. Order is whatever the
// store returns.
func (s *CustomRecipeService) ListByOwner(ctx context.Context, ownerID string) ([]models.CustomRecipe, error) {
	filter := url.Values{}
	filter.Set("userId", ownerID)
	var recipes []models.CustomRecipe
	if err := s.store.List(ctx, datastore.CustomRecipes, filter, &recipes); err != nil {
		return nil, err
	}
	return recipes, nil
}

// ListPublic returns recipes their owners marked public.
func (s *CustomRecipeService) ListPublic(ctx context.Context) ([]models.CustomRecipe, error) {
	filter := url.Values{}
	filter.Set("isPublic", "true")
	var recipes []models.CustomRecipe
	if err := s.store.List(ctx, datastore.CustomRecipes, filter, &recipes); err != nil {
		return nil, err
	}
	return recipes, nil
}

// Search filters the owner's recipes client-side, matching text
// case-insensitively against title, description, any ingredient or any tag.
func (s *CustomRecipeService) Search(ctx context.Context, ownerID, text string) ([]models.CustomRecipe, error) {
	recipes, err := s.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(text)
	var matches []models.CustomRecipe
	for _, r := range recipes {
		if matchesRecipe(r, q) {
			matches = append(matches, r)
		}
	}
	return matches, nil
}

// getOwned fetches a recipe and enforces the ownership invariant. Identity
// comparison happens on the canonical opaque string ids, never on converted
// numbers.
func (s *CustomRecipeService) getOwned(ctx context.Context, recipeID, actingUserID string) (*models.CustomRecipe, error) {
	var recipe models.CustomRecipe
	err := s.store.Get(ctx, datastore.CustomRecipes, recipeID, &recipe)
	if errors.Is(err, datastore.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if recipe.OwnerID != actingUserID {
		return nil, ErrUnauthorized
	}
	return &recipe, nil
}

func matchesRecipe(r models.CustomRecipe, q string) bool {
	if strings.Contains(strings.ToLower(r.Title), q) {
		return true
	}
	if r.Description != "" && strings.Contains(strings.ToLower(r.Description), q) {
		return true
	}
	for _, ing := range r.Ingredients {
		if strings.Contains(strings.ToLower(ing), q) {
			return true
		}
	}
	for _, tag := range r.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

func applyPatch(recipe *models.CustomRecipe, req *types.UpdateRecipeRequest) {
	if req.Title != nil {
		recipe.Title = *req.Title
	}
	if req.Description != nil {
		recipe.Description = *req.Description
	}
	if req.Image != nil {
		recipe.Image = *req.Image
	}
	if req.Servings != nil {
		recipe.Servings = *req.Servings
	}
	if req.PrepTime != nil {
		recipe.PrepTime = *req.PrepTime
	}
	if req.CookTime != nil {
		recipe.CookTime = *req.CookTime
	}
	if req.TotalTime != nil {
		recipe.TotalTime = *req.TotalTime
	}
	if req.Difficulty != nil {
		recipe.Difficulty = *req.Difficulty
	}
	if req.Cuisine != nil {
		recipe.Cuisine = *req.Cuisine
	}
	if req.Category != nil {
		recipe.Category = *req.Category
	}
	if req.Ingredients != nil {
		recipe.Ingredients = *req.Ingredients
	}
	if req.Instructions != nil {
		recipe.Instructions = *req.Instructions
	}
	if req.Tags != nil {
		recipe.Tags = *req.Tags
	}
	if req.IsPublic != nil {
		recipe.IsPublic = *req.IsPublic
	}
	if req.Notes != nil {
		recipe.Notes = *req.Notes
	}
}
