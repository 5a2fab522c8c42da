package service

import (
	"context"
	"log"
	"net/url"
	"strconv"

	"github.com/google/uuid"

	"github.com/platewise/backend/internal/datastore"
	"github.com/platewise/backend/internal/models"
	"github.com/platewise/backend/internal/types"
)

// summaryLimit caps the denormalized summary stored on a favorite.
const summaryLimit = 200

// FavoriteResult is the outcome of an add/remove/toggle. Both idempotent
// no-ops ("already favorited", "not favorited") are reported here as
// non-error results.
type FavoriteResult struct {
	Favorited bool             `json:"favorited"`
	Changed   bool             `json:"changed"`
	Favorite  *models.Favorite `json:"favorite,omitempty"`
}

// FavoritesService maintains the at-most-one-favorite-per-(user,recipe)
// invariant over the favorites collection. Toggle is check-then-act and not
// atomic: two concurrent toggles for the same pair can both observe "absent"
// and both insert. The window is accepted rather than masked with a client
// lock that would not cover other clients of the store.
type FavoritesService struct {
	store *datastore.Client
}

// NewFavoritesService creates a FavoritesService.
func NewFavoritesService(store *datastore.Client) *FavoritesService {
	return &FavoritesService{store: store}
}

var _ IFavoritesService = (*FavoritesService)(nil)

// IsFavorited returns the user's favorite for the recipe, or nil. Should the
// store ever hold duplicates for the pair, the lowest-id row is returned
// deterministically and the duplicate is logged as a data bug.
func (s *FavoritesService) IsFavorited(ctx context.Context, userID string, recipeID int64) (*models.Favorite, error) {
	filter := url.Values{}
	filter.Set("userId", userID)
	filter.Set("recipeId", strconv.FormatInt(recipeID, 10))

	var favorites []models.Favorite
	if err := s.store.List(ctx, datastore.Favorites, filter, &favorites); err != nil {
		return nil, err
	}
	if len(favorites) == 0 {
		return nil, nil
	}
	if len(favorites) > 1 {
		log.Printf("favorites: %d duplicate rows for user %s recipe %d", len(favorites), userID, recipeID)
	}

	first := favorites[0]
	for _, f := range favorites[1:] {
		if f.ID < first.ID {
			first = f
		}
	}
	return &first, nil
}

// Add inserts a favorite unless one already exists; adding an existing
// favorite returns the existing record with Changed=false.
func (s *FavoritesService) Add(ctx context.Context, userID string, req *types.ToggleFavoriteRequest) (*FavoriteResult, error) {
	existing, err := s.IsFavorited(ctx, userID, req.RecipeID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return &FavoriteResult{Favorited: true, Changed: false, Favorite: existing}, nil
	}

	favorite := models.Favorite{
		ID:             uuid.NewString(),
		UserID:         userID,
		RecipeID:       req.RecipeID,
		Title:          req.Title,
		Image:          req.Image,
		ReadyInMinutes: req.ReadyInMinutes,
		Servings:       req.Servings,
		Summary:        truncate(req.Summary, summaryLimit),
		AddedAt:        nowUTC(),
	}

	var stored models.Favorite
	if err := s.store.Create(ctx, datastore.Favorites, favorite, &stored); err != nil {
		return nil, err
	}
	return &FavoriteResult{Favorited: true, Changed: true, Favorite: &stored}, nil
}

// Remove deletes the user's favorite for the recipe; removing an absent
// favorite is a non-error no-op. Deletion addresses the favorite's own
// primary id, since that is how the store addresses records.
func (s *FavoritesService) Remove(ctx context.Context, userID string, recipeID int64) (*FavoriteResult, error) {
	existing, err := s.IsFavorited(ctx, userID, recipeID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return &FavoriteResult{Favorited: false, Changed: false}, nil
	}

	if err := s.store.Delete(ctx, datastore.Favorites, existing.ID); err != nil {
		return nil, err
	}
	return &FavoriteResult{Favorited: false, Changed: true}, nil
}

// Toggle flips the favorite state for (user, recipe).
func (s *FavoritesService) Toggle(ctx context.Context, userID string, req *types.ToggleFavoriteRequest) (*FavoriteResult, error) {
	existing, err := s.IsFavorited(ctx, userID, req.RecipeID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return s.Remove(ctx, userID, req.RecipeID)
	}
	return s.Add(ctx, userID, req)
}

// ListByUser returns all of a user's favorites.
func (s *FavoritesService) ListByUser(ctx context.Context, userID string) ([]models.Favorite, error) {
	filter := url.Values{}
	filter.Set("userId", userID)
	var favorites []models.Favorite
	if err := s.store.List(ctx, datastore.Favorites, filter, &favorites); err != nil {
		return nil, err
	}
	return favorites, nil
}

// Count returns how many favorites the user has.
func (s *FavoritesService) Count(ctx context.Context, userID string) (int, error) {
	favorites, err := s.ListByUser(ctx, userID)
	if err != nil {
		return 0, err
	}
	return len(favorites), nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
