package service

import (
	"context"

	"github.com/platewise/backend/internal/models"
	"github.com/platewise/backend/internal/remote"
	"github.com/platewise/backend/internal/types"
)

// RemoteAPI is the remote recipe source consumed by the Gateway. The concrete
// implementation lives in internal/remote; tests substitute counting stubs.
type RemoteAPI interface {
	Configured() bool
	RandomRecipe(ctx context.Context) (*models.Recipe, error)
	Search(ctx context.Context, query string, number int) ([]models.Recipe, error)
	GetRecipe(ctx context.Context, id int64) (*models.Recipe, error)
	ComplexSearch(ctx context.Context, f remote.SearchFilters) ([]models.Recipe, error)
}

// IGateway is the recipe sourcing surface consumed by API handlers.
type IGateway interface {
	RandomRecipe(ctx context.Context) (*models.Recipe, Source)
	DailyRecipe(ctx context.Context) (*models.Recipe, Source)
	SearchRecipes(ctx context.Context, query string, number int) ([]models.Recipe, Source)
	GetRecipeByID(ctx context.Context, id int64) (*models.Recipe, Source)
	AdvancedSearch(ctx context.Context, f remote.SearchFilters) ([]models.Recipe, Source)
}

// ICustomRecipeService is the ownership-checked custom recipe repository.
type ICustomRecipeService interface {
	Create(ctx context.Context, ownerID string, req *types.CreateRecipeRequest) (*models.CustomRecipe, error)
	Update(ctx context.Context, recipeID, actingUserID string, req *types.UpdateRecipeRequest) (*models.CustomRecipe, error)
	Delete(ctx context.Context, recipeID, actingUserID string) error
	GetByID(ctx context.Context, recipeID string) (*models.CustomRecipe, error)
	ListByOwner(ctx context.Context, ownerID string) ([]models.CustomRecipe, error)
	ListPublic(ctx context.Context) ([]models.CustomRecipe, error)
	Search(ctx context.Context, ownerID, text string) ([]models.CustomRecipe, error)
}

// IFavoritesService is the favorites ledger.
type IFavoritesService interface {
	IsFavorited(ctx context.Context, userID string, recipeID int64) (*models.Favorite, error)
	Add(ctx context.Context, userID string, req *types.ToggleFavoriteRequest) (*FavoriteResult, error)
	Remove(ctx context.Context, userID string, recipeID int64) (*FavoriteResult, error)
	Toggle(ctx context.Context, userID string, req *types.ToggleFavoriteRequest) (*FavoriteResult, error)
	ListByUser(ctx context.Context, userID string) ([]models.Favorite, error)
	Count(ctx context.Context, userID string) (int, error)
}

// IAuthService is the session manager.
type IAuthService interface {
	Register(ctx context.Context, req *types.RegisterRequest) (*models.User, string, error)
	Login(ctx context.Context, email, password string) (*models.User, string, error)
	ValidateToken(token string) (*types.TokenClaims, error)
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	UpdateProfile(ctx context.Context, userID string, req *types.UpdateProfileRequest) (*models.User, error)
	ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error
}
