package types

// RegisterRequest is the request body for account registration.
type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
}

// LoginRequest is the request body for login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest carries profile fields a user may change. Password,
// id and the admin flag are deliberately absent.
type UpdateProfileRequest struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	DisplayName string `json:"displayName"`
}

// ChangePasswordRequest is the request body for a password change.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=6"`
}

// CreateRecipeRequest is the request body for creating a custom recipe.
type CreateRecipeRequest struct {
	Title        string   `json:"title" binding:"required"`
	Description  string   `json:"description"`
	Image        string   `json:"image"`
	Servings     int      `json:"servings"`
	PrepTime     int      `json:"prepTime"`
	CookTime     int      `json:"cookTime"`
	TotalTime    int      `json:"totalTime"`
	Difficulty   string   `json:"difficulty" binding:"omitempty,oneof=easy medium hard"`
	Cuisine      string   `json:"cuisine"`
	Category     string   `json:"category"`
	Ingredients  []string `json:"ingredients"`
	Instructions []string `json:"instructions"`
	Tags         []string `json:"tags"`
	IsPublic     bool     `json:"isPublic"`
	Notes        string   `json:"notes"`
}

// UpdateRecipeRequest is the request body for updating a custom recipe.
// Pointer fields distinguish "not sent" from zero values so an update only
// touches the fields the caller supplied.
type UpdateRecipeRequest struct {
	Title        *string   `json:"title"`
	Description  *string   `json:"description"`
	Image        *string   `json:"image"`
	Servings     *int      `json:"servings"`
	PrepTime     *int      `json:"prepTime"`
	CookTime     *int      `json:"cookTime"`
	TotalTime    *int      `json:"totalTime"`
	Difficulty   *string   `json:"difficulty"`
	Cuisine      *string   `json:"cuisine"`
	Category     *string   `json:"category"`
	Ingredients  *[]string `json:"ingredients"`
	Instructions *[]string `json:"instructions"`
	Tags         *[]string `json:"tags"`
	IsPublic     *bool     `json:"isPublic"`
	Notes        *string   `json:"notes"`
}

// ToggleFavoriteRequest carries the recipe being toggled. The card fields are
// denormalized into the favorite so list views render without refetching.
type ToggleFavoriteRequest struct {
	RecipeID       int64  `json:"recipeId" binding:"required"`
	Title          string `json:"title" binding:"required"`
	Image          string `json:"image"`
	ReadyInMinutes int    `json:"readyInMinutes"`
	Servings       int    `json:"servings"`
	Summary        string `json:"summary"`
}
