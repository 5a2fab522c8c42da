package service

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"strings"

	"github.com/platewise/backend/internal/datastore"
	"github.com/platewise/backend/internal/models"
	"github.com/platewise/backend/internal/quota"
	"github.com/platewise/backend/internal/remote"
)

// Source tells callers where gateway data came from, so the UI can attach a
// "showing cached data" advisory when the remote API was not used.
type Source string

const (
	SourceAPI   Source = "api"
	SourceCache Source = "cache"
)

// dailyRecipeID is the primary id of the singleton dailyRecipes record.
const dailyRecipeID = "1"

const defaultSearchLimit = 12

// Gateway orchestrates recipe sourcing: remote API when the daily quota
// allows, the persistent recipe cache otherwise. Remote failures are absorbed
// here — no operation ever surfaces "remote unavailable" as an error, the
// worst case is a nil or empty result.
type Gateway struct {
	remote RemoteAPI
	cache  *RecipeCache
	quota  quota.Tracker
	store  *datastore.Client
}

// NewGateway wires a Gateway from its collaborators.
func NewGateway(remoteAPI RemoteAPI, cache *RecipeCache, tracker quota.Tracker, store *datastore.Client) *Gateway {
	return &Gateway{remote: remoteAPI, cache: cache, quota: tracker, store: store}
}

var _ IGateway = (*Gateway)(nil)

// allowRemote gates every remote attempt on configuration and quota.
func (g *Gateway) allowRemote(ctx context.Context) bool {
	return g.remote.Configured() && g.quota.Allow(ctx)
}

// RandomRecipe returns one recipe, a different one on every call. The
// fallback picks uniformly at random among well-formed cache entries.
func (g *Gateway) RandomRecipe(ctx context.Context) (*models.Recipe, Source) {
	if g.allowRemote(ctx) {
		recipe, err := g.remote.RandomRecipe(ctx)
		if err == nil {
			g.cache.Put(ctx, *recipe)
			g.quota.Record(ctx)
			return recipe, SourceAPI
		}
		log.Printf("gateway: random recipe from remote: %v", err)
	}
	return g.randomCached(ctx), SourceCache
}

func (g *Gateway) randomCached(ctx context.Context) *models.Recipe {
	var valid []models.Recipe
	for _, r := range g.cache.All(ctx) {
		if r.Valid() {
			valid = append(valid, r)
		}
	}
	if len(valid) == 0 {
		return nil
	}
	pick := valid[rand.Intn(len(valid))]
	return &pick
}

// DailyRecipe returns the recipe pinned for today's date, choosing and
// pinning one if none is stored yet.
func (g *Gateway) DailyRecipe(ctx context.Context) (*models.Recipe, Source) {
	today := nowUTC().Format(models.UsageDateLayout)

	var daily models.DailyRecipe
	err := g.store.Get(ctx, datastore.DailyRecipes, dailyRecipeID, &daily)
	if err == nil && daily.Date == today && daily.Recipe != nil {
		return daily.Recipe, SourceCache
	}
	if err != nil && !errors.Is(err, datastore.ErrNotFound) {
		log.Printf("gateway: reading daily recipe: %v", err)
	}

	recipe, source := g.RandomRecipe(ctx)
	if recipe == nil {
		return nil, source
	}

	pin := models.DailyRecipe{ID: dailyRecipeID, Date: today, Recipe: recipe}
	// POST creates the record the first time; PUT replaces yesterday's pin.
	var werr error
	if errors.Is(err, datastore.ErrNotFound) {
		werr = g.store.Create(ctx, datastore.DailyRecipes, pin, nil)
	} else {
		werr = g.store.Put(ctx, datastore.DailyRecipes, dailyRecipeID, pin, nil)
	}
	if werr != nil {
		log.Printf("gateway: pinning daily recipe: %v", werr)
	}
	return recipe, source
}

// SearchRecipes runs a full-text search, falling back to a case-insensitive
// substring match over cached titles.
func (g *Gateway) SearchRecipes(ctx context.Context, query string, number int) ([]models.Recipe, Source) {
	if number <= 0 {
		number = defaultSearchLimit
	}
	if g.allowRemote(ctx) {
		results, err := g.remote.Search(ctx, query, number)
		if err == nil {
			for _, r := range results {
				g.cache.Put(ctx, r)
			}
			g.quota.Record(ctx)
			return results, SourceAPI
		}
		log.Printf("gateway: searching %q on remote: %v", query, err)
	}
	return g.cache.SearchTitle(ctx, query), SourceCache
}

// GetRecipeByID checks the cache first without consuming quota; a hit is
// served immediately. Only on a miss is the quota consulted and the remote
// detail endpoint tried. Returns nil when neither source has the recipe.
func (g *Gateway) GetRecipeByID(ctx context.Context, id int64) (*models.Recipe, Source) {
	if cached := g.cache.Get(ctx, id); cached != nil {
		return cached, SourceCache
	}
	if g.allowRemote(ctx) {
		recipe, err := g.remote.GetRecipe(ctx, id)
		if err == nil {
			g.cache.Put(ctx, *recipe)
			g.quota.Record(ctx)
			return recipe, SourceAPI
		}
		log.Printf("gateway: fetching recipe %d from remote: %v", id, err)
	}
	return nil, SourceCache
}

// AdvancedSearch forwards filters to the remote complex search. The fallback
// applies best-effort filtering: query substring, max ready time, and diet
// matching via the cached boolean flags (or title+summary substring for
// unrecognized diets). Exclude-ingredient and calorie filters are not applied
// in the fallback.
func (g *Gateway) AdvancedSearch(ctx context.Context, f remote.SearchFilters) ([]models.Recipe, Source) {
	if f.Number <= 0 {
		f.Number = defaultSearchLimit
	}
	if g.allowRemote(ctx) {
		results, err := g.remote.ComplexSearch(ctx, f)
		if err == nil {
			for _, r := range results {
				g.cache.Put(ctx, r)
			}
			g.quota.Record(ctx)
			return results, SourceAPI
		}
		log.Printf("gateway: advanced search on remote: %v", err)
	}
	return g.filterCached(ctx, f), SourceCache
}

func (g *Gateway) filterCached(ctx context.Context, f remote.SearchFilters) []models.Recipe {
	var results []models.Recipe
	for _, r := range g.cache.All(ctx) {
		if !r.Valid() {
			continue
		}
		if f.Query != "" && !strings.Contains(strings.ToLower(r.Title), strings.ToLower(f.Query)) {
			continue
		}
		if f.MaxReadyTime > 0 && (r.ReadyInMinutes == 0 || r.ReadyInMinutes > f.MaxReadyTime) {
			continue
		}
		if f.Diet != "" && !matchesAnyDiet(r, f.Diet) {
			continue
		}
		results = append(results, r)
		if len(results) == f.Number {
			break
		}
	}
	return results
}

// matchesAnyDiet checks a comma-separated diet list against the recipe's
// known boolean flags, falling back to a substring scan of title+summary for
// diets the cache has no flag for.
func matchesAnyDiet(r models.Recipe, diets string) bool {
	text := strings.ToLower(r.Title + " " + r.Summary)
	for _, diet := range strings.Split(strings.ToLower(diets), ",") {
		diet = strings.TrimSpace(diet)
		if diet == "" {
			continue
		}
		switch diet {
		case "vegetarian":
			if r.Vegetarian {
				return true
			}
		case "vegan":
			if r.Vegan {
				return true
			}
		case "glutenfree", "gluten free":
			if r.GlutenFree {
				return true
			}
		case "dairyfree", "dairy free":
			if r.DairyFree {
				return true
			}
		default:
			if strings.Contains(text, diet) {
				return true
			}
		}
	}
	return false
}
