// cmd/api/github.go
package main

import (
	"fmt"
	"net/http"

	"go.uber.org/zap"
)

// listReposHandler sirve los repos desde Redis y solo va a GitHub en un fallo de caché.
func (app *application) listReposHandler(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	ctx := r.Context()
	user := app.config.github.user

	if app.cacheStorage.Repos != nil {
		repos, err := app.cacheStorage.Repos.Get(ctx, user)
		if err != nil {
			app.logger.Warn("no se pudo leer la caché de repos", zap.Error(err))
		} else if repos != nil {
			app.jsonResponse(w, http.StatusOK, truncate(repos, limit))
			return
		}
	}

	repos, err := app.repos.ListRepos(ctx, user, 0)
	if err != nil {
		app.internalServerError(w, r, fmt.Errorf("github: list repos: %w", err))
		return
	}

	if app.cacheStorage.Repos != nil {
		if err := app.cacheStorage.Repos.Set(ctx, user, repos); err != nil {
			app.logger.Warn("no se pudo escribir la caché de repos", zap.Error(err))
		}
	}

	app.jsonResponse(w, http.StatusOK, truncate(repos, limit))
}

func truncate[T any](items []T, limit int) []T {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}

// purgeReposCacheHandler fuerza que la próxima lectura vaya a GitHub.
func (app *application) purgeReposCacheHandler(w http.ResponseWriter, r *http.Request) {
	if app.cacheStorage.Repos != nil {
		if err := app.cacheStorage.Repos.Delete(r.Context(), app.config.github.user); err != nil {
			app.internalServerError(w, r, fmt.Errorf("github: purge cache: %w", err))
			return
		}
	}
	w.WriteHeader(http.StatusNoContent)
}
