// cmd/api/nowplaying.go
package main

import (
	"fmt"
	"net/http"

	"go.uber.org/zap"
)

func (app *application) nowPlayingHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if app.cacheStorage.NowPlaying != nil {
		track, err := app.cacheStorage.NowPlaying.Get(ctx)
		if err != nil {
			app.logger.Warn("no se pudo leer la caché de now playing", zap.Error(err))
		} else if track != nil {
			app.jsonResponse(w, http.StatusOK, track)
			return
		}
	}

	track, err := app.player.Current(ctx)
	if err != nil {
		app.internalServerError(w, r, fmt.Errorf("now playing: %w", err))
		return
	}

	if app.cacheStorage.NowPlaying != nil {
		if err := app.cacheStorage.NowPlaying.Set(ctx, track); err != nil {
			app.logger.Warn("no se pudo escribir la caché de now playing", zap.Error(err))
		}
	}

	app.jsonResponse(w, http.StatusOK, track)
}
