// internal/store/cache/storage.go
package cache

import (
	"context"
	"time"

	"PortfolioSite/internal/github"
	"PortfolioSite/internal/nowplaying"

	"github.com/go-redis/redis/v8"
)

const (
	ReposExpTime      = time.Hour
	NowPlayingExpTime = 30 * time.Second
)

type Storage struct {
	Repos      RepoCacher
	NowPlaying TrackCacher
}

// Get devuelve (nil, nil) cuando la clave no existe.
type RepoCacher interface {
	Get(ctx context.Context, user string) ([]github.Repo, error)
	Set(ctx context.Context, user string, repos []github.Repo) error
	Delete(ctx context.Context, user string) error
}

type TrackCacher interface {
	Get(ctx context.Context) (*nowplaying.Track, error)
	Set(ctx context.Context, track *nowplaying.Track) error
}

func NewRedisStorage(rdb *redis.Client) Storage {
	return Storage{
		Repos:      &RepoStore{rdb: rdb},
		NowPlaying: &TrackStore{rdb: rdb},
	}
}
