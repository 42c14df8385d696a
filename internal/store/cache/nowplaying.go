// internal/store/cache/nowplaying.go
package cache

import (
	"context"
	"encoding/json"
	"errors"

	"PortfolioSite/internal/nowplaying"

	"github.com/go-redis/redis/v8"
)

const nowPlayingKey = "now-playing"

type TrackStore struct {
	rdb *redis.Client
}

func (s *TrackStore) Get(ctx context.Context) (*nowplaying.Track, error) {
	data, err := s.rdb.Get(ctx, nowPlayingKey).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	var track nowplaying.Track
	if err := json.Unmarshal([]byte(data), &track); err != nil {
		return nil, err
	}
	return &track, nil
}

func (s *TrackStore) Set(ctx context.Context, track *nowplaying.Track) error {
	data, err := json.Marshal(track)
	if err != nil {
		return err
	}
	return s.rdb.SetEX(ctx, nowPlayingKey, data, NowPlayingExpTime).Err()
}
