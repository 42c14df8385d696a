// internal/store/cache/repos.go
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"PortfolioSite/internal/github"

	"github.com/go-redis/redis/v8"
)

type RepoStore struct {
	rdb *redis.Client
}

func reposKey(user string) string {
	return fmt.Sprintf("github-repos-%s", user)
}

func (s *RepoStore) Get(ctx context.Context, user string) ([]github.Repo, error) {
	data, err := s.rdb.Get(ctx, reposKey(user)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	var repos []github.Repo
	if err := json.Unmarshal([]byte(data), &repos); err != nil {
		return nil, err
	}
	return repos, nil
}

func (s *RepoStore) Set(ctx context.Context, user string, repos []github.Repo) error {
	data, err := json.Marshal(repos)
	if err != nil {
		return err
	}
	return s.rdb.SetEX(ctx, reposKey(user), data, ReposExpTime).Err()
}

func (s *RepoStore) Delete(ctx context.Context, user string) error {
	return s.rdb.Del(ctx, reposKey(user)).Err()
}
