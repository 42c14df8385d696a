// internal/github/github.go
package github

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	gh "github.com/google/go-github/v68/github"
)

// Repo es lo que mostramos en la sección de proyectos.
type Repo struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	Homepage    string    `json:"homepage,omitempty"`
	Language    string    `json:"language,omitempty"`
	Topics      []string  `json:"topics,omitempty"`
	Stars       int       `json:"stars"`
	Forks       int       `json:"forks"`
	PushedAt    time.Time `json:"pushed_at"`
}

type Client struct {
	api *gh.Client
}

// NewClient usa token si viene; sin token GitHub aplica el límite anónimo.
func NewClient(token string) *Client {
	return newClient(&http.Client{Timeout: 10 * time.Second}, token)
}

func newClient(httpClient *http.Client, token string) *Client {
	api := gh.NewClient(httpClient)
	if token = strings.TrimSpace(token); token != "" {
		api = api.WithAuthToken(token)
	}
	return &Client{api: api}
}

// ListRepos devuelve los repos públicos de user sin forks ni archivados,
// ordenados por estrellas y luego por último push. limit <= 0 devuelve todos.
func (c *Client) ListRepos(ctx context.Context, user string, limit int) ([]Repo, error) {
	user = strings.TrimSpace(user)
	if user == "" {
		return nil, fmt.Errorf("github: user is required")
	}

	opts := &gh.RepositoryListByUserOptions{
		Type:        "owner",
		Sort:        "updated",
		ListOptions: gh.ListOptions{PerPage: 100},
	}

	var repos []Repo
	for {
		page, resp, err := c.api.Repositories.ListByUser(ctx, user, opts)
		if err != nil {
			return nil, fmt.Errorf("github: list repos: %w", err)
		}

		for _, r := range page {
			if r.GetFork() || r.GetArchived() {
				continue
			}
			repos = append(repos, Repo{
				Name:        r.GetName(),
				Description: r.GetDescription(),
				URL:         r.GetHTMLURL(),
				Homepage:    r.GetHomepage(),
				Language:    r.GetLanguage(),
				Topics:      r.Topics,
				Stars:       r.GetStargazersCount(),
				Forks:       r.GetForksCount(),
				PushedAt:    r.GetPushedAt().Time,
			})
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	sort.SliceStable(repos, func(i, j int) bool {
		if repos[i].Stars != repos[j].Stars {
			return repos[i].Stars > repos[j].Stars
		}
		return repos[i].PushedAt.After(repos[j].PushedAt)
	})

	if repos == nil {
		repos = []Repo{}
	}
	if limit > 0 && len(repos) > limit {
		repos = repos[:limit]
	}
	return repos, nil
}
