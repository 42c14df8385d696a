package github

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

const reposJSON = `[
	{"name":"old-fork","html_url":"https://github.com/ada/old-fork","stargazers_count":99,"fork":true,"pushed_at":"2025-01-01T00:00:00Z"},
	{"name":"archived","html_url":"https://github.com/ada/archived","stargazers_count":50,"archived":true,"pushed_at":"2025-01-01T00:00:00Z"},
	{"name":"site","html_url":"https://github.com/ada/site","stargazers_count":3,"language":"Go","pushed_at":"2026-02-01T00:00:00Z"},
	{"name":"engine","html_url":"https://github.com/ada/engine","stargazers_count":12,"topics":["math"],"pushed_at":"2025-06-01T00:00:00Z"},
	{"name":"notes","html_url":"https://github.com/ada/notes","stargazers_count":3,"pushed_at":"2026-03-01T00:00:00Z"}
]`

func testClient(t *testing.T, srv *httptest.Server, token string) *Client {
	t.Helper()

	c := newClient(srv.Client(), token)
	u, err := url.Parse(srv.URL + "/")
	require.NoError(t, err)
	c.api.BaseURL = u
	return c
}

func TestListRepos_FiltersAndSorts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/users/ada/repos", r.URL.Path)
		require.Equal(t, "owner", r.URL.Query().Get("type"))
		require.Equal(t, "Bearer secreto", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(reposJSON))
	}))
	defer srv.Close()

	c := testClient(t, srv, "secreto")

	repos, err := c.ListRepos(context.Background(), "ada", 0)
	require.NoError(t, err)
	require.Len(t, repos, 3)
	require.Equal(t, "engine", repos[0].Name)
	// mismo número de estrellas: primero el push más reciente
	require.Equal(t, "notes", repos[1].Name)
	require.Equal(t, "site", repos[2].Name)
	require.Equal(t, "https://github.com/ada/engine", repos[0].URL)
	require.Equal(t, []string{"math"}, repos[0].Topics)
	require.Equal(t, "Go", repos[2].Language)
}

func TestListRepos_FollowsPagination(t *testing.T) {
	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("page") == "2" {
			_, _ = w.Write([]byte(`[{"name":"second","stargazers_count":1,"pushed_at":"2026-01-01T00:00:00Z"}]`))
			return
		}
		w.Header().Set("Link", fmt.Sprintf(`<%s/users/ada/repos?page=2>; rel="next"`, srv.URL))
		_, _ = w.Write([]byte(`[{"name":"first","stargazers_count":5,"pushed_at":"2026-01-01T00:00:00Z"}]`))
	}))
	defer srv.Close()

	repos, err := testClient(t, srv, "").ListRepos(context.Background(), "ada", 0)
	require.NoError(t, err)
	require.Len(t, repos, 2)
	require.Equal(t, "first", repos[0].Name)
	require.Equal(t, "second", repos[1].Name)
}

func TestListRepos_AnonymousSendsNoAuthorization(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Empty(t, r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	repos, err := testClient(t, srv, "  ").ListRepos(context.Background(), "ada", 0)
	require.NoError(t, err)
	require.NotNil(t, repos)
	require.Empty(t, repos)
}

func TestListRepos_Limit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(reposJSON))
	}))
	defer srv.Close()

	repos, err := testClient(t, srv, "").ListRepos(context.Background(), "ada", 1)
	require.NoError(t, err)
	require.Len(t, repos, 1)
}

func TestListRepos_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"Not Found"}`))
	}))
	defer srv.Close()

	_, err := testClient(t, srv, "").ListRepos(context.Background(), "ada", 0)
	require.Error(t, err)
	require.Contains(t, err.Error(), "404")
}

func TestListRepos_RequiresUser(t *testing.T) {
	_, err := NewClient("").ListRepos(context.Background(), "  ", 0)
	require.Error(t, err)
}
