// internal/nowplaying/spotify.go
package nowplaying

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/spotify"
)

const defaultAPIURL = "https://api.spotify.com/v1"

// Track es el estado que pinta el widget de "escuchando ahora".
type Track struct {
	IsPlaying     bool   `json:"is_playing"`
	Title         string `json:"title,omitempty"`
	Artist        string `json:"artist,omitempty"`
	Album         string `json:"album,omitempty"`
	AlbumImageURL string `json:"album_image_url,omitempty"`
	SongURL       string `json:"song_url,omitempty"`
}

// Client cambia un refresh token de larga duración por access tokens.
// El access token se guarda hasta que caduca; la respuesta del reproductor
// se cachea fuera de aquí.
type Client struct {
	ClientID     string
	ClientSecret string
	RefreshToken string
	TokenURL     string
	APIURL       string
	HTTPClient   *http.Client

	once   sync.Once
	authed *http.Client
}

func NewClient(clientID, clientSecret, refreshToken string) *Client {
	return &Client{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RefreshToken: refreshToken,
		TokenURL:     spotify.Endpoint.TokenURL,
		APIURL:       defaultAPIURL,
		HTTPClient:   &http.Client{Timeout: 10 * time.Second},
	}
}

// Configured indica si hay credenciales; sin ellas el endpoint responde "no está sonando".
func (c *Client) Configured() bool {
	return c != nil && c.ClientID != "" && c.ClientSecret != "" && c.RefreshToken != ""
}

type currentlyPlaying struct {
	IsPlaying bool `json:"is_playing"`
	Item      *struct {
		Name    string `json:"name"`
		Artists []struct {
			Name string `json:"name"`
		} `json:"artists"`
		Album struct {
			Name   string `json:"name"`
			Images []struct {
				URL string `json:"url"`
			} `json:"images"`
		} `json:"album"`
		ExternalURLs struct {
			Spotify string `json:"spotify"`
		} `json:"external_urls"`
	} `json:"item"`
}

// Current devuelve la canción en curso. 204 de Spotify significa que no hay nada sonando.
func (c *Client) Current(ctx context.Context) (*Track, error) {
	if !c.Configured() {
		return &Track{IsPlaying: false}, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, strings.TrimRight(c.APIURL, "/")+"/me/player/currently-playing", nil)
	if err != nil {
		return nil, fmt.Errorf("nowplaying: build request: %w", err)
	}

	resp, err := c.client().Do(req)
	if err != nil {
		return nil, fmt.Errorf("nowplaying: request failed: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNoContent:
		return &Track{IsPlaying: false}, nil
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("nowplaying: unexpected status %d", resp.StatusCode)
	}

	var cp currentlyPlaying
	if err := json.NewDecoder(resp.Body).Decode(&cp); err != nil {
		return nil, fmt.Errorf("nowplaying: decode response: %w", err)
	}
	if cp.Item == nil {
		return &Track{IsPlaying: false}, nil
	}

	artists := make([]string, 0, len(cp.Item.Artists))
	for _, a := range cp.Item.Artists {
		artists = append(artists, a.Name)
	}

	track := &Track{
		IsPlaying: cp.IsPlaying,
		Title:     cp.Item.Name,
		Artist:    strings.Join(artists, ", "),
		Album:     cp.Item.Album.Name,
		SongURL:   cp.Item.ExternalURLs.Spotify,
	}
	if len(cp.Item.Album.Images) > 0 {
		track.AlbumImageURL = cp.Item.Album.Images[0].URL
	}
	return track, nil
}

// client devuelve un *http.Client que añade el Bearer y renueva el token
// con el refresh token cuando caduca.
func (c *Client) client() *http.Client {
	c.once.Do(func() {
		base := c.HTTPClient
		if base == nil {
			base = &http.Client{Timeout: 10 * time.Second}
		}

		cfg := oauth2.Config{
			ClientID:     c.ClientID,
			ClientSecret: c.ClientSecret,
			Endpoint: oauth2.Endpoint{
				AuthURL:   spotify.Endpoint.AuthURL,
				TokenURL:  c.TokenURL,
				AuthStyle: oauth2.AuthStyleInHeader,
			},
		}

		// el refresco no debe heredar la cancelación de una petición concreta
		ctx := context.WithValue(context.Background(), oauth2.HTTPClient, base)
		ts := cfg.TokenSource(ctx, &oauth2.Token{RefreshToken: c.RefreshToken})

		c.authed = oauth2.NewClient(ctx, ts)
		c.authed.Timeout = base.Timeout
	})
	return c.authed
}
