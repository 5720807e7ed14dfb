package github

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"splatradar/internal/models"
)

func strPtr(s string) *string { return &s }

func testClient(srv *httptest.Server) *Client {
	return &Client{token: "test-token", endpoint: srv.URL, httpClient: srv.Client()}
}

func TestSearchRepos(t *testing.T) {
	var gotReq *http.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotReq = r.Clone(r.Context())
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"total_count": 2,
			"items": [
				{"full_name": "a/x", "description": "a viewer", "html_url": "https://example.com/a/x",
				 "stargazers_count": 5, "language": "TypeScript", "created_at": "2026-08-30T01:02:03Z",
				 "topics": ["gaussian-splatting", "webgl"]},
				{"full_name": "b/y", "stargazers_count": 0}
			]
		}`))
	}))
	defer srv.Close()

	items, err := testClient(srv).SearchRepos(context.Background(), "gsplat viewer", "2026-08-29")
	require.NoError(t, err)
	require.Len(t, items, 2)

	q := gotReq.URL.Query()
	assert.Equal(t, "gsplat viewer created:>2026-08-29 fork:false", q.Get("q"))
	assert.Equal(t, "created", q.Get("sort"))
	assert.Equal(t, "desc", q.Get("order"))
	assert.Equal(t, "100", q.Get("per_page"))
	assert.Equal(t, "token test-token", gotReq.Header.Get("Authorization"))
	assert.Equal(t, "application/vnd.github.v3+json", gotReq.Header.Get("Accept"))

	assert.Equal(t, "a/x", items[0].FullName)
	require.NotNil(t, items[0].Description)
	assert.Equal(t, "a viewer", *items[0].Description)
	assert.Equal(t, 5, items[0].StargazersCount)
	assert.Nil(t, items[1].Description)
	assert.Nil(t, items[1].Language)
}

func TestSearchReposHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message": "rate limited"}`, http.StatusForbidden)
	}))
	defer srv.Close()

	items, err := testClient(srv).SearchRepos(context.Background(), "3dgs", "2026-08-29")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
	assert.Nil(t, items)
}

func TestSearchReposMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	_, err := testClient(srv).SearchRepos(context.Background(), "3dgs", "2026-08-29")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing response")
}

func TestItemToRepo(t *testing.T) {
	tests := []struct {
		name string
		item SearchItem
		want models.Repo
	}{
		{
			name: "all fields present",
			item: SearchItem{
				FullName:        "a/x",
				Description:     strPtr("a viewer"),
				HTMLURL:         "https://example.com/a/x",
				StargazersCount: 5,
				Language:        strPtr("TypeScript"),
				CreatedAt:       "2026-08-30T01:02:03Z",
				Topics:          []string{"webgl"},
			},
			want: models.Repo{
				Name:        "a/x",
				Description: "a viewer",
				URL:         "https://example.com/a/x",
				Stars:       5,
				Language:    "TypeScript",
				CreatedAt:   "2026-08-30T01:02:03Z",
				Topics:      []string{"webgl"},
			},
		},
		{
			name: "all fields missing",
			item: SearchItem{},
			want: models.Repo{
				Name:        "Unknown",
				Description: "No description",
				URL:         "",
				Stars:       0,
				Language:    "Unknown",
				CreatedAt:   "",
				Topics:      []string{},
			},
		},
		{
			name: "null description and language",
			item: SearchItem{FullName: "b/y", Description: nil, Language: nil},
			want: models.Repo{
				Name:        "b/y",
				Description: "No description",
				Language:    "Unknown",
				Topics:      []string{},
			},
		},
		{
			name: "empty strings treated as missing",
			item: SearchItem{FullName: "c/z", Description: strPtr(""), Language: strPtr("")},
			want: models.Repo{
				Name:        "c/z",
				Description: "No description",
				Language:    "Unknown",
				Topics:      []string{},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ItemToRepo(tt.item))
		})
	}
}
