package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createArticle(t *testing.T, a *testAPI, body map[string]any) map[string]any {
	t.Helper()
	rec := a.admin(http.MethodPost, "/api/admin/articles", body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decodeObject(t, rec)
}

func TestArticleSlugConflicts(t *testing.T) {
	a := newTestAPI(t, Dependencies{}, nil)

	first := createArticle(t, a, map[string]any{"title": "Hello", "slug": "hello", "content": "One"})
	second := createArticle(t, a, map[string]any{"title": "Other", "slug": "other", "content": "Two"})

	rec := a.admin(http.MethodPost, "/api/admin/articles", map[string]any{"title": "Dup", "slug": "hello", "content": "Three"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Slug already exists", decodeObject(t, rec)["error"])

	rec = a.admin(http.MethodPut, "/api/admin/articles/"+second["id"].(string), map[string]any{"title": "Other", "slug": "hello", "content": "Two"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Slug already exists", decodeObject(t, rec)["error"])

	rec = a.admin(http.MethodPut, "/api/admin/articles/"+first["id"].(string), map[string]any{"title": "Hello again", "slug": "hello", "content": "One, edited"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "Hello again", decodeObject(t, rec)["title"])
}

func TestArticleSlugDerivedFromTitle(t *testing.T) {
	a := newTestAPI(t, Dependencies{}, nil)

	article := createArticle(t, a, map[string]any{"title": "Hello, World! Go_Tips", "content": "Body"})
	assert.Equal(t, "hello-world-go-tips", article["slug"])

	rec := a.admin(http.MethodPost, "/api/admin/articles", map[string]any{"title": "!!!", "content": "Body"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "slug", decodeObject(t, rec)["field"])
}

func TestUnpublishedArticlesStayHidden(t *testing.T) {
	a := newTestAPI(t, Dependencies{}, nil)

	draft := createArticle(t, a, map[string]any{"title": "Draft", "slug": "draft", "content": "Secret", "published": false})
	createArticle(t, a, map[string]any{"title": "Live", "slug": "live", "content": "Public", "published": true, "tags": []string{"go"}})

	rec := a.do(http.MethodGet, "/api/articles", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeObject(t, rec)
	articles := body["articles"].([]any)
	require.Len(t, articles, 1)
	assert.Equal(t, "live", articles[0].(map[string]any)["slug"])
	_, hasContent := articles[0].(map[string]any)["content"]
	assert.False(t, hasContent, "list items leave out the body")

	rec = a.do(http.MethodGet, "/api/articles/draft", nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	missing := a.do(http.MethodGet, "/api/articles/never-written", nil, "")
	assert.Equal(t, rec.Body.String(), missing.Body.String())

	rec = a.do(http.MethodGet, "/api/articles/live", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	live := decodeObject(t, rec)
	assert.Equal(t, "Public", live["content"])
	assert.Equal(t, []any{"go"}, live["tags"])

	// admin sees drafts
	rec = a.admin(http.MethodGet, "/api/admin/articles", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeArray(t, rec), 2)

	rec = a.admin(http.MethodGet, "/api/admin/articles/"+draft["id"].(string), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Secret", decodeObject(t, rec)["content"])
}

func TestPublishToggleRoundTrip(t *testing.T) {
	a := newTestAPI(t, Dependencies{}, nil)

	article := createArticle(t, a, map[string]any{"title": "Toggle", "slug": "toggle", "content": "Body"})
	path := "/api/admin/articles/" + article["id"].(string)

	publicCount := func() int {
		rec := a.do(http.MethodGet, "/api/articles", nil, "")
		require.Equal(t, http.StatusOK, rec.Code)
		return len(decodeObject(t, rec)["articles"].([]any))
	}
	require.Zero(t, publicCount())

	rec := a.admin(http.MethodPut, path, map[string]any{"title": "Toggle", "slug": "toggle", "content": "Body", "published": true})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, 1, publicCount())
	assert.Equal(t, http.StatusOK, a.do(http.MethodGet, "/api/articles/toggle", nil, "").Code)

	rec = a.admin(http.MethodPut, path, map[string]any{"title": "Toggle", "slug": "toggle", "content": "Body", "published": false})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Zero(t, publicCount())
	assert.Equal(t, http.StatusNotFound, a.do(http.MethodGet, "/api/articles/toggle", nil, "").Code)
}

func TestArticlePagination(t *testing.T) {
	a := newTestAPI(t, Dependencies{}, nil)

	for i := 0; i < 12; i++ {
		createArticle(t, a, map[string]any{
			"title":     fmt.Sprintf("Post %02d", i),
			"content":   "Body",
			"published": true,
		})
	}

	rec := a.do(http.MethodGet, "/api/articles?page=3&limit=5", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeObject(t, rec)
	assert.Len(t, body["articles"], 2)
	assert.Equal(t, map[string]any{"page": float64(3), "limit": float64(5), "total": float64(12), "totalPages": float64(3)}, body["pagination"])

	rec = a.do(http.MethodGet, "/api/articles?page=4&limit=5", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	body = decodeObject(t, rec)
	assert.Equal(t, []any{}, body["articles"])
	assert.Equal(t, float64(12), body["pagination"].(map[string]any)["total"])

	rec = a.do(http.MethodGet, "/api/articles?page=abc&limit=-1", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	body = decodeObject(t, rec)
	assert.Len(t, body["articles"], 10)
	assert.Equal(t, float64(1), body["pagination"].(map[string]any)["page"])
	assert.Equal(t, float64(2), body["pagination"].(map[string]any)["totalPages"])

	rec = a.do(http.MethodGet, "/api/articles?featured=true", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeObject(t, rec)["articles"], 3)
}

func TestArticleSearchAndTag(t *testing.T) {
	a := newTestAPI(t, Dependencies{}, nil)

	createArticle(t, a, map[string]any{"title": "Concurrency in Go", "content": "goroutines", "published": true, "tags": []string{"go", "concurrency"}})
	createArticle(t, a, map[string]any{"title": "Rust ownership", "content": "borrowing", "excerpt": "100% safe", "published": true, "tags": []string{"rust"}})

	rec := a.do(http.MethodGet, "/api/articles?search=GOROUTINES", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	articles := decodeObject(t, rec)["articles"].([]any)
	require.Len(t, articles, 1)
	assert.Equal(t, "Concurrency in Go", articles[0].(map[string]any)["title"])

	rec = a.do(http.MethodGet, "/api/articles?search=100%25", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeObject(t, rec)["articles"], 1)

	rec = a.do(http.MethodGet, "/api/articles?tag=rust", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	articles = decodeObject(t, rec)["articles"].([]any)
	require.Len(t, articles, 1)
	assert.Equal(t, "Rust ownership", articles[0].(map[string]any)["title"])
}
