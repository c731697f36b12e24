package seo

import (
	"aitoolshub/internal/observability"
	"aitoolshub/internal/store"
	"context"
	"encoding/xml"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeStore struct {
	tools      []store.SlugEntry
	categories []store.SlugEntry
	err        error
}

func (f fakeStore) ListPublishedToolSlugs(context.Context) ([]store.SlugEntry, error) {
	return f.tools, f.err
}

func (f fakeStore) ListCategorySlugs(context.Context) ([]store.SlugEntry, error) {
	return f.categories, nil
}

var fixedNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func newGenerator(fs fakeStore) Generator {
	g := New(fs, "https://hub.test/", observability.NewLogger())
	g.now = func() time.Time { return fixedNow }
	return g
}

func TestBuild(t *testing.T) {
	updated := time.Date(2026, 2, 1, 8, 30, 0, 0, time.UTC)
	g := newGenerator(fakeStore{
		tools:      []store.SlugEntry{{Slug: "copilot", UpdatedAt: updated}},
		categories: []store.SlugEntry{{Slug: "coding", UpdatedAt: updated}},
	})

	set, err := g.Build(context.Background())

	require.NoError(t, err)
	require.Len(t, set.URLs, len(staticPages)+2)
	assert.Equal(t, "https://hub.test", set.URLs[0].Loc)
	assert.Equal(t, 1.0, set.URLs[0].Priority)
	assert.Equal(t, "2026-03-10T12:00:00Z", set.URLs[0].LastMod)

	tool := set.URLs[len(staticPages)]
	assert.Equal(t, "https://hub.test/tools/copilot", tool.Loc)
	assert.Equal(t, "2026-02-01T08:30:00Z", tool.LastMod)
	assert.Equal(t, 0.8, tool.Priority)

	category := set.URLs[len(staticPages)+1]
	assert.Equal(t, "https://hub.test/categories/coding", category.Loc)
	assert.Equal(t, 0.7, category.Priority)
}

func TestHandleSitemap(t *testing.T) {
	h := NewHandler(newGenerator(fakeStore{tools: []store.SlugEntry{{Slug: "copilot", UpdatedAt: fixedNow}}}), observability.NewLogger())
	r := gin.New()
	r.GET("/sitemap.xml", h.HandleSitemap)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/sitemap.xml", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.HasPrefix(w.Body.String(), "<?xml"))
	assert.Contains(t, w.Header().Get("Content-Type"), "application/xml")

	var set URLSet
	require.NoError(t, xml.Unmarshal(w.Body.Bytes(), &set))
	assert.Contains(t, w.Body.String(), `xmlns="`+sitemapNamespace+`"`)
	assert.Len(t, set.URLs, len(staticPages)+1)
}

func TestHandleSitemap_StoreFailure(t *testing.T) {
	h := NewHandler(newGenerator(fakeStore{err: errors.New("db down")}), observability.NewLogger())
	r := gin.New()
	r.GET("/sitemap.xml", h.HandleSitemap)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/sitemap.xml", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
