package seo

import (
	"aitoolshub/internal/observability"
	"aitoolshub/internal/store"
	"context"
	"encoding/xml"
	"fmt"
	"strings"
	"time"
)

const sitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

// SitemapStore defines the database operations required by Generator
type SitemapStore interface {
	ListPublishedToolSlugs(ctx context.Context) ([]store.SlugEntry, error)
	ListCategorySlugs(ctx context.Context) ([]store.SlugEntry, error)
}

// URLSet is the sitemap document root
type URLSet struct {
	XMLName xml.Name `xml:"urlset"`
	Xmlns   string   `xml:"xmlns,attr"`
	URLs    []URL    `xml:"url"`
}

type URL struct {
	Loc        string  `xml:"loc"`
	LastMod    string  `xml:"lastmod"`
	ChangeFreq string  `xml:"changefreq"`
	Priority   float64 `xml:"priority"`
}

type staticPage struct {
	path       string
	changeFreq string
	priority   float64
}

var staticPages = []staticPage{
	{"", "daily", 1},
	{"/tools", "daily", 0.9},
	{"/categories", "weekly", 0.8},
	{"/compare", "weekly", 0.7},
	{"/about", "monthly", 0.5},
	{"/contact", "monthly", 0.5},
}

// Generator builds the sitemap from published catalog pages
type Generator struct {
	store   SitemapStore
	baseURL string
	logger  *observability.Logger
	now     func() time.Time
}

func New(store SitemapStore, baseURL string, logger *observability.Logger) Generator {
	return Generator{
		store:   store,
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  logger,
		now:     time.Now,
	}
}

// Build lists static pages, then published tools, then categories
func (g *Generator) Build(ctx context.Context) (URLSet, error) {
	tools, err := g.store.ListPublishedToolSlugs(ctx)
	if err != nil {
		g.logger.Error(ctx, "failed to list tools for sitemap", err)
		return URLSet{}, err
	}
	categories, err := g.store.ListCategorySlugs(ctx)
	if err != nil {
		g.logger.Error(ctx, "failed to list categories for sitemap", err)
		return URLSet{}, err
	}

	now := lastMod(g.now())
	urls := make([]URL, 0, len(staticPages)+len(tools)+len(categories))
	for _, page := range staticPages {
		urls = append(urls, URL{Loc: g.baseURL + page.path, LastMod: now, ChangeFreq: page.changeFreq, Priority: page.priority})
	}
	for _, tool := range tools {
		urls = append(urls, URL{Loc: g.baseURL + "/tools/" + tool.Slug, LastMod: lastMod(tool.UpdatedAt), ChangeFreq: "weekly", Priority: 0.8})
	}
	for _, category := range categories {
		urls = append(urls, URL{Loc: g.baseURL + "/categories/" + category.Slug, LastMod: lastMod(category.UpdatedAt), ChangeFreq: "weekly", Priority: 0.7})
	}

	return URLSet{Xmlns: sitemapNamespace, URLs: urls}, nil
}

// Render serializes the sitemap with the XML declaration
func (g *Generator) Render(ctx context.Context) ([]byte, error) {
	set, err := g.Build(ctx)
	if err != nil {
		return nil, err
	}
	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal sitemap: %w", err)
	}
	return append([]byte(xml.Header), body...), nil
}

func lastMod(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
