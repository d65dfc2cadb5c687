package usecase

import (
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"giramae/internal/usecase/interfaces"

	"github.com/gosimple/slug"
)

var (
	ErrSitemapNotFound = errors.New("sitemap not found")
	ErrSitemapUpstream = errors.New("sitemap upstream failure")
)

const (
	staticSitemapMaxAge  = 24 * time.Hour
	dynamicSitemapMaxAge = time.Hour
	sitemapXMLNS         = "http://www.sitemaps.org/schemas/sitemap/0.9"
)

// proxiedSitemaps are the names the public sitemap route forwards upstream.
var proxiedSitemaps = map[string]struct{}{
	"index":      {},
	"posts":      {},
	"categories": {},
	"tags":       {},
	"static":     {},
}

var staticPages = []struct {
	path       string
	changefreq string
	priority   string
}{
	{"/", "daily", "1.0"},
	{"/feed", "hourly", "0.9"},
	{"/como-funciona", "monthly", "0.8"},
	{"/sobre", "monthly", "0.6"},
	{"/blog", "daily", "0.8"},
	{"/missoes", "weekly", "0.5"},
	{"/termos", "yearly", "0.3"},
	{"/privacidade", "yearly", "0.3"},
}

// Sitemap is a rendered document together with how long clients may cache it.
type Sitemap struct {
	Body   []byte
	MaxAge time.Duration
}

type ISitemapUseCase interface {
	Generate(ctx context.Context, name string) (Sitemap, error)
	Proxy(ctx context.Context, name string) ([]byte, error)
}

type SitemapUseCase struct {
	blog     interfaces.IBlogRepository
	upstream interfaces.ISitemapUpstream
	siteURL  string
	now      func() time.Time
}

var _ ISitemapUseCase = (*SitemapUseCase)(nil)

func NewSitemapUseCase(blog interfaces.IBlogRepository, upstream interfaces.ISitemapUpstream, siteURL string) *SitemapUseCase {
	return &SitemapUseCase{
		blog:     blog,
		upstream: upstream,
		siteURL:  strings.TrimRight(strings.TrimSpace(siteURL), "/"),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

type sitemapIndex struct {
	XMLName  xml.Name       `xml:"sitemapindex"`
	XMLNS    string         `xml:"xmlns,attr"`
	Sitemaps []sitemapEntry `xml:"sitemap"`
}

type sitemapEntry struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

// Generate renders one of index, static, posts, categories or tags.
func (u *SitemapUseCase) Generate(ctx context.Context, name string) (Sitemap, error) {
	name = strings.TrimSpace(name)
	switch name {
	case "index":
		return u.render(u.index(), dynamicSitemapMaxAge)
	case "static":
		return u.render(u.static(), staticSitemapMaxAge)
	case "posts", "categories", "tags":
		if u.blog == nil {
			return Sitemap{}, errors.New("blog repository not configured")
		}
		set, err := u.dynamic(ctx, name)
		if err != nil {
			log.Printf("[sitemap][usecase] generate failed name=%s err=%v", name, err)
			return Sitemap{}, err
		}
		return u.render(set, dynamicSitemapMaxAge)
	default:
		return Sitemap{}, ErrSitemapNotFound
	}
}

// Proxy fetches a sitemap from the functions host. Unknown names never reach upstream.
func (u *SitemapUseCase) Proxy(ctx context.Context, name string) ([]byte, error) {
	name = strings.TrimSpace(name)
	if _, ok := proxiedSitemaps[name]; !ok {
		return nil, ErrSitemapNotFound
	}
	if u.upstream == nil {
		return nil, fmt.Errorf("%w: upstream not configured", ErrSitemapUpstream)
	}
	body, err := u.upstream.Fetch(ctx, name)
	if err != nil {
		log.Printf("[sitemap][usecase] upstream fetch failed name=%s err=%v", name, err)
		return nil, fmt.Errorf("%w: %v", ErrSitemapUpstream, err)
	}
	return body, nil
}

func (u *SitemapUseCase) index() sitemapIndex {
	today := u.now().Format("2006-01-02")
	idx := sitemapIndex{XMLNS: sitemapXMLNS}
	for _, name := range []string{"static", "posts", "categories", "tags"} {
		idx.Sitemaps = append(idx.Sitemaps, sitemapEntry{
			Loc:     fmt.Sprintf("%s/api/sitemap/%s", u.siteURL, name),
			LastMod: today,
		})
	}
	return idx
}

func (u *SitemapUseCase) static() urlSet {
	set := urlSet{XMLNS: sitemapXMLNS}
	for _, p := range staticPages {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        u.siteURL + p.path,
			ChangeFreq: p.changefreq,
			Priority:   p.priority,
		})
	}
	return set
}

func (u *SitemapUseCase) dynamic(ctx context.Context, name string) (urlSet, error) {
	set := urlSet{XMLNS: sitemapXMLNS}
	switch name {
	case "posts":
		posts, err := u.blog.ListPublishedPosts(ctx)
		if err != nil {
			return urlSet{}, fmt.Errorf("list posts: %w", err)
		}
		for _, p := range posts {
			s := p.Slug
			if s == "" {
				s = slug.Make(p.Title)
			}
			set.URLs = append(set.URLs, sitemapURL{
				Loc:        fmt.Sprintf("%s/blog/%s", u.siteURL, s),
				LastMod:    lastMod(p.UpdatedAt, p.PublishedAt),
				ChangeFreq: "weekly",
				Priority:   "0.7",
			})
		}
	case "categories":
		cats, err := u.blog.ListCategories(ctx)
		if err != nil {
			return urlSet{}, fmt.Errorf("list categories: %w", err)
		}
		for _, c := range cats {
			s := c.Slug
			if s == "" {
				s = slug.Make(c.Name)
			}
			set.URLs = append(set.URLs, sitemapURL{
				Loc:        fmt.Sprintf("%s/blog/categoria/%s", u.siteURL, s),
				LastMod:    lastMod(c.UpdatedAt, time.Time{}),
				ChangeFreq: "weekly",
				Priority:   "0.6",
			})
		}
	case "tags":
		tags, err := u.blog.ListTags(ctx)
		if err != nil {
			return urlSet{}, fmt.Errorf("list tags: %w", err)
		}
		for _, t := range tags {
			s := t.Slug
			if s == "" {
				s = slug.Make(t.Name)
			}
			set.URLs = append(set.URLs, sitemapURL{
				Loc:        fmt.Sprintf("%s/blog/tag/%s", u.siteURL, s),
				LastMod:    lastMod(t.UpdatedAt, time.Time{}),
				ChangeFreq: "weekly",
				Priority:   "0.5",
			})
		}
	}
	return set, nil
}

func (u *SitemapUseCase) render(doc any, maxAge time.Duration) (Sitemap, error) {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return Sitemap{}, err
	}
	buf.WriteString("\n")
	return Sitemap{Body: buf.Bytes(), MaxAge: maxAge}, nil
}

func lastMod(primary, fallback time.Time) string {
	if !primary.IsZero() {
		return primary.UTC().Format("2006-01-02")
	}
	if !fallback.IsZero() {
		return fallback.UTC().Format("2006-01-02")
	}
	return ""
}
