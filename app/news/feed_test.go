package news

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
)

type feedEntry struct {
	Title       string
	Description string
	Link        string
	PubDate     string
}

func rssDocument(entries ...feedEntry) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?><rss version="2.0"><channel><title>Markets</title><link>https://example.com</link><description>Markets</description>`)
	for _, e := range entries {
		b.WriteString("<item>")
		fmt.Fprintf(&b, "<title>%s</title>", e.Title)
		fmt.Fprintf(&b, "<description>%s</description>", e.Description)
		fmt.Fprintf(&b, "<link>%s</link>", e.Link)
		if e.PubDate != "" {
			fmt.Fprintf(&b, "<pubDate>%s</pubDate>", e.PubDate)
		}
		b.WriteString("</item>")
	}
	b.WriteString("</channel></rss>")
	return b.String()
}

type feedServer struct {
	*httptest.Server
	mu   sync.Mutex
	hits map[string]int
}

func newFeedServer(t *testing.T, feeds map[string]string) *feedServer {
	fs := &feedServer{hits: make(map[string]int)}
	fs.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fs.mu.Lock()
		fs.hits[r.URL.Path]++
		fs.mu.Unlock()

		body, ok := feeds[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(body))
	}))
	t.Cleanup(fs.Close)
	return fs
}

func (fs *feedServer) hitCount(path string) int {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return fs.hits[path]
}

func writeFeedConfig(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name+".yml"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func catalogFor(t *testing.T, server *feedServer, paths ...string) *FeedCatalog {
	t.Helper()
	dir := t.TempDir()
	for i, p := range paths {
		writeFeedConfig(t, dir, fmt.Sprintf("%02d-feed", i), fmt.Sprintf("name: Feed %d\nurl: %s%s\n", i, server.URL, p))
	}
	catalog := NewFeedCatalog(dir, 2)
	if err := catalog.Run(); err != nil {
		t.Fatal(err)
	}
	return catalog
}

func TestFeedFetcherFiltersRelevantEntries(t *testing.T) {
	server := newFeedServer(t, map[string]string{
		"/markets": rssDocument(
			feedEntry{Title: "Wipro Ltd reports profit", Description: "Quarterly numbers", Link: "https://example.com/a", PubDate: "Mon, 10 Mar 2025 08:00:00 +0530"},
			feedEntry{Title: "Sensex closes flat", Description: "Markets were quiet", Link: "https://example.com/b"},
			feedEntry{Title: "IT stocks", Description: "wipro slips on layoffs", Link: "https://example.com/c"},
		),
	})

	fetcher := NewFeedFetcher(server.Client(), catalogFor(t, server, "/markets"), testClassifier(), "News Pulse/1.0")
	fetcher.now = func() time.Time { return time.Date(2025, 3, 10, 6, 0, 0, 0, time.UTC) }

	articles := fetcher.Fetch(context.Background(), testQuery("WIPRO", OneDay))

	assert.Equal(t, len(articles), 2)
	assert.Equal(t, articles[0].Title, "Wipro Ltd reports profit")
	assert.Equal(t, articles[0].Source.Name, "Feed 0")
	assert.Equal(t, articles[0].PublishedAt, "Mon, 10 Mar 2025 08:00:00 +0530")
	assert.Equal(t, articles[0].URL, "https://example.com/a")
	assert.Equal(t, articles[1].PublishedAt, "2025-03-10T06:00:00Z")
	assert.Equal(t, string(articles[1].Sentiment), "negative")
	if articles[0].URLToImage != nil {
		t.Error("Expected feed articles to have no image")
	}
}

func TestFeedFetcherInspectsFirstTenEntries(t *testing.T) {
	entries := make([]feedEntry, 0, 12)
	for i := 0; i < 10; i++ {
		entries = append(entries, feedEntry{Title: fmt.Sprintf("Unrelated story %d", i)})
	}
	entries = append(entries, feedEntry{Title: "Acme late entry"})

	server := newFeedServer(t, map[string]string{"/long": rssDocument(entries...)})
	fetcher := NewFeedFetcher(server.Client(), catalogFor(t, server, "/long"), testClassifier(), "")

	articles := fetcher.Fetch(context.Background(), testQuery("Acme", OneDay))

	assert.Equal(t, len(articles), 0)
}

func TestFeedFetcherSharedCap(t *testing.T) {
	relevant := func(prefix string, n int) string {
		entries := make([]feedEntry, 0, n)
		for i := 0; i < n; i++ {
			entries = append(entries, feedEntry{Title: fmt.Sprintf("Acme %s story %d", prefix, i)})
		}
		return rssDocument(entries...)
	}

	server := newFeedServer(t, map[string]string{
		"/a": relevant("alpha", 3),
		"/b": relevant("beta", 4),
		"/c": relevant("gamma", 4),
	})
	fetcher := NewFeedFetcher(server.Client(), catalogFor(t, server, "/a", "/b", "/c"), testClassifier(), "")

	articles := fetcher.Fetch(context.Background(), testQuery("Acme", OneDay))

	assert.Equal(t, len(articles), 5)
	assert.Equal(t, articles[0].Title, "Acme alpha story 0")
	assert.Equal(t, articles[3].Title, "Acme beta story 0")
	assert.Equal(t, articles[4].Title, "Acme beta story 1")
	assert.Equal(t, server.hitCount("/c"), 0)
}

func TestFeedFetcherSkipsFailingFeeds(t *testing.T) {
	server := newFeedServer(t, map[string]string{
		"/broken": "<rss><channel><item>",
		"/good":   rssDocument(feedEntry{Title: "Acme signs pact"}),
	})
	fetcher := NewFeedFetcher(server.Client(), catalogFor(t, server, "/missing", "/broken", "/good"), testClassifier(), "")

	articles := fetcher.Fetch(context.Background(), testQuery("Acme", OneDay))

	assert.Equal(t, len(articles), 1)
	assert.Equal(t, articles[0].Source.Name, "Feed 2")
	assert.Equal(t, server.hitCount("/missing"), 1)
}

func TestFeedFetcherNormalizesText(t *testing.T) {
	server := newFeedServer(t, map[string]string{
		"/nfc": rssDocument(feedEntry{Title: "  Acme cafe\u0301 opening  ", Description: "Cre\u0300me"}),
	})
	fetcher := NewFeedFetcher(server.Client(), catalogFor(t, server, "/nfc"), testClassifier(), "")

	articles := fetcher.Fetch(context.Background(), testQuery("Acme", OneDay))

	assert.Equal(t, len(articles), 1)
	assert.Equal(t, articles[0].Title, "Acme caf\u00e9 opening")
	assert.Equal(t, articles[0].Description, "Cr\u00e8me")
}

func TestFeedFetcherSendsUserAgent(t *testing.T) {
	var agent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		agent = r.Header.Get("User-Agent")
		w.Write([]byte(rssDocument()))
	}))
	defer server.Close()

	dir := t.TempDir()
	writeFeedConfig(t, dir, "only", "url: "+server.URL+"\n")
	catalog := NewFeedCatalog(dir, 2)
	if err := catalog.Run(); err != nil {
		t.Fatal(err)
	}

	NewFeedFetcher(server.Client(), catalog, testClassifier(), "News Pulse/1.0").Fetch(context.Background(), testQuery("Acme", OneDay))

	assert.Equal(t, agent, "News Pulse/1.0")
}

func TestFeedCatalogDefaults(t *testing.T) {
	catalog := NewFeedCatalog(filepath.Join(t.TempDir(), "missing"), 0)
	if err := catalog.Run(); err != nil {
		t.Fatal(err)
	}

	sources := catalog.Sources()
	if len(sources) != 3 {
		t.Fatalf("Expected 3 built-in feeds, got %d", len(sources))
	}

	names := []string{sources[0].Name, sources[1].Name, sources[2].Name}
	expected := []string{"Economic Times", "Business Standard", "LiveMint"}
	for i := range expected {
		if names[i] != expected[i] {
			t.Errorf("Expected feed %d to be %s, got %s", i, expected[i], names[i])
		}
	}
	if sources[0].Timeout != 10 {
		t.Errorf("Expected default timeout 10, got %d", sources[0].Timeout)
	}
}

func TestFeedCatalogLoadsDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFeedConfig(t, dir, "b-mint", "name: Mint\nurl: https://example.com/mint\ntimeout: 5\n")
	writeFeedConfig(t, dir, "a-et", "url: https://example.com/et\n")
	writeFeedConfig(t, dir, "c-off", "name: Off\nurl: https://example.com/off\nenabled: false\n")
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0644); err != nil {
		t.Fatal(err)
	}

	catalog := NewFeedCatalog(dir, 12)
	if err := catalog.Run(); err != nil {
		t.Fatal(err)
	}

	sources := catalog.Sources()
	if catalog.Count() != 2 {
		t.Fatalf("Expected 2 enabled feeds, got %d", catalog.Count())
	}
	if sources[0].ID != "a-et" || sources[0].Name != "a-et" || sources[0].Timeout != 12 {
		t.Errorf("Unexpected first source: %+v", sources[0])
	}
	if sources[1].Name != "Mint" || sources[1].Timeout != 5 {
		t.Errorf("Unexpected second source: %+v", sources[1])
	}
}

func TestFeedCatalogRejectsInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	writeFeedConfig(t, dir, "nourl", "name: Broken\n")

	if err := NewFeedCatalog(dir, 10).Run(); err == nil {
		t.Error("Expected error for feed without URL")
	}

	dir = t.TempDir()
	writeFeedConfig(t, dir, "negative", "url: https://example.com\ntimeout: -1\n")

	if err := NewFeedCatalog(dir, 10).Run(); err == nil {
		t.Error("Expected error for negative timeout")
	}
}
