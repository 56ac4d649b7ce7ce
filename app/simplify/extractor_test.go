package simplify

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

const articleHTML = `<!DOCTYPE html>
<html>
<head><title>Acme posts record profit</title></head>
<body>
<nav><a href="/">Home</a> <a href="/markets">Markets</a></nav>
<article>
<h1>Acme posts record profit</h1>
<p>Acme Industries reported a record quarterly profit on Monday, driven by strong demand for its products across domestic and export markets. The company said revenue grew sharply from a year earlier.</p>
<p>Shares of the company rose in early trade after the announcement, as investors welcomed the better than expected numbers and an improved outlook for the rest of the fiscal year.</p>
<p>Analysts said the results showed that the cost cutting programme launched last year had started to pay off, and several brokerages raised their price targets on the stock.</p>
</article>
<footer>Copyright Example News</footer>
</body>
</html>`

func TestExtractorRun(t *testing.T) {
	var agent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		agent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(articleHTML))
	}))
	defer server.Close()

	extractor := NewExtractor(server.Client(), "News Pulse/1.0", time.Second)

	page, err := extractor.Run(context.Background(), server.URL+"/acme")
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(page.Text, "record quarterly profit") {
		t.Errorf("Expected article text, got '%s'", page.Text)
	}
	if strings.Contains(page.Text, "Copyright Example News") {
		t.Error("Expected footer to be stripped")
	}
	if page.Title == "" {
		t.Error("Expected title")
	}
	if agent != "News Pulse/1.0" {
		t.Errorf("Expected user agent to be sent, got '%s'", agent)
	}
}

func TestExtractorRejectsInvalidURL(t *testing.T) {
	extractor := NewExtractor(nil, "", time.Second)

	for _, raw := range []string{"", "not a url", "ftp://example.com/file", "/relative/path"} {
		if _, err := extractor.Run(context.Background(), raw); !errors.Is(err, ErrInvalidURL) {
			t.Errorf("Expected ErrInvalidURL for %q, got %v", raw, err)
		}
	}
}

func TestExtractorRejectsNonHTML(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/pdf")
		w.Write([]byte("%PDF-1.4"))
	}))
	defer server.Close()

	_, err := NewExtractor(server.Client(), "", time.Second).Run(context.Background(), server.URL)
	if !errors.Is(err, ErrNotHTML) {
		t.Errorf("Expected ErrNotHTML, got %v", err)
	}
}

func TestExtractorHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	if _, err := NewExtractor(server.Client(), "", time.Second).Run(context.Background(), server.URL); err == nil {
		t.Error("Expected error for 404 response")
	}
}
