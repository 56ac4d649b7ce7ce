package simplify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anthropics/anthropic-sdk-go/option"
)

func TestAnthropicGenerator(t *testing.T) {
	var body map[string]any
	var path, apiKey string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		apiKey = r.Header.Get("X-Api-Key")
		json.NewDecoder(r.Body).Decode(&body)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": "msg_01",
			"type": "message",
			"role": "assistant",
			"model": "claude-haiku-4-5",
			"content": [{"type": "text", "text": "The company earned more money than expected."}],
			"stop_reason": "end_turn",
			"usage": {"input_tokens": 12, "output_tokens": 9}
		}`))
	}))
	defer server.Close()

	generator := NewAnthropicGenerator("test-key", "", option.WithBaseURL(server.URL), option.WithMaxRetries(0))

	text, err := generator.Generate(context.Background(), "Explain this")
	if err != nil {
		t.Fatal(err)
	}

	if text != "The company earned more money than expected." {
		t.Errorf("Unexpected text '%s'", text)
	}
	if path != "/v1/messages" {
		t.Errorf("Expected /v1/messages, got %s", path)
	}
	if apiKey != "test-key" {
		t.Errorf("Expected API key header, got '%s'", apiKey)
	}
	if body["model"] != "claude-haiku-4-5" {
		t.Errorf("Expected default model, got %v", body["model"])
	}
	if generator.Name() != "anthropic/claude-haiku-4-5" {
		t.Errorf("Unexpected name %s", generator.Name())
	}
}

func TestAnthropicGeneratorError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"type":"error","error":{"type":"authentication_error","message":"invalid x-api-key"}}`))
	}))
	defer server.Close()

	generator := NewAnthropicGenerator("bad", "claude-test", option.WithBaseURL(server.URL), option.WithMaxRetries(0))

	if _, err := generator.Generate(context.Background(), "Explain this"); err == nil {
		t.Error("Expected error for unauthorized response")
	}
}
