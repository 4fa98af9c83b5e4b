package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/strataai/strata/internal/config"
	"github.com/strataai/strata/pkg/models"
)

func TestNewOpenAIClientRequiresKey(t *testing.T) {
	if _, err := NewOpenAIClient(config.OpenAIConfig{}); err != ErrNoOpenAIKey {
		t.Errorf("NewOpenAIClient() error = %v, want ErrNoOpenAIKey", err)
	}
}

func TestOpenAIInvoke(t *testing.T) {
	var gotReq chatRequest
	var gotAuth, gotProject string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("path = %q, want /chat/completions", r.URL.Path)
		}
		gotAuth = r.Header.Get("Authorization")
		gotProject = r.Header.Get("OpenAI-Project")
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Fatalf("decoding request: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": "the answer"}},
			},
		})
	}))
	defer srv.Close()

	c, err := NewOpenAIClient(config.OpenAIConfig{
		APIKey:  "sk-test",
		BaseURL: srv.URL,
		Project: "proj-1",
	})
	if err != nil {
		t.Fatalf("NewOpenAIClient() error: %v", err)
	}

	text, err := c.Invoke(context.Background(), "gpt-4o-mini", "hello", 400)
	if err != nil {
		t.Fatalf("Invoke() error: %v", err)
	}
	if text != "the answer" {
		t.Errorf("Invoke() = %q, want %q", text, "the answer")
	}

	if gotAuth != "Bearer sk-test" {
		t.Errorf("Authorization = %q, want bearer key", gotAuth)
	}
	if gotProject != "proj-1" {
		t.Errorf("OpenAI-Project = %q, want proj-1", gotProject)
	}
	if gotReq.Model != "gpt-4o-mini" {
		t.Errorf("request model = %q, want gpt-4o-mini", gotReq.Model)
	}
	if gotReq.MaxTokens != 400 {
		t.Errorf("request max_tokens = %d, want 400", gotReq.MaxTokens)
	}
	if gotReq.Temperature != Temperature {
		t.Errorf("request temperature = %v, want %v", gotReq.Temperature, Temperature)
	}
	if len(gotReq.Messages) != 2 || gotReq.Messages[0].Role != "system" || gotReq.Messages[0].Content != SystemPrompt {
		t.Errorf("request messages = %+v, want system prompt first", gotReq.Messages)
	}
	if gotReq.Messages[1].Content != "hello" {
		t.Errorf("user message = %q, want hello", gotReq.Messages[1].Content)
	}
}

func TestOpenAIInvokeErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"rate limited"}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c, err := NewOpenAIClient(config.OpenAIConfig{APIKey: "sk-test", BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("NewOpenAIClient() error: %v", err)
	}

	_, err = c.Invoke(context.Background(), "gpt-4o", "hello", 400)
	if err == nil {
		t.Fatal("Invoke() error = nil for 429 response")
	}
	if !strings.Contains(err.Error(), "429") {
		t.Errorf("Invoke() error = %v, want status in message", err)
	}
}

func TestOpenAIInvokeNoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	}))
	defer srv.Close()

	c, err := NewOpenAIClient(config.OpenAIConfig{APIKey: "sk-test", BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("NewOpenAIClient() error: %v", err)
	}
	if _, err := c.Invoke(context.Background(), "gpt-4o", "hello", 400); err == nil {
		t.Error("Invoke() error = nil for empty choices")
	}
}

func TestBuildPrompt(t *testing.T) {
	spec := models.AgentSpec{Tone: "friendly", Target: "blog"}
	got := BuildPrompt("explain rate limiting", spec)

	if !strings.Contains(got, "friendly") {
		t.Errorf("prompt missing tone: %q", got)
	}
	if !strings.Contains(got, "blog") {
		t.Errorf("prompt missing target: %q", got)
	}
	if !strings.HasSuffix(got, "explain rate limiting") {
		t.Errorf("prompt should end with the task text: %q", got)
	}
}
