package anthropic

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"resume-builder/internal/llm"
)

func messageServer(t *testing.T, status int, body string, seen *map[string]any, calls *int32) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(calls, 1)
		if !strings.HasSuffix(r.URL.Path, "/v1/messages") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if seen != nil {
			if err := json.NewDecoder(r.Body).Decode(seen); err != nil {
				t.Errorf("decode request: %v", err)
			}
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
}

func TestNewClientRequiresKey(t *testing.T) {
	if _, err := NewClient(Options{}); err == nil {
		t.Fatalf("expected error for missing key")
	}
}

func TestGenerateJoinsTextBlocks(t *testing.T) {
	var seen map[string]any
	var calls int32
	server := messageServer(t, http.StatusOK, `{
		"id":"msg_1","type":"message","role":"assistant","model":"claude-test",
		"content":[{"type":"text","text":"Summary\n"},{"type":"text","text":"- Led team"}],
		"stop_reason":"end_turn","usage":{"input_tokens":10,"output_tokens":5}
	}`, &seen, &calls)
	defer server.Close()

	client, err := NewClient(Options{APIKey: "sk-ant", Model: "claude-test", BaseURL: server.URL, Temperature: 0.2, MaxTokens: 800})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	text, err := client.Generate(context.Background(), llm.Prompt{System: "sys", User: "user"})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if text != "Summary\n- Led team" {
		t.Fatalf("unexpected text %q", text)
	}
	if seen["model"] != "claude-test" || seen["max_tokens"] != float64(800) {
		t.Fatalf("unexpected request %v", seen)
	}
	if _, ok := seen["system"]; !ok {
		t.Fatalf("expected system prompt in request %v", seen)
	}
}

func TestGenerateDoesNotRetry(t *testing.T) {
	var calls int32
	server := messageServer(t, http.StatusInternalServerError, `{"type":"error","error":{"type":"api_error","message":"down"}}`, nil, &calls)
	defer server.Close()

	client, _ := NewClient(Options{APIKey: "sk-ant", BaseURL: server.URL})
	_, err := client.Generate(context.Background(), llm.Prompt{User: "x"})
	if err == nil {
		t.Fatalf("expected error")
	}
	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Fatalf("expected exactly one call, got %d", got)
	}
}

func TestGenerateEmptyContent(t *testing.T) {
	var calls int32
	server := messageServer(t, http.StatusOK, `{"id":"msg_1","type":"message","role":"assistant","model":"m","content":[],"stop_reason":"end_turn","usage":{"input_tokens":1,"output_tokens":0}}`, nil, &calls)
	defer server.Close()

	client, _ := NewClient(Options{APIKey: "sk-ant", BaseURL: server.URL})
	_, err := client.Generate(context.Background(), llm.Prompt{User: "x"})
	if !errors.Is(err, llm.ErrEmptyResponse) {
		t.Fatalf("expected ErrEmptyResponse, got %v", err)
	}
}
