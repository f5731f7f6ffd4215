package gemini_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"easyrent/pkg/assistant"
	"easyrent/pkg/assistant/gemini"
	"easyrent/pkg/serrors"

	"github.com/stretchr/testify/require"
)

// rtFunc allows using a function as an http.RoundTripper.
type rtFunc func(*http.Request) (*http.Response, error)

func (f rtFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func newTestClient(t *testing.T, fn rtFunc) *gemini.Client {
	t.Helper()
	c, err := gemini.New(context.Background(), gemini.Options{
		APIKey:            "test-key",
		Model:             "test-model",
		RequestsPerMinute: 5,
		HTTPClient:        &http.Client{Transport: fn},
	})
	require.NoError(t, err)

	return c
}

func reply(status int, body string) *http.Response {
	h := http.Header{}
	h.Set("Content-Type", "application/json")

	return &http.Response{StatusCode: status, Header: h, Body: io.NopCloser(strings.NewReader(body))}
}

func TestClient_VerifyText(t *testing.T) {
	var sent map[string]any
	c := newTestClient(t, func(r *http.Request) (*http.Response, error) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Contains(t, r.URL.Path, "test-model:generateContent")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&sent))

		return reply(http.StatusOK, `{"candidates":[{"content":{"role":"model","parts":[{"text":"{\"is_ok\": true}"}]}}]}`), nil
	})

	v, rl, err := c.VerifyText(context.Background(), "Review about a person:\nnice", []assistant.Attachment{
		{ContentType: "image/png", Data: []byte("png")},
	})
	require.NoError(t, err)
	require.True(t, v.OK)
	require.Equal(t, 5, rl.Limit)
	require.Equal(t, 4, rl.Remaining)

	contents := sent["contents"].([]any)
	parts := contents[0].(map[string]any)["parts"].([]any)
	require.Len(t, parts, 2)
	require.Equal(t, "Review about a person:\nnice", parts[0].(map[string]any)["text"])
	require.Contains(t, parts[1].(map[string]any), "inlineData")
}

func TestClient_RateLimited(t *testing.T) {
	c := newTestClient(t, func(r *http.Request) (*http.Response, error) {
		return reply(http.StatusTooManyRequests,
			`{"error":{"code":429,"message":"quota exceeded","status":"RESOURCE_EXHAUSTED"}}`), nil
	})

	_, rl, err := c.VerifyOwnership(context.Background(), assistant.OwnershipRequest{
		Document: assistant.Attachment{ContentType: "application/pdf", Data: []byte("pdf")},
	})
	require.ErrorIs(t, err, serrors.ErrRateLimited)
	require.Zero(t, rl.Remaining)
	require.False(t, rl.ResetAt.IsZero())
}

func TestClient_UnparsableReply(t *testing.T) {
	c := newTestClient(t, func(r *http.Request) (*http.Response, error) {
		return reply(http.StatusOK, `{"candidates":[{"content":{"role":"model","parts":[{"text":"sorry"}]}}]}`), nil
	})

	_, _, err := c.VerifyIdentity(context.Background(), nil)
	require.Error(t, err)
	require.NotErrorIs(t, err, serrors.ErrRateLimited)
}
