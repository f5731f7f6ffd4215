// Package openai provides an assistant.Client backed by the OpenAI Assistants
// API. Every check uploads its attachments, starts a run of a preconfigured
// assistant on a fresh thread, polls the run and decodes the JSON verdict
// from the newest assistant message.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"easyrent/pkg/assistant"
	"easyrent/pkg/logger"
	"easyrent/pkg/serrors"

	"go.uber.org/zap"
)

const DefaultBaseURL = "https://api.openai.com/v1"

// Options configure the client.
type Options struct {
	BaseURL      string
	APIKey       string
	Organization string
	// ModeratorAssistantID checks listing and review content.
	ModeratorAssistantID string
	// OwnershipAssistantID checks ownership documents.
	OwnershipAssistantID string
	// IdentityAssistantID checks passports.
	IdentityAssistantID string
	// PollInterval is the delay between run status checks.
	PollInterval time.Duration
}

// Client talks to the OpenAI REST API. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	options    Options
}

var _ assistant.Client = (*Client)(nil)

// New constructs a Client using the given http.Client.
func New(httpClient *http.Client, options Options) *Client {
	if options.BaseURL == "" {
		options.BaseURL = DefaultBaseURL
	}
	options.BaseURL = strings.TrimRight(options.BaseURL, "/")
	if options.PollInterval <= 0 {
		options.PollInterval = 200 * time.Millisecond
	}

	return &Client{httpClient: httpClient, options: options}
}

// ParseRateLimit extracts the request rate-limit headers. The reset header is
// a duration such as "6m0s" or "20ms". A response without the headers yields
// a zero status.
func ParseRateLimit(h http.Header) (assistant.RateLimitStatus, error) {
	resetStr := h.Get("X-Ratelimit-Reset-Requests")
	if resetStr == "" {
		return assistant.RateLimitStatus{}, nil
	}
	reset, err := time.ParseDuration(resetStr)
	if err != nil {
		return assistant.RateLimitStatus{}, fmt.Errorf("could not parse reset duration: %w", err)
	}
	atoi := func(s string) int {
		n, _ := strconv.Atoi(s)

		return n
	}

	return assistant.RateLimitStatus{
		Limit:     atoi(h.Get("X-Ratelimit-Limit-Requests")),
		Remaining: atoi(h.Get("X-Ratelimit-Remaining-Requests")),
		ResetAt:   time.Now().Add(reset).UTC(),
	}, nil
}

// session tracks the freshest rate-limit status seen during one check.
type session struct {
	c  *Client
	rl assistant.RateLimitStatus
}

func (s *session) do(ctx context.Context, method, path string, body io.Reader, contentType string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, s.c.options.BaseURL+path, body)
	if err != nil {
		return fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.c.options.APIKey)
	req.Header.Set("OpenAI-Beta", "assistants=v2")
	if s.c.options.Organization != "" {
		req.Header.Set("OpenAI-Organization", s.c.options.Organization)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := s.c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("could not send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if rl, err := ParseRateLimit(resp.Header); err != nil {
		logger.Warn(ctx, "could not parse openai rate limit", zap.Error(err))
	} else if !rl.ResetAt.IsZero() {
		s.rl = rl
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("could not read response body: %w", err)
	}
	if resp.StatusCode == http.StatusTooManyRequests {
		return serrors.With(serrors.ErrRateLimited, "rate limited: %s", strings.TrimSpace(string(b)))
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%s %s failed with %d: %s", method, path, resp.StatusCode, strings.TrimSpace(string(b)))
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("could not decode response: %w", err)
	}

	return nil
}

func (s *session) postJSON(ctx context.Context, path string, in, out any) error {
	b, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("could not marshal request: %w", err)
	}

	return s.do(ctx, http.MethodPost, path, bytes.NewReader(b), "application/json", out)
}

// https://platform.openai.com/docs/api-reference/files/create
func (s *session) upload(ctx context.Context, a assistant.Attachment) (string, error) {
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	if err := w.WriteField("purpose", "vision"); err != nil {
		return "", fmt.Errorf("could not write purpose: %w", err)
	}
	name := a.Name
	if name == "" {
		name = "attachment"
	}
	part, err := w.CreateFormFile("file", name)
	if err != nil {
		return "", fmt.Errorf("could not create form file: %w", err)
	}
	if _, err := part.Write(a.Data); err != nil {
		return "", fmt.Errorf("could not write form file: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("could not close multipart writer: %w", err)
	}

	var file struct {
		ID string `json:"id"`
	}
	if err := s.do(ctx, http.MethodPost, "/files", &body, w.FormDataContentType(), &file); err != nil {
		return "", fmt.Errorf("could not upload %s: %w", name, err)
	}

	return file.ID, nil
}

type contentPart struct {
	Type      string `json:"type"`
	Text      string `json:"text,omitempty"`
	ImageFile *struct {
		FileID string `json:"file_id"`
	} `json:"image_file,omitempty"`
}

type run struct {
	ID        string `json:"id"`
	Status    string `json:"status"`
	LastError *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"last_error"`
}

// ask runs assistantID on a new thread with text and attachments and decodes
// the reply into out.
func (c *Client) ask(ctx context.Context,
	assistantID, text string,
	attachments []assistant.Attachment,
	out any) (assistant.RateLimitStatus, error) {
	s := &session{c: c}

	var fileIDs []string
	defer func() {
		// files are only needed while the run is alive
		for _, id := range fileIDs {
			if err := s.do(context.WithoutCancel(ctx), http.MethodDelete, "/files/"+id, nil, "", nil); err != nil {
				logger.Warn(ctx, "could not delete uploaded file", zap.String("fileID", id), zap.Error(err))
			}
		}
	}()
	for _, a := range attachments {
		id, err := s.upload(ctx, a)
		if err != nil {
			return s.rl, err
		}
		fileIDs = append(fileIDs, id)
	}

	var thread struct {
		ID string `json:"id"`
	}
	if err := s.postJSON(ctx, "/threads", struct{}{}, &thread); err != nil {
		return s.rl, fmt.Errorf("could not create thread: %w", err)
	}

	parts := []contentPart{{Type: "text", Text: text}}
	for _, id := range fileIDs {
		p := contentPart{Type: "image_file"}
		p.ImageFile = &struct {
			FileID string `json:"file_id"`
		}{FileID: id}
		parts = append(parts, p)
	}
	if err := s.postJSON(ctx, "/threads/"+thread.ID+"/messages", map[string]any{
		"role":    "user",
		"content": parts,
	}, nil); err != nil {
		return s.rl, fmt.Errorf("could not post message: %w", err)
	}

	var r run
	if err := s.postJSON(ctx, "/threads/"+thread.ID+"/runs", map[string]string{
		"assistant_id": assistantID,
	}, &r); err != nil {
		return s.rl, fmt.Errorf("could not create run: %w", err)
	}

	if err := c.waitRun(ctx, s, thread.ID, r); err != nil {
		return s.rl, err
	}

	var messages struct {
		Data []struct {
			Role    string `json:"role"`
			Content []struct {
				Type string `json:"type"`
				Text struct {
					Value string `json:"value"`
				} `json:"text"`
			} `json:"content"`
		} `json:"data"`
	}
	if err := s.do(ctx, http.MethodGet, "/threads/"+thread.ID+"/messages?order=desc&limit=20", nil, "", &messages); err != nil {
		return s.rl, fmt.Errorf("could not list messages: %w", err)
	}
	for _, m := range messages.Data {
		if m.Role != "assistant" {
			continue
		}
		for _, content := range m.Content {
			if content.Type != "text" {
				continue
			}
			if err := assistant.ParseVerdict(content.Text.Value, out); err != nil {
				return s.rl, err
			}

			return s.rl, nil
		}
	}

	return s.rl, fmt.Errorf("assistant %s returned no reply", assistantID)
}

func (c *Client) waitRun(ctx context.Context, s *session, threadID string, r run) error {
	ticker := time.NewTicker(c.options.PollInterval)
	defer ticker.Stop()

	for {
		switch r.Status {
		case "completed":
			return nil
		case "failed", "cancelled", "expired", "incomplete":
			if r.LastError != nil {
				if r.LastError.Code == "rate_limit_exceeded" {
					return serrors.With(serrors.ErrRateLimited, "run %s: %s", r.ID, r.LastError.Message)
				}

				return fmt.Errorf("run %s %s: %s", r.ID, r.Status, r.LastError.Message)
			}

			return fmt.Errorf("run %s %s", r.ID, r.Status)
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("waiting for run %s: %w", r.ID, ctx.Err())
		case <-ticker.C:
		}

		if err := s.do(ctx, http.MethodGet, "/threads/"+threadID+"/runs/"+r.ID, nil, "", &r); err != nil {
			return fmt.Errorf("could not retrieve run: %w", err)
		}
	}
}

func (c *Client) VerifyText(ctx context.Context,
	text string,
	images []assistant.Attachment) (assistant.TextVerdict, assistant.RateLimitStatus, error) {
	var v assistant.TextVerdict
	rl, err := c.ask(ctx, c.options.ModeratorAssistantID, "Input text: "+text, images, &v)
	if err != nil {
		return assistant.TextVerdict{}, rl, err
	}

	return v, rl, nil
}

func (c *Client) VerifyOwnership(ctx context.Context,
	req assistant.OwnershipRequest) (assistant.OwnershipVerdict, assistant.RateLimitStatus, error) {
	var v assistant.OwnershipVerdict
	rl, err := c.ask(ctx, c.options.OwnershipAssistantID, req.Prompt(), []assistant.Attachment{req.Document}, &v)
	if err != nil {
		return assistant.OwnershipVerdict{}, rl, err
	}

	return v, rl, nil
}

func (c *Client) VerifyIdentity(ctx context.Context,
	documents []assistant.Attachment) (assistant.IdentityVerdict, assistant.RateLimitStatus, error) {
	var v assistant.IdentityVerdict
	rl, err := c.ask(ctx, c.options.IdentityAssistantID, "Validate this passport and return json", documents, &v)
	if err != nil {
		return assistant.IdentityVerdict{}, rl, err
	}

	return v, rl, nil
}
