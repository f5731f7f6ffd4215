// Package gemini provides an assistant.Client backed by the Gemini API.
// Unlike the OpenAI assistants, every check is a single GenerateContent
// call whose system instruction carries the check's rules.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"easyrent/pkg/assistant"
	"easyrent/pkg/serrors"

	"google.golang.org/genai"
)

const DefaultModel = "gemini-2.5-flash"

const (
	textInstruction = `You moderate a real estate marketplace. Check the text and the photos.
Reject spam, contact details, offensive or discriminatory content, content unrelated to
real estate and photos that do not show the property. Answer with JSON only:
{"is_ok": bool, "reason_details": string}. reason_details explains a rejection in Ukrainian.`

	ownershipInstruction = `You verify real estate ownership documents. The message contains
the owner's full name, optionally the birth date, and the city and street of the property.
Check that the document is a genuine ownership document, that it is issued to this person
and that the address matches. Answer with JSON only:
{"valid": bool, "belongs_to_user": bool, "error_details": string}.`

	identityInstruction = `You verify Ukrainian passports. Read the document photos and answer
with JSON only: {"image_quality": "low"|"medium"|"high", "valid_data": bool,
"first_name": string, "second_name": string, "patronymic": string,
"birth_date": "YYYY-MM-DD", "error_details": string, "is_front_side": bool}.`
)

// Options configure the client.
type Options struct {
	APIKey string
	Model  string
	// RequestsPerMinute is the quota of the API key. Gemini does not report
	// rate-limit headers, so the client tracks its own window.
	RequestsPerMinute int
	HTTPClient        *http.Client
}

// Client implements assistant.Client with google.golang.org/genai.
type Client struct {
	models *genai.Models
	model  string
	rpm    int

	mu          sync.Mutex
	windowStart time.Time
	used        int
}

var _ assistant.Client = (*Client)(nil)

func New(ctx context.Context, options Options) (*Client, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     options.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: options.HTTPClient,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create genai client: %w", err)
	}
	if options.Model == "" {
		options.Model = DefaultModel
	}
	if options.RequestsPerMinute <= 0 {
		options.RequestsPerMinute = 10
	}

	return &Client{models: client.Models, model: options.Model, rpm: options.RequestsPerMinute}, nil
}

// status counts one request against the current one-minute window.
func (c *Client) status(exhausted bool) assistant.RateLimitStatus {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	if now.Sub(c.windowStart) >= time.Minute {
		c.windowStart = now
		c.used = 0
	}
	c.used++
	if exhausted {
		c.used = c.rpm
	}

	return assistant.RateLimitStatus{
		Limit:     c.rpm,
		Remaining: max(c.rpm-c.used, 0),
		ResetAt:   c.windowStart.Add(time.Minute),
	}
}

func isRateLimited(err error) bool {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code == http.StatusTooManyRequests
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) {
		return apiErrPtr.Code == http.StatusTooManyRequests
	}

	return false
}

func (c *Client) generate(ctx context.Context,
	instruction, text string,
	attachments []assistant.Attachment,
	out any) (assistant.RateLimitStatus, error) {
	parts := []*genai.Part{genai.NewPartFromText(text)}
	for _, a := range attachments {
		parts = append(parts, genai.NewPartFromBytes(a.Data, a.ContentType))
	}

	resp, err := c.models.GenerateContent(ctx, c.model,
		[]*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)},
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(instruction, genai.RoleUser),
			ResponseMIMEType:  "application/json",
		})
	if err != nil {
		if isRateLimited(err) {
			return c.status(true), serrors.Wrap(serrors.ErrRateLimited, err, "gemini rate limited")
		}

		return c.status(false), fmt.Errorf("could not generate content: %w", err)
	}

	rl := c.status(false)
	if err := assistant.ParseVerdict(resp.Text(), out); err != nil {
		return rl, err
	}

	return rl, nil
}

func (c *Client) VerifyText(ctx context.Context,
	text string,
	images []assistant.Attachment) (assistant.TextVerdict, assistant.RateLimitStatus, error) {
	var v assistant.TextVerdict
	rl, err := c.generate(ctx, textInstruction, text, images, &v)
	if err != nil {
		return assistant.TextVerdict{}, rl, err
	}

	return v, rl, nil
}

func (c *Client) VerifyOwnership(ctx context.Context,
	req assistant.OwnershipRequest) (assistant.OwnershipVerdict, assistant.RateLimitStatus, error) {
	var v assistant.OwnershipVerdict
	rl, err := c.generate(ctx, ownershipInstruction, req.Prompt(), []assistant.Attachment{req.Document}, &v)
	if err != nil {
		return assistant.OwnershipVerdict{}, rl, err
	}

	return v, rl, nil
}

func (c *Client) VerifyIdentity(ctx context.Context,
	documents []assistant.Attachment) (assistant.IdentityVerdict, assistant.RateLimitStatus, error) {
	var v assistant.IdentityVerdict
	rl, err := c.generate(ctx, identityInstruction, "Validate this passport and return json", documents, &v)
	if err != nil {
		return assistant.IdentityVerdict{}, rl, err
	}

	return v, rl, nil
}
