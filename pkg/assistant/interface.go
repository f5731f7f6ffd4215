// Package assistant defines the contract of the external AI assistant that
// checks listing content, ownership documents and identity documents, along
// with a cooperative rate limiter shared by every check.
package assistant

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// RateLimitStatus describes the current API rate-limit status reported by the
// assistant provider.
type RateLimitStatus struct {
	Limit     int       // Limit is the total number of allowed requests in the current window.
	Remaining int       // Remaining indicates how many requests are left in the current window.
	ResetAt   time.Time // ResetAt is when the rate-limit window resets.
}

// Attachment is a file sent along with a check, usually an image.
type Attachment struct {
	Name        string
	ContentType string
	Data        []byte
}

// TextVerdict is the result of a content check.
type TextVerdict struct {
	OK     bool   `json:"is_ok"`
	Reason string `json:"reason_details"`
}

// OwnershipVerdict is the result of an ownership document check.
type OwnershipVerdict struct {
	Valid         bool   `json:"valid"`
	BelongsToUser bool   `json:"belongs_to_user"`
	ErrorDetails  string `json:"error_details"`
}

// Passed reports whether the document is valid, belongs to the owner and the
// assistant reported no problems.
func (v OwnershipVerdict) Passed() bool {
	return v.Valid && v.BelongsToUser && v.ErrorDetails == ""
}

// IdentityVerdict is the result of a passport check. BirthDate is returned as
// written in the document.
type IdentityVerdict struct {
	ImageQuality string `json:"image_quality"`
	ValidData    bool   `json:"valid_data"`
	FirstName    string `json:"first_name"`
	SecondName   string `json:"second_name"`
	Patronymic   string `json:"patronymic"`
	BirthDate    string `json:"birth_date"`
	ErrorDetails string `json:"error_details"`
	IsFrontSide  bool   `json:"is_front_side"`
}

func (v IdentityVerdict) Passed() bool {
	return v.ValidData && v.IsFrontSide && v.ErrorDetails == ""
}

// OwnershipRequest carries the owner data the document is compared with.
type OwnershipRequest struct {
	FirstName  string
	LastName   string
	Patronymic string
	BirthDate  time.Time
	City       string
	Street     string
	Document   Attachment
}

// Prompt renders the request as the message text sent to the assistant.
func (r OwnershipRequest) Prompt() string {
	var b strings.Builder
	b.WriteString(strings.TrimSpace(fmt.Sprintf("%s %s %s", r.FirstName, r.LastName, r.Patronymic)))
	b.WriteString("\n")
	if !r.BirthDate.IsZero() {
		b.WriteString("Birth date: " + r.BirthDate.Format(time.DateOnly) + "\n")
	}
	b.WriteString(fmt.Sprintf("City: %s, %s\n", r.City, r.Street))

	return b.String()
}

// Client is implemented by assistant providers. Every call reports the
// provider's rate-limit status, even when it fails, so that callers can
// throttle themselves.
//
//go:generate mockgen -package mockassistant -source=interface.go -destination=mock/mockassistant.go
type Client interface {
	VerifyText(ctx context.Context, text string, images []Attachment) (TextVerdict, RateLimitStatus, error)
	VerifyOwnership(ctx context.Context, req OwnershipRequest) (OwnershipVerdict, RateLimitStatus, error)
	VerifyIdentity(ctx context.Context, documents []Attachment) (IdentityVerdict, RateLimitStatus, error)
}

// Verifier is the rate-limited view of a Client used by the services.
type Verifier interface {
	VerifyText(ctx context.Context, text string, images []Attachment) (TextVerdict, error)
	VerifyOwnership(ctx context.Context, req OwnershipRequest) (OwnershipVerdict, error)
	VerifyIdentity(ctx context.Context, documents []Attachment) (IdentityVerdict, error)
}
