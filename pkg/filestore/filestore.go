// Package filestore defines where uploaded files (listing images, ownership
// documents, passports and avatars) are kept.
package filestore

import (
	"context"
	"easyrent/pkg/domain"
	"io"
)

// Store keeps opaque binary files addressed by domain.FileID.
//
//go:generate mockgen -package mockfilestore -source=filestore.go -destination=mock/mockfilestore.go
type Store interface {
	// Put stores the content read from r and returns the new file id.
	Put(ctx context.Context, name, contentType string, r io.Reader) (domain.FileID, error)
	// Get opens a file. The caller must close File.Content. A missing file is
	// reported as serrors.ErrNotFound.
	Get(ctx context.Context, id domain.FileID) (*domain.File, error)
	// Delete removes a file. A missing file is reported as serrors.ErrNotFound.
	Delete(ctx context.Context, id domain.FileID) error
}

// Upload is a file received from a client.
type Upload struct {
	Name        string
	ContentType string
	Content     io.Reader
}

// ReadAll loads the whole file into memory.
func ReadAll(ctx context.Context, store Store, id domain.FileID) ([]byte, *domain.File, error) {
	f, err := store.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	defer func() {
		_ = f.Content.Close()
	}()

	data, err := io.ReadAll(f.Content)
	if err != nil {
		return nil, nil, err
	}

	return data, f, nil
}
