// Package media serves stored files to API callers. Listing images and
// profile photos are public, passports and ownership documents are only
// readable by their owner and by admins.
package media

import (
	"context"
	"fmt"

	"easyrent/pkg/domain"
	"easyrent/pkg/filestore"
	"easyrent/pkg/logger"
	"easyrent/pkg/serrors"
	"easyrent/pkg/storage"

	"go.uber.org/zap"
)

//go:generate mockgen -package mockmedia -source=media.go -destination=mock/mockmedia.go
type Service interface {
	// Open returns the file when caller may read it. caller may be nil. Files
	// the caller may not read are reported as not found so ids cannot be
	// probed. The caller must close File.Content.
	Open(ctx context.Context, caller *domain.Caller, id domain.FileID) (*domain.File, error)
}

type service struct {
	storage storage.Storage
	files   filestore.Store
}

func New(storage storage.Storage, files filestore.Store) Service {
	return &service{storage: storage, files: files}
}

func (s *service) Open(ctx context.Context, caller *domain.Caller, id domain.FileID) (*domain.File, error) {
	usages, err := s.storage.FileUsages(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not look up file usages: %w", err)
	}
	if len(usages) == 0 || !readable(caller, usages) {
		return nil, serrors.With(serrors.ErrNotFound, "file not found")
	}

	file, err := s.files.Get(ctx, id)
	if err != nil {
		if serrors.KindOf(err) == serrors.ErrNotFound {
			logger.Warn(ctx, "referenced file is missing from the file store", zap.String("fileID", string(id)))
		}

		return nil, fmt.Errorf("could not open file: %w", err)
	}

	return file, nil
}

// readable requires every usage to allow the caller in.
func readable(caller *domain.Caller, usages []domain.FileUsage) bool {
	for _, usage := range usages {
		if usage.Public() {
			continue
		}
		if caller == nil || !(caller.IsAdmin() || caller.Owns(usage.OwnerID)) {
			return false
		}
	}

	return true
}
