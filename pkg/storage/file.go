package storage

import (
	"context"
	"easyrent/pkg/domain"
)

type FileStorage interface {
	// FileUsages lists the records referencing the file. A file that nothing
	// references yields an empty slice.
	FileUsages(ctx context.Context, id domain.FileID) ([]domain.FileUsage, error)
}
