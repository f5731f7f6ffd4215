package v1handler

import (
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strconv"

	"easyrent/pkg/domain"
	"easyrent/pkg/filestore"
	"easyrent/pkg/serrors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func uuidParam(c *gin.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, serrors.With(serrors.ErrBadRequest, "invalid %s", name)
	}

	return id, nil
}

func int64Param(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, serrors.With(serrors.ErrBadRequest, "invalid %s", name)
	}

	return id, nil
}

// mustCaller is only used behind RequireAuth.
func mustCaller(c *gin.Context) domain.Caller {
	caller := GetCallerFromContext(c.Request.Context())
	if caller == nil {
		panic("caller missing from an authenticated route")
	}

	return *caller
}

// openUpload opens a multipart file. The returned function closes it.
func openUpload(header *multipart.FileHeader) (filestore.Upload, func(), error) {
	file, err := header.Open()
	if err != nil {
		return filestore.Upload{}, nil, fmt.Errorf("could not open upload: %w", err)
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	return filestore.Upload{
		Name:        filepath.Base(header.Filename),
		ContentType: contentType,
		Content:     file,
	}, func() { _ = file.Close() }, nil
}

func formUpload(c *gin.Context, field string) (filestore.Upload, func(), error) {
	header, err := c.FormFile(field)
	if err != nil {
		return filestore.Upload{}, nil, serrors.With(serrors.ErrBadRequest, "%s file is required", field)
	}

	return openUpload(header)
}
