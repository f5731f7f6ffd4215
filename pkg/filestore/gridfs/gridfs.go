// Package gridfs implements filestore.Store on top of MongoDB GridFS.
package gridfs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"easyrent/pkg/domain"
	"easyrent/pkg/filestore"
	"easyrent/pkg/serrors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Options defines the MongoDB connection parameters.
type Options struct {
	URI      string
	Database string
	// Bucket is the GridFS bucket name, "fs" when empty.
	Bucket         string
	ConnectTimeout time.Duration
}

// Store is a GridFS backed filestore.Store. The content type of each file is
// kept in its metadata document.
type Store struct {
	client *mongo.Client
	bucket *gridfs.Bucket
}

var _ filestore.Store = (*Store)(nil)

// New connects to MongoDB and opens the bucket.
func New(ctx context.Context, opts Options) (*Store, error) {
	if opts.ConnectTimeout <= 0 {
		opts.ConnectTimeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, opts.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(opts.URI))
	if err != nil {
		return nil, fmt.Errorf("could not connect to mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())

		return nil, fmt.Errorf("could not ping mongo: %w", err)
	}

	bucketOpts := options.GridFSBucket()
	if opts.Bucket != "" {
		bucketOpts.SetName(opts.Bucket)
	}
	bucket, err := gridfs.NewBucket(client.Database(opts.Database), bucketOpts)
	if err != nil {
		_ = client.Disconnect(context.Background())

		return nil, fmt.Errorf("could not open gridfs bucket: %w", err)
	}

	return &Store{client: client, bucket: bucket}, nil
}

// Close disconnects from MongoDB.
func (s *Store) Close(ctx context.Context) error {
	if err := s.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("could not disconnect from mongo: %w", err)
	}

	return nil
}

func objectID(id domain.FileID) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(string(id))
	if err != nil {
		return primitive.NilObjectID, serrors.Wrap(serrors.ErrNotFound, err, "file not found")
	}

	return oid, nil
}

// Put uploads the file. GridFS uploads in v1 of the driver are not context
// aware, the bucket's default timeouts apply.
func (s *Store) Put(_ context.Context, name, contentType string, r io.Reader) (domain.FileID, error) {
	id, err := s.bucket.UploadFromStream(name, r,
		options.GridFSUpload().SetMetadata(bson.D{{Key: "contentType", Value: contentType}}))
	if err != nil {
		return "", fmt.Errorf("could not upload %s to gridfs: %w", name, err)
	}

	return domain.FileID(id.Hex()), nil
}

func (s *Store) Get(_ context.Context, id domain.FileID) (*domain.File, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	stream, err := s.bucket.OpenDownloadStream(oid)
	if err != nil {
		if errors.Is(err, gridfs.ErrFileNotFound) {
			return nil, serrors.With(serrors.ErrNotFound, "file not found")
		}

		return nil, fmt.Errorf("could not open gridfs file: %w", err)
	}

	file := stream.GetFile()
	contentType := "application/octet-stream"
	if file.Metadata != nil {
		if ct, ok := file.Metadata.Lookup("contentType").StringValueOK(); ok && ct != "" {
			contentType = ct
		}
	}

	return &domain.File{
		ID:          id,
		Name:        file.Name,
		ContentType: contentType,
		Size:        file.Length,
		Content:     stream,
	}, nil
}

func (s *Store) Delete(ctx context.Context, id domain.FileID) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}

	if err := s.bucket.DeleteContext(ctx, oid); err != nil {
		if errors.Is(err, gridfs.ErrFileNotFound) {
			return serrors.With(serrors.ErrNotFound, "file not found")
		}

		return fmt.Errorf("could not delete gridfs file: %w", err)
	}

	return nil
}
