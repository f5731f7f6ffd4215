package domain

import "io"

// FileID identifies a stored binary object (image, document, avatar).
type FileID string

// File is a stored binary object together with its metadata.
type File struct {
	ID          FileID
	Name        string
	ContentType string
	Size        int64
	Content     io.ReadCloser
}

// FileKind tells what a stored file is used for.
type FileKind string

const (
	FileKindListingImage      FileKind = "LISTING_IMAGE"
	FileKindUserPhoto         FileKind = "USER_PHOTO"
	FileKindPassport          FileKind = "PASSPORT"
	FileKindOwnershipDocument FileKind = "OWNERSHIP_DOCUMENT"
)

// FileUsage is a record referencing a stored file.
type FileUsage struct {
	Kind    FileKind
	OwnerID UserID
	// ListingStatus is set for listing images and ownership documents.
	ListingStatus ListingStatus
}

// Public reports whether anyone may download the file. Identity and
// ownership documents never are, neither are images of listings that are
// not published.
func (u FileUsage) Public() bool {
	switch u.Kind {
	case FileKindUserPhoto:
		return true
	case FileKindListingImage:
		return u.ListingStatus == ListingStatusActive
	default:
		return false
	}
}
