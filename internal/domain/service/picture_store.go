package service

import (
	"context"
	"errors"
	"io"
)

// ErrPictureNotFound is returned when the stored reference does not resolve
// to a blob in the bucket.
var ErrPictureNotFound = errors.New("picture not found")

// PictureStore persists uploaded profile pictures in a blob bucket and hands
// back the stored reference that goes into profile.picture.
type PictureStore interface {
	// Save writes the picture under a key derived from the given name and
	// returns the reference to store on the profile.
	Save(ctx context.Context, name string, contentType string, r io.Reader) (string, error)

	// Open reads a previously stored picture and reports its content type.
	// Returns ErrPictureNotFound when the reference resolves to no blob.
	Open(ctx context.Context, ref string) (io.ReadCloser, string, error)

	// Close releases the underlying bucket.
	Close() error
}
