package service

import (
	"context"
	"io"
)

// ImageStore is the opaque blob store collaborator: it persists uploaded
// request images and hands back stable references. The core never interprets
// the references beyond carrying them on the request.
type ImageStore interface {
	// Save stores one image and returns its opaque reference.
	Save(ctx context.Context, filename string, contentType string, r io.Reader) (string, error)

	// Delete removes a stored image. Missing blobs are not an error.
	Delete(ctx context.Context, ref string) error
}
