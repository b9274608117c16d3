// Package media hosts binary attachments on an S3-compatible object store
// and hands back durable public URLs. Records are only ever persisted with
// URLs produced here; nothing downstream sees a local file reference.
package media

import "context"

// Folder tags for the two attachment kinds the storefront accepts.
const (
	ProductImagesFolder = "product-images"
	PaymentProofsFolder = "payment-proofs"
)

// Uploader converts a binary blob into a publicly addressable URL under a
// logical folder tag. A failed call leaves nothing usable behind; a
// successful one hosts the blob permanently (there is no cleanup path for
// orphaned uploads).
type Uploader interface {
	Upload(ctx context.Context, blob []byte, folder string) (string, error)
}

// UploadError reports a failed media upload, carrying the vendor's error
// detail when one is available.
type UploadError struct {
	Folder string
	Detail string
	Err    error
}

func (e *UploadError) Error() string {
	if e.Detail != "" {
		return "media upload to " + e.Folder + " failed: " + e.Detail
	}
	return "media upload to " + e.Folder + " failed"
}

func (e *UploadError) Unwrap() error {
	return e.Err
}
