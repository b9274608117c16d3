package lib

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
)

// multipart parsing keeps at most this much of the form in memory before
// spilling to disk; the body limit middleware caps the total size upstream.
const multipartMemory = 10 << 20 // 10 MB

// ParseMultipartForm parses the request as a multipart form. The caller owns
// closing via r.MultipartForm once done.
func ParseMultipartForm(r *http.Request) error {
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		return NewValidationError("body", "must be a multipart form")
	}
	return nil
}

// FormFiles reads every file uploaded under the given field, in the order
// the client sent them.
func FormFiles(r *http.Request, field string) ([][]byte, error) {
	if r.MultipartForm == nil {
		return nil, nil
	}
	headers := r.MultipartForm.File[field]
	blobs := make([][]byte, 0, len(headers))
	for _, header := range headers {
		blob, err := readFormFile(header)
		if err != nil {
			return nil, err
		}
		blobs = append(blobs, blob)
	}
	return blobs, nil
}

// FormFile reads a single file uploaded under the given field. Returns nil
// when the field is absent.
func FormFile(r *http.Request, field string) ([]byte, error) {
	blobs, err := FormFiles(r, field)
	if err != nil {
		return nil, err
	}
	if len(blobs) == 0 {
		return nil, nil
	}
	return blobs[0], nil
}

func readFormFile(header *multipart.FileHeader) ([]byte, error) {
	file, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("open form file %q: %w", header.Filename, err)
	}
	defer file.Close()

	blob, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("read form file %q: %w", header.Filename, err)
	}
	return blob, nil
}
