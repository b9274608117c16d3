package media

import (
	"context"
	"errors"
	"strings"
	"testing"

	"vdeck_server/structs"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPutter struct {
	calls int
	err   error
	input *s3.PutObjectInput
}

func (s *stubPutter) PutObject(_ context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	s.calls++
	s.input = params
	if s.err != nil {
		return nil, s.err
	}
	return &s3.PutObjectOutput{}, nil
}

func newTestUploader(putter *stubPutter) *S3Uploader {
	return &S3Uploader{
		client:  putter,
		bucket:  "vdeck-media",
		baseURL: "https://vdeck-media.s3.us-east-1.amazonaws.com",
		cfg:     &structs.MediaConfig{Bucket: "vdeck-media", Region: "us-east-1"},
	}
}

func TestUpload_ReturnsPublicURLUnderFolder(t *testing.T) {
	putter := &stubPutter{}
	uploader := newTestUploader(putter)

	url, err := uploader.Upload(context.Background(), []byte("image bytes"), ProductImagesFolder)

	require.NoError(t, err)
	assert.Equal(t, 1, putter.calls)
	assert.True(t, strings.HasPrefix(url, "https://vdeck-media.s3.us-east-1.amazonaws.com/product-images/"))
	require.NotNil(t, putter.input)
	assert.Equal(t, "vdeck-media", *putter.input.Bucket)
	assert.True(t, strings.HasPrefix(*putter.input.Key, "product-images/"))
}

func TestUpload_EmptyBlobNeverReachesVendor(t *testing.T) {
	putter := &stubPutter{}
	uploader := newTestUploader(putter)

	_, err := uploader.Upload(context.Background(), nil, PaymentProofsFolder)

	var uploadErr *UploadError
	require.ErrorAs(t, err, &uploadErr)
	assert.Equal(t, PaymentProofsFolder, uploadErr.Folder)
	assert.Equal(t, 0, putter.calls)
}

func TestUpload_WrapsVendorFailure(t *testing.T) {
	vendorErr := errors.New("AccessDenied: not authorized")
	putter := &stubPutter{err: vendorErr}
	uploader := newTestUploader(putter)

	_, err := uploader.Upload(context.Background(), []byte("proof"), PaymentProofsFolder)

	var uploadErr *UploadError
	require.ErrorAs(t, err, &uploadErr)
	assert.Equal(t, PaymentProofsFolder, uploadErr.Folder)
	assert.Contains(t, uploadErr.Detail, "AccessDenied")
	assert.ErrorIs(t, err, vendorErr)
}

func TestUpload_GeneratesUniqueKeys(t *testing.T) {
	putter := &stubPutter{}
	uploader := newTestUploader(putter)

	first, err := uploader.Upload(context.Background(), []byte("a"), ProductImagesFolder)
	require.NoError(t, err)
	second, err := uploader.Upload(context.Background(), []byte("a"), ProductImagesFolder)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestURL_TrimsLeadingSlash(t *testing.T) {
	uploader := newTestUploader(&stubPutter{})

	assert.Equal(t,
		"https://vdeck-media.s3.us-east-1.amazonaws.com/product-images/abc",
		uploader.URL("/product-images/abc"))
}
