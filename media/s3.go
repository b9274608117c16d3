package media

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strings"

	"vdeck_server/structs"

	"github.com/aws/aws-sdk-go-v2/aws"
	awscfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// objectPutter is the slice of the S3 client the uploader needs.
type objectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Uploader hosts blobs on S3-compatible object storage.
// Works with AWS S3, MinIO, DigitalOcean Spaces, Cloudflare R2.
type S3Uploader struct {
	client  objectPutter
	bucket  string
	baseURL string
	cfg     *structs.MediaConfig
}

// NewS3Uploader builds an uploader from the media section of the immutable
// application configuration.
func NewS3Uploader(cfg *structs.MediaConfig) (*S3Uploader, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("media/s3: MEDIA_BUCKET is not configured")
	}

	opts := []func(*awscfg.LoadOptions) error{
		awscfg.WithRegion(cfg.Region),
	}

	// Static credentials (required for MinIO / R2 / Spaces)
	if cfg.Key != "" && cfg.Secret != "" {
		opts = append(opts, awscfg.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.Key, cfg.Secret, ""),
		))
	}

	awsCfg, err := awscfg.LoadDefaultConfig(context.Background(), opts...)
	if err != nil {
		return nil, fmt.Errorf("media/s3: load config: %w", err)
	}

	clientOpts := []func(*s3.Options){}
	if cfg.Endpoint != "" {
		clientOpts = append(clientOpts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true // required for MinIO
		})
	}

	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
	}

	return &S3Uploader{
		client:  s3.NewFromConfig(awsCfg, clientOpts...),
		bucket:  cfg.Bucket,
		baseURL: baseURL,
		cfg:     cfg,
	}, nil
}

// Upload hosts the blob under the folder tag and returns its public URL.
// A single attempt: transient vendor failures surface immediately as an
// *UploadError, no retry.
func (u *S3Uploader) Upload(ctx context.Context, blob []byte, folder string) (string, error) {
	if len(blob) == 0 {
		return "", &UploadError{Folder: folder, Detail: "empty blob"}
	}

	key := objectKey(folder)

	if u.cfg.UploadTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, u.cfg.UploadTimeout)
		defer cancel()
	}

	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(blob),
		ContentType: aws.String(http.DetectContentType(blob)),
	})
	if err != nil {
		return "", &UploadError{Folder: folder, Detail: err.Error(), Err: err}
	}

	return u.URL(key), nil
}

// URL returns the public address of a hosted object key.
func (u *S3Uploader) URL(key string) string {
	return u.baseURL + "/" + strings.TrimLeft(key, "/")
}

func objectKey(folder string) string {
	return strings.Trim(folder, "/") + "/" + uuid.NewString()
}
