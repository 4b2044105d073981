package utils

import (
	"context"
	"fmt"
	"mime"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// R2Client wraps the S3 client + bucket name for Cloudflare R2 uploads.
type R2Client struct {
	S3     *s3.Client
	Bucket string
}

// R2Configured reports whether the env carries a complete R2 setup.
func R2Configured() bool {
	return os.Getenv("R2_BUCKET") != "" &&
		os.Getenv("R2_ACCESS_KEY_ID") != "" &&
		os.Getenv("R2_SECRET_ACCESS_KEY") != "" &&
		os.Getenv("R2_ENDPOINT") != ""
}

// NewR2Client builds an S3-compatible client against the R2 endpoint.
func NewR2Client(ctx context.Context) (*R2Client, error) {
	bucket := os.Getenv("R2_BUCKET")
	accessKey := os.Getenv("R2_ACCESS_KEY_ID")
	secretKey := os.Getenv("R2_SECRET_ACCESS_KEY")
	endpoint := os.Getenv("R2_ENDPOINT") // https://<account-id>.r2.cloudflarestorage.com

	if bucket == "" || accessKey == "" || secretKey == "" || endpoint == "" {
		return nil, fmt.Errorf("missing R2 env vars (R2_BUCKET, R2_ACCESS_KEY_ID, R2_SECRET_ACCESS_KEY, R2_ENDPOINT)")
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
		),
		awsconfig.WithRegion("auto"),
	)
	if err != nil {
		return nil, fmt.Errorf("r2 config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpoint)
		o.UsePathStyle = true // required for R2
	})

	return &R2Client{S3: client, Bucket: bucket}, nil
}

// UploadImageToR2 stores one uploaded file under albums/<slug>/ and returns
// its public URL. Public URLs use the domain set via R2_PUBLIC_DOMAIN.
func (r2 *R2Client) UploadImageToR2(ctx context.Context, albumSlug string, fh *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if ext == "" {
		ext = ".bin"
	}
	objectName := fmt.Sprintf("albums/%s/%d%s", albumSlug, time.Now().UnixNano(), ext)

	ct := fh.Header.Get("Content-Type")
	if ct == "" {
		ct = mime.TypeByExtension(ext)
	}
	if ct == "" {
		ct = "application/octet-stream"
	}

	f, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open file: %w", err)
	}

	_, err = r2.S3.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(r2.Bucket),
		Key:         aws.String(objectName),
		Body:        f,
		ContentType: aws.String(ct),
	})
	_ = f.Close()
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", fh.Filename, err)
	}

	return publicURL(objectName), nil
}

func publicURL(objectName string) string {
	domain := strings.TrimRight(os.Getenv("R2_PUBLIC_DOMAIN"), "/")
	if domain == "" {
		return "/" + objectName
	}
	return domain + "/" + objectName
}
