package storage

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
)

const (
	maxPhotoWidth = 1600
	webpQuality   = 80
)

// PhotoStore recompresses uploaded photos to WebP and puts them in an
// S3 bucket.
type PhotoStore struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

type Options struct {
	Region    string
	Bucket    string
	AccessKey string
	SecretKey string
	// BaseURL is the public prefix objects are served from.
	BaseURL string
}

func New(opts Options) *PhotoStore {
	client := s3.New(s3.Options{
		Region: opts.Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			opts.AccessKey,
			opts.SecretKey,
			"",
		),
	})

	return &PhotoStore{
		client:  client,
		bucket:  opts.Bucket,
		baseURL: strings.TrimSuffix(opts.BaseURL, "/"),
	}
}

func (s *PhotoStore) Upload(ctx context.Context, key string, r io.Reader) (string, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return "", fmt.Errorf("decode photo: %w", err)
	}

	src = downscale(src)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, src, &webp.Options{Quality: webpQuality}); err != nil {
		return "", fmt.Errorf("encode webp: %w", err)
	}

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(buf.Bytes()),
		ContentType: aws.String("image/webp"),
	})
	if err != nil {
		return "", fmt.Errorf("put object: %w", err)
	}

	return s.baseURL + "/" + key, nil
}

func downscale(src image.Image) image.Image {
	bounds := src.Bounds()
	if bounds.Dx() <= maxPhotoWidth {
		return src
	}

	h := bounds.Dy() * maxPhotoWidth / bounds.Dx()
	dst := image.NewRGBA(image.Rect(0, 0, maxPhotoWidth, h))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
	return dst
}
