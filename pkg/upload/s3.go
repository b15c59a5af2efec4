package upload

import (
	"context"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/Hrothnar/linkzip/pkg/errors"
	"github.com/Hrothnar/linkzip/pkg/logging"
)

// S3Uploader implements Uploader for Amazon S3.
type S3Uploader struct {
	client *s3.Client
	bucket string
	prefix string
}

// NewS3 constructs an S3-backed Uploader from a target URL, using the
// ambient AWS credential chain.
func NewS3(ctx context.Context, target string) (*S3Uploader, error) {
	bucket, prefix, err := ParseTarget(target)
	if err != nil {
		return nil, err
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrUploadConfig, "loading AWS config")
	}

	return &S3Uploader{
		client: s3.NewFromConfig(awsCfg),
		bucket: bucket,
		prefix: prefix,
	}, nil
}

// Upload puts the archive at localPath under prefix+key.
func (u *S3Uploader) Upload(ctx context.Context, localPath, key string) error {
	logger := logging.GetLogger("upload")

	f, err := os.Open(localPath)
	if err != nil {
		return errors.Wrapf(err, errors.ErrUploadFailed, "failed to open %s", localPath)
	}
	defer func() { _ = f.Close() }()

	fullKey := u.prefix + key
	_, err = u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(fullKey),
		Body:        f,
		ContentType: aws.String("application/zip"),
	})
	if err != nil {
		return errors.Wrapf(err, errors.ErrUploadFailed, "s3 PutObject %q", fullKey)
	}

	logger.Info().
		Str("bucket", u.bucket).
		Str("key", fullKey).
		Msg("Archive uploaded")
	return nil
}
