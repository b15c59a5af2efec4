// Package upload ships finished archives to remote storage. It is an
// optional post-archive step: a failed upload is reported but never
// corrupts or removes the local archive.
package upload

import (
	"context"
	"strings"

	"github.com/Hrothnar/linkzip/pkg/errors"
)

// Uploader puts one local archive under a remote key.
type Uploader interface {
	Upload(ctx context.Context, localPath, key string) error
}

// ParseTarget splits an upload target URL of the form
// s3://bucket[/prefix] into its bucket and prefix. The prefix, when
// present, is normalized to end with a slash.
func ParseTarget(raw string) (bucket, prefix string, err error) {
	const scheme = "s3://"
	if !strings.HasPrefix(raw, scheme) {
		return "", "", errors.Newf(errors.ErrUploadConfig,
			"unsupported upload target %q: expected s3://bucket[/prefix]", raw)
	}

	rest := strings.TrimPrefix(raw, scheme)
	bucket, prefix, _ = strings.Cut(rest, "/")
	if bucket == "" {
		return "", "", errors.Newf(errors.ErrUploadConfig,
			"upload target %q has no bucket", raw)
	}
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return bucket, prefix, nil
}
