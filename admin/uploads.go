package admin

import (
	"context"
	"io"

	"github.com/kallosgym/cms/content"
	"github.com/kallosgym/cms/internal/blob"
	"github.com/kallosgym/cms/internal/logging"
	"github.com/kallosgym/cms/pkg/interfaces"
	"github.com/kallosgym/cms/remote"
)

// Uploads pushes media binaries to the object store and hands back public
// URLs for use in drafted content. Uploads are independent of drafts: a
// failed upload leaves whatever URL the draft already carried.
type Uploads struct {
	objects remote.ObjectStore
	logger  interfaces.Logger
}

// NewUploads builds the upload service over an object store backend.
func NewUploads(objects remote.ObjectStore, provider interfaces.LoggerProvider) *Uploads {
	return &Uploads{
		objects: objects,
		logger:  logging.UploadsLogger(provider),
	}
}

// Upload stores the file under a timestamped key derived from filename and
// returns the public URL.
func (u *Uploads) Upload(ctx context.Context, filename, contentType string, r io.Reader) (string, error) {
	key := blob.NewKey(filename)

	url, err := u.objects.Put(ctx, key, contentType, r)
	if err != nil {
		u.logger.Error("media upload failed", "key", key, "error", err)
		return "", &content.UploadError{Key: key, Err: err}
	}

	u.logger.Info("media uploaded", "key", key, "url", url)
	return url, nil
}
