// Package images resolves stored cover-image references into short-lived
// presigned URLs.
//
// Catalog items may carry an img_url pointing at an external host. When the
// host is recognized, the file name is mapped to a storage key inside the
// images bucket and a presigned GET URL is produced. The same derivation is
// used at subscription-creation time to persist a normalized key, so listing
// subscriptions can presign the stored key directly without re-inspecting
// the original reference.
package images

import (
	"context"
	"strings"
	"time"

	"github.com/okunev/musicbox/internal/logging"
	"github.com/okunev/musicbox/internal/server/config"
)

// StorageKey is a normalized, storage-relative reference to a cover image
// (e.g. "images/abbey_road.jpg"). It is a distinct type so it cannot be
// confused with raw external URLs or other string keys.
type StorageKey string

// KeyPrefix is prepended to the derived file name to form the storage key.
const KeyPrefix = "images/"

// Presigner produces a time-limited URL for an object in a bucket.
type Presigner interface {
	PresignGet(ctx context.Context, bucket, key string, validity time.Duration) (string, error)
}

type Resolver struct {
	presigner  Presigner
	bucket     string
	validity   time.Duration
	hostSuffix string
	logger     logging.Logger
}

func NewResolver(p Presigner, cfg *config.Config, logger logging.Logger) *Resolver {
	return &Resolver{
		presigner:  p,
		bucket:     cfg.ImagesBucket,
		validity:   cfg.PresignValidityDuration,
		hostSuffix: cfg.ImageHostSuffix,
		logger:     logger.With("module", "images"),
	}
}

// DeriveKey maps a raw external image reference to its storage key. Only
// references containing the configured host suffix are recognized; anything
// else reports ok=false and must be left untouched by the caller.
func (r *Resolver) DeriveKey(raw string) (StorageKey, bool) {
	if raw == "" || !strings.Contains(raw, r.hostSuffix) {
		return "", false
	}
	name := raw[strings.LastIndex(raw, "/")+1:]
	return StorageKey(KeyPrefix + name), true
}

// ResolveURL derives the storage key for a raw reference and presigns it.
// Unrecognized references report ok=false.
func (r *Resolver) ResolveURL(ctx context.Context, raw string) (string, bool) {
	key, ok := r.DeriveKey(raw)
	if !ok {
		return "", false
	}
	return r.ResolveKey(ctx, key)
}

// ResolveKey presigns an already-normalized storage key. Signing failures
// degrade to "no image": they are logged and reported as ok=false, never
// propagated as errors.
func (r *Resolver) ResolveKey(ctx context.Context, key StorageKey) (string, bool) {
	url, err := r.presigner.PresignGet(ctx, r.bucket, string(key), r.validity)
	if err != nil {
		r.logger.Error(ctx, "error generating presigned url", "key", string(key), "error", err.Error())
		return "", false
	}
	return url, true
}
