package service

import (
	"context"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/rs/zerolog"

	"alcyxob/fitness-coach/internal/domain"
	"alcyxob/fitness-coach/internal/repository"
	"alcyxob/fitness-coach/internal/storage"
)

const mirrorCacheSize = 32

// AssetService picks a motivational image for a free-text prompt.
type AssetService interface {
	// ResolveAsset never fails. A nil or empty prompt, or one that mentions
	// no known keyword, yields the default entry.
	ResolveAsset(prompt *string) domain.AssetEntry

	// Reference returns the URL clients should load for entry. With a
	// mirror configured this is a presigned URL into the mirror bucket;
	// otherwise, or if the object is missing or the store fails, it is the
	// entry's own URL.
	Reference(ctx context.Context, entry domain.AssetEntry) string
}

// MirrorOptions enables serving images out of an object store.
type MirrorOptions struct {
	Storage   storage.AssetStorage
	KeyPrefix string
	Expiry    time.Duration
}

type assetService struct {
	catalog repository.AssetCatalog
	log     zerolog.Logger

	mirror *MirrorOptions
	urls   *expirable.LRU[string, string]
}

// NewAssetService creates an AssetService. mirror may be nil.
func NewAssetService(catalog repository.AssetCatalog, mirror *MirrorOptions, logger zerolog.Logger) AssetService {
	s := &assetService{catalog: catalog, log: logger}
	if mirror != nil && mirror.Storage != nil {
		m := *mirror
		if m.Expiry <= 0 {
			m.Expiry = storage.DefaultPresignedURLExpiry
		}
		s.mirror = &m
		// Cached URLs are dropped well before they stop being valid.
		s.urls = expirable.NewLRU[string, string](mirrorCacheSize, nil, m.Expiry/2)
	}
	return s
}

func (s *assetService) ResolveAsset(prompt *string) domain.AssetEntry {
	if prompt == nil || *prompt == "" {
		return s.catalog.Default()
	}
	text := strings.ToLower(*prompt)
	for _, entry := range s.catalog.Entries() {
		if strings.Contains(text, entry.Keyword) {
			return entry
		}
	}
	return s.catalog.Default()
}

func (s *assetService) Reference(ctx context.Context, entry domain.AssetEntry) string {
	if s.mirror == nil {
		return entry.URL
	}

	key := s.objectKey(entry)
	if url, ok := s.urls.Get(key); ok {
		return url
	}

	exists, err := s.mirror.Storage.ObjectExists(ctx, key)
	if err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("mirror lookup failed, serving upstream image")
		return entry.URL
	}
	if !exists {
		// Remembered until the cache entry expires so an unseeded bucket
		// costs one HEAD per keyword, not one per request.
		s.log.Warn().Str("key", key).Msg("image missing from mirror, serving upstream image")
		s.urls.Add(key, entry.URL)
		return entry.URL
	}

	url, err := s.mirror.Storage.PresignedDownloadURL(ctx, key, s.mirror.Expiry)
	if err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("mirror presign failed, serving upstream image")
		return entry.URL
	}
	s.urls.Add(key, url)
	return url
}

// objectKey maps a keyword to its mirrored object, e.g. "weight loss" ->
// "<prefix>weight-loss.jpg".
func (s *assetService) objectKey(entry domain.AssetEntry) string {
	return s.mirror.KeyPrefix + strings.ReplaceAll(entry.Keyword, " ", "-") + ".jpg"
}
