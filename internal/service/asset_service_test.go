package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alcyxob/fitness-coach/internal/repository/static"
)

type fakeStorage struct {
	mu      sync.Mutex
	calls   []string
	heads   []string
	missing map[string]bool
	err     error
	headErr error
}

func (f *fakeStorage) ObjectExists(_ context.Context, key string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.heads = append(f.heads, key)
	if f.headErr != nil {
		return false, f.headErr
	}
	return !f.missing[key], nil
}

func (f *fakeStorage) PresignedDownloadURL(_ context.Context, key string, expires time.Duration) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, key)
	if f.err != nil {
		return "", f.err
	}
	return "https://mirror.example/" + key + "?expires=" + expires.String(), nil
}

func strPtr(s string) *string { return &s }

func newTestAssetService() AssetService {
	return NewAssetService(static.NewAssetCatalog(), nil, zerolog.Nop())
}

func TestResolveAssetMatchesKeyword(t *testing.T) {
	svc := newTestAssetService()

	tests := []struct {
		prompt  string
		keyword string
	}{
		{"Create a motivational fitness image for someone with goal: muscle gain.", "muscle gain"},
		{"ENDURANCE training", "endurance"},
		{"yoga for Flexibility", "flexibility"},
		{"general fitness", "general fitness"},
		{"pure strength", "strength"},
		{"something unrelated", "default"},
		{"weight-loss", "default"},
	}
	for _, tt := range tests {
		got := svc.ResolveAsset(strPtr(tt.prompt))
		assert.Equal(t, tt.keyword, got.Keyword, "prompt %q", tt.prompt)
	}
}

func TestResolveAssetDeclarationOrderWins(t *testing.T) {
	svc := newTestAssetService()

	got := svc.ResolveAsset(strPtr("I want weight loss and strength"))
	assert.Equal(t, "weight loss", got.Keyword)
	assert.Equal(t, "https://images.unsplash.com/photo-1571019614242-c5c5dee9f50b?w=800&q=80", got.URL)

	got = svc.ResolveAsset(strPtr("strength and endurance"))
	assert.Equal(t, "endurance", got.Keyword)
}

func TestResolveAssetEmptyInput(t *testing.T) {
	svc := newTestAssetService()
	def := static.Catalog{}.Default()

	assert.Equal(t, def, svc.ResolveAsset(nil))
	assert.Equal(t, def, svc.ResolveAsset(strPtr("")))
}

func TestReferenceWithoutMirror(t *testing.T) {
	svc := newTestAssetService()
	entry := svc.ResolveAsset(strPtr("strength"))
	assert.Equal(t, entry.URL, svc.Reference(context.Background(), entry))
}

func TestReferenceUsesMirrorAndCaches(t *testing.T) {
	store := &fakeStorage{}
	svc := NewAssetService(static.NewAssetCatalog(), &MirrorOptions{
		Storage:   store,
		KeyPrefix: "images/",
		Expiry:    time.Hour,
	}, zerolog.Nop())

	entry := svc.ResolveAsset(strPtr("weight loss"))
	first := svc.Reference(context.Background(), entry)
	second := svc.Reference(context.Background(), entry)

	assert.Equal(t, "https://mirror.example/images/weight-loss.jpg?expires=1h0m0s", first)
	assert.Equal(t, first, second)
	require.Len(t, store.calls, 1)
	assert.Equal(t, "images/weight-loss.jpg", store.calls[0])
}

func TestReferenceFallsBackOnStorageError(t *testing.T) {
	store := &fakeStorage{err: errors.New("connection refused")}
	svc := NewAssetService(static.NewAssetCatalog(), &MirrorOptions{Storage: store}, zerolog.Nop())

	entry := svc.ResolveAsset(nil)
	assert.Equal(t, entry.URL, svc.Reference(context.Background(), entry))
	assert.Equal(t, entry.URL, svc.Reference(context.Background(), entry))
	assert.Len(t, store.calls, 2, "failures are not cached")
}

func TestReferenceFallsBackWhenObjectMissing(t *testing.T) {
	store := &fakeStorage{missing: map[string]bool{"images/strength.jpg": true}}
	svc := NewAssetService(static.NewAssetCatalog(), &MirrorOptions{
		Storage:   store,
		KeyPrefix: "images/",
		Expiry:    time.Hour,
	}, zerolog.Nop())

	entry := svc.ResolveAsset(strPtr("strength"))
	assert.Equal(t, entry.URL, svc.Reference(context.Background(), entry))
	assert.Equal(t, entry.URL, svc.Reference(context.Background(), entry))
	assert.Len(t, store.heads, 1, "a missing object is remembered")
	assert.Empty(t, store.calls, "nothing is presigned for a missing object")

	// other keywords still come from the mirror
	other := svc.ResolveAsset(strPtr("endurance"))
	assert.Equal(t, "https://mirror.example/images/endurance.jpg?expires=1h0m0s", svc.Reference(context.Background(), other))
}

func TestReferenceFallsBackOnLookupError(t *testing.T) {
	store := &fakeStorage{headErr: errors.New("access denied")}
	svc := NewAssetService(static.NewAssetCatalog(), &MirrorOptions{Storage: store}, zerolog.Nop())

	entry := svc.ResolveAsset(strPtr("flexibility"))
	assert.Equal(t, entry.URL, svc.Reference(context.Background(), entry))
	assert.Equal(t, entry.URL, svc.Reference(context.Background(), entry))
	assert.Len(t, store.heads, 2, "failures are not cached")
	assert.Empty(t, store.calls)
}

func TestNilMirrorStorageDisablesMirror(t *testing.T) {
	svc := NewAssetService(static.NewAssetCatalog(), &MirrorOptions{KeyPrefix: "x/"}, zerolog.Nop())
	entry := svc.ResolveAsset(strPtr("endurance"))
	assert.Equal(t, entry.URL, svc.Reference(context.Background(), entry))
}
