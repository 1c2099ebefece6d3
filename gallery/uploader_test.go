package gallery

import (
	"context"
	"strings"
	"testing"

	"gingallery/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// spyBackend wraps another backend and counts upload calls.
type spyBackend struct {
	inner   storage.Backend
	uploads int
	fail    error
}

func (s *spyBackend) Upload(ctx context.Context, content []byte, filename, mimeType string) (*storage.Result, error) {
	s.uploads++
	if s.fail != nil {
		return nil, s.fail
	}
	return s.inner.Upload(ctx, content, filename, mimeType)
}

func (s *spyBackend) Delete(ctx context.Context, fileID string) (bool, error) {
	return s.inner.Delete(ctx, fileID)
}

func TestUploadPipelineMockMode(t *testing.T) {
	store := newMemStore("cat-1")
	uploader := NewUploader(storage.NewMock(), NewRecorder(store))
	ctx := context.Background()

	first := pngBytes(t, 10, 10)
	second := pngBytes(t, 3, 7)

	photo1, err := uploader.Upload(ctx, "cat-1", SlotBefore, first, "one.png", "image/png")
	require.NoError(t, err)
	photo2, err := uploader.Upload(ctx, "cat-1", SlotBefore, second, "two.png", "image/png")
	require.NoError(t, err)

	photos := store.get("cat-1").PhotosBefore
	require.Len(t, photos, 2)
	assert.Equal(t, photo1.ID, photos[0].ID)
	assert.Equal(t, photo2.ID, photos[1].ID)
	assert.NotEqual(t, photos[0].ID, photos[1].ID)
	assert.NotEqual(t, photos[0].FileURL, photos[1].FileURL)
	for _, p := range photos {
		assert.True(t, strings.HasPrefix(p.FileURL, "data:image/png;base64,"))
		assert.NotEmpty(t, p.TelegramFileID)
		assert.False(t, p.UploadedAt.IsZero())
	}
}

func TestUploadRejectsBadExtensionBeforeStorage(t *testing.T) {
	store := newMemStore("cat-1")
	spy := &spyBackend{inner: storage.NewMock()}
	uploader := NewUploader(spy, NewRecorder(store))

	_, err := uploader.Upload(context.Background(), "cat-1", SlotBefore, pngBytes(t, 2, 2), "photo.jpg", "image/png")

	require.Error(t, err)
	assert.Equal(t, "Invalid file extension. Allowed: .png", err.Error())
	assert.Zero(t, spy.uploads)
	assert.Empty(t, store.get("cat-1").PhotosBefore)
}

func TestUploadRejectsOversizeBeforeNormalizing(t *testing.T) {
	store := newMemStore("cat-1")
	spy := &spyBackend{inner: storage.NewMock()}
	uploader := NewUploader(spy, NewRecorder(store))

	// Oversize garbage: the size check must fire, not the image decode.
	oversized := make([]byte, MaxFileSize+1)
	_, err := uploader.Upload(context.Background(), "cat-1", SlotBefore, oversized, "big.png", "image/png")

	require.Error(t, err)
	assert.Equal(t, "File too large. Maximum size is 10MB", err.Error())
	assert.Zero(t, spy.uploads)
}

func TestUploadAcceptsRenamedJPEG(t *testing.T) {
	// Valid JPEG bytes behind a .png name and png declared type: the decode
	// succeeds and the stored photo is a real PNG.
	store := newMemStore("cat-1")
	uploader := NewUploader(storage.NewMock(), NewRecorder(store))

	photo, err := uploader.Upload(context.Background(), "cat-1", SlotAfter, jpegBytes(t, 8, 8), "photo.png", "image/png")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(photo.FileURL, "data:image/png;base64,"))
	assert.Equal(t, "image/png", photo.MimeType)
}

func TestUploadRejectsNonImagePayload(t *testing.T) {
	store := newMemStore("cat-1")
	spy := &spyBackend{inner: storage.NewMock()}
	uploader := NewUploader(spy, NewRecorder(store))

	_, err := uploader.Upload(context.Background(), "cat-1", SlotBefore, []byte("not an image"), "x.png", "image/png")

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Reason, "Invalid image file")
	assert.Zero(t, spy.uploads)
}

func TestUploadStorageFailureRecordsNothing(t *testing.T) {
	store := newMemStore("cat-1")
	spy := &spyBackend{inner: storage.NewMock(), fail: &storage.UploadError{Reason: "Telegram API error: chat not found"}}
	uploader := NewUploader(spy, NewRecorder(store))

	_, err := uploader.Upload(context.Background(), "cat-1", SlotBefore, pngBytes(t, 2, 2), "a.png", "image/png")

	var uploadErr *storage.UploadError
	require.ErrorAs(t, err, &uploadErr)
	assert.Contains(t, uploadErr.Error(), "chat not found")
	assert.Empty(t, store.get("cat-1").PhotosBefore)
}

func TestUploadMissingCategory(t *testing.T) {
	uploader := NewUploader(storage.NewMock(), NewRecorder(newMemStore()))

	_, err := uploader.Upload(context.Background(), "ghost", SlotBefore, pngBytes(t, 2, 2), "a.png", "image/png")
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestUploadInvalidSlot(t *testing.T) {
	store := newMemStore("cat-1")
	spy := &spyBackend{inner: storage.NewMock()}
	uploader := NewUploader(spy, NewRecorder(store))

	_, err := uploader.Upload(context.Background(), "cat-1", "middle", pngBytes(t, 2, 2), "a.png", "image/png")

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Zero(t, spy.uploads)
}
