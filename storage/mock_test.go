package storage

import (
	"context"
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockUploadDeterministicID(t *testing.T) {
	mock := NewMock()
	ctx := context.Background()
	content := []byte("the very same bytes")

	first, err := mock.Upload(ctx, content, "a.png", "image/png")
	require.NoError(t, err)
	second, err := mock.Upload(ctx, content, "b.png", "image/png")
	require.NoError(t, err)

	assert.Equal(t, first.FileID, second.FileID)
	assert.True(t, strings.HasPrefix(first.FileID, "AgACAgIAAxkBAAI_"))
	assert.True(t, strings.HasSuffix(first.FileID, "_mock"))
}

func TestMockUploadDistinctContentDistinctID(t *testing.T) {
	mock := NewMock()
	ctx := context.Background()

	first, err := mock.Upload(ctx, []byte("content A"), "a.png", "image/png")
	require.NoError(t, err)
	second, err := mock.Upload(ctx, []byte("content B"), "a.png", "image/png")
	require.NoError(t, err)

	assert.NotEqual(t, first.FileID, second.FileID)
}

func TestMockUploadInlineURL(t *testing.T) {
	mock := NewMock()
	content := []byte{0x89, 0x50, 0x4e, 0x47, 1, 2, 3}

	result, err := mock.Upload(context.Background(), content, "a.png", "image/png")
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(result.URL, "data:image/png;base64,"))
	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(result.URL, "data:image/png;base64,"))
	require.NoError(t, err)
	assert.Equal(t, content, decoded)
	assert.Equal(t, len(content), result.Size)
	assert.Equal(t, "image/png", result.MimeType)
}

func TestMockUploadRejectsEmpty(t *testing.T) {
	mock := NewMock()

	_, err := mock.Upload(context.Background(), nil, "a.png", "image/png")

	var uploadErr *UploadError
	require.ErrorAs(t, err, &uploadErr)
	assert.Equal(t, "File is empty", uploadErr.Reason)
}

func TestMockUploadRejectsOversize(t *testing.T) {
	mock := NewMock()

	_, err := mock.Upload(context.Background(), make([]byte, maxMockSize+1), "a.png", "image/png")

	var uploadErr *UploadError
	require.ErrorAs(t, err, &uploadErr)
	assert.Contains(t, uploadErr.Reason, "File too large")
}

func TestMockDelete(t *testing.T) {
	mock := NewMock()

	ok, err := mock.Delete(context.Background(), "whatever")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestNewSelectsBackendFromCredentials(t *testing.T) {
	assert.IsType(t, &Mock{}, New("", "-100123"))
	assert.IsType(t, &Mock{}, New("mock_bot_token_12345", "-100123"))
	assert.IsType(t, &Telegram{}, New("123456:real-token", "-100123"))
}
