package storage

import (
	"context"
	"log"
	"strings"
)

// Result is what a successful upload hands back to the pipeline. It lives
// just long enough to build a Photo out of it.
type Result struct {
	URL          string
	FileID       string
	FileUniqueID string
	Size         int
	MimeType     string
}

// Backend stores normalized image bytes somewhere durable and returns a
// retrievable reference. One instance is picked at startup and held for the
// process lifetime.
type Backend interface {
	Upload(ctx context.Context, content []byte, filename, mimeType string) (*Result, error)
	Delete(ctx context.Context, fileID string) (bool, error)
}

// New picks the backend from the configured credentials. A missing or
// mock_-prefixed bot token means no real Telegram account is available and
// uploads stay local.
func New(botToken, channelID string) Backend {
	if botToken == "" || strings.HasPrefix(botToken, "mock_") {
		log.Println("Telegram storage running in MOCK MODE - no actual uploads")
		return NewMock()
	}
	return NewTelegram(botToken, channelID)
}
