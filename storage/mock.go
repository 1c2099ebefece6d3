package storage

import (
	"context"
	"crypto/md5"
	"encoding/base64"
	"fmt"
	"log"
)

// Same ceiling the validator enforces; the mock re-checks it as defense in
// depth since it has no remote side to refuse oversized content.
const maxMockSize = 10 * 1024 * 1024

// Mock is the offline backend used when no Telegram credentials are
// configured. It derives a deterministic file id from the content hash and
// embeds the bytes in a data URL, so the photo is retrievable without any
// network at all.
type Mock struct{}

func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) Upload(ctx context.Context, content []byte, filename, mimeType string) (*Result, error) {
	if len(content) == 0 {
		return nil, &UploadError{Reason: "File is empty"}
	}
	if len(content) > maxMockSize {
		return nil, &UploadError{Reason: fmt.Sprintf("File too large. Maximum size is %dMB", maxMockSize/(1024*1024))}
	}

	sum := md5.Sum(content)
	fileID := fmt.Sprintf("AgACAgIAAxkBAAI_%x_mock", sum)
	fileURL := fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(content))

	log.Printf("mock upload: %s -> %.24s...", filename, fileID)
	return &Result{
		URL:      fileURL,
		FileID:   fileID,
		Size:     len(content),
		MimeType: mimeType,
	}, nil
}

func (m *Mock) Delete(ctx context.Context, fileID string) (bool, error) {
	log.Printf("mock delete: %s", fileID)
	return true, nil
}
