package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"net/url"
	"time"
)

const (
	defaultAPIBase = "https://api.telegram.org"
	requestTimeout = 30 * time.Second
)

// Telegram uploads photos to a channel through the Bot API and resolves
// them into fetchable file URLs.
type Telegram struct {
	botToken  string
	channelID string
	apiBase   string
	client    *http.Client
}

func NewTelegram(botToken, channelID string) *Telegram {
	return &Telegram{
		botToken:  botToken,
		channelID: channelID,
		apiBase:   defaultAPIBase,
		client:    &http.Client{Timeout: requestTimeout},
	}
}

type apiResponse struct {
	OK          bool            `json:"ok"`
	Description string          `json:"description"`
	Result      json.RawMessage `json:"result"`
}

type photoSize struct {
	FileID       string `json:"file_id"`
	FileUniqueID string `json:"file_unique_id"`
	Width        int    `json:"width"`
	Height       int    `json:"height"`
	FileSize     int    `json:"file_size"`
}

// Upload sends the photo to the configured channel and resolves the largest
// size Telegram produced into a durable URL. A failed resolution is its own
// error kind because the remote copy exists but is unusable.
func (t *Telegram) Upload(ctx context.Context, content []byte, filename, mimeType string) (*Result, error) {
	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	if err := form.WriteField("chat_id", t.channelID); err != nil {
		return nil, &UploadError{Err: err}
	}
	part, err := form.CreateFormFile("photo", filename)
	if err != nil {
		return nil, &UploadError{Err: err}
	}
	if _, err := part.Write(content); err != nil {
		return nil, &UploadError{Err: err}
	}
	if err := form.Close(); err != nil {
		return nil, &UploadError{Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.methodURL("sendPhoto"), &body)
	if err != nil {
		return nil, &UploadError{Err: err}
	}
	req.Header.Set("Content-Type", form.FormDataContentType())

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, &UploadError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &UploadError{Err: err}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &UploadError{Reason: "Telegram API error: " + string(raw)}
	}

	var api apiResponse
	if err := json.Unmarshal(raw, &api); err != nil {
		return nil, &UploadError{Err: fmt.Errorf("decoding sendPhoto response: %w", err)}
	}
	if !api.OK {
		return nil, &UploadError{Reason: "Telegram API error: " + api.Description}
	}

	var msg struct {
		Photo []photoSize `json:"photo"`
	}
	if err := json.Unmarshal(api.Result, &msg); err != nil {
		return nil, &UploadError{Err: fmt.Errorf("decoding sendPhoto result: %w", err)}
	}
	if len(msg.Photo) == 0 {
		return nil, &UploadError{Reason: "Telegram response contained no photo sizes"}
	}

	// Sizes come smallest to largest; keep the largest.
	largest := msg.Photo[len(msg.Photo)-1]

	fileURL, err := t.resolveFileURL(ctx, largest.FileID)
	if err != nil {
		return nil, err
	}

	log.Printf("uploaded to Telegram: %s -> %s", filename, largest.FileID)
	return &Result{
		URL:          fileURL,
		FileID:       largest.FileID,
		FileUniqueID: largest.FileUniqueID,
		Size:         len(content),
		MimeType:     mimeType,
	}, nil
}

// resolveFileURL turns a file id into a fetchable URL via getFile.
func (t *Telegram) resolveFileURL(ctx context.Context, fileID string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		t.methodURL("getFile")+"?file_id="+url.QueryEscape(fileID), nil)
	if err != nil {
		return "", &ResolutionError{FileID: fileID, Err: err}
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return "", &ResolutionError{FileID: fileID, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &ResolutionError{FileID: fileID, Err: fmt.Errorf("getFile returned status %d", resp.StatusCode)}
	}

	var api apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&api); err != nil {
		return "", &ResolutionError{FileID: fileID, Err: err}
	}
	if !api.OK {
		return "", &ResolutionError{FileID: fileID, Err: fmt.Errorf("telegram: %s", api.Description)}
	}

	var file struct {
		FilePath string `json:"file_path"`
	}
	if err := json.Unmarshal(api.Result, &file); err != nil {
		return "", &ResolutionError{FileID: fileID, Err: err}
	}
	if file.FilePath == "" {
		return "", &ResolutionError{FileID: fileID, Err: fmt.Errorf("getFile returned no file_path")}
	}

	return fmt.Sprintf("%s/file/bot%s/%s", t.apiBase, t.botToken, file.FilePath), nil
}

// Delete is best-effort. The Bot API has no file deletion primitive, so the
// object stays in the channel; deleting the channel message would need the
// message id tracked at upload time.
func (t *Telegram) Delete(ctx context.Context, fileID string) (bool, error) {
	log.Printf("Telegram file deletion not supported, %s remains in the channel", fileID)
	return true, nil
}

func (t *Telegram) methodURL(method string) string {
	return fmt.Sprintf("%s/bot%s/%s", t.apiBase, t.botToken, method)
}
