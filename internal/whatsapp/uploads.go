package whatsapp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"whatsapp-studio/internal/template"
)

// MaxHeaderSampleSize is the largest header sample accepted for upload.
const MaxHeaderSampleSize = 100 << 20

var ErrSampleTooLarge = errors.New("whatsapp: header sample is too large")

// UploadHeaderSample pushes a media sample through the resumable upload API
// and returns the handle to use in example.header_handle.
func (c *Client) UploadHeaderSample(ctx context.Context, f template.MediaFile) (string, error) {
	if c.Config.AppID == "" {
		return "", errors.New("whatsapp: META_APP_ID is required for media uploads")
	}
	data, err := io.ReadAll(io.LimitReader(f.Content, MaxHeaderSampleSize+1))
	if err != nil {
		return "", fmt.Errorf("read sample: %w", err)
	}
	if len(data) > MaxHeaderSampleSize {
		return "", ErrSampleTooLarge
	}

	sessionID, err := c.startUpload(ctx, f, len(data))
	if err != nil {
		return "", err
	}

	resp, err := c.sendRequest(ctx, http.MethodPost, c.url(sessionID), data, map[string]string{
		"Authorization": "OAuth " + c.Config.WhatsAppToken,
		"file_offset":   "0",
		"Content-Type":  "application/octet-stream",
	})
	if err != nil {
		return "", err
	}
	var out struct {
		Handle string `json:"h"`
	}
	if err := json.Unmarshal(resp, &out); err != nil {
		return "", fmt.Errorf("decode upload: %w", err)
	}
	if out.Handle == "" {
		return "", errors.New("decode upload: response has no handle")
	}
	return out.Handle, nil
}

func (c *Client) startUpload(ctx context.Context, f template.MediaFile, size int) (string, error) {
	q := url.Values{}
	q.Set("file_length", strconv.Itoa(size))
	q.Set("file_type", f.MimeType)
	if f.Name != "" {
		q.Set("file_name", f.Name)
	}
	resp, err := c.sendRequest(ctx, http.MethodPost, c.url(c.Config.AppID, "uploads")+"?"+q.Encode(), nil, nil)
	if err != nil {
		return "", err
	}
	var session struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(resp, &session); err != nil {
		return "", fmt.Errorf("decode upload session: %w", err)
	}
	if session.ID == "" {
		return "", errors.New("decode upload session: response has no id")
	}
	return session.ID, nil
}
