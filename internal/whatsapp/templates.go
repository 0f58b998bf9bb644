package whatsapp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"whatsapp-studio/internal/template"
)

// RemoteTemplate is a template as listed by the Graph API.
type RemoteTemplate struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Language       string          `json:"language"`
	Status         string          `json:"status"`
	Category       string          `json:"category"`
	RejectedReason string          `json:"rejected_reason,omitempty"`
	Components     json.RawMessage `json:"components,omitempty"`
}

type templatePage struct {
	Data   []RemoteTemplate `json:"data"`
	Paging struct {
		Cursors struct {
			After string `json:"after"`
		} `json:"cursors"`
		Next string `json:"next"`
	} `json:"paging"`
}

// maxTemplatePages bounds a listing so a misbehaving cursor cannot loop.
const maxTemplatePages = 50

// SubmitTemplate creates a template on the business account. It is sent
// exactly once; the caller decides whether to try again.
func (c *Client) SubmitTemplate(ctx context.Context, p template.Payload) (*template.Submission, error) {
	resp, err := c.sendRequest(ctx, http.MethodPost, c.url(c.Config.WhatsAppBusinessAccountID, "message_templates"), p, nil)
	if err != nil {
		return nil, err
	}
	var sub template.Submission
	if err := json.Unmarshal(resp, &sub); err != nil {
		return nil, fmt.Errorf("decode submission: %w", err)
	}
	if sub.ID == "" {
		return nil, fmt.Errorf("decode submission: response has no template id")
	}
	return &sub, nil
}

// GetTemplates lists every template of the business account, following the
// paging cursors.
func (c *Client) GetTemplates(ctx context.Context) ([]RemoteTemplate, error) {
	var all []RemoteTemplate
	after := ""
	for page := 0; page < maxTemplatePages; page++ {
		q := url.Values{}
		q.Set("fields", "id,name,language,status,category,rejected_reason,components")
		q.Set("limit", "100")
		if after != "" {
			q.Set("after", after)
		}
		resp, err := c.sendRequest(ctx, http.MethodGet, c.url(c.Config.WhatsAppBusinessAccountID, "message_templates")+"?"+q.Encode(), nil, nil)
		if err != nil {
			return nil, err
		}
		var tp templatePage
		if err := json.Unmarshal(resp, &tp); err != nil {
			return nil, fmt.Errorf("decode templates: %w", err)
		}
		all = append(all, tp.Data...)
		if tp.Paging.Next == "" || tp.Paging.Cursors.After == "" {
			return all, nil
		}
		after = tp.Paging.Cursors.After
	}
	return all, nil
}

// DeleteTemplate removes every language of the named template.
func (c *Client) DeleteTemplate(ctx context.Context, name string) error {
	q := url.Values{}
	q.Set("name", name)
	_, err := c.sendRequest(ctx, http.MethodDelete, c.url(c.Config.WhatsAppBusinessAccountID, "message_templates")+"?"+q.Encode(), nil, nil)
	return err
}
