package crm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/hiclinic/crm-web/internal/session"
)

// DefaultBaseURL points at the local development backend.
const DefaultBaseURL = "http://localhost:8000"

// APIError is the single failure kind raised by the client. Message is
// the raw response body text, or a synthetic "HTTP <status>" when the
// body is empty. No distinction is made between 4xx and 5xx.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// Client talks to the HiClinic CRM backend. It attaches the session's
// bearer token to every request but never mutates session state.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	Session    session.Store
}

func New(baseURL string, store session.Store) *Client {
	return &Client{
		BaseURL: baseURL,
		Session: store,
	}
}

func (c *Client) Login(ctx context.Context, email, password string) (TokenResponse, error) {
	return request[TokenResponse](ctx, c, http.MethodPost, "/auth/login", Credentials{Email: email, Password: password})
}

func (c *Client) Register(ctx context.Context, email, password string) (TokenResponse, error) {
	return request[TokenResponse](ctx, c, http.MethodPost, "/auth/register", Credentials{Email: email, Password: password})
}

// Customers lists inbox rows filtered by bucket and free-text query.
// Empty filter values are omitted from the query string.
func (c *Client) Customers(ctx context.Context, bucket, q string) ([]InboxCustomer, error) {
	params := url.Values{}
	if bucket != "" {
		params.Set("bucket", bucket)
	}
	if q != "" {
		params.Set("q", q)
	}
	path := "/inbox/customers"
	if enc := params.Encode(); enc != "" {
		path += "?" + enc
	}
	return request[[]InboxCustomer](ctx, c, http.MethodGet, path, nil)
}

// Thread returns the full conversation history for one customer. There
// is no incremental fetch; every call re-downloads the whole thread.
func (c *Client) Thread(ctx context.Context, customerID string) ([]ThreadItem, error) {
	path := fmt.Sprintf("/inbox/customers/%s/thread", url.PathEscape(customerID))
	return request[[]ThreadItem](ctx, c, http.MethodGet, path, nil)
}

// SendText posts one outbound WhatsApp text message. The backend may
// answer 204 or echo the created item; either way only the error
// matters to callers.
func (c *Client) SendText(ctx context.Context, customerID, body string) error {
	path := fmt.Sprintf("/inbox/customers/%s/send-text", url.PathEscape(customerID))
	payload := map[string]string{"body": body, "channel": ChannelWhatsApp}
	_, err := request[json.RawMessage](ctx, c, http.MethodPost, path, payload)
	return err
}

func (c *Client) Summary(ctx context.Context) (Summary, error) {
	return request[Summary](ctx, c, http.MethodGet, "/analytics/summary", nil)
}

func (c *Client) LeadsByDay(ctx context.Context) ([]LeadsPoint, error) {
	return request[[]LeadsPoint](ctx, c, http.MethodGet, "/analytics/leads-by-day", nil)
}

func (c *Client) Templates(ctx context.Context) ([]TemplateRow, error) {
	return request[[]TemplateRow](ctx, c, http.MethodGet, "/analytics/templates", nil)
}

// request is the single operation behind every endpoint wrapper: one
// attempt, no retry, no timeout beyond the transport's own. A 204
// yields the zero value with no parse; any other 2xx is JSON-decoded
// into T, trusting the server contract.
func request[T any](ctx context.Context, c *Client, method, path string, body any) (T, error) {
	var zero T

	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return zero, fmt.Errorf("failed to marshal payload: %w", err)
		}
		payload = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, strings.TrimSuffix(c.BaseURL, "/")+path, payload)
	if err != nil {
		return zero, fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil && req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if req.Header.Get("Authorization") == "" {
		if token := c.Session.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return zero, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		text, _ := io.ReadAll(resp.Body)
		msg := string(text)
		if msg == "" {
			msg = fmt.Sprintf("HTTP %d", resp.StatusCode)
		}
		return zero, &APIError{Status: resp.StatusCode, Message: msg}
	}

	if resp.StatusCode == http.StatusNoContent {
		return zero, nil
	}
	if err := json.NewDecoder(resp.Body).Decode(&zero); err != nil {
		return zero, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	return zero, nil
}
