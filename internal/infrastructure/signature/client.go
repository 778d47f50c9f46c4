package signature

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"outfitter_billing/internal/domain/entities"
	"outfitter_billing/internal/usecase/interfaces"

	"github.com/sethvargo/go-retry"
)

var ErrMissingSignatureServiceURL = errors.New("missing SIGNATURE_SERVICE_URL")

// Client talks to the e-signature provider's envelope API.
//
// Send is never retried: a duplicate envelope is worse than a failed request
// the caller can repeat. GetStatus is a read and retries transient failures.
type Client struct {
	baseURL  string
	apiKey   string
	http     *http.Client
	mockMode bool
	backoff  func() retry.Backoff
}

var _ interfaces.ISignatureService = (*Client)(nil)

func NewClient(baseURL, apiKey string, timeout time.Duration, mock bool) (*Client, error) {
	if mock {
		log.Printf("[signature][client] mock mode enabled")
		return &Client{mockMode: true}, nil
	}
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, ErrMissingSignatureServiceURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: timeout},
		backoff: func() retry.Backoff {
			return retry.WithMaxRetries(3, retry.NewExponential(200*time.Millisecond))
		},
	}, nil
}

type sendRequest struct {
	ContractID  string `json:"contract_id"`
	OutfitterID string `json:"outfitter_id"`
	HuntID      string `json:"hunt_id,omitempty"`
	ClientEmail string `json:"client_email"`
	TemplateID  string `json:"template_id"`
}

type sendResponse struct {
	TrackingRef string `json:"tracking_ref"`
}

type statusResponse struct {
	ClientSigned   bool       `json:"client_signed"`
	AdminSigned    bool       `json:"admin_signed"`
	ClientSignedAt *time.Time `json:"client_signed_at,omitempty"`
	AdminSignedAt  *time.Time `json:"admin_signed_at,omitempty"`
}

// StatusError is a non-2xx answer from the provider.
type StatusError struct {
	Op     string
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("signature service %s: status %d: %s", e.Op, e.Status, e.Body)
}

func (c *Client) Send(ctx context.Context, contract entities.HuntContract) (string, error) {
	if c.mockMode {
		ref := "mock-" + contract.ID
		log.Printf("[signature][client] mock send contract_id=%s tracking_ref=%s", contract.ID, ref)
		return ref, nil
	}

	body, err := json.Marshal(sendRequest{
		ContractID:  contract.ID,
		OutfitterID: contract.OutfitterID,
		HuntID:      contract.HuntID,
		ClientEmail: contract.ClientEmail,
		TemplateID:  contract.TemplateID,
	})
	if err != nil {
		return "", err
	}

	var out sendResponse
	if err := c.do(ctx, http.MethodPost, "/envelopes", body, &out); err != nil {
		log.Printf("[signature][client] send failed contract_id=%s err=%v", contract.ID, err)
		return "", err
	}
	if out.TrackingRef == "" {
		return "", errors.New("signature service send: empty tracking_ref")
	}
	log.Printf("[signature][client] send success contract_id=%s tracking_ref=%s", contract.ID, out.TrackingRef)
	return out.TrackingRef, nil
}

func (c *Client) GetStatus(ctx context.Context, trackingRef string) (interfaces.SignatureStatus, error) {
	if c.mockMode {
		now := time.Now().UTC()
		return interfaces.SignatureStatus{ClientSigned: true, AdminSigned: true, ClientSignedAt: &now, AdminSignedAt: &now}, nil
	}

	var out statusResponse
	err := retry.Do(ctx, c.backoff(), func(ctx context.Context) error {
		err := c.do(ctx, http.MethodGet, "/envelopes/"+url.PathEscape(trackingRef), nil, &out)
		if err == nil {
			return nil
		}
		var se *StatusError
		if errors.As(err, &se) && se.Status < 500 && se.Status != http.StatusTooManyRequests {
			return err
		}
		log.Printf("[signature][client] status retry tracking_ref=%s err=%v", trackingRef, err)
		return retry.RetryableError(err)
	})
	if err != nil {
		return interfaces.SignatureStatus{}, err
	}
	return interfaces.SignatureStatus{
		ClientSigned:   out.ClientSigned,
		AdminSigned:    out.AdminSigned,
		ClientSignedAt: out.ClientSignedAt,
		AdminSignedAt:  out.AdminSignedAt,
	}, nil
}

func (c *Client) do(ctx context.Context, method, path string, body []byte, out any) error {
	var rdr io.Reader
	if body != nil {
		rdr = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rdr)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Op: method + " " + path, Status: resp.StatusCode, Body: strings.TrimSpace(string(raw))}
	}
	if out == nil || len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, out)
}
