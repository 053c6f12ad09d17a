package push

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"
)

// FCMClient talks to the FCM HTTP send endpoint.
type FCMClient struct {
	url        string
	serverKey  string
	httpClient *http.Client
}

func NewFCMClient(url, serverKey string) *FCMClient {
	return &FCMClient{
		url:        url,
		serverKey:  serverKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type fcmNotification struct {
	Title string `json:"title"`
	Body  string `json:"body,omitempty"`
}

type fcmRequest struct {
	RegistrationIDs []string          `json:"registration_ids"`
	Notification    fcmNotification   `json:"notification"`
	Data            map[string]string `json:"data,omitempty"`
	Priority        string            `json:"priority,omitempty"`
}

type fcmResponse struct {
	MulticastID int64 `json:"multicast_id"`
	Success     int   `json:"success"`
	Failure     int   `json:"failure"`
}

// Send pushes one notification to a set of device tokens and returns the
// FCM multicast id.
func (c *FCMClient) Send(ctx context.Context, tokens []string, title, body string, data map[string]string) (string, error) {
	if len(tokens) == 0 {
		return "", nil
	}
	payload, err := json.Marshal(fcmRequest{
		RegistrationIDs: tokens,
		Notification:    fcmNotification{Title: title, Body: body},
		Data:            data,
		Priority:        "high",
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "key="+c.serverKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fcm send: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("fcm send: status %d: %s", resp.StatusCode, raw)
	}

	var out fcmResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode fcm response: %w", err)
	}
	if out.Failure > 0 && out.Success == 0 {
		return "", fmt.Errorf("fcm send: all %d tokens failed", out.Failure)
	}
	return strconv.FormatInt(out.MulticastID, 10), nil
}
