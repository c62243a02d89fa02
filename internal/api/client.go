package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout:   timeout,
			Transport: newLoggingTransport(nil),
		},
	}
}

// do выполняет запрос и нормализует любой сбой в *Error.
// path всегда с trailing slash - иначе сервер отвечает редиректом 307
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return newTransportError(fmt.Errorf("кодирование тела запроса: %w", err))
		}
		reqBody = bytes.NewReader(encoded)
	}

	fullURL := c.baseURL + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reqBody)
	if err != nil {
		return newTransportError(fmt.Errorf("создание запроса: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return newTransportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var details map[string]any
		json.NewDecoder(resp.Body).Decode(&details)
		return newResponseError(resp.StatusCode, details)
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return newTransportError(fmt.Errorf("чтение ответа: %w", err))
	}
	return nil
}
