package gridservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

type Client struct {
	url    *url.URL
	client *http.Client
}

func NewClient(_url string, client *http.Client) (*Client, error) {
	u, err := url.Parse(_url)
	if err != nil {
		return nil, fmt.Errorf("invalid url: %w", err)
	}

	if client == nil {
		client = http.DefaultClient
	}

	return &Client{url: u, client: client}, nil
}

func (c *Client) ValidateBoard(ctx context.Context, req *ValidateBoardRequest) (*ValidateResponse, error) {
	return c.post(ctx, "/api/v1/validate/board", req)
}

func (c *Client) ValidateGroup(ctx context.Context, req *ValidateGroupRequest) (*ValidateResponse, error) {
	return c.post(ctx, "/api/v1/validate/group", req)
}

func (c *Client) post(ctx context.Context, path string, payload any) (*ValidateResponse, error) {
	body := &bytes.Buffer{}
	if err := json.NewEncoder(body).Encode(payload); err != nil {
		return nil, fmt.Errorf("encode request body: %w", err)
	}

	_url := c.url.JoinPath(path).String()
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, _url, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	request.Header.Set("Content-Type", "application/json")

	response, err := c.client.Do(request)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		resp, _ := io.ReadAll(response.Body)
		return nil, fmt.Errorf("server response status code: %d, body: %s", response.StatusCode, resp)
	}

	var resp ValidateResponse
	if err = json.NewDecoder(response.Body).Decode(&resp); err != nil {
		return nil, fmt.Errorf("decode response body: %w", err)
	}

	return &resp, nil
}
