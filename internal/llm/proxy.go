package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// ProxyProvider sends completions to a querylens proxy, which holds the
// upstream credential. The client itself carries no key.
type ProxyProvider struct {
	baseURL    string
	model      string
	httpClient *http.Client
}

func NewProxyProvider(baseURL, model string) *ProxyProvider {
	return &ProxyProvider{
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
		httpClient: &http.Client{
			Timeout: 2 * time.Minute,
		},
	}
}

func (p *ProxyProvider) Name() string {
	return "proxy"
}

func (p *ProxyProvider) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/healthz", nil)
	if err != nil {
		return err
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("cannot connect to proxy at %s: %w", p.baseURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return newAPIError(p.Name(), resp)
	}
	return nil
}

func (p *ProxyProvider) Complete(ctx context.Context, req *CompletionRequest) (*CompletionResponse, error) {
	out := *req
	if out.Model == "" {
		out.Model = p.model
	}

	body, err := json.Marshal(&out)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/v1/complete", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("proxy request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, newAPIError(p.Name(), resp)
	}

	var result CompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode proxy response: %w", err)
	}
	return &result, nil
}
