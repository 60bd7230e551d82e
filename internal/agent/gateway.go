package agent

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// GatewayInvoker reaches the agent service through its HTTP gateway via
// direct HTTP. Generation runs the full multi-agent pipeline server-side, so
// the client timeout is generous.
type GatewayInvoker struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewGatewayInvoker creates a gateway client. apiKey may be empty for
// gateways that do not authenticate.
func NewGatewayInvoker(baseURL, apiKey string) *GatewayInvoker {
	return &GatewayInvoker{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 3 * time.Minute},
	}
}

type gatewayRequest struct {
	Message string `json:"message"`
	AgentID string `json:"agent_id"`
}

func (g *GatewayInvoker) Invoke(ctx context.Context, message, agentID string) (*InvokeResult, error) {
	body, err := json.Marshal(gatewayRequest{Message: message, AgentID: agentID})
	if err != nil {
		return nil, fmt.Errorf("marshalling invoke request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/invoke", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("building invoke request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if g.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+g.apiKey)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling agent gateway: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading gateway response: %w", err)
	}

	// The gateway reports service-level failure inside the envelope, so any
	// parseable body is passed through regardless of HTTP status.
	var result InvokeResult
	if err := json.Unmarshal(data, &result); err != nil {
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("agent gateway returned status %d", resp.StatusCode)
		}
		return nil, fmt.Errorf("parsing gateway response: %w", err)
	}

	return &result, nil
}
