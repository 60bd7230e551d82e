package agent

import (
	"fmt"
	"os"
)

// NewInvoker creates an Invoker for the given mode. Supported modes:
// "gateway" (the deployed multi-agent service) and "openai" (a local
// emulation of the manager agent).
func NewInvoker(mode, baseURL, model string) (Invoker, error) {
	switch mode {
	case "gateway":
		if baseURL == "" {
			return nil, fmt.Errorf("agent gateway base URL is not configured")
		}
		return NewGatewayInvoker(baseURL, os.Getenv("HISTORYQUEST_AGENT_API_KEY")), nil

	case "openai":
		apiKey := os.Getenv("OPENAI_API_KEY")
		if apiKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY environment variable is not set")
		}
		return NewOpenAIInvoker(apiKey, model), nil

	default:
		return nil, fmt.Errorf("unsupported agent mode: %s", mode)
	}
}
