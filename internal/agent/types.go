// Package agent is the opaque boundary to the external multi-agent script
// generation service. The rest of the system only sees one call shape:
// Invoke(message, agentID) returning the service's result envelope. Nothing
// past this package knows how the collaborator is reached.
package agent

import "context"

// Agent ids of the production pipeline. Every generation request goes to the
// manager, which coordinates the research and creator agents service-side.
const (
	ManagerAgentID  = "6999cf0e6be0a645ebe7f78e"
	ResearchAgentID = "6999cef2b6d5f732116819e2"
	CreatorAgentID  = "6999cef22b9e1319f70b1541"
)

// Info describes one agent of the pipeline for display.
type Info struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

// Pipeline returns the fixed agent roster.
func Pipeline() []Info {
	return []Info{
		{ID: ManagerAgentID, Name: "Script Production Manager", Role: "Coordinates research and script creation"},
		{ID: ResearchAgentID, Name: "History Research Agent", Role: "Deep historical research and fact gathering"},
		{ID: CreatorAgentID, Name: "Script & Visual Creator Agent", Role: "Script writing and visual direction"},
	}
}

// InvokeResult is the collaborator's response envelope.
type InvokeResult struct {
	Success  bool            `json:"success"`
	Response *InvokeResponse `json:"response,omitempty"`
	Error    string          `json:"error,omitempty"`
}

// InvokeResponse carries the nested result payload. Result is untyped on
// purpose: its shape is not contractually guaranteed and is normalized at
// the document-model boundary, never here.
type InvokeResponse struct {
	Result  any    `json:"result,omitempty"`
	Message string `json:"message,omitempty"`
}

// Invoker issues a single agent invocation. A returned error is a
// transport-level fault; service-level failure is reported inside the
// envelope. No retries are performed at this boundary.
type Invoker interface {
	Invoke(ctx context.Context, message, agentID string) (*InvokeResult, error)
}
