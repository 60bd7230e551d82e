package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// scriptSchema is the system instruction handed to the model when emulating
// the production manager locally. It pins the exact payload shape the
// document normalizer expects; deviations are tolerated downstream anyway.
const scriptSchema = `You are the Script Production Manager of an educational history video studio.
You coordinate a research agent and a script/visual creator agent, then return their combined output.
Respond with a single JSON object using exactly these keys:
script_title, topic, target_age_range, video_length, style_tags (array of strings),
research_summary {overview, key_events [{date, event, significance}], key_figures [{name, role, detail}]},
scenes [{scene_number, scene_title, narration, visual_suggestions, duration_estimate, interactive_elements [{type, content}]}],
quiz_questions [{question, options (array of strings), correct_answer, scene_placement}],
fun_facts [{fact, why_its_cool, scene_placement}],
modern_connections [{historical_element, modern_link, scene_placement}],
intro_hook, outro_cta, production_notes.
scene_placement references a scene_number. Narration may use markdown headings, lists and **bold**.`

// OpenAIInvoker emulates the agent pipeline with a single OpenAI chat
// completion in JSON mode. It satisfies the same envelope contract as the
// gateway so callers cannot tell the collaborators apart.
type OpenAIInvoker struct {
	client *openai.Client
	model  string
}

// NewOpenAIInvoker creates an OpenAI-backed invoker.
func NewOpenAIInvoker(apiKey, model string) *OpenAIInvoker {
	return &OpenAIInvoker{client: openai.NewClient(apiKey), model: model}
}

func (o *OpenAIInvoker) Invoke(ctx context.Context, message, agentID string) (*InvokeResult, error) {
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: scriptSchema},
			{Role: openai.ChatMessageRoleUser, Content: message},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("calling openai: %w", err)
	}
	if len(resp.Choices) == 0 {
		return &InvokeResult{Success: false, Error: "agent returned no output"}, nil
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	var payload any
	if err := json.Unmarshal([]byte(content), &payload); err != nil {
		return &InvokeResult{
			Success:  false,
			Response: &InvokeResponse{Message: "agent returned malformed script data"},
		}, nil
	}

	return &InvokeResult{Success: true, Response: &InvokeResponse{Result: payload}}, nil
}
