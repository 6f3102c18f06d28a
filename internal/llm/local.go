package llm

import "context"

// The local provider talks to any OpenAI-compatible server (LM Studio,
// Ollama) and reuses the OpenAI wire types.

func (c *Client) completeLocal(ctx context.Context, req Request) (*Response, error) {
	// Empty model lets the server use whatever it has loaded.
	model := c.model
	if model == "default" || model == "local" {
		model = ""
	}

	body := buildOpenAIRequest(model, req)

	respBody, err := c.doRequest(ctx, LocalServerURL()+"/chat/completions", body, nil)
	if err != nil {
		return nil, err
	}

	resp, err := parseOpenAIResponse(respBody, c.model)
	if err != nil {
		return nil, err
	}
	if resp.Model == "" || resp.Model == "default" {
		resp.Model = "local"
	}
	return resp, nil
}
