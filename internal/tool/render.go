package tool

// Rendering of results into the two caller-facing envelopes. Both functions
// are pure; the transport adapter picks the shape its integration expects.

// TextContent is one narration block in a text envelope.
type TextContent struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// TextEnvelope wraps a result as a list of text content blocks.
type TextEnvelope struct {
	Content []TextContent `json:"content"`
	IsError bool          `json:"isError,omitempty"`
}

// JSONEnvelope wraps a result as a structured success/data payload.
type JSONEnvelope struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Data    map[string]any `json:"data,omitempty"`
}

func RenderText(res *Result) TextEnvelope {
	return TextEnvelope{
		Content: []TextContent{{Type: "text", Text: res.Message}},
		IsError: !res.Success,
	}
}

func RenderJSON(res *Result) JSONEnvelope {
	return JSONEnvelope{
		Success: res.Success,
		Message: res.Message,
		Data:    res.Data,
	}
}
