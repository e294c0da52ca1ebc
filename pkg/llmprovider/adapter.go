package llmprovider

import (
	"context"
	"fmt"

	"jasper/pkg/deepseek"
	"jasper/pkg/gemini"
	"jasper/pkg/ollama"
	"jasper/pkg/qwen"
)

// GeminiAdapter adapts pkg/gemini to llmprovider.Provider interface
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	geminiReq := &gemini.Request{
		Messages:      make([]gemini.Content, len(req.Messages)),
		Temperature:   req.Temperature,
		MaxTokens:     req.MaxTokens,
		StopSequences: req.StopSequences,
		JSON:          req.ResponseFormat == FormatJSON,
		GoogleSearch:  req.WebSearch,
	}
	if req.SystemInstruction != nil {
		geminiReq.SystemInstruction = &gemini.Content{Parts: []gemini.Part{{Text: messageText(req.SystemInstruction)}}}
	}
	for i := range req.Messages {
		geminiReq.Messages[i] = gemini.Content{
			Role:  req.Messages[i].Role,
			Parts: []gemini.Part{{Text: messageText(&req.Messages[i])}},
		}
	}

	resp, err := a.client.GenerateContent(ctx, geminiReq)
	if err != nil {
		return nil, &ProviderError{Provider: a.Name(), Err: err}
	}

	parts := make([]Part, len(resp.Content.Parts))
	for i, p := range resp.Content.Parts {
		parts[i] = Part{Text: p.Text}
	}

	return &Response{
		Content:      Message{Role: "assistant", Parts: parts},
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *GeminiAdapter) Name() string {
	return "gemini"
}

// Model returns model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

// QwenAdapter adapts pkg/qwen to llmprovider.Provider interface
type QwenAdapter struct {
	client qwen.IQwen
}

// NewQwenAdapter creates a new Qwen adapter
func NewQwenAdapter(client qwen.IQwen) *QwenAdapter {
	return &QwenAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *QwenAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	qwenReq := &qwen.Request{
		Messages:    make([]qwen.Content, len(req.Messages)),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		Stop:        req.StopSequences,
		JSON:        req.ResponseFormat == FormatJSON,
	}
	if req.SystemInstruction != nil {
		qwenReq.SystemInstruction = &qwen.Content{Role: "system", Parts: []qwen.Part{{Text: messageText(req.SystemInstruction)}}}
	}
	for i := range req.Messages {
		qwenReq.Messages[i] = qwen.Content{
			Role:  req.Messages[i].Role,
			Parts: []qwen.Part{{Text: messageText(&req.Messages[i])}},
		}
	}

	resp, err := a.client.GenerateContent(ctx, qwenReq)
	if err != nil {
		return nil, &ProviderError{Provider: a.Name(), Err: err}
	}

	parts := make([]Part, len(resp.Content.Parts))
	for i, p := range resp.Content.Parts {
		parts[i] = Part{Text: p.Text}
	}

	return &Response{
		Content:      Message{Role: "assistant", Parts: parts},
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *QwenAdapter) Name() string {
	return "qwen"
}

// Model returns model name
func (a *QwenAdapter) Model() string {
	return a.client.Model()
}

// DeepSeekAdapter adapts pkg/deepseek to llmprovider.Provider interface
type DeepSeekAdapter struct {
	client deepseek.IDeepSeek
}

// NewDeepSeekAdapter creates a new DeepSeek adapter
func NewDeepSeekAdapter(client deepseek.IDeepSeek) *DeepSeekAdapter {
	return &DeepSeekAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *DeepSeekAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	dsReq := &deepseek.Request{
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		Stop:        req.StopSequences,
	}
	if req.ResponseFormat == FormatJSON {
		dsReq.ResponseFormat = &deepseek.ResponseFormat{Type: "json_object"}
	}
	if req.SystemInstruction != nil {
		dsReq.Messages = append(dsReq.Messages, deepseek.Message{Role: "system", Content: messageText(req.SystemInstruction)})
	}
	for i := range req.Messages {
		dsReq.Messages = append(dsReq.Messages, deepseek.Message{Role: req.Messages[i].Role, Content: messageText(&req.Messages[i])})
	}

	resp, err := a.client.GenerateContent(ctx, dsReq)
	if err != nil {
		return nil, &ProviderError{Provider: a.Name(), Err: fmt.Errorf("deepseek: %w", err)}
	}

	var parts []Part
	if len(resp.Choices) > 0 && resp.Choices[0].Message.Content != "" {
		parts = []Part{{Text: resp.Choices[0].Message.Content}}
	}

	return &Response{
		Content:      Message{Role: "assistant", Parts: parts},
		ProviderName: a.Name(),
		ModelName:    resp.Model,
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns the provider name
func (a *DeepSeekAdapter) Name() string {
	return "deepseek"
}

// Model returns the model name
func (a *DeepSeekAdapter) Model() string {
	return a.client.Model()
}

// OllamaAdapter adapts pkg/ollama to llmprovider.Provider interface
type OllamaAdapter struct {
	client ollama.IOllama
}

// NewOllamaAdapter creates a new Ollama adapter
func NewOllamaAdapter(client ollama.IOllama) *OllamaAdapter {
	return &OllamaAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *OllamaAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	oReq := &ollama.Request{
		System:      messageText(req.SystemInstruction),
		Messages:    make([]ollama.Message, len(req.Messages)),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		Stop:        req.StopSequences,
		JSON:        req.ResponseFormat == FormatJSON,
	}
	for i := range req.Messages {
		oReq.Messages[i] = ollama.Message{Role: req.Messages[i].Role, Content: messageText(&req.Messages[i])}
	}

	resp, err := a.client.GenerateContent(ctx, oReq)
	if err != nil {
		return nil, &ProviderError{Provider: a.Name(), Err: err}
	}

	var parts []Part
	if resp.Message.Content != "" {
		parts = []Part{{Text: resp.Message.Content}}
	}

	return &Response{
		Content:      Message{Role: "assistant", Parts: parts},
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.PromptEvalCount,
			OutputTokens: resp.EvalCount,
			TotalTokens:  resp.PromptEvalCount + resp.EvalCount,
		},
	}, nil
}

// Name returns the provider name
func (a *OllamaAdapter) Name() string {
	return "ollama"
}

// Model returns the model name
func (a *OllamaAdapter) Model() string {
	return a.client.Model()
}
