package copywriter

import (
	"context"

	"google.golang.org/genai"
)

type geminiModel struct {
	client *genai.Client
	model  string
}

func newGeminiModel(ctx context.Context, cfg Config) (*geminiModel, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	return &geminiModel{client: client, model: cfg.Model}, nil
}

func (m *geminiModel) Generate(ctx context.Context, prompt string, listOutput bool) (string, error) {
	cfg := &genai.GenerateContentConfig{Temperature: genai.Ptr[float32](0.7)}
	if listOutput {
		cfg = &genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema: &genai.Schema{
				Type:  genai.TypeArray,
				Items: &genai.Schema{Type: genai.TypeString},
			},
		}
	}
	resp, err := m.client.Models.GenerateContent(ctx, m.model, genai.Text(prompt), cfg)
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}
