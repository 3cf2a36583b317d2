package generator

import (
	"bytes"
	"context"
	"io"
	"time"

	"github.com/shouni/watercolor-kit/pkg/domain"

	"github.com/shouni/go-gemini-client/pkg/gemini"
	"github.com/shouni/go-http-kit/pkg/httpkit"
	"google.golang.org/genai"
)

// --- Mocks ---

type mockAIClient struct {
	calls        int
	lastModel    string
	lastParts    []*genai.Part
	lastOpts     gemini.GenerateOptions
	generateFunc func(ctx context.Context, model string, parts []*genai.Part, opts gemini.GenerateOptions) (*gemini.Response, error)
}

func (m *mockAIClient) GenerateWithParts(ctx context.Context, model string, parts []*genai.Part, opts gemini.GenerateOptions) (*gemini.Response, error) {
	m.calls++
	m.lastModel = model
	m.lastParts = parts
	m.lastOpts = opts
	if m.generateFunc != nil {
		return m.generateFunc(ctx, model, parts, opts)
	}
	return imageResponse("image/png", []byte("fake-image")), nil
}

// imageResponse はインライン画像1枚を含む応答を組み立てるヘルパーです。
func imageResponse(mimeType string, data []byte) *gemini.Response {
	return &gemini.Response{
		RawResponse: &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{{
				Content: &genai.Content{
					Parts: []*genai.Part{{InlineData: &genai.Blob{MIMEType: mimeType, Data: data}}},
				},
			}},
		},
	}
}

type mockImageCore struct {
	generateCalls int
	lastModel     string
	lastParts     []*genai.Part
	lastOpts      gemini.GenerateOptions
	generateFunc  func(ctx context.Context, model string, parts []*genai.Part, opts gemini.GenerateOptions) (*ImageOutput, error)
	prepareFunc   func(ctx context.Context, req domain.RetouchRequest) (*genai.Part, error)
}

func (m *mockImageCore) generate(ctx context.Context, model string, parts []*genai.Part, opts gemini.GenerateOptions) (*ImageOutput, error) {
	m.generateCalls++
	m.lastModel = model
	m.lastParts = parts
	m.lastOpts = opts
	if m.generateFunc != nil {
		return m.generateFunc(ctx, model, parts, opts)
	}
	return &ImageOutput{Data: []byte("fake-image"), MimeType: "image/png"}, nil
}

func (m *mockImageCore) prepareReferencePart(ctx context.Context, req domain.RetouchRequest) (*genai.Part, error) {
	if m.prepareFunc != nil {
		return m.prepareFunc(ctx, req)
	}
	return &genai.Part{InlineData: &genai.Blob{MIMEType: req.Base.MimeType, Data: req.Base.Data}}, nil
}

type mockReader struct {
	data []byte
	err  error
}

func (m *mockReader) Open(ctx context.Context, uri string) (io.ReadCloser, error) {
	if m.err != nil {
		return nil, m.err
	}
	return io.NopCloser(bytes.NewReader(m.data)), nil
}

func (m *mockReader) List(ctx context.Context, uri string, fn func(string) error) error {
	return nil
}

type mockHTTPClient struct {
	httpkit.ClientInterface
	calls int
	data  []byte
	err   error
}

func (m *mockHTTPClient) FetchBytes(ctx context.Context, url string) ([]byte, error) {
	m.calls++
	return m.data, m.err
}

type mockCache struct {
	data map[string]any
}

func (m *mockCache) Get(key string) (any, bool) {
	val, ok := m.data[key]
	return val, ok
}

func (m *mockCache) Set(key string, value any, d time.Duration) {
	m.data[key] = value
}
