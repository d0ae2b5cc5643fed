package content

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockLLMClient implements llm.Client for testing
type MockLLMClient struct {
	GenerateJSONFunc func(ctx context.Context, prompt string) (string, error)
	Calls            int
	Prompts          []string
}

func (m *MockLLMClient) GenerateJSON(ctx context.Context, prompt string) (string, error) {
	m.Calls++
	m.Prompts = append(m.Prompts, prompt)
	if m.GenerateJSONFunc != nil {
		return m.GenerateJSONFunc(ctx, prompt)
	}
	return "", nil
}

func (m *MockLLMClient) GetModel() string {
	return "mock-model"
}

func (m *MockLLMClient) Close() error {
	return nil
}

func testParams() Params {
	return Params{
		JobTitle:  "Backend Engineer",
		Industry:  "fintech",
		Seniority: "Mid-level",
		Name:      "Jane Doe",
	}
}

func TestBuildPrompt_EmbedsParamsAndSchema(t *testing.T) {
	prompt := BuildPrompt(testParams())

	assert.Contains(t, prompt, `"Backend Engineer"`)
	assert.Contains(t, prompt, "fintech")
	assert.Contains(t, prompt, `"Mid-level"`)
	assert.Contains(t, prompt, `"Jane Doe"`)
	assert.Contains(t, prompt, SchemaJSON())
	assert.Contains(t, prompt, "3 bullets each")
	assert.NotContains(t, prompt, "{{.", "all placeholders should be substituted")
}

func TestGenerate_Success(t *testing.T) {
	mock := &MockLLMClient{
		GenerateJSONFunc: func(_ context.Context, _ string) (string, error) {
			return marshalDocument(t, validDocument()), nil
		},
	}

	payload, err := NewGenerator(mock).Generate(context.Background(), testParams())

	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", payload.Name)
	assert.Equal(t, 1, mock.Calls, "success on first attempt should not retry")
}

func TestGenerate_FenceWrappedResponse(t *testing.T) {
	mock := &MockLLMClient{
		GenerateJSONFunc: func(_ context.Context, _ string) (string, error) {
			return "```json\n" + marshalDocument(t, validDocument()) + "\n```", nil
		},
	}

	payload, err := NewGenerator(mock).Generate(context.Background(), testParams())

	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", payload.Name)
}

func TestGenerate_RetriesOnceWithStricterPrompt(t *testing.T) {
	mock := &MockLLMClient{}
	mock.GenerateJSONFunc = func(_ context.Context, _ string) (string, error) {
		if mock.Calls == 1 {
			return "Sure! Here is your resume in prose form.", nil
		}
		return marshalDocument(t, validDocument()), nil
	}

	payload, err := NewGenerator(mock).Generate(context.Background(), testParams())

	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", payload.Name)
	require.Equal(t, 2, mock.Calls)

	assert.NotContains(t, mock.Prompts[0], "OUTPUT ONLY RAW JSON")
	assert.Contains(t, mock.Prompts[1], "OUTPUT ONLY RAW JSON",
		"retry prompt should demand raw JSON")
}

func TestGenerate_ExactlyTwoAttemptsThenFail(t *testing.T) {
	mock := &MockLLMClient{
		GenerateJSONFunc: func(_ context.Context, _ string) (string, error) {
			return "not json at all", nil
		},
	}

	payload, err := NewGenerator(mock).Generate(context.Background(), testParams())

	assert.Nil(t, payload)
	assert.Equal(t, 2, mock.Calls, "retry budget is exactly 2 attempts")

	var exhausted *ExhaustedError
	require.ErrorAs(t, err, &exhausted)
	assert.Equal(t, 2, exhausted.Attempts)
	assert.Contains(t, exhausted.RawSnippet, "not json at all")

	var perr *ParseError
	assert.ErrorAs(t, err, &perr, "exhausted error should wrap the parse failure")
}

func TestGenerate_ValidationFailureConsumesRetry(t *testing.T) {
	doc := validDocument()
	doc["work_experience"] = []any{"only", "two"}

	mock := &MockLLMClient{
		GenerateJSONFunc: func(_ context.Context, _ string) (string, error) {
			return marshalDocument(t, doc), nil
		},
	}

	payload, err := NewGenerator(mock).Generate(context.Background(), testParams())

	assert.Nil(t, payload)
	assert.Equal(t, 2, mock.Calls)
	assert.Contains(t, err.Error(), "work_experience")
}

func TestGenerate_RawSnippetIsTruncated(t *testing.T) {
	mock := &MockLLMClient{
		GenerateJSONFunc: func(_ context.Context, _ string) (string, error) {
			return strings.Repeat("x", 1000), nil
		},
	}

	_, err := NewGenerator(mock).Generate(context.Background(), testParams())

	var exhausted *ExhaustedError
	require.ErrorAs(t, err, &exhausted)
	assert.Len(t, exhausted.RawSnippet, 200)
}

func TestGenerate_ConnectivityErrorAbortsImmediately(t *testing.T) {
	mock := &MockLLMClient{
		GenerateJSONFunc: func(_ context.Context, _ string) (string, error) {
			return "", errors.New("dial tcp: lookup generativelanguage.googleapis.com: no such host")
		},
	}

	payload, err := NewGenerator(mock).Generate(context.Background(), testParams())

	assert.Nil(t, payload)
	assert.Equal(t, 1, mock.Calls, "connectivity failures are not retried here")

	var cerr *ConnectivityError
	require.ErrorAs(t, err, &cerr)
	assert.Contains(t, err.Error(), "check your internet connection")
}

func TestGenerate_ServiceErrorAbortsImmediately(t *testing.T) {
	mock := &MockLLMClient{
		GenerateJSONFunc: func(_ context.Context, _ string) (string, error) {
			return "", errors.New("quota exceeded for project")
		},
	}

	payload, err := NewGenerator(mock).Generate(context.Background(), testParams())

	assert.Nil(t, payload)
	assert.Equal(t, 1, mock.Calls)

	var serr *ServiceError
	require.ErrorAs(t, err, &serr)
	assert.Contains(t, err.Error(), "API error")
}

func TestClassifyCallError(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		connectivity bool
	}{
		{"connection refused", errors.New("connection refused"), true},
		{"network unreachable", errors.New("network is unreachable"), true},
		{"dial failure", errors.New("dial tcp 10.0.0.1:443: i/o timeout"), true},
		{"quota", errors.New("quota exceeded"), false},
		{"bad request", errors.New("invalid argument"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			classified := classifyCallError(tt.err)

			var cerr *ConnectivityError
			if tt.connectivity {
				assert.ErrorAs(t, classified, &cerr)
			} else {
				var serr *ServiceError
				assert.ErrorAs(t, classified, &serr)
			}
		})
	}
}
