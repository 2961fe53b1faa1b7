package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProviderFactory_GroqPrefix(t *testing.T) {
	factory := NewProviderFactory("test-groq-key", "")

	provider, model, err := factory.GetProvider(context.Background(), "groq/llama-3.1-8b-instant")
	require.NoError(t, err)
	require.NotNil(t, provider)
	assert.Equal(t, "groq", provider.Name())
	assert.Equal(t, "llama-3.1-8b-instant", model)
}

func TestProviderFactory_BareModelDefaultsToGroq(t *testing.T) {
	factory := NewProviderFactory("test-groq-key", "")

	provider, model, err := factory.GetProvider(context.Background(), "llama-3.1-8b-instant")
	require.NoError(t, err)
	assert.Equal(t, "groq", provider.Name())
	assert.Equal(t, "llama-3.1-8b-instant", model)
}

func TestProviderFactory_MissingGroqKey(t *testing.T) {
	factory := NewProviderFactory("", "gemini-key")

	provider, _, err := factory.GetProvider(context.Background(), "groq/llama-3.1-8b-instant")
	require.Error(t, err)
	assert.Nil(t, provider)
	assert.Contains(t, err.Error(), "groq API key not configured")
}

func TestProviderFactory_MissingGeminiKey(t *testing.T) {
	factory := NewProviderFactory("groq-key", "")

	provider, _, err := factory.GetProvider(context.Background(), "gemini-2.5-flash")
	require.Error(t, err)
	assert.Nil(t, provider)
	assert.Contains(t, err.Error(), "gemini API key not configured")
}

func TestNewGroqProvider(t *testing.T) {
	provider := NewGroqProvider("test-api-key")
	require.NotNil(t, provider)
	assert.Equal(t, "groq", provider.Name())
	assert.NotNil(t, provider.client)
}
