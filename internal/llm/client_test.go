package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateProvider(t *testing.T) {
	tests := []struct {
		input   string
		want    Provider
		wantErr bool
	}{
		{"openai", ProviderOpenAI, false},
		{"anthropic", ProviderAnthropic, false},
		{"ollama", ProviderOllama, false},
		{"gemini", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ValidateProvider(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConfigAvailable(t *testing.T) {
	assert.False(t, Config{Provider: ProviderOpenAI}.Available())
	assert.True(t, Config{Provider: ProviderOpenAI, APIKey: "sk-test"}.Available())
	assert.False(t, Config{Provider: ProviderAnthropic}.Available())
	assert.True(t, Config{Provider: ProviderOllama}.Available())
	assert.False(t, Config{Provider: "gemini", APIKey: "x"}.Available())
}
