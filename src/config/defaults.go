package config

import "time"

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Agent: AgentConfig{
			Name:        "a11y-lint",
			Version:     "1.0.0",
			Description: "HTML accessibility linter",
		},
		GenAI: GenAIConfig{
			URL:     "https://api.openai.com/v1/chat/completions",
			Model:   "gpt-4o-mini",
			APIKey:  "",
			Timeout: 30 * time.Second,
			Retry: RetryConfig{
				MaxAttempts:   3,
				BackoffFactor: 1.5,
				InitialDelay:  100 * time.Millisecond,
				MaxDelay:      5 * time.Second,
				RetryOnStatus: []int{429, 502, 503, 504},
			},
		},
		Concurrency: ConcurrencyConfig{
			MaxParallelFiles: 4,
		},
		Output: OutputConfig{
			Formats:   []string{"text"},
			OutputDir: ".",
			Color:     true,
		},
		Logging: LoggingConfig{
			Level:            "info",
			IncludeTimestamp: true,
		},
	}
}
