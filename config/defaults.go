package config

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Demo: DefaultDemoConfig(),
		Log:  DefaultLogConfig(),
	}
}

// DefaultDemoConfig returns the built-in walkthrough sentences and output
// toggles. The samples cover plain punctuation, contractions, quoting,
// repeated punctuation, parentheses, and whitespace collapsing.
func DefaultDemoConfig() DemoConfig {
	return DemoConfig{
		Samples: []string{
			"Hello, world! How are you?",
			`Mr. Smith said, "Don't worry!"`,
			"Really? Yes! Absolutely!!!",
			"Tokenization is the process of breaking text into tokens.",
			"This project is awesome, isn't it? (Not really)",
			"This  has   multiple    spaces.",
		},
		ShowBreakdown: true,
		ShowStats:     true,
	}
}

// DefaultLogConfig returns the default logging configuration.
func DefaultLogConfig() LogConfig {
	return LogConfig{
		Level:  "info",
		Format: "console",
	}
}
