package cfg

import "time"

type Cfg struct {
	// HTTP server
	Port string

	// News search API
	NewsAPIKey      string
	NewsAPIURL      string
	NewsPageSize    int
	SearchTimeout   time.Duration
	ConcurrentFetch bool

	// RSS feeds
	FeedsDir    string
	FeedTimeout time.Duration
	AliasesFile string

	// Simplification
	LLMProvider     string
	GeminiAPIKey    string
	GeminiModel     string
	AnthropicAPIKey string
	AnthropicModel  string
	ExtractTimeout  time.Duration

	// Cache
	RedisAddr string
	CacheTTL  time.Duration

	// Application metadata
	UserAgent string
	Timezone  string
	Debug     bool
	Version   string
}
