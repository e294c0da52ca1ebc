package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// Pipeline
	Assistant  AssistantConfig
	Classifier LLMConfig
	LLM        LLMConfig
	WebSearch  WebSearchConfig

	// Connectors
	Gmail   GmailConfig
	Outlook OutlookConfig
	Files   FilesConfig
	Qdrant  QdrantConfig
	Voyage  VoyageConfig
	Indexer IndexerConfig

	// Delivery
	Telegram TelegramConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port           int
	Mode           string
	AllowedOrigins []string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
	File         string
}

type RateLimitConfig struct {
	Enabled           bool
	RequestsPerMinute int
	Burst             int
	MaxClients        int
}

// AssistantConfig tunes the intent-resolution pipeline.
type AssistantConfig struct {
	DefaultProvider    string
	Timezone           string
	ClassifierTimeout  time.Duration
	ChatTimeout        time.Duration
	SummaryCacheSize   int
	SummaryConcurrency int
}

type WebSearchConfig struct {
	Enabled bool
	APIKey  string
	Model   string
}

type GmailConfig struct {
	CredentialsPath string
	TokenPath       string
	User            string
}

type OutlookConfig struct {
	TenantID     string
	ClientID     string
	ClientSecret string
	Mailbox      string
	BaseURL      string
}

type FilesConfig struct {
	Roots         []string
	MaxDepth      int
	SearchTimeout time.Duration
	ReadLimit     int
}

type QdrantConfig struct {
	URL            string
	CollectionName string
	VectorSize     int
}

type VoyageConfig struct {
	APIKey string
	Model  string
}

type IndexerConfig struct {
	Folders      []string
	Extensions   []string
	ChunkSize    int
	ChunkOverlap int
	BatchSize    int
	StatusFile   string
}

type TelegramConfig struct {
	BotToken   string
	WebhookURL string
	NgrokAPI   string
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	RetryAttempts   int              `yaml:"retry_attempts"`
	RetryDelay      string           `yaml:"retry_delay"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"`
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
	Timeout  string `yaml:"timeout"`
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/jasper/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/jasper/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.AllowedOrigins = stringList("http_server.allowed_origins")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.Logger.File = viper.GetString("logger.file")

	cfg.RateLimit.Enabled = viper.GetBool("rate_limit.enabled")
	cfg.RateLimit.RequestsPerMinute = viper.GetInt("rate_limit.requests_per_minute")
	cfg.RateLimit.Burst = viper.GetInt("rate_limit.burst")
	cfg.RateLimit.MaxClients = viper.GetInt("rate_limit.max_clients")

	// Pipeline
	cfg.Assistant.DefaultProvider = strings.ToUpper(setting("assistant.default_provider"))
	if provider := setting("provider"); provider != "" {
		cfg.Assistant.DefaultProvider = strings.ToUpper(provider)
	}
	cfg.Assistant.Timezone = viper.GetString("assistant.timezone")
	cfg.Assistant.ClassifierTimeout = viper.GetDuration("assistant.classifier_timeout")
	cfg.Assistant.ChatTimeout = viper.GetDuration("assistant.chat_timeout")
	cfg.Assistant.SummaryCacheSize = viper.GetInt("assistant.summary_cache_size")
	cfg.Assistant.SummaryConcurrency = viper.GetInt("assistant.summary_concurrency")

	cfg.LLM = loadLLMConfig("llm")
	if len(cfg.LLM.Providers) == 0 {
		return nil, fmt.Errorf("no LLM providers configured - please add llm.providers section to config.yaml")
	}
	if err := validateLLMConfig(&cfg.LLM); err != nil {
		return nil, fmt.Errorf("llm: %w", err)
	}

	// The classifier shares the chat providers unless it has its own.
	cfg.Classifier = loadLLMConfig("classifier")
	if len(cfg.Classifier.Providers) == 0 {
		cfg.Classifier.Providers = cfg.LLM.Providers
	} else if err := validateLLMConfig(&cfg.Classifier); err != nil {
		return nil, fmt.Errorf("classifier: %w", err)
	}

	cfg.WebSearch.Enabled = viper.GetBool("web_search.enabled")
	cfg.WebSearch.APIKey = setting("web_search.api_key")
	if key := setting("gemini_api_key"); cfg.WebSearch.APIKey == "" && key != "" {
		cfg.WebSearch.APIKey = key
	}
	cfg.WebSearch.Model = viper.GetString("web_search.model")

	// Connectors
	cfg.Gmail.CredentialsPath = setting("gmail.credentials_path")
	cfg.Gmail.TokenPath = setting("gmail.token_path")
	cfg.Gmail.User = viper.GetString("gmail.user")

	cfg.Outlook.TenantID = setting("outlook.tenant_id")
	cfg.Outlook.ClientID = setting("outlook.client_id")
	cfg.Outlook.ClientSecret = setting("outlook.client_secret")
	cfg.Outlook.Mailbox = setting("outlook.mailbox")
	cfg.Outlook.BaseURL = viper.GetString("outlook.base_url")

	cfg.Files.Roots = stringList("files.roots")
	if len(cfg.Files.Roots) == 0 {
		if home, err := os.UserHomeDir(); err == nil {
			cfg.Files.Roots = []string{home}
		}
	}
	cfg.Files.MaxDepth = viper.GetInt("files.max_depth")
	cfg.Files.SearchTimeout = viper.GetDuration("files.search_timeout")
	cfg.Files.ReadLimit = viper.GetInt("files.read_limit")

	cfg.Qdrant.URL = viper.GetString("qdrant.url")
	cfg.Qdrant.CollectionName = viper.GetString("qdrant.collection_name")
	cfg.Qdrant.VectorSize = viper.GetInt("qdrant.vector_size")
	if qdrantURL := viper.GetString("qdrant_url"); qdrantURL != "" {
		cfg.Qdrant.URL = qdrantURL
	}

	cfg.Voyage.APIKey = setting("voyage.api_key")
	if voyageKey := setting("voyage_api_key"); voyageKey != "" {
		cfg.Voyage.APIKey = voyageKey
	}
	cfg.Voyage.Model = viper.GetString("voyage.model")

	cfg.Indexer.Folders = stringList("indexer.folders")
	cfg.Indexer.Extensions = stringList("indexer.extensions")
	cfg.Indexer.ChunkSize = viper.GetInt("indexer.chunk_size")
	cfg.Indexer.ChunkOverlap = viper.GetInt("indexer.chunk_overlap")
	cfg.Indexer.BatchSize = viper.GetInt("indexer.batch_size")
	cfg.Indexer.StatusFile = viper.GetString("indexer.status_file")

	// Delivery
	cfg.Telegram.BotToken = setting("telegram.bot_token")
	cfg.Telegram.WebhookURL = viper.GetString("telegram.webhook_url")
	cfg.Telegram.NgrokAPI = viper.GetString("telegram.ngrok_api")
	if tgToken := setting("telegram_bot_token"); tgToken != "" {
		cfg.Telegram.BotToken = tgToken
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "development")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("logger.file", "debug.log")

	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.requests_per_minute", 60)
	viper.SetDefault("rate_limit.burst", 10)
	viper.SetDefault("rate_limit.max_clients", 1024)

	viper.SetDefault("assistant.default_provider", "GMAIL")
	viper.SetDefault("assistant.timezone", "Local")
	viper.SetDefault("assistant.classifier_timeout", "20s")
	viper.SetDefault("assistant.chat_timeout", "20s")
	viper.SetDefault("assistant.summary_cache_size", 512)
	viper.SetDefault("assistant.summary_concurrency", 4)

	viper.SetDefault("web_search.model", "gemini-2.5-flash")

	viper.SetDefault("gmail.credentials_path", "credentials.json")
	viper.SetDefault("gmail.token_path", "token.json")
	viper.SetDefault("gmail.user", "me")

	viper.SetDefault("outlook.base_url", "https://graph.microsoft.com/v1.0")

	viper.SetDefault("files.max_depth", 2)
	viper.SetDefault("files.search_timeout", "5s")
	viper.SetDefault("files.read_limit", 8000)

	viper.SetDefault("qdrant.url", "http://localhost:6333")
	viper.SetDefault("qdrant.collection_name", "documents")
	viper.SetDefault("qdrant.vector_size", 1024)
	viper.SetDefault("voyage.model", "voyage-3")

	viper.SetDefault("indexer.extensions", []string{".txt", ".md", ".html", ".htm", ".csv", ".json", ".log"})
	viper.SetDefault("indexer.chunk_size", 1000)
	viper.SetDefault("indexer.chunk_overlap", 100)
	viper.SetDefault("indexer.batch_size", 32)
	viper.SetDefault("indexer.status_file", "index_status.json")

	viper.SetDefault("telegram.ngrok_api", "http://ngrok:4040")

	for _, section := range []string{"llm", "classifier"} {
		viper.SetDefault(section+".fallback_enabled", true)
		// Failed calls are not retried; fallback moves on to the next provider.
		viper.SetDefault(section+".retry_attempts", 1)
		viper.SetDefault(section+".retry_delay", "1s")
		viper.SetDefault(section+".max_total_timeout", "60s")
	}
}

// loadLLMConfig reads a provider list section such as "llm" or "classifier".
func loadLLMConfig(section string) LLMConfig {
	cfg := LLMConfig{
		FallbackEnabled: viper.GetBool(section + ".fallback_enabled"),
		RetryAttempts:   viper.GetInt(section + ".retry_attempts"),
		RetryDelay:      viper.GetString(section + ".retry_delay"),
		MaxTotalTimeout: viper.GetString(section + ".max_total_timeout"),
	}

	providersList, ok := viper.Get(section + ".providers").([]interface{})
	if !ok {
		return cfg
	}
	for _, p := range providersList {
		providerMap, ok := p.(map[string]interface{})
		if !ok {
			continue
		}
		cfg.Providers = append(cfg.Providers, ProviderConfig{
			Name:     getStringFromMap(providerMap, "name"),
			Enabled:  getBoolFromMap(providerMap, "enabled"),
			Priority: getIntFromMap(providerMap, "priority"),
			APIKey:   placeholder(expandEnvVar(getStringFromMap(providerMap, "api_key"))),
			BaseURL:  getStringFromMap(providerMap, "base_url"),
			Model:    getStringFromMap(providerMap, "model"),
			Timeout:  getStringFromMap(providerMap, "timeout"),
		})
	}
	return cfg
}

// setting reads a string and drops unfilled "your-..." template values.
func setting(key string) string {
	return placeholder(viper.GetString(key))
}

func placeholder(value string) string {
	if strings.HasPrefix(strings.ToLower(strings.TrimSpace(value)), "your-") {
		return ""
	}
	return value
}

// stringList accepts both YAML lists and comma separated env values.
func stringList(key string) []string {
	var out []string
	for _, item := range viper.GetStringSlice(key) {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
	}

	return value
}

// validateLLMConfig validates the LLM configuration
func validateLLMConfig(cfg *LLMConfig) error {
	if len(cfg.Providers) == 0 {
		return fmt.Errorf("no LLM providers configured")
	}

	enabledCount := 0
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if provider.Model == "" {
			return fmt.Errorf("provider %s: model is required", provider.Name)
		}
		if !provider.Enabled {
			continue
		}

		enabledCount++
		if provider.Priority <= 0 {
			return fmt.Errorf("provider %s: priority must be positive", provider.Name)
		}
		if priorityMap[provider.Priority] {
			return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
		}
		priorityMap[provider.Priority] = true
	}

	if enabledCount == 0 {
		return fmt.Errorf("no enabled LLM providers")
	}
	return nil
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		// Handle float64 from JSON unmarshaling
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}
