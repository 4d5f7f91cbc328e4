package config

type Config struct {
	Api       ApiConfig       `yaml:"api"`
	Auth      AuthConfig      `yaml:"auth"`
	Providers ProvidersConfig `yaml:"providers"`
}

type ApiConfig struct {
	Port           string `yaml:"port"`
	AllowedOrigins string `yaml:"allowedOrigins"`
	// BodyLimitBytes caps inbound request bodies at the transport layer,
	// before any handler runs.
	BodyLimitBytes int             `yaml:"bodyLimitBytes"`
	RateLimit      RateLimitConfig `yaml:"rateLimit"`
}

type RateLimitConfig struct {
	Max           int `yaml:"max"`
	WindowSeconds int `yaml:"windowSeconds"`
}

type AuthConfig struct {
	// Secret is the HS256 signing secret tokens are verified against.
	Secret string `yaml:"secret"`
	Issuer string `yaml:"issuer"`
}

type ProvidersConfig struct {
	Stability    StabilityConfig    `yaml:"stability"`
	HuggingFace  HuggingFaceConfig  `yaml:"huggingface"`
	Pollinations PollinationsConfig `yaml:"pollinations"`
}

// An empty ApiKey never fails startup; the adapter that needs it rejects
// requests selecting that provider instead.
type StabilityConfig struct {
	ApiKey  string `yaml:"apiKey"`
	BaseUrl string `yaml:"baseUrl"`
	Engine  string `yaml:"engine"`
}

type HuggingFaceConfig struct {
	ApiKey  string `yaml:"apiKey"`
	BaseUrl string `yaml:"baseUrl"`
	Model   string `yaml:"model"`
}

type PollinationsConfig struct {
	ApiKey  string `yaml:"apiKey"`
	BaseUrl string `yaml:"baseUrl"`
}
