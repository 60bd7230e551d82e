package config

// AgentMode selects how the external agent service is reached.
type AgentMode string

const (
	// ModeGateway calls the deployed multi-agent service over HTTP.
	ModeGateway AgentMode = "gateway"
	// ModeOpenAI emulates the production manager with one OpenAI call.
	ModeOpenAI AgentMode = "openai"
)

// Config is the top-level historyquest configuration, corresponding to
// .historyquest.yml.
type Config struct {
	AgentMode    AgentMode    `yaml:"agent_mode" koanf:"agent_mode"`
	AgentBaseURL string       `yaml:"agent_base_url" koanf:"agent_base_url"`
	Model        string       `yaml:"model" koanf:"model"`
	DataDir      string       `yaml:"data_dir" koanf:"data_dir"`
	Samples      bool         `yaml:"samples" koanf:"samples"`
	Server       ServerConfig `yaml:"server" koanf:"server"`
}

// ServerConfig holds settings for the REST/websocket server.
type ServerConfig struct {
	Port     int  `yaml:"port" koanf:"port"`
	AllowAll bool `yaml:"allow_all" koanf:"allow_all"` // allow all CORS origins (dev mode)
}
