package structures

type InputConfig struct {
	// Path is the first positional CLI argument; empty means DefaultPath.
	Path        string
	DefaultPath string `yaml:"defaultPath" validate:"required"`
}

type OutputConfig struct {
	// Path is the second positional CLI argument; empty means derived
	// from the input file name.
	Path string
	Dir  string `yaml:"dir"`
}

type LoggerConfig struct {
	Level string `yaml:"level" validate:"required|in:trace,debug,info,warn,error,fatal,panic"`
	Dir   string `yaml:"dir"`
}

type MetricsConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Textfile string `yaml:"textfile"`
}

type Config struct {
	AppName string
	Debug   bool
	Path    string
	Input   InputConfig   `yaml:"input"`
	Output  OutputConfig  `yaml:"output"`
	Logger  LoggerConfig  `yaml:"logger"`
	Metrics MetricsConfig `yaml:"metrics"`
}

type CliFlags struct {
	ConfigPath string
	DebugMode  bool
	InputPath  string
	OutputPath string
}
