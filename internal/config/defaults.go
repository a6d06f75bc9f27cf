package config

const (
	defaultProjectDir = "gibberlink-tx"
	defaultProtocol   = "audible:fast"
	defaultVolume     = 75
	defaultOutput     = "gibberlink.wav"
	defaultHistoryDB  = "~/.local/share/gibberlink/history.db"
	defaultLogFormat  = "console"
	defaultLogLevel   = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Codec: Codec{
			ProjectDir: defaultProjectDir,
		},
		Transport: Transport{
			Protocol: defaultProtocol,
			Volume:   defaultVolume,
			Play:     true,
			Output:   defaultOutput,
		},
		History: History{
			Enabled: true,
			Path:    defaultHistoryDB,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
