package config

const (
	defaultConfigPath  = "~/.config/corpstat/config.toml"
	projectConfigName  = "corpstat.toml"
	defaultCorpusDir   = "./corpus"
	defaultOutputDir   = "./results"
	defaultEncoding    = "utf-8"
	defaultScanWorkers = 4
	defaultLogFormat   = "console"
	defaultLogLevel    = "info"

	envCorpusDir = "CORPSTAT_CORPUS_DIR"
	envOutputDir = "CORPSTAT_OUTPUT_DIR"
	envLogLevel  = "CORPSTAT_LOG_LEVEL"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			CorpusDir: defaultCorpusDir,
			OutputDir: defaultOutputDir,
		},
		Input: Input{
			Encoding: defaultEncoding,
		},
		Scan: Scan{
			Workers: defaultScanWorkers,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
