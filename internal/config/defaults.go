package config

// DefaultChunkSize is the bounded read size used by the producer and
// consumer when the configuration does not override it.
const DefaultChunkSize = 4096

// maxChunkSize caps chunk_size; anything larger buys nothing on a pipe whose
// kernel buffer is a fraction of this.
const maxChunkSize = 1 << 20

const (
	defaultDataDir   = "~/.local/share/wordpipe"
	defaultLogDir    = "~/.local/share/wordpipe/logs"
	defaultLogFormat = "console"
	defaultLogLevel  = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
			LogDir:  defaultLogDir,
		},
		Pipeline: Pipeline{
			ChunkSize: DefaultChunkSize,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		History: History{
			Enabled: true,
		},
	}
}
