package constants

const (
	Version        = `0.1.0`
	AppName        = `noted`
	ConfigFile     = `cfg`
	ConfigFileType = `yaml`
	ConfigDir      = `.noted`
	LogFile        = `noted.log`

	// DefaultAPIURL is used when neither a runtime nor a build-time endpoint is set.
	DefaultAPIURL = `http://localhost:5000`
	EnvPrefix     = `NOTED`

	// PreviewLength is the number of content characters shown under each
	// sidebar entry.
	PreviewLength = 30
)
