package jsontestgeninternal

import (
	"errors"
	"fmt"
	"go/token"

	"github.com/spf13/viper"

	"github.com/sublee/jsontestgen/internal/jsontestgen/compose"
)

// ConfigName is the base name of the configuration file searched in the
// working directory.
const ConfigName = ".jsontestgen"

// EnvPrefix prefixes the environment variables overriding the configuration.
const EnvPrefix = "JSONTESTGEN"

// Config configures a run of jsontestgen.
type Config struct {
	// Tags is comma-separated build tags to load packages with.
	Tags string `mapstructure:"tags"`

	// Tests indicates whether to load test files. Names declared in test
	// files are avoided only if they are loaded.
	Tests bool `mapstructure:"tests"`

	// Codec is the JSON codec generated tests use.
	Codec string `mapstructure:"codec"`

	// Suffix is appended to type names to name test units.
	Suffix string `mapstructure:"suffix"`

	// Verbose enables notes.
	Verbose bool `mapstructure:"verbose"`
}

// DefaultConfig returns the configuration used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		Tests:  true,
		Codec:  compose.DefaultCodec,
		Suffix: compose.DefaultSuffix,
	}
}

// SetDefaults registers the default configuration to v.
func SetDefaults(v *viper.Viper) {
	def := DefaultConfig()
	v.SetDefault("tags", def.Tags)
	v.SetDefault("tests", def.Tests)
	v.SetDefault("codec", def.Codec)
	v.SetDefault("suffix", def.Suffix)
	v.SetDefault("verbose", def.Verbose)
}

// LoadConfig reads the configuration. The configuration file is cfgFile if it
// is not empty, or the optional .jsontestgen.yaml in wd. Environment variables
// such as JSONTESTGEN_CODEC override the file. Flags bound to v override both.
func LoadConfig(v *viper.Viper, wd, cfgFile string) (Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(ConfigName)
		v.SetConfigType("yaml")
		v.AddConfigPath(wd)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, cfg.Validate()
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if _, err := compose.LookupCodec(c.Codec); err != nil {
		return err
	}
	if c.Suffix != "" && !token.IsIdentifier("X"+c.Suffix) {
		return fmt.Errorf("suffix %q cannot be part of a Go identifier", c.Suffix)
	}
	return nil
}

// ComposeOptions returns the options to compose test units with.
func (c Config) ComposeOptions() compose.Options {
	return compose.Options{
		Codec:   c.Codec,
		Suffix:  c.Suffix,
		Version: Version,
	}
}
