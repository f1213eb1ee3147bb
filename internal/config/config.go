// Package config turns command line arguments, environment variables and an
// optional config file into validated run settings.
package config

import (
	stderrors "errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"roundtrip/internal/charset"
	"roundtrip/internal/errors"
	"roundtrip/internal/report"
)

// EnvPrefix prefixes environment variables that override flags.
const EnvPrefix = "ROUNDTRIP"

// Setting keys shared by flags, environment variables and the config file.
const (
	KeyOutput    = "output"
	KeyVerbose   = "verbose"
	KeyLogFormat = "log-format"
	KeyTempDir   = "temp-dir"
	KeyHostInfo  = "host-info"
)

// Log formats accepted by KeyLogFormat.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
	LogFormatAuto = "auto"
)

// DefaultRepeat is the iteration count used when the argument is omitted.
const DefaultRepeat = 50

// Settings holds everything a run needs.
type Settings struct {
	Encoding  string
	Repeat    int
	Output    report.Format
	LogFormat string
	Verbose   bool
	TempDir   string
	HostInfo  bool
}

// DefaultConfigPath returns the config file location under home.
func DefaultConfigPath(home string) string {
	return filepath.Join(home, ".config", "roundtrip", "config.yaml")
}

// NewViper returns a viper instance that reads ROUNDTRIP_* variables and,
// when present, a YAML config file. cfgFile wins over the default location;
// an explicitly named file that cannot be read is an error, a missing default
// file is not.
func NewViper(cfgFile, home string) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyOutput, string(report.FormatText))
	v.SetDefault(KeyLogFormat, LogFormatAuto)
	v.SetDefault(KeyVerbose, false)
	v.SetDefault(KeyTempDir, "")
	v.SetDefault(KeyHostInfo, false)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		if home == "" {
			return v, nil
		}
		v.AddConfigPath(filepath.Dir(DefaultConfigPath(home)))
		v.SetConfigType("yaml")
		v.SetConfigName("config")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && stderrors.As(err, &notFound) {
			return v, nil
		}
		return nil, errors.NewConfigurationError("config", cfgFile, "failed to read config file", err)
	}

	return v, nil
}

// ParseArgs reads the optional positional arguments: encoding name and
// repeat count.
func ParseArgs(args []string) (string, int, error) {
	encoding := charset.DefaultName
	repeat := DefaultRepeat

	if len(args) > 0 {
		encoding = args[0]
	}

	if len(args) > 1 {
		n, err := strconv.Atoi(strings.TrimSpace(args[1]))
		if err != nil {
			return "", 0, errors.NewConfigurationError("repeat", args[1], "repeat count must be an integer", err)
		}
		if n < 0 {
			return "", 0, errors.NewValidationError("repeat", args[1], "non_negative", "repeat count must not be negative")
		}
		repeat = n
	}

	return encoding, repeat, nil
}

// Load combines positional args with the values held by v.
func Load(v *viper.Viper, args []string) (*Settings, error) {
	encoding, repeat, err := ParseArgs(args)
	if err != nil {
		return nil, err
	}

	output, err := report.ParseFormat(v.GetString(KeyOutput))
	if err != nil {
		return nil, err
	}

	logFormat := strings.ToLower(v.GetString(KeyLogFormat))
	switch logFormat {
	case LogFormatText, LogFormatJSON, LogFormatAuto:
	case "":
		logFormat = LogFormatAuto
	default:
		return nil, errors.NewValidationError(
			KeyLogFormat,
			logFormat,
			"supported_values",
			fmt.Sprintf("log format must be one of: %s, %s, %s", LogFormatText, LogFormatJSON, LogFormatAuto),
		)
	}

	return &Settings{
		Encoding:  encoding,
		Repeat:    repeat,
		Output:    output,
		LogFormat: logFormat,
		Verbose:   v.GetBool(KeyVerbose),
		TempDir:   v.GetString(KeyTempDir),
		HostInfo:  v.GetBool(KeyHostInfo),
	}, nil
}
