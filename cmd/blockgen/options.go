package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mitchellh/go-homedir"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/deepnoodle-ai/blockgen"
)

const envPrefix = "BLOCKGEN"

// initConfig binds the command's flags to viper, layered over BLOCKGEN_*
// environment variables and the optional config file.
func initConfig(cmd *cobra.Command, args []string) error {
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	explicit := viper.GetString("config")
	if explicit != "" {
		viper.SetConfigFile(explicit)
	} else if home, err := homedir.Dir(); err == nil {
		viper.AddConfigPath(home)
		viper.SetConfigName(".blockgen")
		viper.SetConfigType("yaml")
	}
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("reading config: %w", err)
		}
	}

	color.NoColor = !colorEnabled()
	return nil
}

func colorEnabled() bool {
	return !viper.GetBool("no-color") && isTerminal(os.Stdout)
}

func newLogger(w io.Writer) zerolog.Logger {
	level := zerolog.WarnLevel
	if viper.GetBool("verbose") {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: color.NoColor}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// getOptions returns the generation options for the current command. The
// input name is reported in errors.
func getOptions(cmd *cobra.Command, name string) []blockgen.Option {
	opts := []blockgen.Option{
		blockgen.WithLogger(newLogger(cmd.ErrOrStderr())),
		blockgen.WithWorkers(viper.GetInt("workers")),
	}
	if expr := viper.GetString("select"); expr != "" {
		opts = append(opts, blockgen.WithSelect(expr))
	}
	if indent := viper.GetString("indent"); indent != "" {
		opts = append(opts, blockgen.WithIndent(indent))
	}
	if name != "" && name != "-" {
		opts = append(opts, blockgen.WithFilename(name))
	}
	return opts
}

// getInput determines which document is read. There are two possibilities:
// 1. --stdin (read the document from stdin)
// 2. path as args[0]
// The returned name is "-" for stdin.
func getInput(cmd *cobra.Command, args []string) (string, []byte, error) {
	stdinFlagSet := viper.GetBool("stdin")
	pathSupplied := len(args) > 0
	switch {
	case pathSupplied && stdinFlagSet:
		return "", nil, errors.New("multiple input sources specified")
	case stdinFlagSet:
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", nil, err
		}
		return "-", data, nil
	case pathSupplied:
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", nil, err
		}
		return args[0], data, nil
	}
	return "", nil, errors.New("no input: pass a file or --stdin")
}
