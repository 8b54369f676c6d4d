package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	ankiconnect "github.com/ankiconnect/ankiconnect.go"
	"github.com/ankiconnect/ankiconnect.go/pkg/connection"
	"github.com/ankiconnect/ankiconnect.go/pkg/logger/zerologger"
)

var (
	verbose  bool
	cfgFile  string
	flagHost string
	flagPort int

	log zerolog.Logger
)

// cliConfig is the optional on-disk configuration. Flags override it.
type cliConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

var rootCmd = &cobra.Command{
	Use:   "ankictl",
	Short: "Command line interface for the AnkiConnect add-on",
	Long: `ankictl talks to a running Anki instance through the AnkiConnect
add-on: list decks and note types, add notes, search cards and manage
media files from the terminal.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := zerolog.InfoLevel
		if verbose {
			level = zerolog.DebugLevel
		}
		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(level).
			With().Timestamp().Logger()
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default ~/.ankictl.yaml)")
	rootCmd.PersistentFlags().StringVar(&flagHost, "host", ankiconnect.DefaultHost, "AnkiConnect host")
	rootCmd.PersistentFlags().IntVar(&flagPort, "port", ankiconnect.DefaultPort, "AnkiConnect port")
}

// loadConfig reads the yaml config file when one exists. A missing default
// file is not an error.
func loadConfig() (cliConfig, error) {
	conf := cliConfig{Host: ankiconnect.DefaultHost, Port: ankiconnect.DefaultPort}

	path := cfgFile
	explicit := path != ""
	if !explicit {
		home, err := os.UserHomeDir()
		if err != nil {
			return conf, nil
		}
		path = filepath.Join(home, ".ankictl.yaml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if explicit {
			return conf, fmt.Errorf("read config %s: %w", path, err)
		}
		return conf, nil
	}
	if err := yaml.Unmarshal(data, &conf); err != nil {
		return conf, fmt.Errorf("parse config %s: %w", path, err)
	}
	if conf.Host == "" {
		conf.Host = ankiconnect.DefaultHost
	}
	if conf.Port == 0 {
		conf.Port = ankiconnect.DefaultPort
	}
	return conf, nil
}

// newClient builds a client from the config file and flags. Flags set on
// the command line win over file values.
func newClient(cmd *cobra.Command) *ankiconnect.Client {
	conf, err := loadConfig()
	if err != nil {
		fatal("loading config", err)
	}
	host, port := conf.Host, conf.Port
	if cmd.Flags().Changed("host") {
		host = flagHost
	}
	if cmd.Flags().Changed("port") {
		port = flagPort
	}

	cc := connection.NewConfig(host, port)
	cc.Logger = zerologger.New(log)
	return ankiconnect.FromConnection(connection.NewHTTPConnection(cc))
}
