package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/gnames/gn"
	"github.com/pepsar/helmalign/internal/iofs"
	"github.com/pepsar/helmalign/internal/iologger"
	"github.com/pepsar/helmalign/pkg/config"
	"github.com/pepsar/helmalign/pkg/helmalign"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	homeDir string
	opts    []config.Option
	cfg     *config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Version: fmt.Sprintf("version: %s\nbuild:   %s",
		helmalign.Version, helmalign.Build),
	Use:   "helmalign",
	Short: "Aligns HELM-notated biopolymers with non-natural monomers",
	Long: `helmalign aligns biopolymer sequences written in HELM notation,
including sequences with non-natural monomers, by encoding each monomer
into a single byte, synthesizing a substitution matrix for the encoded
alphabet, and delegating the multiple sequence alignment to MAFFT in
text mode.

Each chain of the input (PEPTIDE1, PEPTIDE2, ...) is aligned
separately. The output reports the aligned sequences, the per-position
monomers and a normalized sum-of-pairs score per chain.

Configuration precedence (highest to lowest):
  1. CLI flags
  2. Environment variables (HELMALIGN_*)
  3. Config file (~/.config/helmalign/config.yaml)
  4. Built-in defaults`,
	PersistentPreRunE: bootstrap,
	SilenceErrors:     true,
	SilenceUsage:      true,
}

func bootstrap(cmd *cobra.Command, args []string) error {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// Initialize logging with hardcoded defaults
	// Will be reconfigured later with user's config settings
	defaultLog := config.LogConfig{
		Format:      "json",
		Level:       "info",
		Destination: "file",
	}
	if err = iologger.Init(config.LogDir(homeDir), defaultLog); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	var cfgViper *config.Config
	if cfgViper, err = initConfig(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfg = config.New()
	opts = cfgViper.ToOptions()
	cfg.Update(opts)

	// Set HomeDir after config is loaded
	cfg.Update([]config.Option{config.OptHomeDir(homeDir)})

	// Reconfigure logging with user's settings and proper log file location
	if err = reconfigureLogging(cfg); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info("Configuration loaded",
		"config_file", config.ConfigFilePath(homeDir))

	return nil
}

// reconfigureLogging reinitializes the logger with the loaded configuration.
// Creates log file in the proper location now that we know HomeDir.
func reconfigureLogging(cfg *config.Config) error {
	logDir := config.LogDir(cfg.HomeDir)
	return iologger.Init(logDir, cfg.Log)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	// Remove the automatic "helmalign version" prefix
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Override version flag to use -V (consistent with other gn projects)
	rootCmd.Flags().BoolP("version", "V", false, "version for helmalign")

	rootCmd.AddCommand(getAlignCmd())
	rootCmd.AddCommand(getRealignCmd())
	rootCmd.AddCommand(getChainsCmd())
	rootCmd.AddCommand(getConfigCmd())
	rootCmd.AddCommand(getVersionCmd())
}

func initConfig(home string) (*config.Config, error) {
	var err error
	cfgPath := config.ConfigFilePath(home)
	v := viper.New()
	v.SetConfigFile(cfgPath)

	initEnvVars(v)

	if err = v.ReadInConfig(); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	var res config.Config
	if err = v.Unmarshal(&res); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	return &res, nil
}

func initEnvVars(v *viper.Viper) {
	// Set environment variables we want.
	// We set them manually so we can see clearly which env variables are allowed.
	// These match the fields included in config.ToOptions() - i.e., persistent
	// configuration that can be stored in config.yaml.
	v.SetEnvPrefix("HELMALIGN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// MAFFT configuration
	v.BindEnv("mafft.dir", "MAFFT_DIR")
	v.BindEnv("mafft.method", "MAFFT_METHOD")
	v.BindEnv("mafft.realign_method", "MAFFT_REALIGN_METHOD")
	v.BindEnv("mafft.gap_open", "MAFFT_GAP_OPEN")
	v.BindEnv("mafft.gap_extend", "MAFFT_GAP_EXTEND")
	v.BindEnv("mafft.options", "MAFFT_OPTIONS")

	// Reference data configuration
	v.BindEnv("data.reference_matrix", "DATA_REFERENCE_MATRIX")
	v.BindEnv("data.monomer_map", "DATA_MONOMER_MAP")

	// Scoring configuration
	v.BindEnv("scoring.gap_penalty", "SCORING_GAP_PENALTY")
	v.BindEnv("scoring.fallback_match", "SCORING_FALLBACK_MATCH")
	v.BindEnv("scoring.fallback_mismatch", "SCORING_FALLBACK_MISMATCH")

	// Log configuration
	v.BindEnv("log.level", "LOG_LEVEL")
	v.BindEnv("log.format", "LOG_FORMAT")
	v.BindEnv("log.destination", "LOG_DESTINATION")

	// General configuration
	v.BindEnv("work_dir", "WORK_DIR")

	v.AutomaticEnv()
}
