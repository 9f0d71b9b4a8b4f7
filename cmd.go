package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Rshep3087/finview/backend"
	"github.com/Rshep3087/finview/config"
	"github.com/Rshep3087/finview/currency"
)

const (
	jsonOutputFormat  = "json"
	tableOutputFormat = "table"
)

// Global variables for configuration.
var (
	cfgFile string
	cfg     config.Config
	client  *backend.Client
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "finview",
	Short: "A terminal dashboard and CLI for your LKR finances",
	Long: `finview shows assets, liabilities, CSE holdings and the monthly budget
served by the finance backend, and can ask it to refresh stock prices and
CAL unit trust values.`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if err := viper.Unmarshal(&cfg); err != nil {
			return fmt.Errorf("failed to read configuration: %w", err)
		}

		log.SetLevel(log.InfoLevel)
		if cfg.Debug {
			log.SetLevel(log.DebugLevel)
		}

		// config init must work before there is anything to connect to
		if cmd.Annotations[skipClientAnnotation] == "true" {
			return nil
		}

		if err := cfg.Validate(); err != nil {
			return err
		}

		var err error
		client, err = newBackendClient(cfg, log.Default())
		return err
	},
	RunE: func(c *cobra.Command, _ []string) error {
		return rootAction(c.Context(), cfg, client)
	},
}

// skipClientAnnotation marks commands that run without a backend client.
const skipClientAnnotation = "finview/skip-client"

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := fang.Execute(context.Background(), rootCmd); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	defaults := config.Default()
	viper.SetDefault("api_url", defaults.APIURL)
	viper.SetDefault("timeout", defaults.Timeout)
	viper.SetDefault("rate_limit", defaults.RateLimit)
	viper.SetDefault("buckets", defaults.Buckets)

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is ./finview.toml)")
	flags.Bool("debug", false, "enable debug logging")
	flags.String("api-url", "", "base URL of the finance backend")
	flags.String("api-key", "", "API key sent in the X_API_KEY header")
	flags.Bool("show-values", false, "show money values instead of masking them")
	flags.String("timeout", "", "timeout for each backend request (default 30s)")
	flags.Int("rate-limit", 0, "maximum backend requests per second (default 10)")

	// Bind flags to viper
	_ = viper.BindPFlag("debug", flags.Lookup("debug"))
	_ = viper.BindPFlag("api_url", flags.Lookup("api-url"))
	_ = viper.BindPFlag("api_key", flags.Lookup("api-key"))
	_ = viper.BindPFlag("show_values", flags.Lookup("show-values"))
	_ = viper.BindPFlag("timeout", flags.Lookup("timeout"))
	_ = viper.BindPFlag("rate_limit", flags.Lookup("rate-limit"))

	// Bind environment variables; the VITE_ names are shared with the web client
	_ = viper.BindEnv("api_url", "FINVIEW_API_URL", "VITE_API_URL")
	_ = viper.BindEnv("api_key", "FINVIEW_API_KEY", "VITE_API_KEY")
	_ = viper.BindEnv("anthropic_api_key", "ANTHROPIC_API_KEY")

	// Add subcommands
	rootCmd.AddCommand(networthCmd)
	rootCmd.AddCommand(holdingsCmd)
	rootCmd.AddCommand(budgetCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(insightsCmd)
	rootCmd.AddCommand(configCmd)
}

// initConfig reads in .env, the config file and ENV variables if set.
func initConfig() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Warn("Could not read .env file", "error", err)
	}

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("finview")
		viper.SetConfigType("toml")

		// Search config in multiple locations (in order of precedence)
		viper.AddConfigPath(".")
		if configDir, err := os.UserConfigDir(); err == nil {
			viper.AddConfigPath(filepath.Join(configDir, "finview"))
		}
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
			viper.AddConfigPath(filepath.Join(home, ".config", "finview"))
		}
		viper.AddConfigPath("/etc/finview")
	}

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err != nil {
		log.Debug("Config file not found or error reading", "error", err)
		return
	}

	log.Debug("Using config file", "file", viper.ConfigFileUsed())
}

// newBackendClient builds the backend client described by c, logging its
// requests to logger.
func newBackendClient(c config.Config, logger *log.Logger) (*backend.Client, error) {
	timeout, err := c.RequestTimeout()
	if err != nil {
		return nil, err
	}

	hc := &http.Client{
		Timeout:   timeout,
		Transport: newLoggingTransport(nil, logger),
	}

	bc, err := backend.NewClient(c.APIURL, c.APIKey,
		backend.WithHTTPClient(hc),
		backend.WithRateLimit(c.RateLimit),
		backend.WithLogger(logger),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create backend client: %w", err)
	}
	return bc, nil
}

// rootAction runs the TUI. Logs go to a file while the TUI owns the terminal.
func rootAction(_ context.Context, c config.Config, b *backend.Client) error {
	f, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer f.Close()

	log.SetOutput(f)
	log.SetReportTimestamp(true)

	var insights *InsightGenerator
	if c.AnthropicAPIKey != "" {
		insights = NewInsightGenerator(NewAnthropicProvider(c.AnthropicAPIKey))
	} else {
		insights = NewInsightGenerator(nil)
	}

	m := newModel(c, b, insights)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run program: %w", err)
	}

	return nil
}

// Utility functions for output formatting.
func outputJSON(data any) error {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	fmt.Println(string(jsonData))
	return nil
}

func validateOutputFormat(cmd *cobra.Command, _ []string) error {
	outputFormat, _ := cmd.Flags().GetString("output")
	if outputFormat != tableOutputFormat && outputFormat != jsonOutputFormat {
		return fmt.Errorf("invalid output format: %s (must be one of [%s %s])",
			outputFormat, tableOutputFormat, jsonOutputFormat)
	}
	return nil
}

// mask hides text unless values are shown.
func mask(text string) string {
	return currency.Mask(!cfg.ShowValues, text)
}

func createStyledTable(headers ...string) *table.Table {
	var (
		primary   = lipgloss.Color("#ffd644")
		gray      = lipgloss.Color("245")
		lightGray = lipgloss.Color("241")

		headerStyle  = lipgloss.NewStyle().Foreground(primary).Bold(true).Align(lipgloss.Center)
		cellStyle    = lipgloss.NewStyle().Padding(0, 1)
		oddRowStyle  = cellStyle.Foreground(gray)
		evenRowStyle = cellStyle.Foreground(lightGray)
	)

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(primary)).
		StyleFunc(func(row, _ int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row%2 == 0:
				return evenRowStyle
			default:
				return oddRowStyle
			}
		}).
		Headers(headers...)
}
