package config

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	DefaultTimeout   = "30s"
	DefaultRateLimit = 10
)

// DefaultBuckets is the owner display order used when none is configured.
var DefaultBuckets = []string{"personal", "dads"}

// Config represents the application configuration structure.
type Config struct {
	// Debug enables debug logging
	Debug bool `toml:"debug" mapstructure:"debug"`
	// APIURL is the base URL of the dashboard backend
	APIURL string `toml:"api_url" mapstructure:"api_url"`
	// APIKey is sent in the X_API_KEY header
	APIKey string `toml:"api_key" mapstructure:"api_key"`
	// ShowValues starts with money values visible
	ShowValues bool `toml:"show_values" mapstructure:"show_values"`
	// Timeout bounds each backend request, e.g. "30s"
	Timeout string `toml:"timeout" mapstructure:"timeout"`
	// RateLimit is the maximum backend requests per second, 0 for none
	RateLimit int `toml:"rate_limit" mapstructure:"rate_limit"`
	// Buckets orders the holdings owners
	Buckets []string `toml:"buckets" mapstructure:"buckets"`
	// AnthropicAPIKey enables the AI digest
	AnthropicAPIKey string `toml:"anthropic_api_key" mapstructure:"anthropic_api_key"`

	Colors Colors `toml:"colors" mapstructure:"colors"`
}

// Colors overrides the theme. Values are hex ("#ff0000") or ANSI ("21")
// colors; empty keeps the default.
type Colors struct {
	Primary       string `toml:"primary" mapstructure:"primary"`
	Error         string `toml:"error" mapstructure:"error"`
	Success       string `toml:"success" mapstructure:"success"`
	Warning       string `toml:"warning" mapstructure:"warning"`
	Muted         string `toml:"muted" mapstructure:"muted"`
	Income        string `toml:"income" mapstructure:"income"`
	Expense       string `toml:"expense" mapstructure:"expense"`
	Border        string `toml:"border" mapstructure:"border"`
	Background    string `toml:"background" mapstructure:"background"`
	Text          string `toml:"text" mapstructure:"text"`
	SecondaryText string `toml:"secondary_text" mapstructure:"secondary_text"`
}

// Default returns the configuration written by "config init".
func Default() Config {
	return Config{
		APIURL:    "http://localhost:5000/api",
		Timeout:   DefaultTimeout,
		RateLimit: DefaultRateLimit,
		Buckets:   append([]string(nil), DefaultBuckets...),
	}
}

// RequestTimeout parses Timeout, falling back to the default when empty.
func (c Config) RequestTimeout() (time.Duration, error) {
	s := c.Timeout
	if s == "" {
		s = DefaultTimeout
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid timeout %q: %w", c.Timeout, err)
	}
	return d, nil
}

// OwnerOrder returns Buckets, or DefaultBuckets when none are set.
func (c Config) OwnerOrder() []string {
	if len(c.Buckets) == 0 {
		return DefaultBuckets
	}
	return c.Buckets
}

// Validate reports configuration the client cannot start with.
func (c Config) Validate() error {
	var errs []error

	if c.APIURL == "" {
		errs = append(errs, errors.New("API URL is required (set via --api-url flag, " +
			"FINVIEW_API_URL environment variable, or config file)"))
	} else if u, err := url.Parse(c.APIURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Errorf("API URL %q must be an absolute URL", c.APIURL))
	}

	if d, err := c.RequestTimeout(); err != nil {
		errs = append(errs, err)
	} else if d <= 0 {
		errs = append(errs, fmt.Errorf("timeout must be positive, got %s", d))
	}

	if c.RateLimit < 0 {
		errs = append(errs, fmt.Errorf("rate limit must not be negative, got %d", c.RateLimit))
	}

	return errors.Join(errs...)
}

// Model represents the config view model.
type Model struct {
	configTable table.Model
}

// New creates a new config view model.
func New() Model {
	configTable := table.New(
		table.WithColumns([]table.Column{
			{Title: "Setting", Width: 20},
			{Title: "Value", Width: 40},
			{Title: "Description", Width: 50},
		}),
	)

	tableStyle := table.DefaultStyles()
	tableStyle.Selected = tableStyle.Selected.
		Foreground(lipgloss.Color("#ffd644"))

	configTable.SetStyles(tableStyle)

	return Model{configTable: configTable}
}

// SetFocus sets the focus state of the config table.
func (m *Model) SetFocus(focus bool) {
	if focus {
		m.configTable.Focus()
	} else {
		m.configTable.Blur()
	}
}

// SetSize sets the size of the config table.
func (m *Model) SetSize(width, height int) {
	m.configTable.SetHeight(height)
	m.configTable.SetWidth(width)
}

func maskSensitiveValue(value string) string {
	if value == "" {
		return "(not set)"
	}

	if len(value) <= 4 {
		return strings.Repeat("*", len(value))
	}

	return value[:4] + strings.Repeat("*", len(value)-4)
}

// SetConfig sets the configuration data for the view.
func (m *Model) SetConfig(config Config) {
	rows := []table.Row{
		{"Debug", strconv.FormatBool(config.Debug), "Enable debug logging"},
		{"API URL", config.APIURL, "Dashboard backend base URL"},
		{"API Key", maskSensitiveValue(config.APIKey), "Sent as the X_API_KEY header"},
		{"Show Values", strconv.FormatBool(config.ShowValues), "Start with money values visible"},
		{"Timeout", config.Timeout, "Per-request timeout"},
		{"Rate Limit", strconv.Itoa(config.RateLimit), "Backend requests per second (0 = unlimited)"},
		{"Buckets", strings.Join(config.OwnerOrder(), ", "), "Holdings owner display order"},
		{"Anthropic API Key", maskSensitiveValue(config.AnthropicAPIKey), "Enables the AI digest"},
	}

	m.configTable.SetRows(rows)
}

// Init initializes the config view.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles updates to the config view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.configTable, cmd = m.configTable.Update(msg)
	return m, cmd
}

// View renders the config view.
func (m Model) View() string {
	return m.configTable.View()
}
