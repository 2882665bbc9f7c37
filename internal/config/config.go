package config

import (
	"fmt"
	"time"

	"github.com/kurochkinivan/device_onboarder/internal/domain"
	"github.com/urfave/cli/v3"
)

type Config struct {
	App
	CSV
	LogicMonitor
	Report
	PostgreSQL
	HTTP
}

type App struct {
	WatchDirectory        string
	ReportsDirectory      string
	OutboxDirectory       string
	DirectoryScanInterval time.Duration
	Markets               []string
}

type CSV struct {
	Delimiter string
	Encoding  string
}

// LogicMonitor holds the device creation credentials. They are a separate
// credential domain from the mailbox token and are read-only once loaded.
type LogicMonitor struct {
	BaseURL            string
	Company            string
	AccessID           string
	AccessKey          string
	CollectorID        int
	HostGroupIDs       string
	Workers            int
	RequestTimeout     time.Duration
	MaxBodySnippet     int
	ProxyURL           string
	InsecureSkipVerify bool
}

type Report struct {
	Policy  string
	Subject string
}

type PostgreSQL struct {
	Host     string
	Port     string
	Username string
	Password string
	DBName   string
	SSLMode  string
}

type HTTP struct {
	Host         string
	Port         string
	IdleTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

func Load(cmd *cli.Command) *Config {
	return &Config{
		App: App{
			WatchDirectory:        cmd.String("watch-dir"),
			ReportsDirectory:      cmd.String("reports-dir"),
			OutboxDirectory:       cmd.String("outbox-dir"),
			DirectoryScanInterval: cmd.Duration("scan-interval"),
			Markets:               cmd.StringSlice("markets"),
		},
		CSV: CSV{
			Delimiter: cmd.String("csv-delimiter"),
			Encoding:  cmd.String("csv-encoding"),
		},
		LogicMonitor: LogicMonitor{
			BaseURL:            cmd.String("lm-base-url"),
			Company:            cmd.String("lm-company"),
			AccessID:           cmd.String("lm-access-id"),
			AccessKey:          cmd.String("lm-access-key"),
			CollectorID:        cmd.Int("lm-collector-id"),
			HostGroupIDs:       cmd.String("lm-host-group-ids"),
			Workers:            cmd.Int("lm-workers"),
			RequestTimeout:     cmd.Duration("lm-request-timeout"),
			MaxBodySnippet:     cmd.Int("lm-max-body-snippet"),
			ProxyURL:           cmd.String("lm-proxy-url"),
			InsecureSkipVerify: cmd.Bool("lm-insecure-skip-verify"),
		},
		Report: Report{
			Policy:  cmd.String("report-policy"),
			Subject: cmd.String("report-subject"),
		},
		PostgreSQL: PostgreSQL{
			Host:     cmd.String("pg-host"),
			Port:     cmd.String("pg-port"),
			Username: cmd.String("pg-username"),
			Password: cmd.String("pg-password"),
			DBName:   cmd.String("pg-dbname"),
			SSLMode:  cmd.String("pg-sslmode"),
		},
		HTTP: HTTP{
			Host:         cmd.String("http-host"),
			Port:         cmd.String("http-port"),
			IdleTimeout:  cmd.Duration("http-idle-timeout"),
			ReadTimeout:  cmd.Duration("http-read-timeout"),
			WriteTimeout: cmd.Duration("http-write-timeout"),
		},
	}
}

func (c *Config) Validate() error {
	if len(c.App.Markets) == 0 {
		return fmt.Errorf("%w: at least one market is required", domain.ErrConfiguration)
	}

	if c.LogicMonitor.BaseURL == "" && c.LogicMonitor.Company == "" {
		return fmt.Errorf("%w: either lm-base-url or lm-company is required", domain.ErrConfiguration)
	}

	if c.LogicMonitor.AccessID == "" || c.LogicMonitor.AccessKey == "" {
		return fmt.Errorf("%w: logicmonitor access id and key are required", domain.ErrConfiguration)
	}

	return nil
}
