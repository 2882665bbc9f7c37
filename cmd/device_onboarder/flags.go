package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/kurochkinivan/device_onboarder/internal/app"
	"github.com/kurochkinivan/device_onboarder/internal/config"
	"github.com/kurochkinivan/device_onboarder/internal/lmv1"
	altsrc "github.com/urfave/cli-altsrc/v3"
	"github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"
)

var version = "dev"

func cmd() *cli.Command {
	return &cli.Command{
		Name:    "device_onboarder",
		Usage:   "Onboards devices from market asset inventories into LogicMonitor",
		Version: version,
		Flags:   flags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			log, ok := ctx.Value(loggerKey{}).(*slog.Logger)
			if !ok {
				return errors.New("failed to get logger from context")
			}

			cfg := config.Load(cmd)

			return app.New(log, cfg).Run(ctx)
		},
	}
}

func flags() []cli.Flag {
	var config string

	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Validator:   validateConfig,
			Usage:       "Load configuration from `FILE`",
			Destination: &config,
		},
		&cli.StringFlag{
			Name:      "watch-dir",
			Aliases:   []string{"w"},
			Usage:     "Set directory with per-market subdirectories to watch for new files",
			Value:     "input",
			Sources:   cli.NewValueSourceChain(yaml.YAML("app.watch_dir", altsrc.NewStringPtrSourcer(&config))),
			Required:  true,
			Validator: validateDirectory,
		},
		&cli.StringFlag{
			Name:      "reports-dir",
			Aliases:   []string{"r"},
			Usage:     "Set directory to write reports to",
			Value:     "output",
			Sources:   cli.NewValueSourceChain(yaml.YAML("app.reports_dir", altsrc.NewStringPtrSourcer(&config))),
			Required:  true,
			Validator: validateDirectory,
		},
		&cli.StringFlag{
			Name:      "outbox-dir",
			Usage:     "Set directory to deliver report notifications to",
			Value:     "outbox",
			Sources:   cli.NewValueSourceChain(yaml.YAML("app.outbox_dir", altsrc.NewStringPtrSourcer(&config))),
			Required:  true,
			Validator: validateDirectory,
		},
		&cli.DurationFlag{
			Name:     "scan-interval",
			Aliases:  []string{"s"},
			Usage:    "Set directory scan interval",
			Value:    3 * time.Second,
			Sources:  cli.NewValueSourceChain(yaml.YAML("app.scan_interval", altsrc.NewStringPtrSourcer(&config))),
			Required: true,
		},
		&cli.StringSliceFlag{
			Name:     "markets",
			Aliases:  []string{"m"},
			Usage:    "Set comma separated markets to watch",
			Sources:  cli.NewValueSourceChain(yaml.YAML("app.markets", altsrc.NewStringPtrSourcer(&config))),
			Required: true,
		},
		&cli.StringFlag{
			Name:    "csv-delimiter",
			Usage:   "Set CSV field delimiter",
			Value:   ",",
			Sources: cli.NewValueSourceChain(yaml.YAML("csv.delimiter", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:    "csv-encoding",
			Usage:   "Set CSV encoding, utf-8 or windows-1251",
			Value:   "utf-8",
			Sources: cli.NewValueSourceChain(yaml.YAML("csv.encoding", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:    "lm-base-url",
			Usage:   "Set LogicMonitor REST base URL, overrides lm-company",
			Sources: cli.NewValueSourceChain(yaml.YAML("logicmonitor.base_url", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:    "lm-company",
			Usage:   "Set LogicMonitor portal name",
			Sources: cli.NewValueSourceChain(yaml.YAML("logicmonitor.company", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:     "lm-access-id",
			Usage:    "Set LogicMonitor API access id",
			Sources:  cli.NewValueSourceChain(yaml.YAML("logicmonitor.access_id", altsrc.NewStringPtrSourcer(&config))),
			Required: true,
		},
		&cli.StringFlag{
			Name:     "lm-access-key",
			Usage:    "Set LogicMonitor API access key",
			Sources:  cli.NewValueSourceChain(yaml.YAML("logicmonitor.access_key", altsrc.NewStringPtrSourcer(&config))),
			Required: true,
		},
		&cli.IntFlag{
			Name:    "lm-collector-id",
			Usage:   "Set preferred collector id for created devices",
			Value:   1,
			Sources: cli.NewValueSourceChain(yaml.YAML("logicmonitor.collector_id", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:    "lm-host-group-ids",
			Usage:   "Set comma separated host group ids for created devices",
			Sources: cli.NewValueSourceChain(yaml.YAML("logicmonitor.host_group_ids", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.IntFlag{
			Name:    "lm-workers",
			Usage:   "Set number of concurrent device creation calls",
			Value:   1,
			Sources: cli.NewValueSourceChain(yaml.YAML("logicmonitor.workers", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.DurationFlag{
			Name:    "lm-request-timeout",
			Usage:   "Set device creation call timeout",
			Value:   30 * time.Second,
			Sources: cli.NewValueSourceChain(yaml.YAML("logicmonitor.request_timeout", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.IntFlag{
			Name:    "lm-max-body-snippet",
			Usage:   "Set max bytes of a rejection body kept for reports",
			Value:   lmv1.DefaultMaxBodySnippet,
			Sources: cli.NewValueSourceChain(yaml.YAML("logicmonitor.max_body_snippet", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:    "lm-proxy-url",
			Usage:   "Set outbound proxy URL",
			Sources: cli.NewValueSourceChain(yaml.YAML("logicmonitor.proxy_url", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.BoolFlag{
			Name:    "lm-insecure-skip-verify",
			Usage:   "Disable TLS certificate verification",
			Sources: cli.NewValueSourceChain(yaml.YAML("logicmonitor.insecure_skip_verify", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:    "report-policy",
			Usage:   "Set report policy, successes or all",
			Value:   "successes",
			Sources: cli.NewValueSourceChain(yaml.YAML("report.policy", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:    "report-subject",
			Usage:   "Set report notification subject",
			Value:   "New Device Report",
			Sources: cli.NewValueSourceChain(yaml.YAML("report.subject", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:     "pg-host",
			Usage:    "Set PostgreSQL host",
			Value:    "localhost",
			Sources:  cli.NewValueSourceChain(yaml.YAML("postgresql.host", altsrc.NewStringPtrSourcer(&config))),
			Required: true,
		},
		&cli.StringFlag{
			Name:     "pg-port",
			Usage:    "Set PostgreSQL port",
			Value:    "5432",
			Sources:  cli.NewValueSourceChain(yaml.YAML("postgresql.port", altsrc.NewStringPtrSourcer(&config))),
			Required: true,
		},
		&cli.StringFlag{
			Name:     "pg-username",
			Usage:    "Set PostgreSQL username",
			Sources:  cli.NewValueSourceChain(yaml.YAML("postgresql.username", altsrc.NewStringPtrSourcer(&config))),
			Required: true,
		},
		&cli.StringFlag{
			Name:     "pg-password",
			Usage:    "Set PostgreSQL password",
			Sources:  cli.NewValueSourceChain(yaml.YAML("postgresql.password", altsrc.NewStringPtrSourcer(&config))),
			Required: true,
		},
		&cli.StringFlag{
			Name:     "pg-dbname",
			Usage:    "Set PostgreSQL database name",
			Value:    "device_onboarder",
			Sources:  cli.NewValueSourceChain(yaml.YAML("postgresql.dbname", altsrc.NewStringPtrSourcer(&config))),
			Required: true,
		},
		&cli.StringFlag{
			Name:    "pg-sslmode",
			Usage:   "Set PostgreSQL sslmode",
			Value:   "disable",
			Sources: cli.NewValueSourceChain(yaml.YAML("postgresql.sslmode", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:    "http-host",
			Usage:   "Set HTTP server host",
			Value:   "localhost",
			Sources: cli.NewValueSourceChain(yaml.YAML("http.host", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:    "http-port",
			Usage:   "Set HTTP server port",
			Value:   "8080",
			Sources: cli.NewValueSourceChain(yaml.YAML("http.port", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.DurationFlag{
			Name:    "http-idle-timeout",
			Usage:   "Set HTTP server idle timeout",
			Value:   1 * time.Minute,
			Sources: cli.NewValueSourceChain(yaml.YAML("http.idle_timeout", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.DurationFlag{
			Name:    "http-read-timeout",
			Usage:   "Set HTTP server read timeout",
			Value:   15 * time.Second,
			Sources: cli.NewValueSourceChain(yaml.YAML("http.read_timeout", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.DurationFlag{
			Name:    "http-write-timeout",
			Usage:   "Set HTTP server write timeout",
			Value:   15 * time.Second,
			Sources: cli.NewValueSourceChain(yaml.YAML("http.write_timeout", altsrc.NewStringPtrSourcer(&config))),
		},
	}
}

func validateDirectory(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%q does not exist", dir)
		}
		return fmt.Errorf("failed to stat %q: %w", dir, err)
	}

	if !info.IsDir() {
		return fmt.Errorf("%q is not a directory", dir)
	}

	return nil
}

func validateConfig(config string) error {
	info, err := os.Stat(config)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%q does not exist", config)
		}
		return fmt.Errorf("failed to stat %q: %w", config, err)
	}

	if info.IsDir() {
		return fmt.Errorf("%q is a directory, not a file", config)
	}

	ext := filepath.Ext(info.Name())
	if ext != ".yml" && ext != ".yaml" {
		return fmt.Errorf("invalid extension %q", config)
	}

	return nil
}
