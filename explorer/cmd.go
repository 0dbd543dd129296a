package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"bikeshare/communication"
	"bikeshare/explorer/config"
	"bikeshare/loader"
	"bikeshare/session"
	"bikeshare/utils"
)

type rootOptions struct {
	configFile string
	logLevel   string
	dataDir    string
	publish    bool
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "explorer",
		Short: "Explore US bikeshare data",
		Long: `explorer loads the bikeshare trips of Chicago, New York City or Washington,
filters them by month and day of week and shows statistics about travel times,
stations, trip durations and users.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.configFile, "config", config.DefaultConfigFilepath, "path of the explorer config file")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "", "log level, overrides the config file")
	cmd.Flags().StringVar(&opts.dataDir, "data-dir", "", "directory with the city csv files, overrides the config file")
	cmd.Flags().BoolVar(&opts.publish, "publish", false, "publish every report in RabbitMQ")

	return cmd
}

func run(cmd *cobra.Command, opts *rootOptions) error {
	explorerConfig, err := config.LoadConfig(opts.configFile)
	if err != nil {
		return err
	}

	if opts.logLevel != "" {
		explorerConfig.LogLevel = strings.ToLower(opts.logLevel)
	}
	if opts.dataDir != "" {
		explorerConfig.Data.DataDir = opts.dataDir
	}
	if opts.publish {
		explorerConfig.Publisher.Enabled = true
	}
	if err := explorerConfig.Validate(); err != nil {
		return err
	}

	if err := utils.InitLogger(explorerConfig.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q: %w", explorerConfig.LogLevel, err)
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	signalChannel := utils.GetSignalChannel()
	go func() {
		select {
		case sig := <-signalChannel:
			// stdin reads cannot be interrupted, so leave right away
			log.Infof("[component: explorer][status: OK] signal %s received, leaving", sig)
			cancel()
			os.Exit(130)
		case <-ctx.Done():
		}
	}()

	var publisher session.ReportPublisher
	if explorerConfig.Publisher.Enabled {
		reportPublisher, rabbitMQ, err := communication.DialReportPublisher(explorerConfig.Publisher)
		if err != nil {
			return err
		}
		defer func() {
			if err := rabbitMQ.Kill(); err != nil {
				log.Errorf("[component: explorer][status: ERROR] error closing RabbitMQ: %s", err.Error())
			}
		}()
		publisher = reportPublisher
	}

	explorerSession := session.NewSession(
		loader.NewLoader(explorerConfig.Data),
		publisher,
		cmd.InOrStdin(),
		cmd.OutOrStdout(),
		explorerConfig.PageSize,
	)

	return explorerSession.Run(ctx)
}
