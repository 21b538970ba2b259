package main

import (
	"context"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"bikeshare/analysis"
	"bikeshare/client"
	"bikeshare/communication"
	"bikeshare/config"
	"bikeshare/metrics"
	"bikeshare/recordstore/factory"
	"bikeshare/utils"
)

const configFileEnv = "BIKESHARE_CONFIG_FILE"

// InitLogger Receives the log level to be set in logrus as a string. This method
// parses the string and set the level to the logger. If the level string is not
// valid an error is returned
func InitLogger(logLevel string) error {
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		return err
	}

	customFormatter := &log.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   false,
	}
	log.SetFormatter(customFormatter)
	log.SetLevel(level)
	return nil
}

func main() {
	configFilepath := os.Getenv(configFileEnv)
	if configFilepath == "" {
		configFilepath = config.DefaultConfigFilepath
	}

	cfg, err := config.LoadConfig(configFilepath)
	if err != nil {
		log.Fatalf("[caller: main][status: ERROR] error loading config: %s", err)
	}
	if err = InitLogger(cfg.LogLevel); err != nil {
		log.Fatalf("%s", err)
	}

	store, err := factory.NewStore(cfg)
	if err != nil {
		log.Fatalf("[caller: main][status: ERROR] error creating record store: %s", err)
	}

	recorder := metrics.NewPrometheusRecorder()
	if cfg.Metrics.Address != "" {
		server := metrics.NewServer(cfg.Metrics.Address, recorder)
		server.Start()
		defer func() {
			if err := server.Shutdown(); err != nil {
				log.Error(getLogMessage("error stopping metrics server", err))
			}
		}()
	}

	var reporter analysis.Reporter
	if cfg.Report.Enabled {
		publisher, err := communication.NewReportPublisher(cfg.Report)
		if err != nil {
			log.Warn(getLogMessage("reports will not be published", err))
		} else {
			reporter = publisher
			defer func() {
				if err := publisher.Close(); err != nil {
					log.Error(getLogMessage("error closing report publisher", err))
				}
			}()
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	bikeshareClient := client.NewClient(
		client.ClientConfig{Cities: cfg.CityNames(), PageSize: cfg.RawData.PageSize},
		os.Stdin,
		os.Stdout,
		analysis.NewAnalyzer(store, recorder, reporter),
	)

	signalChannel := utils.GetSignalChannel()
	done := make(chan error, 1)
	go func() {
		done <- bikeshareClient.Loop(ctx)
	}()

	select {
	case err = <-done:
		if err != nil {
			log.Error(getLogMessage("client stopped", err))
			return
		}
		log.Debug(getLogMessage("Finish main.go", nil))
	case sig := <-signalChannel:
		cancel()
		log.Info(getLogMessage(fmt.Sprintf("received %s, exiting", sig), nil))
	}
}

func getLogMessage(message string, err error) string {
	if err != nil {
		return fmt.Sprintf("[caller: main][status: ERROR] %s: %s", message, err.Error())
	}
	return fmt.Sprintf("[caller: main][status: OK] %s", message)
}
