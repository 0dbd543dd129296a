package communication

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"bikeshare/domain/business/stats"
)

const (
	contentTypeJson       = "application/json"
	defaultTimeoutSeconds = 5
	publisherName         = "report-publisher"
)

// MessagePublisher publishes raw messages. RabbitMQ implements it
type MessagePublisher interface {
	Publish(ctx context.Context, publishingConfig PublishingConfig, message []byte) error
}

// ReportPublisher sends every report built by the explorer to a RabbitMQ queue
type ReportPublisher struct {
	publisher MessagePublisher
	config    RabbitMQConfig
}

func NewReportPublisher(publisher MessagePublisher, config RabbitMQConfig) *ReportPublisher {
	return &ReportPublisher{
		publisher: publisher,
		config:    withDefaults(config),
	}
}

// DialReportPublisher connects to RabbitMQ and declares the report queue. The returned
// RabbitMQ must be killed by the caller.
func DialReportPublisher(config RabbitMQConfig) (*ReportPublisher, *RabbitMQ, error) {
	rabbitMQ, err := NewRabbitMQ(config.URL)
	if err != nil {
		return nil, nil, fmt.Errorf("error connecting to RabbitMQ: %w", err)
	}

	err = rabbitMQ.DeclareNonAnonymousQueues([]QueueDeclarationConfig{config.QueueDeclarationConfig})
	if err != nil {
		_ = rabbitMQ.Kill()
		return nil, nil, err
	}

	log.Infof("[publisher: %s][status: OK] queue %s declared correctly!", publisherName, config.QueueDeclarationConfig.Name)
	return NewReportPublisher(rabbitMQ, config), rabbitMQ, nil
}

func withDefaults(config RabbitMQConfig) RabbitMQConfig {
	if config.PublishingConfig.Exchange == "" && config.PublishingConfig.RoutingKey == "" {
		config.PublishingConfig.RoutingKey = config.QueueDeclarationConfig.Name
	}
	if config.PublishingConfig.ContentType == "" {
		config.PublishingConfig.ContentType = contentTypeJson
	}
	if config.TimeoutSeconds == 0 {
		config.TimeoutSeconds = defaultTimeoutSeconds
	}
	return config
}

// Publish marshals the report as JSON and publishes it, waiting at most the configured timeout
func (rp *ReportPublisher) Publish(ctx context.Context, report *stats.Report) error {
	reportBytes, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("%w: error marshalling report %s", err, report.RunID)
	}

	ctx, cancel := context.WithTimeout(ctx, time.Duration(rp.config.TimeoutSeconds)*time.Second)
	defer cancel()

	err = rp.publisher.Publish(ctx, rp.config.PublishingConfig, reportBytes)
	if err != nil {
		log.Errorf("[publisher: %s][runID: %s][status: ERROR] error publishing report: %s", publisherName, report.RunID, err.Error())
		return err
	}

	log.Debugf("[publisher: %s][runID: %s][status: OK] report published in %s", publisherName, report.RunID, rp.config.PublishingConfig.RoutingKey)
	return nil
}
