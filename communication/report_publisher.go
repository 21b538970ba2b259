package communication

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"bikeshare/config"
	"bikeshare/domain/business/queryresponse"
)

const (
	reportContentType = "application/json"
	routingKeyPrefix  = "report."
)

// Publisher is the part of RabbitMQ used to deliver reports
type Publisher interface {
	PublishMessageInExchange(ctx context.Context, exchange string, routingKey string, message []byte, contentType string) error
	KillBadBunny() error
}

// ReportPublisher delivers the stats of each pass to an exchange, routed by city
type ReportPublisher struct {
	publisher Publisher
	exchange  string
}

// NewReportPublisher connects to RabbitMQ and declares the report exchange
func NewReportPublisher(cfg config.ReportConfig) (*ReportPublisher, error) {
	rabbitMQ, err := NewRabbitMQ(cfg.RabbitURL)
	if err != nil {
		return nil, fmt.Errorf("error connecting to RabbitMQ: %w", err)
	}

	err = rabbitMQ.DeclareExchanges([]ExchangeDeclarationConfig{{
		Name:    cfg.Exchange,
		Type:    cfg.ExchangeType,
		Durable: true,
	}})
	if err != nil {
		_ = rabbitMQ.KillBadBunny()
		return nil, err
	}

	return NewReportPublisherWith(rabbitMQ, cfg.Exchange), nil
}

func NewReportPublisherWith(publisher Publisher, exchange string) *ReportPublisher {
	return &ReportPublisher{
		publisher: publisher,
		exchange:  exchange,
	}
}

func (rp *ReportPublisher) getLogMessage(method string, message string, err error) string {
	if err != nil {
		return fmt.Sprintf("[exchange: %s][method: %s][status: ERROR] %s: %s", rp.exchange, method, message, err.Error())
	}
	return fmt.Sprintf("[exchange: %s][method: %s][status: OK] %s", rp.exchange, method, message)
}

// Publish sends response as json with routing key report.<city>
func (rp *ReportPublisher) Publish(ctx context.Context, response *queryresponse.QueryResponse) error {
	message, err := json.Marshal(response)
	if err != nil {
		return fmt.Errorf("error marshalling report: %w", err)
	}

	routingKey := RoutingKey(response.GetMetadata().GetCity())
	err = rp.publisher.PublishMessageInExchange(ctx, rp.exchange, routingKey, message, reportContentType)
	if err != nil {
		log.Error(rp.getLogMessage("Publish", "error publishing report "+response.GetMetadata().PassID, err))
		return fmt.Errorf("error publishing report: %w", err)
	}

	log.Debug(rp.getLogMessage("Publish", fmt.Sprintf("report %s published with routing key %s", response.GetMetadata().PassID, routingKey), nil))
	return nil
}

func (rp *ReportPublisher) Close() error {
	return rp.publisher.KillBadBunny()
}

// RoutingKey returns the routing key of the reports of city
func RoutingKey(city string) string {
	return routingKeyPrefix + strings.ReplaceAll(strings.ToLower(strings.TrimSpace(city)), " ", "_")
}
