package repository

import (
	"context"

	"StackSim/internal/domain/models"
	domrepo "StackSim/internal/domain/repository"
	pkgkafka "StackSim/pkg/kafka"
)

// KafkaReportPublisher emits completed simulation reports to a Kafka topic,
// keyed by symbol so per-symbol ordering is preserved.
type KafkaReportPublisher struct {
	producer *pkgkafka.Producer
	topic    string
}

// NewKafkaReportPublisher creates a Kafka report publisher.
func NewKafkaReportPublisher(producer *pkgkafka.Producer, topic string) domrepo.ReportPublisher {
	return &KafkaReportPublisher{producer: producer, topic: topic}
}

func (p *KafkaReportPublisher) PublishReport(ctx context.Context, report *models.ComparisonReport) error {
	return p.producer.Publish(ctx, p.topic, []byte(report.Symbol), report)
}

func (p *KafkaReportPublisher) Close() error {
	return p.producer.Close()
}
