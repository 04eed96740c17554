package repository

import (
	"context"

	pkgkafka "github.com/bl00dycrusher/trade-nexus-orchestrator/pkg/kafka"
)

// CopyJournal publishes copy events to a Kafka topic for out-of-process
// consumers (audit, analytics). Best effort, same as the monitor pushes:
// a failed publish is the caller's to log and ignore.
type CopyJournal struct {
	producer *pkgkafka.Producer
	topic    string
}

// NewCopyJournal wraps a producer for one topic.
func NewCopyJournal(producer *pkgkafka.Producer, topic string) *CopyJournal {
	return &CopyJournal{producer: producer, topic: topic}
}

// Publish sends one event keyed by provider id, so per-provider ordering
// holds when the producer hashes by key.
func (j *CopyJournal) Publish(ctx context.Context, key string, event interface{}) error {
	return j.producer.Publish(ctx, j.topic, []byte(key), event)
}

// Close closes the underlying producer.
func (j *CopyJournal) Close() error {
	return j.producer.Close()
}
