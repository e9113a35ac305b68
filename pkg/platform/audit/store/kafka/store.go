// Package kafka fans audit events out to a Kafka topic for downstream
// compliance consumers.
package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/twmb/franz-go/pkg/kadm"
	"github.com/twmb/franz-go/pkg/kerr"
	"github.com/twmb/franz-go/pkg/kgo"

	audit "benefitd/pkg/platform/audit"
)

// Store produces each audit event as one record keyed by module, so events of
// one rule table stay ordered within a partition.
type Store struct {
	client *kgo.Client
	topic  string
}

// payload is the JSON record value. Field names are the consumer contract.
type payload struct {
	Category      string `json:"category"`
	Timestamp     string `json:"timestamp"`
	Module        string `json:"module"`
	Action        string `json:"action"`
	ActorID       string `json:"actor_id,omitempty"`
	SubjectIDHash string `json:"subject_id_hash,omitempty"`
	Decision      string `json:"decision,omitempty"`
	Reason        string `json:"reason,omitempty"`
	Height        uint64 `json:"height"`
	RequestID     string `json:"request_id,omitempty"`
}

// New connects a producer for topic. Extra kgo options are appended last.
func New(brokers []string, topic string, opts ...kgo.Opt) (*Store, error) {
	if len(brokers) == 0 {
		return nil, errors.New("kafka brokers are required")
	}
	if topic == "" {
		return nil, errors.New("kafka topic is required")
	}
	base := []kgo.Opt{
		kgo.SeedBrokers(brokers...),
		kgo.DefaultProduceTopic(topic),
		kgo.RequiredAcks(kgo.AllISRAcks()),
		kgo.ProducerLinger(5 * time.Millisecond),
	}
	client, err := kgo.NewClient(append(base, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("create kafka client: %w", err)
	}
	return &Store{client: client, topic: topic}, nil
}

// EnsureTopic creates the audit topic if it does not exist yet.
func (s *Store) EnsureTopic(ctx context.Context, partitions int32, replicationFactor int16) error {
	adm := kadm.NewClient(s.client)
	resp, err := adm.CreateTopics(ctx, partitions, replicationFactor, nil, s.topic)
	if err != nil {
		return fmt.Errorf("create audit topic: %w", err)
	}
	for _, r := range resp {
		if r.Err != nil && !errors.Is(r.Err, kerr.TopicAlreadyExists) {
			return fmt.Errorf("create audit topic %s: %w", r.Topic, r.Err)
		}
	}
	return nil
}

func (s *Store) Append(ctx context.Context, event audit.Event) error {
	category := event.Category
	if category == "" {
		category = audit.AuditEvent(event.Action).Category()
	}
	value, err := json.Marshal(payload{
		Category:      string(category),
		Timestamp:     event.Timestamp.UTC().Format(time.RFC3339Nano),
		Module:        event.Module,
		Action:        event.Action,
		ActorID:       event.ActorID,
		SubjectIDHash: event.SubjectIDHash,
		Decision:      event.Decision,
		Reason:        event.Reason,
		Height:        event.Height,
		RequestID:     event.RequestID,
	})
	if err != nil {
		return fmt.Errorf("marshal audit payload: %w", err)
	}

	record := &kgo.Record{
		Key:   []byte(event.Module),
		Value: value,
		Headers: []kgo.RecordHeader{
			{Key: "category", Value: []byte(category)},
			{Key: "action", Value: []byte(event.Action)},
		},
	}
	if err := s.client.ProduceSync(ctx, record).FirstErr(); err != nil {
		return fmt.Errorf("produce audit event: %w", err)
	}
	return nil
}

// Health pings the cluster.
func (s *Store) Health(ctx context.Context) error {
	return s.client.Ping(ctx)
}

func (s *Store) Close() {
	s.client.Close()
}
