package reporter

import (
	"context"
	"crypto/tls"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/IBM/sarama"
	"github.com/xdg-go/scram"
	"go.opentelemetry.io/otel"

	"github.com/Goden-Gun/fault-lib/pkg/config"
)

// PublishObserver is an optional hook to observe publish latency and errors.
//
// It is intentionally metrics-backend agnostic (no Prometheus dependency) so
// each service can map it to its own metrics and labels.
type PublishObserver interface {
	ObservePublish(topic string, duration time.Duration, err error)
}

// Producer manages the shared Kafka sync producer used to ship fault events.
type Producer struct {
	cfg      config.ReporterConfig
	producer sarama.SyncProducer

	observerMu      sync.RWMutex
	publishObserver PublishObserver

	closeOnce sync.Once
}

// kafkaHeadersCarrier implements propagation.TextMapCarrier for Kafka headers.
type kafkaHeadersCarrier []sarama.RecordHeader

func (c *kafkaHeadersCarrier) Get(key string) string {
	for _, h := range *c {
		if string(h.Key) == key {
			return string(h.Value)
		}
	}
	return ""
}

func (c *kafkaHeadersCarrier) Set(key, value string) {
	*c = append(*c, sarama.RecordHeader{
		Key:   []byte(key),
		Value: []byte(value),
	})
}

func (c *kafkaHeadersCarrier) Keys() []string {
	keys := make([]string, 0, len(*c))
	for _, h := range *c {
		keys = append(keys, string(h.Key))
	}
	return keys
}

// NewProducer builds a fault-event producer using the provided config.
func NewProducer(cfg config.ReporterConfig) (*Producer, error) {
	if len(cfg.Brokers) == 0 {
		return nil, errors.New("reporter brokers empty")
	}
	cfg.ApplyDefaults()

	base := sarama.NewConfig()
	base.Version = sarama.V2_1_0_0
	if cfg.ClientID != "" {
		base.ClientID = cfg.ClientID
	}

	base.Producer.Return.Successes = true
	base.Producer.Retry.Max = cfg.MaxAttempts
	base.Producer.RequiredAcks = parseRequiredAcks(cfg.RequiredAcks)
	base.Producer.Idempotent = false

	if cfg.TLSEnabled {
		base.Net.TLS.Enable = true
		base.Net.TLS.Config = &tls.Config{MinVersion: tls.VersionTLS12}
	}

	if cfg.Username != "" {
		base.Net.SASL.Enable = true
		base.Net.SASL.User = cfg.Username
		base.Net.SASL.Password = cfg.Password
		mech := strings.ToUpper(strings.TrimSpace(cfg.SASLMechanism))
		switch mech {
		case "SCRAM-SHA-512":
			base.Net.SASL.Mechanism = sarama.SASLTypeSCRAMSHA512
			base.Net.SASL.SCRAMClientGeneratorFunc = func() sarama.SCRAMClient {
				return newSCRAMClient(scram.SHA512)
			}
		case "SCRAM-SHA-256":
			base.Net.SASL.Mechanism = sarama.SASLTypeSCRAMSHA256
			base.Net.SASL.SCRAMClientGeneratorFunc = func() sarama.SCRAMClient {
				return newSCRAMClient(scram.SHA256)
			}
		case "PLAIN", "":
			base.Net.SASL.Mechanism = sarama.SASLTypePlaintext
		default:
			base.Net.SASL.Mechanism = sarama.SASLTypePlaintext
		}
	}

	producer, err := sarama.NewSyncProducer(cfg.Brokers, base)
	if err != nil {
		return nil, err
	}
	return &Producer{cfg: cfg, producer: producer}, nil
}

// SetPublishObserver installs or replaces the publish observer. It is safe to
// call before the producer is used concurrently.
func (p *Producer) SetPublishObserver(observer PublishObserver) {
	if p == nil {
		return
	}
	p.observerMu.Lock()
	p.publishObserver = observer
	p.observerMu.Unlock()
}

func (p *Producer) publishObserverSnapshot() PublishObserver {
	if p == nil {
		return nil
	}
	p.observerMu.RLock()
	observer := p.publishObserver
	p.observerMu.RUnlock()
	return observer
}

// Publish sends a message to the configured fault-event topic.
// Automatically injects trace context into Kafka headers for distributed tracing.
func (p *Producer) Publish(ctx context.Context, key, value []byte) (err error) {
	if p == nil {
		return errors.New("fault reporter producer nil")
	}
	start := time.Now()
	topic := p.cfg.Topic
	defer func() {
		if observer := p.publishObserverSnapshot(); observer != nil {
			observer.ObservePublish(topic, time.Since(start), err)
		}
	}()

	var headers kafkaHeadersCarrier
	propagator := otel.GetTextMapPropagator()
	propagator.Inject(ctx, &headers)

	msg := &sarama.ProducerMessage{Topic: topic}
	if len(key) > 0 {
		msg.Key = sarama.ByteEncoder(key)
	}
	if len(value) > 0 {
		msg.Value = sarama.ByteEncoder(value)
	}
	for _, h := range headers {
		msg.Headers = append(msg.Headers, h)
	}

	select {
	case <-ctx.Done():
		err = ctx.Err()
		return err
	default:
	}
	_, _, err = p.producer.SendMessage(msg)
	return err
}

// Close shuts down the producer.
func (p *Producer) Close() error {
	if p == nil {
		return nil
	}
	var err error
	p.closeOnce.Do(func() {
		if p.producer != nil {
			err = p.producer.Close()
		}
	})
	return err
}

func parseRequiredAcks(v string) sarama.RequiredAcks {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "none":
		return sarama.NoResponse
	case "one":
		return sarama.WaitForLocal
	case "all", "":
		return sarama.WaitForAll
	default:
		return sarama.WaitForAll
	}
}

type scramClient struct {
	*scram.Client
	*scram.ClientConversation
	hash scram.HashGeneratorFcn
}

func newSCRAMClient(hash scram.HashGeneratorFcn) sarama.SCRAMClient {
	return &scramClient{hash: hash}
}

func (c *scramClient) Begin(userName, password, authzID string) error {
	client, err := c.hash.NewClient(userName, password, authzID)
	if err != nil {
		return err
	}
	c.Client = client
	c.ClientConversation = client.NewConversation()
	return nil
}

func (c *scramClient) Step(challenge string) (string, error) {
	return c.ClientConversation.Step(challenge)
}

func (c *scramClient) Done() bool {
	return c.ClientConversation.Done()
}
