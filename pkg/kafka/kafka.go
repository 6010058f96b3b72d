package kafka

import (
	"context"
	"time"

	"github.com/IBM/sarama"
)

const (
	StatsTopic         = "stats-topic"
	StatsConsumerGroup = "stats-group"
)

// Event names published by the exchange service.
const (
	EventBookAdded         = "book_added"
	EventExchangeRequested = "exchange_requested"
	EventExchangeAccepted  = "exchange_accepted"
	EventExchangeRejected  = "exchange_rejected"
)

type Config struct {
	Addrs []string `yaml:"addrs" envconfig:"KAFKA_ADDRS" default:"localhost:9092"`
}

type EventStats struct {
	Username string    `json:"username"`
	Event    string    `json:"event"`
	BookUid  string    `json:"bookUid"`
	Ts       time.Time `json:"ts"`
}

func NewProducer(cfg Config) (sarama.SyncProducer, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Producer.RequiredAcks = sarama.WaitForAll
	defaultCfg.Producer.Return.Successes = true

	return sarama.NewSyncProducer(cfg.Addrs, defaultCfg)
}

func NewConsumer(cfg Config, group string) (sarama.ConsumerGroup, error) {
	defaultCfg := sarama.NewConfig()
	defaultCfg.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRoundRobin()}
	defaultCfg.Consumer.Offsets.Initial = sarama.OffsetOldest

	return sarama.NewConsumerGroup(cfg.Addrs, group, defaultCfg)
}

// Consume runs the consumer group loop until the context is canceled.
// sarama re-enters Consume on every rebalance.
func Consume(ctx context.Context, consumer sarama.ConsumerGroup, handler sarama.ConsumerGroupHandler, topic string) error {
	for {
		if err := consumer.Consume(ctx, []string{topic}, handler); err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
}
