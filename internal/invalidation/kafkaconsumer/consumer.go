// Package kafkaconsumer flushes cached profiles and descriptors when
// the upstream catalog announces a collection change.
package kafkaconsumer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/IBM/sarama"

	"github.com/rastermaps/renderconfig/internal/cache"
	"github.com/rastermaps/renderconfig/internal/cache/keys"
	obs "github.com/rastermaps/renderconfig/internal/core/observability"
	"github.com/rastermaps/renderconfig/internal/invalidation"
)

// ProfileInvalidator drops an in-process profile resolution.
type ProfileInvalidator interface {
	Invalidate(id string)
}

type Consumer struct {
	cfg      Config
	logger   *slog.Logger
	cache    cache.Interface
	profiles ProfileInvalidator
}

func New(cfg Config, logger *slog.Logger, c cache.Interface, profiles ProfileInvalidator) *Consumer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Consumer{
		cfg:      cfg,
		logger:   logger,
		cache:    c,
		profiles: profiles,
	}
}

// Start consumes collection-update events until ctx is cancelled.
func (c *Consumer) Start(ctx context.Context) error {
	if c.profiles == nil {
		return errors.New("kafkaconsumer: missing profile invalidator")
	}

	cfg := sarama.NewConfig()
	cfg.Version = sarama.V2_1_0_0
	cfg.Consumer.Group.Session.Timeout = c.cfg.SessionTimeout
	cfg.Consumer.Group.Heartbeat.Interval = c.cfg.Heartbeat
	cfg.Consumer.Group.Rebalance.Timeout = c.cfg.RebalanceTimeout
	if c.cfg.InitialOffsetOldest {
		cfg.Consumer.Offsets.Initial = sarama.OffsetOldest
	} else {
		cfg.Consumer.Offsets.Initial = sarama.OffsetNewest
	}
	cfg.Consumer.Offsets.AutoCommit.Enable = true

	group, err := sarama.NewConsumerGroup(c.cfg.Brokers, c.cfg.GroupID, cfg)
	if err != nil {
		return fmt.Errorf("create consumer group: %w", err)
	}
	defer func() { _ = group.Close() }()

	handler := &groupHandler{process: c.ProcessOne}

	c.logger.Info("collection invalidation consumer starting",
		"brokers", c.cfg.Brokers, "topic", c.cfg.Topic, "group", c.cfg.GroupID)

	for {
		select {
		case <-ctx.Done():
			c.logger.Info("collection invalidation consumer shutting down")
			return nil
		default:
			if err := group.Consume(ctx, []string{c.cfg.Topic}, handler); err != nil {
				c.logger.Error("consumer error", "err", err)
				time.Sleep(2 * time.Second)
			}
		}
	}
}

// ProcessOne handles a single collection-update message. A decode or
// validation failure is counted and dropped so one malformed producer
// cannot wedge the partition.
func (c *Consumer) ProcessOne(ctx context.Context, msg *sarama.ConsumerMessage) error {
	var ev invalidation.Event
	if err := json.Unmarshal(msg.Value, &ev); err != nil {
		obs.IncInvalidation("decode_error")
		c.logger.Error("invalidation decode failed", "err", err, "offset", msg.Offset)
		return nil
	}
	if err := ev.Validate(); err != nil {
		obs.IncInvalidation("invalid")
		c.logger.Error("invalidation event rejected", "err", err, "offset", msg.Offset)
		return nil
	}

	c.profiles.Invalidate(ev.Collection)

	if c.cache != nil {
		n, err := c.cache.DelPrefix(ctx, keys.CollectionPrefix(ev.Collection))
		if err != nil {
			obs.IncInvalidation("cache_error")
			c.logger.Error("descriptor flush failed", "collection", ev.Collection, "err", err)
			return nil
		}
		c.logger.Info("collection invalidated",
			"collection", ev.Collection, "op", ev.Op, "descriptors_dropped", n)
	}

	obs.IncInvalidation("applied")
	return nil
}
