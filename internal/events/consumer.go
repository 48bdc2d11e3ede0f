package events

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Reader is the subset of *kafka.Reader used by Consumer, so tests can
// substitute a mock.
type Reader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Consumer reads interaction events from Kafka and hands them out on a
// channel. Offsets are committed explicitly after each event is decoded.
type Consumer struct {
	reader   Reader
	logger   *zap.Logger
	doneChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	events   chan Event
}

func NewConsumer(broker, topic, groupID string, logger *zap.Logger) *Consumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{broker},
		Topic:   topic,
		GroupID: groupID,
		// Offsets are committed manually.
		CommitInterval: 0,
		MinBytes:       1,
		MaxBytes:       10e6,
		MaxWait:        time.Second,
	})
	return newConsumer(reader, logger)
}

func newConsumer(reader Reader, logger *zap.Logger) *Consumer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Consumer{
		reader:   reader,
		logger:   logger,
		doneChan: make(chan struct{}),
		events:   make(chan Event),
	}
}

// Events is closed when the consume loop exits.
func (c *Consumer) Events() <-chan Event {
	return c.events
}

// Start runs the consume loop in its own goroutine until ctx is done, Stop is
// called or the reader is closed.
func (c *Consumer) Start(ctx context.Context) {
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		defer close(c.events)

		c.logger.Debug("starting event consumer")
		for {
			select {
			case <-ctx.Done():
				return
			case <-c.doneChan:
				return
			default:
			}

			msg, err := c.reader.ReadMessage(ctx)
			if err != nil {
				if errors.Is(err, io.EOF) || ctx.Err() != nil {
					return
				}
				c.logger.Warn("read event", zap.Error(err))
				select {
				case <-time.After(time.Second):
				case <-ctx.Done():
					return
				case <-c.doneChan:
					return
				}
				continue
			}

			var e Event
			if err := json.Unmarshal(msg.Value, &e); err != nil {
				c.logger.Warn("skipping malformed event",
					zap.Int("partition", msg.Partition),
					zap.Int64("offset", msg.Offset),
					zap.Error(err))
				c.commit(ctx, msg)
				continue
			}

			select {
			case c.events <- e:
				c.commit(ctx, msg)
			case <-ctx.Done():
				return
			case <-c.doneChan:
				return
			}
		}
	}()
}

func (c *Consumer) commit(ctx context.Context, msg kafka.Message) {
	if err := c.reader.CommitMessages(ctx, msg); err != nil {
		c.logger.Warn("commit offset",
			zap.Int("partition", msg.Partition),
			zap.Int64("offset", msg.Offset),
			zap.Error(err))
	}
}

// Stop closes the reader and waits for the consume loop to exit. It is safe
// to call more than once.
func (c *Consumer) Stop() {
	c.stopOnce.Do(func() {
		close(c.doneChan)
		if err := c.reader.Close(); err != nil {
			c.logger.Warn("close event reader", zap.Error(err))
		}
		c.wg.Wait()
	})
}
