package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type mockWriter struct {
	mu     sync.Mutex
	msgs   []kafka.Message
	err    error
	closed bool
}

func (w *mockWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *mockWriter) Close() error {
	w.closed = true
	return nil
}

func TestPublisher_Publish(t *testing.T) {
	w := &mockWriter{}
	p := NewPublisherWithWriter(w)

	e := New(KindFilterChanged, map[string]string{"category": "sports", "show": "false"})
	require.NoError(t, p.Publish(context.Background(), e))

	require.Len(t, w.msgs, 1)
	assert.Equal(t, "filter_changed", string(w.msgs[0].Key))

	var got Event
	require.NoError(t, json.Unmarshal(w.msgs[0].Value, &got))
	assert.Equal(t, e.ID, got.ID)
	assert.Equal(t, "sports", got.Attrs["category"])
	assert.True(t, e.At.Equal(got.At))

	require.NoError(t, p.Close())
	assert.True(t, w.closed)
}

func TestPublisher_WriteError(t *testing.T) {
	boom := errors.New("broker unavailable")
	p := NewPublisherWithWriter(&mockWriter{err: boom})

	err := p.Publish(context.Background(), New(KindPanelClosed, nil))
	require.ErrorIs(t, err, boom)
}

// mockReader simulates the kafka-go Reader. ReadMessage blocks until a
// message is queued or the reader is closed.
type mockReader struct {
	messages chan kafka.Message
	closed   chan struct{}
	once     sync.Once

	mu        sync.Mutex
	committed []int64
}

func newMockReader(values ...[]byte) *mockReader {
	mr := &mockReader{
		messages: make(chan kafka.Message, len(values)),
		closed:   make(chan struct{}),
	}
	for i, v := range values {
		mr.messages <- kafka.Message{Topic: "campus-events", Offset: int64(i), Value: v}
	}
	return mr
}

func (mr *mockReader) ReadMessage(ctx context.Context) (kafka.Message, error) {
	select {
	case <-ctx.Done():
		return kafka.Message{}, ctx.Err()
	case <-mr.closed:
		return kafka.Message{}, io.EOF
	case msg := <-mr.messages:
		return msg, nil
	}
}

func (mr *mockReader) CommitMessages(_ context.Context, msgs ...kafka.Message) error {
	mr.mu.Lock()
	defer mr.mu.Unlock()
	for _, m := range msgs {
		mr.committed = append(mr.committed, m.Offset)
	}
	return nil
}

func (mr *mockReader) Close() error {
	mr.once.Do(func() { close(mr.closed) })
	return nil
}

func (mr *mockReader) commits() []int64 {
	mr.mu.Lock()
	defer mr.mu.Unlock()
	return append([]int64(nil), mr.committed...)
}

func encode(t *testing.T, e Event) []byte {
	t.Helper()
	b, err := json.Marshal(e)
	require.NoError(t, err)
	return b
}

func TestConsumer_DecodesAndCommits(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	mr := newMockReader(
		encode(t, New(KindSearched, map[string]string{"term": "library"})),
		[]byte("not json"),
		encode(t, New(KindDetailsShown, map[string]string{"id": "13"})),
	)
	c := newConsumer(mr, nil)
	c.Start(ctx)
	defer c.Stop()

	var kinds []Kind
	for len(kinds) < 2 {
		select {
		case e := <-c.Events():
			kinds = append(kinds, e.Kind)
		case <-ctx.Done():
			t.Fatal("timed out waiting for events")
		}
	}
	assert.Equal(t, []Kind{KindSearched, KindDetailsShown}, kinds)

	require.Eventually(t, func() bool { return len(mr.commits()) == 3 }, time.Second, 10*time.Millisecond,
		"malformed messages are committed so they are not redelivered")
}

func TestConsumer_StopClosesChannel(t *testing.T) {
	mr := newMockReader()
	c := newConsumer(mr, nil)
	c.Start(context.Background())

	c.Stop()
	c.Stop()

	select {
	case _, ok := <-c.Events():
		assert.False(t, ok, "Events should be closed after Stop")
	case <-time.After(time.Second):
		t.Fatal("Events not closed after Stop")
	}
}

func TestConsumer_ContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	values := make([][]byte, 5)
	for i := range values {
		values[i] = encode(t, New(KindSidebarToggled, map[string]string{"n": fmt.Sprint(i)}))
	}
	mr := newMockReader(values...)
	c := newConsumer(mr, nil)
	c.Start(ctx)

	<-c.Events()
	cancel()

	for range c.Events() {
	}
	c.Stop()
}
