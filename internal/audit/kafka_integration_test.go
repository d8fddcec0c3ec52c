//go:build integration

package audit

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twmb/franz-go/pkg/kgo"

	"dematkyc/pkg/testutil/containers"
)

func TestKafkaPublisherRoundTrip(t *testing.T) {
	rp := containers.NewRedpandaContainer(t)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	const topic = "nomination-audit"
	client, err := NewKafkaClient(rp.Brokers, topic)
	require.NoError(t, err)
	pub := NewKafkaPublisher(client, topic)
	defer pub.Close()

	require.NoError(t, EnsureTopic(ctx, client, topic, 1, 1))
	require.NoError(t, EnsureTopic(ctx, client, topic, 1, 1), "second call is a no-op")

	ev := Event{ID: "e1", Action: ActionSubmitted, Category: CategoryCompliance, AccountID: "ACC1"}
	require.NoError(t, pub.Emit(ctx, ev))

	consumer, err := kgo.NewClient(
		kgo.SeedBrokers(rp.Brokers...),
		kgo.ConsumeTopics(topic),
		kgo.ConsumeResetOffset(kgo.NewOffset().AtStart()),
	)
	require.NoError(t, err)
	defer consumer.Close()

	fetches := consumer.PollFetches(ctx)
	require.NoError(t, fetches.Err())
	records := fetches.Records()
	require.Len(t, records, 1)

	assert.Equal(t, "ACC1", string(records[0].Key))
	var got Event
	require.NoError(t, json.Unmarshal(records[0].Value, &got))
	assert.Equal(t, "e1", got.ID)
	assert.Equal(t, ActionSubmitted, got.Action)
}
