package queue

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvent_RoutingKey(t *testing.T) {
	assert.Equal(t, "like.video", Event{Type: EventLikeAdded, TargetKind: "video"}.RoutingKey())
	assert.Equal(t, "like.tweet", Event{Type: EventLikeAdded, TargetKind: "tweet"}.RoutingKey())
	assert.Equal(t, "subscription", Event{Type: EventSubscriptionAdded}.RoutingKey())
}

func TestEvent_JSONShape(t *testing.T) {
	ev := Event{
		Type:       EventSubscriptionAdded,
		ActorID:    "u-1",
		TargetID:   "c-1",
		OccurredAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	raw, err := json.Marshal(ev)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "subscription", decoded["type"])
	assert.Equal(t, "u-1", decoded["actor_id"])
	assert.NotContains(t, decoded, "target_kind")
	assert.NotContains(t, decoded, "owner_id")
}
