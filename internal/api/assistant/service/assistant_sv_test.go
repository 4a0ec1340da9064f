package assistantService

import (
	"context"
	"testing"

	"AssistantGolang/internal/api/assistant"
	"AssistantGolang/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetHistory(t *testing.T) {
	h := newTestService()
	h.store.history = []entity.Conversation{
		{ID: "a", Text: "Hello!", IsUser: false, Category: entity.CategoryOther},
		{ID: "b", Text: "hi", IsUser: true, Category: entity.CategoryOther},
	}
	h.store.historyTotal = 42

	resp, err := h.svc.GetHistory(context.Background(), testUserID, 3, 10)
	require.NoError(t, err)

	assert.Equal(t, 42, resp.Total)
	assert.Equal(t, 3, resp.Page)
	assert.Equal(t, 10, resp.Limit)
	require.Len(t, resp.Entries, 2)
	assert.Equal(t, "a", resp.Entries[0].ID)

	assert.Equal(t, 10, h.store.gotLimit)
	assert.Equal(t, 20, h.store.gotOffset)
}

func TestGetHistory_DefaultsPaging(t *testing.T) {
	h := newTestService()

	resp, err := h.svc.GetHistory(context.Background(), testUserID, 0, 0)
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Page)
	assert.Equal(t, 20, resp.Limit)
	assert.Equal(t, 0, h.store.gotOffset)
}

func TestClearHistory(t *testing.T) {
	h := newTestService()

	require.NoError(t, h.svc.ClearHistory(context.Background(), testUserID))
	assert.True(t, h.store.cleared)
}

func TestDrainActions(t *testing.T) {
	h := newTestService()
	h.queue.drained = []entity.DeviceAction{
		{ID: "a1", Type: entity.DeviceActionCall},
		{ID: "a2", Type: entity.DeviceActionAlarm},
	}

	resp, err := h.svc.DrainActions(context.Background(), testUserID)
	require.NoError(t, err)

	require.Len(t, resp.Actions, 2)
	assert.Equal(t, "a1", resp.Actions[0].ID)
}

func TestSyncContacts(t *testing.T) {
	h := newTestService()

	err := h.svc.SyncContacts(context.Background(), testUserID, assistant.SyncContactsRequest{
		Contacts: []assistant.ContactPayload{
			{Name: "Mom", Number: "0812 3456"},
			{Name: "John Smith", Number: "555 0001"},
		},
	})
	require.NoError(t, err)

	assert.True(t, h.store.committed)
	require.Len(t, h.store.replaced, 2)
	assert.Equal(t, "Mom", h.store.replaced[0].Name)
	assert.Equal(t, testUserID, h.store.replaced[0].UserID)
	assert.NotEmpty(t, h.store.replaced[0].ID)
}

func TestTestNLP(t *testing.T) {
	h := newTestService()
	h.classifier.scored = scoredAs(entity.CategoryAlarm)

	resp, err := h.svc.TestNLP(context.Background(), assistant.NLPTestRequest{
		Text: "set an alarm for tomorrow at 6:30 PM",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.CategoryAlarm, resp.Category)
	assert.InDelta(t, 0.9, resp.Confidence, 1e-9)
	assert.True(t, resp.GatePassed)
	assert.False(t, resp.Negative)
	assert.Equal(t, "tomorrow", resp.Slots.Day)
	assert.NotEmpty(t, resp.Slots.Time)
}

func TestTestNLP_GateFailureResolvesToOther(t *testing.T) {
	h := newTestService()
	h.classifier.scored = scoredAs(entity.CategoryCall)

	resp, err := h.svc.TestNLP(context.Background(), assistant.NLPTestRequest{
		Text: "I want pizza",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.CategoryOther, resp.Category)
	assert.False(t, resp.GatePassed)
}
