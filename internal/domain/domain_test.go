package domain

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckTransition(t *testing.T) {
	tests := []struct {
		from    OrderStatus
		to      OrderStatus
		allowed bool
	}{
		{StatusInCart, StatusPayed, true},
		{StatusPending, StatusCancelled, true},
		{StatusPayed, StatusConfirmed, true},
		{StatusConfirmed, StatusPreparing, true},
		{StatusPreparing, StatusReady, true},
		{StatusReady, StatusCompleted, true},
		{StatusPreparing, StatusCancelled, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusCancelled, StatusPending, false},
	}

	for _, testCase := range tests {
		t.Run(string(testCase.from)+"_"+string(testCase.to), func(t *testing.T) {
			assert.Equal(t, testCase.allowed, CanTransition(testCase.from, testCase.to))
			err := CheckTransition(testCase.from, testCase.to)
			if testCase.allowed {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrInvalidState)
		})
	}
}

func TestCheckTransition_Messages(t *testing.T) {
	assert.EqualError(t, CheckTransition(StatusCompleted, StatusCancelled),
		"order status COMPLETED is terminal, cannot move to CANCELLED")
	assert.EqualError(t, CheckTransition(StatusPreparing, StatusCancelled),
		"invalid transition PREPARING -> CANCELLED, allowed: READY")
}

func TestOptionalJSON(t *testing.T) {
	type profile struct {
		Allergies Optional[[]string] `json:"allergies"`
	}

	b, err := json.Marshal(profile{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"allergies":null}`, string(b))

	b, err = json.Marshal(profile{Allergies: Some([]string{})})
	require.NoError(t, err)
	assert.JSONEq(t, `{"allergies":[]}`, string(b))

	var decoded profile
	require.NoError(t, json.Unmarshal([]byte(`{"allergies":null}`), &decoded))
	assert.False(t, decoded.Allergies.IsSet())

	require.NoError(t, json.Unmarshal([]byte(`{"allergies":["우유"]}`), &decoded))
	assert.Equal(t, []string{"우유"}, decoded.Allergies.OrElse(nil))

	require.NoError(t, json.Unmarshal([]byte(`{}`), &decoded))
	assert.True(t, decoded.Allergies.IsSet(), "absent field leaves the previous value")
}

func TestSumLineItems(t *testing.T) {
	items := []LineItem{
		{MenuID: "m1", Quantity: 2, UnitPrice: decimal.RequireFromString("4500.50")},
		{MenuID: "m2", Quantity: 1, UnitPrice: decimal.NewFromInt(8000)},
	}
	assert.True(t, decimal.RequireFromString("17001").Equal(SumLineItems(items)))
	assert.True(t, SumLineItems(nil).IsZero())

	cart := &Cart{Items: items}
	cart.Recalculate()
	assert.True(t, cart.TotalPrice.Equal(SumLineItems(items)))
	assert.False(t, cart.IsEmpty())
	assert.True(t, (*Cart)(nil).IsEmpty())
}

func TestOrderEvent(t *testing.T) {
	order := &Order{
		ID:      "o1",
		UserID:  "u1",
		TableID: "t1",
		Status:  StatusPayed,
		Items:   []LineItem{{MenuID: "m1", Quantity: 3}},
	}

	msg := OrderEvent(EventOrderPaid, order)
	assert.Equal(t, "o1", msg.Key())
	assert.Equal(t, []EventItem{{MenuID: "m1", Quantity: 3}}, msg.Items)
	assert.False(t, msg.Timestamp.IsZero())

	rating := KafkaMessage{Type: EventNewRating, OrderID: "ignored", MenuID: "m9"}
	assert.Equal(t, "m9", rating.Key())
}

func TestDietaryProfile(t *testing.T) {
	var missing *User
	assert.False(t, missing.DietaryProfile().Allergies.IsSet())

	user := &User{ID: "u1", Allergies: Some([]string{"땅콩"})}
	allergies, ok := user.DietaryProfile().Allergies.Get()
	assert.True(t, ok)
	assert.Equal(t, []string{"땅콩"}, allergies)
}

func TestChatMessageContent(t *testing.T) {
	assert.Equal(t, "질문", ChatMessage{Role: ChatRoleUser, Message: "질문", Response: "x"}.Content())
	assert.Equal(t, "답변", ChatMessage{Role: ChatRoleAssistant, Message: "질문", Response: "답변"}.Content())
}
