package model

import "testing"

func TestTransitionStatus(t *testing.T) {
	cases := []struct {
		from    ConversationStatus
		to      ConversationStatus
		allowed bool
	}{
		{ConversationStatusOpen, ConversationStatusTicket, true},
		{ConversationStatusOpen, ConversationStatusHelpful, true},
		{ConversationStatusOpen, ConversationStatusClosed, true},
		{ConversationStatusTicket, ConversationStatusOpen, false},
		{ConversationStatusTicket, ConversationStatusHelpful, true},
		{ConversationStatusTicket, ConversationStatusClosed, true},
		{ConversationStatusHelpful, ConversationStatusOpen, false},
		{ConversationStatusHelpful, ConversationStatusTicket, false},
		{ConversationStatusClosed, ConversationStatusTicket, false},
		{ConversationStatusTicket, ConversationStatusTicket, true},
	}

	for _, tc := range cases {
		c := NewConversation("conv")
		c.Status = tc.from
		got := c.TransitionStatus(tc.to)
		if got != tc.allowed {
			t.Errorf("TransitionStatus(%s -> %s) = %t, want %t", tc.from, tc.to, got, tc.allowed)
		}
		if tc.allowed && c.Status != tc.to {
			t.Errorf("status after allowed transition %s -> %s is %s", tc.from, tc.to, c.Status)
		}
		if !tc.allowed && c.Status != tc.from {
			t.Errorf("status changed on refused transition %s -> %s: %s", tc.from, tc.to, c.Status)
		}
	}
}

func TestAppendClampsTimestamps(t *testing.T) {
	c := NewConversation("conv")
	c.AppendUserMessage("first", 1000)
	c.AppendBotMessage(StructuredResponse{Text: "reply"}, IntentOther, 500)
	c.AppendUserMessage("second", 2000)

	if got := c.Messages[1].Timestamp; got != 1000 {
		t.Fatalf("out-of-order timestamp must be clamped to 1000, got %d", got)
	}
	if got := c.Messages[2].Timestamp; got != 2000 {
		t.Fatalf("later timestamp must be kept, got %d", got)
	}
}

func TestFirstUserMessage(t *testing.T) {
	c := NewConversation("conv")
	if _, ok := c.FirstUserMessage(); ok {
		t.Fatal("empty conversation has no user message")
	}

	c.AppendBotMessage(StructuredResponse{Text: "welcome"}, IntentOther, 1)
	c.AppendUserMessage("I need help with my order", 2)
	c.AppendUserMessage("hello?", 3)

	got, ok := c.FirstUserMessage()
	if !ok || got != "I need help with my order" {
		t.Fatalf("FirstUserMessage = (%q, %t)", got, ok)
	}
}

func TestParseIntent(t *testing.T) {
	if intent, ok := ParseIntent("tracking"); !ok || intent != IntentTracking {
		t.Fatalf("ParseIntent(tracking) = (%s, %t)", intent, ok)
	}
	if intent, ok := ParseIntent("nonsense"); ok || intent != IntentDefault {
		t.Fatalf("ParseIntent(nonsense) = (%s, %t)", intent, ok)
	}
}
