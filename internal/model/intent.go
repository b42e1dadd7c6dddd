package model

// Intent classifies a user message and drives which enrichment path runs.
type Intent string

const (
	IntentStatus    Intent = "status"
	IntentTracking  Intent = "tracking"
	IntentReturn    Intent = "return"
	IntentCancel    Intent = "cancel"
	IntentRefund    Intent = "refund"
	IntentOther     Intent = "other"
	IntentTicketing Intent = "ticketing"
)

// IntentDefault is the safe intent used when classification fails or
// returns something outside the closed set.
const IntentDefault = IntentOther

var validIntents = map[Intent]bool{
	IntentStatus:    true,
	IntentTracking:  true,
	IntentReturn:    true,
	IntentCancel:    true,
	IntentRefund:    true,
	IntentOther:     true,
	IntentTicketing: true,
}

func ParseIntent(value string) (Intent, bool) {
	intent := Intent(value)
	if validIntents[intent] {
		return intent, true
	}
	return IntentDefault, false
}

// IsOrderRelated reports whether the intent routes to the order lookup.
func (i Intent) IsOrderRelated() bool {
	switch i {
	case IntentStatus, IntentTracking, IntentReturn, IntentCancel, IntentRefund:
		return true
	}
	return false
}
