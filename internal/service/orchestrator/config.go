package orchestrator

import (
	"strconv"

	"support-chat-backend/internal/env"
)

const (
	// DefaultOrderNumberMinDigits is the minimum digit-run length the
	// order-number pattern accepts. The source history used both 6 and 9;
	// 9 is the latest value, and the knob exists so a storefront with
	// shorter increment ids can correct it.
	DefaultOrderNumberMinDigits = 9

	// DefaultEscalationMessageLimit is the message count past which a
	// conversation is routed straight to ticketing.
	DefaultEscalationMessageLimit = 8
)

type Config struct {
	OrderNumberMinDigits   int
	EscalationMessageLimit int
}

func DefaultConfig() Config {
	return Config{
		OrderNumberMinDigits:   DefaultOrderNumberMinDigits,
		EscalationMessageLimit: DefaultEscalationMessageLimit,
	}
}

func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	if v, err := strconv.Atoi(env.Get(env.OrderNumberMinDigits)); err == nil && v > 0 {
		cfg.OrderNumberMinDigits = v
	}
	if v, err := strconv.Atoi(env.Get(env.EscalationMessageLimit)); err == nil && v > 0 {
		cfg.EscalationMessageLimit = v
	}
	return cfg
}

func (c Config) withDefaults() Config {
	if c.OrderNumberMinDigits <= 0 {
		c.OrderNumberMinDigits = DefaultOrderNumberMinDigits
	}
	if c.EscalationMessageLimit <= 0 {
		c.EscalationMessageLimit = DefaultEscalationMessageLimit
	}
	return c
}
