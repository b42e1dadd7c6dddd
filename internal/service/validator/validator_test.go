package validator

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type fakeCompleter struct {
	response string
	err      error
	calls    int
}

func (f *fakeCompleter) Complete(ctx context.Context, system, user string, maxTokens int) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func TestCheckBasicRules(t *testing.T) {
	cases := []struct {
		name  string
		text  string
		valid bool
	}{
		{"empty", "", false},
		{"whitespace only", "   \n", false},
		{"too short", "short", false},
		{"too long", strings.Repeat("a", 1001), false},
		{"reasonable", "Your order has shipped and should arrive soon.", true},
	}

	for _, tc := range cases {
		result := CheckBasicRules(tc.text)
		if result.IsValid != tc.valid {
			t.Errorf("%s: CheckBasicRules = %t, want %t (reason %q)", tc.name, result.IsValid, tc.valid, result.Reason)
		}
	}
}

func TestValidateAcceptsValidVerdict(t *testing.T) {
	ai := &fakeCompleter{response: "VALID"}
	service := New(ai)

	result, err := service.Validate(context.Background(), "Your order has shipped and should arrive soon.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.IsValid {
		t.Fatalf("expected valid, got %+v", result)
	}
}

func TestValidateParsesInvalidReason(t *testing.T) {
	ai := &fakeCompleter{response: "INVALID: unprofessional tone"}
	service := New(ai)

	result, err := service.Validate(context.Background(), "Your order has shipped and should arrive soon.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.IsValid {
		t.Fatal("expected invalid")
	}
	if result.Reason != "unprofessional tone" {
		t.Fatalf("unexpected reason: %q", result.Reason)
	}
}

func TestValidateUnparseableVerdict(t *testing.T) {
	ai := &fakeCompleter{response: "maybe fine"}
	service := New(ai)

	result, err := service.Validate(context.Background(), "Your order has shipped and should arrive soon.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.IsValid {
		t.Fatal("unparseable verdict must be treated as invalid")
	}
	if result.Reason != "Response does not meet validation criteria" {
		t.Fatalf("unexpected reason: %q", result.Reason)
	}
}

func TestValidateSkipsModelWhenBasicRulesFail(t *testing.T) {
	ai := &fakeCompleter{response: "VALID"}
	service := New(ai)

	result, err := service.Validate(context.Background(), "short")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.IsValid {
		t.Fatal("expected invalid")
	}
	if ai.calls != 0 {
		t.Fatalf("model must not be called when basic rules fail, got %d calls", ai.calls)
	}
}

func TestValidatePropagatesModelError(t *testing.T) {
	ai := &fakeCompleter{err: errors.New("model unavailable")}
	service := New(ai)

	if _, err := service.Validate(context.Background(), "Your order has shipped and should arrive soon."); err == nil {
		t.Fatal("expected error")
	}
}
