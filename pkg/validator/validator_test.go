package validator

import (
	"testing"

	"github.com/shopspring/decimal"
)

type moneyFixture struct {
	NonNegative decimal.Decimal `validate:"dgte0"`
	Positive    decimal.Decimal `validate:"dgt0"`
}

func TestDecimalTags(t *testing.T) {
	cases := []struct {
		name        string
		nonNegative string
		positive    string
		wantFields  int
	}{
		{"both valid", "0", "0.01", 0},
		{"zero fails dgt0", "1.50", "0", 1},
		{"negative fails dgte0", "-0.01", "1", 1},
		{"both invalid", "-1", "-1", 2},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fixture := moneyFixture{
				NonNegative: decimal.RequireFromString(tc.nonNegative),
				Positive:    decimal.RequireFromString(tc.positive),
			}
			errs := ValidateStruct(fixture)
			if len(errs) != tc.wantFields {
				t.Fatalf("got %d field errors, want %d: %+v", len(errs), tc.wantFields, errs)
			}
		})
	}
}

func TestFieldErrorShape(t *testing.T) {
	fixture := moneyFixture{
		NonNegative: decimal.NewFromInt(-1),
		Positive:    decimal.NewFromInt(1),
	}
	errs := ValidateStruct(fixture)
	if len(errs) != 1 {
		t.Fatalf("got %d field errors, want 1", len(errs))
	}
	if errs[0].FailedField != "moneyFixture.NonNegative" {
		t.Fatalf("field = %q", errs[0].FailedField)
	}
	if errs[0].Tag != "dgte0" {
		t.Fatalf("tag = %q", errs[0].Tag)
	}
}
