package tradeledger

import (
	"encoding/json"
	"math"
	"testing"
)

func TestMoney_String(t *testing.T) {
	tests := []struct {
		m          Money
		want       string
		wantSigned string
	}{
		{USD(1234.5), "$1,234.50", "+$1,234.50"},
		{USD(-40), "-$40.00", "-$40.00"},
		{USD(0.005), "$0.01", "+$0.01"},
		{USD(0), "$0.00", "-"},
		{M(1500, "EUR"), "1.500,00 €", "+1.500,00 €"},
		{M(250, "JPY"), "¥250", "+¥250"},
	}
	for _, tt := range tests {
		if got := tt.m.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
		if got := tt.m.SignedString(); got != tt.wantSigned {
			t.Errorf("SignedString() = %q, want %q", got, tt.wantSigned)
		}
	}
}

func TestMoney_Arithmetic(t *testing.T) {
	if got := USD(10).DivInt(0); !got.IsZero() {
		t.Errorf("DivInt(0) = %v, want 0", got)
	}
	if got := USD(10).Ratio(USD(0)); got != 0 {
		t.Errorf("Ratio(0) = %v, want 0", got)
	}
	if got := (Money{}).Add(USD(5)); got.Currency() != "USD" {
		t.Errorf("currency of a zero value sum = %q, want USD", got.Currency())
	}
	defer func() {
		if recover() == nil {
			t.Errorf("adding different currencies should panic")
		}
	}()
	USD(1).Add(M(1, "EUR"))
}

func TestMoney_MarshalJSON(t *testing.T) {
	got, err := json.Marshal(struct{ P Money }{USD(-12.34)})
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	if want := `{"P":-12.34}`; string(got) != want {
		t.Errorf("json.Marshal() = %s, want %s", got, want)
	}
}

func TestMoneyFromFloat(t *testing.T) {
	for _, f := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if _, ok := moneyFromFloat(f); ok {
			t.Errorf("moneyFromFloat(%v) ok = true, want false", f)
		}
	}
}
