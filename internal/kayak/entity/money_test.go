package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMoney(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Money
		wantErr bool
	}{
		{name: "plain amount", input: "123.45", want: 12345},
		{name: "zero", input: "0.00", want: 0},
		{name: "zero cents", input: "250.00", want: 25000},
		{name: "single cent", input: "0.01", want: 1},
		{name: "no decimals", input: "123", wantErr: true},
		{name: "one decimal", input: "123.4", wantErr: true},
		{name: "three decimals", input: "123.456", wantErr: true},
		{name: "negative", input: "-1.00", wantErr: true},
		{name: "signed positive", input: "+1.00", wantErr: true},
		{name: "signed fraction plus", input: "10.+5", wantErr: true},
		{name: "signed fraction minus", input: "10.-5", wantErr: true},
		{name: "space in fraction", input: "10. 5", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "missing whole part", input: ".45", wantErr: true},
		{name: "not a number", input: "abc.de", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseMoney(tc.input)
			if tc.wantErr {
				require.ErrorIs(t, err, ErrMoneyFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestMoneyString(t *testing.T) {
	assert.Equal(t, "123.45", Money(12345).String())
	assert.Equal(t, "0.00", Money(0).String())
	assert.Equal(t, "0.05", Money(5).String())
	assert.Equal(t, "150.00", Money(15000).String())
}

func TestMoneyRoundTrip(t *testing.T) {
	for _, value := range []string{"0.00", "0.99", "100.00", "9999.01"} {
		parsed, err := ParseMoney(value)
		require.NoError(t, err)
		assert.Equal(t, value, parsed.String())
	}
}
