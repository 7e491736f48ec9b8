package units_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chevoisiatesalvati/guess-what/internal/units"
)

func wei(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic(s)
	}
	return v
}

func TestParseEther(t *testing.T) {
	cases := map[string]string{
		"0.001":  "1000000000000000",
		"1":      "1000000000000000000",
		" 1.5 ":  "1500000000000000000",
		"0.0001": "100000000000000",
		"0":      "0",
		"0.000000000000000001": "1",
	}
	for in, want := range cases {
		got, err := units.ParseEther(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got.String(), in)
	}

	_, err := units.ParseEther("-1")
	assert.ErrorIs(t, err, units.ErrNegativeAmount)

	_, err = units.ParseEther("0.0000000000000000001")
	assert.ErrorIs(t, err, units.ErrTooPrecise)

	_, err = units.ParseEther("abc")
	assert.Error(t, err)
}

func TestFormatEther(t *testing.T) {
	assert.Equal(t, "0.001", units.FormatEther(wei("1000000000000000")))
	assert.Equal(t, "1.5", units.FormatEther(wei("1500000000000000000")))
	assert.Equal(t, "0", units.FormatEther(nil))
	assert.Equal(t, "0.000100", units.FormatEtherFixed(wei("100000000000000"), 6))
}

func TestNetOfFee(t *testing.T) {
	prize := wei("1000000000000000000")

	assert.Equal(t, "950000000000000000", units.NetOfFee(prize, 5).String())
	assert.Equal(t, "900000000000000000", units.NetOfFee(prize, 10).String())
	assert.Equal(t, prize.String(), units.NetOfFee(prize, 0).String())
	assert.Equal(t, "0", units.NetOfFee(prize, 100).String())
	assert.Equal(t, "1000000000000000000", prize.String())
}

func TestMulUint(t *testing.T) {
	assert.Equal(t, "1000000000000000", units.MulUint(wei("100000000000000"), 10).String())
}
