package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractAmountLabelled(t *testing.T) {
	amount, ok := ExtractAmount("Total Debit Amount: RM123.45")

	require.True(t, ok)
	assert.Equal(t, "RM123.45", amount)
}

func TestExtractAmountWithThousandsSeparator(t *testing.T) {
	amount, ok := ExtractAmount("Amount: RM1,250.00\nRef 8817")

	require.True(t, ok)
	assert.Equal(t, "RM1250.00", amount)
}

func TestExtractAmountBareCurrencyMarker(t *testing.T) {
	amount, ok := ExtractAmount("Transfer successful\nMYR 50.00 sent")

	require.True(t, ok)
	assert.Equal(t, "RM50.00", amount)
}

func TestExtractAmountNormalizesDecimals(t *testing.T) {
	amount, ok := ExtractAmount("Amount: RM7.5")

	require.True(t, ok)
	assert.Equal(t, "RM7.50", amount)
}

func TestExtractAmountZeroIsNotAnAmount(t *testing.T) {
	_, ok := ExtractAmount("Balance: RM0.00")

	assert.False(t, ok)
}

func TestExtractAmountAbsent(t *testing.T) {
	_, ok := ExtractAmount("no money mentioned here")

	assert.False(t, ok)
}
