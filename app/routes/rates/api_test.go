package rates

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleFeed = `<?xml version="1.0" encoding="windows-1251"?>
<ValCurs Date="05.03.2024" name="Foreign Currency Market">
<Valute ID="R01235">
<NumCode>840</NumCode>
<CharCode>USD</CharCode>
<Nominal>1</Nominal>
<Name>USD</Name>
<Value>91,3336</Value>
</Valute>
<Valute ID="R01375">
<NumCode>156</NumCode>
<CharCode>CNY</CharCode>
<Nominal>10</Nominal>
<Name>CNY</Name>
<Value>126,8861</Value>
</Valute>
</ValCurs>`

func TestParseUSDRate(t *testing.T) {
	rate, date, err := parseUSDRate(strings.NewReader(sampleFeed))
	require.NoError(t, err)
	assert.InDelta(t, 91.3336, rate, 1e-9)
	assert.Equal(t, "05.03.2024", date)
}

func TestParseUSDRate_NominalDivision(t *testing.T) {
	feed := strings.Replace(sampleFeed, "<Nominal>1</Nominal>", "<Nominal>100</Nominal>", 1)
	rate, _, err := parseUSDRate(strings.NewReader(feed))
	require.NoError(t, err)
	assert.InDelta(t, 0.913336, rate, 1e-9)
}

func TestParseUSDRate_MissingUSD(t *testing.T) {
	feed := strings.Replace(sampleFeed, "USD", "EUR", 2)
	_, _, err := parseUSDRate(strings.NewReader(feed))
	assert.ErrorIs(t, err, errUSDNotFound)
}

func TestParseUSDRate_Garbage(t *testing.T) {
	_, _, err := parseUSDRate(strings.NewReader("not xml at all"))
	assert.Error(t, err)
}
