package domain

import (
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func TestDaysInactive_JSON(t *testing.T) {
	tests := []struct {
		name    string
		value   DaysInactive
		encoded string
	}{
		{name: "Com dias", value: DaysInactive{Days: 1340, Valid: true}, encoded: `1340`},
		{name: "Zero dias", value: DaysInactive{Days: 0, Valid: true}, encoded: `0`},
		{name: "Sem data", value: DaysInactive{}, encoded: `"-"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := json.Marshal(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.encoded, string(out))

			var decoded DaysInactive
			require.NoError(t, json.Unmarshal(out, &decoded))
			assert.Equal(t, tt.value, decoded)
		})
	}
}

func TestDaysInactive_UnmarshalJSON(t *testing.T) {
	var d DaysInactive
	require.NoError(t, json.Unmarshal([]byte(`"42"`), &d))
	assert.Equal(t, DaysInactive{Days: 42, Valid: true}, d)

	var empty DaysInactive
	require.NoError(t, empty.UnmarshalJSON([]byte(`null`)))
	assert.Equal(t, DaysInactive{}, empty)

	assert.Error(t, json.Unmarshal([]byte(`"abc"`), &d))
	assert.Error(t, json.Unmarshal([]byte(`true`), &d))
}

func TestFilterResult_IdaEVolta(t *testing.T) {
	result := FilterResult{
		Total:             2,
		FilterDescription: "inativos há 20+ dias (incluindo sem data)",
		Customers: []OutputRecord{
			{Code: "B", Name: "Cliente B", LastSale: NeverPurchasedLabel, DaysInactive: DaysInactive{}, Total: "R$ 0,00"},
			{Code: "C", Name: "Cliente C", LastSale: "01/06/2020", DaysInactive: DaysInactive{Days: 1340, Valid: true}, Total: "R$ 50,00"},
		},
	}

	out, err := json.Marshal(result)
	require.NoError(t, err)

	var decoded FilterResult
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, result, decoded)
}
