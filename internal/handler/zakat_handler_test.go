package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anyulbade/zakat-calculator/internal/dto"
)

func TestZakatHandler_Calculate(t *testing.T) {
	router := setupRouter(t, &stubAdapter{})

	t.Run("eligible", func(t *testing.T) {
		body := `{"gold_weight":10,"rate_gold_user":6000,"silver_weight":0,"silver_value":0,"cash":50000,"liabilities":0,"rate_silver":80}`
		w := postJSON(router, "/calculate", body)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get(NisabDegradedHeader))

		var resp dto.EligibilityResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, dto.EligibilityResponse{
			NetWorth:        110000,
			ZakatPayable:    2750,
			IsEligible:      true,
			NisabThreshold:  47600,
			GoldValueCalc:   60000,
			SilverValueCalc: 0,
		}, resp)
	})

	t.Run("silver rate missing", func(t *testing.T) {
		body := `{"gold_weight":"10","rate_gold_user":"6000","cash":"50000","rate_silver":""}`
		w := postJSON(router, "/api/v1/zakat", body)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "true", w.Header().Get(NisabDegradedHeader))

		var resp dto.EligibilityResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 0.0, resp.NisabThreshold)
		assert.True(t, resp.IsEligible)
		assert.Equal(t, 2750.0, resp.ZakatPayable)
	})

	t.Run("garbage fields become zero", func(t *testing.T) {
		body := `{"gold_weight":"lots","cash":null,"investments":[1],"business":{"a":1},"liabilities":-100,"rate_silver":"eighty"}`
		w := postJSON(router, "/calculate", body)
		assert.Equal(t, http.StatusOK, w.Code)

		var resp dto.EligibilityResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, dto.EligibilityResponse{}, resp)
	})

	t.Run("field names are preserved", func(t *testing.T) {
		w := postJSON(router, "/calculate", `{}`)
		var raw map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
		assert.ElementsMatch(t, []string{
			"net_worth", "zakat_payable", "is_eligible",
			"nisab_threshold", "gold_value_calc", "silver_value_calc",
		}, keys(raw))
	})
}

func TestMalformedJSON(t *testing.T) {
	router := setupRouter(t, &stubAdapter{})

	cases := []struct {
		name string
		body string
	}{
		{"truncated JSON", `{"cash":100`},
		{"just array", `[]`},
		{"random string", `hello world`},
		{"bare number", `42`},
	}

	for _, path := range []string{"/calculate", "/get_initial_rates"} {
		for _, tc := range cases {
			t.Run(path+" "+tc.name, func(t *testing.T) {
				w := postJSON(router, path, tc.body)
				assert.Equal(t, http.StatusBadRequest, w.Code,
					"malformed JSON should return 400, got %d for %s", w.Code, tc.name)

				var resp map[string]string
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, "invalid request body", resp["error"])
			})
		}
	}
}
