package handler

import (
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtlprog/goodwill/internal/handler/dto"
)

func TestRespondJSON(t *testing.T) {
	rr := httptest.NewRecorder()

	respondJSON(rr, http.StatusCreated, map[string]float64{"value": 1.5})

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"value":1.5}`, rr.Body.String())
}

func TestRespondJSON_UnencodableValue(t *testing.T) {
	rr := httptest.NewRecorder()

	respondJSON(rr, http.StatusCreated, map[string]float64{"value": math.Inf(1)})

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	var errResp dto.ErrorResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&errResp))
	assert.Equal(t, "INTERNAL_ERROR", errResp.Error.Code)
}
