package settlement

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/somesh5100/split-app-DevDynamics-Assesment/internal/expense/split"
)

func TestHandlerGetSummary(t *testing.T) {
	snap := &Snapshot{
		People: []Person{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}},
		Expenses: []ExpenseRow{
			{ID: 1, Amount: 80, PaidBy: 1, Splits: equalSplits(1, 2)},
		},
	}
	handler := NewHandler(newTestService(snap))

	request := httptest.NewRequest(http.MethodGet, "/settlements", nil)
	recorder := httptest.NewRecorder()
	handler.GetSummary(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)

	var body struct {
		Success bool            `json:"success"`
		Data    SummaryResponse `json:"data"`
	}
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&body))
	assert.True(t, body.Success)
	require.Len(t, body.Data.Summary, 2)
	require.Len(t, body.Data.Settlements, 1)
	assert.Equal(t, Transfer{From: "B", To: "A", Amount: 40}, body.Data.Settlements[0])
}

func TestHandlerGetBalancesRejectsInconsistentData(t *testing.T) {
	snap := &Snapshot{
		People: []Person{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}},
		Expenses: []ExpenseRow{
			{ID: 5, Amount: 100, PaidBy: 1, Splits: []SplitRow{
				{PersonID: 1, SplitType: split.SplitTypeExact, Value: 80},
				{PersonID: 2, SplitType: split.SplitTypeExact, Value: 80},
			}},
		},
	}
	handler := NewHandler(newTestService(snap))

	request := httptest.NewRequest(http.MethodGet, "/settlements/balances", nil)
	recorder := httptest.NewRecorder()
	handler.GetBalances(recorder, request)

	// inconsistent splits are the client's data problem, not a server fault
	require.Equal(t, http.StatusBadRequest, recorder.Code)

	var body struct {
		Success bool `json:"success"`
		Error   struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&body))
	assert.False(t, body.Success)
	assert.Equal(t, "BAD_REQUEST", body.Error.Code)
	assert.Contains(t, body.Error.Message, "expense 5")
}
