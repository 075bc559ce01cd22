package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/mtlprog/goodwill/internal/database"
	"github.com/mtlprog/goodwill/internal/domain"
	"github.com/mtlprog/goodwill/internal/handler"
	"github.com/mtlprog/goodwill/internal/handler/dto"
	"github.com/mtlprog/goodwill/internal/service"
)

type fakeDB struct {
	status  database.Status
	pingErr error
}

func (f *fakeDB) Status() database.Status        { return f.status }
func (f *fakeDB) Ping(ctx context.Context) error { return f.pingErr }

// memoryStore keeps valuations in a map. When err is set every call fails with it.
type memoryStore struct {
	mu         sync.Mutex
	valuations map[string]*domain.Valuation
	err        error
}

func (m *memoryStore) Create(_ context.Context, v *domain.Valuation) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.valuations[v.ID] = v
	return nil
}

func (m *memoryStore) GetByID(_ context.Context, id string) (*domain.Valuation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	v, ok := m.valuations[id]
	if !ok {
		return nil, domain.ErrValuationNotFound
	}
	return v, nil
}

func (m *memoryStore) List(_ context.Context, filter domain.ValuationFilter) ([]*domain.Valuation, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, 0, m.err
	}

	all := make([]*domain.Valuation, 0, len(m.valuations))
	for _, v := range m.valuations {
		if filter.Kind == nil || v.Kind == *filter.Kind {
			all = append(all, v)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })

	start := min(filter.Offset, len(all))
	end := min(start+filter.Limit, len(all))
	return all[start:end], int64(len(all)), nil
}

func (m *memoryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	if _, ok := m.valuations[id]; !ok {
		return domain.ErrValuationNotFound
	}
	delete(m.valuations, id)
	return nil
}

type HandlerTestSuite struct {
	suite.Suite
	db     *fakeDB
	store  *memoryStore
	router chi.Router
}

func (s *HandlerTestSuite) SetupTest() {
	s.db = &fakeDB{status: database.StatusConnected}
	s.store = &memoryStore{valuations: make(map[string]*domain.Valuation)}

	s.router = chi.NewRouter()
	handler.New(s.db, service.NewValuationService(s.store)).RegisterRoutes(s.router)
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

// Helper to make a request against the router
func (s *HandlerTestSuite) makeRequest(method, path string, body interface{}) *httptest.ResponseRecorder {
	var bodyReader *bytes.Reader
	if body != nil {
		bodyBytes, _ := json.Marshal(body)
		bodyReader = bytes.NewReader(bodyBytes)
	} else {
		bodyReader = bytes.NewReader([]byte{})
	}

	req := httptest.NewRequest(method, path, bodyReader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	return w
}

func (s *HandlerTestSuite) decodeError(w *httptest.ResponseRecorder) dto.ErrorResponse {
	var errResp dto.ErrorResponse
	s.Require().NoError(json.NewDecoder(w.Body).Decode(&errResp))
	return errResp
}

func (s *HandlerTestSuite) createInvestment() dto.ValuationResponse {
	w := s.makeRequest(http.MethodPost, "/api/valuations/investment", map[string]any{
		"title":              "Retirement",
		"mode":               "future_value",
		"initial_investment": 1000,
		"contribution":       100,
		"period":             1,
	})
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	var resp dto.ValuationResponse
	s.Require().NoError(json.NewDecoder(w.Body).Decode(&resp))
	return resp
}

func (s *HandlerTestSuite) TestHealthz() {
	s.db.status = database.StatusFailed

	w := s.makeRequest(http.MethodGet, "/healthz", nil)

	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`{"status":"ok"}`, w.Body.String())
}

func (s *HandlerTestSuite) TestReadyz() {
	tests := []struct {
		name     string
		status   database.Status
		pingErr  error
		wantCode int
		wantBody string
	}{
		{"connected", database.StatusConnected, nil, http.StatusOK, `{"status":"ok","database":"connected"}`},
		{"connecting", database.StatusConnecting, nil, http.StatusServiceUnavailable, `{"status":"unavailable","database":"connecting"}`},
		{"failed", database.StatusFailed, nil, http.StatusServiceUnavailable, `{"status":"unavailable","database":"failed"}`},
		{"ping fails", database.StatusConnected, errors.New("no primary"), http.StatusServiceUnavailable, `{"status":"unavailable","database":"connected"}`},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.db.status = tt.status
			s.db.pingErr = tt.pingErr

			w := s.makeRequest(http.MethodGet, "/readyz", nil)

			s.Equal(tt.wantCode, w.Code)
			s.JSONEq(tt.wantBody, w.Body.String())
		})
	}
}

func (s *HandlerTestSuite) TestMetricsEndpoint() {
	w := s.makeRequest(http.MethodGet, "/metrics", nil)

	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), "goodwill_database_up")
}

func (s *HandlerTestSuite) TestCreateInvestment() {
	resp := s.createInvestment()

	s.NoError(uuid.Validate(resp.ID))
	s.Equal("investment", resp.Kind)
	s.Equal("Retirement", resp.Title)
	s.Nil(resp.Insurance)
	s.Require().NotNil(resp.Investment)
	s.InDelta(2200, resp.Investment.Result.FutureValue, 1e-6)
	s.Len(resp.Investment.Result.Schedule, 2)
}

func (s *HandlerTestSuite) TestCreateInvestment_ValidationError() {
	w := s.makeRequest(http.MethodPost, "/api/valuations/investment", map[string]any{
		"mode":         "future_value",
		"contribution": -1,
	})

	s.Equal(http.StatusUnprocessableEntity, w.Code)
	errResp := s.decodeError(w)
	s.Equal("VALIDATION_ERROR", errResp.Error.Code)
	s.Contains(errResp.Error.Message, "contribution")
}

func (s *HandlerTestSuite) TestCreateInvestment_WrongFieldType() {
	w := s.makeRequest(http.MethodPost, "/api/valuations/investment", map[string]any{
		"mode":   "future_value",
		"period": "ten",
	})

	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal("INVALID_JSON", s.decodeError(w).Error.Code)
}

func (s *HandlerTestSuite) TestCreateInsurance() {
	w := s.makeRequest(http.MethodPost, "/api/valuations/insurance", map[string]any{
		"age":              40,
		"annual_income":    60_000_000,
		"monthly_expenses": 3_000_000,
		"children_ages":    []int{5},
		"assets":           map[string]any{"cash": 30_000_000},
	})
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	var resp dto.ValuationResponse
	s.Require().NoError(json.NewDecoder(w.Body).Decode(&resp))
	s.Equal("insurance", resp.Kind)
	s.Require().NotNil(resp.Insurance)
	s.Len(resp.Insurance.Result.Coverage, 3)
	s.InDelta(100_000_000, resp.Insurance.Result.EducationCosts, 1e-6)
}

func (s *HandlerTestSuite) TestCreateInsurance_ValidationError() {
	w := s.makeRequest(http.MethodPost, "/api/valuations/insurance", map[string]any{
		"age":              18,
		"monthly_expenses": 1000,
	})

	s.Equal(http.StatusUnprocessableEntity, w.Code)
	s.Equal("VALIDATION_ERROR", s.decodeError(w).Error.Code)
}

func (s *HandlerTestSuite) TestCreate_DatabaseUnavailable() {
	s.store.err = domain.ErrDatabaseUnavailable

	w := s.makeRequest(http.MethodPost, "/api/valuations/investment", map[string]any{"mode": "future_value"})

	s.Equal(http.StatusServiceUnavailable, w.Code)
	errResp := s.decodeError(w)
	s.Equal("DATABASE_UNAVAILABLE", errResp.Error.Code)
	s.Equal("database unavailable", errResp.Error.Message)
}

func (s *HandlerTestSuite) TestGetValuation() {
	created := s.createInvestment()

	w := s.makeRequest(http.MethodGet, "/api/valuations/"+created.ID, nil)

	s.Require().Equal(http.StatusOK, w.Code)
	var resp dto.ValuationResponse
	s.Require().NoError(json.NewDecoder(w.Body).Decode(&resp))
	s.Equal(created.ID, resp.ID)
}

func (s *HandlerTestSuite) TestGetValuation_NotFound() {
	w := s.makeRequest(http.MethodGet, "/api/valuations/"+uuid.NewString(), nil)

	s.Equal(http.StatusNotFound, w.Code)
	s.Equal("VALUATION_NOT_FOUND", s.decodeError(w).Error.Code)
}

func (s *HandlerTestSuite) TestGetValuation_InvalidID() {
	w := s.makeRequest(http.MethodGet, "/api/valuations/not-a-uuid", nil)

	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal("INVALID_REQUEST", s.decodeError(w).Error.Code)
}

func (s *HandlerTestSuite) TestDeleteValuation() {
	created := s.createInvestment()

	w := s.makeRequest(http.MethodDelete, "/api/valuations/"+created.ID, nil)
	s.Equal(http.StatusNoContent, w.Code)
	s.Empty(w.Body.String())

	w = s.makeRequest(http.MethodDelete, "/api/valuations/"+created.ID, nil)
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *HandlerTestSuite) TestListValuations() {
	s.createInvestment()
	s.createInvestment()

	w := s.makeRequest(http.MethodGet, "/api/valuations?limit=1", nil)

	s.Require().Equal(http.StatusOK, w.Code)
	var resp dto.ValuationsListResponse
	s.Require().NoError(json.NewDecoder(w.Body).Decode(&resp))
	s.Equal(int64(2), resp.Total)
	s.Equal(1, resp.Limit)
	s.Equal(0, resp.Offset)
	s.Require().Len(resp.Valuations, 1)
	s.Require().NotNil(resp.Valuations[0].FutureValue)
	s.InDelta(2200, *resp.Valuations[0].FutureValue, 1e-6)
	s.Nil(resp.Valuations[0].TotalGap)
}

func (s *HandlerTestSuite) TestListValuations_Defaults() {
	w := s.makeRequest(http.MethodGet, "/api/valuations?limit=abc&offset=-3", nil)

	s.Require().Equal(http.StatusOK, w.Code)
	s.JSONEq(`{"valuations":[],"total":0,"limit":20,"offset":0}`, w.Body.String())
}

func (s *HandlerTestSuite) TestListValuations_LimitCapped() {
	w := s.makeRequest(http.MethodGet, "/api/valuations/?limit=500", nil)

	s.Require().Equal(http.StatusOK, w.Code)
	var resp dto.ValuationsListResponse
	s.Require().NoError(json.NewDecoder(w.Body).Decode(&resp))
	s.Equal(service.MaxListLimit, resp.Limit)
}

func (s *HandlerTestSuite) TestListValuations_FilterByKind() {
	s.createInvestment()

	w := s.makeRequest(http.MethodGet, "/api/valuations?kind=insurance", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	var resp dto.ValuationsListResponse
	s.Require().NoError(json.NewDecoder(w.Body).Decode(&resp))
	s.Equal(int64(0), resp.Total)

	w = s.makeRequest(http.MethodGet, "/api/valuations?kind=mortgage", nil)
	s.Equal(http.StatusUnprocessableEntity, w.Code)
	s.Equal("VALIDATION_ERROR", s.decodeError(w).Error.Code)
}

func (s *HandlerTestSuite) TestUnknownPath() {
	w := s.makeRequest(http.MethodGet, "/api/unknown", nil)
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *HandlerTestSuite) TestCreateInvestment_HugeAmountKeepsListReadable() {
	w := s.makeRequest(http.MethodPost, "/api/valuations/investment", map[string]any{
		"mode":               "future_value",
		"initial_investment": 1.7e308,
		"rate":               30,
		"period":             50,
	})

	s.Equal(http.StatusUnprocessableEntity, w.Code)
	s.Equal("VALIDATION_ERROR", s.decodeError(w).Error.Code)
	s.Empty(s.store.valuations)

	w = s.makeRequest(http.MethodGet, "/api/valuations", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	s.JSONEq(`{"valuations":[],"total":0,"limit":20,"offset":0}`, w.Body.String())
}
