package handler_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxviazov/wrestling-analytics/internal/handler"
	"github.com/maxviazov/wrestling-analytics/internal/loader"
	"github.com/maxviazov/wrestling-analytics/internal/model"
	"github.com/maxviazov/wrestling-analytics/internal/repository"
	"github.com/maxviazov/wrestling-analytics/internal/service"
)

// stubDashboard records the last inputs and returns canned results.
type stubDashboard struct {
	gotCriteria service.CriteriaInput
	gotPage     repository.Page
	gotName     string
	gotNetwork  service.NetworkInput
	gotTerm     string

	matches    repository.PageResult[model.MatchRecord]
	wrestler   model.WrestlerStats
	graph      model.NetworkGraph
	summary    model.CorpusSummary
	err        error
	refreshErr error
}

func (s *stubDashboard) Refresh(context.Context) (model.CorpusSummary, error) {
	return s.summary, s.refreshErr
}
func (s *stubDashboard) Corpus(context.Context) (model.CorpusSummary, error) {
	return s.summary, s.err
}
func (s *stubDashboard) ListMatches(_ context.Context, in service.CriteriaInput, p repository.Page) (repository.PageResult[model.MatchRecord], error) {
	s.gotCriteria, s.gotPage = in, p
	return s.matches, s.err
}
func (s *stubDashboard) ListWrestlers(_ context.Context, in service.CriteriaInput, p repository.Page) (repository.PageResult[model.WrestlerStats], error) {
	s.gotCriteria, s.gotPage = in, p
	return repository.PageResult[model.WrestlerStats]{}, s.err
}
func (s *stubDashboard) GetWrestler(_ context.Context, name string, in service.CriteriaInput) (model.WrestlerStats, error) {
	s.gotName, s.gotCriteria = name, in
	return s.wrestler, s.err
}
func (s *stubDashboard) ListVenues(_ context.Context, in service.CriteriaInput, p repository.Page) (repository.PageResult[model.VenueStats], error) {
	s.gotCriteria, s.gotPage = in, p
	return repository.PageResult[model.VenueStats]{}, s.err
}
func (s *stubDashboard) ListTagTeams(_ context.Context, in service.CriteriaInput, p repository.Page) (repository.PageResult[model.TagTeamStats], error) {
	s.gotCriteria, s.gotPage = in, p
	return repository.PageResult[model.TagTeamStats]{}, s.err
}
func (s *stubDashboard) Network(_ context.Context, in service.CriteriaInput, opts service.NetworkInput) (model.NetworkGraph, error) {
	s.gotCriteria, s.gotNetwork = in, opts
	return s.graph, s.err
}
func (s *stubDashboard) HeroMetrics(_ context.Context, in service.CriteriaInput) (model.HeroMetrics, error) {
	s.gotCriteria = in
	return model.HeroMetrics{TotalMatches: 3}, s.err
}
func (s *stubDashboard) FilterOptions(context.Context) (model.FilterOptions, error) {
	return model.FilterOptions{Promotions: []string{"WWE"}}, s.err
}
func (s *stubDashboard) SearchSources(_ context.Context, term string) ([]string, error) {
	s.gotTerm = term
	return []string{"CM_Punk_matches.csv"}, s.err
}

var _ service.DashboardService = (*stubDashboard)(nil)

// fakeInvalid replicates aggregated validation error semantics.
type fakeInvalid struct{ fe []service.FieldError }

func (f *fakeInvalid) Error() string                { return service.ErrInvalidInput.Error() }
func (f *fakeInvalid) Unwrap() error                { return service.ErrInvalidInput }
func (f *fakeInvalid) Fields() []service.FieldError { return f.fe }

func newRouter(svc service.DashboardService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler.Register(r, stubPinger{}, svc, zerolog.New(io.Discard))
	return r
}

func do(r *gin.Engine, method, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(method, target, nil))
	return w
}

func TestListMatches_BindsCriteriaAndPage(t *testing.T) {
	stub := &stubDashboard{matches: repository.PageResult[model.MatchRecord]{
		Items: []model.MatchRecord{{ID: "m1", Date: "2024-06-15"}},
		Total: 1,
		Limit: 10,
	}}
	r := newRouter(stub)

	w := do(r, http.MethodGet, handler.APIV1Prefix+
		"/matches?from=2024-01-01&to=2024-12-31&promotion=WWE&promotion=AEW&wrestler=CM+Punk&venue=Wembley&match_type=tag&event_type=ppv&limit=10&offset=5")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	assert.Equal(t, service.CriteriaInput{
		From:       "2024-01-01",
		To:         "2024-12-31",
		Promotions: []string{"WWE", "AEW"},
		Wrestlers:  []string{"CM Punk"},
		Venues:     []string{"Wembley"},
		MatchType:  "tag",
		EventType:  "ppv",
	}, stub.gotCriteria)
	assert.Equal(t, repository.Page{Limit: 10, Offset: 5}, stub.gotPage)

	var got repository.PageResult[model.MatchRecord]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, 1, got.Total)
	assert.Equal(t, "m1", got.Items[0].ID)
}

func TestListMatches_InvalidCriteria(t *testing.T) {
	stub := &stubDashboard{err: &fakeInvalid{fe: []service.FieldError{{Field: "from", Message: "bad"}}}}
	r := newRouter(stub)

	w := do(r, http.MethodGet, handler.APIV1Prefix+"/matches?from=yesterday")
	require.Equal(t, http.StatusBadRequest, w.Code)

	var body struct {
		Error       string               `json:"error"`
		FieldErrors []service.FieldError `json:"field_errors"`
		RequestID   string               `json:"request_id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "invalid_input", body.Error)
	assert.Equal(t, "from", body.FieldErrors[0].Field)
	assert.NotEmpty(t, body.RequestID)
}

func TestGetWrestler(t *testing.T) {
	stub := &stubDashboard{wrestler: model.WrestlerStats{Name: "CM Punk", TotalMatches: 2}}
	r := newRouter(stub)

	w := do(r, http.MethodGet, handler.APIV1Prefix+"/wrestlers/CM%20Punk?promotion=WWE")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "CM Punk", stub.gotName)
	assert.Equal(t, []string{"WWE"}, stub.gotCriteria.Promotions)

	stub.err = repository.ErrNotFound
	w = do(r, http.MethodGet, handler.APIV1Prefix+"/wrestlers/Nobody")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestNetwork_Bounds(t *testing.T) {
	stub := &stubDashboard{graph: model.NetworkGraph{Nodes: []model.NetworkNode{}, Links: []model.NetworkLink{}}}
	r := newRouter(stub)

	w := do(r, http.MethodGet, handler.APIV1Prefix+"/network?min_matches=3&max_nodes=20")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, service.NetworkInput{MinMatches: 3, MaxNodes: 20}, stub.gotNetwork)
	assert.JSONEq(t, `{"nodes":[],"links":[]}`, w.Body.String())

	w = do(r, http.MethodGet, handler.APIV1Prefix+"/network?max_nodes=lots")
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, []service.FieldError{{Field: "max_nodes", Message: "must be an integer"}}, fieldErrors(t, w))
}

func fieldErrors(t *testing.T, w *httptest.ResponseRecorder) []service.FieldError {
	t.Helper()
	var body struct {
		FieldErrors []service.FieldError `json:"field_errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.FieldErrors
}

func TestListEndpoints_RejectNonNumericPage(t *testing.T) {
	stub := &stubDashboard{}
	r := newRouter(stub)

	for _, path := range []string{"/matches", "/wrestlers", "/venues", "/tag-teams"} {
		t.Run(path, func(t *testing.T) {
			w := do(r, http.MethodGet, handler.APIV1Prefix+path+"?limit=ten&offset=-x")
			require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
			assert.Equal(t, []service.FieldError{
				{Field: "limit", Message: "must be an integer"},
				{Field: "offset", Message: "must be an integer"},
			}, fieldErrors(t, w))
		})
	}
}

func TestReadOnlyEndpoints(t *testing.T) {
	cases := []struct {
		path string
		want int
	}{
		{"/wrestlers", http.StatusOK},
		{"/venues", http.StatusOK},
		{"/tag-teams", http.StatusOK},
		{"/metrics/hero", http.StatusOK},
		{"/filters/options", http.StatusOK},
		{"/sources/search?q=punk", http.StatusOK},
		{"/corpus", http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			w := do(newRouter(&stubDashboard{}), http.MethodGet, handler.APIV1Prefix+tc.path)
			assert.Equal(t, tc.want, w.Code, w.Body.String())
		})
	}

	t.Run("not ready", func(t *testing.T) {
		w := do(newRouter(&stubDashboard{err: repository.ErrNotReady}), http.MethodGet, handler.APIV1Prefix+"/venues")
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}

func TestSearchSources_PassesTerm(t *testing.T) {
	stub := &stubDashboard{}
	w := do(newRouter(stub), http.MethodGet, handler.APIV1Prefix+"/sources/search?q=cm+punk")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "cm punk", stub.gotTerm)
	assert.JSONEq(t, `{"items":["CM_Punk_matches.csv"]}`, w.Body.String())
}

func TestRefresh(t *testing.T) {
	stub := &stubDashboard{summary: model.CorpusSummary{ID: "c1", Matches: 12}}
	r := newRouter(stub)

	w := do(r, http.MethodPost, handler.APIV1Prefix+"/corpus/refresh")
	require.Equal(t, http.StatusOK, w.Code)
	var sum model.CorpusSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sum))
	assert.Equal(t, "c1", sum.ID)

	stub.refreshErr = loader.ErrNoRecords
	w = do(r, http.MethodPost, handler.APIV1Prefix+"/corpus/refresh")
	assert.Equal(t, http.StatusBadGateway, w.Code)

	stub.refreshErr = repository.ErrConflict
	w = do(r, http.MethodPost, handler.APIV1Prefix+"/corpus/refresh")
	assert.Equal(t, http.StatusConflict, w.Code)
}
