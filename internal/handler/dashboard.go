package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/maxviazov/wrestling-analytics/internal/repository"
	"github.com/maxviazov/wrestling-analytics/internal/service"
	"github.com/maxviazov/wrestling-analytics/pkg/response"
)

type DashboardHandler struct {
	svc service.DashboardService
}

func NewDashboardHandler(svc service.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

func (h *DashboardHandler) Register(r *gin.RouterGroup) {
	r.GET("/matches", h.listMatches)
	w := r.Group("/wrestlers")
	{
		w.GET("", h.listWrestlers)
		w.GET("/:name", h.getWrestler)
	}
	r.GET("/venues", h.listVenues)
	r.GET("/tag-teams", h.listTagTeams)
	r.GET("/network", h.network)
	r.GET("/metrics/hero", h.hero)
	r.GET("/filters/options", h.filterOptions)
	r.GET("/sources/search", h.searchSources)

	corpus := r.Group("/corpus")
	{
		corpus.GET("", h.corpus)
		corpus.POST("/refresh", h.refresh)
	}
}

// criteria binds the shared filter query parameters; validation happens in the service.
func criteria(c *gin.Context) (service.CriteriaInput, bool) {
	var in service.CriteriaInput
	if err := c.ShouldBindQuery(&in); err != nil {
		response.WriteError(c, service.InvalidInput(service.FieldError{Field: "query", Message: err.Error()}))
		return in, false
	}
	return in, true
}

// intParams reads optional integer query parameters; absent ones are zero.
func intParams(c *gin.Context, names ...string) ([]int, error) {
	vals := make([]int, len(names))
	var fe []service.FieldError
	for i, name := range names {
		raw := c.Query(name)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			fe = append(fe, service.FieldError{Field: name, Message: "must be an integer"})
			continue
		}
		vals[i] = n
	}
	return vals, service.InvalidInput(fe...)
}

func page(c *gin.Context) (repository.Page, bool) {
	v, err := intParams(c, "limit", "offset")
	if err != nil {
		response.WriteError(c, err)
		return repository.Page{}, false
	}
	return repository.Page{Limit: v[0], Offset: v[1]}, true
}

func (h *DashboardHandler) listMatches(c *gin.Context) {
	in, ok := criteria(c)
	if !ok {
		return
	}
	p, ok := page(c)
	if !ok {
		return
	}
	res, err := h.svc.ListMatches(c.Request.Context(), in, p)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, res)
}

func (h *DashboardHandler) listWrestlers(c *gin.Context) {
	in, ok := criteria(c)
	if !ok {
		return
	}
	p, ok := page(c)
	if !ok {
		return
	}
	res, err := h.svc.ListWrestlers(c.Request.Context(), in, p)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, res)
}

func (h *DashboardHandler) getWrestler(c *gin.Context) {
	in, ok := criteria(c)
	if !ok {
		return
	}
	ws, err := h.svc.GetWrestler(c.Request.Context(), c.Param("name"), in)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, ws)
}

func (h *DashboardHandler) listVenues(c *gin.Context) {
	in, ok := criteria(c)
	if !ok {
		return
	}
	p, ok := page(c)
	if !ok {
		return
	}
	res, err := h.svc.ListVenues(c.Request.Context(), in, p)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, res)
}

func (h *DashboardHandler) listTagTeams(c *gin.Context) {
	in, ok := criteria(c)
	if !ok {
		return
	}
	p, ok := page(c)
	if !ok {
		return
	}
	res, err := h.svc.ListTagTeams(c.Request.Context(), in, p)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, res)
}

func (h *DashboardHandler) network(c *gin.Context) {
	in, ok := criteria(c)
	if !ok {
		return
	}
	v, err := intParams(c, "min_matches", "max_nodes")
	if err != nil {
		response.WriteError(c, err)
		return
	}
	opts := service.NetworkInput{MinMatches: v[0], MaxNodes: v[1]}
	graph, err := h.svc.Network(c.Request.Context(), in, opts)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, graph)
}

func (h *DashboardHandler) hero(c *gin.Context) {
	in, ok := criteria(c)
	if !ok {
		return
	}
	m, err := h.svc.HeroMetrics(c.Request.Context(), in)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, m)
}

func (h *DashboardHandler) filterOptions(c *gin.Context) {
	opts, err := h.svc.FilterOptions(c.Request.Context())
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, opts)
}

func (h *DashboardHandler) searchSources(c *gin.Context) {
	names, err := h.svc.SearchSources(c.Request.Context(), c.Query("q"))
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, gin.H{"items": names})
}

func (h *DashboardHandler) corpus(c *gin.Context) {
	sum, err := h.svc.Corpus(c.Request.Context())
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, sum)
}

func (h *DashboardHandler) refresh(c *gin.Context) {
	sum, err := h.svc.Refresh(c.Request.Context())
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, sum)
}
