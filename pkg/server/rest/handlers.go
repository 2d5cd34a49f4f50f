package rest

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"lintang/roadgraph/pkg/datastructure"
	"lintang/roadgraph/pkg/guidance"
	"lintang/roadgraph/pkg/server"
	"lintang/roadgraph/pkg/server/rest/service"
	"lintang/roadgraph/pkg/util"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

type NavigationService interface {
	ShortestPath(ctx context.Context, src, dst datastructure.Coordinate, algorithm string,
		simplify bool) (service.ShortestPathResult, error)
	NearestRoads(ctx context.Context, p datastructure.Coordinate, radius float64) (datastructure.Coordinate, []service.NearbyRoad, error)
	GraphStats(ctx context.Context) service.GraphStats
	ResetStats(ctx context.Context)
}

type NavigationHandler struct {
	svc     NavigationService
	metrics *Metrics
}

func NavigatorRouter(r *chi.Mux, svc NavigationService, m *Metrics) {
	handler := &NavigationHandler{svc, m}

	r.Group(func(r chi.Router) {
		r.Route("/api/navigations", func(r chi.Router) {
			r.Post("/shortest-path", handler.shortestPath)
			r.Post("/nearest-road", handler.nearestRoad)
		})
		r.Route("/api/graph", func(r chi.Router) {
			r.Get("/stats", handler.graphStats)
			r.Post("/reset", handler.resetStats)
		})
	})
}

// Coord model info
//
//	@Description	model untuk koordinat
type Coord struct {
	Lat float64 `json:"lat" validate:"gte=-90,lte=90"`
	Lon float64 `json:"lon" validate:"gte=-180,lte=180"`
}

func (c Coord) toCoordinate() datastructure.Coordinate {
	return datastructure.NewCoordinate(c.Lat, c.Lon)
}

func newCoord(c datastructure.Coordinate) Coord {
	return Coord{Lat: c.Lat, Lon: c.Lon}
}

// ShortestPathRequest model info
//
//	@Description	request body untuk shortest path query. algorithm salah satu dari bfs, dijkstra, astar (default astar)
type ShortestPathRequest struct {
	SrcLat    float64 `json:"src_lat" validate:"gte=-90,lte=90"`
	SrcLon    float64 `json:"src_lon" validate:"gte=-180,lte=180"`
	DstLat    float64 `json:"dst_lat" validate:"gte=-90,lte=90"`
	DstLon    float64 `json:"dst_lon" validate:"gte=-180,lte=180"`
	Algorithm string  `json:"algorithm" validate:"omitempty,oneof=bfs dijkstra astar"`
	Simplify  bool    `json:"simplify"`
}

func (s *ShortestPathRequest) Bind(r *http.Request) error {
	if s.SrcLat == s.DstLat && s.SrcLon == s.DstLon && s.SrcLat == 0 && s.SrcLon == 0 {
		return errors.New("invalid request")
	}
	return nil
}

// ShortestPathResponse model info
//
//	@Description	response body untuk shortest path query
type ShortestPathResponse struct {
	Path        string  `json:"path"`
	Coordinates []Coord `json:"coordinates"`
	Distance    float64 `json:"distance"`
	Source      Coord   `json:"source"`
	Destination Coord   `json:"destination"`
	Visited     int     `json:"visited"`
	Settled     int     `json:"settled"`
	CacheHit    bool    `json:"cache_hit"`

	Instructions []guidance.DrivingInstruction `json:"instructions"`
}

func RenderShortestPathResponse(res service.ShortestPathResult) *ShortestPathResponse {
	coords := make([]Coord, 0, len(res.Path))
	for _, c := range res.Path {
		coords = append(coords, newCoord(c))
	}
	return &ShortestPathResponse{
		Path:        res.Polyline,
		Coordinates: coords,
		Distance:    util.RoundFloat(res.Distance, 6),
		Source:      newCoord(res.Source),
		Destination: newCoord(res.Destination),
		Visited:     res.Stats.Visited,
		Settled:     res.Stats.Settled,
		CacheHit:    res.Stats.CacheHit,

		Instructions: res.Instructions,
	}
}

// ShortestPath
//
//	@Summary		shortest path query antara 2 titik. Titik asal & tujuan di snap ke vertex terdekat
//	@Description	shortest path query antara 2 titik pakai bfs (edge paling sedikit), dijkstra, atau astar dengan path cache
//	@Tags			navigations
//	@Param			body	body	ShortestPathRequest	true	"request body shortest path query"
//	@Accept			application/json
//	@Produce		application/json
//	@Router			/navigations/shortest-path [post]
//	@Success		200	{object}	ShortestPathResponse
//	@Failure		400	{object}	ErrResponse
//	@Failure		404	{object}	ErrResponse
//	@Failure		500	{object}	ErrResponse
func (h *NavigationHandler) shortestPath(w http.ResponseWriter, r *http.Request) {
	data := &ShortestPathRequest{}
	if err := render.Bind(r, data); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	if !validateRequest(w, r, data) {
		return
	}

	algorithm := data.Algorithm
	if algorithm == "" {
		algorithm = service.AlgorithmAStar
	}

	src := datastructure.NewCoordinate(data.SrcLat, data.SrcLon)
	dst := datastructure.NewCoordinate(data.DstLat, data.DstLon)
	res, err := h.svc.ShortestPath(r.Context(), src, dst, algorithm, data.Simplify)
	if err != nil {
		h.metrics.ObserveSearchError(algorithm)
		render.Render(w, r, renderServiceError(err))
		return
	}
	h.metrics.ObserveSearch(algorithm, res.Stats)

	render.Status(r, http.StatusOK)
	render.JSON(w, r, RenderShortestPathResponse(res))
}

// NearestRoadRequest model info
//
//	@Description	request body untuk mencari jalan terdekat dari sebuah titik
type NearestRoadRequest struct {
	Coord
	// Radius in km, roads of every vertex within it are included
	Radius float64 `json:"radius" validate:"gte=0,lte=5"`
}

func (s *NearestRoadRequest) Bind(r *http.Request) error {
	return nil
}

type NearbyRoadResponse struct {
	From       Coord   `json:"from"`
	To         Coord   `json:"to"`
	Name       string  `json:"name"`
	RoadType   string  `json:"road_type"`
	Length     float64 `json:"length"`
	Projection Coord   `json:"projection"`
	Offset     float64 `json:"offset_meter"`
}

// NearestRoadResponse model info
//
//	@Description	response body vertex terdekat beserta jalan yang keluar dari vertex tersebut
type NearestRoadResponse struct {
	Vertex Coord                `json:"vertex"`
	Roads  []NearbyRoadResponse `json:"roads"`
}

func RenderNearestRoadResponse(vertex datastructure.Coordinate, roads []service.NearbyRoad) *NearestRoadResponse {
	roadsResp := make([]NearbyRoadResponse, 0, len(roads))
	for _, road := range roads {
		roadsResp = append(roadsResp, NearbyRoadResponse{
			From:       newCoord(road.From),
			To:         newCoord(road.To),
			Name:       road.Name,
			RoadType:   road.RoadType,
			Length:     road.Length,
			Projection: newCoord(road.Projection),
			Offset:     util.RoundFloat(road.Offset, 2),
		})
	}
	return &NearestRoadResponse{
		Vertex: newCoord(vertex),
		Roads:  roadsResp,
	}
}

// NearestRoad
//
//	@Summary		snapping titik ke vertex terdekat & daftar jalan dari vertex tersebut (dan vertex lain dalam radius)
//	@Tags			navigations
//	@Param			body	body	NearestRoadRequest	true	"request body nearest road"
//	@Accept			application/json
//	@Produce		application/json
//	@Router			/navigations/nearest-road [post]
//	@Success		200	{object}	NearestRoadResponse
//	@Failure		400	{object}	ErrResponse
//	@Failure		404	{object}	ErrResponse
func (h *NavigationHandler) nearestRoad(w http.ResponseWriter, r *http.Request) {
	data := &NearestRoadRequest{}
	if err := render.Bind(r, data); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	if !validateRequest(w, r, data) {
		return
	}

	vertex, roads, err := h.svc.NearestRoads(r.Context(), data.toCoordinate(), data.Radius)
	if err != nil {
		render.Render(w, r, renderServiceError(err))
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, RenderNearestRoadResponse(vertex, roads))
}

// GraphStatsResponse model info
//
//	@Description	ukuran road network graph & jumlah node yang di expand query terakhir
type GraphStatsResponse struct {
	Vertices         int `json:"vertices"`
	Edges            int `json:"edges"`
	CachedPaths      int `json:"cached_paths"`
	LastVisited      int `json:"last_visited"`
	Components       int `json:"components"`
	LargestComponent int `json:"largest_component"`
}

// GraphStats
//
//	@Summary	statistik road network graph
//	@Tags		graph
//	@Produce	application/json
//	@Router		/graph/stats [get]
//	@Success	200	{object}	GraphStatsResponse
func (h *NavigationHandler) graphStats(w http.ResponseWriter, r *http.Request) {
	stats := h.svc.GraphStats(r.Context())
	render.Status(r, http.StatusOK)
	render.JSON(w, r, &GraphStatsResponse{
		Vertices:         stats.Vertices,
		Edges:            stats.Edges,
		CachedPaths:      stats.CachedPaths,
		LastVisited:      stats.LastVisited,
		Components:       stats.Components,
		LargestComponent: stats.LargestComponent,
	})
}

// ResetStats
//
//	@Summary	reset counter node yang di expand. path cache tidak dihapus
//	@Tags		graph
//	@Router		/graph/reset [post]
//	@Success	204
func (h *NavigationHandler) resetStats(w http.ResponseWriter, r *http.Request) {
	h.svc.ResetStats(r.Context())
	render.NoContent(w, r)
}

func validateRequest(w http.ResponseWriter, r *http.Request, data interface{}) bool {
	validate := validator.New()
	if err := validate.Struct(data); err != nil {
		english := en.New()
		uni := ut.New(english, english)
		trans, _ := uni.GetTranslator("en")
		_ = enTranslations.RegisterDefaultTranslations(validate, trans)
		vv := translateError(err, trans)
		render.Render(w, r, ErrValidation(err, vv))
		return false
	}
	return true
}

func renderServiceError(err error) render.Renderer {
	var serr *server.Error
	if !errors.As(err, &serr) {
		return ErrInternalServerErrorRend(errors.New("internal server error"))
	}
	switch serr.Code() {
	case server.ErrNotFound:
		return ErrNotFoundRend(errors.New(serr.Message()))
	case server.ErrBadParamInput:
		return ErrInvalidRequest(errors.New(serr.Message()))
	default:
		return ErrInternalServerErrorRend(errors.New("internal server error"))
	}
}

func ErrInvalidRequest(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: 400,
		StatusText:     "Invalid request.",
		ErrorText:      err.Error(),
	}
}

// ErrResponse model info
//
//	@Description	model untuk error response
type ErrResponse struct {
	Err            error `json:"-"` // low-level runtime error
	HTTPStatusCode int   `json:"-"` // http response status code

	StatusText    string   `json:"status"`          // user-level status message
	AppCode       int64    `json:"code,omitempty"`  // application-specific error code
	ErrorText     string   `json:"error,omitempty"` // application-level error message, for debugging
	ErrValidation []string `json:"validation,omitempty"`
}

func (e *ErrResponse) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.HTTPStatusCode)
	return nil
}

func translateError(err error, trans ut.Translator) (errs []error) {
	if err == nil {
		return nil
	}
	var validatorErrs validator.ValidationErrors
	if !errors.As(err, &validatorErrs) {
		return []error{err}
	}
	for _, e := range validatorErrs {
		errs = append(errs, fmt.Errorf("%s", e.Translate(trans)))
	}
	return errs
}

func ErrValidation(err error, errV []error) render.Renderer {
	vv := []string{}
	for _, v := range errV {
		vv = append(vv, v.Error())
	}
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: 400,
		StatusText:     "Invalid request.",
		ErrorText:      err.Error(),
		ErrValidation:  vv,
	}
}

func ErrNotFoundRend(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: 404,
		StatusText:     "Not found.",
		ErrorText:      err.Error(),
	}
}

func ErrInternalServerErrorRend(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: 500,
		StatusText:     "Internal server error.",
		ErrorText:      err.Error(),
	}
}
