package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/icco/gutil/logging"
	"github.com/icco/reversi"
	"github.com/icco/reversi/cmd/server/docs"
	"github.com/ifo/sanic"
	"github.com/microcosm-cc/bluemonday"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
	"github.com/unrolled/render"
	"github.com/unrolled/secure"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

var (
	// Renderer is a renderer for all occasions. These are our preferred default options.
	// See:
	//  - https://github.com/unrolled/render/blob/v1/README.md
	Renderer = render.New(render.Options{
		Charset:                   "UTF-8",
		DisableHTTPErrorRendering: false,
		IndentJSON:                false,
	})

	log       = logging.Must(logging.NewLogger(reversi.Service))
	ugcPolicy = bluemonday.StrictPolicy()

	// Evaluation ids let callers match a response to its log line.
	ids = sanic.NewWorker7()

	cfg Config
)

// @title Reversi API
// @version 1.0
// @description Stateless Reversi move evaluation
// @contact.name API Support
// @contact.url http://github.com/icco/reversi
// @license.name MIT
// @BasePath /

func main() {
	var err error
	cfg, err = loadConfig()
	if err != nil {
		log.Fatalw("could not load config", zap.Error(err))
	}
	log.Infow("Starting up", "host", cfg.PublicURL, "port", cfg.Port)

	provider, err := setupMetrics()
	if err != nil {
		log.Fatalw("could not set up metrics", zap.Error(err))
	}
	defer func() {
		if err := provider.Shutdown(context.Background()); err != nil {
			log.Errorw("metrics shutdown", zap.Error(err))
		}
	}()

	server := &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        otelhttp.NewHandler(router(cfg), reversi.Service),
		ReadTimeout:    15 * time.Second,
		WriteTimeout:   15 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20, // 1MB
	}
	if err := server.ListenAndServe(); err != nil {
		log.Fatalw("server exited", zap.Error(err))
	}
}

func router(c Config) chi.Router {
	r := chi.NewRouter()
	r.Use(logging.Middleware(log.Desugar()))

	r.Use(cors.New(cors.Options{
		AllowCredentials:   true,
		OptionsPassthrough: true,
		AllowedOrigins:     []string{"*"},
		AllowedMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:     []string{"Accept", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:     []string{"Link"},
		MaxAge:             300, // Maximum value not ignored by any of major browsers
	}).Handler)

	r.NotFound(notFoundHandler)

	// Probes and metrics stay reachable over plain http.
	r.Group(func(r chi.Router) {
		r.Use(secure.New(secure.Options{
			BrowserXssFilter:   true,
			ContentTypeNosniff: true,
			FrameDeny:          true,
			HostsProxyHeaders:  []string{"X-Forwarded-Host"},
			IsDevelopment:      c.IsDev(),
			SSLProxyHeaders:    map[string]string{"X-Forwarded-Proto": "https"},
		}).Handler)

		r.Get("/healthz", healthCheckHandler)
		r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	})

	r.Group(func(r chi.Router) {
		r.Use(secure.New(secure.Options{
			BrowserXssFilter:     true,
			ContentTypeNosniff:   true,
			FrameDeny:            true,
			HostsProxyHeaders:    []string{"X-Forwarded-Host"},
			IsDevelopment:        c.IsDev(),
			SSLProxyHeaders:      map[string]string{"X-Forwarded-Proto": "https"},
			SSLRedirect:          !c.IsDev(),
			STSIncludeSubdomains: true,
			STSPreload:           true,
			STSSeconds:           315360000,
		}).Handler)
		r.Use(middleware.RequestSize(c.MaxBodyBytes))

		r.Get("/", rootHandler)
		r.Get("/swagger/*", httpSwagger.Handler(
			httpSwagger.URL(c.PublicURL+"/swagger/doc.json"),
		))

		r.Get("/board/{size}", getBoardHandler)
		r.Post("/moves", legalMovesHandler)
		r.Post("/evaluate", evaluateHandler)
	})

	return r
}

// BoardRequest describes a board: the opening position of the given size
// with the setup entries written over it.
type BoardRequest struct {
	Size  int                 `json:"size" example:"8"`
	Setup []reversi.Placement `json:"setup,omitempty" swaggertype:"array,string" example:"Wab,Bac"`
}

// MovesRequest asks for the legal moves of one color.
type MovesRequest struct {
	BoardRequest
	Color reversi.Color `json:"color" swaggertype:"string" example:"B"`
}

// EvaluateRequest asks to play one move.
type EvaluateRequest struct {
	BoardRequest
	Move reversi.Move `json:"move" swaggertype:"string" example:"Bab"`
}

// BoardResponse is a board snapshot.
type BoardResponse struct {
	Size     int      `json:"size"`
	Rows     []string `json:"rows"`
	Rendered string   `json:"rendered"`
	White    int      `json:"white"`
	Black    int      `json:"black"`
}

// MovesResponse lists legal moves in row-major order.
type MovesResponse struct {
	Color reversi.Color        `json:"color" swaggertype:"string"`
	Moves []reversi.Coordinate `json:"moves" swaggertype:"array,string"`
}

// EvaluateResponse is the verdict on one move.
type EvaluateResponse struct {
	ID        string                                 `json:"id"`
	Move      reversi.Move                           `json:"move" swaggertype:"string"`
	Valid     bool                                   `json:"valid"`
	Reason    string                                 `json:"reason,omitempty"`
	Available map[reversi.Color][]reversi.Coordinate `json:"available" swaggertype:"object"`
	Before    BoardResponse                          `json:"before"`
	After     BoardResponse                          `json:"after"`
}

// ErrorResponse is returned for any failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse is returned by /healthz.
type HealthResponse struct {
	Healthy  string `json:"healthy"`
	Revision string `json:"revision"`
	Tag      string `json:"tag"`
	Branch   string `json:"branch"`
}

func newBoardResponse(b *reversi.Board) BoardResponse {
	return BoardResponse{
		Size:     b.Size(),
		Rows:     b.Rows(),
		Rendered: b.String(),
		White:    b.Count(reversi.White),
		Black:    b.Count(reversi.Black),
	}
}

func buildBoard(req BoardRequest) (*reversi.Board, error) {
	if err := reversi.ValidBoardSize(req.Size); err != nil {
		return nil, err
	}
	s := &reversi.Scenario{Size: req.Size, Setup: req.Setup}
	return s.Board()
}

func renderError(w http.ResponseWriter, status int, msg string) {
	if err := Renderer.JSON(w, status, ErrorResponse{Error: msg}); err != nil {
		log.Errorw("failed to render JSON", zap.Error(err))
	}
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		logging.FromContext(r.Context()).Infow("could not read body", zap.Error(err))
		renderError(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

// @Summary Get API information
// @Description Returns basic API information and available endpoints
// @Tags info
// @Produce html
// @Success 200 {string} string "HTML page with API information"
// @Router / [get]
func rootHandler(w http.ResponseWriter, r *http.Request) {
	spec, err := docs.GetSwaggerSpec()
	if err != nil {
		log.Errorw("failed to parse swagger.json", zap.Error(err))
		renderError(w, http.StatusInternalServerError, "could not load api description")
		return
	}

	html := `<html>
  <head><title>Reversi API</title></head>
  <body>
    <h1>Reversi API</h1>
    <p><a href="/swagger/">Swagger documentation</a></p>
    <ul>`
	for _, e := range spec.Endpoints() {
		html += fmt.Sprintf("\n      <li><b>%s</b> %s - %s</li>", e.Method, e.Path, e.Summary)
	}
	html += `
    </ul>
  </body>
</html>`

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := w.Write([]byte(html)); err != nil {
		log.Errorw("failed to write response", zap.Error(err))
	}
}

// @Summary Opening board
// @Description Returns the opening position for a board size. Add ?format=text for the plain grid.
// @Tags board
// @Produce json
// @Param size path int true "Board dimension (4-26)"
// @Success 200 {object} BoardResponse
// @Failure 400 {object} ErrorResponse
// @Router /board/{size} [get]
func getBoardHandler(w http.ResponseWriter, r *http.Request) {
	sizeStr := ugcPolicy.Sanitize(chi.URLParam(r, "size"))
	size, err := strconv.Atoi(sizeStr)
	if err != nil {
		renderError(w, http.StatusBadRequest, fmt.Sprintf("bad board size %q", sizeStr))
		return
	}

	b, err := buildBoard(BoardRequest{Size: size})
	if err != nil {
		renderError(w, http.StatusBadRequest, err.Error())
		return
	}

	if r.URL.Query().Get("format") == "text" {
		if err := Renderer.Text(w, http.StatusOK, b.String()); err != nil {
			log.Errorw("failed to render text", zap.Error(err))
		}
		return
	}

	if err := Renderer.JSON(w, http.StatusOK, newBoardResponse(b)); err != nil {
		log.Errorw("failed to render JSON", zap.Error(err))
	}
}

// @Summary Legal moves
// @Description Lists every cell where the color can play on the configured board
// @Tags board
// @Accept json
// @Produce json
// @Param request body MovesRequest true "Board and color"
// @Success 200 {object} MovesResponse
// @Failure 400 {object} ErrorResponse
// @Router /moves [post]
func legalMovesHandler(w http.ResponseWriter, r *http.Request) {
	var req MovesRequest
	if !decode(w, r, &req) {
		return
	}

	if !req.Color.IsPlayer() {
		renderError(w, http.StatusBadRequest, reversi.ErrNotAColor.Error())
		return
	}

	b, err := buildBoard(req.BoardRequest)
	if err != nil {
		renderError(w, http.StatusBadRequest, err.Error())
		return
	}

	moves := b.LegalMoves(req.Color)
	recordLegalMoves(r.Context(), req.Color.String(), len(moves))

	if err := Renderer.JSON(w, http.StatusOK, MovesResponse{Color: req.Color, Moves: moves}); err != nil {
		log.Errorw("failed to render JSON", zap.Error(err))
	}
}

// @Summary Evaluate a move
// @Description Builds the configured board and plays one move on it. Nothing is stored.
// @Tags board
// @Accept json
// @Produce json
// @Param request body EvaluateRequest true "Board and move"
// @Success 200 {object} EvaluateResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /evaluate [post]
func evaluateHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req EvaluateRequest
	if !decode(w, r, &req) {
		return
	}

	if !req.Move.Color.IsPlayer() {
		renderError(w, http.StatusBadRequest, "move is required")
		return
	}

	b, err := buildBoard(req.BoardRequest)
	if err != nil {
		renderError(w, http.StatusBadRequest, err.Error())
		return
	}

	available, err := b.LegalMovesByColor(ctx, reversi.White, reversi.Black)
	if err != nil {
		log.Errorw("could not list legal moves", zap.Error(err))
		renderError(w, http.StatusInternalServerError, "could not list legal moves")
		return
	}

	resp := EvaluateResponse{
		ID:        ids.IDString(ids.NextID()),
		Move:      req.Move,
		Available: available,
		Before:    newBoardResponse(b),
	}
	if reason := b.Explain(req.Move); reason != nil {
		resp.Reason = reason.Error()
	}
	resp.Valid = b.ApplyMove(req.Move)
	resp.After = newBoardResponse(b)

	recordEvaluation(ctx, resp.Valid)
	logging.FromContext(ctx).Infow("move evaluated", "id", resp.ID, "move", req.Move.String(), "valid", resp.Valid)

	if err := Renderer.JSON(w, http.StatusOK, resp); err != nil {
		log.Errorw("failed to render JSON", zap.Error(err))
	}
}

// @Summary Health check
// @Description Returns service health status
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /healthz [get]
func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	if err := Renderer.JSON(w, http.StatusOK, HealthResponse{
		Healthy:  "true",
		Revision: cfg.Revision,
		Tag:      cfg.Tag,
		Branch:   cfg.Branch,
	}); err != nil {
		log.Errorw("failed to render JSON", zap.Error(err))
	}
}

func notFoundHandler(w http.ResponseWriter, r *http.Request) {
	renderError(w, http.StatusNotFound, "404: This page could not be found")
}
