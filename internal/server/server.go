// Package server serves a rendered figure, its graph as JSON, a health
// check and Prometheus metrics over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vk/stockgraph/internal/ctxlog"
	"github.com/vk/stockgraph/internal/metrics"
	"github.com/vk/stockgraph/internal/nodeid"
	"golang.org/x/sync/errgroup"
)

// ShutdownTimeout bounds the graceful shutdown once the context ends.
const ShutdownTimeout = 5 * time.Second

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>{{.Title}}</title></head>
<body style="margin:0;background:#fff">
<img src="/figure.svg" alt="{{.Title}}" style="width:100%;height:auto">
</body>
</html>
`))

// Server serves one snapshot.
type Server struct {
	ctx    context.Context
	snap   *Snapshot
	m      *metrics.Metrics
	engine *gin.Engine
}

// New builds the router. gatherer backs the /metrics endpoint and m counts
// requests; both must come from the same registry.
func New(ctx context.Context, snap *Snapshot, m *metrics.Metrics, gatherer prometheus.Gatherer) *Server {
	s := &Server{ctx: ctx, snap: snap, m: m}

	r := gin.New()
	r.Use(gin.Recovery(), s.observe)
	r.SetHTMLTemplate(indexTemplate)

	r.GET("/", s.index)
	r.GET("/figure.png", s.figure("image/png", snap.PNG))
	r.GET("/figure.svg", s.figure("image/svg+xml", snap.SVG))
	r.GET("/graph.json", s.graph)
	r.GET("/node/*key", s.node)
	r.GET("/healthz", Health)
	r.HEAD("/healthz", Health)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	s.engine = r
	return s
}

// Handler returns the HTTP handler for the server's routes.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run listens on addr and serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled, then shuts down
// gracefully within ShutdownTimeout.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	logger := ctxlog.FromContext(ctx)
	httpServer := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("🌐 Figure server starting", "address", fmt.Sprintf("http://%s/", ln.Addr()))
		// Serve returns ErrServerClosed on graceful shutdown.
		if err := httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("figure server failed: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), ShutdownTimeout)
		defer cancel()

		logger.Info("🌐 Shutting down figure server...")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("Figure server shutdown failed", "error", err)
			return err
		}
		logger.Debug("Figure server shut down gracefully.")
		return nil
	})
	return g.Wait()
}

// observe logs each request and counts it by route and status.
func (s *Server) observe(c *gin.Context) {
	start := time.Now()
	c.Next()

	route := c.FullPath()
	if route == "" {
		route = "unmatched"
	}
	status := c.Writer.Status()
	s.m.HTTPRequests.WithLabelValues(route, strconv.Itoa(status)).Inc()
	ctxlog.FromContext(s.ctx).Debug("Figure server request.",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"status", status,
		"duration", time.Since(start),
		"remote_addr", c.Request.RemoteAddr,
	)
}

func (s *Server) index(c *gin.Context) {
	c.HTML(http.StatusOK, "index", gin.H{"Title": s.snap.Title})
}

func (s *Server) figure(contentType string, data []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", "no-cache")
		c.Data(http.StatusOK, contentType, data)
	}
}

func (s *Server) graph(c *gin.Context) {
	c.JSON(http.StatusOK, s.snap.Graph)
}

// node looks up one node by its `kind/name` key.
func (s *Server) node(c *gin.Context) {
	var key nodeid.Key
	if err := key.UnmarshalText([]byte(strings.TrimPrefix(c.Param("key"), "/"))); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	detail, ok := s.snap.Node(key)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("node '%s' not found", key)})
		return
	}
	c.JSON(http.StatusOK, detail)
}

// Health answers the /healthz probe and disables caching.
func Health(c *gin.Context) {
	c.Header("Cache-Control", "no-store")
	if c.Request.Method == http.MethodHead {
		c.Status(http.StatusOK)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
