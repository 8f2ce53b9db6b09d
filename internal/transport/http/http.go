package httptransport

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/datagetws/orders-api/internal/service/models/order"
	createorder "github.com/datagetws/orders-api/internal/transport/http/create_order"
	listorders "github.com/datagetws/orders-api/internal/transport/http/list_orders"
	streamorders "github.com/datagetws/orders-api/internal/transport/http/stream_orders"
	"github.com/datagetws/orders-api/pkg/http/middleware/trace"
	"github.com/datagetws/orders-api/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/spf13/viper"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type service interface {
	Create(ctx context.Context, o order.Order) order.Order
	List(ctx context.Context, query order.QueryOrdersModel) []order.Order
}

type HTTPTransport struct {
	server         *http.Server
	router         *chi.Mux
	service        service
	streamInterval time.Duration
}

func NewHTTPTransport(service service) *HTTPTransport {
	router := newRouter()
	server := newServer(router)

	streamIntervalSeconds := viper.GetInt("server.stream.interval_seconds")
	if streamIntervalSeconds == 0 {
		streamIntervalSeconds = 1
	}

	return &HTTPTransport{
		server:         server,
		router:         router,
		service:        service,
		streamInterval: time.Duration(streamIntervalSeconds) * time.Second,
	}
}

func (h *HTTPTransport) Run() error {
	return h.server.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server. In-flight SSE loops end on their
// own once the server closes their connections.
func (h *HTTPTransport) Shutdown(ctx context.Context) error {
	return h.server.Shutdown(ctx)
}

// RegisterRoutes registers the routes for the HTTPTransport.
func (h *HTTPTransport) RegisterRoutes() {
	h.router.Get("/", h.home)
	h.router.Route("/api", func(r chi.Router) {
		r.Post("/orders", h.createOrder)
		r.Get("/orders", h.listOrders)
		r.Get("/orders/stream", h.streamOrders)
	})
	h.router.Get("/swagger/*", httpSwagger.Handler())
}

// home reports the service name.
// @Summary Service banner
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func (h *HTTPTransport) home(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]string{"message": "Orders API"}); err != nil {
		slog.Error("Error sending home response", "error", err)
	}
}

func (h *HTTPTransport) createOrder(w http.ResponseWriter, r *http.Request) {
	createorder.CreateOrder(w, r, h.service)
}

func (h *HTTPTransport) listOrders(w http.ResponseWriter, r *http.Request) {
	listorders.ListOrders(w, r, h.service)
}

func (h *HTTPTransport) streamOrders(w http.ResponseWriter, r *http.Request) {
	streamorders.StreamOrders(w, r, h.service, h.streamInterval)
}

func newRouter() *chi.Mux {
	router := chi.NewMux()
	router.Use(middleware.RequestID)
	router.Use(trace.NewTraceMiddleware)
	router.Use(logger.NewLoggerMiddleware(slog.Default()))

	allowedOrigins := viper.GetStringSlice("server.http.cors.allowed_origins")
	allowedMethods := viper.GetStringSlice("server.http.cors.allowed_methods")
	allowedHeaders := viper.GetStringSlice("server.http.cors.allowed_headers")
	exposedHeaders := viper.GetStringSlice("server.http.cors.exposed_headers")
	allowCredentials := viper.GetBool("server.http.cors.allow_credentials")
	maxAge := viper.GetInt("server.http.cors.max_age")

	c := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   allowedMethods,
		AllowedHeaders:   allowedHeaders,
		ExposedHeaders:   exposedHeaders,
		AllowCredentials: allowCredentials,
		MaxAge:           maxAge,
	})

	router.Use(c.Handler)

	return router
}

// newServer builds the HTTP server. No write timeout: SSE connections stay
// open indefinitely.
func newServer(router http.Handler) *http.Server {
	return &http.Server{
		Addr:    "0.0.0.0:" + viper.GetString("server.http.port"),
		Handler: router,
	}
}
