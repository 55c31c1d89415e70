package relay

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/websocket"
	"github.com/rs/cors"
)

const (
	eventOrderUpdate     = "order:update"
	eventNotificationNew = "notification:new"
	maxTriggerBody       = 64 << 10
)

type orderTrigger struct {
	OrderID string `json:"orderId" validate:"required"`
	Status  string `json:"status"`
}

type replyTrigger struct {
	UserID       string          `json:"userId" validate:"required"`
	Notification json.RawMessage `json:"notification"`
}

type orderUpdate struct {
	OrderID string `json:"orderId"`
	Status  string `json:"status"`
}

type triggerResponse struct {
	Message    string `json:"message"`
	Room       string `json:"room"`
	Recipients int    `json:"recipients"`
}

// Server exposes the websocket endpoint and the HTTP broadcast triggers.
type Server struct {
	hub      *Hub
	logger   *slog.Logger
	validate *validator.Validate
	upgrader websocket.Upgrader
}

// NewServer constructs the relay server. allowedOrigins applies to both CORS and websocket upgrades.
func NewServer(hub *Hub, allowedOrigins []string, logger *slog.Logger) *Server {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)
	return &Server{
		hub:      hub,
		logger:   logger,
		validate: v,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     originChecker(allowedOrigins),
		},
	}
}

// Handler returns the routed handler wrapped with CORS.
func (s *Server) Handler(allowedOrigins []string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Recoverer, s.requestLogger)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/ws", s.serveWS)
	r.Route("/notify", func(r chi.Router) {
		r.Use(middleware.Timeout(5*time.Second), middleware.AllowContentType("application/json"))
		r.Post("/order", s.notifyOrder)
		r.Post("/reply", s.notifyReply)
	})

	return cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: !allowsAny(allowedOrigins),
	}).Handler(r)
}

func (s *Server) serveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", slog.String("error", err.Error()))
		return
	}
	client := NewClient(s.hub, conn, s.logger)
	s.logger.Info("relay client connected", slog.String("client", client.id), slog.String("remote", r.RemoteAddr))
	go client.Run()
}

func (s *Server) notifyOrder(w http.ResponseWriter, r *http.Request) {
	var req orderTrigger
	if !s.decode(w, r, &req) {
		return
	}
	frame, err := json.Marshal(struct {
		Event string      `json:"event"`
		Data  orderUpdate `json:"data"`
	}{Event: eventOrderUpdate, Data: orderUpdate{OrderID: req.OrderID, Status: req.Status}})
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
		return
	}
	s.broadcast(w, OrderRoom(req.OrderID), frame)
}

func (s *Server) notifyReply(w http.ResponseWriter, r *http.Request) {
	var req replyTrigger
	if !s.decode(w, r, &req) {
		return
	}
	data := req.Notification
	if len(data) == 0 {
		data = json.RawMessage("null")
	}
	frame, err := json.Marshal(Frame{Event: eventNotificationNew, Data: data})
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "notification must be valid json"})
		return
	}
	s.broadcast(w, UserRoom(req.UserID), frame)
}

func (s *Server) broadcast(w http.ResponseWriter, room string, frame []byte) {
	n := s.hub.Broadcast(room, frame)
	s.logger.Info("relay broadcast", slog.String("room", room), slog.Int("recipients", n))
	writeJSON(w, http.StatusOK, triggerResponse{Message: "Notification sent", Room: room, Recipients: n})
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	body := http.MaxBytesReader(w, r.Body, maxTriggerBody)
	if err := json.NewDecoder(body).Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return false
	}
	if err := s.validate.Struct(dst); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) && len(ve) > 0 {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": fmt.Sprintf("%s is %s", ve[0].Field(), ve[0].Tag())})
			return false
		}
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return false
	}
	return true
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Info("http request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			slog.Duration("latency", time.Since(start)),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func jsonFieldName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "" || name == "-" {
		return f.Name
	}
	return name
}

func allowsAny(origins []string) bool {
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return len(origins) == 0
}

func originChecker(origins []string) func(*http.Request) bool {
	if allowsAny(origins) {
		return func(*http.Request) bool { return true }
	}
	allowed := make(map[string]struct{}, len(origins))
	for _, o := range origins {
		allowed[strings.TrimRight(o, "/")] = struct{}{}
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		_, ok := allowed[origin]
		return ok
	}
}
