package wsrelay

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/polkiloo/panganku/internal/domain/model"
	"github.com/polkiloo/panganku/internal/server/http/dto"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestNewHTTPClientValidatesURL(t *testing.T) {
	if _, err := NewHTTPClient("://bad-url", testLogger()); err == nil {
		t.Fatal("expected error for invalid url")
	}
	if _, err := NewHTTPClient("/relative", testLogger()); err == nil {
		t.Fatal("expected error for relative url")
	}
}

func TestDeliverOrderUpdate(t *testing.T) {
	var gotPath string
	var got dto.OrderNotice
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if r.Header.Get("Content-Type") != "application/json" {
			t.Errorf("unexpected content type %q", r.Header.Get("Content-Type"))
		}
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client, err := NewHTTPClient(srv.URL, testLogger())
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	event := model.Event{Kind: model.EventOrderUpdate, OrderID: "o1", UserID: "u1", Status: model.OrderStatusProcessing}
	if err := client.Deliver(context.Background(), event); err != nil {
		t.Fatalf("deliver: %v", err)
	}
	if gotPath != "/notify/order" {
		t.Fatalf("unexpected path %q", gotPath)
	}
	if got.OrderID != "o1" || got.Status != "PROCESSING" {
		t.Fatalf("unexpected payload %+v", got)
	}
}

func TestDeliverOrderUpdateAlsoFeedsOwner(t *testing.T) {
	var mu sync.Mutex
	var paths []string
	var reply dto.ReplyNotice
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		paths = append(paths, r.URL.Path)
		if r.URL.Path == "/notify/reply" {
			_ = json.NewDecoder(r.Body).Decode(&reply)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client, err := NewHTTPClient(srv.URL, testLogger())
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	orderID := "o1"
	event := model.OrderUpdated(model.Transition{
		Order:        model.Order{ID: orderID, UserID: "u1", Status: model.OrderStatusShipped},
		From:         model.OrderStatusProcessing,
		Notification: model.Notification{ID: "n7", UserID: "u1", OrderID: &orderID, Message: "Pesanan dikirim"},
	})
	if err := client.Deliver(context.Background(), event); err != nil {
		t.Fatalf("deliver: %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if len(paths) != 2 || paths[0] != "/notify/order" || paths[1] != "/notify/reply" {
		t.Fatalf("expected order room then user feed, got %v", paths)
	}
	if reply.UserID != "u1" || reply.Notification.ID != "n7" || reply.Notification.Message != "Pesanan dikirim" {
		t.Fatalf("unexpected feed payload %+v", reply)
	}
}

func TestDeliverNotification(t *testing.T) {
	var gotPath string
	var got dto.ReplyNotice
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client, err := NewHTTPClient(srv.URL+"/relay", testLogger())
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	n := model.Notification{ID: "n1", UserID: "u1", Message: "Admin membalas ulasan Anda", CreatedAt: time.Now()}
	if err := client.Deliver(context.Background(), model.NotificationCreated(n)); err != nil {
		t.Fatalf("deliver: %v", err)
	}
	if gotPath != "/relay/notify/reply" {
		t.Fatalf("unexpected path %q", gotPath)
	}
	if got.UserID != "u1" || got.Notification.ID != "n1" || got.Notification.Message != n.Message {
		t.Fatalf("unexpected payload %+v", got)
	}
}

func TestDeliverRejectsUnsupportedEvents(t *testing.T) {
	client, err := NewHTTPClient("http://127.0.0.1:1", testLogger())
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	if err := client.Deliver(context.Background(), model.Event{Kind: "order:deleted"}); !errors.Is(err, ErrUnsupportedEvent) {
		t.Fatalf("expected unsupported event error, got %v", err)
	}
	if err := client.Deliver(context.Background(), model.Event{Kind: model.EventNotificationNew, UserID: "u1"}); !errors.Is(err, ErrUnsupportedEvent) {
		t.Fatalf("expected error for missing notification, got %v", err)
	}
}

func TestDeliverReportsRelayErrors(t *testing.T) {
	called := make(chan struct{}, 1)
	handler := slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
		if a.Key == slog.LevelKey && a.Value.Any() == slog.LevelError {
			select {
			case called <- struct{}{}:
			default:
			}
		}
		return a
	}})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"orderId is required"}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	client, err := NewHTTPClient(srv.URL, slog.New(handler))
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	if err := client.Deliver(context.Background(), model.Event{Kind: model.EventOrderUpdate}); err == nil {
		t.Fatal("expected error from relay")
	}
	select {
	case <-called:
	case <-time.After(time.Second):
		t.Fatal("expected error log to be written")
	}
}

func TestDeliverHonorsContextDeadline(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	client, err := NewHTTPClient(srv.URL, testLogger())
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if err := client.Deliver(ctx, model.Event{Kind: model.EventOrderUpdate, OrderID: "o1"}); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
}
