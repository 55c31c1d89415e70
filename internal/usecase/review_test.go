package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	domainErrors "github.com/polkiloo/panganku/internal/domain/errors"
	"github.com/polkiloo/panganku/internal/domain/model"
	testhelpers "github.com/polkiloo/panganku/internal/test"
)

func newReviewFixture() (*ReviewUseCase, *testhelpers.ReviewRepositoryStub, *testhelpers.NotifierRecorder) {
	products := &testhelpers.ProductRepositoryStub{Products: map[string]*model.Product{
		"p1": {ID: "p1", Name: "Apel", Price: decimal.NewFromInt(25000)},
	}}
	reviews := &testhelpers.ReviewRepositoryStub{}
	notifier := &testhelpers.NotifierRecorder{}
	return NewReviewUseCase(reviews, products, notifier), reviews, notifier
}

func TestReviewCreate(t *testing.T) {
	uc, _, _ := newReviewFixture()
	ctx := context.Background()

	for _, rating := range []int{0, 6} {
		if _, err := uc.Create(ctx, "u1", "p1", rating, "ok"); !errors.Is(err, domainErrors.ErrValidation) {
			t.Fatalf("rating %d: expected validation error, got %v", rating, err)
		}
	}
	if _, err := uc.Create(ctx, "u1", "missing", 5, "ok"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found for unknown product, got %v", err)
	}

	review, err := uc.Create(ctx, "u1", "p1", 5, "  segar sekali ")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if review.Comment != "segar sekali" || review.UserID != "u1" {
		t.Fatalf("unexpected review %+v", review)
	}
	list, err := uc.ListByProduct(ctx, "p1")
	if err != nil || len(list) != 1 {
		t.Fatalf("unexpected reviews %+v err=%v", list, err)
	}
}

func TestReviewReplyNotifiesAuthor(t *testing.T) {
	uc, _, notifier := newReviewFixture()
	ctx := context.Background()

	review, err := uc.Create(ctx, "u1", "p1", 4, "enak")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := uc.Reply(ctx, review.ID, "  "); !errors.Is(err, domainErrors.ErrValidation) {
		t.Fatalf("expected validation error for blank reply, got %v", err)
	}

	result, err := uc.Reply(ctx, review.ID, "Terima kasih!")
	if err != nil {
		t.Fatalf("reply: %v", err)
	}
	if result.Review.Reply == nil || *result.Review.Reply != "Terima kasih!" {
		t.Fatalf("reply not stored: %+v", result.Review)
	}
	if !strings.Contains(result.Notification.Message, "Terima kasih!") {
		t.Fatalf("unexpected notification message %q", result.Notification.Message)
	}

	events := notifier.Events()
	if len(events) != 1 || events[0].Kind != model.EventNotificationNew || events[0].UserID != "u1" {
		t.Fatalf("unexpected events %+v", events)
	}
}

func TestReviewReplyFailureDoesNotNotify(t *testing.T) {
	uc, _, notifier := newReviewFixture()
	if _, err := uc.Reply(context.Background(), "missing", "hello"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if len(notifier.Events()) != 0 {
		t.Fatalf("failed reply must not notify")
	}
}
