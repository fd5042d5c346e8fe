package commands

import (
	"context"
	"errors"
	"testing"
	"time"

	banner "github.com/goliatone/go-banner/components/banner"
)

type stubTelemetry struct {
	calls  int
	events []string
}

func (s *stubTelemetry) Record(_ context.Context, event string, _ map[string]any) {
	s.calls++
	s.events = append(s.events, event)
}

type stubService struct {
	startCalls   int
	contentCalls int
	metaCalls    int
	recipeCalls  int
	cancelCalls  int
	saveCalls    int
	lastAuthor   banner.AuthorContext
	lastRecipe   string
	err          error
}

func (s *stubService) StartSession(ctx context.Context, req banner.StartSessionRequest) (*banner.Session, error) {
	s.startCalls++
	s.lastAuthor = banner.AuthorFromContext(ctx)
	if s.err != nil {
		return nil, s.err
	}
	session := banner.NewSession("session-1", req.Variant, time.Now())
	session.AuthorID = req.AuthorID
	return session, nil
}

func (s *stubService) ApplyContent(ctx context.Context, id string, draft banner.ContentDraft) (*banner.Session, error) {
	s.contentCalls++
	s.lastAuthor = banner.AuthorFromContext(ctx)
	if s.err != nil {
		return nil, s.err
	}
	session := banner.NewSession(id, "", time.Now())
	session.ApplyContent(draft)
	return session, nil
}

func (s *stubService) ApplyMeta(_ context.Context, id string, draft banner.MetaDraft) (*banner.Session, error) {
	s.metaCalls++
	session := banner.NewSession(id, "", time.Now())
	session.ApplyMeta(draft)
	return session, s.err
}

func (s *stubService) SetRecipe(_ context.Context, id, recipe string) (*banner.Session, error) {
	s.recipeCalls++
	s.lastRecipe = recipe
	return banner.NewSession(id, "", time.Now()), s.err
}

func (s *stubService) Cancel(context.Context, string) error {
	s.cancelCalls++
	return s.err
}

func (s *stubService) Save(_ context.Context, id string) (banner.SaveEvent, error) {
	s.saveCalls++
	return banner.SaveEvent{SessionID: id}, s.err
}

func TestStartSessionCommand(t *testing.T) {
	service := &stubService{}
	telemetry := &stubTelemetry{}
	cmd := NewStartSessionCommand(service, telemetry)
	result := &StartSessionResult{}
	err := cmd.Execute(context.Background(), StartSessionInput{
		Author: Author{UserID: "author-1", Locale: "es"},
		Result: result,
	})
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if service.startCalls != 1 {
		t.Fatalf("expected start call")
	}
	if result.Session == nil || result.Session.AuthorID != "author-1" {
		t.Fatalf("expected result session with author, got %#v", result.Session)
	}
	if service.lastAuthor.Locale != "es" {
		t.Fatalf("expected author on context, got %#v", service.lastAuthor)
	}
	if telemetry.calls != 1 || telemetry.events[0] != "banner.command.start" {
		t.Fatalf("unexpected telemetry %#v", telemetry.events)
	}
}

func TestApplyContentCommand(t *testing.T) {
	service := &stubService{}
	telemetry := &stubTelemetry{}
	cmd := NewApplyContentCommand(service, telemetry)
	draft := banner.ContentDraft(banner.DefaultContent())
	draft.CtaText = "Shop Now"
	draft.CtaURL = "/shop"
	if err := cmd.Execute(context.Background(), ApplyContentInput{SessionID: "session-1", Draft: draft}); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if service.contentCalls != 1 || telemetry.calls != 1 {
		t.Fatalf("expected content call and telemetry")
	}
	if err := cmd.Execute(context.Background(), ApplyContentInput{}); err == nil {
		t.Fatalf("expected error for missing session id")
	}
}

func TestApplyMetaCommand(t *testing.T) {
	service := &stubService{}
	cmd := NewApplyMetaCommand(service, nil)
	if err := cmd.Execute(context.Background(), ApplyMetaInput{SessionID: "session-1", Draft: banner.MetaDraft(banner.DefaultMeta())}); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if service.metaCalls != 1 {
		t.Fatalf("expected meta call")
	}
}

func TestSetRecipeCommand(t *testing.T) {
	service := &stubService{}
	cmd := NewSetRecipeCommand(service, nil)
	if err := cmd.Execute(context.Background(), SetRecipeInput{SessionID: "session-1", Recipe: "promo-strip"}); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if service.recipeCalls != 1 || service.lastRecipe != "promo-strip" {
		t.Fatalf("expected recipe call with promo-strip")
	}
}

func TestCancelSessionCommand(t *testing.T) {
	service := &stubService{}
	cmd := NewCancelSessionCommand(service, nil)
	if err := cmd.Execute(context.Background(), CancelSessionInput{SessionID: "session-1"}); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if service.cancelCalls != 1 {
		t.Fatalf("expected cancel call")
	}
}

func TestSaveSessionCommand(t *testing.T) {
	service := &stubService{}
	cmd := NewSaveSessionCommand(service, nil)
	var event banner.SaveEvent
	if err := cmd.Execute(context.Background(), SaveSessionInput{SessionID: "session-1", Result: &event}); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if service.saveCalls != 1 || event.SessionID != "session-1" {
		t.Fatalf("expected save call and event, got %#v", event)
	}
}

func TestCommandsPropagateErrors(t *testing.T) {
	boom := errors.New("boom")
	service := &stubService{err: boom}
	telemetry := &stubTelemetry{}
	ctx := context.Background()
	if err := NewCancelSessionCommand(service, telemetry).Execute(ctx, CancelSessionInput{SessionID: "x"}); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if err := NewSaveSessionCommand(service, telemetry).Execute(ctx, SaveSessionInput{SessionID: "x"}); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if telemetry.calls != 0 {
		t.Fatalf("failed commands must not record telemetry")
	}
}

func TestCommandsRequireService(t *testing.T) {
	ctx := context.Background()
	if err := NewStartSessionCommand(nil, nil).Execute(ctx, StartSessionInput{}); err == nil {
		t.Fatalf("expected error without service")
	}
	if err := NewCancelSessionCommand(nil, nil).Execute(ctx, CancelSessionInput{}); err == nil {
		t.Fatalf("expected error without service")
	}
}

func TestCommandsAgainstService(t *testing.T) {
	svc := banner.NewService(banner.Options{})
	ctx := context.Background()
	result := &StartSessionResult{}
	if err := NewStartSessionCommand(svc, nil).Execute(ctx, StartSessionInput{Result: result}); err != nil {
		t.Fatalf("start returned error: %v", err)
	}
	id := result.Session.ID
	draft := banner.ContentDraft(banner.DefaultContent())
	draft.Header = "Spring"
	if err := NewApplyContentCommand(svc, nil).Execute(ctx, ApplyContentInput{SessionID: id, Draft: draft}); err != nil {
		t.Fatalf("apply content returned error: %v", err)
	}
	session, err := svc.Session(ctx, id)
	if err != nil {
		t.Fatalf("Session returned error: %v", err)
	}
	if session.Content.Header != "Spring" {
		t.Fatalf("expected header committed, got %q", session.Content.Header)
	}
	err = NewSetRecipeCommand(svc, nil).Execute(ctx, SetRecipeInput{SessionID: id, Recipe: "unknown"})
	if !errors.Is(err, banner.ErrUnknownRecipe) {
		t.Fatalf("expected ErrUnknownRecipe, got %v", err)
	}
}
