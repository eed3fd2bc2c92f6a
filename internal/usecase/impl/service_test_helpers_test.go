package impl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"feria/internal/domain/entity"
	"feria/internal/domain/service"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeStream implements service.CaptureStream for tests.
type fakeStream struct {
	id     string
	mu     sync.Mutex
	closed int
}

func (s *fakeStream) ID() string { return s.id }

func (s *fakeStream) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.closed == 0
}

func (s *fakeStream) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed++

	return nil
}

func (s *fakeStream) closeCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.closed
}

// fakeCamera hands out numbered streams and remembers them so tests can
// check release pairing.
type fakeCamera struct {
	mu         sync.Mutex
	streams    []*fakeStream
	acquireErr error
}

func (c *fakeCamera) Acquire(_ context.Context) (service.CaptureStream, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.acquireErr != nil {
		return nil, c.acquireErr
	}

	stream := &fakeStream{id: fmt.Sprintf("stream-%d", len(c.streams)+1)}
	c.streams = append(c.streams, stream)

	return stream, nil
}

// stubAssistant implements service.AssistantService with canned answers.
// When release is set, MediateClaim and GenerateDescription signal started
// and then block until released, which lets tests leave the view mid-call.
type stubAssistant struct {
	mediation service.Mediation
	insight   string
	search    service.SearchResult
	copyText  service.ProductCopy
	tip       string

	started chan struct{}
	release chan struct{}

	mu          sync.Mutex
	claimTexts  []string
	vendorNames []string
	searchQuery string
}

func newStubAssistant() *stubAssistant {
	return &stubAssistant{
		mediation: service.Mediation{Response: "Lo vamos a resolver.", Category: "Calidad"},
		insight:   "Un clásico del barrio.",
		search:    service.SearchResult{Recommendation: "Probá el puesto de Rosa.", MatchingVendorIDs: []string{"v1"}},
		copyText:  service.ProductCopy{Description: "Recién hecho, como en casa.", SuggestedPrice: 1200},
		tip:       "Ofrecé degustaciones hoy.",
	}
}

func (a *stubAssistant) block() {
	a.started = make(chan struct{})
	a.release = make(chan struct{})
}

func (a *stubAssistant) wait() {
	if a.started != nil {
		<-a.started
	}
}

func (a *stubAssistant) unblock() {
	if a.release != nil {
		close(a.release)
	}
}

func (a *stubAssistant) hold() {
	if a.started != nil {
		a.started <- struct{}{}
	}
	if a.release != nil {
		<-a.release
	}
}

func (a *stubAssistant) MediateClaim(_ context.Context, claimText, vendorName string) (service.Mediation, error) {
	a.mu.Lock()
	a.claimTexts = append(a.claimTexts, claimText)
	a.vendorNames = append(a.vendorNames, vendorName)
	a.mu.Unlock()

	a.hold()

	return a.mediation, nil
}

func (a *stubAssistant) VendorInsight(_ context.Context, _ *entity.Vendor) (string, error) {
	return a.insight, nil
}

func (a *stubAssistant) SmartSearch(_ context.Context, query string, _ []*entity.Vendor) (service.SearchResult, error) {
	a.mu.Lock()
	a.searchQuery = query
	a.mu.Unlock()

	return a.search, nil
}

func (a *stubAssistant) GenerateDescription(_ context.Context, _ string) (service.ProductCopy, error) {
	a.hold()

	return a.copyText, nil
}

func (a *stubAssistant) DailySellerTip(_ context.Context, _ string) (string, error) {
	return a.tip, nil
}

// stubTokenService signs predictable tokens for tests.
type stubTokenService struct{}

func (stubTokenService) GenerateToken(userID string, role string) (string, error) {
	return "token-" + userID + "-" + role, nil
}

func (stubTokenService) ValidateToken(_ string) (*service.SessionClaims, error) {
	return nil, fmt.Errorf("not implemented")
}
