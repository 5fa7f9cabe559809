package postgres

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	mockRepo "connect/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func TestSweepExpiredSessions(t *testing.T) {
	sessionRepo := mockRepo.NewMockSessionRepository(t)

	swept := make(chan struct{}, 1)
	sessionRepo.On("DeleteExpired", mock.Anything).Run(func(mock.Arguments) {
		select {
		case swept <- struct{}{}:
		default:
		}
	}).Return(int64(3), nil)

	ctx, cancel := context.WithCancel(context.Background())
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	done := make(chan struct{})
	go func() {
		sweepExpiredSessions(ctx, logger, sessionRepo, 5*time.Millisecond)
		close(done)
	}()

	select {
	case <-swept:
	case <-time.After(time.Second):
		t.Fatal("expired sessions were never swept")
	}

	cancel()
	<-done
}
