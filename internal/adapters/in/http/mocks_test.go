package http_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

type MockCommandHandler[C any] struct{ mock.Mock }

func (m *MockCommandHandler[C]) Handle(ctx context.Context, cmd C) error {
	args := m.Called(ctx, cmd)
	return args.Error(0)
}

type MockQueryHandler[Q any, R any] struct{ mock.Mock }

func (m *MockQueryHandler[Q, R]) Handle(ctx context.Context, query Q) (R, error) {
	args := m.Called(ctx, query)
	resp, _ := args.Get(0).(R)
	return resp, args.Error(1)
}

type stubHealth struct {
	checkedAt time.Time
	err       error
}

func (s stubHealth) LastCheck() (time.Time, error) {
	return s.checkedAt, s.err
}
