package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/wheelbet/internal/session"
)

// MockSnapshotReader mocks SnapshotReader
type MockSnapshotReader struct {
	mock.Mock
}

func (m *MockSnapshotReader) Snapshot(ctx context.Context) (session.Snapshot, error) {
	args := m.Called(ctx)
	return args.Get(0).(session.Snapshot), args.Error(1)
}
