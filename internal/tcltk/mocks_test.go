package tcltk

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// mockProbe mocks domain.InterpreterProbe
type mockProbe struct {
	mock.Mock
}

func (m *mockProbe) LibraryRoot(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *mockProbe) TclVersion(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *mockProbe) TkVersion(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

// mockScanner mocks domain.DependencyScanner
type mockScanner struct {
	mock.Mock
}

func (m *mockScanner) SelectImports(binPath string) ([]string, error) {
	args := m.Called(binPath)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *mockScanner) Imports(binPath string) ([]string, error) {
	args := m.Called(binPath)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
