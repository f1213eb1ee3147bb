// Package mocks provides testify mocks for domain interfaces.
package mocks

import (
	"context"
	"os"

	"github.com/stretchr/testify/mock"

	"roundtrip/internal/domain"
)

// MockFileSystemAdapter is a mock implementation of domain.FileSystemAdapter.
type MockFileSystemAdapter struct {
	mock.Mock
}

// NewMockFileSystemAdapter creates a new mock and registers its expectation
// check with t's cleanup.
func NewMockFileSystemAdapter(t interface {
	mock.TestingT
	Cleanup(func())
},
) *MockFileSystemAdapter {
	m := &MockFileSystemAdapter{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockFileSystemAdapter) CreateTemp(dir, pattern string) (domain.File, error) {
	args := m.Called(dir, pattern)
	var f domain.File
	if v := args.Get(0); v != nil {
		f = v.(domain.File)
	}
	return f, args.Error(1)
}

func (m *MockFileSystemAdapter) Open(path string) (domain.File, error) {
	args := m.Called(path)
	var f domain.File
	if v := args.Get(0); v != nil {
		f = v.(domain.File)
	}
	return f, args.Error(1)
}

func (m *MockFileSystemAdapter) Remove(path string) error {
	args := m.Called(path)
	return args.Error(0)
}

func (m *MockFileSystemAdapter) Stat(path string) (os.FileInfo, error) {
	args := m.Called(path)
	var fi os.FileInfo
	if v := args.Get(0); v != nil {
		fi = v.(os.FileInfo)
	}
	return fi, args.Error(1)
}

func (m *MockFileSystemAdapter) TempDir() string {
	args := m.Called()
	return args.String(0)
}

// MockHostInfoProvider is a mock implementation of domain.HostInfoProvider.
type MockHostInfoProvider struct {
	mock.Mock
}

// NewMockHostInfoProvider creates a new mock and registers its expectation
// check with t's cleanup.
func NewMockHostInfoProvider(t interface {
	mock.TestingT
	Cleanup(func())
},
) *MockHostInfoProvider {
	m := &MockHostInfoProvider{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockHostInfoProvider) HostInfo(ctx context.Context) (*domain.HostInfo, error) {
	args := m.Called(ctx)
	var info *domain.HostInfo
	if v := args.Get(0); v != nil {
		info = v.(*domain.HostInfo)
	}
	return info, args.Error(1)
}
