package mocks

import (
	"github.com/stretchr/testify/mock"
)

// MockFileSystem implements pycommander.FileSystemOperator for testing
// callers without a real tree
type MockFileSystem struct {
	mock.Mock
}

func (m *MockFileSystem) List(path string) ([]string, error) {
	args := m.Called(path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockFileSystem) Mkdir(parentPath, name string) error {
	args := m.Called(parentPath, name)
	return args.Error(0)
}

func (m *MockFileSystem) ReadFile(path string) (string, error) {
	args := m.Called(path)
	return args.String(0), args.Error(1)
}

func (m *MockFileSystem) Remove(path string) error {
	args := m.Called(path)
	return args.Error(0)
}

func (m *MockFileSystem) Autocomplete(dirPath, prefix string) []string {
	args := m.Called(dirPath, prefix)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]string)
}

func (m *MockFileSystem) ChangeDirectory(cwd, expr string) (string, error) {
	args := m.Called(cwd, expr)
	return args.String(0), args.Error(1)
}
