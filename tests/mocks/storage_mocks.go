package mocks

import (
	"io"

	"github.com/stretchr/testify/mock"
)

// MockImageStorage implements storage.ImageStorage
type MockImageStorage struct {
	mock.Mock
}

// Save stores an image and returns the relative path
func (m *MockImageStorage) Save(filename string, content io.Reader) (string, error) {
	args := m.Called(filename, content)
	return args.String(0), args.Error(1)
}

// Get retrieves an image by its path
func (m *MockImageStorage) Get(filePath string) (io.ReadCloser, error) {
	args := m.Called(filePath)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(io.ReadCloser), args.Error(1)
}

// Delete removes an image by its path
func (m *MockImageStorage) Delete(filePath string) error {
	args := m.Called(filePath)
	return args.Error(0)
}
