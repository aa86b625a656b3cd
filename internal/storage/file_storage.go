// Package storage persists uploaded listing images on the local filesystem.
package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Security errors
var (
	ErrPathTraversal = errors.New("path traversal detected")
	ErrFileNotFound  = errors.New("file not found")
	ErrFileTooLarge  = errors.New("file exceeds size limit")
	ErrNotAnImage    = errors.New("file type is not an allowed image")
)

// MaxImageSize is the maximum allowed upload size (5 MB)
const MaxImageSize = 5 * 1024 * 1024

// AllowedImageExtensions is the allow-list for listing photos
var AllowedImageExtensions = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
}

// ImageStorage defines the interface for listing image operations
type ImageStorage interface {
	Save(filename string, content io.Reader) (string, error)
	Get(filePath string) (io.ReadCloser, error)
	Delete(filePath string) error
}

// localStorage implements ImageStorage using the local filesystem
type localStorage struct {
	basePath string
}

// NewLocalStorage creates a new localStorage instance
func NewLocalStorage(basePath string) (ImageStorage, error) {
	// Ensure base directory exists
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &localStorage{basePath: basePath}, nil
}

// validatePath ensures path is within basePath (prevents traversal)
func (s *localStorage) validatePath(filePath string) (string, error) {
	// Clean the path
	cleanPath := filepath.Clean(filePath)

	// Prevent absolute paths
	if filepath.IsAbs(cleanPath) {
		return "", ErrPathTraversal
	}

	// Prevent path traversal
	if strings.Contains(cleanPath, "..") {
		return "", ErrPathTraversal
	}

	// Build full path
	fullPath := filepath.Join(s.basePath, cleanPath)

	// Get absolute paths for comparison
	absPath, err := filepath.Abs(fullPath)
	if err != nil {
		return "", fmt.Errorf("invalid file path: %w", err)
	}

	absBase, err := filepath.Abs(s.basePath)
	if err != nil {
		return "", fmt.Errorf("invalid base path: %w", err)
	}

	// Security check: ensure file is within allowed directory
	if !strings.HasPrefix(absPath, absBase+string(filepath.Separator)) &&
		absPath != absBase {
		return "", ErrPathTraversal
	}

	return absPath, nil
}

// ValidateImage checks the upload against the extension allow-list and the
// size cap. Returns the content type to store alongside the path.
func ValidateImage(filename string, size int64) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	contentType, ok := AllowedImageExtensions[ext]
	if !ok {
		return "", ErrNotAnImage
	}

	if size > MaxImageSize {
		return "", ErrFileTooLarge
	}

	return contentType, nil
}

// Save stores an image and returns the relative path
func (s *localStorage) Save(filename string, content io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if _, ok := AllowedImageExtensions[ext]; !ok {
		return "", ErrNotAnImage
	}

	// Generate unique filename to prevent conflicts
	uniqueName := fmt.Sprintf("%s%s", uuid.New().String(), ext)

	// Create subdirectory based on first 2 chars of UUID for better distribution
	subDir := uniqueName[:2]
	dirPath := filepath.Join(s.basePath, subDir)

	if err := os.MkdirAll(dirPath, 0755); err != nil {
		return "", fmt.Errorf("failed to create subdirectory: %w", err)
	}

	// Full path for the file
	filePath := filepath.Join(subDir, uniqueName)
	fullPath := filepath.Join(s.basePath, filePath)

	// Create file
	file, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	// Copy content, refusing anything past the size cap
	written, err := io.Copy(file, io.LimitReader(content, MaxImageSize+1))
	if err != nil {
		os.Remove(fullPath)
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	if written > MaxImageSize {
		os.Remove(fullPath)
		return "", ErrFileTooLarge
	}

	return filePath, nil
}

// Get retrieves an image by its path
func (s *localStorage) Get(filePath string) (io.ReadCloser, error) {
	// Validate path to prevent traversal
	fullPath, err := s.validatePath(filePath)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(fullPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrFileNotFound
		}
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	return file, nil
}

// Delete removes an image by its path
func (s *localStorage) Delete(filePath string) error {
	// Validate path to prevent traversal
	fullPath, err := s.validatePath(filePath)
	if err != nil {
		return err
	}

	if err := os.Remove(fullPath); err != nil {
		if os.IsNotExist(err) {
			// File already doesn't exist, not an error
			return nil
		}
		return fmt.Errorf("failed to delete file: %w", err)
	}

	return nil
}
