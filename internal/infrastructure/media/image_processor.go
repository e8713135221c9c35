// Package media provides image processing utilities
package media

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

// ImageProcessor handles project image uploads under the media directory.
type ImageProcessor struct {
	basePath string
}

// NewImageProcessor creates a new ImageProcessor instance
func NewImageProcessor(basePath string) *ImageProcessor {
	return &ImageProcessor{
		basePath: basePath,
	}
}

// ProcessProjectImage stores an uploaded base64 project image and generates
// WebP thumbnails. The original lands in /images/projects/ and the
// thumbnails in /images/thumbs/. Returns the original's relative URL path
// and the thumbnail paths.
func (p *ImageProcessor) ProcessProjectImage(data, projectID string) (string, []string, error) {
	if data == "" {
		return "", nil, fmt.Errorf("empty base64 data")
	}

	ext := extractExtension(data)
	if ext == "" {
		return "", nil, fmt.Errorf("unsupported image format")
	}

	// Timestamped filename keeps re-uploads from colliding with stale cache
	timestamp := time.Now().UnixMilli()
	filename := fmt.Sprintf("%s-%d.%s", projectID, timestamp, ext)

	projectsDir := filepath.Join(p.basePath, "images", "projects")
	thumbsDir := filepath.Join(p.basePath, "images", "thumbs")

	if err := os.MkdirAll(projectsDir, 0755); err != nil {
		return "", nil, fmt.Errorf("failed to create projects directory: %w", err)
	}
	if err := os.MkdirAll(thumbsDir, 0755); err != nil {
		return "", nil, fmt.Errorf("failed to create thumbs directory: %w", err)
	}

	originalPath, err := writeBinaryImage(data, filename, projectsDir)
	if err != nil {
		return "", nil, fmt.Errorf("failed to save original image: %w", err)
	}

	thumbnailPaths, err := p.generateWebPThumbnails(originalPath, projectID, timestamp, thumbsDir)
	if err != nil {
		os.Remove(originalPath)
		return "", nil, fmt.Errorf("failed to generate thumbnails: %w", err)
	}

	relativeOriginal := fmt.Sprintf("/media/images/projects/%s", filename)
	relativeThumbnails := make([]string, len(thumbnailPaths))
	for i, thumbPath := range thumbnailPaths {
		relativeThumbnails[i] = fmt.Sprintf("/media/images/thumbs/%s", filepath.Base(thumbPath))
	}

	return relativeOriginal, relativeThumbnails, nil
}

// DeleteProjectImage removes a stored project image and its thumbnails.
func (p *ImageProcessor) DeleteProjectImage(imagePath string) error {
	if imagePath == "" {
		return fmt.Errorf("empty image path")
	}

	filename := filepath.Base(imagePath)
	basename := filename
	if dotIndex := strings.LastIndex(filename, "."); dotIndex != -1 {
		basename = filename[:dotIndex]
	}

	originalPath := filepath.Join(p.basePath, strings.TrimPrefix(imagePath, "/media/"))
	if err := os.Remove(originalPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove original image: %w", err)
	}

	thumbsDir := filepath.Join(p.basePath, "images", "thumbs")
	for _, size := range []string{"1200px", "600px", "300px"} {
		thumbPath := filepath.Join(thumbsDir, fmt.Sprintf("%s_%s.webp", basename, size))
		// Missing thumbnails are fine, keep removing the rest
		if err := os.Remove(thumbPath); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove thumbnail %s: %w", thumbPath, err)
		}
	}

	return nil
}

// generateWebPThumbnails creates 1200px, 600px, and 300px WebP thumbnails
func (p *ImageProcessor) generateWebPThumbnails(originalPath, projectID string, timestamp int64, thumbsDir string) ([]string, error) {
	originalFile, err := os.Open(originalPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open original file: %w", err)
	}
	defer originalFile.Close()

	img, err := imaging.Decode(originalFile)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	basename := fmt.Sprintf("%s-%d", projectID, timestamp)
	sizes := []int{1200, 600, 300}
	thumbnailPaths := make([]string, len(sizes))

	for i, width := range sizes {
		resized := imaging.Resize(img, width, 0, imaging.Lanczos)

		thumbFilename := fmt.Sprintf("%s_%dpx.webp", basename, width)
		thumbPath := filepath.Join(thumbsDir, thumbFilename)

		if err := webp.Save(thumbPath, resized, &webp.Options{Quality: 85}); err != nil {
			for j := 0; j < i; j++ {
				os.Remove(thumbnailPaths[j])
			}
			return nil, fmt.Errorf("failed to save WebP thumbnail %s: %w", thumbFilename, err)
		}

		thumbnailPaths[i] = thumbPath
	}

	return thumbnailPaths, nil
}

// extractExtension auto-detects file extension from MIME type
func extractExtension(data string) string {
	if strings.Contains(data, "data:image/png") {
		return "png"
	} else if strings.Contains(data, "data:image/jpeg") || strings.Contains(data, "data:image/jpg") {
		return "jpg"
	} else if strings.Contains(data, "data:image/webp") {
		return "webp"
	}
	return ""
}

// writeBinaryImage decodes a base64 data URL and writes it to disk.
func writeBinaryImage(data, filename, targetDir string) (string, error) {
	binaryPattern := regexp.MustCompile(`^data:image/\w+;base64,`)
	if !binaryPattern.MatchString(data) {
		return "", fmt.Errorf("invalid binary image base64 format")
	}

	b64Data := binaryPattern.ReplaceAllString(data, "")
	decoded, err := base64.StdEncoding.DecodeString(b64Data)
	if err != nil {
		return "", fmt.Errorf("failed to decode base64: %w", err)
	}

	fullPath := filepath.Join(targetDir, filename)
	if err := os.WriteFile(fullPath, decoded, 0644); err != nil {
		return "", fmt.Errorf("failed to write binary file: %w", err)
	}

	return fullPath, nil
}
