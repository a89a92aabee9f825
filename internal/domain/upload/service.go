// internal/domain/upload/service.go
package upload

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/your-org/warehouse-backend/internal/config"
	"gorm.io/gorm"
)

// Service handles file upload business logic
type Service struct {
	db     *gorm.DB
	config *config.Config
}

// NewService creates a new upload service
func NewService(db *gorm.DB, cfg *config.Config) *Service {
	return &Service{
		db:     db,
		config: cfg,
	}
}

// ImageUploadRequest represents an image upload request
type ImageUploadRequest struct {
	File       multipart.File        `json:"-"`
	Header     *multipart.FileHeader `json:"-"`
	Category   string                `json:"category"`
	AltText    string                `json:"alt_text"`
	UploadedBy uint                  `json:"uploaded_by"`
}

// ImageListRequest represents image list request
type ImageListRequest struct {
	Page     int    `form:"page"`
	Limit    int    `form:"limit"`
	Category string `form:"category"`
}

// ImageListResponse represents image list response
type ImageListResponse struct {
	Images     []UploadedFile `json:"images"`
	Pagination Pagination     `json:"pagination"`
}

// Pagination represents pagination information
type Pagination struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	Total      int  `json:"total"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_prev"`
}

// UploadImage uploads a single image
func (s *Service) UploadImage(req *ImageUploadRequest) (*UploadedFile, error) {
	if err := s.validateImageFile(req.Header); err != nil {
		return nil, err
	}

	filename := s.generateUniqueFilename(req.Header.Filename)

	category := req.Category
	if category == "" {
		category = "general"
	}

	relativePath := filepath.Join(category, filename)
	fullPath := filepath.Join(s.config.Upload.LocalPath, relativePath)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	dst, err := os.Create(fullPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, req.File); err != nil {
		return nil, fmt.Errorf("failed to save file: %w", err)
	}

	width, height := s.getImageDimensions(fullPath)

	thumbnailURL := ""
	if thumbnailPath, err := s.generateThumbnail(fullPath, category, filename); err == nil {
		thumbnailURL = s.getFileURL(thumbnailPath)
	}

	uploadedFile := UploadedFile{
		OriginalName: req.Header.Filename,
		Filename:     filename,
		Path:         relativePath,
		URL:          s.getFileURL(relativePath),
		MimeType:     s.getMimeType(req.Header.Filename),
		Size:         req.Header.Size,
		Category:     category,
		AltText:      req.AltText,
		Width:        width,
		Height:       height,
		ThumbnailURL: thumbnailURL,
		UploadedBy:   req.UploadedBy,
	}

	if err := s.db.Create(&uploadedFile).Error; err != nil {
		// Clean up file if database insert fails
		os.Remove(fullPath)
		return nil, fmt.Errorf("failed to save file info: %w", err)
	}

	return &uploadedFile, nil
}

// GetImages returns a paginated list of uploaded images
func (s *Service) GetImages(req *ImageListRequest) (*ImageListResponse, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.Limit < 1 || req.Limit > 100 {
		req.Limit = 20
	}

	query := s.db.Model(&UploadedFile{})
	if req.Category != "" {
		query = query.Where("category = ?", req.Category)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count images: %w", err)
	}

	var images []UploadedFile
	offset := (req.Page - 1) * req.Limit
	if err := query.Order("created_at DESC").Offset(offset).Limit(req.Limit).Find(&images).Error; err != nil {
		return nil, fmt.Errorf("failed to list images: %w", err)
	}

	totalPages := int((total + int64(req.Limit) - 1) / int64(req.Limit))

	return &ImageListResponse{
		Images: images,
		Pagination: Pagination{
			Page:       req.Page,
			Limit:      req.Limit,
			Total:      int(total),
			TotalPages: totalPages,
			HasNext:    req.Page < totalPages,
			HasPrev:    req.Page > 1,
		},
	}, nil
}

// GetImage returns a single uploaded image by ID
func (s *Service) GetImage(imageID uint) (*UploadedFile, error) {
	var uploadedFile UploadedFile
	if err := s.db.First(&uploadedFile, imageID).Error; err != nil {
		return nil, fmt.Errorf("image not found")
	}
	return &uploadedFile, nil
}

// DeleteImage deletes an uploaded image and its files on disk
func (s *Service) DeleteImage(imageID uint) error {
	var uploadedFile UploadedFile
	if err := s.db.First(&uploadedFile, imageID).Error; err != nil {
		return fmt.Errorf("image not found")
	}

	fullPath := filepath.Join(s.config.Upload.LocalPath, uploadedFile.Path)
	if err := os.Remove(fullPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}

	if uploadedFile.ThumbnailURL != "" {
		thumbnailPath := strings.TrimPrefix(uploadedFile.ThumbnailURL, s.config.Upload.BaseURL+"/")
		os.Remove(filepath.Join(s.config.Upload.LocalPath, thumbnailPath))
	}

	if err := s.db.Delete(&uploadedFile).Error; err != nil {
		return fmt.Errorf("failed to delete file record: %w", err)
	}

	return nil
}

// validateImageFile checks size and extension limits
func (s *Service) validateImageFile(header *multipart.FileHeader) error {
	if header.Size > s.config.Upload.MaxSize {
		return fmt.Errorf("file too large: maximum size is %d bytes", s.config.Upload.MaxSize)
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	for _, allowed := range s.config.Upload.AllowedExtensions {
		if ext == allowed {
			return nil
		}
	}

	return fmt.Errorf("file type %s is not allowed", ext)
}

// generateUniqueFilename creates a collision-free filename keeping the extension
func (s *Service) generateUniqueFilename(original string) string {
	ext := strings.ToLower(filepath.Ext(original))
	return uuid.New().String() + ext
}

func (s *Service) getMimeType(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	default:
		return "application/octet-stream"
	}
}

func (s *Service) getFileURL(relativePath string) string {
	return s.config.Upload.BaseURL + "/" + filepath.ToSlash(relativePath)
}

// getImageDimensions reads image dimensions without decoding pixel data
func (s *Service) getImageDimensions(path string) (int, int) {
	file, err := os.Open(path)
	if err != nil {
		return 0, 0
	}
	defer file.Close()

	cfg, _, err := image.DecodeConfig(file)
	if err != nil {
		return 0, 0
	}
	return cfg.Width, cfg.Height
}

// generateThumbnail writes a downscaled copy next to the original
func (s *Service) generateThumbnail(fullPath, category, filename string) (string, error) {
	file, err := os.Open(fullPath)
	if err != nil {
		return "", err
	}
	defer file.Close()

	src, format, err := image.Decode(file)
	if err != nil {
		return "", err
	}

	maxW := s.config.Upload.ThumbnailWidth
	maxH := s.config.Upload.ThumbnailHeight
	bounds := src.Bounds()
	srcW, srcH := bounds.Dx(), bounds.Dy()
	if srcW <= maxW && srcH <= maxH {
		// Already small enough, no thumbnail needed
		return "", fmt.Errorf("image within thumbnail bounds")
	}

	scaleW := float64(maxW) / float64(srcW)
	scaleH := float64(maxH) / float64(srcH)
	scale := scaleW
	if scaleH < scale {
		scale = scaleH
	}
	dstW := int(float64(srcW) * scale)
	dstH := int(float64(srcH) * scale)

	dst := image.NewRGBA(image.Rect(0, 0, dstW, dstH))
	for y := 0; y < dstH; y++ {
		for x := 0; x < dstW; x++ {
			srcX := bounds.Min.X + x*srcW/dstW
			srcY := bounds.Min.Y + y*srcH/dstH
			dst.Set(x, y, src.At(srcX, srcY))
		}
	}

	thumbRelative := filepath.Join(category, "thumbs", filename)
	thumbFull := filepath.Join(s.config.Upload.LocalPath, thumbRelative)
	if err := os.MkdirAll(filepath.Dir(thumbFull), 0755); err != nil {
		return "", err
	}

	out, err := os.Create(thumbFull)
	if err != nil {
		return "", err
	}
	defer out.Close()

	switch format {
	case "png":
		err = png.Encode(out, dst)
	default:
		err = jpeg.Encode(out, dst, &jpeg.Options{Quality: 85})
	}
	if err != nil {
		os.Remove(thumbFull)
		return "", err
	}

	return thumbRelative, nil
}
