package constants

import (
	"path/filepath"
	"strings"
)

// Tipe file attachment (disimpan sebagai int kecil di DB)
const (
	FileTypeUnknown = 99
	FileTypeAudio   = 2
	FileTypeDocx    = 3
	FileTypePDF     = 4
	FileTypeSheet   = 5
	FileTypeImage   = 6
)

func DetectFileTypeFromExt(filename string) int {
	ext := strings.ToLower(filepath.Ext(filename))

	switch ext {
	case ".mp3", ".wav":
		return FileTypeAudio
	case ".doc", ".docx":
		return FileTypeDocx
	case ".pdf":
		return FileTypePDF
	case ".xls", ".xlsx", ".csv":
		return FileTypeSheet
	case ".png", ".jpg", ".jpeg", ".webp":
		return FileTypeImage
	default:
		return FileTypeUnknown
	}
}

func IsImageExt(filename string) bool {
	return DetectFileTypeFromExt(filename) == FileTypeImage
}
