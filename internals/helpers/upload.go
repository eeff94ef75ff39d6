// internals/helpers/upload.go
package helper

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

const (
	// batas upload cover 5MB
	MaxCoverImageSize = 5 * 1024 * 1024
	// cover dire-encode ke webp, lebar maksimum
	maxCoverWidth = 1024
)

var allowedCoverExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// ✅ Buat nama unik
func sanitizeFilename(filename string) string {
	// Hapus karakter selain huruf, angka, titik, dash, underscore
	re := regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)
	return re.ReplaceAllString(filename, "_")
}

func GenerateUniqueFilename(originalFilename string) string {
	timestamp := time.Now().Format("20060102")
	base := strings.TrimSuffix(sanitizeFilename(originalFilename), filepath.Ext(originalFilename))
	return fmt.Sprintf("book-%s-%s-%s.webp", timestamp, uuid.New().String(), base)
}

// SaveCoverImage menyimpan cover dari form multipart ke uploadDir dan
// mengembalikan path publiknya ("/uploads/<file>"). Gambar didecode,
// diperkecil bila lebih lebar dari maxCoverWidth, lalu dire-encode webp.
func SaveCoverImage(fh *multipart.FileHeader, uploadDir string) (string, error) {
	if fh.Size > MaxCoverImageSize {
		return "", fmt.Errorf("ukuran gambar melebihi 5MB (%dKB)", fh.Size/1024)
	}
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !allowedCoverExts[ext] {
		return "", fmt.Errorf("hanya file gambar (jpg/jpeg/png/webp) yang diizinkan")
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("gagal membuka file gambar: %w", err)
	}
	defer src.Close()

	var img image.Image
	if ext == ".webp" {
		img, err = webp.Decode(src)
	} else {
		img, _, err = image.Decode(src)
	}
	if err != nil {
		return "", fmt.Errorf("gagal decode gambar: %w", err)
	}

	if img.Bounds().Dx() > maxCoverWidth {
		img = imaging.Resize(img, maxCoverWidth, 0, imaging.Lanczos)
	}

	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		return "", fmt.Errorf("gagal menyiapkan folder upload: %w", err)
	}

	filename := GenerateUniqueFilename(fh.Filename)
	out, err := os.Create(filepath.Join(uploadDir, filename))
	if err != nil {
		return "", fmt.Errorf("gagal membuat file: %w", err)
	}
	defer out.Close()

	if err := webp.Encode(out, img, &webp.Options{Quality: 80}); err != nil {
		return "", fmt.Errorf("gagal encode webp: %w", err)
	}

	return "/uploads/" + filename, nil
}
