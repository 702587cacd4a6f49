// internals/helpers/oss/oss_client.go
package helper

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"log"
	"math"
	"mime"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/chai2010/webp"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/image/draw"
)

func getEnv(k string) string { return strings.TrimSpace(os.Getenv(k)) }

func envInt(key string, def int) int {
	if v := getEnv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}

func envFloat(key string, def float32) float32 {
	if v := getEnv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 32); err == nil && f >= 0 {
			return float32(f)
		}
	}
	return def
}

var (
	// batas ukuran uploader di controller (guard ringan)
	maxUploadSize = int64(10 * 1024 * 1024)
)

/* =======================================================================
   Konfigurasi WebP (ENV-Driven)
======================================================================= */

type WebPOptions struct {
	MaxW    int     // batas lebar (resize keep-aspect)
	MaxH    int     // batas tinggi
	Quality float32 // quality encode (lossy)
}

func defaultWebPOptionsFromEnv() WebPOptions {
	return WebPOptions{
		MaxW:    envInt("IMAGE_WEBP_MAX_W", 1600),
		MaxH:    envInt("IMAGE_WEBP_MAX_H", 1600),
		Quality: envFloat("IMAGE_WEBP_QUALITY", 80),
	}
}

/* =======================================================================
   Decode gambar (jpeg/png/webp) dari []byte dengan sniff MIME
======================================================================= */

func decodeImage(all []byte, filename string) (image.Image, error) {
	if len(all) == 0 {
		return nil, fmt.Errorf("empty file")
	}
	head := all
	if len(head) > 512 {
		head = head[:512]
	}
	ct := http.DetectContentType(head)

	var (
		img image.Image
		err error
	)

	switch {
	case strings.Contains(ct, "jpeg"):
		img, err = jpeg.Decode(bytes.NewReader(all))
	case strings.Contains(ct, "png"):
		img, err = png.Decode(bytes.NewReader(all))
	case strings.Contains(ct, "webp"):
		img, err = webp.Decode(bytes.NewReader(all))
	default:
		// fallback by extension
		ext := strings.ToLower(filepath.Ext(filename))
		switch ext {
		case ".jpg", ".jpeg":
			img, err = jpeg.Decode(bytes.NewReader(all))
		case ".png":
			img, err = png.Decode(bytes.NewReader(all))
		case ".webp":
			img, err = webp.Decode(bytes.NewReader(all))
		default:
			return nil, fmt.Errorf("format tidak didukung: %s / %s", ct, ext)
		}
	}
	return img, err
}

/* =======================================================================
   Resize helper (keep aspect). Pakai CatmullRom (kualitas bagus).
======================================================================= */

func downscaleIfNeeded(src image.Image, maxW, maxH int) image.Image {
	if maxW <= 0 && maxH <= 0 {
		return src
	}
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if (maxW > 0 && w > maxW) || (maxH > 0 && h > maxH) {
		scale := 1.0
		if maxW > 0 {
			scale = math.Min(scale, float64(maxW)/float64(w))
		}
		if maxH > 0 {
			scale = math.Min(scale, float64(maxH)/float64(h))
		}
		nw := int(math.Round(float64(w) * scale))
		nh := int(math.Round(float64(h) * scale))
		if nw < 1 {
			nw = 1
		}
		if nh < 1 {
			nh = 1
		}
		dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
		return dst
	}
	return src
}

func encodeToWebP(img image.Image, opt WebPOptions) ([]byte, error) {
	q := opt.Quality
	if q <= 0 {
		q = 80
	}
	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, img, &webp.Options{Lossless: false, Quality: q}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ConvertToWebP: baca → decode → resize (opsional) → encode webp
func ConvertToWebP(file multipart.File, filename string) ([]byte, error) {
	opts := defaultWebPOptionsFromEnv()

	all, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return nil, fmt.Errorf("empty file")
	}

	img, err := decodeImage(all, filename)
	if err != nil {
		return nil, err
	}

	img = downscaleIfNeeded(img, opts.MaxW, opts.MaxH)
	return encodeToWebP(img, opts)
}

/* =======================================================================
   OSS Service
======================================================================= */

type OSSService struct {
	Client     *oss.Client
	Bucket     *oss.Bucket
	Endpoint   string
	BucketName string
	Prefix     string // optional: "uploads/"
}

func NewOSSServiceFromEnv(prefix string) (*OSSService, error) {
	endpoint := getEnv("ALI_OSS_ENDPOINT")
	ak := getEnv("ALI_OSS_ACCESS_KEY")
	sk := getEnv("ALI_OSS_SECRET_KEY")
	sts := getEnv("ALI_OSS_SECURITY_TOKEN")
	bucketName := getEnv("ALI_OSS_BUCKET")
	if endpoint == "" || ak == "" || sk == "" || bucketName == "" {
		return nil, fmt.Errorf("missing env: ALI_OSS_ENDPOINT/ACCESS_KEY/SECRET_KEY/BUCKET")
	}

	var (
		client *oss.Client
		err    error
	)
	if sts != "" {
		client, err = oss.New(endpoint, ak, sk, oss.SecurityToken(sts))
	} else {
		client, err = oss.New(endpoint, ak, sk)
	}
	if err != nil {
		return nil, fmt.Errorf("oss.New: %w", err)
	}

	bkt, err := client.Bucket(bucketName)
	if err != nil {
		return nil, fmt.Errorf("client.Bucket: %w", err)
	}

	// Verifikasi ringan lokasi bucket
	if loc, err := client.GetBucketLocation(bucketName); err != nil {
		if se, ok := err.(oss.ServiceError); ok && se.StatusCode == 403 && se.Code == "AccessDenied" {
			log.Printf("[OSS] warn: skip location check due to AccessDenied (bucket=%s). Continuing.", bucketName)
		} else {
			return nil, fmt.Errorf("verify bucket: %w", err)
		}
	} else {
		log.Printf("[OSS] bucket %s location: %s", bucketName, loc)
	}

	return &OSSService{
		Client:     client,
		Bucket:     bkt,
		Endpoint:   endpoint,
		BucketName: bucketName,
		Prefix:     strings.Trim(prefix, "/"),
	}, nil
}

/* =======================================================================
   Upload helpers
======================================================================= */

// UploadAsWebP: recompress gambar ke webp, lalu upload .webp
func (s *OSSService) UploadAsWebP(ctx context.Context, fh *multipart.FileHeader, keyPrefix string) (string, error) {
	if fh == nil {
		return "", fmt.Errorf("nil file header")
	}
	if fh.Size > maxUploadSize {
		return "", fmt.Errorf("file too large (max %d bytes)", maxUploadSize)
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open file: %w", err)
	}
	defer src.Close()

	webpData, err := ConvertToWebP(src, fh.Filename)
	if err != nil {
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "format tidak didukung") {
			return "", fiber.NewError(fiber.StatusUnsupportedMediaType, "Unsupported image format (pakai jpg/png/webp)")
		}
		return "", err
	}

	// ganti ekstensi jadi .webp
	base := strings.TrimSuffix(fh.Filename, filepath.Ext(fh.Filename))
	key := s.buildObjectKey(base + ".webp")
	if keyPrefix != "" {
		key = strings.Trim(keyPrefix, "/") + "/" + key
	}

	opts := []oss.Option{
		oss.WithContext(ctx),
		oss.ContentType("image/webp"),
		oss.ContentDisposition("inline"),
		oss.CacheControl("public, max-age=31536000, immutable"),
	}
	if err := s.Bucket.PutObject(key, bytes.NewReader(webpData), opts...); err != nil {
		return "", err
	}
	return s.PublicURL(key), nil
}

// UploadFromFormFileToDir: upload apa adanya (tanpa recompress) ke subdir.
// Return: (publicURL, contentType, error)
func (s *OSSService) UploadFromFormFileToDir(ctx context.Context, dir string, fh *multipart.FileHeader) (string, string, error) {
	if fh == nil {
		return "", "", fmt.Errorf("nil file header")
	}
	if fh.Size > maxUploadSize {
		return "", "", fmt.Errorf("file too large (max %d bytes)", maxUploadSize)
	}

	key := s.buildObjectKey(fh.Filename)
	if dir != "" {
		key = joinParts(dir) + "/" + key
	}

	src, err := fh.Open()
	if err != nil {
		return "", "", fmt.Errorf("open file: %w", err)
	}
	defer src.Close()

	ct, reader, err := detectContentType(src, fh.Filename)
	if err != nil {
		return "", "", err
	}

	opts := []oss.Option{
		oss.WithContext(ctx),
		oss.ContentType(ct),
		oss.ContentDisposition("inline"),
		oss.CacheControl("public, max-age=31536000, immutable"),
	}
	if err := s.Bucket.PutObject(key, reader, opts...); err != nil {
		return "", "", err
	}
	return s.PublicURL(key), ct, nil
}

/* =======================================================================
   Delete
======================================================================= */

func (s *OSSService) DeleteObject(ctx context.Context, key string) error {
	return s.Bucket.DeleteObject(key, oss.WithContext(ctx))
}

func (s *OSSService) DeleteByPublicURL(ctx context.Context, publicURL string) error {
	key, err := ExtractKeyFromPublicURL(publicURL)
	if err != nil {
		return err
	}
	return s.DeleteObject(ctx, key)
}

// DeleteByPublicURLENV: inisialisasi service dari ENV lalu hapus satu object.
// Dipakai di cleanup path (failure cukup di-log oleh pemanggil).
func DeleteByPublicURLENV(publicURL string, timeout time.Duration) error {
	svc, err := NewOSSServiceFromEnv("")
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return svc.DeleteByPublicURL(ctx, publicURL)
}

/* =======================================================================
   Public URL & Key utils
======================================================================= */

func (s *OSSService) PublicURL(key string) string {
	if key == "" {
		return ""
	}
	if base := strings.TrimSpace(os.Getenv("ALI_OSS_PUBLIC_BASE")); base != "" {
		return strings.TrimRight(base, "/") + "/" + key
	}
	if s.Endpoint == "" || s.BucketName == "" {
		return ""
	}
	end := s.Endpoint
	end = strings.TrimPrefix(end, "https://")
	end = strings.TrimPrefix(end, "http://")
	return fmt.Sprintf("https://%s.%s/%s", s.BucketName, end, key)
}

func ExtractKeyFromPublicURL(publicURL string) (string, error) {
	if publicURL == "" {
		return "", fmt.Errorf("empty url")
	}
	if base := strings.TrimSpace(os.Getenv("ALI_OSS_PUBLIC_BASE")); base != "" {
		base = strings.TrimRight(base, "/") + "/"
		if strings.HasPrefix(publicURL, base) {
			return strings.TrimPrefix(publicURL, base), nil
		}
	}
	u := publicURL
	if i := strings.Index(u, "://"); i >= 0 {
		u = u[i+3:]
	}
	if i := strings.Index(u, "/"); i >= 0 {
		return u[i+1:], nil
	}
	return "", fmt.Errorf("cannot extract key from url: %s", publicURL)
}

/* =======================================================================
   Misc utils
======================================================================= */

func (s *OSSService) buildObjectKey(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	base := strings.TrimSuffix(filename, ext)
	if base == "" {
		base = "file"
	}
	ts := time.Now().Format("20060102_150405")
	rand6 := randHex(3)

	prefix := s.Prefix
	if prefix != "" {
		prefix += "/"
	}
	return fmt.Sprintf("%s%s_%s_%s%s", prefix, slugify(base), ts, rand6, ext)
}

func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	r := strings.NewReplacer(" ", "-", "_", "-", "—", "-", "–", "-")
	s = r.Replace(s)
	s = strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			return r
		}
		return -1
	}, s)
	if s == "" {
		return "file"
	}
	return s
}

func randHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// detectContentType: tentukan contentType dari ekstensi + sniff 512B
func detectContentType(src multipart.File, filename string) (string, io.Reader, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	ct := mime.TypeByExtension(ext)

	head := make([]byte, 512)
	n, _ := io.ReadFull(io.LimitReader(src, 512), head)
	if seeker, ok := src.(io.Seeker); ok {
		seeker.Seek(0, io.SeekStart)
	}

	if n > 0 {
		detected := http.DetectContentType(head[:n])
		if ct == "" || ct == "application/octet-stream" {
			ct = detected
		}
	}

	switch ext {
	case ".webp":
		ct = "image/webp"
	case ".svg":
		ct = "image/svg+xml"
	}
	if ct == "" {
		ct = "application/octet-stream"
	}

	if seeker, ok := src.(io.Seeker); ok {
		seeker.Seek(0, io.SeekStart)
		return ct, src, nil
	}
	combined := append([]byte{}, head[:n]...)
	body, _ := io.ReadAll(src)
	combined = append(combined, body...)
	return ct, bytes.NewReader(combined), nil
}

func safePart(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, "/")
	if s == "" {
		return "unknown"
	}
	return slugify(s)
}

func joinParts(parts ...string) string {
	clean := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) == "" {
			continue
		}
		clean = append(clean, safePart(p))
	}
	return strings.Join(clean, "/")
}

/* =======================================================================
   Convenience: upload ter-scope per agency
======================================================================= */

// UploadImageToOSSScoped: konversi ke webp dan simpan di folder per-agency.
func UploadImageToOSSScoped(agencyID uuid.UUID, kategori string, fh *multipart.FileHeader) (string, error) {
	svc, err := NewOSSServiceFromEnv("")
	if err != nil {
		return "", err
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	dir := joinParts("agencies", agencyID.String(), kategori)
	return svc.UploadAsWebP(ctx, fh, dir)
}

// UploadFileToOSSScoped: simpan file non-gambar apa adanya di folder per-agency.
func UploadFileToOSSScoped(agencyID uuid.UUID, kategori string, fh *multipart.FileHeader) (string, string, error) {
	svc, err := NewOSSServiceFromEnv("")
	if err != nil {
		return "", "", err
	}
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	dir := joinParts("agencies", agencyID.String(), kategori)
	return svc.UploadFromFormFileToDir(ctx, dir, fh)
}

// GetFormFile: ambil satu file dari multipart form (beberapa nama field umum).
func GetFormFile(c *fiber.Ctx, fieldNames ...string) (*multipart.FileHeader, error) {
	if len(fieldNames) == 0 {
		fieldNames = []string{"file", "attachment", "image"}
	}
	for _, name := range fieldNames {
		if fh, err := c.FormFile(name); err == nil && fh != nil {
			return fh, nil
		}
	}
	return nil, fiber.NewError(fiber.StatusBadRequest, "File tidak ditemukan di form-data")
}
