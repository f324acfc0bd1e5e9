package helper

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
)

func getEnv(k string) string { return strings.TrimSpace(os.Getenv(k)) }

var maxUploadSize = int64(5 * 1024 * 1024)

type OSSService struct {
	Client     *oss.Client
	Bucket     *oss.Bucket
	BucketName string
	Endpoint   string
	Prefix     string
}

func NewOSSServiceFromEnv(prefix string) (*OSSService, error) {
	endpoint := getEnv("OSS_ENDPOINT")
	bucketName := getEnv("OSS_BUCKET")
	accessKey := getEnv("OSS_ACCESS_KEY")
	secretKey := getEnv("OSS_SECRET_KEY")
	if endpoint == "" || bucketName == "" || accessKey == "" || secretKey == "" {
		return nil, fmt.Errorf("OSS env incomplete (OSS_ENDPOINT/OSS_BUCKET/OSS_ACCESS_KEY/OSS_SECRET_KEY)")
	}
	if prefix == "" {
		prefix = getEnv("OSS_PREFIX")
	}

	cli, err := oss.New(endpoint, accessKey, secretKey)
	if err != nil {
		return nil, fmt.Errorf("oss client: %w", err)
	}
	bkt, err := cli.Bucket(bucketName)
	if err != nil {
		return nil, fmt.Errorf("oss bucket: %w", err)
	}
	return &OSSService{
		Client:     cli,
		Bucket:     bkt,
		BucketName: bucketName,
		Endpoint:   endpoint,
		Prefix:     strings.Trim(prefix, "/"),
	}, nil
}

var nonSlug = regexp.MustCompile(`[^a-z0-9-_]+`)

func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, " ", "-")
	s = nonSlug.ReplaceAllString(s, "")
	if s == "" {
		s = "file"
	}
	return s
}

func randHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func detectContentType(src multipart.File, filename string) (string, io.Reader, error) {
	head := make([]byte, 512)
	n, err := src.Read(head)
	if err != nil && err != io.EOF {
		return "", nil, fmt.Errorf("read head: %w", err)
	}
	head = head[:n]

	ct := http.DetectContentType(head)
	if ct == "application/octet-stream" {
		if byExt := mime.TypeByExtension(strings.ToLower(filepath.Ext(filename))); byExt != "" {
			ct = byExt
		}
	}
	return ct, io.MultiReader(strings.NewReader(string(head)), src), nil
}

// buildKey: "<prefix>/<dir>/<ts>_<slug><ext>" — timestamped so re-uploads of
// the same filename never collide.
func (s *OSSService) buildKey(dir, filename string) string {
	keyPrefix := s.Prefix
	if keyPrefix != "" {
		keyPrefix += "/"
	}
	dir = strings.Trim(dir, "/")
	if dir != "" {
		keyPrefix += dir + "/"
	}

	ext := strings.ToLower(filepath.Ext(filename))
	base := strings.TrimSuffix(filename, ext)
	ts := time.Now().Format("20060102_150405")
	return fmt.Sprintf("%s%s_%s_%s%s", keyPrefix, ts, slugify(base), randHex(3), ext)
}

// UploadFromFormFile uploads the part as-is (no recompress) under dir and
// returns the object key.
func (s *OSSService) UploadFromFormFile(ctx context.Context, dir string, fh *multipart.FileHeader) (string, error) {
	if fh == nil {
		return "", fmt.Errorf("nil file header")
	}
	if fh.Size > maxUploadSize {
		return "", fmt.Errorf("file exceeds %d bytes", maxUploadSize)
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open file: %w", err)
	}
	defer src.Close()

	ct, reader, err := detectContentType(src, fh.Filename)
	if err != nil {
		return "", err
	}

	key := s.buildKey(dir, fh.Filename)
	opts := []oss.Option{
		oss.WithContext(ctx),
		oss.ContentType(ct),
		oss.ContentDisposition("inline"),
		oss.CacheControl("public, max-age=31536000, immutable"),
	}
	if err := s.Bucket.PutObject(key, reader, opts...); err != nil {
		return "", err
	}
	return key, nil
}

func (s *OSSService) PublicURL(key string) string {
	return fmt.Sprintf("https://%s.%s/%s", s.BucketName, s.Endpoint, key)
}

func (s *OSSService) DeleteObject(ctx context.Context, key string) error {
	return s.Bucket.DeleteObject(key, oss.WithContext(ctx))
}

func (s *OSSService) DeleteByPublicURL(ctx context.Context, publicURL string) error {
	if strings.TrimSpace(publicURL) == "" {
		return fmt.Errorf("empty public url")
	}
	u, err := url.Parse(publicURL)
	if err != nil {
		return fmt.Errorf("parse url: %w", err)
	}
	key := strings.TrimPrefix(u.Path, "/")
	if key == "" {
		return fmt.Errorf("no object key in url")
	}
	return s.DeleteObject(ctx, key)
}

// UploadFileToOSS: convenience wrapper for controllers — fresh service from
// env, bounded timeout, returns the public URL.
func UploadFileToOSS(category string, fh *multipart.FileHeader) (string, error) {
	if strings.TrimSpace(category) == "" {
		category = "misc"
	}
	svc, err := NewOSSServiceFromEnv("")
	if err != nil {
		return "", err
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	key, err := svc.UploadFromFormFile(ctx, category, fh)
	if err != nil {
		return "", err
	}
	return svc.PublicURL(key), nil
}
