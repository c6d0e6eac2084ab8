// Package upload sends images to the admin API's direct upload endpoint and
// returns their public URL.
package upload

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/pkg/errors"

	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/apiclient"
)

const (
	DefaultPath    = "/admin/uploads/image"
	DefaultMaxSize = 1 << 20
)

var (
	ErrTooLarge = errors.New("file exceeds the upload size limit")
	ErrNotImage = errors.New("file is not an image")
)

// Error is a failed upload of one file.
type Error struct {
	Filename string
	Err      error
}

func (e *Error) Error() string { return fmt.Sprintf("upload %s: %v", e.Filename, e.Err) }

func (e *Error) Unwrap() error { return e.Err }

// Message is the text shown to the user for e.
func (e *Error) Message() string {
	if errors.Is(e.Err, ErrTooLarge) {
		return "File is too large. Max 1MB allowed."
	}
	return apiclient.Message(e.Err, "Upload failed. Check file type and size.")
}

func wrap(filename string, err error) error {
	if err == nil {
		return nil
	}
	var upErr *Error
	if errors.As(err, &upErr) {
		return err
	}
	return &Error{Filename: filename, Err: err}
}

// Storage turns a file into a publicly fetchable URL.
type Storage interface {
	Upload(ctx context.Context, filename string, content io.Reader) (string, error)
}

type Uploader struct {
	client  *apiclient.Client
	path    string
	maxSize int64
}

func New(client *apiclient.Client, path string, maxSize int64) *Uploader {
	if path == "" {
		path = DefaultPath
	}
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}
	return &Uploader{client: client, path: path, maxSize: maxSize}
}

type response struct {
	ImageURL string `json:"image_url"`
}

// Upload checks size and content type locally, then posts content as the
// multipart field "file".
func (u *Uploader) Upload(ctx context.Context, filename string, content io.Reader) (string, error) {
	url, err := u.upload(ctx, filename, content)
	return url, wrap(filename, err)
}

func (u *Uploader) upload(ctx context.Context, filename string, content io.Reader) (string, error) {
	data, err := io.ReadAll(io.LimitReader(content, u.maxSize+1))
	if err != nil {
		return "", errors.Wrap(err, "read upload")
	}
	if int64(len(data)) > u.maxSize {
		return "", errors.Wrapf(ErrTooLarge, "%s is larger than %d bytes", filename, u.maxSize)
	}
	mime := mimetype.Detect(data)
	if !strings.HasPrefix(mime.String(), "image/") {
		return "", errors.Wrapf(ErrNotImage, "%s is %s", filename, mime.String())
	}

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, filepath.Base(filename)))
	header.Set("Content-Type", mime.String())
	part, err := w.CreatePart(header)
	if err != nil {
		return "", err
	}
	if _, err := part.Write(data); err != nil {
		return "", err
	}
	if err := w.Close(); err != nil {
		return "", err
	}

	resp, err := u.client.Send(ctx, &apiclient.Request{
		Method:      http.MethodPost,
		Path:        u.path,
		Body:        &body,
		ContentType: w.FormDataContentType(),
	})
	if err != nil {
		return "", err
	}
	var out response
	if err := resp.Decode(&out); err != nil {
		return "", errors.Wrap(err, "decode upload response")
	}
	if strings.TrimSpace(out.ImageURL) == "" {
		return "", errors.New("upload response carried no image_url")
	}
	return out.ImageURL, nil
}

// UploadFile uploads the file at path.
func (u *Uploader) UploadFile(ctx context.Context, path string) (string, error) {
	return File(ctx, u, path)
}

// File uploads the file at path to s.
func File(ctx context.Context, s Storage, path string) (string, error) {
	name := filepath.Base(path)
	f, err := os.Open(path)
	if err != nil {
		return "", wrap(name, err)
	}
	defer f.Close()
	url, err := s.Upload(ctx, name, f)
	return url, wrap(name, err)
}
