package handler

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bystrodel/backend/internal/repo"
	"github.com/bystrodel/backend/internal/service/attachment"
	"github.com/bystrodel/backend/internal/service/order"
	"github.com/bystrodel/backend/internal/service/ticket"
	pasetotoken "github.com/bystrodel/backend/pkg/paseto"
)

// stubOrderAccess serves one order owned by ownerEmail; everything else
// is not found. The embedded interface panics on any other call.
type stubOrderAccess struct {
	order.Service
	id         uuid.UUID
	ownerEmail string
}

func (s stubOrderAccess) GetByID(_ context.Context, orderID uuid.UUID) (*repo.Order, error) {
	if orderID == s.id {
		return &repo.Order{ID: orderID}, nil
	}
	return nil, order.ErrNotFound
}

func (s stubOrderAccess) GetForOwner(_ context.Context, orderID uuid.UUID, email string) (*repo.Order, error) {
	if orderID == s.id && email == s.ownerEmail {
		return &repo.Order{ID: orderID}, nil
	}
	return nil, order.ErrNotFound
}

type stubUploader struct {
	uploaded bool
}

func (s *stubUploader) Upload(_ context.Context, threadType string, threadID uuid.UUID, fh *multipart.FileHeader) (*attachment.UploadResult, error) {
	s.uploaded = true
	return &attachment.UploadResult{
		Key:      "attachments/" + threadType + "/" + threadID.String() + "/stored.png",
		FileName: fh.Filename,
		Size:     fh.Size,
		MimeType: "image/png",
	}, nil
}

func (s *stubUploader) DownloadURL(context.Context, string) (string, error) { return "", nil }
func (s *stubUploader) Delete(context.Context, string) error                { return nil }

func newUploadApp(t *testing.T, orderID uuid.UUID, claims *pasetotoken.Claims) (*fiber.App, *stubUploader) {
	t.Helper()

	uploader := &stubUploader{}
	h := NewAttachmentHandler(
		uploader,
		stubOrderAccess{id: orderID, ownerEmail: "ivan@example.com"},
		ticket.Service(nil),
	)

	app := fiber.New()
	app.Use(func(c fiber.Ctx) error {
		if claims != nil {
			c.Locals(pasetotoken.CtxKeyClaims, claims)
		}
		return c.Next()
	})
	app.Post("/attachments", h.Upload)
	return app, uploader
}

func uploadRequest(t *testing.T, threadType, threadID string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.WriteField("thread_type", threadType))
	require.NoError(t, w.WriteField("thread_id", threadID))
	fw, err := w.CreateFormFile("file", "договор.pdf")
	require.NoError(t, err)
	_, err = fw.Write([]byte("pdf-bytes"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/attachments", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func TestUploadAllowsThreadOwner(t *testing.T) {
	orderID := uuid.Must(uuid.NewV7())
	app, uploader := newUploadApp(t, orderID, &pasetotoken.Claims{
		Role:  pasetotoken.RoleClient,
		Email: "ivan@example.com",
	})

	resp, err := app.Test(uploadRequest(t, "order", orderID.String()))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.True(t, uploader.uploaded)
}

func TestUploadRejectsForeignThread(t *testing.T) {
	orderID := uuid.Must(uuid.NewV7())
	app, uploader := newUploadApp(t, orderID, &pasetotoken.Claims{
		Role:  pasetotoken.RoleClient,
		Email: "mallory@example.com",
	})

	resp, err := app.Test(uploadRequest(t, "order", orderID.String()))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.False(t, uploader.uploaded, "nothing may reach storage for a thread the caller cannot see")
}

func TestUploadAdminReachesAnyThread(t *testing.T) {
	orderID := uuid.Must(uuid.NewV7())
	app, uploader := newUploadApp(t, orderID, &pasetotoken.Claims{
		Role:  pasetotoken.RoleAdmin,
		Email: "admin@example.com",
	})

	resp, err := app.Test(uploadRequest(t, "order", orderID.String()))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.True(t, uploader.uploaded)
}

func TestUploadRequiresAuth(t *testing.T) {
	orderID := uuid.Must(uuid.NewV7())
	app, uploader := newUploadApp(t, orderID, nil)

	resp, err := app.Test(uploadRequest(t, "order", orderID.String()))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.False(t, uploader.uploaded)
}

func TestUploadRejectsUnknownThreadType(t *testing.T) {
	orderID := uuid.Must(uuid.NewV7())
	app, uploader := newUploadApp(t, orderID, &pasetotoken.Claims{
		Role:  pasetotoken.RoleClient,
		Email: "ivan@example.com",
	})

	resp, err := app.Test(uploadRequest(t, "invoice", orderID.String()))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.False(t, uploader.uploaded)
}
