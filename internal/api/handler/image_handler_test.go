package handler

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/expertsdental/clinic-system/internal/api/middleware"
	"github.com/expertsdental/clinic-system/internal/core/domain"
	"github.com/expertsdental/clinic-system/internal/core/ports"
)

type stubImageService struct {
	uploadFn        func(ctx context.Context, input ports.UploadImageInput) (*domain.MedicalImage, error)
	listByPatientFn func(ctx context.Context, patientID int) ([]domain.MedicalImage, error)
	openFn          func(ctx context.Context, id int) (*domain.MedicalImage, io.ReadCloser, error)
	deleteFn        func(ctx context.Context, id int) error
}

func (s *stubImageService) Upload(ctx context.Context, input ports.UploadImageInput) (*domain.MedicalImage, error) {
	return s.uploadFn(ctx, input)
}

func (s *stubImageService) ListByPatient(ctx context.Context, patientID int) ([]domain.MedicalImage, error) {
	return s.listByPatientFn(ctx, patientID)
}

func (s *stubImageService) Open(ctx context.Context, id int) (*domain.MedicalImage, io.ReadCloser, error) {
	return s.openFn(ctx, id)
}

func (s *stubImageService) Delete(ctx context.Context, id int) error {
	return s.deleteFn(ctx, id)
}

// imageRoutes mounts the image surface exactly as the router does, with a
// session identity injected in place of the cookie middleware.
func imageRoutes(svc ports.ImageService) *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()

	identity := func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(middleware.CtxUserID, 5)
			c.Set(middleware.CtxRole, domain.RoleDoctor)
			return next(c)
		}
	}

	h := NewImageHandler(svc)
	api := e.Group("/api", identity)
	api.POST("/images/upload", h.Upload)
	api.GET("/images/patient/:id", h.ListByPatient)
	api.GET("/images/:id", h.Serve)
	api.DELETE("/images/:id", h.Delete)
	return e
}

func multipartUpload(t *testing.T, fields map[string]string, fileName string, file []byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for name, value := range fields {
		if err := w.WriteField(name, value); err != nil {
			t.Fatalf("write field %s: %v", name, err)
		}
	}
	part, err := w.CreateFormFile("file", fileName)
	if err != nil {
		t.Fatalf("create file part: %v", err)
	}
	if _, err := part.Write(file); err != nil {
		t.Fatalf("write file part: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return &buf, w.FormDataContentType()
}

func TestImageRoutes_UploadPath(t *testing.T) {
	var got ports.UploadImageInput
	e := imageRoutes(&stubImageService{
		uploadFn: func(ctx context.Context, input ports.UploadImageInput) (*domain.MedicalImage, error) {
			got = input
			return &domain.MedicalImage{ID: 1, PatientID: input.PatientID, ImageType: input.ImageType}, nil
		},
	})

	body, contentType := multipartUpload(t, map[string]string{
		"patient_id": "4",
		"image_type": "xray",
	}, "molar.png", []byte("png bytes"))

	req := httptest.NewRequest(http.MethodPost, "/api/images/upload", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("POST /api/images/upload = %d: %s", rec.Code, rec.Body.String())
	}
	if got.PatientID != 4 || got.ImageType != "xray" || got.UploadedBy != 5 {
		t.Fatalf("upload input = %+v", got)
	}
}

func TestImageRoutes_PatientListingPath(t *testing.T) {
	var gotPatientID int
	e := imageRoutes(&stubImageService{
		listByPatientFn: func(ctx context.Context, patientID int) ([]domain.MedicalImage, error) {
			gotPatientID = patientID
			return []domain.MedicalImage{{ID: 2, PatientID: patientID}}, nil
		},
		openFn: func(ctx context.Context, id int) (*domain.MedicalImage, io.ReadCloser, error) {
			t.Fatalf("patient listing must not dispatch to the download handler")
			return nil, nil, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/images/patient/4", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("GET /api/images/patient/4 = %d: %s", rec.Code, rec.Body.String())
	}
	if gotPatientID != 4 {
		t.Fatalf("patient id = %d, want 4", gotPatientID)
	}
}

func TestImageRoutes_DownloadPath(t *testing.T) {
	e := imageRoutes(&stubImageService{
		openFn: func(ctx context.Context, id int) (*domain.MedicalImage, io.ReadCloser, error) {
			if id != 9 {
				t.Fatalf("image id = %d, want 9", id)
			}
			image := &domain.MedicalImage{ID: 9, ImagePath: "4/9.png"}
			return image, io.NopCloser(strings.NewReader("png bytes")), nil
		},
		listByPatientFn: func(ctx context.Context, patientID int) ([]domain.MedicalImage, error) {
			t.Fatalf("download must not dispatch to the patient listing handler")
			return nil, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/images/9", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("GET /api/images/9 = %d: %s", rec.Code, rec.Body.String())
	}
	if got := rec.Header().Get(echo.HeaderContentType); got != "image/png" {
		t.Fatalf("content type = %q, want image/png", got)
	}
	if rec.Body.String() != "png bytes" {
		t.Fatalf("body = %q", rec.Body.String())
	}
}
