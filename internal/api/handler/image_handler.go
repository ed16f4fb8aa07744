package handler

import (
	"mime"
	"net/http"
	"path"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/expertsdental/clinic-system/internal/api/metrics"
	"github.com/expertsdental/clinic-system/internal/core/ports"
)

// maxImageSize caps a single upload at 20 MiB.
const maxImageSize = 20 << 20

// ImageHandler handles HTTP requests for patient medical images.
type ImageHandler struct {
	service ports.ImageService
}

func NewImageHandler(service ports.ImageService) *ImageHandler {
	return &ImageHandler{service: service}
}

// Upload handles POST /api/images/upload (doctor and admin). Multipart form
// with a "file" part plus patient_id, image_type and optional description
// fields.
//
// @Summary      Upload a medical image
// @Tags         images
// @Accept       multipart/form-data
// @Produce      json
// @Param        file         formData  file    true   "Image file"
// @Param        patient_id   formData  int     true   "Patient id"
// @Param        image_type   formData  string  true   "xray, photo or scan"
// @Param        description  formData  string  false  "Free-form description"
// @Success      200          {object}  domain.MedicalImage
// @Failure      400          {object}  map[string]string
// @Failure      404          {object}  map[string]string
// @Router       /images/upload [post]
func (h *ImageHandler) Upload(c echo.Context) error {
	callerID, _, err := callerIdentity(c)
	if err != nil {
		return err
	}

	patientID, err := strconv.Atoi(c.FormValue("patient_id"))
	if err != nil || patientID <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid patient_id")
	}
	imageType := c.FormValue("image_type")
	if imageType == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "image_type is required")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "file is required")
	}
	if fileHeader.Size > maxImageSize {
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge, "file exceeds the 20 MiB limit")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unreadable file part")
	}
	defer src.Close()

	image, err := h.service.Upload(c.Request().Context(), ports.UploadImageInput{
		PatientID:   patientID,
		ImageType:   imageType,
		Description: c.FormValue("description"),
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get(echo.HeaderContentType),
		Size:        fileHeader.Size,
		Reader:      src,
		UploadedBy:  callerID,
	})
	if err != nil {
		return err
	}

	metrics.ImagesUploadedTotal.WithLabelValues(image.ImageType).Inc()
	metrics.ImageUploadBytes.Observe(float64(fileHeader.Size))
	return c.JSON(http.StatusOK, image)
}

// ListByPatient handles GET /api/images/patient/:id.
//
// @Summary      List a patient's images
// @Tags         images
// @Produce      json
// @Param        id   path     int  true  "Patient id"
// @Success      200  {array}  domain.MedicalImage
// @Failure      404  {object} map[string]string
// @Router       /images/patient/{id} [get]
func (h *ImageHandler) ListByPatient(c echo.Context) error {
	patientID, err := pathID(c)
	if err != nil {
		return err
	}

	images, err := h.service.ListByPatient(c.Request().Context(), patientID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, images)
}

// Serve handles GET /api/images/:id and streams the stored bytes.
//
// @Summary      Download a medical image
// @Tags         images
// @Produce      octet-stream
// @Param        id   path  int  true  "Image id"
// @Success      200  {file}  binary
// @Failure      404  {object}  map[string]string
// @Router       /images/{id} [get]
func (h *ImageHandler) Serve(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	image, body, err := h.service.Open(c.Request().Context(), id)
	if err != nil {
		return err
	}
	defer body.Close()

	contentType := mime.TypeByExtension(path.Ext(image.ImagePath))
	if contentType == "" {
		contentType = echo.MIMEOctetStream
	}
	return c.Stream(http.StatusOK, contentType, body)
}

// Delete handles DELETE /api/images/:id (doctor and admin).
//
// @Summary      Remove a medical image
// @Tags         images
// @Produce      json
// @Param        id   path      int  true  "Image id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  map[string]string
// @Router       /images/{id} [delete]
func (h *ImageHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Image deleted successfully"})
}
