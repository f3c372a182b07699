package http

import (
	"errors"
	"io"
	"strings"

	"classifier_server/core/port/in"
	"classifier_server/pkg/extract"

	"github.com/gofiber/fiber/v2"
)

// ClassifyHandler exposes the classification endpoints.
type ClassifyHandler struct {
	service in.ClassifyService
}

// NewClassifyHandler creates the handler.
func NewClassifyHandler(service in.ClassifyService) *ClassifyHandler {
	return &ClassifyHandler{service: service}
}

// Register mounts the classification routes.
func (h *ClassifyHandler) Register(router fiber.Router) {
	router.Post("/classify/text", h.ClassifyText)
	router.Post("/classify/file", h.ClassifyFile)
}

// ClassifyText classifies raw email text submitted as JSON.
func (h *ClassifyHandler) ClassifyText(c *fiber.Ctx) error {
	var req struct {
		Text string `json:"text"`
	}
	if err := c.BodyParser(&req); err != nil {
		return ErrorResponse(c, 400, "invalid request body")
	}
	if strings.TrimSpace(req.Text) == "" {
		return ErrorResponse(c, 400, "no text provided")
	}

	return c.JSON(h.service.Classify(c.Context(), req.Text))
}

// ClassifyFile classifies an uploaded .txt or .pdf email file.
func (h *ClassifyHandler) ClassifyFile(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return ErrorResponse(c, 400, "no file provided")
	}
	if fileHeader.Filename == "" {
		return ErrorResponse(c, 400, "no file selected")
	}
	if !extract.AllowedExtension(fileHeader.Filename) {
		return ErrorResponse(c, 400, "file type not allowed, use .txt or .pdf")
	}
	if fileHeader.Size > extract.MaxFileSize {
		return ErrorResponse(c, 413, "file too large")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return InternalErrorResponse(c, err, "file upload")
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, extract.MaxFileSize+1))
	if err != nil {
		return InternalErrorResponse(c, err, "file read")
	}

	text, err := extract.FromUpload(fileHeader.Filename, data)
	if err != nil {
		switch {
		case errors.Is(err, extract.ErrUnsupportedType):
			return ErrorResponse(c, 400, "file type not allowed, use .txt or .pdf")
		case errors.Is(err, extract.ErrFileTooLarge):
			return ErrorResponse(c, 413, "file too large")
		case errors.Is(err, extract.ErrEmptyFile):
			return ErrorResponse(c, 400, "empty file")
		default:
			return InternalErrorResponse(c, err, "text extraction")
		}
	}

	return c.JSON(h.service.Classify(c.Context(), text))
}
