package export

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"transferdesk/internal/shared/apperror"
	"transferdesk/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("export.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("export.handler")
	}
	return &Handler{service: service, logger: l}
}

// stream buffers the whole file before writing headers; a build failure must
// still be able to produce a JSON error response.
func (h *Handler) stream(c *gin.Context, filename, contentType string, build func(ctx context.Context, w io.Writer) error) {
	var buf bytes.Buffer
	if err := build(c.Request.Context(), &buf); err != nil {
		httpErr := apperror.ToHTTP(err)
		h.logger.Error("export build failed",
			zap.String("filename", filename),
			zap.String("code", httpErr.Code),
			zap.Error(err),
		)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}

	stamped := fmt.Sprintf(filename, time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", `attachment; filename="`+stamped+`"`)
	c.Data(200, contentType, buf.Bytes())
}

func (h *Handler) EmployeesCSV(c *gin.Context) {
	h.stream(c, "employees-%s.csv", "text/csv", h.service.EmployeesCSV)
}

func (h *Handler) EmployeesExcel(c *gin.Context) {
	h.stream(c, "employees-%s.xlsx",
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		h.service.EmployeesExcel)
}

func (h *Handler) EmployeesPDF(c *gin.Context) {
	h.stream(c, "employees-%s.pdf", "application/pdf", h.service.EmployeesPDF)
}

func (h *Handler) TransfersCSV(c *gin.Context) {
	h.stream(c, "transfers-%s.csv", "text/csv", h.service.TransfersCSV)
}

func (h *Handler) PromotionsCSV(c *gin.Context) {
	h.stream(c, "promotions-%s.csv", "text/csv", h.service.PromotionsCSV)
}
