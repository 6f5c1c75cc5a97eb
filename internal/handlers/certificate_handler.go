package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"testschool/internal/services"
)

type CertificateHandler struct {
	certService services.CertificateService
}

func NewCertificateHandler(certService services.CertificateService) *CertificateHandler {
	return &CertificateHandler{certService: certService}
}

// @Summary      Скачать сертификат
// @Description  Генерирует PDF по максимальному присвоенному уровню
// @Tags         Certificate
// @Produce      application/pdf
// @Success      200  {file}    file
// @Failure      404  {object}  map[string]string
// @Security     BearerAuth
// @Router       /certificate/download [get]
func (h *CertificateHandler) Download(c *gin.Context) {
	userID, _ := getUserAndRole(c)
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	path, err := h.certService.GenerateCertificate(userID)
	if err != nil {
		if errors.Is(err, services.ErrNoCertification) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no certification achieved"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate certificate"})
		return
	}

	c.FileAttachment(path, fmt.Sprintf("certificate-%d-%s", userID, filepath.Base(path)))
}
