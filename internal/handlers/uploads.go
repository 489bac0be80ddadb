package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary      Serve stored file
// @Tags         uploads
// @Produce      octet-stream
// @Param        filename  path  string  true  "Stored file name"
// @Success      200
// @Failure      404  {object}  map[string]string
// @Router       /uploads/{filename} [get]
func (h *Handler) serveUpload(c *gin.Context) {
	path, err := h.store.Resolve(c.Param("filename"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "file not found"})
		return
	}
	c.File(path)
}
