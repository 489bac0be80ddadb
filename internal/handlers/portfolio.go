package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type contactRequest struct {
	UserID  int    `json:"user_id" binding:"required"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message" binding:"required"`
}

// @Summary      Public portfolio
// @Description  No auth: public fields of the user plus all their projects.
// @Tags         portfolio
// @Produce      json
// @Param        user_id  path  int  true  "User id"
// @Success      200  {object}  models.Portfolio
// @Failure      404  {object}  map[string]string
// @Router       /api/portfolio/{user_id} [get]
func (h *Handler) getPortfolio(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	portfolio, err := h.services.Projects.Portfolio(c.Request.Context(), id)
	if err != nil {
		h.serviceError(c, err, "get_portfolio_failed", "user_id", id)
		return
	}
	c.JSON(http.StatusOK, portfolio)
}

// @Summary      Contact portfolio owner
// @Description  Relays the visitor's message to the owner's registered
// @Description  email; delivery failure is surfaced to the caller.
// @Tags         portfolio
// @Accept       json
// @Produce      json
// @Param        body  body  contactRequest  true  "Message payload"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/contact [post]
func (h *Handler) contact(c *gin.Context) {
	var req contactRequest
	if ok := h.bindJSON(c, &req); !ok {
		return
	}

	err := h.services.Contact.Relay(c.Request.Context(), req.UserID, req.Name, req.Email, req.Message)
	if err != nil {
		h.serviceError(c, err, "contact_relay_failed", "user_id", req.UserID)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Message sent successfully"})
}
