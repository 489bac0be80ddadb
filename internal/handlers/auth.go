package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type signUpRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name"`
	JobTitle string `json:"job_title"`
	Bio      string `json:"bio"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type forgotPasswordRequest struct {
	Email string `json:"email" binding:"required"`
}

type resetPasswordRequest struct {
	Token    string `json:"token" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// forgotPasswordMessage is returned whether or not the email is registered.
const forgotPasswordMessage = "If the email is registered, a reset link will be sent"

// @Summary      Create account
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        body  body  signUpRequest  true  "Account payload"
// @Success      201  {object}  map[string]interface{}  "message, token, user"
// @Failure      400  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Failure      422  {object}  map[string]string
// @Router       /api/user/signup [post]
func (h *Handler) signUp(c *gin.Context) {
	var req signUpRequest
	if ok := h.bindJSON(c, &req); !ok {
		return
	}

	token, u, err := h.services.SignUp(c.Request.Context(), req.Email, req.Password, req.Name, req.JobTitle, req.Bio)
	if err != nil {
		h.serviceError(c, err, "signup_failed", "email", req.Email)
		return
	}

	if h.log != nil {
		h.log.Infow("user_created", "user_id", u.ID)
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "User created successfully",
		"token":   token,
		"user":    u.Summary(),
	})
}

// @Summary      Authenticate
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        body  body  loginRequest  true  "Credentials"
// @Success      200  {object}  map[string]interface{}  "token, user"
// @Failure      401  {object}  map[string]string
// @Router       /api/user/login [post]
func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if ok := h.bindJSON(c, &req); !ok {
		return
	}

	token, u, err := h.services.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.serviceError(c, err, "login_failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  u.Summary(),
	})
}

// @Summary      Request password reset
// @Description  The response is identical whether or not the email exists.
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        body  body  forgotPasswordRequest  true  "Email"
// @Success      200  {object}  map[string]string
// @Router       /api/user/forgot-password [post]
func (h *Handler) forgotPassword(c *gin.Context) {
	var req forgotPasswordRequest
	if ok := h.bindJSON(c, &req); !ok {
		return
	}

	if err := h.services.PasswordReset.Request(c.Request.Context(), req.Email); err != nil {
		// storage failure only; the generic message still hides existence
		h.serviceError(c, err, "forgot_password_failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": forgotPasswordMessage})
}

// @Summary      Redeem password reset token
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        body  body  resetPasswordRequest  true  "Token and new password"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Router       /api/user/reset-password [post]
func (h *Handler) resetPassword(c *gin.Context) {
	var req resetPasswordRequest
	if ok := h.bindJSON(c, &req); !ok {
		return
	}

	if err := h.services.PasswordReset.Redeem(c.Request.Context(), req.Token, req.Password); err != nil {
		h.serviceError(c, err, "reset_password_failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password reset successfully"})
}

// @Summary      Echo the Authorization header (diagnostic)
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /api/debug/token [get]
func (h *Handler) debugToken(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if h.log != nil {
		h.log.Infow("debug_token", "header_present", header != "")
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Token debug info",
		"header":  header,
	})
}
