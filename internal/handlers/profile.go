package handlers

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"portfolio_backend/internal/repository"
	"portfolio_backend/internal/storage"
)

// profileUpdateRequest uses pointers so only keys present in the JSON body
// are applied.
type profileUpdateRequest struct {
	Name         *string `json:"name"`
	JobTitle     *string `json:"job_title"`
	Bio          *string `json:"bio"`
	ProfileImage *string `json:"profile_image"`
}

// isMultipart reports whether the request declared a multipart form body.
func isMultipart(c *gin.Context) bool {
	return strings.HasPrefix(c.ContentType(), "multipart/form-data")
}

// formValue returns a pointer to the form field value when the field was
// actually submitted, nil otherwise.
func formValue(form *multipart.Form, key string) *string {
	vals, ok := form.Value[key]
	if !ok || len(vals) == 0 {
		return nil
	}
	return &vals[0]
}

// storeFormFile persists an optional uploaded file and returns its stored
// name. Absent file -> (nil, true). On failure the request is answered and
// false returned.
func (h *Handler) storeFormFile(c *gin.Context, form *multipart.Form, field, prefix string) (*string, bool) {
	files, ok := form.File[field]
	if !ok || len(files) == 0 || files[0].Filename == "" {
		return nil, true
	}
	header := files[0]

	src, err := header.Open()
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to read upload", "upload_open_failed", err)
		return nil, false
	}
	defer func() { _ = src.Close() }()

	stored, err := h.store.Save(prefix, header.Filename, src, header.Size)
	if err != nil {
		if errors.Is(err, storage.ErrTooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file exceeds the 2 MiB limit"})
			return nil, false
		}
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to store upload", "upload_save_failed", err)
		return nil, false
	}
	if h.log != nil {
		h.log.Infow("upload_stored", "name", stored)
	}
	return &stored, true
}

// @Summary      Fetch own profile
// @Tags         profile
// @Produce      json
// @Success      200  {object}  models.User
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/user/profile [get]
// @Security     BearerAuth
func (h *Handler) getProfile(c *gin.Context) {
	u, err := h.services.Profile.Get(c.Request.Context(), userID(c))
	if err != nil {
		h.serviceError(c, err, "get_profile_failed", "user_id", userID(c))
		return
	}
	c.JSON(http.StatusOK, u)
}

// @Summary      Update own profile
// @Description  JSON or multipart. Only fields present in the request are
// @Description  changed; a multipart body may carry a profile_image file.
// @Tags         profile
// @Accept       json
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "message, user"
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      413  {object}  map[string]string
// @Router       /api/user/profile [put]
// @Security     BearerAuth
func (h *Handler) updateProfile(c *gin.Context) {
	var upd repository.ProfileUpdate

	if isMultipart(c) {
		form, err := c.MultipartForm()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid multipart form"})
			return
		}
		upd.Name = formValue(form, "name")
		upd.JobTitle = formValue(form, "job_title")
		upd.Bio = formValue(form, "bio")

		stored, ok := h.storeFormFile(c, form, "profile_image", storage.ProfilePrefix)
		if !ok {
			return
		}
		if stored != nil {
			upd.ProfileImage = stored
		}
	} else {
		var req profileUpdateRequest
		if ok := h.bindJSON(c, &req); !ok {
			return
		}
		upd = repository.ProfileUpdate{
			Name:         req.Name,
			JobTitle:     req.JobTitle,
			Bio:          req.Bio,
			ProfileImage: req.ProfileImage,
		}
	}

	u, err := h.services.Profile.Update(c.Request.Context(), userID(c), upd)
	if err != nil {
		h.serviceError(c, err, "update_profile_failed", "user_id", userID(c))
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Profile updated successfully",
		"user":    u,
	})
}
