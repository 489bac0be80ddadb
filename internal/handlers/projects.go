package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"portfolio_backend/internal/repository"
	"portfolio_backend/internal/service"
	"portfolio_backend/internal/storage"
)

type projectCreateRequest struct {
	Name        string `json:"name" binding:"required"`
	DemoURL     string `json:"demo_url"`
	RepoURL     string `json:"repo_url"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

type projectUpdateRequest struct {
	Name        *string `json:"name"`
	DemoURL     *string `json:"demo_url"`
	RepoURL     *string `json:"repo_url"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
}

// projectID parses the :id path parameter. Returns false after answering
// the request when the parameter is not numeric.
func projectID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project id"})
		return 0, false
	}
	return id, true
}

// @Summary      List own projects
// @Tags         projects
// @Produce      json
// @Success      200  {array}   models.Project
// @Failure      401  {object}  map[string]string
// @Router       /api/user/projects [get]
// @Security     BearerAuth
func (h *Handler) listProjects(c *gin.Context) {
	projects, err := h.services.Projects.List(c.Request.Context(), userID(c))
	if err != nil {
		h.serviceError(c, err, "list_projects_failed", "user_id", userID(c))
		return
	}
	c.JSON(http.StatusOK, projects)
}

// @Summary      Create project
// @Description  JSON or multipart with an optional image file. The name is
// @Description  required either way.
// @Tags         projects
// @Accept       json
// @Produce      json
// @Success      201  {object}  map[string]interface{}  "message, project"
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      413  {object}  map[string]string
// @Router       /api/user/projects [post]
// @Security     BearerAuth
func (h *Handler) createProject(c *gin.Context) {
	var in service.ProjectInput

	if isMultipart(c) {
		form, err := c.MultipartForm()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid multipart form"})
			return
		}
		in = service.ProjectInput{
			Name:        c.PostForm("name"),
			DemoURL:     c.PostForm("demo_url"),
			RepoURL:     c.PostForm("repo_url"),
			Description: c.PostForm("description"),
		}
		stored, ok := h.storeFormFile(c, form, "image", storage.ProjectPrefix)
		if !ok {
			return
		}
		if stored != nil {
			in.Image = *stored
		}
	} else {
		var req projectCreateRequest
		if ok := h.bindJSON(c, &req); !ok {
			return
		}
		in = service.ProjectInput{
			Name:        req.Name,
			DemoURL:     req.DemoURL,
			RepoURL:     req.RepoURL,
			Description: req.Description,
			Image:       req.Image,
		}
	}

	p, err := h.services.Projects.Create(c.Request.Context(), userID(c), in)
	if err != nil {
		h.serviceError(c, err, "create_project_failed", "user_id", userID(c))
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Project added successfully",
		"project": p,
	})
}

// @Summary      Update project
// @Description  Partial update; ownership enforced. A project owned by
// @Description  another user is indistinguishable from a missing one.
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        id  path  int  true  "Project id"
// @Success      200  {object}  map[string]interface{}  "message, project"
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/user/projects/{id} [put]
// @Security     BearerAuth
func (h *Handler) updateProject(c *gin.Context) {
	id, ok := projectID(c)
	if !ok {
		return
	}

	var upd repository.ProjectUpdate
	if isMultipart(c) {
		form, err := c.MultipartForm()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid multipart form"})
			return
		}
		upd.Name = formValue(form, "name")
		upd.DemoURL = formValue(form, "demo_url")
		upd.RepoURL = formValue(form, "repo_url")
		upd.Description = formValue(form, "description")

		stored, stok := h.storeFormFile(c, form, "image", storage.ProjectPrefix)
		if !stok {
			return
		}
		if stored != nil {
			upd.Image = stored
		}
	} else {
		var req projectUpdateRequest
		if ok := h.bindJSON(c, &req); !ok {
			return
		}
		upd = repository.ProjectUpdate{
			Name:        req.Name,
			DemoURL:     req.DemoURL,
			RepoURL:     req.RepoURL,
			Description: req.Description,
			Image:       req.Image,
		}
	}

	p, err := h.services.Projects.Update(c.Request.Context(), id, userID(c), upd)
	if err != nil {
		h.serviceError(c, err, "update_project_failed", "project_id", id, "user_id", userID(c))
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Project updated successfully",
		"project": p,
	})
}

// @Summary      Delete project
// @Tags         projects
// @Produce      json
// @Param        id  path  int  true  "Project id"
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/user/projects/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteProject(c *gin.Context) {
	id, ok := projectID(c)
	if !ok {
		return
	}

	if err := h.services.Projects.Delete(c.Request.Context(), id, userID(c)); err != nil {
		h.serviceError(c, err, "delete_project_failed", "project_id", id, "user_id", userID(c))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Project deleted successfully"})
}
