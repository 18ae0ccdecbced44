package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/BramsuryaJP/my-portfolio-backend/internal/service"
	"github.com/go-chi/chi/v5"
)

// maxUploadSize bounds multipart parsing for image uploads.
const maxUploadSize = 10 << 20

type ProjectHandler struct {
	projectService *service.ProjectService
}

func NewProjectHandler(projectService *service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

func (h *ProjectHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	projects, err := h.projectService.List(r.Context())
	if err != nil {
		respondMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"data": projects})
}

func (h *ProjectHandler) GetPaged(w http.ResponseWriter, r *http.Request) {
	page, limit, ok := pageParams(r)
	if !ok {
		respondMessage(w, http.StatusBadRequest, "Invalid page or limit. Both must be greater than 0.")
		return
	}

	result, err := h.projectService.ListPage(r.Context(), page, limit)
	if err != nil {
		respondMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"data":        result.Data,
		"currentPage": result.CurrentPage,
		"limit":       result.Limit,
		"totalCount":  result.TotalCount,
		"totalPages":  result.TotalPages,
	})
}

func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid form data")
		return
	}

	name := r.FormValue("name")
	if name == "" {
		respondMessage(w, http.StatusBadRequest, "Project name cannot be empty")
		return
	}

	input := service.CreateProjectInput{
		Name:        name,
		Description: r.FormValue("description"),
		Tags:        r.Form["tags"],
	}

	if file, header, err := r.FormFile("image"); err == nil {
		defer file.Close()
		input.Image = file
		input.ImageName = header.Filename
	}

	project, err := h.projectService.Create(r.Context(), input)
	if err != nil {
		if errors.Is(err, service.ErrProjectExists) {
			respondMessage(w, http.StatusBadRequest, "Project already exists")
			return
		}
		respondMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]any{
		"message": "Project created successfully",
		"project": project,
	})
}

func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid project ID")
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid form data")
		return
	}

	input := service.UpdateProjectInput{
		Name:        formValue(r, "name"),
		Description: formValue(r, "description"),
	}
	if _, ok := r.Form["tags"]; ok {
		input.Tags = r.Form["tags"]
	}
	if file, header, err := r.FormFile("image"); err == nil {
		defer file.Close()
		input.Image = file
		input.ImageName = header.Filename
	}

	project, err := h.projectService.Update(r.Context(), id, input)
	if err != nil {
		if errors.Is(err, service.ErrProjectNotFound) {
			respondMessage(w, http.StatusNotFound, "Project not found")
			return
		}
		respondMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"message": "Project updated successfully",
		"project": project,
	})
}

func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid project ID")
		return
	}

	project, err := h.projectService.Delete(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrProjectNotFound) {
			respondMessage(w, http.StatusNotFound, "Project not found")
			return
		}
		respondMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"message": "Project deleted successfully",
		"project": project,
	})
}

func (h *ProjectHandler) DeleteMultiple(w http.ResponseWriter, r *http.Request) {
	var ids []int64
	if err := json.NewDecoder(r.Body).Decode(&ids); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if len(ids) == 0 {
		respondMessage(w, http.StatusBadRequest, "No project IDs provided")
		return
	}

	deleted, err := h.projectService.DeleteMany(r.Context(), ids)
	if err != nil {
		if errors.Is(err, service.ErrProjectNotFound) {
			respondMessage(w, http.StatusNotFound, "No projects found with the provided IDs")
			return
		}
		respondMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"message":         fmt.Sprintf("%d projects deleted successfully", len(deleted)),
		"deletedProjects": deleted,
	})
}

func idParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// pageParams parses page/limit query values, defaulting to 1/10. Both
// must be greater than zero.
func pageParams(r *http.Request) (page, limit int, ok bool) {
	page, limit = 1, 10

	if raw := r.URL.Query().Get("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return 0, 0, false
		}
		page = parsed
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return 0, 0, false
		}
		limit = parsed
	}

	if page < 1 || limit < 1 {
		return 0, 0, false
	}
	return page, limit, true
}

// formValue returns a pointer to the form field's value, or nil when
// the field was not sent at all, so updates can distinguish "unset"
// from "set to empty".
func formValue(r *http.Request, key string) *string {
	values, ok := r.Form[key]
	if !ok || len(values) == 0 {
		return nil
	}
	return &values[0]
}
