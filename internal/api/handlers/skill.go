package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/BramsuryaJP/my-portfolio-backend/internal/service"
)

type SkillHandler struct {
	skillService *service.SkillService
}

func NewSkillHandler(skillService *service.SkillService) *SkillHandler {
	return &SkillHandler{skillService: skillService}
}

type CreateSkillRequest struct {
	Name string `json:"name" validate:"required"`
}

type UpdateSkillRequest struct {
	Name string `json:"name"`
}

func (h *SkillHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	skills, err := h.skillService.List(r.Context())
	if err != nil {
		respondMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"data": skills})
}

func (h *SkillHandler) GetPaged(w http.ResponseWriter, r *http.Request) {
	page, limit, ok := pageParams(r)
	if !ok {
		respondMessage(w, http.StatusBadRequest, "Invalid page or limit. Both must be greater than 0.")
		return
	}

	result, err := h.skillService.ListPage(r.Context(), page, limit)
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

func (h *SkillHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateSkillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Skill name cannot be empty")
		return
	}

	skill, err := h.skillService.Create(r.Context(), req.Name)
	if err != nil {
		if errors.Is(err, service.ErrSkillExists) {
			respondMessage(w, http.StatusBadRequest, "Skill already exists")
			return
		}
		respondMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]any{
		"message": "Skill created successfully",
		"skill":   skill,
	})
}

func (h *SkillHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid skill ID")
		return
	}

	var req UpdateSkillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name == "" {
		respondMessage(w, http.StatusBadRequest, "Updated skill name cannot be empty")
		return
	}

	skill, err := h.skillService.Update(r.Context(), id, req.Name)
	if err != nil {
		if errors.Is(err, service.ErrSkillNotFound) {
			respondMessage(w, http.StatusNotFound, "Skill not found")
			return
		}
		respondMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"message": "Skill updated successfully",
		"skill":   skill,
	})
}

func (h *SkillHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid skill ID")
		return
	}

	skill, err := h.skillService.Delete(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrSkillNotFound) {
			respondMessage(w, http.StatusNotFound, "Skill not found")
			return
		}
		respondMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"message": "Skill deleted successfully",
		"skill":   skill,
	})
}

func (h *SkillHandler) DeleteMultiple(w http.ResponseWriter, r *http.Request) {
	var ids []int64
	if err := json.NewDecoder(r.Body).Decode(&ids); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if len(ids) == 0 {
		respondMessage(w, http.StatusBadRequest, "No skill IDs provided")
		return
	}

	_, err := h.skillService.DeleteMany(r.Context(), ids)
	if err != nil {
		if errors.Is(err, service.ErrSkillNotFound) {
			respondMessage(w, http.StatusNotFound, "No skills found with the provided IDs")
			return
		}
		respondMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondMessage(w, http.StatusOK, "Skills deleted successfully")
}
