package handler

import (
	"net/http"

	"github.com/yatube/api/internal/model"
)

// AdminHandler handles administrative operations on communities
type AdminHandler struct {
	groupService GroupService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(groupService GroupService) *AdminHandler {
	return &AdminHandler{groupService: groupService}
}

// CreateGroup handles POST /admin/groups
func (h *AdminHandler) CreateGroup(w http.ResponseWriter, r *http.Request) {
	var req model.CreateGroupRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	group, err := h.groupService.Create(r.Context(), req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	location := "/group/" + group.Slug + "/"
	w.Header().Set("Location", location)
	WriteData(w, http.StatusCreated, group, map[string]string{
		"self": location,
	})
}
