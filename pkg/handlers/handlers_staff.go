package handlers

import (
	"net/http"
	"strings"

	"github.com/arnavshah/shift-admin-go/pkg/models"
	"github.com/arnavshah/shift-admin-go/pkg/repository"
	"github.com/gin-gonic/gin"
)

type staffInput struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// ListStaff returns the whole roster
func (h *Handler) ListStaff(c *gin.Context) {
	staff, err := h.Store.ListStaff(c.Request.Context())
	if err != nil {
		h.storeError(c, err, "Could not list staff")
		return
	}
	c.JSON(http.StatusOK, gin.H{"staff": staff})
}

// CreateStaff adds a roster entry, generating an S### id when none is given
func (h *Handler) CreateStaff(c *gin.Context) {
	var req staffInput
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, CodeInvalidArgument, err.Error())
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		abortWithError(c, http.StatusBadRequest, CodeInvalidArgument, "name is required")
		return
	}

	ctx := c.Request.Context()
	if req.ID == "" {
		existing, err := h.Store.ListStaff(ctx)
		if err != nil {
			h.storeError(c, err, "Could not create staff")
			return
		}
		req.ID = repository.NextStaffID(existing)
	}

	staff := models.Staff{
		ID:    req.ID,
		Name:  req.Name,
		Email: strings.TrimSpace(req.Email),
		Role:  req.Role,
	}
	if err := h.Store.CreateStaff(ctx, &staff); err != nil {
		h.storeError(c, err, "Could not create staff")
		return
	}
	c.JSON(http.StatusCreated, staff)
}

// GetStaff returns one roster entry
func (h *Handler) GetStaff(c *gin.Context) {
	staff, err := h.Store.GetStaff(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.storeError(c, err, "Could not get staff")
		return
	}
	c.JSON(http.StatusOK, staff)
}

// UpdateStaff replaces the editable fields of a roster entry
func (h *Handler) UpdateStaff(c *gin.Context) {
	var req staffInput
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, CodeInvalidArgument, err.Error())
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		abortWithError(c, http.StatusBadRequest, CodeInvalidArgument, "name is required")
		return
	}

	ctx := c.Request.Context()
	staff := models.Staff{
		ID:    c.Param("id"),
		Name:  req.Name,
		Email: strings.TrimSpace(req.Email),
		Role:  req.Role,
	}
	if err := h.Store.UpdateStaff(ctx, &staff); err != nil {
		h.storeError(c, err, "Could not update staff")
		return
	}

	updated, err := h.Store.GetStaff(ctx, staff.ID)
	if err != nil {
		h.storeError(c, err, "Could not update staff")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteStaff removes a roster entry. Existing shift requests keep the name.
func (h *Handler) DeleteStaff(c *gin.Context) {
	if err := h.Store.DeleteStaff(c.Request.Context(), c.Param("id")); err != nil {
		h.storeError(c, err, "Could not delete staff")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Staff deleted"})
}
