package api

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"resource-inventory-backend/internal/model"
	"resource-inventory-backend/internal/store"
	"resource-inventory-backend/internal/validate"
)

// formChoices are the dropdown options for the create/edit forms. They
// come from the fixed enumerations, not from the store, so an empty
// database still offers every valid choice.
func formChoices() gin.H {
	return gin.H{
		"resource_types": model.Types,
		"statuses":       model.Statuses,
	}
}

// CreateForm handles GET /resources/create: a blank field set plus the
// available choices.
func (h *Handler) CreateForm(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"values":  validate.Fields{Status: model.StatusAvailable},
		"choices": formChoices(),
	})
}

// Create handles POST /resources/create. Invalid input re-surfaces the
// submitted values with field errors; success navigates to the new
// record.
func (h *Handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var fields validate.Fields
	if err := c.ShouldBind(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid form submission"})
		return
	}

	fieldErrs, err := validate.Check(ctx, h.store, &fields, 0)
	if err != nil {
		h.storeFailure(c, "create", err)
		return
	}
	if len(fieldErrs) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"errors":  fieldErrs,
			"values":  fields,
			"choices": formChoices(),
		})
		return
	}

	resource := fields.Resource()
	if err := h.store.Create(ctx, &resource); err != nil {
		if errors.Is(err, store.ErrConflict) {
			h.nameConflict(c, fields)
			return
		}
		h.storeFailure(c, "create", err)
		return
	}

	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/resources/%d", resource.ID))
}

// EditForm handles GET /resources/{id}/edit: the current record plus
// choices, or a redirect to the listing when the id is missing.
func (h *Handler) EditForm(c *gin.Context) {
	resource, ok := h.resourceFromPath(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"resource": resource,
		"choices":  formChoices(),
	})
}

// Edit handles POST /resources/{id}/edit. The record must exist before
// the submission is validated; a vanished id navigates back to the
// listing.
func (h *Handler) Edit(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/resources")
		return
	}
	if _, err := h.store.Get(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.Redirect(http.StatusSeeOther, "/resources")
			return
		}
		h.storeFailure(c, "edit", err)
		return
	}

	var fields validate.Fields
	if err := c.ShouldBind(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid form submission"})
		return
	}

	fieldErrs, err := validate.Check(ctx, h.store, &fields, id)
	if err != nil {
		h.storeFailure(c, "edit", err)
		return
	}
	if len(fieldErrs) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"errors":  fieldErrs,
			"values":  fields,
			"choices": formChoices(),
		})
		return
	}

	resource := fields.Resource()
	if _, err := h.store.Update(ctx, id, &resource); err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			c.Redirect(http.StatusSeeOther, "/resources")
		case errors.Is(err, store.ErrConflict):
			h.nameConflict(c, fields)
		default:
			h.storeFailure(c, "edit", err)
		}
		return
	}

	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/resources/%d", id))
}

// DeleteConfirm handles GET /resources/{id}/delete: the record for
// confirmation display.
func (h *Handler) DeleteConfirm(c *gin.Context) {
	resource, ok := h.resourceFromPath(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"resource": resource})
}

// Delete handles POST /resources/{id}/delete. Deleting an id that no
// longer exists navigates to the listing without touching anything else.
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/resources")
		return
	}

	if err := h.store.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.Redirect(http.StatusSeeOther, "/resources")
			return
		}
		h.storeFailure(c, "delete", err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/resources")
}

// nameConflict reports a unique-name violation that slipped past the
// validation check, i.e. a concurrent write won the race. The database
// constraint rolled the attempt back.
func (h *Handler) nameConflict(c *gin.Context, fields validate.Fields) {
	c.JSON(http.StatusConflict, gin.H{
		"error":  "A resource with this name already exists.",
		"values": fields,
	})
}

// storeFailure reports a storage fault on a mutating operation. Unlike
// the read-only views this must be explicit: silently dropping a write
// would imply the data was saved.
func (h *Handler) storeFailure(c *gin.Context, op string, err error) {
	log.Printf("%s: store failure: %v", op, err)
	c.JSON(http.StatusInternalServerError, gin.H{
		"error": "The operation could not be completed. Please try again.",
	})
}
