package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/Tharushi-Umesha/school-management-system/models"
)

type EventHandler struct {
	DB *gorm.DB
}

func NewEventHandler(db *gorm.DB) *EventHandler { return &EventHandler{DB: db} }

type eventPayload struct {
	Title       string `json:"title" validate:"required"`
	EventDate   string `json:"event_date" validate:"required,dateonly"`
	Description string `json:"description" validate:"required"`
}

// GET /events — always ordered by event_date ascending
func (h *EventHandler) List(c echo.Context) error {
	items := []models.Event{}
	if err := h.DB.Order("event_date ASC").Find(&items).Error; err != nil {
		c.Logger().Error(err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_QUERY_FAILED"})
	}
	return c.JSON(http.StatusOK, items)
}

// POST /events
func (h *EventHandler) Create(c echo.Context) error {
	var p eventPayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "INVALID_PAYLOAD"})
	}
	if fields := checkPayload(&p); fields != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "VALIDATION_ERROR", "fields": fields})
	}

	ev := models.Event{Title: p.Title, EventDate: p.EventDate, Description: p.Description}
	if err := h.DB.Create(&ev).Error; err != nil {
		c.Logger().Error(err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_QUERY_FAILED"})
	}
	return c.JSON(http.StatusCreated, ev)
}

// DELETE /events/:id — events have no update operation
func (h *EventHandler) Delete(c echo.Context) error {
	var existing models.Event
	if err := h.DB.First(&existing, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "NOT_FOUND"})
		}
		c.Logger().Error(err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_QUERY_FAILED"})
	}
	if err := h.DB.Delete(&existing).Error; err != nil {
		c.Logger().Error(err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_QUERY_FAILED"})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Event deleted successfully"})
}

// GET /events/count
func (h *EventHandler) Count(c echo.Context) error {
	var total int64
	if err := h.DB.Model(&models.Event{}).Count(&total).Error; err != nil {
		c.Logger().Error(err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_COUNT_FAILED"})
	}
	return c.JSON(http.StatusOK, map[string]int64{"count": total})
}
