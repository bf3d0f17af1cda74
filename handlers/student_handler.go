package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/Tharushi-Umesha/school-management-system/models"
)

type StudentHandler struct {
	DB *gorm.DB
}

func NewStudentHandler(db *gorm.DB) *StudentHandler { return &StudentHandler{DB: db} }

// studentPayload is a full document: every field must be present.
// Age is a pointer so a missing field is distinguishable from zero.
type studentPayload struct {
	Name  string `json:"name" validate:"required"`
	Age   *int   `json:"age" validate:"required,gte=0"`
	Grade string `json:"grade" validate:"required"`
	Email string `json:"email" validate:"required"`
}

// GET /students
func (h *StudentHandler) List(c echo.Context) error {
	items := []models.Student{}
	if err := h.DB.Find(&items).Error; err != nil {
		c.Logger().Error(err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_QUERY_FAILED"})
	}
	return c.JSON(http.StatusOK, items)
}

// POST /students
func (h *StudentHandler) Create(c echo.Context) error {
	var p studentPayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "INVALID_PAYLOAD"})
	}
	if fields := checkPayload(&p); fields != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "VALIDATION_ERROR", "fields": fields})
	}

	s := models.Student{Name: p.Name, Age: *p.Age, Grade: p.Grade, Email: p.Email}
	if err := h.DB.Create(&s).Error; err != nil {
		c.Logger().Error(err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_QUERY_FAILED"})
	}
	return c.JSON(http.StatusCreated, s)
}

// PUT /students/:id — full replacement, no partial update
func (h *StudentHandler) Update(c echo.Context) error {
	var existing models.Student
	if err := h.DB.First(&existing, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "NOT_FOUND"})
		}
		c.Logger().Error(err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_QUERY_FAILED"})
	}

	var p studentPayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "INVALID_PAYLOAD"})
	}
	if fields := checkPayload(&p); fields != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "VALIDATION_ERROR", "fields": fields})
	}

	existing.Name = p.Name
	existing.Age = *p.Age
	existing.Grade = p.Grade
	existing.Email = p.Email

	if err := h.DB.Save(&existing).Error; err != nil {
		c.Logger().Error(err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_QUERY_FAILED"})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Student updated successfully"})
}

// DELETE /students/:id
func (h *StudentHandler) Delete(c echo.Context) error {
	var existing models.Student
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
	return c.JSON(http.StatusOK, map[string]string{"message": "Student deleted successfully"})
}

// GET /students/count
func (h *StudentHandler) Count(c echo.Context) error {
	var total int64
	if err := h.DB.Model(&models.Student{}).Count(&total).Error; err != nil {
		c.Logger().Error(err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_COUNT_FAILED"})
	}
	return c.JSON(http.StatusOK, map[string]int64{"count": total})
}
