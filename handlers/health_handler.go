package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/Tharushi-Umesha/school-management-system/database"
)

// Health reports liveness and DB reachability for /health.
func Health(db *gorm.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := database.Ping(db); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "db_unreachable"})
		}
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	}
}
