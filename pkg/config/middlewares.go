package config

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// CORSConfig builds the CORS policy for the configured origins
func (c *Config) CORSConfig() middleware.CORSConfig {
	return middleware.CORSConfig{
		AllowOrigins:  c.CORSAllowOrigins,
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization, "If-None-Match"},
		ExposeHeaders: []string{"ETag"},
	}
}
