package middleware

import (
	"fmt"
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
	colorGray   = "\033[90m"
)

// LoggerConfig controls request logging behavior
type LoggerConfig struct {
	EnableColors bool
	SkipPaths    []string
}

func DefaultLoggerConfig() LoggerConfig {
	return LoggerConfig{
		EnableColors: true,
		SkipPaths:    []string{"/health"},
	}
}

func Logger() gin.HandlerFunc {
	return LoggerWithConfig(DefaultLoggerConfig())
}

func LoggerWithConfig(config LoggerConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		for _, skipPath := range config.SkipPaths {
			if path == skipPath {
				c.Next()
				return
			}
		}

		method := c.Request.Method
		ip := c.ClientIP()
		query := c.Request.URL.RawQuery

		c.Next()

		status := c.Writer.Status()
		latency := time.Since(start)

		if query != "" {
			path = path + "?" + query
		}

		if config.EnableColors {
			log.Printf("%s %s%3d%s %s %s%-7s%s %s %s(%s)%s",
				ip,
				statusColor(status), status, colorReset,
				latency.Round(time.Millisecond),
				colorCyan, method, colorReset,
				path,
				colorGray, c.Request.UserAgent(), colorReset,
			)
		} else {
			log.Printf("%s %3d %s %-7s %s", ip, status, latency.Round(time.Millisecond), method, path)
		}

		if len(c.Errors) > 0 {
			log.Print(fmt.Sprintf("%serrors: %s%s", colorRed, c.Errors.String(), colorReset))
		}
	}
}

func statusColor(status int) string {
	switch {
	case status >= 500:
		return colorRed
	case status >= 400:
		return colorYellow
	default:
		return colorGreen
	}
}
