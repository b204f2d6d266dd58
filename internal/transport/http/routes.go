// Package http exposes the farm's monitoring surface over gin: a health
// check and a status endpoint reporting the seven bucket counts. The farm
// runs to completion with or without it; cmd/farm only starts this server
// when an address is configured.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sudoku-engine/internal/farm"
	"sudoku-engine/internal/generator"
)

// RegisterRoutes wires the status endpoints onto r.
func RegisterRoutes(r *gin.Engine, coord *farm.Coordinator) {
	r.GET("/health", healthHandler)
	r.GET("/status", statusHandler(coord))
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func statusHandler(coord *farm.Coordinator) gin.HandlerFunc {
	return func(c *gin.Context) {
		counts := coord.Counts()
		buckets := make(map[string]int, len(counts))
		for band, n := range counts {
			buckets[string(band)] = n
		}
		c.JSON(http.StatusOK, gin.H{
			"done":    coord.Done(),
			"buckets": buckets,
			"order":   bandOrder(),
		})
	}
}

func bandOrder() []string {
	out := make([]string, len(generator.Bands))
	for i, b := range generator.Bands {
		out[i] = string(b)
	}
	return out
}
