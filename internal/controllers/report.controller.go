package controllers

import (
	"log"
	"net/http"
	"time"

	"recipehub/internal/cache"
	"recipehub/internal/models"
	"recipehub/internal/repository"

	"github.com/gin-gonic/gin"
)

const (
	reportLimit    = 10
	reportCacheTTL = 5 * time.Minute
)

// ReportController serves the staff-facing ranking reports. The cache is
// optional; when it is nil every request hits the database.
type ReportController struct {
	reportRepo repository.ReportRepository
	cache      *cache.RedisClient
}

func NewReportController(reportRepo repository.ReportRepository, redisClient *cache.RedisClient) *ReportController {
	return &ReportController{reportRepo: reportRepo, cache: redisClient}
}

// PopularRecipes godoc
// @Summary Top recipes by collection saves
// @Description Staff report of the ten recipes saved into the most collections, ties broken by recipe id
// @Tags reports
// @Produce json
// @Success 200 {object} map[string]interface{} "Report retrieved successfully"
// @Router /reports/popular-recipes [get]
func (rc *ReportController) PopularRecipes(c *gin.Context) {
	if rc.cache != nil {
		var cached []models.RecipePopularity
		if hit, err := rc.cache.GetReport("popular_recipes", &cached); err != nil {
			log.Printf("Failed to read popular recipes report from cache: %v", err)
		} else if hit {
			c.JSON(http.StatusOK, gin.H{
				"status":  "success",
				"message": "Report retrieved successfully",
				"data":    cached,
				"meta":    gin.H{"cached": true},
			})
			return
		}
	}

	rows, err := rc.reportRepo.TopRecipesBySaves(reportLimit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to build report",
			"error":   "Database query failed",
		})
		return
	}

	if rc.cache != nil {
		if err := rc.cache.StoreReport("popular_recipes", rows, reportCacheTTL); err != nil {
			log.Printf("Failed to cache popular recipes report: %v", err)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Report retrieved successfully",
		"data":    rows,
		"meta":    gin.H{"cached": false},
	})
}

// UserActivity godoc
// @Summary Top users by collection count
// @Tags reports
// @Produce json
// @Success 200 {object} map[string]interface{} "Report retrieved successfully"
// @Router /reports/user-activity [get]
func (rc *ReportController) UserActivity(c *gin.Context) {
	if rc.cache != nil {
		var cached []models.UserActivity
		if hit, err := rc.cache.GetReport("user_activity", &cached); err != nil {
			log.Printf("Failed to read user activity report from cache: %v", err)
		} else if hit {
			c.JSON(http.StatusOK, gin.H{
				"status":  "success",
				"message": "Report retrieved successfully",
				"data":    cached,
				"meta":    gin.H{"cached": true},
			})
			return
		}
	}

	rows, err := rc.reportRepo.TopUsersByActivity(reportLimit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to build report",
			"error":   "Database query failed",
		})
		return
	}

	if rc.cache != nil {
		if err := rc.cache.StoreReport("user_activity", rows, reportCacheTTL); err != nil {
			log.Printf("Failed to cache user activity report: %v", err)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Report retrieved successfully",
		"data":    rows,
		"meta":    gin.H{"cached": false},
	})
}
