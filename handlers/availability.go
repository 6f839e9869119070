package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"bandroom/models"
	"bandroom/services/scheduling"
	"bandroom/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// AvailabilityHandler serves the read-only availability surface. Month
// grids and day flags are cached in Redis with a short TTL; the cache
// is advisory only since every booking write re-checks conflicts
// against the store.
type AvailabilityHandler struct {
	Engine *scheduling.Engine
	Cache  *redis.Client
}

func NewAvailabilityHandler(engine *scheduling.Engine, cache *redis.Client) *AvailabilityHandler {
	return &AvailabilityHandler{Engine: engine, Cache: cache}
}

// GetAvailableStarts handles GET /api/availability/starts?date=&duration=.
func (h *AvailabilityHandler) GetAvailableStarts(c *gin.Context) {
	date := c.Query("date")
	duration, err := strconv.Atoi(c.DefaultQuery("duration", "1"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "duration must be an integer"})
		return
	}

	starts, err := h.Engine.AvailableStarts(c.Request.Context(), date, duration)
	if err != nil {
		respondError(c, err)
		return
	}
	if starts == nil {
		starts = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"date": date, "duration": duration, "starts": starts})
}

// GetDayFlags handles GET /api/availability/day/:date.
func (h *AvailabilityHandler) GetDayFlags(c *gin.Context) {
	date := c.Param("date")
	cacheKey := utils.DayFlagsCachePrefix + date

	var flags models.DayFlags
	if h.cachedJSON(c.Request.Context(), cacheKey, &flags) {
		c.JSON(http.StatusOK, flags)
		return
	}

	flags, err := h.Engine.DayFlags(c.Request.Context(), date)
	if err != nil {
		respondError(c, err)
		return
	}
	h.cacheJSON(c.Request.Context(), cacheKey, flags)
	c.JSON(http.StatusOK, flags)
}

// GetDaySchedule handles GET /api/availability/day/:date/slots.
func (h *AvailabilityHandler) GetDaySchedule(c *gin.Context) {
	date := c.Param("date")
	cacheKey := utils.DayScheduleCachePrefix + date

	var cached []models.SlotInfo
	if h.cachedJSON(c.Request.Context(), cacheKey, &cached) {
		c.JSON(http.StatusOK, gin.H{"date": date, "slots": cached})
		return
	}

	slots, err := h.Engine.DaySchedule(c.Request.Context(), date)
	if err != nil {
		respondError(c, err)
		return
	}
	h.cacheJSON(c.Request.Context(), cacheKey, slots)
	c.JSON(http.StatusOK, gin.H{"date": date, "slots": slots})
}

// GetCalendarMonth handles GET /api/availability/calendar/:year/:month.
func (h *AvailabilityHandler) GetCalendarMonth(c *gin.Context) {
	year, err1 := strconv.Atoi(c.Param("year"))
	month, err2 := strconv.Atoi(c.Param("month"))
	if err1 != nil || err2 != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "year and month must be integers"})
		return
	}

	cacheKey := fmt.Sprintf("%s%04d-%02d", utils.CalendarCachePrefix, year, month)
	var cached models.CalendarMonth
	if h.cachedJSON(c.Request.Context(), cacheKey, &cached) {
		c.JSON(http.StatusOK, cached)
		return
	}

	grid, err := h.Engine.MonthGrid(c.Request.Context(), year, month)
	if err != nil {
		respondError(c, err)
		return
	}
	h.cacheJSON(c.Request.Context(), cacheKey, grid)
	c.JSON(http.StatusOK, grid)
}

func (h *AvailabilityHandler) cachedJSON(ctx context.Context, key string, out any) bool {
	if h.Cache == nil {
		return false
	}
	data, err := h.Cache.Get(ctx, key).Result()
	if err != nil {
		return false
	}
	return json.Unmarshal([]byte(data), out) == nil
}

func (h *AvailabilityHandler) cacheJSON(ctx context.Context, key string, v any) {
	if h.Cache == nil {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := h.Cache.Set(ctx, key, data, utils.AvailabilityCacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("failed to cache availability response",
			zap.String("key", key), zap.Error(err))
	}
}
