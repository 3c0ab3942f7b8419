package api

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/podsift/podsift/app/database"
)

const defaultItemLimit = 100

type Handler struct {
	newsfeedRepo database.NewsfeedRepository
	itemRepo     database.ItemRepository
}

func NewHandler(newsfeedRepo database.NewsfeedRepository, itemRepo database.ItemRepository) *Handler {
	return &Handler{
		newsfeedRepo: newsfeedRepo,
		itemRepo:     itemRepo,
	}
}

func (h *Handler) GetHealth(c *gin.Context) {
	health := map[string]interface{}{
		"timestamp": time.Now().In(time.Local).Format(time.RFC3339),
	}

	if count, err := h.newsfeedRepo.GetNewsfeedCount(); err == nil {
		health["newsfeeds"] = count
	}

	c.JSON(http.StatusOK, health)
}

func (h *Handler) GetStats(c *gin.Context) {
	stats := database.Stats{}

	var err error
	if stats.NewsfeedCount, err = h.newsfeedRepo.GetNewsfeedCount(); err != nil {
		slog.Error("Database error", "operation", "get_newsfeed_count", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if stats.ItemCount, err = h.itemRepo.GetItemCount(); err != nil {
		slog.Error("Database error", "operation", "get_item_count", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (h *Handler) GetNewsfeeds(c *gin.Context) {
	feedID, ok := h.feedIDParam(c)
	if !ok {
		return
	}

	feeds, err := h.newsfeedRepo.GetNewsfeedsByFeedID(feedID)
	if err != nil {
		slog.Error("Database error", "operation", "get_newsfeeds", "feed_id", feedID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if len(feeds) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Newsfeed not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"newsfeeds": feeds,
		"total":     len(feeds),
	})
}

func (h *Handler) GetNewsfeedItems(c *gin.Context) {
	feedID, ok := h.feedIDParam(c)
	if !ok {
		return
	}

	limit := defaultItemLimit
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	items, err := h.itemRepo.GetItemsByFeedID(feedID, limit)
	if err != nil {
		slog.Error("Database error", "operation", "get_items", "feed_id", feedID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items": items,
		"total": len(items),
	})
}

func (h *Handler) feedIDParam(c *gin.Context) (int64, bool) {
	feedID, err := strconv.ParseInt(c.Param("feed_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid feed_id parameter"})
		return 0, false
	}
	return feedID, true
}
