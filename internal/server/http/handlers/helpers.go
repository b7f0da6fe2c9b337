package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/greenloop/greenpoints/internal/domain/model"
	"github.com/greenloop/greenpoints/internal/server/http/middleware"
)

// CurrentUserID extracts authenticated user identifier from context.
func CurrentUserID(c *gin.Context) int64 {
	val, ok := c.Get(middleware.UserIDContextKey)
	if !ok {
		return 0
	}
	id, _ := val.(int64)
	return id
}

// ParseRewardFilter reads catalog filter parameters from the query string.
// Unknown or malformed values fall back to defaults via Normalize.
func ParseRewardFilter(c *gin.Context) model.RewardFilter {
	filter := model.RewardFilter{
		Category: model.RewardCategory(c.Query("category")),
		Search:   c.Query("search"),
		SortBy:   model.RewardSortKey(c.Query("sort")),
	}
	filter.MinPoints = queryInt64(c, "min_points")
	filter.MaxPoints = queryInt64(c, "max_points")
	filter.Descending = c.Query("order") == "desc"
	filter.Page = int(queryInt64(c, "page"))
	filter.PageSize = int(queryInt64(c, "page_size"))
	return filter.Normalize()
}

// ParsePaging reads page/page_size query parameters with defaults.
func ParsePaging(c *gin.Context) (page, size int) {
	page = int(queryInt64(c, "page"))
	size = int(queryInt64(c, "page_size"))
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 20
	}
	if size > 100 {
		size = 100
	}
	return page, size
}

func queryInt64(c *gin.Context, key string) int64 {
	v := c.Query(key)
	if v == "" {
		return 0
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
