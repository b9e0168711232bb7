package api

import (
	"context"       // Cache calls
	"encoding/json" // Decode errors raised by gin's JSON binding
	"errors"        // Error matching
	"fmt"           // Cache keys
	"net/http"      // HTTP status codes
	"reflect"       // Target types of decode errors
	"strconv"       // Path and query parsing

	"retirement_planner/internal/middleware" // Authenticated user lookup
	"retirement_planner/internal/retirement" // Validation errors
	"retirement_planner/internal/store"      // Store errors and pagination
	"retirement_planner/internal/utils"      // Cache

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// Pagination is embedded in every list response
type Pagination struct {
	Page       int   `json:"page"`        // Current page
	PageSize   int   `json:"page_size"`   // Page size
	Total      int64 `json:"total"`       // Total number of rows
	TotalPages int   `json:"total_pages"` // Total pages
}

func newPagination(p store.Page, total int64) Pagination {
	return Pagination{Page: p.Number, PageSize: p.Size, Total: total, TotalPages: p.TotalPages(total)}
}

// pageFromQuery reads page and page_size, ignoring values that do not parse
func pageFromQuery(c *gin.Context) store.Page {
	page, _ := strconv.Atoi(c.Query("page"))          // Zero when absent or invalid
	pageSize, _ := strconv.Atoi(c.Query("page_size")) // Zero when absent or invalid
	return store.NewPage(page, pageSize)
}

// currentUser returns the authenticated user id or writes 401
func currentUser(c *gin.Context) (uint, bool) {
	id, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
	}
	return id, ok
}

// pathID parses the :id parameter or writes 400
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return uint(id), true
}

// respondInvalid writes 400 with field details when err carries them
func respondInvalid(c *gin.Context, err error) {
	var verrs retirement.ValidationErrors
	if errors.As(err, &verrs) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": verrs})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
}

// respondBindError names the offending field when the body has a value of the
// wrong JSON type, such as a string where a number belongs
func respondBindError(c *gin.Context, err error) {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		respondInvalid(c, retirement.ValidationErrors{{Field: typeErr.Field, Message: typeMessage(typeErr.Type)}})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
}

func typeMessage(t reflect.Type) string {
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "must be a whole number"
	case reflect.Float32, reflect.Float64:
		return "must be a number"
	case reflect.Bool:
		return "must be true or false"
	case reflect.String:
		return "must be a string"
	default:
		return "has the wrong type"
	}
}

// respondStoreError maps ErrNotFound to 404 and logs anything else as a 500
func respondStoreError(c *gin.Context, err error, notFound, failed string, fields logrus.Fields) {
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": notFound})
		return
	}
	fields["error"] = err.Error()                  // Error message
	fields["request_id"] = middleware.RequestID(c) // Correlate with the access log
	logrus.WithFields(fields).Error(failed)
	c.JSON(http.StatusInternalServerError, gin.H{"error": failed})
}

// Cache key prefixes, one namespace per user and list
func scenarioListPrefix(userID uint) string { return fmt.Sprintf("scenarios:user:%d:", userID) }
func rothListPrefix(userID uint) string     { return fmt.Sprintf("roth:user:%d:", userID) }

const adminUsersPrefix = "admin:users:"

func pageKey(prefix string, p store.Page) string {
	return fmt.Sprintf("%spage=%d:size=%d", prefix, p.Number, p.Size)
}

// invalidate drops cached pages under prefix; failures only cost freshness
func invalidate(ctx context.Context, cache utils.Cache, prefix string) {
	if err := cache.DeletePrefix(ctx, prefix); err != nil {
		logrus.WithFields(logrus.Fields{
			"prefix": prefix,      // Cache namespace
			"error":  err.Error(), // Error message
		}).Warn("Cache invalidation failed")
	}
}

// cacheGet reports a hit, logging and treating lookup errors as a miss
func cacheGet(ctx context.Context, cache utils.Cache, key string, dest any) bool {
	found, err := cache.Get(ctx, key, dest)
	if err != nil {
		logrus.WithFields(logrus.Fields{"key": key, "error": err.Error()}).Warn("Cache read failed")
		return false
	}
	return found
}

func cacheSet(ctx context.Context, cache utils.Cache, key string, value any) {
	if err := cache.Set(ctx, key, value); err != nil {
		logrus.WithFields(logrus.Fields{"key": key, "error": err.Error()}).Warn("Cache write failed")
	}
}
