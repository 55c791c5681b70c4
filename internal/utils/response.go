package utils

import "github.com/gin-gonic/gin"

// Response defines the standard API response envelope.
type Response struct {
	Success  bool   `json:"success"`
	Data     any    `json:"data,omitempty"`
	Count    *int   `json:"count,omitempty"`
	Query    string `json:"query,omitempty"`
	Category string `json:"category,omitempty"`
	Message  string `json:"message,omitempty"`
	Error    string `json:"error,omitempty"`
}

// Success writes a single-item success response with an optional message.
func Success(c *gin.Context, code int, data any, message string) {
	c.JSON(code, Response{
		Success: true,
		Data:    data,
		Message: message,
	})
}

// Collection writes a list success response with its count.
func Collection(c *gin.Context, data any, count int) {
	c.JSON(200, Response{
		Success: true,
		Data:    data,
		Count:   &count,
	})
}

// SearchResults writes a list success response echoing the search query.
func SearchResults(c *gin.Context, data any, count int, query string) {
	c.JSON(200, Response{
		Success: true,
		Data:    data,
		Count:   &count,
		Query:   query,
	})
}

// CategoryResults writes a list success response echoing the category filter.
func CategoryResults(c *gin.Context, data any, count int, category string) {
	c.JSON(200, Response{
		Success:  true,
		Data:     data,
		Count:    &count,
		Category: category,
	})
}

// Error writes an error response with the given status code and message.
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, Response{
		Success: false,
		Error:   message,
	})
}
