package handlers

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"
)

// bindOptionalJSON binds the body when one was sent. An empty body, chunked
// or not, leaves dst at its zero value.
func bindOptionalJSON(c *gin.Context, dst any) error {
	if c.Request.ContentLength == 0 {
		return nil
	}
	if err := c.ShouldBindJSON(dst); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
