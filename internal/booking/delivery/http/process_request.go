package http

import (
	"github.com/gin-gonic/gin"
)

// processQuoteReq binds the quote request body.
func (h *handler) processQuoteReq(c *gin.Context) (quoteReq, error) {
	var req quoteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processBookReq binds the booking request body.
func (h *handler) processBookReq(c *gin.Context) (bookReq, error) {
	var req bookReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processCancelReq binds the cancel request body.
func (h *handler) processCancelReq(c *gin.Context) (cancelReq, error) {
	var req cancelReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processListReq binds the list query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}
