package handlers

import (
	"net/http"
	"strconv"

	"prompthub/helper"
	"prompthub/models"
	"prompthub/services"

	"github.com/gin-gonic/gin"
)

type PromptHandler struct {
	promptService services.PromptService
	Helper        *helper.HTTPHelper
}

func NewPromptHandler(promptService services.PromptService, h *helper.HTTPHelper) *PromptHandler {
	return &PromptHandler{promptService: promptService, Helper: h}
}

func (h *PromptHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "PromptHub API is running!"})
}

func (h *PromptHandler) GetPrompts(c *gin.Context) {
	var params models.PromptListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendValidationError(c, "query", err)
		return
	}

	page, err := h.promptService.GetPrompts(c.Request.Context(), params)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, page)
}

func (h *PromptHandler) GetPrompt(c *gin.Context) {
	id, ok := h.promptID(c)
	if !ok {
		return
	}

	prompt, err := h.promptService.GetPrompt(c.Request.Context(), id)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, prompt)
}

func (h *PromptHandler) CreatePrompt(c *gin.Context) {
	var payload models.PromptPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.Helper.SendValidationError(c, "body", err)
		return
	}

	prompt, err := h.promptService.CreatePrompt(c.Request.Context(), payload.Request())
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, prompt)
}

func (h *PromptHandler) UpdatePrompt(c *gin.Context) {
	id, ok := h.promptID(c)
	if !ok {
		return
	}

	var payload models.PromptPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.Helper.SendValidationError(c, "body", err)
		return
	}

	prompt, err := h.promptService.UpdatePrompt(c.Request.Context(), id, payload.Request())
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, prompt)
}

func (h *PromptHandler) DeletePrompt(c *gin.Context) {
	id, ok := h.promptID(c)
	if !ok {
		return
	}

	if err := h.promptService.DeletePrompt(c.Request.Context(), id); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, gin.H{"message": "deleted"})
}

func (h *PromptHandler) LikePrompt(c *gin.Context) {
	id, ok := h.promptID(c)
	if !ok {
		return
	}

	res, err := h.promptService.LikePrompt(c.Request.Context(), id)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, res)
}

func (h *PromptHandler) GetMeta(c *gin.Context) {
	meta, err := h.promptService.GetMeta(c.Request.Context())
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, meta)
}

func (h *PromptHandler) promptID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendValidationError(c, "path", err)
		return 0, false
	}
	return uint(id), true
}
