package service

import (
	"tms/response"
	"tms/store"

	"github.com/gin-gonic/gin"
)

type translationHandler struct {
	store *store.Store
}

// RegisterTranslation mounts the translation-key and translation-value
// endpoints.
func RegisterTranslation(g *gin.RouterGroup, s *store.Store) {
	h := &translationHandler{store: s}

	g.GET("/projects/:id/keys", h.listKeys)
	g.POST("/projects/:id/keys", h.createKey)
	g.POST("/projects/:id/keys-with-values", h.createKeyWithValues)
	g.GET("/keys/:id", h.getKey)
	g.PATCH("/keys/:id", h.updateKey)
	g.DELETE("/keys/:id", h.deleteKey)

	g.GET("/keys/:id/values", h.listValues)
	g.POST("/keys/:id/values", h.createValue)
	g.POST("/keys/:id/values/bulk", h.bulkUpsertValues)
	g.PATCH("/values/:id", h.updateValue)
	g.DELETE("/values/:id", h.deleteValue)
}

type createKeyReq struct {
	Key         string `json:"key" binding:"required"`
	Description string `json:"description"`
}

func (h *translationHandler) createKey(c *gin.Context) {
	var req createKeyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequestError(c, err.Error())
		return
	}
	key, err := h.store.CreateKey(c.Request.Context(), c.Param("id"), req.Key, req.Description)
	if err != nil {
		response.DomainError(c, err)
		return
	}
	response.Created(c, key)
}

type createKeyWithValuesReq struct {
	Key         string             `json:"key" binding:"required"`
	Description string             `json:"description"`
	Values      []store.ValueInput `json:"values"`
}

func (h *translationHandler) createKeyWithValues(c *gin.Context) {
	var req createKeyWithValuesReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequestError(c, err.Error())
		return
	}
	result, err := h.store.CreateKeyWithValues(c.Request.Context(), c.Param("id"), req.Key, req.Description, req.Values)
	if err != nil {
		response.DomainError(c, err)
		return
	}
	response.Created(c, result)
}

func (h *translationHandler) listKeys(c *gin.Context) {
	keys, err := h.store.ListKeys(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.DomainError(c, err)
		return
	}
	response.Success(c, keys)
}

func (h *translationHandler) getKey(c *gin.Context) {
	key, err := h.store.GetKey(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.DomainError(c, err)
		return
	}
	response.Success(c, key)
}

type updateKeyReq struct {
	Key         *string `json:"key"`
	Description *string `json:"description"`
}

func (h *translationHandler) updateKey(c *gin.Context) {
	var req updateKeyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequestError(c, err.Error())
		return
	}
	key, err := h.store.UpdateKey(c.Request.Context(), c.Param("id"), store.KeyUpdate{
		Key:         req.Key,
		Description: req.Description,
	})
	if err != nil {
		response.DomainError(c, err)
		return
	}
	response.Success(c, key)
}

func (h *translationHandler) deleteKey(c *gin.Context) {
	if err := h.store.DeleteKey(c.Request.Context(), c.Param("id")); err != nil {
		response.DomainError(c, err)
		return
	}
	response.Success(c, nil)
}

type createValueReq struct {
	Language string `json:"language" binding:"required"`
	Value    string `json:"value"`
}

func (h *translationHandler) createValue(c *gin.Context) {
	var req createValueReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequestError(c, err.Error())
		return
	}
	value, err := h.store.CreateValue(c.Request.Context(), c.Param("id"), req.Language, req.Value)
	if err != nil {
		response.DomainError(c, err)
		return
	}
	response.Created(c, value)
}

func (h *translationHandler) listValues(c *gin.Context) {
	values, err := h.store.ListValues(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.DomainError(c, err)
		return
	}
	response.Success(c, values)
}

type bulkUpsertValuesReq struct {
	Values []store.ValueInput `json:"values" binding:"required"`
}

func (h *translationHandler) bulkUpsertValues(c *gin.Context) {
	var req bulkUpsertValuesReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequestError(c, err.Error())
		return
	}
	result, err := h.store.BulkUpsertValues(c.Request.Context(), c.Param("id"), req.Values)
	if err != nil {
		response.DomainError(c, err)
		return
	}
	response.Success(c, result)
}

type updateValueReq struct {
	Value string `json:"value" binding:"required"`
}

func (h *translationHandler) updateValue(c *gin.Context) {
	var req updateValueReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequestError(c, err.Error())
		return
	}
	value, err := h.store.UpdateValue(c.Request.Context(), c.Param("id"), req.Value)
	if err != nil {
		response.DomainError(c, err)
		return
	}
	response.Success(c, value)
}

func (h *translationHandler) deleteValue(c *gin.Context) {
	if err := h.store.DeleteValue(c.Request.Context(), c.Param("id")); err != nil {
		response.DomainError(c, err)
		return
	}
	response.Success(c, nil)
}
