package service

import (
	"tms/response"
	"tms/store"

	"github.com/gin-gonic/gin"
)

type projectHandler struct {
	store *store.Store
}

// RegisterProject mounts the project and project-language endpoints.
func RegisterProject(g *gin.RouterGroup, s *store.Store) {
	h := &projectHandler{store: s}
	g.POST("/projects", h.create)
	g.GET("/projects", h.list)
	g.GET("/projects/:id", h.get)
	g.PATCH("/projects/:id", h.update)
	g.DELETE("/projects/:id", h.delete)
	g.GET("/projects/:id/base-language", h.baseLanguage)

	g.GET("/projects/:id/languages", h.listLanguages)
	g.POST("/projects/:id/languages", h.addLanguage)
	g.POST("/projects/:id/languages/bulk", h.bulkAddLanguages)
	g.DELETE("/project-languages/:id", h.removeLanguage)
	g.POST("/project-languages/:id/set-base", h.setBaseLanguage)
}

type createProjectReq struct {
	Slug        string `json:"slug" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

func (h *projectHandler) create(c *gin.Context) {
	var req createProjectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequestError(c, err.Error())
		return
	}
	project, err := h.store.CreateProject(c.Request.Context(), req.Slug, req.Name, req.Description)
	if err != nil {
		response.DomainError(c, err)
		return
	}
	response.Created(c, project)
}

func (h *projectHandler) list(c *gin.Context) {
	projects, err := h.store.ListProjects(c.Request.Context())
	if err != nil {
		response.DomainError(c, err)
		return
	}
	response.Success(c, projects)
}

func (h *projectHandler) get(c *gin.Context) {
	project, err := h.store.GetProject(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.DomainError(c, err)
		return
	}
	response.Success(c, project)
}

type updateProjectReq struct {
	Slug        *string `json:"slug"`
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

func (h *projectHandler) update(c *gin.Context) {
	var req updateProjectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequestError(c, err.Error())
		return
	}
	project, err := h.store.UpdateProject(c.Request.Context(), c.Param("id"), store.ProjectUpdate{
		Slug:        req.Slug,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		response.DomainError(c, err)
		return
	}
	response.Success(c, project)
}

func (h *projectHandler) delete(c *gin.Context) {
	if err := h.store.DeleteProject(c.Request.Context(), c.Param("id")); err != nil {
		response.DomainError(c, err)
		return
	}
	response.Success(c, nil)
}

func (h *projectHandler) baseLanguage(c *gin.Context) {
	lang, err := h.store.BaseLanguage(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.DomainError(c, err)
		return
	}
	response.Success(c, lang)
}

func (h *projectHandler) listLanguages(c *gin.Context) {
	langs, err := h.store.ListLanguages(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.DomainError(c, err)
		return
	}
	response.Success(c, langs)
}

type addLanguageReq struct {
	Language       string `json:"language" binding:"required"`
	IsBaseLanguage bool   `json:"isBaseLanguage"`
}

func (h *projectHandler) addLanguage(c *gin.Context) {
	var req addLanguageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequestError(c, err.Error())
		return
	}
	lang, err := h.store.AddLanguage(c.Request.Context(), c.Param("id"), req.Language, req.IsBaseLanguage)
	if err != nil {
		response.DomainError(c, err)
		return
	}
	response.Created(c, lang)
}

type bulkAddLanguagesReq struct {
	Languages []store.LanguageInput `json:"languages" binding:"required"`
}

func (h *projectHandler) bulkAddLanguages(c *gin.Context) {
	var req bulkAddLanguagesReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequestError(c, err.Error())
		return
	}
	langs, err := h.store.BulkAddLanguages(c.Request.Context(), c.Param("id"), req.Languages)
	if err != nil {
		response.DomainError(c, err)
		return
	}
	response.Created(c, langs)
}

func (h *projectHandler) removeLanguage(c *gin.Context) {
	if err := h.store.RemoveLanguage(c.Request.Context(), c.Param("id")); err != nil {
		response.DomainError(c, err)
		return
	}
	response.Success(c, nil)
}

func (h *projectHandler) setBaseLanguage(c *gin.Context) {
	lang, err := h.store.SetBaseLanguage(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.DomainError(c, err)
		return
	}
	response.Success(c, lang)
}
