package service

import (
	"tms/dao/model"
	"tms/response"

	"github.com/gin-gonic/gin"
)

// RegisterCatalog mounts the public language-catalog endpoint.
func RegisterCatalog(g *gin.RouterGroup) {
	g.GET("/languages", func(c *gin.Context) {
		response.Success(c, model.Languages())
	})
}
