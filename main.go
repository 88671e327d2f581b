package main

import (
	"fmt"
	"os"

	"tms/config"
	"tms/dao/query"
	"tms/logutils"
	"tms/service"
	"tms/store"

	"github.com/gin-gonic/gin"
)

func main() {
	r := gin.Default()
	err := query.InitDB()
	if err != nil {
		fmt.Println("err init:", err)
		os.Exit(1)
	}

	s := store.New(query.DB)

	public := r.Group("/api/v1")
	service.RegisterCatalog(public)

	api := r.Group("/api/v1", service.AuthMiddleware())
	service.RegisterProject(api, s)
	service.RegisterTranslation(api, s)

	err = r.Run(config.GetConfig().Server.Addr)
	if err != nil {
		logutils.Log.Fatal(err)
	}
}
