package controller

import (
	"net/http"
	"strconv"

	"techblog/web/service"

	"github.com/gin-gonic/gin"
)

// ServerController exposes operational endpoints: status, recent logs, and a
// JSON export of the database.
type ServerController struct {
	BaseController

	serverService service.ServerService
}

// NewServerController creates a new ServerController and initializes its routes.
func NewServerController(g *gin.RouterGroup) *ServerController {
	a := &ServerController{}
	a.initRouter(g)
	return a
}

func (a *ServerController) initRouter(g *gin.RouterGroup) {
	g = g.Group("/server")
	g.Use(a.checkLogin)

	g.GET("/status", a.status)
	g.GET("/logs/:count", a.getLogs)
	g.GET("/export", a.export)
}

func (a *ServerController) status(c *gin.Context) {
	jsonObj(c, a.serverService.GetStatus())
}

func (a *ServerController) getLogs(c *gin.Context) {
	count, err := strconv.Atoi(c.Param("count"))
	if err != nil || count <= 0 {
		pureJsonMsg(c, http.StatusBadRequest, false, "invalid log count")
		return
	}
	level := c.DefaultQuery("level", "INFO")
	jsonObj(c, a.serverService.GetLogs(count, level))
}

func (a *ServerController) export(c *gin.Context) {
	data, err := a.serverService.GetDBExport()
	if err != nil {
		jsonErr(c, "export", err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="tech-blog-export.json"`)
	c.Data(http.StatusOK, "application/json", data)
}
