package controller

import (
	"errors"
	"net"
	"net/http"
	"strings"

	"techblog/logger"
	"techblog/util/common"
	"techblog/web/entity"

	"github.com/gin-gonic/gin"
)

// getRemoteIp extracts the real IP address from the request headers or remote address.
func getRemoteIp(c *gin.Context) string {
	value := c.GetHeader("X-Real-IP")
	if value != "" {
		return value
	}
	value = c.GetHeader("X-Forwarded-For")
	if value != "" {
		ips := strings.Split(value, ",")
		return ips[0]
	}
	addr := c.Request.RemoteAddr
	ip, _, _ := net.SplitHostPort(addr)
	return ip
}

// jsonMsg sends a success JSON response with a message.
func jsonMsg(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, entity.Msg{
		Success: true,
		Msg:     msg,
	})
}

// jsonObj sends a success JSON response with an object.
func jsonObj(c *gin.Context, obj any) {
	c.JSON(http.StatusOK, entity.Msg{
		Success: true,
		Obj:     obj,
	})
}

// jsonErr sends a failure response, mapping the service error kind to a status
// code: not found to 404, validation to 400, everything else to 500.
func jsonErr(c *gin.Context, msg string, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, common.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, common.ErrValidation):
		status = http.StatusBadRequest
	}
	logger.Warning(msg+" failed: ", err)
	c.JSON(status, entity.Msg{
		Success: false,
		Msg:     msg + " (" + err.Error() + ")",
	})
}

// pureJsonMsg sends a JSON message response with custom status code.
func pureJsonMsg(c *gin.Context, statusCode int, success bool, msg string) {
	c.JSON(statusCode, entity.Msg{
		Success: success,
		Msg:     msg,
	})
}
