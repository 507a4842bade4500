package utils

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

var logger = Logger

// EchoHandleGenericError logs err and returns it to the client as a JSON
// status payload.
func EchoHandleGenericError(echoCtx echo.Context, err error, status int) error {
	logger.WithError(err).WithField("status", status).Error("Error handling request")
	return echoCtx.JSON(status, map[string]string{"status": err.Error()})
}

func EchoHandleBadRequest(echoCtx echo.Context, err error) error {
	return EchoHandleGenericError(echoCtx, err, http.StatusBadRequest)
}

func EchoHandleInternalError(echoCtx echo.Context, err error) error {
	return EchoHandleGenericError(echoCtx, err, http.StatusInternalServerError)
}
