package http

import (
	"encoding/json"
	"sync"

	"storefront/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/swaggo/swag"
	echoSwagger "github.com/swaggo/echo-swagger"
)

var registerDocOnce sync.Once

// openAPIDoc serves the embedded OpenAPI document to the swagger UI.
type openAPIDoc struct {
	once sync.Once
	doc  string
}

func (d *openAPIDoc) ReadDoc() string {
	d.once.Do(func() {
		swagger, err := servers.GetSwagger()
		if err != nil {
			d.doc = "{}"
			return
		}
		raw, err := json.Marshal(swagger)
		if err != nil {
			d.doc = "{}"
			return
		}
		d.doc = string(raw)
	})
	return d.doc
}

func mountSwagger(e *echo.Echo) {
	registerDocOnce.Do(func() {
		swag.Register(swag.Name, &openAPIDoc{})
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)
}
