package http_swagger

import (
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/humanbelnik/kinomatch/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Controller struct{}

// New points the served document at publicURL so "Try it out" hits this
// instance. An unparsable URL keeps the generated host.
func New(publicURL string) *Controller {
	if u, err := url.Parse(publicURL); err == nil && u.Host != "" {
		docs.SwaggerInfo.Host = u.Host
		if u.Scheme != "" {
			docs.SwaggerInfo.Schemes = []string{u.Scheme}
		}
	}
	return &Controller{}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler,
		ginSwagger.PersistAuthorization(true),
	))
}
