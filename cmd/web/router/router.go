package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"social-spark/cmd/web/clients/ollamaclient"
	"social-spark/cmd/web/handlers"
	"social-spark/cmd/web/middleware"
	"social-spark/cmd/web/services"
	"social-spark/cmd/web/view"
	"social-spark/config"
	_ "social-spark/docs"
)

// Deps 는 라우터가 필요로 하는 서비스 묶음이다. 테스트에서는 가짜 생성기로 채운다.
type Deps struct {
	Ideas              *services.IdeaService
	Health             *services.HealthService
	Renderer           *view.Renderer
	CORSAllowedOrigins []string
}

// New 는 설정으로 Ollama 클라이언트와 서비스를 조립해 gin 엔진을 만든다.
func New(cfg config.AppConfig) (*gin.Engine, error) {
	renderer, err := view.NewRenderer(cfg.Page)
	if err != nil {
		return nil, err
	}

	ollama := ollamaclient.New(cfg.Ollama)
	return NewWithDeps(Deps{
		Ideas:              services.NewIdeaService(ollama),
		Health:             services.NewHealthService(ollama),
		Renderer:           renderer,
		CORSAllowedOrigins: cfg.Server.CORSAllowedOrigins,
	})
}

func NewWithDeps(d Deps) (*gin.Engine, error) {
	tmpl, err := view.Templates()
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestTrace())
	r.Use(middleware.RequestMetrics())
	r.SetHTMLTemplate(tmpl)

	// Form page
	r.GET("/", handlers.IndexPageHandler(d.Renderer))
	r.POST("/", handlers.SubmitPageHandler(d.Ideas, d.Renderer))

	r.GET("/health", handlers.HealthHandler(d.Health))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// v1 routes
	api := r.Group("/api/v1")
	api.Use(middleware.CORS(d.CORSAllowedOrigins))
	{
		api.POST("/ideas", handlers.GenerateIdeasHandler(d.Ideas))
		api.GET("/options", handlers.ListOptionsHandler())
		// preflight 는 CORS 미들웨어가 처리하므로 라우트만 열어 둔다.
		api.OPTIONS("/*any", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	}

	return r, nil
}
