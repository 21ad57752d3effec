package http

import (
	"embed"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/wasmdash/wasmdash-client/internal/httpui"
)

//go:embed templates/*.html
var templatesFS embed.FS

func NewRouter(s *Server) (*gin.Engine, error) {
	tmpl, err := template.New("").Funcs(templateFuncs).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	static, err := httpui.Handler()
	if err != nil {
		return nil, err
	}

	r := gin.Default()
	r.SetHTMLTemplate(tmpl)

	if len(s.allowedOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     s.allowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type"},
			AllowCredentials: true,
			MaxAge:           10 * time.Minute,
		}))
	}

	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, newCodePath)
	})
	r.GET("/static/*filepath", gin.WrapH(http.StripPrefix("/static", static)))

	page := r.Group(newCodePath)
	{
		page.GET("", s.NewCodePage)
		page.POST("/file", s.SelectFileForm)
		page.POST("/memo", s.SetMemoForm)
		page.POST("/upload", s.UploadForm)
	}

	r.POST("/session/connect", s.ConnectForm)
	r.POST("/session/disconnect", s.DisconnectForm)

	api := r.Group("/api")
	{
		api.GET("/health", s.Health)
		api.GET("/backend", s.Backend)

		api.GET("/session", s.GetSession)
		api.POST("/session", s.Connect)
		api.DELETE("/session", s.Disconnect)

		api.GET("/upload", s.UploadState)
		api.POST("/upload/file", s.SelectFile)
		api.PUT("/upload/memo", s.SetMemo)
		api.POST("/upload/submit", s.Submit)
	}

	return r, nil
}
