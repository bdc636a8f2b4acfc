package server

import (
	"fmt"
	"os"

	"github.com/Kas-Kady/bbq/config"
	"github.com/Kas-Kady/bbq/internal/handlers"
	"github.com/Kas-Kady/bbq/internal/middleware"
	"github.com/Kas-Kady/bbq/internal/planner"
	"github.com/Kas-Kady/bbq/internal/postmark"
	"github.com/Kas-Kady/bbq/internal/storage"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func Start() error {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %v", err)
	}

	db, err := config.InitDatabase(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %v", err)
	}

	mailCfg, err := config.LoadMailConfig()
	if err != nil {
		return fmt.Errorf("failed to load mail config: %v", err)
	}

	mailer := postmark.NewSMTPMailer(mailCfg.SMTPHost, mailCfg.SMTPPort, mailCfg.SMTPUsername, mailCfg.SMTPPassword)
	store := storage.NewGormStore(db)
	committer := planner.NewCommitter(store, mailer, mailCfg.From(), log)

	r := gin.Default()

	setupRoutes(r, db, committer)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.WithField("port", port).Info("starting server")
	return r.Run(":" + port)
}

func setupRoutes(r *gin.Engine, db *gorm.DB, committer *planner.Committer) {
	r.Use(middleware.DatabaseMiddleware(db))
	r.Use(middleware.CommitterMiddleware(committer))

	public := r.Group("/v1")
	{
		public.POST("/register", handlers.Register)
		public.POST("/login", handlers.Login)

		bbqPublic := public.Group("/bbqs")
		{
			bbqPublic.GET("", handlers.ListBBQs)
			bbqPublic.GET("/:slug", handlers.GetBBQ)
		}
	}

	protected := r.Group("/v1")
	protected.Use(middleware.JWTAuthMiddleware())
	{
		bbqProtected := protected.Group("/bbqs")
		{
			bbqProtected.PUT("/:slug/attendance", handlers.UpsertAttendance)
			bbqProtected.DELETE("/:slug/attendance", handlers.DeleteAttendance)
		}

		protected.GET("/profile/bbqs", handlers.ListMyAttendances)

		admin := protected.Group("/bbqs")
		admin.Use(middleware.AdminRequired())
		{
			admin.POST("", handlers.CreateBBQ)
			admin.PUT("/:slug", handlers.UpdateBBQ)
			admin.GET("/:slug/dates", handlers.GetDatePicker)
			admin.POST("/:slug/date", handlers.CommitDate)
		}
	}
}
