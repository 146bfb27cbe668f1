package main

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/PierrunoYT/financeflow/config"
	"github.com/PierrunoYT/financeflow/internal/middleware"
	"github.com/PierrunoYT/financeflow/internal/routes"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the REST API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			// A missing .env is fine; the environment may be set directly.
			_ = godotenv.Load()

			cfg := config.Load()
			if port := viper.GetString("port"); port != "" {
				cfg.Port = port
			}

			db, err := config.ConnectDB(cfg)
			if err != nil {
				return err
			}

			r := gin.New()
			r.Use(gin.Logger())
			r.Use(gin.CustomRecovery(func(c *gin.Context, _ any) {
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Ein Fehler ist aufgetreten."})
			}))
			r.Use(middleware.CORS())
			r.Use(middleware.SecurityHeaders())

			routes.RegisterAPIRoutes(r, db)

			slog.Info("server listening", "port", cfg.Port)
			return r.Run(":" + cfg.Port)
		},
	}

	cmd.Flags().String("port", "", "listen port (default 3000)")
	_ = viper.BindPFlag("port", cmd.Flags().Lookup("port"))
	return cmd
}
