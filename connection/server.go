package connection

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"planner/config"
	"planner/controller/auth"
	"planner/controller/calendar"
	"planner/controller/dashboard"
	"planner/controller/habit"
	"planner/controller/kanban"
	"planner/controller/note"
	"planner/controller/organization"
	"planner/controller/pomodoro"
	"planner/controller/project"
	"planner/controller/task"
	"planner/controller/user"
	"planner/middleware"
	"planner/services"
)

func corsConfig(siteURL string) cors.Config {
	cfg := cors.DefaultConfig()
	if siteURL == "" {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = []string{siteURL}
		cfg.AllowCredentials = true
	}
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization")
	cfg.ExposeHeaders = []string{middleware.RefreshHeader}
	return cfg
}

// NewRouter builds the gin engine with every route. Everything under /api
// except the auth entry points requires a session.
func NewRouter(cfg config.Config, svc *services.Services, sessionAuth *middleware.SessionAuth) *gin.Engine {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		services.UseJSONNames(v)
	}

	router := gin.Default()
	router.Use(cors.New(corsConfig(cfg.SiteURL)))

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Api is running!"})
	})

	api := router.Group("/api")

	authRoutes := api.Group("/auth")
	auth.SignUpController(authRoutes, svc.Users, svc.Captcha)
	auth.SignInController(authRoutes, svc.Users, svc.Sessions)
	auth.CaptchaController(authRoutes, svc.Captcha)
	auth.MeController(authRoutes, sessionAuth)

	protected := api.Group("", sessionAuth.Required())
	user.UserController(protected, svc.Users, sessionAuth)
	organization.OrganizationController(protected, svc.Organizations)
	project.ProjectController(protected, svc.Projects)
	task.TaskController(protected, svc.Tasks)
	note.NoteController(protected, svc.Notes)
	habit.HabitController(protected, svc.Habits)
	pomodoro.PomodoroController(protected, svc.Pomodoro)
	kanban.KanbanController(protected, svc.Kanban)
	calendar.CalendarController(protected, svc.Calendar)
	dashboard.DashboardController(protected, svc.Dashboard)

	return router
}

// StartServer serves router until ctx is cancelled, then shuts down
// gracefully.
func StartServer(ctx context.Context, port string, router http.Handler) error {
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Listening on :%s", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Println("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
