package routes

import (
	"context"
	"errors"

	"github.com/Frajuan18/Gym-sub000/internal/cache"
	"github.com/Frajuan18/Gym-sub000/internal/config"
	"github.com/Frajuan18/Gym-sub000/internal/handlers"
	"github.com/Frajuan18/Gym-sub000/internal/logger"
	"github.com/Frajuan18/Gym-sub000/internal/middleware"
	"github.com/Frajuan18/Gym-sub000/internal/models"
	"github.com/Frajuan18/Gym-sub000/internal/repository"
	"github.com/Frajuan18/Gym-sub000/internal/services"
	"github.com/Frajuan18/Gym-sub000/internal/spool"
	statusws "github.com/Frajuan18/Gym-sub000/internal/websocket"
	"github.com/Frajuan18/Gym-sub000/pkg/utils"
	websocket "github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func RegisterRoutes(app *fiber.App, cfg *config.Config, db *pgxpool.Pool, rdb *redis.Client) error {
	blogRepo := repository.NewBlogPostRepository(db)
	productRepo := repository.NewProductRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	teamRepo := repository.NewTeamMemberRepository(db)
	clientRepo := repository.NewClientRepository(db)
	userRepo := repository.NewUserRepository(db)
	faqRepo := repository.NewFAQRepository(db)
	questionRepo := repository.NewQuestionRepository(db)
	consultationRepo := repository.NewConsultationRepository(db)
	assessmentRepo := repository.NewAssessmentRepository(db)

	if err := ensureDefaultAdmin(cfg, userRepo); err != nil {
		return err
	}

	spoolStore := spool.NewStore(cfg.SpoolPath)
	// A nil interface value here keeps the service's notifier guard
	// honest; wrapping a nil *ResendNotifier would not.
	var notifier services.IntakeNotifier
	if cfg.NotifierEnabled() {
		notifier = services.NewResendNotifier(cfg.ResendAPIKey, cfg.OpsNotifyEmail)
	}
	consultationService := services.NewConsultationService(consultationRepo, db, spoolStore, notifier)

	statusHub := statusws.NewHub()
	go statusHub.Run()

	assessmentService := services.NewAssessmentService(assessmentRepo, statusHub)
	statusWatcher := services.NewStatusWatcher(assessmentService)
	blogService := services.NewBlogService(blogRepo)
	productService := services.NewProductService(productRepo)
	questionService := services.NewQuestionService(questionRepo, faqRepo)
	clientService := services.NewClientService(clientRepo)
	clientService.StartSubscriptionSweeper(context.Background())

	authHandler := handlers.NewAuthHandler(userRepo, cfg.JWTSecret)
	consultationHandler := handlers.NewConsultationHandler(consultationService)
	assessmentHandler := handlers.NewAssessmentHandler(assessmentService, statusHub, statusWatcher)
	blogHandler := handlers.NewBlogHandler(blogService)
	productHandler := handlers.NewProductHandler(productService)
	teamHandler := handlers.NewTeamHandler(teamRepo)
	clientHandler := handlers.NewClientHandler(clientService)
	userHandler := handlers.NewUserHandler(userRepo)

	// With redis present, public FAQ and service reads go through the
	// cache; admin writes invalidate it.
	var faqHandler *handlers.FAQHandler
	var catalogHandler *handlers.CatalogHandler
	var questionHandler *handlers.QuestionHandler
	if rdb != nil {
		contentCache := cache.NewContentCache(faqRepo, serviceRepo, rdb)
		faqHandler = handlers.NewFAQHandler(faqRepo, contentCache, contentCache)
		catalogHandler = handlers.NewCatalogHandler(serviceRepo, contentCache, contentCache)
		questionHandler = handlers.NewQuestionHandler(questionService, contentCache)
	} else {
		faqHandler = handlers.NewFAQHandler(faqRepo, faqRepo, nil)
		catalogHandler = handlers.NewCatalogHandler(serviceRepo, serviceRepo, nil)
		questionHandler = handlers.NewQuestionHandler(questionService, nil)
	}

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Get("/me", middleware.AuthRequired(cfg.JWTSecret), authHandler.Me)

	// Public site surface.
	api.Get("/posts", blogHandler.PublicList)
	api.Get("/posts/:slug", blogHandler.PublicGet)
	api.Get("/products", productHandler.PublicList)
	api.Get("/services", catalogHandler.PublicList)
	api.Get("/team", teamHandler.PublicList)
	api.Get("/faqs", faqHandler.PublicList)
	api.Post("/questions", questionHandler.Submit)
	api.Post("/consultations", consultationHandler.Submit)
	api.Post("/assessments", assessmentHandler.Submit)
	api.Get("/assessments/:public_id/status", assessmentHandler.GetStatus)
	api.Get("/assessments/:public_id/results", assessmentHandler.GetResults)

	api.Use("/assessments/:public_id/ws", upgradeRequired)
	api.Get("/assessments/:public_id/ws", websocket.New(assessmentHandler.StreamStatus))

	admin := api.Group("/admin", middleware.AuthRequired(cfg.JWTSecret), middleware.AdminOnly())

	posts := admin.Group("/posts")
	posts.Get("", blogHandler.List)
	posts.Post("", blogHandler.Create)
	posts.Get("/stats", blogHandler.Stats)
	posts.Get("/:id", blogHandler.Get)
	posts.Put("/:id", blogHandler.Update)
	posts.Delete("/:id", blogHandler.Delete)

	products := admin.Group("/products")
	products.Get("", productHandler.List)
	products.Post("", productHandler.Create)
	products.Post("/import", productHandler.Import)
	products.Get("/stats", productHandler.Stats)
	products.Get("/:id", productHandler.Get)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	catalog := admin.Group("/services")
	catalog.Get("", catalogHandler.List)
	catalog.Post("", catalogHandler.Create)
	catalog.Get("/stats", catalogHandler.Stats)
	catalog.Get("/:id", catalogHandler.Get)
	catalog.Put("/:id", catalogHandler.Update)
	catalog.Delete("/:id", catalogHandler.Delete)

	team := admin.Group("/team")
	team.Get("", teamHandler.List)
	team.Post("", teamHandler.Create)
	team.Get("/stats", teamHandler.Stats)
	team.Get("/:id", teamHandler.Get)
	team.Put("/:id", teamHandler.Update)
	team.Delete("/:id", teamHandler.Delete)

	clients := admin.Group("/clients")
	clients.Get("", clientHandler.List)
	clients.Post("", clientHandler.Create)
	clients.Get("/stats", clientHandler.Stats)
	clients.Get("/:id", clientHandler.Get)
	clients.Put("/:id", clientHandler.Update)
	clients.Delete("/:id", clientHandler.Delete)

	users := admin.Group("/users")
	users.Get("", userHandler.List)
	users.Post("", userHandler.Create)
	users.Get("/stats", userHandler.Stats)
	users.Get("/:id", userHandler.Get)
	users.Put("/:id", userHandler.Update)
	users.Put("/:id/password", userHandler.ChangePassword)
	users.Delete("/:id", userHandler.Delete)

	faqs := admin.Group("/faqs")
	faqs.Get("", faqHandler.List)
	faqs.Post("", faqHandler.Create)
	faqs.Get("/stats", faqHandler.Stats)
	faqs.Get("/:id", faqHandler.Get)
	faqs.Put("/:id", faqHandler.Update)
	faqs.Delete("/:id", faqHandler.Delete)

	questions := admin.Group("/questions")
	questions.Get("", questionHandler.List)
	questions.Get("/stats", questionHandler.Stats)
	questions.Get("/:id", questionHandler.Get)
	questions.Put("/:id/answer", questionHandler.Answer)
	questions.Put("/:id/status", questionHandler.UpdateStatus)
	questions.Post("/:id/promote", questionHandler.Promote)
	questions.Delete("/:id", questionHandler.Delete)

	consultations := admin.Group("/consultations")
	consultations.Get("", consultationHandler.List)
	consultations.Get("/stats", consultationHandler.Stats)
	consultations.Get("/:id", consultationHandler.Get)
	consultations.Put("/:id/status", consultationHandler.UpdateStatus)
	consultations.Delete("/:id", consultationHandler.Delete)

	assessments := admin.Group("/assessments")
	assessments.Get("", assessmentHandler.List)
	assessments.Get("/stats", assessmentHandler.Stats)
	assessments.Get("/:id", assessmentHandler.Get)
	assessments.Post("/:id/responses", assessmentHandler.AddResponse)
	assessments.Put("/:id/status", assessmentHandler.UpdateStatus)
	assessments.Delete("/:id", assessmentHandler.Delete)

	if err := registerDocsRoutes(app, cfg); err != nil {
		return err
	}
	return nil
}

func upgradeRequired(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// ensureDefaultAdmin seeds the first admin account from the
// environment so a fresh deploy has a way into the back office.
func ensureDefaultAdmin(cfg *config.Config, userRepo *repository.UserRepository) error {
	if cfg.DefaultAdminEmail == "" || cfg.DefaultAdminPassword == "" {
		return nil
	}

	ctx := context.Background()
	_, err := userRepo.GetByEmail(ctx, cfg.DefaultAdminEmail)
	if err == nil {
		return nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return err
	}

	hash, err := utils.HashPassword(cfg.DefaultAdminPassword)
	if err != nil {
		return err
	}

	admin := &models.User{
		Name:         "Administrator",
		Email:        cfg.DefaultAdminEmail,
		Status:       "active",
		Role:         "admin",
		PasswordHash: hash,
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		return err
	}

	logger.Log.Info("seeded default admin account", zap.String("email", cfg.DefaultAdminEmail))
	return nil
}
