package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cloud.google.com/go/pubsub"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/anishanishy81-byte/poverse-sub003/configs"
	"github.com/anishanishy81-byte/poverse-sub003/database"
	_ "github.com/anishanishy81-byte/poverse-sub003/docs"
	"github.com/anishanishy81-byte/poverse-sub003/dto"
	"github.com/anishanishy81-byte/poverse-sub003/internal/handlers"
	"github.com/anishanishy81-byte/poverse-sub003/internal/push"
	"github.com/anishanishy81-byte/poverse-sub003/internal/repository"
	"github.com/anishanishy81-byte/poverse-sub003/internal/routes"
	"github.com/anishanishy81-byte/poverse-sub003/internal/routing"
	"github.com/anishanishy81-byte/poverse-sub003/internal/storage"
	"github.com/anishanishy81-byte/poverse-sub003/model"
	"github.com/anishanishy81-byte/poverse-sub003/services"
)

// @title PO-VERSE API
// @version 1.0
// @description Field force management backend: attendance, visit targets, leave, expenses, CRM and reporting.
// @BasePath /
func main() {
	root := &cobra.Command{
		Use:          "poverse",
		Short:        "PO-VERSE field force management backend",
		SilenceUsage: true,
	}
	root.AddCommand(serveCmd(), seedCmd())
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve()
		},
	}
}

func serve() error {
	cfg := configs.Load()
	log := configs.GetLogger()

	if cfg.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET must be set")
	}

	client, err := database.ConnectMongo(cfg.MongoURI)
	if err != nil {
		return err
	}
	defer database.DisconnectMongo(client)
	db := client.Database(cfg.DBName)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := database.EnsureIndexes(ctx, db); err != nil {
		return fmt.Errorf("ensure indexes: %w", err)
	}

	// Repositories.
	userRepo := repository.NewUserRepository(db)
	companyRepo := repository.NewCompanyRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	attendanceRepo := repository.NewAttendanceRepository(db)
	leaveRepo := repository.NewLeaveRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)
	targetRepo := repository.NewTargetRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	reportRepo := repository.NewReportRepository(db)
	syncRepo := repository.NewSyncRepository(db)

	// Optional infrastructure: each piece degrades to a nil no-op when its
	// config is absent.
	var locker services.Locker
	if redisClient := configs.NewRedisClient(cfg.RedisAddr); redisClient != nil {
		defer redisClient.Close()
		locker = services.NewRedisLocker(redisClient)
	} else {
		log.Warn("REDIS_ADDR not set, user creation runs without the company lock")
	}

	var uploader *storage.Uploader
	if cfg.GCSBucket != "" {
		uploader, err = storage.NewUploader(ctx, cfg.GCSBucket, cfg.GCSCredJSON, configs.MaxImageEdgePx)
		if err != nil {
			return err
		}
		defer uploader.Close()
	} else {
		log.Warn("GCS_BUCKET not set, uploads disabled")
	}

	var dispatcher push.Dispatcher
	fcm := push.NewFCMClient(cfg.FCMURL, cfg.FCMServerKey)
	if cfg.FCMServerKey == "" {
		log.Warn("FCM_SERVER_KEY not set, push delivery disabled")
	} else if cfg.PubSubProject != "" && cfg.PubSubTopic != "" {
		psClient, err := pubsub.NewClient(ctx, cfg.PubSubProject)
		if err != nil {
			return fmt.Errorf("create pubsub client: %w", err)
		}
		defer psClient.Close()
		dispatcher = push.NewPubSubDispatcher(psClient.Topic(cfg.PubSubTopic))

		worker := push.NewWorker(psClient.Subscription(cfg.PubSubSubscription), fcm, log)
		go func() {
			if err := worker.Run(ctx); err != nil && ctx.Err() == nil {
				log.Errorf("push worker stopped: %v", err)
			}
		}()
	} else {
		dispatcher = push.NewDirectDispatcher(fcm)
	}

	// Services.
	notificationSvc := services.NewNotificationService(notificationRepo, userRepo, dispatcher, log)
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret)
	companySvc := services.NewCompanyService(companyRepo)
	userSvc := services.NewUserService(userRepo, companyRepo, leaveRepo, locker)
	customerSvc := services.NewCustomerService(customerRepo)
	attendanceSvc := services.NewAttendanceService(attendanceRepo, companyRepo)
	leaveSvc := services.NewLeaveService(leaveRepo, notificationSvc)
	expenseSvc := services.NewExpenseService(expenseRepo, notificationSvc)
	targetSvc := services.NewTargetService(targetRepo, customerRepo, notificationSvc)
	reportSvc := services.NewReportService(reportRepo, userRepo, attendanceRepo, targetRepo, expenseRepo, customerRepo)
	syncSvc := services.NewSyncService(syncRepo, attendanceSvc, targetSvc, customerSvc, log)
	routeSvc := services.NewRouteService(routing.NewClient(cfg.RoutingURL), targetRepo)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				code = fe.Code
			}
			return c.Status(code).JSON(fiber.Map{"error": err.Error()})
		},
	})
	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(requestLogger(log))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/docs/*", swagger.HandlerDefault)

	routes.Register(app, routes.Deps{
		JWTSecret:     cfg.JWTSecret,
		Auth:          handlers.NewAuthHandler(authSvc),
		Companies:     handlers.NewCompanyHandler(companySvc),
		Users:         handlers.NewUserHandler(userSvc),
		Customers:     handlers.NewCustomerHandler(customerSvc),
		Targets:       handlers.NewTargetHandler(targetSvc),
		Attendance:    handlers.NewAttendanceHandler(attendanceSvc),
		Leave:         handlers.NewLeaveHandler(leaveSvc),
		Expenses:      handlers.NewExpenseHandler(expenseSvc),
		Notifications: handlers.NewNotificationHandler(notificationSvc),
		Reports:       handlers.NewReportHandler(reportSvc),
		Routes:        handlers.NewRouteHandler(routeSvc),
		Sync:          handlers.NewSyncHandler(syncSvc),
		Uploads:       handlers.NewUploadHandler(uploader),
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Listen(":" + cfg.Port)
	}()
	log.Infof("listening on :%s", cfg.Port)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		log.Info("shutting down")
		return app.ShutdownWithTimeout(10 * time.Second)
	}
}

func requestLogger(log *logrus.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		log.WithFields(logrus.Fields{
			"method":  c.Method(),
			"path":    c.Path(),
			"status":  c.Response().StatusCode(),
			"latency": time.Since(start).String(),
		}).Info("request")
		return err
	}
}

func seedCmd() *cobra.Command {
	var username, password, name string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create the superadmin account if none exists",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configs.Load()
			log := configs.GetLogger()

			client, err := database.ConnectMongo(cfg.MongoURI)
			if err != nil {
				return err
			}
			defer database.DisconnectMongo(client)
			db := client.Database(cfg.DBName)

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			if err := database.EnsureIndexes(ctx, db); err != nil {
				return fmt.Errorf("ensure indexes: %w", err)
			}
			return seedSuperadmin(ctx, db, log, username, password, name)
		},
	}
	cmd.Flags().StringVar(&username, "username", "superadmin", "superadmin username")
	cmd.Flags().StringVar(&password, "password", "", "superadmin password (required)")
	cmd.Flags().StringVar(&name, "name", "Super Admin", "display name")
	cmd.MarkFlagRequired("password")
	return cmd
}

func seedSuperadmin(ctx context.Context, db *mongo.Database, log *logrus.Logger, username, password, name string) error {
	userRepo := repository.NewUserRepository(db)
	companyRepo := repository.NewCompanyRepository(db)
	leaveRepo := repository.NewLeaveRepository(db)
	userSvc := services.NewUserService(userRepo, companyRepo, leaveRepo, nil)

	n, err := userRepo.CountSuperadmins(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		log.Info("superadmin already exists, nothing to do")
		return nil
	}

	u, err := userSvc.Create(ctx, dto.CreateUserReq{
		Username: username,
		Password: password,
		Role:     model.RoleSuperadmin,
		Name:     name,
	}, bson.ObjectID{})
	if err != nil {
		return err
	}
	log.Infof("created superadmin %s (%s)", u.Username, u.ID.Hex())
	return nil
}
