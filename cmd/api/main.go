package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/iramedia/workreport-backend-go/internal/config"
	"github.com/iramedia/workreport-backend-go/internal/domain/pricing"
	"github.com/iramedia/workreport-backend-go/internal/domain/submission"
	appHTTP "github.com/iramedia/workreport-backend-go/internal/handler/http"
	"github.com/iramedia/workreport-backend-go/internal/pkg/database"
	"github.com/iramedia/workreport-backend-go/internal/pkg/jwt"
	"github.com/iramedia/workreport-backend-go/internal/pkg/oauth"
	"github.com/iramedia/workreport-backend-go/internal/pkg/storage"
	"github.com/iramedia/workreport-backend-go/internal/repository/postgresql"
	serviceAuth "github.com/iramedia/workreport-backend-go/internal/service/auth"
	"github.com/iramedia/workreport-backend-go/internal/service/file"
	reportService "github.com/iramedia/workreport-backend-go/internal/service/report"
	submissionService "github.com/iramedia/workreport-backend-go/internal/service/submission"
	userService "github.com/iramedia/workreport-backend-go/internal/service/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	loc, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		log.Fatal("Invalid APP_TIMEZONE: ", err)
	}
	submission.SetReportLocation(loc)

	userRepo := postgresql.NewUserRepository(db)
	submissionRepo := postgresql.NewSubmissionRepository(db)
	refreshTokenRepo := postgresql.NewRefreshTokenRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	googleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)

	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(cfg.Storage.BasePath)
		if err != nil {
			log.Fatal("Failed to initialize local storage:", err)
		}
	default:
		log.Fatal("Unsupported storage type: ", cfg.Storage.Type)
	}

	rates := pricing.DefaultRateTable()
	if cfg.Pricing.RateTable != "" {
		rates, err = pricing.ParseRateTable(cfg.Pricing.RateTable)
		if err != nil {
			log.Fatal("Invalid RATE_TABLE: ", err)
		}
	}
	policy, err := pricing.ParsePolicy(cfg.Pricing.Policy)
	if err != nil {
		log.Fatal("Invalid PRICING_POLICY: ", err)
	}
	calc := pricing.NewCalculator(rates, policy)

	fileService := file.NewFileService(fileStorage)
	authService := serviceAuth.NewAuthService(db, userRepo, jwtService, refreshTokenRepo, googleService)
	usersService := userService.NewUserService(db, userRepo, submissionRepo, fileService)
	submissionsService := submissionService.NewSubmissionService(db, submissionRepo, fileService)
	reportsService := reportService.NewReportService(submissionRepo, userRepo, calc)

	if err := usersService.EnsureDefaultAdmin(context.Background(), cfg.Admin.Name, cfg.Admin.Email, cfg.Admin.Password); err != nil {
		log.Fatal("Failed to ensure default admin: ", err)
	}

	authHandler := appHTTP.NewAuthHandler(jwtService, authService)
	userHandler := appHTTP.NewUserHandler(usersService, reportsService)
	submissionHandler := appHTTP.NewSubmissionHandler(submissionsService)
	reportHandler := appHTTP.NewReportHandler(reportsService)

	router := appHTTP.NewRouter(
		jwtService,
		authHandler,
		userHandler,
		submissionHandler,
		reportHandler,
		cfg.App.AllowedOrigins,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
