package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/AlibekovAA/feedboard/backend/internal/auth/bearer"
	authhttp "github.com/AlibekovAA/feedboard/backend/internal/auth/http"
	"github.com/AlibekovAA/feedboard/backend/internal/auth/service"
	"github.com/AlibekovAA/feedboard/backend/internal/common/clock"
	"github.com/AlibekovAA/feedboard/backend/internal/common/config"
	"github.com/AlibekovAA/feedboard/backend/internal/common/constants"
	commoncrypto "github.com/AlibekovAA/feedboard/backend/internal/common/crypto"
	commonhttp "github.com/AlibekovAA/feedboard/backend/internal/common/http"
	"github.com/AlibekovAA/feedboard/backend/internal/common/logger"
	srv "github.com/AlibekovAA/feedboard/backend/internal/common/server"
	newscatalog "github.com/AlibekovAA/feedboard/backend/internal/news/catalog"
	newshttp "github.com/AlibekovAA/feedboard/backend/internal/news/http"
	postdomain "github.com/AlibekovAA/feedboard/backend/internal/post/domain"
	posthttp "github.com/AlibekovAA/feedboard/backend/internal/post/http"
	postrepo "github.com/AlibekovAA/feedboard/backend/internal/post/repository"
	userdomain "github.com/AlibekovAA/feedboard/backend/internal/user/domain"
	userrepo "github.com/AlibekovAA/feedboard/backend/internal/user/repository"
)

func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.LogDir, "api", cfg.LogLevel)
	if err != nil {
		os.Stderr.WriteString(fmt.Sprintf("failed to initialize logger: %v\n", err))
		os.Exit(1)
	}

	hasher := &commoncrypto.BcryptHasher{}
	tokenGenerator := commoncrypto.NewUUIDGenerator()
	clk := clock.NewRealClock()

	admin, err := seedAdmin(cfg, hasher, tokenGenerator)
	if err != nil {
		log.Fatalf("failed to seed admin account: %v", err)
	}

	userRepo := userrepo.NewInMemoryRepository(admin)
	tokenStore := service.NewTokenStore()
	authService := service.NewAuthService(userRepo, tokenStore, hasher, tokenGenerator, log)

	postRepo := postrepo.NewInMemoryRepository(clk, seedPosts()...)
	newsCatalog := newscatalog.NewDefault()

	authHandler := authhttp.NewHandler(authService, log)
	postHandler := posthttp.NewHandler(postRepo, log)
	newsHandler := newshttp.NewHandler(newsCatalog, log)

	guard := bearer.Middleware(authService, log)
	withTimeout := commonhttp.WithTimeout(cfg.RequestTimeout)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", handleRoot)
	mux.HandleFunc("POST /auth", withTimeout(authHandler.Authenticate))

	mux.Handle("GET /private/me", guard(http.HandlerFunc(authHandler.Me)))
	mux.Handle("GET /private/news", guard(http.HandlerFunc(newsHandler.List)))
	mux.Handle("GET /private/news/{id}", guard(http.HandlerFunc(newsHandler.Get)))

	mux.HandleFunc("GET /posts", postHandler.List)
	mux.HandleFunc("GET /posts/{id}", postHandler.Get)
	mux.HandleFunc("POST /posts", postHandler.Create)
	mux.HandleFunc("PUT /posts/{id}", postHandler.Update)
	mux.HandleFunc("DELETE /posts/{id}", postHandler.Delete)

	mux.Handle("GET /metrics", promhttp.Handler())

	baseHandler := commonhttp.BuildBaseHandler("api", cfg.CORSAllowedOrigin, log, mux)

	serverConfig := srv.DefaultServerConfig(cfg.HTTPPort)
	server := srv.NewServer(serverConfig, baseHandler)

	srv.StartWithGracefulShutdown(server, log, "api")
}

func handleRoot(w http.ResponseWriter, r *http.Request) {
	commonhttp.WriteJSON(w, http.StatusOK, map[string]string{"GET": "ok"})
}

func seedAdmin(cfg config.Config, hasher commoncrypto.PasswordHasher, gen commoncrypto.TokenGenerator) (userdomain.User, error) {
	hash, err := hasher.Hash(cfg.SeedAdminPassword)
	if err != nil {
		return userdomain.User{}, err
	}

	id, err := gen.NewToken()
	if err != nil {
		return userdomain.User{}, err
	}

	return userdomain.User{
		ID:           userdomain.ID(id),
		Login:        cfg.SeedAdminLogin,
		Name:         constants.DefaultSeedAdminName,
		PasswordHash: hash,
		AvatarURL:    constants.DefaultSeedAdminAvatar,
	}, nil
}

func seedPosts() []postdomain.Post {
	return []postdomain.Post{
		{
			ID:      1,
			Content: "A post about the React course",
			Created: time.Date(2023, time.December, 29, 17, 41, 4, 960316000, time.UTC),
		},
		{
			ID:      2,
			Content: "Another post about the React course",
			Created: time.Date(2023, time.December, 29, 17, 41, 4, 960435000, time.UTC),
		},
	}
}
