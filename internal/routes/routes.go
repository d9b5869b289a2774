package routes

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/accounts-api/internal/audit"
	"github.com/BruksfildServices01/accounts-api/internal/cache"
	"github.com/BruksfildServices01/accounts-api/internal/config"
	domain "github.com/BruksfildServices01/accounts-api/internal/domain/account"
	"github.com/BruksfildServices01/accounts-api/internal/handlers"
	infraRepo "github.com/BruksfildServices01/accounts-api/internal/infra/repository"
	"github.com/BruksfildServices01/accounts-api/internal/media"
	"github.com/BruksfildServices01/accounts-api/internal/middleware"
	ucAccount "github.com/BruksfildServices01/accounts-api/internal/usecase/account"
	"github.com/BruksfildServices01/accounts-api/internal/validators"
)

// RegisterRoutes wires the account API on r. The returned function
// flushes pending audit events and closes the cache connection.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) (shutdown func()) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware(cfg.CORSOrigins))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	accountRepo := infraRepo.NewAccountGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	var userCache domain.UserCache
	closeCache := func() {}
	if cfg.RedisURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		rdb, err := cache.NewRedisClient(ctx, cfg.RedisURL)
		cancel()
		if err != nil {
			log.Printf("redis disabled: %v", err)
		} else {
			userCache = cache.NewUserCache(rdb, cfg.UserCacheTTL)
			closeCache = func() { _ = rdb.Close() }
		}
	}

	var pictureStore domain.PictureStore
	if cfg.MediaEnabled() {
		pictureStore = media.NewS3Store(cfg)
	}

	// ======================================================
	// 🧠 USE CASES
	// ======================================================
	createUserUC := ucAccount.NewCreateUser(
		accountRepo,
		domain.NewRoleProfileProvisioner(accountRepo),
		auditDispatcher,
	)
	if cfg.VerifyEmailDomain {
		createUserUC.WithEmailDomainCheck(validators.IsEmailDomainValid)
	}

	createSuperuserUC := ucAccount.NewCreateSuperuser(createUserUC, accountRepo, auditDispatcher)
	getUserUC := ucAccount.NewGetUser(accountRepo, userCache)
	listProfilesUC := ucAccount.NewListRoleProfiles(accountRepo, pictureStore)
	changeUserTypeUC := ucAccount.NewChangeUserType(accountRepo, userCache, auditDispatcher)
	deleteUserUC := ucAccount.NewDeleteUser(accountRepo, userCache, auditDispatcher)
	authenticateUC := ucAccount.NewAuthenticate(accountRepo, userCache, auditDispatcher)

	createAddressUC := ucAccount.NewCreateAddress(accountRepo, auditDispatcher)
	attachAddressUC := ucAccount.NewAttachAddress(accountRepo, userCache, auditDispatcher)
	deleteAddressUC := ucAccount.NewDeleteAddress(accountRepo, userCache, auditDispatcher)

	var uploadPictureUC *ucAccount.UploadProfilePicture
	if pictureStore != nil {
		uploadPictureUC = ucAccount.NewUploadProfilePicture(
			accountRepo,
			pictureStore,
			auditDispatcher,
			cfg.PictureMaxSide,
		)
	}

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(authenticateUC, cfg)
	meHandler := handlers.NewMeHandler(getUserUC, listProfilesUC, attachAddressUC, uploadPictureUC)
	userHandler := handlers.NewUserHandler(createUserUC, createSuperuserUC, changeUserTypeUC, deleteUserUC)
	addressHandler := handlers.NewAddressHandler(createAddressUC, deleteAddressUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(db, cfg.Timezone)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.GET("/me/profiles", meHandler.ListProfiles)
			secured.PUT("/me/address", meHandler.UpdateAddress)
			secured.POST("/me/profiles/:role/picture", meHandler.UploadPicture)
		}

		// ------------------------------
		// 🛡️ STAFF
		// ------------------------------
		staff := api.Group("/")
		staff.Use(middleware.AuthMiddleware(cfg), middleware.RequireStaff(getUserUC))
		{
			staff.POST("/users", userHandler.Create)
			staff.POST("/users/superuser", userHandler.CreateSuperuser)
			staff.PATCH("/users/:id/type", userHandler.ChangeType)
			staff.DELETE("/users/:id", userHandler.Delete)

			staff.POST("/addresses", addressHandler.Create)
			staff.DELETE("/addresses/:id", addressHandler.Delete)

			staff.GET("/audit-logs", auditLogsHandler.List)
		}
	}

	return func() {
		auditDispatcher.Close()
		closeCache()
	}
}
