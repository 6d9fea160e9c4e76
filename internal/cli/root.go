package cli

import (
	"fmt"

	"github.com/martijn/bloglist/internal/core/repository"
	"github.com/martijn/bloglist/internal/core/service"
	"github.com/martijn/bloglist/internal/infrastructure/sqlite"
	"github.com/martijn/bloglist/pkg/config"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	cfg     *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "bloglist",
	Short: "Bloglist - blog collection service",
	Long: `Bloglist is a small HTTP service managing blog records owned by registered users.

It provides:
- Token-authenticated blog creation and deletion
- Public blog listing with owner identities
- User account management
- Aggregate statistics over the stored collection`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip config loading for commands that don't need it
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		// Load configuration
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		return nil
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is /etc/bloglist/config.yml)")
}

// initServices initializes all services
func initServices() (*Services, error) {
	// Initialize database
	db, err := sqlite.New(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Initialize repositories
	userRepo := sqlite.NewUserRepository(db)
	blogRepo := sqlite.NewBlogRepository(db)

	// Initialize services
	authService := service.NewAuthService(userRepo, cfg.JWTSecretKey, cfg.JWTAlgorithm, cfg.TokenExpiry())
	blogService := service.NewBlogService(blogRepo, userRepo)
	userService := service.NewUserService(userRepo, authService)

	return &Services{
		DB:          db,
		UserRepo:    userRepo,
		BlogRepo:    blogRepo,
		AuthService: authService,
		BlogService: blogService,
		UserService: userService,
	}, nil
}

// Services holds all initialized services
type Services struct {
	DB          *sqlite.DB
	UserRepo    repository.UserRepository
	BlogRepo    repository.BlogRepository
	AuthService *service.AuthService
	BlogService *service.BlogService
	UserService *service.UserService
}

// Close closes all resources
func (s *Services) Close() {
	if s.DB != nil {
		s.DB.Close()
	}
}
