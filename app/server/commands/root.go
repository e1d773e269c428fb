package commands

import (
	"blog-system/app/server/config"
	"blog-system/app/server/inits"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var rootCmd = &cobra.Command{
	Use:   "blog-server",
	Short: "Blog backend: articles, comments and an admin panel",
	Long: `Blog backend serving a REST API for registration, articles with draft and
published status, comments and site administration.

Configuration is read from environment variables (DB_DRIVER, DB_CONN,
SIGNATURE_SECRET_KEY, ...). Running without a subcommand starts the server.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// bootstrap 读取配置，初始化日志与数据库，并在需要时创建初始管理员
func bootstrap() (*config.Config, *zap.Logger, *gorm.DB, error) {
	// 初始化配置
	cfg, err := inits.Config()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("error loading config: %w", err)
	}

	// 初始化日志
	l, err := inits.Logger(!cfg.System.IsProd)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("error initializing logger: %w", err)
	}
	l.Debug("config loaded", zap.Stringer("config", cfg))

	// 初始化数据库连接
	db, err := inits.DB(cfg.System.DBDriver, cfg.System.DBConnectionString)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("error initializing DB connection: %w", err)
	}

	// 初始化管理员
	if err = inits.InitAdmin(db, l, cfg.InitAdmin.Username, cfg.InitAdmin.Email, cfg.InitAdmin.Password); err != nil {
		return nil, nil, nil, fmt.Errorf("error initializing admin user: %w", err)
	}

	return cfg, l, db, nil
}
