package main

import (
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"accounts-api/internal/components/auth"
	"accounts-api/internal/components/user"
	"accounts-api/internal/server"
	"accounts-api/internal/shared/config"
	"accounts-api/internal/shared/database"
	"accounts-api/internal/shared/logging"
	"accounts-api/internal/shared/password"
	"accounts-api/internal/shared/token"
)

func main() {
	// Optional .env file; real environments set variables directly
	_ = godotenv.Load()

	fx.New(
		fx.Provide(
			config.NewConfig,
			logging.NewLogger,
			database.NewPgxPool,
			password.NewHasher,
			token.NewIssuer,
			user.NewRepo,
			user.NewService,
			fx.Annotate(user.NewRouter, fx.ResultTags(`name:"userRouter"`)),
			auth.NewService,
			fx.Annotate(auth.NewRouter, fx.ResultTags(`name:"authRouter"`)),
			server.NewHealthSrvc,
			server.NewHealthHandler,
			server.NewServer,
		),
		fx.Invoke((*server.Server).Start),
	).Run()
}
