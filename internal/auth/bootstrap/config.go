package bootstrap

import (
	"time"

	"github.com/Lexv0lk/checkout-store/internal/pkg/database"
)

type AuthConfig struct {
	DbSettings database.PostgresSettings
	Storage    string        `env:"STORAGE" envDefault:"postgres"`
	DbMigrate  bool          `env:"DB_MIGRATE" envDefault:"false"`
	GrpcPort   string        `env:"GRPC_AUTH_PORT" envDefault:":9090"`
	SecretKey  string        `env:"JWT_SECRET,required"`
	TokenTTL   time.Duration `env:"JWT_TTL" envDefault:"1h"`
}
