package bootstrap

import (
	"time"

	"github.com/Lexv0lk/checkout-store/internal/checkout/application"
	"github.com/Lexv0lk/checkout-store/internal/checkout/infrastructure/payment"
	"github.com/Lexv0lk/checkout-store/internal/pkg/database"
)

const (
	PaymentSimulated = "simulated"
	PaymentStripe    = "stripe"

	LockerMemory = "memory"
	LockerRedis  = "redis"
)

type CheckoutConfig struct {
	DbSettings   database.PostgresSettings
	Storage      string `env:"STORAGE" envDefault:"postgres"`
	DbMigrate    bool   `env:"DB_MIGRATE" envDefault:"false"`
	GrpcPort     string `env:"GRPC_CHECKOUT_PORT" envDefault:":9091"`
	GrpcAuthAddr string `env:"GRPC_AUTH_ADDR" envDefault:"localhost:9090"`

	PaymentGateway string `env:"PAYMENT_GATEWAY" envDefault:"simulated"`
	Stripe         payment.StripeSettings
	Settlement     SettlementConfig

	Locker   string        `env:"IDEMPOTENCY_LOCKER" envDefault:"memory"`
	RedisURL string        `env:"REDIS_URL" envDefault:"redis://localhost:6379/0"`
	LockTTL  time.Duration `env:"IDEMPOTENCY_LOCK_TTL" envDefault:"30s"`

	KafkaBrokers []string `env:"KAFKA_BROKERS" envSeparator:","`
	KafkaTopic   string   `env:"KAFKA_ORDERS_TOPIC" envDefault:"checkout.orders.confirmed"`
}

type SettlementConfig struct {
	MaxRetries     uint64        `env:"PAYMENT_MAX_RETRIES" envDefault:"3"`
	RetryBase      time.Duration `env:"PAYMENT_RETRY_BASE" envDefault:"100ms"`
	AttemptTimeout time.Duration `env:"PAYMENT_ATTEMPT_TIMEOUT" envDefault:"5s"`
	VoidTimeout    time.Duration `env:"PAYMENT_VOID_TIMEOUT" envDefault:"5s"`
}

func (c SettlementConfig) Policy() application.SettlementPolicy {
	return application.SettlementPolicy{
		MaxRetries:     c.MaxRetries,
		RetryBase:      c.RetryBase,
		AttemptTimeout: c.AttemptTimeout,
		VoidTimeout:    c.VoidTimeout,
	}
}
