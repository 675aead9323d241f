// Command batch applies one lifecycle transition to a list of orders from
// the command line. The downstream progress transitions (customs, arrived,
// readyForDelivery, delivered) are driven by scheduled wrappers around this
// binary; the exit code tells the scheduler what went wrong.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"fulfillment/cmd"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

const (
	exitOK                  = 0
	exitPreconditionFailed  = 1
	exitPersistenceFailed   = 2
	exitUpstreamUnavailable = 3
	exitUsage               = 64
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: batch <transition> <orderID> [orderID...]")
		return exitUsage
	}

	configs := getConfigs()
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	root, err := cmd.NewCompositionRoot(configs, gormDB, dsn)
	if err != nil {
		log.Fatalf("Error building composition root: %v", err)
	}

	handler := root.CreateTransitionOrderCommandHandler()
	transition := commands.OrderTransition(args[0])

	worst := exitOK
	for _, raw := range args[1:] {
		code := applyTransition(&handler, transition, raw)
		if code > worst {
			worst = code
		}
	}

	return worst
}

func applyTransition(handler *commands.TransitionOrderCommandHandler,
	transition commands.OrderTransition, raw string) int {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "order %q: not a valid id\n", raw)
		return exitUsage
	}

	orderID, err := kernel.NewID(id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "order %q: %v\n", raw, err)
		return exitUsage
	}

	command, err := commands.NewTransitionOrderCommand(orderID, transition)
	if err != nil {
		fmt.Fprintf(os.Stderr, "order %d: %v\n", id, err)
		return exitUsage
	}

	if err = handler.Handle(context.Background(), command); err != nil {
		fmt.Fprintf(os.Stderr, "order %d: %v\n", id, err)
		return exitCode(err)
	}

	return exitOK
}

func exitCode(err error) int {
	switch {
	case errors.Is(err, errs.ErrPreconditionFailed):
		return exitPreconditionFailed
	case errors.Is(err, errs.ErrUpstreamUnavailable):
		return exitUpstreamUnavailable
	default:
		return exitPersistenceFailed
	}
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Fatalf("Error loading .env file")
	}
	return cmd.Config{
		DBHost:          os.Getenv("DB_HOST"),
		DBPort:          os.Getenv("DB_PORT"),
		DBUser:          os.Getenv("DB_USER"),
		DBPassword:      os.Getenv("DB_PASSWORD"),
		DBName:          os.Getenv("DB_NAME"),
		DBSslMode:       os.Getenv("DB_SSLMODE"),
		RateProviderURL: os.Getenv("RATE_PROVIDER_URL"),
		NotifierURL:     os.Getenv("NOTIFIER_URL"),
		DefaultFxRate:   os.Getenv("DEFAULT_FX_RATE"),
	}
}
