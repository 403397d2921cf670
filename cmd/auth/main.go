package main

import (
	"context"
	"fmt"

	"github.com/LudNieto/ecommerce-go/internal/adapter/auth"
	"github.com/LudNieto/ecommerce-go/internal/adapter/config"
	"github.com/LudNieto/ecommerce-go/internal/adapter/handler/http"
	"github.com/LudNieto/ecommerce-go/internal/adapter/logger"
	"github.com/LudNieto/ecommerce-go/internal/adapter/storage"
	"github.com/LudNieto/ecommerce-go/internal/adapter/storage/repository"
	"github.com/LudNieto/ecommerce-go/internal/core/service"
	"go.uber.org/zap"
)

func main() {
	conf, err := config.NewConfig(`localhost:8081`)
	if err != nil {
		fmt.Printf("config error:%s", err)
		return
	}

	log := logger.NewLogger(conf.App)
	if log == nil {
		fmt.Printf("error creating log")
		return
	}
	defer func() {
		err := log.Sync()
		if err != nil {
			fmt.Printf("log error: %s", err)
		}
	}()

	ctx := context.Background()

	db, err := storage.NewDBStorage(ctx, conf.Database)
	if err != nil {
		log.Error("database error", zap.Error(err))
		return
	}
	err = db.RunMigrations()
	if err != nil {
		log.Error("database migration error", zap.Error(err))
		return
	}

	repo, err := repository.NewRepository(db)
	if err != nil {
		log.Error("repository creating error", zap.Error(err))
		return
	}

	tokenService, err := auth.New(conf.Token)
	if err != nil {
		log.Error("token service creating error", zap.Error(err))
		return
	}

	svc, err := service.NewService(repo, tokenService, log.Named("Service"))
	if err != nil {
		log.Error("service creating error", zap.Error(err))
		return
	}

	userHandler, err := http.NewUserHandler(svc, log.Named("User handler"))
	if err != nil {
		log.Error("user handler creating error", zap.Error(err))
		return
	}

	r, err := http.NewAuthRouter(conf.Cors, tokenService, userHandler)
	if err != nil {
		log.Error("router creating error", zap.Error(err))
		return
	}

	err = r.Serve(conf.HTTP.HostString)
	if err != nil {
		log.Error("router serve error", zap.Error(err))
		return
	}
}
