package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"

	"datagen/internal/config"
	"datagen/internal/generator"
	"datagen/internal/handler"
	"datagen/internal/hub"
	"datagen/internal/infra/db"
	infraRepo "datagen/internal/infra/repository"
	"datagen/internal/infra/rawstore"
	"datagen/internal/queue"
	"datagen/internal/server"
	"datagen/internal/usecase"
	"datagen/internal/validator"
	"datagen/internal/worker"
)

func main() {
	// .envはローカル用。無ければ環境変数だけで動く。
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	//DB接続
	gormDB, err := db.Connect()
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}
	if err := db.Migrate(gormDB); err != nil {
		log.Fatalf("db migrate: %v", err)
	}

	//rawデータ用の組み込みストア
	store, err := rawstore.Open(cfg.RawStoreDSN)
	if err != nil {
		log.Fatalf("raw store: %v", err)
	}
	defer store.Close()

	//Repository（GORM実装）生成
	userRepo := infraRepo.NewAppUserGormRepository(gormDB)
	rtRepo := infraRepo.NewRefreshTokenGormRepository(gormDB)
	notificationRepo := infraRepo.NewNotificationGormRepository(gormDB)
	datasetRepo := infraRepo.NewDatasetGormRepository(gormDB)

	//リクエスト/ワーカーごとに新しいGeneratorを作る
	newGen := func() *generator.Generator {
		return generator.New(time.Now().UnixNano(), cfg.ErrorRate)
	}

	//ジョブキューとワーカープール
	jobQueue := queue.New(cfg.QueueSize)
	events := hub.New()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool := worker.NewPool(jobQueue.Jobs(), store, store, notificationRepo, events, newGen, cfg.WorkerCount)
	pool.Start(ctx)

	//Usecase生成
	authUC := usecase.NewAuthUsecase(cfg, userRepo, rtRepo, validator.NewAuthValidator(userRepo))
	datasetUC := usecase.NewDatasetUsecase(datasetRepo, userRepo, newGen)
	jobUC := usecase.NewJobUsecase(store, jobQueue)
	notificationUC := usecase.NewNotificationUsecase(notificationRepo)

	//Handler生成
	handlers := server.Handlers{
		Auth:         handler.NewAuthHandler(authUC),
		Dataset:      handler.NewDatasetHandler(datasetUC),
		Job:          handler.NewJobHandler(jobUC),
		Notification: handler.NewNotificationHandler(notificationUC),
		Events:       handler.NewEventsHandler(events),
	}

	//Server起動
	e := server.New(cfg, handlers, userRepo)
	if err := server.Start(e, cfg.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
