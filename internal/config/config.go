package config

import (
	"fmt"
	"os"
	"strconv"
)

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート（8080）

	JWTSecret string // JWT署名シークレット

	RawStoreDSN string // rawストアのDSN（memory:// か file://<path>）

	ErrorRate   float64 // 汚染データの混入率 0.0〜1.0
	WorkerCount int     // 生成ワーカー数
	QueueSize   int     // ジョブキューの深さ

	GoEnv string // dev/prod
}

// Loadは環境変数から読む。デモ用途なのでローカルはデフォルトで動く。
func Load() (Config, error) {
	cfg := Config{
		Port:        getenv("PORT", "8080"),
		JWTSecret:   getenv("JWT_SECRET", "dev_secret_change_me"),
		RawStoreDSN: getenv("RAW_STORE_DSN", "memory://"),
		GoEnv:       getenv("GO_ENV", "dev"),
	}

	rate, err := floatEnv("ERROR_RATE", 0)
	if err != nil {
		return Config{}, err
	}
	if rate < 0 || rate > 1 {
		return Config{}, fmt.Errorf("ERROR_RATE must be in [0,1], got %v", rate)
	}
	cfg.ErrorRate = rate

	workers, err := intEnv("WORKER_COUNT", 4)
	if err != nil {
		return Config{}, err
	}
	cfg.WorkerCount = workers

	queueSize, err := intEnv("QUEUE_SIZE", 256)
	if err != nil {
		return Config{}, err
	}
	cfg.QueueSize = queueSize

	// 本番はデフォルトシークレット禁止
	if cfg.GoEnv == "prod" && os.Getenv("JWT_SECRET") == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is required when GO_ENV=prod")
	}

	return cfg, nil
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func intEnv(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return n, nil
}

func floatEnv(key string, def float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number: %w", key, err)
	}
	return f, nil
}
