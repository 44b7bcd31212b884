package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/streadway/amqp"
	"go.uber.org/zap"

	"github.com/mcggEz/backend-gradalyze-capstone/internal/logger"
	"github.com/mcggEz/backend-gradalyze-capstone/internal/pipeline"
	"github.com/mcggEz/backend-gradalyze-capstone/internal/queue"
	"github.com/mcggEz/backend-gradalyze-capstone/internal/secrets"
	"github.com/mcggEz/backend-gradalyze-capstone/internal/storage"
	"github.com/mcggEz/backend-gradalyze-capstone/internal/store"
)

const defaultWorkers = 3

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the transcript analysis worker",
	Run: func(cmd *cobra.Command, _ []string) {
		run(cmd)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().IntP("workers", "w", 0, "number of queue workers (overrides config)")
}

// run consumes analysis jobs until the queue connection closes.
func run(cmd *cobra.Command) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting the gradalyze worker", zap.String("version", version))

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	if config == nil {
		logger.Fatal("config is required")
	}

	if config.Database == nil || config.Database.URL == "" {
		logger.Fatal("database url is required",
			zap.String("hint", "set database.url in the configuration file or DATABASE_URL"),
		)
	}
	if config.Queue == nil || config.Queue.URL == "" {
		logger.Fatal("queue url is required",
			zap.String("hint", "set queue.url in the configuration file or RABBITMQ_URL"),
		)
	}

	db, err := store.Open(ctx, config.Database.URL)
	if err != nil {
		logger.Fatal("connecting to the database", zap.Error(err))
	}
	defer db.Close()

	storageClient, err := newStorageClient(ctx, config.Storage)
	if err != nil {
		logger.Fatal("building the storage client", zap.Error(err))
	}

	conn, err := amqp.Dial(config.Queue.URL)
	if err != nil {
		logger.Fatal("dialing the queue", zap.Error(err))
	}
	defer conn.Close()

	workers := config.Queue.Workers
	if flagWorkers, _ := cmd.Flags().GetInt("workers"); flagWorkers > 0 {
		workers = flagWorkers
	}
	if workers <= 0 {
		workers = defaultWorkers
	}

	persistence := store.NewStore(db)
	worker := queue.NewWorker(conn, workers, &queue.Deps{
		Logger:   logger,
		Analyzer: pipeline.New(logger),
		Store:    persistence,
		Jobs:     persistence,
		Storage:  storageClient,
	})

	logger.Info("consuming analysis jobs",
		zap.Int("workers", workers),
		zap.String("queue", queue.JobsQueue),
	)

	if err := worker.Run(ctx); err != nil {
		logger.Fatal("worker pool stopped", zap.Error(err))
	}
}

func newStorageClient(ctx context.Context, config *StorageConfig) (*storage.Client, error) {
	if config == nil {
		return nil, fmt.Errorf("storage configuration is required")
	}

	secretKey, err := secrets.Load(secrets.Source{
		Name:  "storage secret access key",
		Value: config.SecretAccessKey,
		File:  config.SecretAccessKeyFile,
	})
	if err != nil {
		return nil, fmt.Errorf("%w (set storage.secret-access-key-file or R2_SECRET_ACCESS_KEY_FILE)", err)
	}

	return storage.New(ctx, storage.Config{
		AccountID:       config.AccountID,
		Bucket:          config.Bucket,
		AccessKeyID:     config.AccessKeyID,
		SecretAccessKey: secretKey,
	})
}
