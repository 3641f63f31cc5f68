package cron

import (
	"context"

	"klinik/config"
	recordsRepo "klinik/database/repository/records"
	"klinik/services/tasks"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// RedisOpt is the asynq connection shared by the audit enqueuer and worker.
func RedisOpt(cfg config.Config) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisQueueDB,
	}
}

// AuditWorker persists audit entries enqueued by the booking service.
type AuditWorker struct {
	srv    *asynq.Server
	mux    *asynq.ServeMux
	logger *zap.Logger
}

// NewAuditWorker builds the worker; call Start to run it.
func NewAuditWorker(cfg config.Config, repo recordsRepo.AuditRepository, logger *zap.Logger) *AuditWorker {
	srv := asynq.NewServer(
		RedisOpt(cfg),
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				tasks.AuditQueue: 1,
			},
			Logger: logger.Sugar(),
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeAuditRecord, HandleAuditTask(repo, logger))

	return &AuditWorker{srv: srv, mux: mux, logger: logger}
}

// Start runs the worker in the background.
func (w *AuditWorker) Start() error {
	w.logger.Info("Starting audit worker")
	return w.srv.Start(w.mux)
}

// Shutdown waits for in-flight tasks and stops the worker.
func (w *AuditWorker) Shutdown() {
	w.srv.Shutdown()
}

// HandleAuditTask stores one audit entry.
func HandleAuditTask(repo recordsRepo.AuditRepository, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		entry, err := tasks.ParseAuditTask(task)
		if err != nil {
			logger.Error("Invalid audit task", zap.Error(err))
			return err
		}
		if _, err := repo.Create(ctx, entry); err != nil {
			logger.Warn("Failed to store audit entry, will retry",
				zap.String("id", entry.ID),
				zap.Error(err),
			)
			return err
		}
		logger.Debug("Audit entry stored", zap.String("id", entry.ID), zap.String("kind", entry.Kind))
		return nil
	}
}
