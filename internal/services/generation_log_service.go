package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/onegreenvn/campaign-generator-backend/internal/models"
	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
)

// GenerationLogStore persists generation logs; implemented by repository.GenerationLogRepository
type GenerationLogStore interface {
	Create(log *models.GenerationLog) error
	GetByEntity(entityType, entityID string, limit, offset int) ([]*models.GenerationLog, error)
	GetByRequestID(requestID string) ([]*models.GenerationLog, error)
	CountByEntity(entityType, entityID string) (int64, error)
	DeleteOldLogs(days int) (int64, error)
}

var ErrInvalidLog = errors.New("entity_type, entity_id, stage, status and message are required")

type GenerationLogService struct {
	logRepo         GenerationLogStore
	sseHub          *SSEHub
	rabbitMQ        *RabbitMQService
	stopChan        chan struct{}
	cleanupStopChan chan struct{}
}

// NewGenerationLogService wires the log store to the SSE hub. rabbitMQ may be nil.
func NewGenerationLogService(logRepo GenerationLogStore, sseHub *SSEHub, rabbitMQ *RabbitMQService) *GenerationLogService {
	return &GenerationLogService{
		logRepo:         logRepo,
		sseHub:          sseHub,
		rabbitMQ:        rabbitMQ,
		stopChan:        make(chan struct{}),
		cleanupStopChan: make(chan struct{}),
	}
}

// StartRabbitMQConsumer consumes logs reported by external workers
func (s *GenerationLogService) StartRabbitMQConsumer() error {
	if s.rabbitMQ == nil {
		return errors.New("RabbitMQ is not connected")
	}
	msgs, err := s.rabbitMQ.Consume(GenerationLogsQueue)
	if err != nil {
		return err
	}

	logrus.Infof("RabbitMQ consumer started for %s queue", GenerationLogsQueue)

	go func() {
		for {
			select {
			case <-s.stopChan:
				logrus.Info("RabbitMQ consumer stopped")
				return
			case msg, ok := <-msgs:
				if !ok {
					logrus.Warn("RabbitMQ channel closed")
					return
				}
				if err := s.processLogMessage(msg.Body); err != nil {
					logrus.Errorf("Failed to process log message: %v", err)
				}
			}
		}
	}()

	return nil
}

// StopRabbitMQConsumer stops the consumer
func (s *GenerationLogService) StopRabbitMQConsumer() {
	select {
	case <-s.stopChan:
	default:
		close(s.stopChan)
	}
}

func (s *GenerationLogService) processLogMessage(body []byte) error {
	var req models.GenerationLogRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return fmt.Errorf("failed to unmarshal log message: %w", err)
	}
	if req.EntityID == "unknown" {
		logrus.Warnf("Skipping log with unknown entity id (entity_type=%s)", req.EntityType)
		return nil
	}
	// worker logs are stored and streamed but not echoed back to the broker
	_, err := s.createLog(&req, false)
	return err
}

// CreateLog stores a log, streams it to SSE clients and publishes it
func (s *GenerationLogService) CreateLog(req *models.GenerationLogRequest) (*models.GenerationLog, error) {
	return s.createLog(req, true)
}

func (s *GenerationLogService) createLog(req *models.GenerationLogRequest, publish bool) (*models.GenerationLog, error) {
	if req.EntityType == "" || req.EntityID == "" || req.Stage == "" || req.Status == "" || req.Message == "" {
		return nil, ErrInvalidLog
	}

	var metadata datatypes.JSON
	if req.Metadata != nil {
		b, err := json.Marshal(req.Metadata)
		if err != nil {
			return nil, fmt.Errorf("failed to encode metadata: %w", err)
		}
		metadata = b
	}

	log := &models.GenerationLog{
		RequestID:  req.RequestID,
		EntityType: req.EntityType,
		EntityID:   req.EntityID,
		Stage:      req.Stage,
		Status:     req.Status,
		Message:    req.Message,
		Metadata:   metadata,
		CreatedAt:  time.Now(),
	}

	if err := s.logRepo.Create(log); err != nil {
		return nil, fmt.Errorf("failed to create log: %w", err)
	}

	if s.sseHub != nil {
		s.sseHub.BroadcastLog(log)
	}

	if publish && s.rabbitMQ != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.rabbitMQ.PublishMessage(ctx, GenerationEventsQueue, log); err != nil {
			logrus.Warnf("Failed to publish generation event: %v", err)
		}
	}

	return log, nil
}

// Log is a convenience method to create a log entry. Failures are logged, not returned,
// so a broken log store never fails a generation.
func (s *GenerationLogService) Log(requestID, entityType, entityID, stage, status, message string, metadata map[string]interface{}) {
	_, err := s.CreateLog(&models.GenerationLogRequest{
		RequestID:  requestID,
		EntityType: entityType,
		EntityID:   entityID,
		Stage:      stage,
		Status:     status,
		Message:    message,
		Metadata:   metadata,
	})
	if err != nil {
		logrus.WithError(err).WithField("stage", stage).Warn("Failed to record generation log")
	}
}

// GetLogsByEntity retrieves logs for a specific entity
func (s *GenerationLogService) GetLogsByEntity(entityType, entityID string, limit, offset int) ([]*models.GenerationLog, error) {
	if entityType == RequestEntityType {
		return s.logRepo.GetByRequestID(entityID)
	}
	return s.logRepo.GetByEntity(entityType, entityID, limit, offset)
}

// CountLogs counts logs for an entity
func (s *GenerationLogService) CountLogs(entityType, entityID string) (int64, error) {
	return s.logRepo.CountByEntity(entityType, entityID)
}

// StartLogCleanup starts a background goroutine to periodically clean up old logs
func (s *GenerationLogService) StartLogCleanup(interval time.Duration, retentionDays int) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		s.cleanupOldLogs(retentionDays)

		for {
			select {
			case <-ticker.C:
				s.cleanupOldLogs(retentionDays)
			case <-s.cleanupStopChan:
				return
			}
		}
	}()
	logrus.Infof("Log cleanup service started (interval: %v, retention: %d days)", interval, retentionDays)
}

// StopLogCleanup stops the log cleanup service
func (s *GenerationLogService) StopLogCleanup() {
	select {
	case <-s.cleanupStopChan:
	default:
		close(s.cleanupStopChan)
	}
}

func (s *GenerationLogService) cleanupOldLogs(retentionDays int) {
	deletedCount, err := s.logRepo.DeleteOldLogs(retentionDays)
	if err != nil {
		logrus.Errorf("Failed to cleanup old logs: %v", err)
		return
	}

	if deletedCount > 0 {
		logrus.Infof("Log cleanup completed: deleted %d log entries older than %d day(s)", deletedCount, retentionDays)
	} else {
		logrus.Debugf("Log cleanup completed: no logs older than %d day(s)", retentionDays)
	}
}
