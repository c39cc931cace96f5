// Package offlinequeue buffers mutating operations while connectivity is
// absent and replays them in enqueue order once it returns. Operations that
// keep failing are retried up to a ceiling and then dropped; drops are
// counted, never silent.
package offlinequeue

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/voicenotes/voicenote-api/internal/models"
)

// DefaultMaxRetries is the replay ceiling per operation
const DefaultMaxRetries = 3

// ErrReplayInProgress is returned when a replay is requested while another
// one is still running. Replay is deliberately non-reentrant.
var ErrReplayInProgress = errors.New("replay already in progress")

// ReplayStats summarizes one replay pass
type ReplayStats struct {
	Replayed int `json:"replayed"`
	Requeued int `json:"requeued"`
	Dropped  int `json:"dropped"`
}

// Stats describes the queue's current state
type Stats struct {
	Pending      int64  `json:"pending"`
	DroppedTotal uint64 `json:"dropped_total"`
	Online       bool   `json:"online"`
}

type Service struct {
	repo       OperationRepository
	executor   Executor
	maxRetries int
	log        *logrus.Logger

	replayMu sync.Mutex // held for the duration of a replay pass

	stateMu sync.Mutex
	online  bool

	droppedTotal atomic.Uint64
}

// Ensure Service implements Queue interface
var _ Queue = (*Service)(nil)

func NewService(repo OperationRepository, executor Executor, maxRetries int, log *logrus.Logger) *Service {
	if maxRetries <= 0 {
		maxRetries = DefaultMaxRetries
	}
	return &Service{
		repo:       repo,
		executor:   executor,
		maxRetries: maxRetries,
		log:        log,
		online:     true,
	}
}

// Enqueue buffers one operation and returns its generated ID
func (s *Service) Enqueue(ctx context.Context, opType models.OperationType, targetTable string, payload models.OperationPayload) (string, error) {
	op := &models.QueuedOperation{
		OpID:        uuid.NewString(),
		Type:        opType,
		TargetTable: targetTable,
		Payload:     payload,
		EnqueuedAt:  time.Now().UTC(),
	}
	if err := s.repo.Enqueue(ctx, op); err != nil {
		return "", err
	}

	s.log.WithFields(logrus.Fields{
		"op_id":  op.OpID,
		"type":   opType,
		"target": targetTable,
	}).Info("buffered operation for later replay")
	return op.OpID, nil
}

// Replay applies every pending operation in enqueue order. A failing
// operation stays queued with its retry count bumped until the ceiling,
// then it is dropped. Only one replay pass runs at a time; concurrent
// callers get ErrReplayInProgress.
func (s *Service) Replay(ctx context.Context) (*ReplayStats, error) {
	if !s.replayMu.TryLock() {
		return nil, ErrReplayInProgress
	}
	defer s.replayMu.Unlock()

	ops, err := s.repo.ListInOrder(ctx)
	if err != nil {
		return nil, err
	}

	stats := &ReplayStats{}
	for i := range ops {
		op := &ops[i]

		if err := ctx.Err(); err != nil {
			return stats, fmt.Errorf("replay aborted: %w", err)
		}

		applyErr := s.executor.Apply(ctx, op)
		if applyErr == nil {
			if err := s.repo.Delete(ctx, op.ID); err != nil {
				return stats, err
			}
			stats.Replayed++
			continue
		}

		op.RetryCount++
		if op.ShouldDrop(s.maxRetries) {
			if err := s.repo.Delete(ctx, op.ID); err != nil {
				return stats, err
			}
			stats.Dropped++
			s.droppedTotal.Add(1)
			s.log.WithError(applyErr).WithFields(logrus.Fields{
				"op_id":       op.OpID,
				"retry_count": op.RetryCount,
			}).Warn("dropping operation after exhausting retries")
			continue
		}

		if err := s.repo.UpdateRetryCount(ctx, op.ID, op.RetryCount); err != nil {
			return stats, err
		}
		stats.Requeued++
		s.log.WithError(applyErr).WithFields(logrus.Fields{
			"op_id":       op.OpID,
			"retry_count": op.RetryCount,
		}).Warn("operation failed, keeping it queued")
	}

	if stats.Replayed+stats.Requeued+stats.Dropped > 0 {
		s.log.WithFields(logrus.Fields{
			"replayed": stats.Replayed,
			"requeued": stats.Requeued,
			"dropped":  stats.Dropped,
		}).Info("replay pass finished")
	}
	return stats, nil
}

// SetConnectivity records the connectivity state. An offline-to-online
// transition triggers exactly one replay pass; its stats are returned.
// Every other transition is a state change only.
func (s *Service) SetConnectivity(ctx context.Context, online bool) (*ReplayStats, error) {
	s.stateMu.Lock()
	cameOnline := online && !s.online
	s.online = online
	s.stateMu.Unlock()

	if !cameOnline {
		return nil, nil
	}
	return s.Replay(ctx)
}

func (s *Service) Online() bool {
	s.stateMu.Lock()
	defer s.stateMu.Unlock()
	return s.online
}

// Stats reports the pending backlog and the cumulative drop count
func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	pending, err := s.repo.Count(ctx)
	if err != nil {
		return nil, err
	}
	return &Stats{
		Pending:      pending,
		DroppedTotal: s.droppedTotal.Load(),
		Online:       s.Online(),
	}, nil
}
