package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Kravtmk/whoami-app/internal/apperror"
	"github.com/Kravtmk/whoami-app/internal/budget"
	"github.com/Kravtmk/whoami-app/internal/model"
	"github.com/Kravtmk/whoami-app/internal/repository"
)

type DayLogService struct {
	store repository.DayLogStore
	locks *keyLock
}

func NewDayLogService(store repository.DayLogStore) *DayLogService {
	return &DayLogService{store: store, locks: newKeyLock()}
}

// Today is a day log together with its derived remainder and percentages.
type Today struct {
	Log          *model.DayLog
	OtherMinutes int
	Percent      budget.Summary
}

// Get returns the stored log or a default one. A missing key is not an error.
func (s *DayLogService) Get(ctx context.Context, userID, day string) (*model.DayLog, error) {
	if err := keyValidate(userID, day); err != nil {
		return nil, err
	}
	return s.load(ctx, userID, day)
}

func (s *DayLogService) load(ctx context.Context, userID, day string) (*model.DayLog, error) {
	log, found, err := s.store.GetDayLog(ctx, userID, day)
	if err != nil {
		slog.Default().Error("failed to load day log", "userId", userID, "day", day, "err", err)
		return nil, err
	}
	if !found {
		return model.NewDayLog(userID, day), nil
	}
	if log.Segments == nil {
		log.Segments = []model.Segment{}
	}
	return log, nil
}

func (s *DayLogService) Summary(ctx context.Context, userID, day string) (Today, error) {
	log, err := s.Get(ctx, userID, day)
	if err != nil {
		return Today{}, err
	}
	return Today{
		Log:          log,
		OtherMinutes: budget.OtherMinutes(log),
		Percent:      budget.Summarize(log),
	}, nil
}

// Save overwrites the stored record at the log's key. A log whose minutes
// overflow the day is rejected like an append would be.
func (s *DayLogService) Save(ctx context.Context, log *model.DayLog) error {
	if err := validateStruct(log); err != nil {
		return err
	}
	if budget.Overallocated(log) {
		return fmt.Errorf("%w: %d minutes declared", apperror.ErrOverAllocation, budget.UsedMinutes(log))
	}
	unlock := s.locks.Lock(log.Key())
	defer unlock()
	return s.persist(ctx, log.Clone())
}

// AppendSegment adds segment to the (userID, day) log and stores the result.
// When the day is already full the append is discarded and
// apperror.ErrOverAllocation is returned.
func (s *DayLogService) AppendSegment(ctx context.Context, userID, day string, segment model.Segment) (*model.DayLog, int, error) {
	if err := keyValidate(userID, day); err != nil {
		return nil, 0, err
	}
	if err := validateStruct(segment); err != nil {
		return nil, 0, err
	}
	unlock := s.locks.Lock(model.DayKey(userID, day))
	defer unlock()

	stored, err := s.load(ctx, userID, day)
	if err != nil {
		return nil, 0, err
	}
	log := stored.Clone()
	log.Segments = append(log.Segments, segment)
	other := budget.OtherMinutes(log)
	if budget.Overallocated(log) {
		slog.Default().Warn("segment rejected, day is over-allocated",
			"userId", userID, "day", day, "roleId", segment.RoleID, "minutes", segment.Minutes,
			"used", budget.UsedMinutes(log))
		return nil, 0, fmt.Errorf("%w: %d minutes declared", apperror.ErrOverAllocation, budget.UsedMinutes(log))
	}
	if err := s.persist(ctx, log); err != nil {
		return nil, 0, err
	}
	return log, other, nil
}

func (s *DayLogService) persist(ctx context.Context, log *model.DayLog) error {
	if log.Segments == nil {
		log.Segments = []model.Segment{}
	}
	if err := s.store.SaveDayLog(ctx, log); err != nil {
		slog.Default().Error("failed to persist day log", "userId", log.UserID, "day", log.Day, "err", err)
		return err
	}
	return nil
}
