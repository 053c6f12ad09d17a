package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/anishanishy81-byte/poverse-sub003/configs"
	"github.com/anishanishy81-byte/poverse-sub003/dto"
	"github.com/anishanishy81-byte/poverse-sub003/model"
)

type SyncStore interface {
	Seen(ctx context.Context, actionID string) (bool, error)
	Record(ctx context.Context, a *model.SyncAction) error
}

type SyncAttendance interface {
	CheckIn(ctx context.Context, companyID, userID bson.ObjectID, req dto.CheckInReq) (*model.AttendanceRecord, error)
	CheckOut(ctx context.Context, userID bson.ObjectID, req dto.CheckOutReq) (*model.AttendanceRecord, error)
}

type SyncTargets interface {
	RecordVisit(ctx context.Context, targetID, companyID, agentID bson.ObjectID, req dto.RecordVisitReq) (*model.Visit, error)
}

type SyncCustomers interface {
	AddNote(ctx context.Context, customerID, companyID, authorID bson.ObjectID, text string) (*model.CustomerNote, error)
}

type SyncService struct {
	store      SyncStore
	attendance SyncAttendance
	targets    SyncTargets
	customers  SyncCustomers
	log        *logrus.Logger
}

func NewSyncService(store SyncStore, attendance SyncAttendance, targets SyncTargets, customers SyncCustomers, log *logrus.Logger) *SyncService {
	return &SyncService{store: store, attendance: attendance, targets: targets, customers: customers, log: log}
}

// Replay applies a client's queued offline actions in order. Each action is
// applied at most once across retries: an actionId already on record is
// skipped. A failing action never aborts the batch; its result carries the
// reason and the client drops it from the queue.
func (s *SyncService) Replay(ctx context.Context, companyID, userID bson.ObjectID, req dto.SyncReq) (*dto.SyncResp, error) {
	resp := &dto.SyncResp{Results: make([]dto.SyncResult, 0, len(req.Actions))}

	for _, action := range req.Actions {
		result := dto.SyncResult{ActionID: action.ActionID}

		if _, err := uuid.Parse(action.ActionID); err != nil {
			result.Reason = "bad actionId"
			resp.Results = append(resp.Results, result)
			continue
		}

		seen, err := s.store.Seen(ctx, action.ActionID)
		if err != nil {
			return nil, err
		}
		if seen {
			// Already applied on an earlier replay; report success so
			// the client clears it.
			result.Applied = true
			result.Reason = "duplicate"
			resp.Results = append(resp.Results, result)
			continue
		}

		if err := s.apply(ctx, companyID, userID, action); err != nil {
			result.Reason = err.Error()
			configs.LogError(s.log, "sync", "Replay", "apply "+action.Kind, err)
			resp.Results = append(resp.Results, result)
			continue
		}

		if err := s.store.Record(ctx, &model.SyncAction{
			ActionID: action.ActionID,
			UserID:   userID,
			Kind:     action.Kind,
		}); err != nil {
			return nil, err
		}
		result.Applied = true
		resp.Results = append(resp.Results, result)
	}
	return resp, nil
}

func (s *SyncService) apply(ctx context.Context, companyID, userID bson.ObjectID, action dto.SyncAction) error {
	switch action.Kind {
	case model.ActionCheckIn:
		var req dto.CheckInReq
		if err := json.Unmarshal(action.Payload, &req); err != nil {
			return fmt.Errorf("%w: bad check_in payload", ErrValidation)
		}
		_, err := s.attendance.CheckIn(ctx, companyID, userID, req)
		if errors.Is(err, ErrDuplicate) {
			return nil
		}
		return err

	case model.ActionCheckOut:
		var req dto.CheckOutReq
		if err := json.Unmarshal(action.Payload, &req); err != nil {
			return fmt.Errorf("%w: bad check_out payload", ErrValidation)
		}
		_, err := s.attendance.CheckOut(ctx, userID, req)
		if errors.Is(err, ErrDuplicate) {
			return nil
		}
		return err

	case model.ActionVisit:
		var p dto.SyncVisitPayload
		if err := json.Unmarshal(action.Payload, &p); err != nil {
			return fmt.Errorf("%w: bad visit payload", ErrValidation)
		}
		targetID, err := bson.ObjectIDFromHex(p.TargetID)
		if err != nil {
			return fmt.Errorf("%w: bad targetId", ErrValidation)
		}
		_, err = s.targets.RecordVisit(ctx, targetID, companyID, userID, dto.RecordVisitReq{
			Outcome: p.Outcome,
			Note:    p.Note,
		})
		return err

	case model.ActionNote:
		var p dto.SyncNotePayload
		if err := json.Unmarshal(action.Payload, &p); err != nil {
			return fmt.Errorf("%w: bad note payload", ErrValidation)
		}
		customerID, err := bson.ObjectIDFromHex(p.CustomerID)
		if err != nil {
			return fmt.Errorf("%w: bad customerId", ErrValidation)
		}
		_, err = s.customers.AddNote(ctx, customerID, companyID, userID, p.Text)
		return err

	default:
		return fmt.Errorf("%w: unknown action kind %q", ErrValidation, action.Kind)
	}
}
