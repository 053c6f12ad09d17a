package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/anishanishy81-byte/poverse-sub003/dto"
	"github.com/anishanishy81-byte/poverse-sub003/model"
)

type stubSyncStore struct {
	seen map[string]bool
}

func (s *stubSyncStore) Seen(_ context.Context, actionID string) (bool, error) {
	return s.seen[actionID], nil
}

func (s *stubSyncStore) Record(_ context.Context, a *model.SyncAction) error {
	if s.seen == nil {
		s.seen = map[string]bool{}
	}
	s.seen[a.ActionID] = true
	return nil
}

type stubSyncAttendance struct{ checkIns int }

func (s *stubSyncAttendance) CheckIn(context.Context, bson.ObjectID, bson.ObjectID, dto.CheckInReq) (*model.AttendanceRecord, error) {
	s.checkIns++
	return &model.AttendanceRecord{}, nil
}

func (s *stubSyncAttendance) CheckOut(context.Context, bson.ObjectID, dto.CheckOutReq) (*model.AttendanceRecord, error) {
	return &model.AttendanceRecord{}, nil
}

type stubSyncTargets struct{ visits int }

func (s *stubSyncTargets) RecordVisit(context.Context, bson.ObjectID, bson.ObjectID, bson.ObjectID, dto.RecordVisitReq) (*model.Visit, error) {
	s.visits++
	return &model.Visit{}, nil
}

type stubSyncCustomers struct{ notes int }

func (s *stubSyncCustomers) AddNote(context.Context, bson.ObjectID, bson.ObjectID, bson.ObjectID, string) (*model.CustomerNote, error) {
	s.notes++
	return &model.CustomerNote{}, nil
}

func newSyncFixture() (*SyncService, *stubSyncStore, *stubSyncAttendance, *stubSyncTargets) {
	store := &stubSyncStore{}
	attendance := &stubSyncAttendance{}
	targets := &stubSyncTargets{}
	log := logrus.New()
	svc := NewSyncService(store, attendance, targets, &stubSyncCustomers{}, log)
	return svc, store, attendance, targets
}

func TestSyncReplayDedupes(t *testing.T) {
	svc, _, attendance, _ := newSyncFixture()
	actionID := uuid.NewString()
	payload, _ := json.Marshal(dto.CheckInReq{Location: &model.GeoPoint{Lat: 1, Lng: 2}})

	req := dto.SyncReq{Actions: []dto.SyncAction{
		{ActionID: actionID, Kind: model.ActionCheckIn, Payload: payload},
	}}

	resp, err := svc.Replay(context.Background(), bson.NewObjectID(), bson.NewObjectID(), req)
	require.NoError(t, err)
	require.Len(t, resp.Results, 1)
	assert.True(t, resp.Results[0].Applied)
	assert.Equal(t, 1, attendance.checkIns)

	// Replaying the same queue applies nothing new.
	resp, err = svc.Replay(context.Background(), bson.NewObjectID(), bson.NewObjectID(), req)
	require.NoError(t, err)
	assert.True(t, resp.Results[0].Applied)
	assert.Equal(t, "duplicate", resp.Results[0].Reason)
	assert.Equal(t, 1, attendance.checkIns)
}

func TestSyncReplayMixedBatch(t *testing.T) {
	svc, _, _, targets := newSyncFixture()
	visitPayload, _ := json.Marshal(dto.SyncVisitPayload{
		TargetID: bson.NewObjectID().Hex(),
		Outcome:  model.OutcomeInterested,
	})

	req := dto.SyncReq{Actions: []dto.SyncAction{
		{ActionID: uuid.NewString(), Kind: model.ActionVisit, Payload: visitPayload},
		{ActionID: uuid.NewString(), Kind: "teleport", Payload: nil},
		{ActionID: "not-a-uuid", Kind: model.ActionVisit, Payload: visitPayload},
	}}

	resp, err := svc.Replay(context.Background(), bson.NewObjectID(), bson.NewObjectID(), req)
	require.NoError(t, err)
	require.Len(t, resp.Results, 3)

	assert.True(t, resp.Results[0].Applied)
	assert.False(t, resp.Results[1].Applied)
	assert.Contains(t, resp.Results[1].Reason, "unknown action kind")
	assert.False(t, resp.Results[2].Applied)
	assert.Equal(t, "bad actionId", resp.Results[2].Reason)
	assert.Equal(t, 1, targets.visits)
}

func TestSyncReplayFailureDoesNotRecord(t *testing.T) {
	store := &stubSyncStore{}
	log := logrus.New()
	svc := NewSyncService(store, &stubSyncAttendance{}, &stubSyncTargets{}, &stubSyncCustomers{}, log)

	actionID := uuid.NewString()
	req := dto.SyncReq{Actions: []dto.SyncAction{
		{ActionID: actionID, Kind: model.ActionVisit, Payload: json.RawMessage(`{"targetId":"nope"}`)},
	}}

	resp, err := svc.Replay(context.Background(), bson.NewObjectID(), bson.NewObjectID(), req)
	require.NoError(t, err)
	assert.False(t, resp.Results[0].Applied)
	// A failed action stays unrecorded so a fixed client can retry it.
	assert.False(t, store.seen[actionID])
}
