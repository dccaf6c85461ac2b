package event

import (
	"context"
	"sync"
	"testing"
	"time"

	slotRepo "slotswapper/database/repository/slot"
	"slotswapper/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

type fakeSlotRepo struct {
	mu    sync.Mutex
	slots map[string]*models.Slot
}

func newFakeSlotRepo() *fakeSlotRepo {
	return &fakeSlotRepo{slots: make(map[string]*models.Slot)}
}

func (f *fakeSlotRepo) add(id, owner string, status models.SlotStatus) {
	f.slots[id] = &models.Slot{
		ID:        id,
		OwnerID:   owner,
		Title:     "slot " + id,
		StartTime: time.Now(),
		EndTime:   time.Now().Add(time.Hour),
		Status:    status,
	}
}

func (f *fakeSlotRepo) Create(slot *models.Slot) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *slot
	f.slots[slot.ID] = &cp
	return nil
}

func (f *fakeSlotRepo) GetByID(id string) (*models.Slot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.slots[id]
	if !ok {
		return nil, slotRepo.ErrNotFound
	}
	cp := *s
	return &cp, nil
}

func (f *fakeSlotRepo) ListByOwner(ownerID string) ([]models.Slot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Slot
	for _, s := range f.slots {
		if s.OwnerID == ownerID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *fakeSlotRepo) ListSwappable(excludeOwnerID string) ([]models.MarketplaceSlot, error) {
	return nil, nil
}

func (f *fakeSlotRepo) UpdateOwned(id, ownerID string, set bson.M) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.slots[id]
	if !ok || s.OwnerID != ownerID {
		return slotRepo.ErrNotFound
	}
	if s.Status == models.SlotSwapPending {
		return slotRepo.ErrSlotLocked
	}
	if v, ok := set["title"]; ok {
		s.Title = v.(string)
	}
	if v, ok := set["start_time"]; ok {
		s.StartTime = v.(time.Time)
	}
	if v, ok := set["end_time"]; ok {
		s.EndTime = v.(time.Time)
	}
	if v, ok := set["status"]; ok {
		s.Status = v.(models.SlotStatus)
	}
	return nil
}

func (f *fakeSlotRepo) DeleteOwned(id, ownerID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.slots[id]
	if !ok || s.OwnerID != ownerID {
		return slotRepo.ErrNotFound
	}
	if s.Status == models.SlotSwapPending {
		return slotRepo.ErrSlotLocked
	}
	delete(f.slots, id)
	return nil
}

func strPtr(s string) *string { return &s }

func statusPtr(s models.SlotStatus) *models.SlotStatus { return &s }

func timePtr(t time.Time) *time.Time { return &t }

func TestCreateEvent(t *testing.T) {
	repo := newFakeSlotRepo()
	svc := &DefaultEventService{Slots: repo}

	start := time.Now()
	slot, err := svc.Create(context.Background(), "alice", CreateEventInput{
		Title:     "dentist",
		StartTime: start,
		EndTime:   start.Add(time.Hour),
	})
	require.NoError(t, err)
	assert.Equal(t, "alice", slot.OwnerID)
	assert.Equal(t, models.SlotBusy, slot.Status, "new slots start BUSY")
	assert.NotEmpty(t, slot.ID)
}

func TestCreateEventValidation(t *testing.T) {
	svc := &DefaultEventService{Slots: newFakeSlotRepo()}
	start := time.Now()

	_, err := svc.Create(context.Background(), "alice", CreateEventInput{
		Title: "", StartTime: start, EndTime: start.Add(time.Hour),
	})
	assert.Equal(t, CodeInvalidArgument, ErrorCode(err))

	_, err = svc.Create(context.Background(), "alice", CreateEventInput{
		Title: "x", StartTime: start, EndTime: start,
	})
	assert.Equal(t, CodeInvalidArgument, ErrorCode(err))
}

func TestUpdateEventToggle(t *testing.T) {
	repo := newFakeSlotRepo()
	repo.add("s1", "alice", models.SlotBusy)
	svc := &DefaultEventService{Slots: repo}

	slot, err := svc.Update(context.Background(), "alice", "s1", UpdateEventInput{
		Status: statusPtr(models.SlotSwappable),
	})
	require.NoError(t, err)
	assert.Equal(t, models.SlotSwappable, slot.Status)

	slot, err = svc.Update(context.Background(), "alice", "s1", UpdateEventInput{
		Status: statusPtr(models.SlotBusy),
	})
	require.NoError(t, err)
	assert.Equal(t, models.SlotBusy, slot.Status)
}

func TestUpdateEventRejectsPendingStatus(t *testing.T) {
	repo := newFakeSlotRepo()
	repo.add("s1", "alice", models.SlotBusy)
	svc := &DefaultEventService{Slots: repo}

	_, err := svc.Update(context.Background(), "alice", "s1", UpdateEventInput{
		Status: statusPtr(models.SlotSwapPending),
	})
	require.Error(t, err)
	assert.Equal(t, CodeInvalidArgument, ErrorCode(err), "SWAP_PENDING is engine-only")
}

func TestUpdateLockedSlotRefused(t *testing.T) {
	repo := newFakeSlotRepo()
	repo.add("s1", "alice", models.SlotSwapPending)
	svc := &DefaultEventService{Slots: repo}

	_, err := svc.Update(context.Background(), "alice", "s1", UpdateEventInput{
		Title: strPtr("new title"),
	})
	require.Error(t, err)
	assert.Equal(t, CodeSlotLocked, ErrorCode(err))

	got, _ := repo.GetByID("s1")
	assert.Equal(t, "slot s1", got.Title, "locked slot must be untouched")
}

func TestUpdateEventTimeOrdering(t *testing.T) {
	repo := newFakeSlotRepo()
	repo.add("s1", "alice", models.SlotBusy)
	svc := &DefaultEventService{Slots: repo}

	now := time.Now()
	_, err := svc.Update(context.Background(), "alice", "s1", UpdateEventInput{
		StartTime: timePtr(now.Add(time.Hour)),
		EndTime:   timePtr(now),
	})
	require.Error(t, err)
	assert.Equal(t, CodeInvalidArgument, ErrorCode(err))
}

func TestDeleteEvent(t *testing.T) {
	repo := newFakeSlotRepo()
	repo.add("s1", "alice", models.SlotBusy)
	repo.add("s2", "alice", models.SlotSwapPending)
	repo.add("s3", "bob", models.SlotBusy)
	svc := &DefaultEventService{Slots: repo}

	require.NoError(t, svc.Delete(context.Background(), "alice", "s1"))

	err := svc.Delete(context.Background(), "alice", "s2")
	assert.Equal(t, CodeSlotLocked, ErrorCode(err), "pending slot cannot be deleted")

	err = svc.Delete(context.Background(), "alice", "s3")
	assert.Equal(t, CodeNotFound, ErrorCode(err), "cannot delete another user's slot")
}
