package swap

import (
	"context"
	"sync"
	"testing"
	"time"

	slotRepo "slotswapper/database/repository/slot"
	swapRepo "slotswapper/database/repository/swap"
	"slotswapper/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

// fakeStore implements both repository interfaces in memory. Conditional
// writes are guarded by one mutex, mirroring the compare-and-swap
// semantics the Mongo transactions provide.
type fakeStore struct {
	mu    sync.Mutex
	slots map[string]*models.Slot
	reqs  map[string]*models.SwapRequest
	users map[string]models.PublicProfile
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		slots: make(map[string]*models.Slot),
		reqs:  make(map[string]*models.SwapRequest),
		users: make(map[string]models.PublicProfile),
	}
}

func (f *fakeStore) addUser(id, name string) {
	f.users[id] = models.PublicProfile{ID: id, Name: name, Email: name + "@example.com"}
}

func (f *fakeStore) addSlot(id, owner string, status models.SlotStatus) {
	f.slots[id] = &models.Slot{
		ID:        id,
		OwnerID:   owner,
		Title:     "slot " + id,
		StartTime: time.Now(),
		EndTime:   time.Now().Add(time.Hour),
		Status:    status,
	}
}

// SlotRepository

func (f *fakeStore) Create(slot *models.Slot) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *slot
	f.slots[slot.ID] = &cp
	return nil
}

func (f *fakeStore) GetByID(id string) (*models.Slot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.slots[id]
	if !ok {
		return nil, slotRepo.ErrNotFound
	}
	cp := *s
	return &cp, nil
}

func (f *fakeStore) ListByOwner(ownerID string) ([]models.Slot, error) {
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

func (f *fakeStore) ListSwappable(excludeOwnerID string) ([]models.MarketplaceSlot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.MarketplaceSlot
	for _, s := range f.slots {
		if s.Status != models.SlotSwappable || s.OwnerID == excludeOwnerID {
			continue
		}
		out = append(out, models.MarketplaceSlot{
			ID:        s.ID,
			Title:     s.Title,
			StartTime: s.StartTime,
			EndTime:   s.EndTime,
			Status:    s.Status,
			Owner:     f.users[s.OwnerID],
		})
	}
	return out, nil
}

func (f *fakeStore) UpdateOwned(id, ownerID string, set bson.M) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.slots[id]
	if !ok || s.OwnerID != ownerID {
		return slotRepo.ErrNotFound
	}
	if s.Status == models.SlotSwapPending {
		return slotRepo.ErrSlotLocked
	}
	if v, ok := set["status"]; ok {
		s.Status = v.(models.SlotStatus)
	}
	if v, ok := set["title"]; ok {
		s.Title = v.(string)
	}
	return nil
}

func (f *fakeStore) DeleteOwned(id, ownerID string) error {
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

// SwapRepository

func (f *fakeStore) ProposeSwap(ctx context.Context, req *models.SwapRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	mine, ok := f.slots[req.RequesterSlotID]
	if !ok || mine.OwnerID != req.RequesterUserID || mine.Status != models.SlotSwappable {
		return swapRepo.ErrSlotUnavailable
	}
	theirs, ok := f.slots[req.TargetSlotID]
	if !ok || theirs.OwnerID != req.TargetUserID || theirs.Status != models.SlotSwappable {
		return swapRepo.ErrSlotUnavailable
	}

	mine.Status = models.SlotSwapPending
	theirs.Status = models.SlotSwapPending
	cp := *req
	f.reqs[req.ID] = &cp
	return nil
}

func (f *fakeStore) ResolveSwap(ctx context.Context, requestID, targetUserID string, accept bool) (*models.SwapRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	req, ok := f.reqs[requestID]
	if !ok || req.TargetUserID != targetUserID {
		return nil, swapRepo.ErrRequestNotFound
	}
	if req.Status != models.RequestPending {
		return nil, swapRepo.ErrAlreadyResolved
	}

	if accept {
		req.Status = models.RequestAccepted
		f.slots[req.RequesterSlotID].OwnerID = req.TargetUserID
		f.slots[req.RequesterSlotID].Status = models.SlotBusy
		f.slots[req.TargetSlotID].OwnerID = req.RequesterUserID
		f.slots[req.TargetSlotID].Status = models.SlotBusy
	} else {
		req.Status = models.RequestRejected
		f.slots[req.RequesterSlotID].Status = models.SlotSwappable
		f.slots[req.TargetSlotID].Status = models.SlotSwappable
	}
	cp := *req
	return &cp, nil
}

func (f *fakeStore) GetRequestByID(id string) (*models.SwapRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	req, ok := f.reqs[id]
	if !ok {
		return nil, swapRepo.ErrRequestNotFound
	}
	cp := *req
	return &cp, nil
}

func (f *fakeStore) ListIncoming(userID string) ([]models.SwapRequestView, error) {
	return f.listViews(func(r *models.SwapRequest) (bool, string) {
		return r.TargetUserID == userID, r.RequesterUserID
	})
}

func (f *fakeStore) ListOutgoing(userID string) ([]models.SwapRequestView, error) {
	return f.listViews(func(r *models.SwapRequest) (bool, string) {
		return r.RequesterUserID == userID, r.TargetUserID
	})
}

func (f *fakeStore) listViews(match func(*models.SwapRequest) (bool, string)) ([]models.SwapRequestView, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.SwapRequestView
	for _, r := range f.reqs {
		ok, counterparty := match(r)
		if !ok {
			continue
		}
		out = append(out, models.SwapRequestView{
			ID:            r.ID,
			Status:        r.Status,
			CreatedAt:     r.CreatedAt,
			RequesterSlot: *f.slots[r.RequesterSlotID],
			TargetSlot:    *f.slots[r.TargetSlotID],
			Counterparty:  f.users[counterparty],
		})
	}
	return out, nil
}

// swapSide adapts fakeStore to SwapRepository, resolving the GetByID name
// collision between the two interfaces.
type swapSide struct{ *fakeStore }

func (s swapSide) GetByID(id string) (*models.SwapRequest, error) {
	return s.GetRequestByID(id)
}

func newService() (*DefaultSwapService, *fakeStore) {
	store := newFakeStore()
	return &DefaultSwapService{Slots: store, Swaps: swapSide{store}}, store
}

func TestProposeSwapHappyPath(t *testing.T) {
	svc, store := newService()
	store.addUser("alice", "Alice")
	store.addUser("bob", "Bob")
	store.addSlot("s1", "alice", models.SlotSwappable)
	store.addSlot("s2", "bob", models.SlotSwappable)

	req, err := svc.ProposeSwap(context.Background(), "alice", "s1", "s2")
	require.NoError(t, err)
	require.NotNil(t, req)

	assert.Equal(t, models.RequestPending, req.Status)
	assert.Equal(t, "alice", req.RequesterUserID)
	assert.Equal(t, "bob", req.TargetUserID)
	assert.Equal(t, "s2", req.TargetSlotID)
	assert.NotEmpty(t, req.ID)

	s1, _ := store.GetByID("s1")
	s2, _ := store.GetByID("s2")
	assert.Equal(t, models.SlotSwapPending, s1.Status)
	assert.Equal(t, models.SlotSwapPending, s2.Status)
}

func TestProposeSwapValidation(t *testing.T) {
	svc, store := newService()
	store.addUser("alice", "Alice")
	store.addUser("bob", "Bob")
	store.addSlot("s1", "alice", models.SlotSwappable)
	store.addSlot("s2", "bob", models.SlotSwappable)
	store.addSlot("s3", "alice", models.SlotSwappable)
	store.addSlot("busy", "bob", models.SlotBusy)

	tests := []struct {
		name     string
		caller   string
		mySlot   string
		theirs   string
		wantCode string
	}{
		{"same slot on both sides", "alice", "s1", "s1", CodeInvalidArgument},
		{"missing my slot", "alice", "nope", "s2", CodeNotFound},
		{"missing their slot", "alice", "s1", "nope", CodeNotFound},
		{"my slot owned by someone else", "alice", "s2", "s1", CodeNotFound},
		{"both slots mine", "alice", "s1", "s3", CodeInvalidArgument},
		{"their slot not swappable", "alice", "s1", "busy", CodeSlotUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ProposeSwap(context.Background(), tt.caller, tt.mySlot, tt.theirs)
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, ErrorCode(err))
		})
	}
}

func TestProposeSwapMySlotNotOffered(t *testing.T) {
	svc, store := newService()
	store.addSlot("s1", "alice", models.SlotBusy)
	store.addSlot("s2", "bob", models.SlotSwappable)

	_, err := svc.ProposeSwap(context.Background(), "alice", "s1", "s2")
	require.Error(t, err)
	assert.Equal(t, CodeSlotUnavailable, ErrorCode(err))
}

func TestProposeSwapAgainstPendingSlot(t *testing.T) {
	svc, store := newService()
	store.addSlot("s1", "alice", models.SlotSwappable)
	store.addSlot("s2", "bob", models.SlotSwappable)
	store.addSlot("s3", "carol", models.SlotSwappable)

	_, err := svc.ProposeSwap(context.Background(), "alice", "s1", "s2")
	require.NoError(t, err)

	// s2 is now locked; carol's attempt against it must lose.
	_, err = svc.ProposeSwap(context.Background(), "carol", "s3", "s2")
	require.Error(t, err)
	assert.Equal(t, CodeSlotUnavailable, ErrorCode(err))

	s3, _ := store.GetByID("s3")
	assert.Equal(t, models.SlotSwappable, s3.Status, "loser's slot must stay untouched")
}

func TestProposeSwapConcurrentSameTarget(t *testing.T) {
	svc, store := newService()
	store.addSlot("a1", "alice", models.SlotSwappable)
	store.addSlot("b1", "bob", models.SlotSwappable)
	store.addSlot("c1", "carol", models.SlotSwappable)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, errs[0] = svc.ProposeSwap(context.Background(), "alice", "a1", "c1")
	}()
	go func() {
		defer wg.Done()
		_, errs[1] = svc.ProposeSwap(context.Background(), "bob", "b1", "c1")
	}()
	wg.Wait()

	var wins, losses int
	for _, err := range errs {
		if err == nil {
			wins++
		} else {
			assert.Equal(t, CodeSlotUnavailable, ErrorCode(err))
			losses++
		}
	}
	assert.Equal(t, 1, wins, "exactly one proposal must win")
	assert.Equal(t, 1, losses)

	c1, _ := store.GetByID("c1")
	assert.Equal(t, models.SlotSwapPending, c1.Status)

	pending := 0
	for _, r := range store.reqs {
		if r.Status == models.RequestPending && (r.RequesterSlotID == "c1" || r.TargetSlotID == "c1") {
			pending++
		}
	}
	assert.Equal(t, 1, pending, "exactly one pending request may reference the slot")
}

func TestRespondToSwapAccept(t *testing.T) {
	svc, store := newService()
	store.addSlot("s1", "alice", models.SlotSwappable)
	store.addSlot("s2", "bob", models.SlotSwappable)

	req, err := svc.ProposeSwap(context.Background(), "alice", "s1", "s2")
	require.NoError(t, err)

	resolved, err := svc.RespondToSwap(context.Background(), "bob", req.ID, true)
	require.NoError(t, err)
	assert.Equal(t, models.RequestAccepted, resolved.Status)

	s1, _ := store.GetByID("s1")
	s2, _ := store.GetByID("s2")
	assert.Equal(t, "bob", s1.OwnerID, "requester slot transfers to target user")
	assert.Equal(t, "alice", s2.OwnerID, "target slot transfers to requester")
	assert.Equal(t, models.SlotBusy, s1.Status)
	assert.Equal(t, models.SlotBusy, s2.Status)
}

func TestRespondToSwapReject(t *testing.T) {
	svc, store := newService()
	store.addSlot("s1", "alice", models.SlotSwappable)
	store.addSlot("s2", "bob", models.SlotSwappable)

	req, err := svc.ProposeSwap(context.Background(), "alice", "s1", "s2")
	require.NoError(t, err)

	resolved, err := svc.RespondToSwap(context.Background(), "bob", req.ID, false)
	require.NoError(t, err)
	assert.Equal(t, models.RequestRejected, resolved.Status)

	s1, _ := store.GetByID("s1")
	s2, _ := store.GetByID("s2")
	assert.Equal(t, "alice", s1.OwnerID, "ownership unchanged on reject")
	assert.Equal(t, "bob", s2.OwnerID)
	assert.Equal(t, models.SlotSwappable, s1.Status)
	assert.Equal(t, models.SlotSwappable, s2.Status)
}

func TestRespondToSwapTwice(t *testing.T) {
	svc, store := newService()
	store.addSlot("s1", "alice", models.SlotSwappable)
	store.addSlot("s2", "bob", models.SlotSwappable)

	req, err := svc.ProposeSwap(context.Background(), "alice", "s1", "s2")
	require.NoError(t, err)

	_, err = svc.RespondToSwap(context.Background(), "bob", req.ID, true)
	require.NoError(t, err)

	_, err = svc.RespondToSwap(context.Background(), "bob", req.ID, false)
	require.Error(t, err)
	assert.Equal(t, CodeInvalidState, ErrorCode(err))

	// The second response must not have touched the exchanged slots.
	s1, _ := store.GetByID("s1")
	s2, _ := store.GetByID("s2")
	assert.Equal(t, "bob", s1.OwnerID)
	assert.Equal(t, "alice", s2.OwnerID)
	assert.Equal(t, models.SlotBusy, s1.Status)
	assert.Equal(t, models.SlotBusy, s2.Status)
}

func TestRespondToSwapConcurrentDouble(t *testing.T) {
	svc, store := newService()
	store.addSlot("s1", "alice", models.SlotSwappable)
	store.addSlot("s2", "bob", models.SlotSwappable)

	req, err := svc.ProposeSwap(context.Background(), "alice", "s1", "s2")
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	wg.Add(2)
	for i := 0; i < 2; i++ {
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.RespondToSwap(context.Background(), "bob", req.ID, true)
		}(i)
	}
	wg.Wait()

	var wins int
	for _, err := range errs {
		if err == nil {
			wins++
		} else {
			assert.Equal(t, CodeInvalidState, ErrorCode(err))
		}
	}
	assert.Equal(t, 1, wins, "exactly one response performs the transition")
}

func TestRespondToSwapWrongResponder(t *testing.T) {
	svc, store := newService()
	store.addSlot("s1", "alice", models.SlotSwappable)
	store.addSlot("s2", "bob", models.SlotSwappable)

	req, err := svc.ProposeSwap(context.Background(), "alice", "s1", "s2")
	require.NoError(t, err)

	// Only the target user may respond; even the requester is a stranger here.
	_, err = svc.RespondToSwap(context.Background(), "alice", req.ID, true)
	require.Error(t, err)
	assert.Equal(t, CodeNotFound, ErrorCode(err))

	_, err = svc.RespondToSwap(context.Background(), "bob", "missing", true)
	require.Error(t, err)
	assert.Equal(t, CodeNotFound, ErrorCode(err))
}

func TestListSwappableExcludesCaller(t *testing.T) {
	svc, store := newService()
	store.addUser("alice", "Alice")
	store.addUser("bob", "Bob")
	store.addSlot("s1", "alice", models.SlotSwappable)
	store.addSlot("s2", "bob", models.SlotSwappable)
	store.addSlot("s3", "bob", models.SlotBusy)

	slots, err := svc.ListSwappable(context.Background(), "alice")
	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.Equal(t, "s2", slots[0].ID)
	assert.Equal(t, "Bob", slots[0].Owner.Name)

	// A user with nothing to browse gets an empty list, not nil.
	slots, err = svc.ListSwappable(context.Background(), "carol")
	require.NoError(t, err)
	assert.Len(t, slots, 2)
}

func TestListRequestsGroupsByDirection(t *testing.T) {
	svc, store := newService()
	store.addUser("alice", "Alice")
	store.addUser("bob", "Bob")
	store.addSlot("s1", "alice", models.SlotSwappable)
	store.addSlot("s2", "bob", models.SlotSwappable)

	req, err := svc.ProposeSwap(context.Background(), "alice", "s1", "s2")
	require.NoError(t, err)

	aliceInbox, err := svc.ListRequests(context.Background(), "alice")
	require.NoError(t, err)
	require.Len(t, aliceInbox.Outgoing, 1)
	assert.Empty(t, aliceInbox.Incoming)
	assert.Equal(t, req.ID, aliceInbox.Outgoing[0].ID)
	assert.Equal(t, "Bob", aliceInbox.Outgoing[0].Counterparty.Name)

	bobInbox, err := svc.ListRequests(context.Background(), "bob")
	require.NoError(t, err)
	require.Len(t, bobInbox.Incoming, 1)
	assert.Empty(t, bobInbox.Outgoing)
	assert.Equal(t, "Alice", bobInbox.Incoming[0].Counterparty.Name)

	// Views reflect current slot state.
	assert.Equal(t, models.SlotSwapPending, bobInbox.Incoming[0].TargetSlot.Status)
}
