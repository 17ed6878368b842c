package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	dbm "patrolms/internal/models/db_models"
	"patrolms/internal/repositories"
	"patrolms/pkg/utils"
)

// In-memory repository fakes. The patrol fake mirrors the transactional
// contract of the real one: ApplyStateChange applies everything or
// nothing and enforces the version compare-and-swap.

type fakeStore struct {
	mu       sync.Mutex
	patrols map[uuid.UUID]*dbm.Patrol
	logs    []dbm.PatrolLog
	users   map[uuid.UUID]*dbm.User
	locs    map[uuid.UUID]*dbm.Location
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		patrols: make(map[uuid.UUID]*dbm.Patrol),
		users:   make(map[uuid.UUID]*dbm.User),
		locs:    make(map[uuid.UUID]*dbm.Location),
	}
}

func (s *fakeStore) addUser(role dbm.UserRole) uuid.UUID {
	id := uuid.New()
	s.users[id] = &dbm.User{Role: role, Status: dbm.DutyAvailable}
	s.users[id].ID = id
	return id
}

func (s *fakeStore) addLocation() uuid.UUID {
	id := uuid.New()
	s.locs[id] = &dbm.Location{Name: "loc"}
	s.locs[id].ID = id
	return id
}

func (s *fakeStore) logsFor(patrolID uuid.UUID) []dbm.PatrolLog {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []dbm.PatrolLog
	for _, l := range s.logs {
		if l.PatrolID == patrolID {
			out = append(out, l)
		}
	}
	return out
}

func copyPatrol(p *dbm.Patrol) *dbm.Patrol {
	cp := *p
	cp.Officers = append([]dbm.PatrolOfficer(nil), p.Officers...)
	cp.Route = append([]dbm.RouteStop(nil), p.Route...)
	cp.Checkpoints = append([]dbm.Checkpoint(nil), p.Checkpoints...)
	return &cp
}

// --- PatrolRepository ---

type fakePatrolRepo struct{ s *fakeStore }

func (r *fakePatrolRepo) Create(ctx context.Context, patrol *dbm.Patrol) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if patrol.ID == uuid.Nil {
		patrol.ID = uuid.New()
	}
	for i := range patrol.Officers {
		patrol.Officers[i].PatrolID = patrol.ID
		if patrol.Officers[i].ID == uuid.Nil {
			patrol.Officers[i].ID = uuid.New()
		}
	}
	for i := range patrol.Route {
		patrol.Route[i].PatrolID = patrol.ID
		if patrol.Route[i].ID == uuid.Nil {
			patrol.Route[i].ID = uuid.New()
		}
	}
	for i := range patrol.Checkpoints {
		patrol.Checkpoints[i].PatrolID = patrol.ID
		if patrol.Checkpoints[i].ID == uuid.Nil {
			patrol.Checkpoints[i].ID = uuid.New()
		}
	}
	r.s.patrols[patrol.ID] = copyPatrol(patrol)
	return nil
}

func (r *fakePatrolRepo) GetByID(ctx context.Context, id uuid.UUID) (*dbm.Patrol, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.patrols[id]
	if !ok {
		return nil, nil
	}
	return copyPatrol(p), nil
}

func (r *fakePatrolRepo) List(ctx context.Context, filter repositories.PatrolFilter) ([]dbm.Patrol, int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []dbm.Patrol
	for _, p := range r.s.patrols {
		if filter.Status != "" && p.Status != filter.Status {
			continue
		}
		out = append(out, *copyPatrol(p))
	}
	return out, int64(len(out)), nil
}

func (r *fakePatrolRepo) Replace(ctx context.Context, patrol *dbm.Patrol, expectedVersion int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	stored, ok := r.s.patrols[patrol.ID]
	if !ok || stored.Version != expectedVersion {
		return utils.ErrVersionConflict
	}
	next := copyPatrol(patrol)
	next.Version = expectedVersion + 1
	r.s.patrols[patrol.ID] = next
	return nil
}

func (r *fakePatrolRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.patrols, id)
	return nil
}

func (r *fakePatrolRepo) ApplyStateChange(ctx context.Context, change repositories.StateChange) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	stored, ok := r.s.patrols[change.Patrol.ID]
	if !ok {
		return utils.ErrPatrolNotFound
	}
	if stored.Version != change.ExpectedVersion {
		return utils.ErrVersionConflict
	}

	stored.Status = change.Patrol.Status
	stored.EndTime = change.Patrol.EndTime
	stored.Notes = change.Patrol.Notes
	stored.Version = change.ExpectedVersion + 1

	if cp := change.Checkpoint; cp != nil {
		for i := range stored.Checkpoints {
			if stored.Checkpoints[i].ID == cp.ID {
				stored.Checkpoints[i].Status = cp.Status
				stored.Checkpoints[i].ActualTime = cp.ActualTime
				stored.Checkpoints[i].Notes = cp.Notes
			}
		}
	}
	if change.SweepToMissed {
		for i := range stored.Checkpoints {
			if stored.Checkpoints[i].Status == dbm.CheckpointPending {
				stored.Checkpoints[i].Status = dbm.CheckpointMissed
			}
		}
	}
	if change.Log != nil {
		entry := *change.Log
		entry.ID = uuid.New()
		entry.Timestamp = time.Now()
		r.s.logs = append(r.s.logs, entry)
	}
	if os := change.OfficerStatus; os != nil {
		if u, ok := r.s.users[os.OfficerID]; ok {
			u.Status = os.Status
		}
	}
	return nil
}

// --- PatrolLogRepository ---

type fakeLogRepo struct{ s *fakeStore }

func (r *fakeLogRepo) Append(ctx context.Context, entry *dbm.PatrolLog) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	entry.ID = uuid.New()
	entry.Timestamp = time.Now()
	r.s.logs = append(r.s.logs, *entry)
	return nil
}

func (r *fakeLogRepo) ListForPatrol(ctx context.Context, patrolID uuid.UUID) ([]dbm.PatrolLog, error) {
	return r.s.logsFor(patrolID), nil
}

func (r *fakeLogRepo) ListForOfficer(ctx context.Context, officerID uuid.UUID) ([]dbm.PatrolLog, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []dbm.PatrolLog
	for _, l := range r.s.logs {
		if l.OfficerID == officerID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *fakeLogRepo) GetByID(ctx context.Context, id uuid.UUID) (*dbm.PatrolLog, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.logs {
		if r.s.logs[i].ID == id {
			l := r.s.logs[i]
			return &l, nil
		}
	}
	return nil, nil
}

// --- UserRepository ---

type fakeUserRepo struct{ s *fakeStore }

func (r *fakeUserRepo) Insert(ctx context.Context, user *dbm.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email == user.Email {
			return utils.ErrEmailAlreadyExists
		}
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	r.s.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*dbm.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*dbm.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	return u, nil
}

func (r *fakeUserRepo) List(ctx context.Context, role dbm.UserRole) ([]dbm.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []dbm.User
	for _, u := range r.s.users {
		if role == "" || u.Role == role {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) CountExisting(ctx context.Context, ids []uuid.UUID) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	seen := map[uuid.UUID]bool{}
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if _, ok := r.s.users[id]; ok {
			n++
		}
	}
	return n, nil
}

func (r *fakeUserRepo) Update(ctx context.Context, user *dbm.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status dbm.DutyStatus) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if u, ok := r.s.users[id]; ok {
		u.Status = status
	}
	return nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.users, id)
	return nil
}

// --- LocationRepository ---

type fakeLocationRepo struct{ s *fakeStore }

func (r *fakeLocationRepo) Insert(ctx context.Context, location *dbm.Location) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if location.ID == uuid.Nil {
		location.ID = uuid.New()
	}
	r.s.locs[location.ID] = location
	return nil
}

func (r *fakeLocationRepo) GetByID(ctx context.Context, id uuid.UUID) (*dbm.Location, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	l, ok := r.s.locs[id]
	if !ok {
		return nil, nil
	}
	return l, nil
}

func (r *fakeLocationRepo) List(ctx context.Context, activeOnly bool) ([]dbm.Location, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []dbm.Location
	for _, l := range r.s.locs {
		out = append(out, *l)
	}
	return out, nil
}

func (r *fakeLocationRepo) CountExisting(ctx context.Context, ids []uuid.UUID) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	seen := map[uuid.UUID]bool{}
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if _, ok := r.s.locs[id]; ok {
			n++
		}
	}
	return n, nil
}

func (r *fakeLocationRepo) Update(ctx context.Context, location *dbm.Location) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.locs[location.ID] = location
	return nil
}

func (r *fakeLocationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.locs, id)
	return nil
}
