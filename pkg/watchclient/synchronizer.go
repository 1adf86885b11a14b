package watchclient

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"sync"
)

// ErrInFlight is returned when an add for the same film is still running.
var ErrInFlight = errors.New("add already in flight")

type watchAPI interface {
	List(ctx context.Context) ([]Film, error)
	Add(ctx context.Context, tmdbID int64) (bool, error)
	Remove(ctx context.Context, tmdbID int64) error
	ToggleWatched(ctx context.Context, tmdbID int64) error
	SetPoster(ctx context.Context, tmdbID int64, posterPath *string) error
}

// MutationKind names an optimistic operation.
type MutationKind string

const (
	MutationAdd    MutationKind = "add"
	MutationToggle MutationKind = "toggle"
	MutationPoster MutationKind = "poster"
)

// MutationState is the lifecycle of an optimistic mutation:
// Pending, then exactly one of Confirmed or Reverted.
type MutationState int

const (
	Pending MutationState = iota
	Confirmed
	Reverted
)

func (s MutationState) String() string {
	switch s {
	case Pending:
		return "pending"
	case Confirmed:
		return "confirmed"
	case Reverted:
		return "reverted"
	}
	return "unknown"
}

// Mutation is the latest optimistic operation for one film.
type Mutation struct {
	Kind   MutationKind
	TMDBID int64
	State  MutationState
	Err    error

	seq     uint64
	watched bool    // toggle target
	poster  *string // poster target
}

// View is a point-in-time copy of the synchronizer state.
type View struct {
	Films      []Film
	Optimistic []int64
	InFlight   []int64
}

// Synchronizer holds the client's view of the watchlist: the authoritative
// list from the last successful fetch, overlaid with optimistic edits that
// are reconciled when the server answers. Safe for concurrent use.
type Synchronizer struct {
	api  watchAPI
	edit *EditMode
	log  *slog.Logger

	mu         sync.RWMutex
	films      []Film
	fetchSeq   uint64
	appliedSeq uint64
	mutSeq     uint64
	optimistic map[int64]struct{}
	inFlight   map[int64]struct{}
	mutations  map[int64]Mutation
}

// NewSynchronizer creates a Synchronizer. edit may be nil, in which case
// edit-gated operations are always allowed.
func NewSynchronizer(api watchAPI, edit *EditMode, logger *slog.Logger) *Synchronizer {
	return &Synchronizer{
		api:        api,
		edit:       edit,
		log:        logger.With("component", "synchronizer"),
		films:      []Film{},
		optimistic: make(map[int64]struct{}),
		inFlight:   make(map[int64]struct{}),
		mutations:  make(map[int64]Mutation),
	}
}

// Refresh replaces the authoritative list with a fresh fetch. On error the
// previous list is kept. A fetch that completes after a newer one started
// and was applied is discarded. Pending toggle and poster edits stay
// overlaid on the fetched list until they settle.
func (s *Synchronizer) Refresh(ctx context.Context) error {
	s.mu.Lock()
	s.fetchSeq++
	seq := s.fetchSeq
	s.mu.Unlock()

	films, err := s.api.List(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq < s.appliedSeq {
		return nil
	}
	s.films = films
	s.appliedSeq = seq
	s.overlayPending()
	return nil
}

// Add marks the film as in the watchlist immediately, then asks the server.
// On success the list is refetched and every optimistic id now present in it
// is dropped; on failure the optimistic id is removed.
func (s *Synchronizer) Add(ctx context.Context, tmdbID int64) error {
	s.mu.Lock()
	if _, busy := s.inFlight[tmdbID]; busy {
		s.mu.Unlock()
		return ErrInFlight
	}
	s.optimistic[tmdbID] = struct{}{}
	s.inFlight[tmdbID] = struct{}{}
	seq := s.begin(Mutation{Kind: MutationAdd, TMDBID: tmdbID})
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.inFlight, tmdbID)
		s.mu.Unlock()
	}()

	if _, err := s.api.Add(ctx, tmdbID); err != nil {
		s.mu.Lock()
		delete(s.optimistic, tmdbID)
		s.settle(tmdbID, seq, Reverted, err)
		s.mu.Unlock()
		return err
	}

	s.mu.Lock()
	s.settle(tmdbID, seq, Confirmed, nil)
	s.mu.Unlock()

	if err := s.Refresh(ctx); err != nil {
		// The id stays optimistic until a later refresh lists it.
		s.log.WarnContext(ctx, "refresh after add failed",
			slog.Int64("tmdb_id", tmdbID),
			slog.String("error", err.Error()),
		)
		return nil
	}

	s.mu.Lock()
	for _, f := range s.films {
		delete(s.optimistic, f.TMDBID)
	}
	s.mu.Unlock()
	return nil
}

// ToggleWatched flips the local flag, then asks the server. On failure the
// flag goes back to the value it had before, unless a newer edit of the
// same film has started since.
func (s *Synchronizer) ToggleWatched(ctx context.Context, tmdbID int64) error {
	if err := s.requireEdit(); err != nil {
		return err
	}

	s.mu.Lock()
	target := true
	if i := s.index(tmdbID); i >= 0 {
		target = !s.films[i].Watched
	}
	seq := s.begin(Mutation{Kind: MutationToggle, TMDBID: tmdbID, watched: target})
	s.setWatched(tmdbID, target)
	s.mu.Unlock()

	err := s.api.ToggleWatched(ctx, tmdbID)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		if s.settle(tmdbID, seq, Reverted, err) {
			s.setWatched(tmdbID, !target)
		}
		return err
	}
	if s.settle(tmdbID, seq, Confirmed, nil) {
		s.setWatched(tmdbID, target)
	}
	return nil
}

// SetPoster overwrites the local poster, then asks the server. The previous
// value is not kept: on failure the whole list is refetched.
func (s *Synchronizer) SetPoster(ctx context.Context, tmdbID int64, posterPath *string) error {
	if err := s.requireEdit(); err != nil {
		return err
	}

	s.mu.Lock()
	seq := s.begin(Mutation{Kind: MutationPoster, TMDBID: tmdbID, poster: posterPath})
	s.setPoster(tmdbID, posterPath)
	s.mu.Unlock()

	err := s.api.SetPoster(ctx, tmdbID, posterPath)
	if err == nil {
		s.mu.Lock()
		if s.settle(tmdbID, seq, Confirmed, nil) {
			s.setPoster(tmdbID, posterPath)
		}
		s.mu.Unlock()
		return nil
	}

	s.mu.Lock()
	s.settle(tmdbID, seq, Reverted, err)
	s.mu.Unlock()

	if rerr := s.Refresh(ctx); rerr != nil {
		s.log.WarnContext(ctx, "reconcile after poster failure",
			slog.Int64("tmdb_id", tmdbID),
			slog.String("error", rerr.Error()),
		)
	}
	return err
}

// Remove deletes the film on the server, then refetches the list.
func (s *Synchronizer) Remove(ctx context.Context, tmdbID int64) error {
	if err := s.requireEdit(); err != nil {
		return err
	}
	if err := s.api.Remove(ctx, tmdbID); err != nil {
		return err
	}
	return s.Refresh(ctx)
}

// InWatchlist reports authoritative or optimistic membership.
func (s *Synchronizer) InWatchlist(tmdbID int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.optimistic[tmdbID]; ok {
		return true
	}
	return s.index(tmdbID) >= 0
}

// Adding reports whether an add for the film is awaiting the server.
func (s *Synchronizer) Adding(tmdbID int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.inFlight[tmdbID]
	return ok
}

// LastMutation returns the most recent optimistic mutation for a film.
func (s *Synchronizer) LastMutation(tmdbID int64) (Mutation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.mutations[tmdbID]
	return m, ok
}

// Snapshot returns a copy of the current view.
func (s *Synchronizer) Snapshot() View {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return View{
		Films:      slices.Clone(s.films),
		Optimistic: sortedKeys(s.optimistic),
		InFlight:   sortedKeys(s.inFlight),
	}
}

func (s *Synchronizer) requireEdit() error {
	if s.edit != nil && !s.edit.Unlocked() {
		return ErrEditLocked
	}
	return nil
}

// begin records m as the pending mutation of its film and returns its
// sequence number. Callers hold s.mu.
func (s *Synchronizer) begin(m Mutation) uint64 {
	s.mutSeq++
	m.seq = s.mutSeq
	m.State = Pending
	s.mutations[m.TMDBID] = m
	return m.seq
}

// settle moves the pending mutation seq to its final state. It reports false
// when a newer mutation of the film has replaced it. Callers hold s.mu.
func (s *Synchronizer) settle(tmdbID int64, seq uint64, state MutationState, err error) bool {
	m, ok := s.mutations[tmdbID]
	if !ok || m.seq != seq || m.State != Pending {
		return false
	}
	m.State = state
	m.Err = err
	s.mutations[tmdbID] = m
	return true
}

// overlayPending re-applies unsettled edits to a freshly fetched list.
// Callers hold s.mu.
func (s *Synchronizer) overlayPending() {
	for id, m := range s.mutations {
		if m.State != Pending {
			continue
		}
		switch m.Kind {
		case MutationToggle:
			s.setWatched(id, m.watched)
		case MutationPoster:
			s.setPoster(id, m.poster)
		}
	}
}

func (s *Synchronizer) setWatched(tmdbID int64, watched bool) {
	if i := s.index(tmdbID); i >= 0 {
		s.films[i].Watched = watched
	}
}

func (s *Synchronizer) setPoster(tmdbID int64, posterPath *string) {
	if i := s.index(tmdbID); i >= 0 {
		s.films[i].PosterPath = posterPath
	}
}

func (s *Synchronizer) index(tmdbID int64) int {
	return slices.IndexFunc(s.films, func(f Film) bool { return f.TMDBID == tmdbID })
}

func sortedKeys(m map[int64]struct{}) []int64 {
	keys := make([]int64, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
