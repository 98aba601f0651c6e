package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/tripnest/tourism-platform/internal/core/domain"
	"github.com/tripnest/tourism-platform/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Credential stores
// ---------------------------------------------------------------------------

type stubCredentialStore struct {
	role      domain.Role
	byKey     map[string]*domain.Account
	findErr   error
	createErr error
	lookups   []string // identifiers passed to FindByIdentifier
	nextID    int
}

func newStubStore(role domain.Role) *stubCredentialStore {
	return &stubCredentialStore{role: role, byKey: make(map[string]*domain.Account)}
}

func (s *stubCredentialStore) Role() domain.Role { return s.role }

func (s *stubCredentialStore) FindByIdentifier(_ context.Context, identifier string) (*domain.Account, error) {
	s.lookups = append(s.lookups, identifier)
	if s.findErr != nil {
		return nil, s.findErr
	}
	acc, ok := s.byKey[identifier]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	clone := *acc
	return &clone, nil
}

func (s *stubCredentialStore) Create(_ context.Context, acc *domain.Account) (*domain.Account, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	key := acc.LoginIdentifier()
	if _, exists := s.byKey[key]; exists {
		return nil, domain.ErrAccountExists
	}
	s.nextID++
	clone := *acc
	clone.ID = fmt.Sprintf("%s-%d", s.role, s.nextID)
	s.byKey[key] = &clone
	out := clone
	return &out, nil
}

// seed inserts an account directly, bypassing the guard.
func (s *stubCredentialStore) seed(id, identifier, hash string) {
	acc := &domain.Account{ID: id, Role: s.role, PasswordHash: hash}
	if s.role.Identifier() == domain.IdentifierUsername {
		acc.Username = identifier
	} else {
		acc.Email = identifier
	}
	s.byKey[identifier] = acc
}

// plainHasher is a transparent hasher so tests can reason about hashes.
type plainHasher struct{ prefix string }

func (h plainHasher) Hash(pw string) (string, error) { return h.prefix + pw, nil }
func (h plainHasher) Verify(hash, pw string) bool    { return hash == h.prefix+pw }

type stubStores map[domain.Role]*stubCredentialStore

func newStubStores() stubStores {
	stores := make(stubStores)
	for _, role := range domain.RolePriority {
		stores[role] = newStubStore(role)
	}
	return stores
}

func (s stubStores) variants() []Variant {
	out := make([]Variant, 0, len(s))
	for _, role := range domain.RolePriority {
		prefix := "bcrypt:"
		if role.Identifier() == domain.IdentifierUsername {
			prefix = "argon2id:"
		}
		out = append(out, Variant{Store: s[role], Hasher: plainHasher{prefix: prefix}})
	}
	return out
}

func (s stubStores) resolver() *IdentityResolver {
	r, err := NewIdentityResolver(s.variants()...)
	if err != nil {
		panic(err)
	}
	return r
}

// ---------------------------------------------------------------------------
// Sessions
// ---------------------------------------------------------------------------

type stubRevoker struct {
	mu      sync.Mutex
	revoked map[string]time.Time
	err     error
}

func newStubRevoker() *stubRevoker {
	return &stubRevoker{revoked: make(map[string]time.Time)}
}

func (r *stubRevoker) Revoke(_ context.Context, id string, exp time.Time) error {
	if r.err != nil {
		return r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.revoked[id] = exp
	return nil
}

func (r *stubRevoker) IsRevoked(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.revoked[id]
	return ok, r.err
}

// ---------------------------------------------------------------------------
// Catalog repositories (mirror the case-insensitive substring semantics of
// the Mongo implementation)
// ---------------------------------------------------------------------------

func containsFold(s, term string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(term))
}

type stubTagRepo struct {
	tags []*domain.Tag
	err  error
}

func (r *stubTagRepo) Create(_ context.Context, t *domain.Tag) (*domain.Tag, error) {
	clone := *t
	clone.ID = fmt.Sprintf("tag-%d", len(r.tags)+1)
	r.tags = append(r.tags, &clone)
	return &clone, nil
}

func (r *stubTagRepo) List(_ context.Context) ([]*domain.Tag, error) { return r.tags, r.err }

func (r *stubTagRepo) MatchIDs(_ context.Context, term string) ([]string, error) {
	if r.err != nil {
		return nil, r.err
	}
	var ids []string
	for _, t := range r.tags {
		if containsFold(t.Type, term) {
			ids = append(ids, t.ID)
		}
	}
	return ids, nil
}

type stubCategoryRepo struct {
	categories []*domain.Category
}

func (r *stubCategoryRepo) Create(_ context.Context, c *domain.Category) (*domain.Category, error) {
	clone := *c
	clone.ID = fmt.Sprintf("cat-%d", len(r.categories)+1)
	r.categories = append(r.categories, &clone)
	return &clone, nil
}

func (r *stubCategoryRepo) List(_ context.Context) ([]*domain.Category, error) {
	return r.categories, nil
}

func (r *stubCategoryRepo) MatchIDs(_ context.Context, term string) ([]string, error) {
	var ids []string
	for _, c := range r.categories {
		if containsFold(c.Name, term) {
			ids = append(ids, c.ID)
		}
	}
	return ids, nil
}

type stubActivityRepo struct {
	activities []*domain.Activity
	scanned    int
	lastMatch  *domain.TextMatch
	scanErr    error
}

func (r *stubActivityRepo) Create(_ context.Context, a *domain.Activity) (*domain.Activity, error) {
	clone := *a
	clone.ID = fmt.Sprintf("act-%d", len(r.activities)+1)
	r.activities = append(r.activities, &clone)
	return &clone, nil
}

func (r *stubActivityRepo) List(_ context.Context) ([]*domain.Activity, error) {
	return append([]*domain.Activity(nil), r.activities...), nil
}

func (r *stubActivityRepo) ScanRefs(_ context.Context, fn func(domain.ActivityRefs) error) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	for _, a := range r.activities {
		r.scanned++
		if err := fn(domain.ActivityRefs{ID: a.ID, TagIDs: a.TagIDs, CategoryIDs: a.CategoryIDs}); err != nil {
			return err
		}
	}
	return nil
}

func (r *stubActivityRepo) FindMatching(_ context.Context, m domain.TextMatch) ([]*domain.Activity, error) {
	r.lastMatch = &m
	ids := make(map[string]struct{}, len(m.IDs))
	for _, id := range m.IDs {
		ids[id] = struct{}{}
	}
	var out []*domain.Activity
	for _, a := range r.activities {
		_, byID := ids[a.ID]
		if byID || containsFold(a.Name, m.Term) || containsFold(a.Location, m.Term) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *stubActivityRepo) FindByAdvertiser(_ context.Context, advertiserID string) ([]*domain.Activity, error) {
	var out []*domain.Activity
	for _, a := range r.activities {
		if a.AdvertiserID == advertiserID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *stubActivityRepo) CountByIDs(_ context.Context, ids []string) (int, error) {
	n := 0
	for _, id := range ids {
		for _, a := range r.activities {
			if a.ID == id {
				n++
				break
			}
		}
	}
	return n, nil
}

type stubItineraryRepo struct {
	itineraries []*domain.Itinerary
	scanned     int
}

func (r *stubItineraryRepo) Create(_ context.Context, it *domain.Itinerary) (*domain.Itinerary, error) {
	clone := *it
	clone.ID = fmt.Sprintf("itin-%d", len(r.itineraries)+1)
	r.itineraries = append(r.itineraries, &clone)
	return &clone, nil
}

func (r *stubItineraryRepo) List(_ context.Context) ([]*domain.Itinerary, error) {
	return append([]*domain.Itinerary(nil), r.itineraries...), nil
}

func (r *stubItineraryRepo) ScanRefs(_ context.Context, fn func(domain.ItineraryRefs) error) error {
	for _, it := range r.itineraries {
		r.scanned++
		if err := fn(domain.ItineraryRefs{ID: it.ID, ActivityIDs: it.ActivityIDs}); err != nil {
			return err
		}
	}
	return nil
}

func (r *stubItineraryRepo) FindMatching(_ context.Context, m domain.TextMatch) ([]*domain.Itinerary, error) {
	ids := make(map[string]struct{}, len(m.IDs))
	for _, id := range m.IDs {
		ids[id] = struct{}{}
	}
	var out []*domain.Itinerary
	for _, it := range r.itineraries {
		_, byID := ids[it.ID]
		if byID || containsFold(it.Title, m.Term) || containsFold(it.Description, m.Term) {
			out = append(out, it)
		}
	}
	return out, nil
}

func (r *stubItineraryRepo) FindByTourGuide(_ context.Context, tourGuideID string) ([]*domain.Itinerary, error) {
	var out []*domain.Itinerary
	for _, it := range r.itineraries {
		if it.TourGuideID == tourGuideID {
			out = append(out, it)
		}
	}
	return out, nil
}

var errStoreDown = errors.New("store unavailable")

var (
	_ ports.CredentialStore     = (*stubCredentialStore)(nil)
	_ ports.TokenRevoker        = (*stubRevoker)(nil)
	_ ports.TagRepository       = (*stubTagRepo)(nil)
	_ ports.CategoryRepository  = (*stubCategoryRepo)(nil)
	_ ports.ActivityRepository  = (*stubActivityRepo)(nil)
	_ ports.ItineraryRepository = (*stubItineraryRepo)(nil)
)
