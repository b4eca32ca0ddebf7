package repositories

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/Dosada05/chess-registry/models"
)

// MemoryStore keeps every collection in process memory. It backs the memory storage
// driver used for local development and tests; data is lost on restart.
type MemoryStore struct {
	mu          sync.RWMutex
	federations []models.Federation
	players     []models.Player
	tournaments []models.Tournament
	results     []models.TournamentResult
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Ping always succeeds; it lets the store satisfy the readiness check.
func (s *MemoryStore) Ping(ctx context.Context) error {
	return ctx.Err()
}

func containsFold(value, search string) bool {
	return strings.Contains(strings.ToLower(value), strings.ToLower(search))
}

func cloneInt(v *int) *int {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func clonePlayer(p models.Player) models.Player {
	p.BirthYear = cloneInt(p.BirthYear)
	return p
}

func cloneResult(r models.TournamentResult) models.TournamentResult {
	r.PerformanceRating = cloneInt(r.PerformanceRating)
	return r
}

func capLimit(n, limit int) int {
	if limit >= 0 && n > limit {
		return limit
	}
	return n
}

type memoryFederationRepository struct{ s *MemoryStore }

func NewMemoryFederationRepository(s *MemoryStore) FederationRepository {
	return &memoryFederationRepository{s: s}
}

func (r *memoryFederationRepository) Create(ctx context.Context, f *models.Federation) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.federations {
		if existing.Code == f.Code {
			return ErrFederationCodeConflict
		}
	}
	r.s.federations = append(r.s.federations, *f)
	return nil
}

func (r *memoryFederationRepository) GetByCode(ctx context.Context, code string) (*models.Federation, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, f := range r.s.federations {
		if f.Code == code {
			found := f
			return &found, nil
		}
	}
	return nil, ErrFederationNotFound
}

func (r *memoryFederationRepository) List(ctx context.Context, search string, limit int) ([]models.Federation, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	federations := make([]models.Federation, 0)
	for _, f := range r.s.federations {
		if search == "" || containsFold(f.Name, search) || containsFold(f.Code, search) {
			federations = append(federations, f)
		}
	}
	return federations[:capLimit(len(federations), limit)], nil
}

type memoryPlayerRepository struct{ s *MemoryStore }

func NewMemoryPlayerRepository(s *MemoryStore) PlayerRepository {
	return &memoryPlayerRepository{s: s}
}

func (r *memoryPlayerRepository) Create(ctx context.Context, p *models.Player) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.players = append(r.s.players, clonePlayer(*p))
	return nil
}

func (r *memoryPlayerRepository) indexOf(id string) int {
	for i, p := range r.s.players {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func (r *memoryPlayerRepository) GetByID(ctx context.Context, id string) (*models.Player, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	i := r.indexOf(id)
	if i < 0 {
		return nil, ErrPlayerNotFound
	}
	p := clonePlayer(r.s.players[i])
	return &p, nil
}

func (r *memoryPlayerRepository) List(ctx context.Context, search string, limit int) ([]models.Player, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	players := make([]models.Player, 0)
	for _, p := range r.s.players {
		if search == "" || containsFold(p.Name, search) {
			players = append(players, clonePlayer(p))
		}
	}
	return players[:capLimit(len(players), limit)], nil
}

func (r *memoryPlayerRepository) Update(ctx context.Context, p *models.Player) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	i := r.indexOf(p.ID)
	if i < 0 {
		return ErrPlayerNotFound
	}
	stored := &r.s.players[i]
	stored.Name = p.Name
	stored.Federation = p.Federation
	stored.Rating = p.Rating
	stored.Title = p.Title
	stored.BirthYear = cloneInt(p.BirthYear)
	return nil
}

func (r *memoryPlayerRepository) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	i := r.indexOf(id)
	if i < 0 {
		return ErrPlayerNotFound
	}
	r.s.players = append(r.s.players[:i], r.s.players[i+1:]...)
	return nil
}

type memoryTournamentRepository struct{ s *MemoryStore }

func NewMemoryTournamentRepository(s *MemoryStore) TournamentRepository {
	return &memoryTournamentRepository{s: s}
}

func (r *memoryTournamentRepository) Create(ctx context.Context, t *models.Tournament) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.tournaments = append(r.s.tournaments, *t)
	return nil
}

func (r *memoryTournamentRepository) indexOf(id string) int {
	for i, t := range r.s.tournaments {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func (r *memoryTournamentRepository) GetByID(ctx context.Context, id string) (*models.Tournament, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	i := r.indexOf(id)
	if i < 0 {
		return nil, ErrTournamentNotFound
	}
	t := r.s.tournaments[i]
	return &t, nil
}

func (r *memoryTournamentRepository) List(ctx context.Context, search string, limit int) ([]models.Tournament, error) {
	r.s.mu.RLock()
	tournaments := make([]models.Tournament, 0)
	for _, t := range r.s.tournaments {
		if search == "" || containsFold(t.Name, search) {
			tournaments = append(tournaments, t)
		}
	}
	r.s.mu.RUnlock()

	sort.SliceStable(tournaments, func(i, j int) bool {
		a, b := tournaments[i], tournaments[j]
		if !a.StartDate.Equal(b.StartDate) {
			return a.StartDate.After(b.StartDate)
		}
		return a.ID < b.ID
	})
	return tournaments[:capLimit(len(tournaments), limit)], nil
}

func (r *memoryTournamentRepository) Update(ctx context.Context, t *models.Tournament) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	i := r.indexOf(t.ID)
	if i < 0 {
		return ErrTournamentNotFound
	}
	stored := &r.s.tournaments[i]
	stored.Name = t.Name
	stored.Location = t.Location
	stored.StartDate = t.StartDate
	stored.EndDate = t.EndDate
	stored.Rounds = t.Rounds
	stored.TimeControl = t.TimeControl
	stored.Arbiter = t.Arbiter
	return nil
}

func (r *memoryTournamentRepository) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	i := r.indexOf(id)
	if i < 0 {
		return ErrTournamentNotFound
	}
	r.s.tournaments = append(r.s.tournaments[:i], r.s.tournaments[i+1:]...)
	return nil
}

type memoryResultRepository struct{ s *MemoryStore }

func NewMemoryResultRepository(s *MemoryStore) ResultRepository {
	return &memoryResultRepository{s: s}
}

func (r *memoryResultRepository) Create(ctx context.Context, res *models.TournamentResult) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.results {
		if existing.TournamentID == res.TournamentID && existing.PlayerID == res.PlayerID {
			return ErrResultConflict
		}
	}
	r.s.results = append(r.s.results, cloneResult(*res))
	return nil
}

func (r *memoryResultRepository) ListByTournament(ctx context.Context, tournamentID string, limit int) ([]models.ResultWithPlayer, error) {
	r.s.mu.RLock()
	players := make(map[string]models.Player, len(r.s.players))
	for _, p := range r.s.players {
		players[p.ID] = p
	}
	results := make([]models.ResultWithPlayer, 0)
	for _, res := range r.s.results {
		if res.TournamentID != tournamentID {
			continue
		}
		player, ok := players[res.PlayerID]
		if !ok {
			continue
		}
		results = append(results, models.ResultWithPlayer{TournamentResult: cloneResult(res), Player: clonePlayer(player)})
	}
	r.s.mu.RUnlock()

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Rank < results[j].Rank
	})
	return results[:capLimit(len(results), limit)], nil
}

func (r *memoryResultRepository) ListByPlayer(ctx context.Context, playerID string, limit int) ([]models.ResultWithTournament, error) {
	r.s.mu.RLock()
	tournaments := make(map[string]models.Tournament, len(r.s.tournaments))
	for _, t := range r.s.tournaments {
		tournaments[t.ID] = t
	}
	results := make([]models.ResultWithTournament, 0)
	for _, res := range r.s.results {
		if res.PlayerID != playerID {
			continue
		}
		tournament, ok := tournaments[res.TournamentID]
		if !ok {
			continue
		}
		results = append(results, models.ResultWithTournament{TournamentResult: cloneResult(res), Tournament: tournament})
	}
	r.s.mu.RUnlock()

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Tournament.StartDate.After(results[j].Tournament.StartDate)
	})
	return results[:capLimit(len(results), limit)], nil
}
