package activity

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/ezbpo/staff-activity-backend-go/internal/domain/master/department"
	"github.com/ezbpo/staff-activity-backend-go/internal/domain/master/project"
	"github.com/ezbpo/staff-activity-backend-go/internal/domain/staff"
	"github.com/ezbpo/staff-activity-backend-go/internal/domain/status"
	"github.com/ezbpo/staff-activity-backend-go/internal/domain/tracking"
	"golang.org/x/sync/errgroup"
)

// Snapshot is one immutable in-memory view of the activity data for a
// single day window. The aggregator and filter engine only ever read
// it; a refresh swaps in a whole new snapshot.
type Snapshot struct {
	// Staff in canonical row order: display name ascending, id as
	// tie-break. Every view preserves this order.
	Staff []staff.Staff

	// Entries per staff id, limited to [DayStart, DayEnd)
	Entries map[string][]tracking.StatusEntry

	Catalog         status.Catalog
	DepartmentNames map[string]string
	ProjectNames    map[string]string

	DayStart time.Time
	DayEnd   time.Time
	LoadedAt time.Time
}

// DepartmentName resolves a department label, falling back to "" on a
// reference-data miss.
func (s *Snapshot) DepartmentName(id string) string {
	return s.DepartmentNames[id]
}

// ProjectLabels resolves project names, falling back to the raw id
// when the project has not loaded (recoverable miss).
func (s *Snapshot) ProjectLabels(ids []string) []string {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if name, ok := s.ProjectNames[id]; ok {
			names = append(names, name)
		} else {
			names = append(names, id)
		}
	}
	return names
}

// Loader assembles snapshots from the repositories.
type Loader struct {
	staffRepo      staff.StaffRepository
	entryRepo      tracking.StatusEntryRepository
	definitionRepo status.StatusDefinitionRepository
	departmentRepo department.DepartmentRepository
	projectRepo    project.ProjectRepository
}

func NewLoader(
	staffRepo staff.StaffRepository,
	entryRepo tracking.StatusEntryRepository,
	definitionRepo status.StatusDefinitionRepository,
	departmentRepo department.DepartmentRepository,
	projectRepo project.ProjectRepository,
) *Loader {
	return &Loader{
		staffRepo:      staffRepo,
		entryRepo:      entryRepo,
		definitionRepo: definitionRepo,
		departmentRepo: departmentRepo,
		projectRepo:    projectRepo,
	}
}

// DayWindow returns the [start, end) window of the UTC day containing t.
func DayWindow(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 0, 1)
}

// Load fetches a complete snapshot for the day containing day.
// The five loads run in parallel; the snapshot is only built once all
// of them succeed, so the pure core never sees partial data.
func (l *Loader) Load(ctx context.Context, day time.Time) (*Snapshot, error) {
	dayStart, dayEnd := DayWindow(day)

	var (
		staffList   []staff.Staff
		entries     []tracking.StatusEntry
		definitions []status.StatusDefinition
		departments []department.Department
		projects    []project.Project
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		staffList, err = l.staffRepo.ListActive(gCtx)
		return err
	})
	g.Go(func() error {
		var err error
		entries, err = l.entryRepo.ListInRange(gCtx, dayStart, dayEnd)
		return err
	})
	g.Go(func() error {
		var err error
		definitions, err = l.definitionRepo.List(gCtx)
		return err
	})
	g.Go(func() error {
		var err error
		departments, err = l.departmentRepo.List(gCtx)
		return err
	})
	g.Go(func() error {
		var err error
		projects, err = l.projectRepo.List(gCtx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return BuildSnapshot(staffList, entries, definitions, departments, projects, dayStart, dayEnd, time.Now().UTC()), nil
}

// BuildSnapshot assembles the immutable snapshot from already-loaded
// data. Split out from Load so the pure core is testable without
// repositories.
func BuildSnapshot(
	staffList []staff.Staff,
	entries []tracking.StatusEntry,
	definitions []status.StatusDefinition,
	departments []department.Department,
	projects []project.Project,
	dayStart, dayEnd time.Time,
	loadedAt time.Time,
) *Snapshot {
	s := &Snapshot{
		Staff:           make([]staff.Staff, len(staffList)),
		Entries:         make(map[string][]tracking.StatusEntry),
		Catalog:         status.NewCatalog(definitions),
		DepartmentNames: make(map[string]string, len(departments)),
		ProjectNames:    make(map[string]string, len(projects)),
		DayStart:        dayStart,
		DayEnd:          dayEnd,
		LoadedAt:        loadedAt,
	}

	copy(s.Staff, staffList)
	sort.SliceStable(s.Staff, func(i, j int) bool {
		ni, nj := s.Staff[i].DisplayName(), s.Staff[j].DisplayName()
		if ni != nj {
			return ni < nj
		}
		return s.Staff[i].ID < s.Staff[j].ID
	})

	for _, e := range entries {
		s.Entries[e.StaffID] = append(s.Entries[e.StaffID], e)
	}
	for _, d := range departments {
		s.DepartmentNames[d.ID] = d.Name
	}
	for _, p := range projects {
		s.ProjectNames[p.ID] = p.Name
	}
	return s
}

// Cache holds the latest applied snapshot. Concurrent refreshes follow
// last-write-wins: Begin hands out a ticket, and Commit discards any
// result whose ticket has been superseded by a newer committed one.
type Cache struct {
	mu      sync.RWMutex
	snap    *Snapshot
	seq     uint64
	applied uint64
	ttl     time.Duration
}

func NewCache(ttl time.Duration) *Cache {
	return &Cache{ttl: ttl}
}

// Get returns the cached snapshot, or false when there is none, it
// has expired, or the day has rolled over since it was loaded.
func (c *Cache) Get(now time.Time) (*Snapshot, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.snap == nil {
		return nil, false
	}
	if now.Sub(c.snap.LoadedAt) > c.ttl {
		return nil, false
	}
	if !now.Before(c.snap.DayEnd) {
		return nil, false
	}
	return c.snap, true
}

// Begin reserves a refresh ticket.
func (c *Cache) Begin() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	return c.seq
}

// Commit applies snap unless a newer refresh already committed, in
// which case the stale result is discarded and Commit reports false.
func (c *Cache) Commit(ticket uint64, snap *Snapshot) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if ticket <= c.applied {
		return false
	}
	c.applied = ticket
	c.snap = snap
	return true
}
