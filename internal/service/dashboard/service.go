package dashboard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ezbpo/staff-activity-backend-go/internal/domain/dashboard"
	"github.com/ezbpo/staff-activity-backend-go/internal/domain/staff"
	domainTracking "github.com/ezbpo/staff-activity-backend-go/internal/domain/tracking"
	"github.com/ezbpo/staff-activity-backend-go/internal/pkg/sse"
	"github.com/ezbpo/staff-activity-backend-go/internal/service/activity"
	"github.com/ezbpo/staff-activity-backend-go/internal/service/tracking"
	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
)

// snapshotTTL bounds how stale a served dashboard snapshot may be.
const snapshotTTL = 15 * time.Second

type DashboardServiceImpl struct {
	loader    *activity.Loader
	cache     *activity.Cache
	tracker   *activity.QueryTracker
	entryRepo domainTracking.StatusEntryRepository
	staffRepo staff.StaffRepository
	hub       *sse.Hub
}

func NewDashboardService(
	loader *activity.Loader,
	entryRepo domainTracking.StatusEntryRepository,
	staffRepo staff.StaffRepository,
	hub *sse.Hub,
) dashboard.DashboardService {
	return &DashboardServiceImpl{
		loader:    loader,
		cache:     activity.NewCache(snapshotTTL),
		tracker:   activity.NewQueryTracker(),
		entryRepo: entryRepo,
		staffRepo: staffRepo,
		hub:       hub,
	}
}

// sessionKey identifies the caller for pagination-reset tracking.
func sessionKey(ctx context.Context) string {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "anonymous"
	}
	if userID, ok := claims["user_id"].(string); ok && userID != "" {
		return userID
	}
	return "anonymous"
}

// snapshot serves the cached snapshot or loads a fresh one. A slower
// concurrent load that lost the commit race is discarded in favor of
// the newer applied snapshot (last-write-wins).
func (s *DashboardServiceImpl) snapshot(ctx context.Context) (*activity.Snapshot, error) {
	now := time.Now().UTC()
	if snap, ok := s.cache.Get(now); ok {
		return snap, nil
	}

	ticket := s.cache.Begin()
	snap, err := s.loader.Load(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("failed to load activity snapshot: %w", err)
	}
	if !s.cache.Commit(ticket, snap) {
		if current, ok := s.cache.Get(time.Now().UTC()); ok {
			return current, nil
		}
	}
	return snap, nil
}

// Kpi implements dashboard.DashboardService.
func (s *DashboardServiceImpl) Kpi(ctx context.Context) (dashboard.KpiResponse, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return dashboard.KpiResponse{}, err
	}

	now := time.Now().UTC()
	kpi := activity.ComputeKpi(snap, now)
	return dashboard.KpiResponse{
		Online:                    kpi.Online,
		Warnings:                  kpi.Warnings,
		ProjectStatusChangesToday: kpi.ProjectStatusChangesToday,
		GeneratedAt:               now.Format(time.RFC3339),
	}, nil
}

// ListStaff implements dashboard.DashboardService.
func (s *DashboardServiceImpl) ListStaff(ctx context.Context, q dashboard.StaffQuery) (dashboard.StaffPage, error) {
	if err := q.Validate(); err != nil {
		return dashboard.StaffPage{}, err
	}

	// Any filter change resets the caller's page to 1
	q = s.tracker.Resolve(sessionKey(ctx), q)

	snap, err := s.snapshot(ctx)
	if err != nil {
		return dashboard.StaffPage{}, err
	}

	now := time.Now().UTC()
	matched := activity.Filter(snap, q, now)
	bounds := activity.Bounds(len(matched), q.Page, q.PageSize)

	rows := make([]dashboard.StaffRow, 0, bounds.End-bounds.Start)
	for _, st := range matched[bounds.Start:bounds.End] {
		rows = append(rows, s.buildRow(snap, st, now))
	}

	return dashboard.StaffPage{
		Rows:       rows,
		TotalCount: len(matched),
		Page:       bounds.Page,
		PageSize:   bounds.PageSize,
		PageCount:  bounds.PageCount,
	}, nil
}

func (s *DashboardServiceImpl) buildRow(snap *activity.Snapshot, st staff.Staff, now time.Time) dashboard.StaffRow {
	entries := snap.Entries[st.ID]
	row := dashboard.StaffRow{
		ID:             st.ID,
		Name:           st.DisplayName(),
		Email:          st.Email,
		AvatarURL:      st.AvatarURL,
		DepartmentName: snap.DepartmentName(st.DepartmentID),
		ProjectNames:   snap.ProjectLabels(st.ProjectIDs),
		Online:         tracking.IsOnline(entries, snap.Catalog),
		Warning:        activity.HasWarning(entries, snap.Catalog, now),
	}

	if latest, ok := tracking.Latest(entries); ok {
		def, found := snap.Catalog.Lookup(latest.StatusDefinitionID)
		name := def.Name
		if !found {
			name = "Unknown"
		}
		m := tracking.LiveMetrics(latest, def, now)
		row.CurrentStatus = &dashboard.CurrentStatus{
			StatusName:      name,
			Since:           latest.Start.Format(time.RFC3339),
			ElapsedSeconds:  m.DurationSeconds,
			OvertimeSeconds: m.OvertimeSeconds,
		}
	}
	return row
}

// StaffEntries implements dashboard.DashboardService.
func (s *DashboardServiceImpl) StaffEntries(ctx context.Context, staffID string, window domainTracking.Window) ([]dashboard.EntryResponse, error) {
	if _, err := s.staffRepo.GetByID(ctx, staffID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, staff.ErrStaffNotFound
		}
		return nil, fmt.Errorf("failed to get staff by id: %w", err)
	}

	entries, err := s.entryRepo.ListByStaff(ctx, staffID, window)
	if err != nil {
		return nil, fmt.Errorf("failed to list status entries: %w", err)
	}

	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	tracking.SortNewestFirst(entries)

	out := make([]dashboard.EntryResponse, 0, len(entries))
	for _, e := range entries {
		def, found := snap.Catalog.Lookup(e.StatusDefinitionID)
		name := def.Name
		if !found {
			name = "Unknown"
		}
		m := tracking.LiveMetrics(e, def, now)

		item := dashboard.EntryResponse{
			ID:                 e.ID,
			StatusName:         name,
			Start:              e.Start.Format(time.RFC3339),
			Open:               e.End == nil,
			DurationSeconds:    m.DurationSeconds,
			MaxDurationSeconds: m.MaxDurationSeconds,
			OvertimeSeconds:    m.OvertimeSeconds,
			Note:               e.Note,
		}
		if e.End != nil {
			endStr := e.End.Format(time.RFC3339)
			item.End = &endStr
		}
		if e.ProjectID != nil {
			labels := snap.ProjectLabels([]string{*e.ProjectID})
			item.ProjectName = &labels[0]
		}
		out = append(out, item)
	}
	return out, nil
}

// Refresh implements dashboard.DashboardService.
func (s *DashboardServiceImpl) Refresh(ctx context.Context) error {
	ticket := s.cache.Begin()
	snap, err := s.loader.Load(ctx, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to refresh activity snapshot: %w", err)
	}
	if s.cache.Commit(ticket, snap) {
		s.hub.Broadcast(sse.Event{Event: "snapshot_refreshed", Data: snap.LoadedAt.Format(time.RFC3339)})
	}
	return nil
}
