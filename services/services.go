// Package services holds the backend handlers for every entity family.
// Handlers read and write the document store, enforce that records belong
// to the caller and reshape records for the client.
package services

import (
	"time"

	"planner/cache"
	"planner/dto"
	"planner/store"
)

// Options configures New.
type Options struct {
	JWTSecret        string
	SessionMaxAge    time.Duration
	SessionUpdateAge time.Duration
	CheckEmailMX     bool
	Captcha          CaptchaVerifier // nil disables the captcha gate
}

// Services bundles one handler per entity family over a shared store.
type Services struct {
	Users         *UserService
	Sessions      *SessionManager
	Captcha       CaptchaVerifier
	Organizations *OrganizationService
	Projects      *ProjectService
	Tasks         *TaskService
	Notes         *NoteService
	Habits        *HabitService
	Pomodoro      *PomodoroService
	Kanban        *KanbanService
	Calendar      *CalendarService
	Dashboard     *DashboardService

	// DashboardCache is exposed so the scheduler can prune it.
	DashboardCache *cache.TTL[string, dto.DashboardSummary]
}

func New(s store.DocumentStore, opts Options) *Services {
	dashboards := cache.NewTTL[string, dto.DashboardSummary](DashboardTTL)
	svc := &Services{
		Users:          NewUserService(s, opts.CheckEmailMX),
		Sessions:       NewSessionManager(opts.JWTSecret, opts.SessionMaxAge, opts.SessionUpdateAge),
		Captcha:        opts.Captcha,
		Organizations:  NewOrganizationService(s),
		Projects:       NewProjectService(s),
		Tasks:          NewTaskService(s),
		Notes:          NewNoteService(s),
		Habits:         NewHabitService(s),
		Pomodoro:       NewPomodoroService(s),
		Kanban:         NewKanbanService(s),
		Calendar:       NewCalendarService(s),
		Dashboard:      NewDashboardService(s, dashboards),
		DashboardCache: dashboards,
	}
	// Writes to anything the summary counts drop that user's cached summary.
	svc.Tasks.OnChange(svc.Dashboard.Invalidate)
	svc.Projects.OnChange(svc.Dashboard.Invalidate)
	svc.Habits.OnChange(svc.Dashboard.Invalidate)
	svc.Pomodoro.OnChange(svc.Dashboard.Invalidate)
	return svc
}

// SetClock points every handler at the same clock, for tests.
func (s *Services) SetClock(now func() time.Time) {
	s.Users.SetClock(now)
	s.Sessions.SetClock(now)
	s.Organizations.SetClock(now)
	s.Projects.SetClock(now)
	s.Tasks.SetClock(now)
	s.Notes.SetClock(now)
	s.Habits.SetClock(now)
	s.Pomodoro.SetClock(now)
	s.Kanban.SetClock(now)
	s.Calendar.SetClock(now)
	s.Dashboard.SetClock(now)
	s.DashboardCache.WithClock(now)
}
