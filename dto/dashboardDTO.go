package dto

type TaskCounts struct {
	Total    int            `json:"total"`
	ByStatus map[string]int `json:"byStatus"`
	Overdue  int            `json:"overdue"`
	DueToday int            `json:"dueToday"`
}

type ProjectCounts struct {
	Total  int `json:"total"`
	Active int `json:"active"`
}

type HabitCounts struct {
	Total          int `json:"total"`
	CompletedToday int `json:"completedToday"`
}

type PomodoroCounts struct {
	SessionsToday     int `json:"sessionsToday"`
	FocusMinutesToday int `json:"focusMinutesToday"`
}

type DashboardSummary struct {
	Tasks       TaskCounts     `json:"tasks"`
	Projects    ProjectCounts  `json:"projects"`
	Habits      HabitCounts    `json:"habits"`
	Pomodoro    PomodoroCounts `json:"pomodoro"`
	GeneratedAt string         `json:"generatedAt"`
}
