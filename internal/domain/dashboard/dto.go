package dashboard

// DashboardResponse is the HR dashboard payload: a summary header plus one
// aggregate row per user. Everything is recomputed from the ledger on each
// request; nothing here is cached.
type DashboardResponse struct {
	Summary SummaryResponse `json:"summary"`
	Users   []UserOverview  `json:"users"`
}

type SummaryResponse struct {
	TotalEmployees   int64 `json:"total_employees"`
	OnTimeToday      int64 `json:"on_time_today"`
	LateToday        int64 `json:"late_today"`
	PendingApprovals int64 `json:"pending_approvals"`
}

// UserOverview satisfies pending + approved = total ledger rows for the user.
type UserOverview struct {
	UserID          string `json:"user_id"`
	FullName        string `json:"full_name"`
	Email           string `json:"email"`
	RemainingLeaves int    `json:"remaining_leaves"`
	PendingLeaves   int64  `json:"pending_leaves"`
	ApprovedLeaves  int64  `json:"approved_leaves"`
}
