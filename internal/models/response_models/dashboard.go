package response_models

type DashboardStats struct {
	ActivePatrols  int64            `json:"active_patrols"`
	OfficersOnDuty int64            `json:"officers_on_duty"`
	PatrolsToday   int64            `json:"patrols_today"`
	TotalLocations int64            `json:"total_locations"`
	RecentPatrols  []PatrolResponse `json:"recent_patrols"`
	Officers       []UserResponse   `json:"officers"`
}
