package dto

type DashboardResponse struct {
	ActiveForms      int64 `json:"active_forms"`
	SubmissionsToday int64 `json:"submissions_today"`
	ActivePatients   int64 `json:"active_patients"`
	ActiveStaff      int64 `json:"active_staff"`
}

type NavigationItem struct {
	Label       string `json:"label"`
	Path        string `json:"path"`
	ManagerOnly bool   `json:"manager_only"`
	Disabled    bool   `json:"disabled"`
}

type NavigationResponse struct {
	UserName string           `json:"user_name"`
	Role     string           `json:"role"`
	Items    []NavigationItem `json:"items"`
}
