package transfer

type ProfileUpdate struct {
	Name     string `json:"name" validate:"required"`
	Location string `json:"location"`
	Age      int    `json:"age" validate:"omitempty,gte=18,lte=120"`
	Phone    string `json:"phone"`
}

type PushRegistration struct {
	OneSignalID string `json:"onesignal_user_id" validate:"required"`
}

type DashboardStats struct {
	TotalUsers        int64   `json:"totalUsers"`
	ActiveSubscribers int64   `json:"activeSubscribers"`
	TotalRevenue      float64 `json:"totalRevenue"`
	TotalTips         int64   `json:"totalTips"`
	DemoTips          int64   `json:"demoTips"`
}
