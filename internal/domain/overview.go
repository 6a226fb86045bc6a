package domain

// UpcomingBooking 是总览页使用的读模型，带上了搭子的姓名
type UpcomingBooking struct {
	ID               int64  `json:"id"`
	PartnerUID       int64  `json:"partnerUid"`
	PartnerName      string `json:"partnerName"`
	StartEpochMillis int64  `json:"startEpochMillis"`
	EndEpochMillis   int64  `json:"endEpochMillis"`
}

type Overview struct {
	UpcomingBookings []*UpcomingBooking `json:"upcomingBookings"`
	WorkoutHistory   []*WorkoutSession  `json:"workoutHistory"`
}
