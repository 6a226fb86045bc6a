package domain

type MailMessage struct {
	Type string `json:"type"`
	To   string `json:"to"`
	Data any    `json:"data"`
}

type WelcomeMailData struct {
	FullName string `json:"fullName"`
	Username string `json:"username"`
}

type CreateUserMailData struct {
	FullName string `json:"fullName"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type ResetPasswordMailData struct {
	FullName   string `json:"fullName"`
	OTP        string `json:"otp"`
	Expiration int    `json:"expiration"`
}

type ChangeEmailMailData struct {
	FullName   string `json:"fullName"`
	OTP        string `json:"otp"`
	Expiration int    `json:"expiration"`
}

type TrainingRequestMailData struct {
	FullName    string `json:"fullName"`
	PartnerName string `json:"partnerName"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
}

type BookingConfirmedMailData struct {
	FullName    string `json:"fullName"`
	PartnerName string `json:"partnerName"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
}
