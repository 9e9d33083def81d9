package dto

type CreateJobRequest struct {
	ParentID         string `json:"parent_id" binding:"required,uuid"`
	DatetimeStart    string `json:"datetime_start" binding:"required"`
	DatetimeEnd      string `json:"datetime_end" binding:"required"`
	Area             string `json:"area" binding:"required"`
	Address          string `json:"address"`
	ChildrenAges     []int  `json:"children_ages" binding:"required,min=1"`
	Requirements     string `json:"requirements"`
	MinBabysitterAge *int   `json:"min_babysitter_age"`
	MaxBabysitterAge *int   `json:"max_babysitter_age"`
	CommunityStyleID string `json:"community_style_id"`
}

type UpdateJobRequest struct {
	Address      *string `json:"address"`
	Requirements *string `json:"requirements"`
	ChildrenAges *[]int  `json:"children_ages"`
}

type SelectBabysitterRequest struct {
	BabysitterID string `json:"babysitter_id" binding:"required,uuid"`
}

type CancelBookingRequest struct {
	Reason string `json:"reason" binding:"required"`
}

type RateBookingRequest struct {
	ParentRating     *int    `json:"parent_rating"`
	ParentReview     *string `json:"parent_review"`
	BabysitterRating *int    `json:"babysitter_rating"`
}

type TelephonyWebhookRequest struct {
	EventType       string `json:"event_type" binding:"required"`
	CandidateID     string `json:"candidate_id" binding:"required,uuid"`
	CallID          string `json:"call_id"`
	DTMFInput       string `json:"dtmf_input"`
	DurationSeconds int    `json:"duration_seconds"`
	Timestamp       string `json:"timestamp"`
}

type CreateParentRequest struct {
	FullName       string `json:"full_name" binding:"required"`
	Phone          string `json:"phone" binding:"required"`
	City           string `json:"city" binding:"required"`
	Neighborhood   string `json:"neighborhood" binding:"required"`
	Address        string `json:"address"`
	ChildrenAges   []int  `json:"children_ages"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}

type CreateBabysitterRequest struct {
	FullName                 string   `json:"full_name" binding:"required"`
	Phone                    string   `json:"phone" binding:"required"`
	Age                      int      `json:"age" binding:"required,gt=0"`
	City                     string   `json:"city" binding:"required"`
	Neighborhood             string   `json:"neighborhood" binding:"required"`
	ServiceAreas             []string `json:"service_areas"`
	GuardianRequiredApproval bool     `json:"guardian_required_approval"`
	GuardianPhone            string   `json:"guardian_phone"`
	GuardianTelegramChatID   *int64   `json:"guardian_telegram_chat_id"`
	CommunityStyleID         string   `json:"community_style_id"`
	TelegramChatID           *int64   `json:"telegram_chat_id"`
}

type CreateCityRequest struct {
	Name          string   `json:"name" binding:"required"`
	Neighborhoods []string `json:"neighborhoods"`
}

type CreateCommunityStyleRequest struct {
	Label       string `json:"label" binding:"required"`
	Description string `json:"description"`
}
