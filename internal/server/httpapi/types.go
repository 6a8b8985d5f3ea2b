package httpapi

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
}

// createInquiryRequest carries a caller-supplied inquiry id; the requester is
// always the authenticated actor. Dates use the YYYY-MM-DD form.
type createInquiryRequest struct {
	InquiryID string `json:"inquiry_id"`
	ArticleID int64  `json:"article_id"`
	OwnerID   int64  `json:"owner_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	DayCount  int    `json:"day_count"`
}

type wishlistRequest struct {
	ArticleID int64 `json:"article_id"`
	OwnerID   int64 `json:"owner_id"`
}

type existsResponse struct {
	Exists bool `json:"exists"`
}
