package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// --- Request types ---

type ratingsRequest struct {
	Salary    int `json:"salary" validate:"required,min=1,max=5"`
	Stability int `json:"stability" validate:"required,min=1,max=5"`
	Culture   int `json:"culture" validate:"required,min=1,max=5"`
}

type createCompanyRequest struct {
	Name      string         `json:"name" validate:"required"`
	SubSector string         `json:"sub_sector" validate:"required"`
	Latitude  float64        `json:"latitude" validate:"min=-90,max=90"`
	Longitude float64        `json:"longitude" validate:"min=-180,max=180"`
	Status    string         `json:"status" validate:"required,oneof=APPLIED INTERVIEW OFFERED JOINED REJECTED"`
	Ratings   ratingsRequest `json:"ratings" validate:"required"`
	Notes     string         `json:"notes" validate:"omitempty,max=2000"`
	IsPublic  bool           `json:"is_public"`
}

type updateRatingsRequest struct {
	Salary    int `json:"salary" validate:"min=1,max=5"`
	Stability int `json:"stability" validate:"min=1,max=5"`
	Culture   int `json:"culture" validate:"min=1,max=5"`
}

type updateCompanyRequest struct {
	Name      *string               `json:"name" validate:"omitempty,min=1"`
	SubSector *string               `json:"sub_sector" validate:"omitempty,min=1"`
	Latitude  *float64              `json:"latitude" validate:"omitempty,min=-90,max=90"`
	Longitude *float64              `json:"longitude" validate:"omitempty,min=-180,max=180"`
	Status    *string               `json:"status" validate:"omitempty,oneof=APPLIED INTERVIEW OFFERED JOINED REJECTED"`
	Ratings   *updateRatingsRequest `json:"ratings" validate:"omitempty"`
	Notes     *string               `json:"notes" validate:"omitempty,max=2000"`
	IsPublic  *bool                 `json:"is_public"`
}

type createCommentRequest struct {
	Content  string `json:"content" validate:"required,min=1,max=1000"`
	ParentID string `json:"parent_id" validate:"omitempty"`
}
