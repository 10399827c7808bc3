package handler

// --- Request / Response types ---
// Kept apart from domain types so the JSON contract does not follow internal
// changes.

type loginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// bcrypt refuses passwords over 72 bytes, so they are rejected here.
type registerRequest struct {
	Email    string `json:"email"    validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,maxbytes=72"`
	RoleID   int    `json:"roleId"`
}

type createdResponse struct {
	ID int64 `json:"id"`
}

type acceptedResponse struct {
	Message string `json:"message"`
}

type animalRequest struct {
	Name        string `json:"name"        validate:"required,max=100"`
	Species     string `json:"species"     validate:"required,max=100"`
	Description string `json:"description" validate:"max=2000"`
	Condition   string `json:"condition"   validate:"max=255"`
	BreedID     *int64 `json:"breed_id"    validate:"omitempty,gt=0"`
	HabitatID   *int64 `json:"habitat_id"  validate:"omitempty,gt=0"`
}

type habitatRequest struct {
	Name        string `json:"name"        validate:"required,max=100"`
	Description string `json:"description" validate:"max=2000"`
	Comment     string `json:"comment"     validate:"max=2000"`
}

type zooServiceRequest struct {
	Name        string `json:"name"        validate:"required,max=100"`
	Description string `json:"description" validate:"max=2000"`
}

type reviewRequest struct {
	Pseudonym string `json:"pseudonym" validate:"required,max=50"`
	Comment   string `json:"comment"   validate:"required,max=2000"`
}

type reviewCommentRequest struct {
	Comment string `json:"comment" validate:"required,max=2000"`
}

type reviewValidationRequest struct {
	Validated *bool `json:"validated" validate:"required"`
}

type vetReportRequest struct {
	AnimalID  int64  `json:"animal_id"  validate:"required,gt=0"`
	Condition string `json:"condition"  validate:"required,max=255"`
	Comment   string `json:"comment"    validate:"max=2000"`
	VisitedOn string `json:"visited_on" validate:"required,datetime=2006-01-02"`
}

// vetReportUpdateRequest is the PUT body. A report stays attached to its animal.
type vetReportUpdateRequest struct {
	Condition string `json:"condition"  validate:"required,max=255"`
	Comment   string `json:"comment"    validate:"max=2000"`
	VisitedOn string `json:"visited_on" validate:"required,datetime=2006-01-02"`
}
