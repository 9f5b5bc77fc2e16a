package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// --- Request types ---

type founderRequest struct {
	Name               string `json:"founderName"        validate:"required"`
	Title              string `json:"founderTitle"       validate:"required"`
	Description        string `json:"founderDescription" validate:"required"`
	PhotoURL           string `json:"founderPhotoUrl"    validate:"required"`
	ProjectsCompleted  int    `json:"projectsCompleted"  validate:"gte=0"`
	YearsOfExperience  int    `json:"yearsOfExperience"  validate:"gte=0"`
	ClientSatisfaction int    `json:"clientSatisfaction" validate:"gte=0,lte=100"`
}

type portfolioRequest struct {
	Title       string `json:"title"       validate:"required,max=200"`
	Category    string `json:"category"    validate:"required,max=100"`
	Image       string `json:"image"       validate:"required"`
	Description string `json:"description" validate:"required,max=1000"`
	Order       int    `json:"order"       validate:"gte=0"`
	IsActive    *bool  `json:"isActive"`
}

type categoryRequest struct {
	Name string `json:"name" validate:"required"`
}

type videoRequest struct {
	Title        string `json:"title"        validate:"required,max=200"`
	Description  string `json:"description"  validate:"required,max=1000"`
	ThumbnailURL string `json:"thumbnailUrl" validate:"required"`
	VideoURL     string `json:"videoUrl"     validate:"required"`
	Order        int    `json:"order"        validate:"gte=0"`
	IsActive     *bool  `json:"isActive"`
}

type testimonialRequest struct {
	Name     string `json:"name"     validate:"required"`
	Location string `json:"location" validate:"required"`
	Project  string `json:"project"  validate:"required"`
	Rating   int    `json:"rating"   validate:"required,gte=1,lte=5"`
	Review   string `json:"review"   validate:"required"`
	Image    string `json:"image"    validate:"required"`
	Order    int    `json:"order"    validate:"gte=0"`
	IsActive *bool  `json:"isActive"`
}

type statisticsRequest struct {
	HappyClients  *int     `json:"happyClients"  validate:"required,gte=0"`
	AverageRating *float64 `json:"averageRating" validate:"omitempty,gte=0,lte=5"`
	Satisfaction  *int     `json:"satisfaction"  validate:"omitempty,gte=0,lte=100"`
	AwardsWon     *int     `json:"awardsWon"     validate:"required,gte=0"`
	IsActive      *bool    `json:"isActive"`
	DisplayOrder  int      `json:"displayOrder"`
}
