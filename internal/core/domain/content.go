package domain

import "time"

// Founder is the single bio block shown in the About section.
type Founder struct {
	ID                 string    `json:"id" bson:"_id,omitempty"`
	Name               string    `json:"founderName" bson:"founder_name"`
	Title              string    `json:"founderTitle" bson:"founder_title"`
	Description        string    `json:"founderDescription" bson:"founder_description"`
	PhotoURL           string    `json:"founderPhotoUrl" bson:"founder_photo_url"`
	ProjectsCompleted  int       `json:"projectsCompleted" bson:"projects_completed"`
	YearsOfExperience  int       `json:"yearsOfExperience" bson:"years_of_experience"`
	ClientSatisfaction int       `json:"clientSatisfaction" bson:"client_satisfaction"`
	CreatedAt          time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt          time.Time `json:"updatedAt" bson:"updated_at"`
}

// PortfolioItem is one project in the portfolio grid.
type PortfolioItem struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Title       string    `json:"title" bson:"title"`
	Category    string    `json:"category" bson:"category"`
	Image       string    `json:"image" bson:"image"`
	Description string    `json:"description" bson:"description"`
	Order       int       `json:"order" bson:"order"`
	IsActive    bool      `json:"isActive" bson:"is_active"`
	CreatedAt   time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updated_at"`
}

// Category groups portfolio items.
type Category struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Name      string    `json:"name" bson:"name"`
	CreatedAt time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updated_at"`
}

// Video is a showcase clip with its thumbnail.
type Video struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	Title        string    `json:"title" bson:"title"`
	Description  string    `json:"description" bson:"description"`
	ThumbnailURL string    `json:"thumbnailUrl" bson:"thumbnail_url"`
	VideoURL     string    `json:"videoUrl" bson:"video_url"`
	Order        int       `json:"order" bson:"order"`
	IsActive     bool      `json:"isActive" bson:"is_active"`
	CreatedAt    time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" bson:"updated_at"`
}

// Testimonial is a client review.
type Testimonial struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Name      string    `json:"name" bson:"name"`
	Location  string    `json:"location" bson:"location"`
	Project   string    `json:"project" bson:"project"`
	Rating    int       `json:"rating" bson:"rating"`
	Review    string    `json:"review" bson:"review"`
	Image     string    `json:"image" bson:"image"`
	IsActive  bool      `json:"isActive" bson:"is_active"`
	Order     int       `json:"order" bson:"order"`
	CreatedAt time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updated_at"`
}

// Statistics holds the headline numbers of the studio.
type Statistics struct {
	ID            string    `json:"id,omitempty" bson:"_id,omitempty"`
	HappyClients  int       `json:"happyClients" bson:"happy_clients"`
	AverageRating float64   `json:"averageRating" bson:"average_rating"`
	Satisfaction  int       `json:"satisfaction" bson:"satisfaction"`
	AwardsWon     int       `json:"awardsWon" bson:"awards_won"`
	IsActive      bool      `json:"isActive" bson:"is_active"`
	DisplayOrder  int       `json:"displayOrder" bson:"display_order"`
	CreatedAt     time.Time `json:"createdAt,omitzero" bson:"created_at"`
	UpdatedAt     time.Time `json:"updatedAt,omitzero" bson:"updated_at"`
}

// DefaultStatistics is served when no active statistics document exists.
func DefaultStatistics() Statistics {
	return Statistics{
		HappyClients:  50,
		AverageRating: 5.0,
		Satisfaction:  100,
		AwardsWon:     15,
		IsActive:      true,
	}
}
