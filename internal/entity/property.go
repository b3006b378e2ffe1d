package entity

import (
	"database/sql"

	"github.com/google/uuid"

	"renovation-marketplace-api/internal/workflow"
)

// db model
type Property struct {
	Id                   uuid.UUID       `json:"id" db:"id"`
	HomeownerId          uuid.UUID       `json:"homeownerId" db:"homeowner_id"`
	Title                string          `json:"title" db:"title"`
	Description          string          `json:"description" db:"description"`
	Address              string          `json:"address" db:"address"`
	City                 string          `json:"city" db:"city"`
	Latitude             float64         `json:"latitude" db:"latitude"`
	Longitude            float64         `json:"longitude" db:"longitude"`
	PlotNumber           string          `json:"plotNumber" db:"plot_number"`
	PropertyType         string          `json:"propertyType" db:"property_type"`
	Size                 float64         `json:"size" db:"size"`
	NumberOfFloors       int             `json:"numberOfFloors" db:"number_of_floors"`
	NumberOfRooms        int             `json:"numberOfRooms" db:"number_of_rooms"`
	Condition            string          `json:"condition" db:"condition"`
	WorkAreas            []string        `json:"workAreas" db:"work_areas"`
	WorkDetails          string          `json:"workDetails" db:"work_details"`
	Status               workflow.Status `json:"status" db:"status"`
	AssignedContractorId uuid.NullUUID   `json:"assignedContractorId" db:"assigned_contractor_id"`
	AdminApproverId      uuid.NullUUID   `json:"adminApproverId" db:"admin_approver_id"`
	Rating               sql.NullFloat64 `json:"rating" db:"rating"`
	EvaluationReport     string          `json:"evaluationReport" db:"evaluation_report"`
	EvaluationDate       sql.NullTime    `json:"evaluationDate" db:"evaluation_date"`
	CompletionNote       string          `json:"completionNote" db:"completion_note"`
	CreatedAt            string          `json:"createdAt" db:"created_at"`
}

// db model
type PropertyImage struct {
	Id          uuid.UUID `json:"id" db:"id"`
	PropertyId  uuid.UUID `json:"propertyId" db:"property_id"`
	URL         string    `json:"url" db:"url"`
	IsThumbnail bool      `json:"isThumbnail" db:"is_thumbnail"`
	Order       int       `json:"order" db:"ord"`
	Kind        string    `json:"kind" db:"kind"`
}

// service + repo input model
type CreatePropertyInput struct {
	HomeownerId    uuid.UUID // set from the session, never from the request body
	Title          string    // given
	Description    string    // given
	Address        string    // given
	City           string    // given
	Latitude       float64   // given
	Longitude      float64   // given
	PlotNumber     string    // given
	PropertyType   string    // given
	Size           float64   // given
	NumberOfFloors int       // given
	NumberOfRooms  int       // given
	Condition      string    // given
	WorkAreas      []string  // given
	WorkDetails    string    // given
	ImageURLs      []string  // given, first one becomes the thumbnail
	// Status should be set: workflow.Pending
	// Id UUID sets automatically
	// CreatedAt sets automatically
}

// controller model for lists
type PropertyOutputModel struct {
	Id                   string   `json:"id"`
	HomeownerId          string   `json:"homeownerId"`
	Title                string   `json:"title"`
	Description          string   `json:"description"`
	Address              string   `json:"address"`
	City                 string   `json:"city"`
	Latitude             float64  `json:"latitude"`
	Longitude            float64  `json:"longitude"`
	PlotNumber           string   `json:"plotNumber"`
	PropertyType         string   `json:"propertyType"`
	Size                 float64  `json:"size"`
	NumberOfFloors       int      `json:"numberOfFloors"`
	NumberOfRooms        int      `json:"numberOfRooms"`
	Condition            string   `json:"condition"`
	WorkAreas            []string `json:"workAreas"`
	WorkDetails          string   `json:"workDetails"`
	Status               string   `json:"status"`
	AssignedContractorId string   `json:"assignedContractorId,omitempty"`
	Rating               *float64 `json:"rating,omitempty"`
	EvaluationReport     string   `json:"evaluationReport,omitempty"`
	EvaluationDate       string   `json:"evaluationDate,omitempty"`
	CompletionNote       string   `json:"completionNote,omitempty"`
	CreatedAt            string   `json:"createdAt"`
}

// controller model for the detail endpoint
type PropertyDetailOutputModel struct {
	PropertyOutputModel
	Homeowner        UserOutputModel            `json:"homeowner"`
	Contractor       *ContractorOutputModel     `json:"assignedContractor,omitempty"`
	Images           []PropertyImageOutputModel `json:"images"`
	CompletionImages []PropertyImageOutputModel `json:"completionImages"`
}

// controller model
type PropertyImageOutputModel struct {
	Id          string `json:"id"`
	URL         string `json:"url"`
	IsThumbnail bool   `json:"isThumbnail"`
	Order       int    `json:"order"`
}
