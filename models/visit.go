package models

// VisitImage is a stored photo-evidence path attached to a visit.
type VisitImage struct {
	ImagePath string `json:"image_path"`
}

// Visit is a field visit to a contact, with photo evidence.
type Visit struct {
	ID          int          `json:"id"`
	ContactID   FlexInt      `json:"contact_id"`
	Contact     string       `json:"contact,omitempty"`
	PurposeID   FlexInt      `json:"purpose_id"`
	Purpose     string       `json:"purpose,omitempty"`
	Description string       `json:"description"`
	Response    string       `json:"response"`
	VisitImages []VisitImage `json:"visit_images,omitempty"`
}

// VisitPayload carries the multipart fields of POST visits /
// POST visits/{id}?_method=PUT. Photos travel as file parts named
// visit_images[]; on update, kept server-side images travel as
// existing_images[] paths (relative to the storage base URL).
type VisitPayload struct {
	ContactID      string
	PurposeID      string
	Description    string
	Response       string
	UserID         int
	PhotoPaths     []string // local files, recompressed before upload
	ExistingImages []string
}
