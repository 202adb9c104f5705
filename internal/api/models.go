package api

import "encoding/json"

// Session is the result of a successful sign-in. The token is an opaque
// bearer string; it lives for one run and is attached to every later call.
type Session struct {
	Token  string
	UserID int64
}

// Teacher is a subject's teacher. Field order matters to the intro
// renderer: names are emitted first, last, middle.
type Teacher struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	MiddleName string `json:"middle_name"`
}

// Group is a student group assigned to a subject.
type Group struct {
	Name string `json:"name"`
}

// Chapter is a named grouping of steps inside a subject. The platform
// returns chapters in display order and that order is part of the output
// contract.
type Chapter struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

// StepRef is a step as listed in a subject: just enough to group it into
// a chapter. The full content comes from a separate lesson fetch.
type StepRef struct {
	ID        int64 `json:"id"`
	ChapterID int64 `json:"chapter_id"`
	Hidden    bool  `json:"hidden"`
}

// Subject is a course as returned by the subject-detail endpoint.
// Raw preserves the exact server payload for structured-mode output.
type Subject struct {
	ID          int64     `json:"id"`
	Code        string    `json:"code"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Teachers    []Teacher `json:"teachers"`
	Groups      []Group   `json:"groups"`
	Chapters    []Chapter `json:"chapters"`
	Steps       []StepRef `json:"steps"`

	Raw json.RawMessage `json:"-"`
}

// Photo is an image attachment. Normal is the URL of the full-size
// rendition.
type Photo struct {
	ID     int64  `json:"id"`
	Normal string `json:"normal"`
}

// Video is a video attachment. It carries both a photo-like thumbnail
// (Normal) and the actual video location (Path); the markdown renderer
// uses both.
type Video struct {
	ID          int64  `json:"id"`
	Normal      string `json:"normal"`
	Path        string `json:"path"`
	Description string `json:"description"`
}

// Link is an external link attachment.
type Link struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Document is a downloadable file attachment.
type Document struct {
	ID          int64  `json:"id"`
	Path        string `json:"path"`
	Description string `json:"description"`
}

// Section is a sub-block of a step. Sections do not nest.
type Section struct {
	Title     string     `json:"title"`
	Content   *string    `json:"content"`
	Photos    []Photo    `json:"photos"`
	Links     []Link     `json:"links"`
	Videos    []Video    `json:"videos"`
	Documents []Document `json:"documents"`
}

// Step is a full lesson record from the lesson-detail endpoint.
// Raw preserves the exact server payload for structured-mode output.
type Step struct {
	ID               int64      `json:"id"`
	Title            string     `json:"title"`
	PublicText       string     `json:"public_text"`
	PublicPhotos     []Photo    `json:"public_photos"`
	PrivateText      string     `json:"private_text"`
	PrivateVideos    []Video    `json:"private_videos"`
	PrivateLinks     []Link     `json:"private_links"`
	PrivateDocuments []Document `json:"private_documents"`
	Sections         []Section  `json:"sections"`

	Raw json.RawMessage `json:"-"`
}

// SubjectsPage is one page of the paginated subject-list endpoint.
type SubjectsPage struct {
	Items    []SubjectRef `json:"data"`
	LastPage int          `json:"last_page"`
}

// SubjectRef is a subject entry in a paginated listing.
type SubjectRef struct {
	ID int64 `json:"id"`
}
