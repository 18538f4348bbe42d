package api

import "time"

// CourseState mirrors the server-computed lifecycle of a course.
type CourseState string

const (
	CourseStateOnGoing  CourseState = "ongoing"
	CourseStateArchived CourseState = "archived"
	CourseStateToBeOpen CourseState = "to_be_open"
	CourseStateFuture   CourseState = "future"
)

// Course is a catalog entry a product can be attached to.
type Course struct {
	ID             string         `json:"id"`
	Code           string         `json:"code"`
	Title          string         `json:"title"`
	State          CourseState    `json:"state"`
	Organizations  []Organization `json:"organizations"`
	Cover          *Attachment    `json:"cover,omitempty"`
	EffortDuration string         `json:"effort"`
}

func (c Course) ResourceID() string { return c.ID }

// CourseRun is a scheduled session of a course on the LMS.
type CourseRun struct {
	ID              string     `json:"id"`
	CourseID        string     `json:"course_id"`
	Title           string     `json:"title"`
	ResourceLink    string     `json:"resource_link"`
	Start           *time.Time `json:"start"`
	End             *time.Time `json:"end"`
	EnrollmentStart *time.Time `json:"enrollment_start"`
	EnrollmentEnd   *time.Time `json:"enrollment_end"`
	Languages       []string   `json:"languages"`
	IsGradable      bool       `json:"is_gradable"`
	IsListed        bool       `json:"is_listed"`
}

func (r CourseRun) ResourceID() string { return r.ID }
