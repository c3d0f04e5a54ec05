package request

// IssuePartRequest commits one part line of a job. LineIndex is a pointer so
// index 0 binds.
type IssuePartRequest struct {
	LineIndex *int `json:"line_index" binding:"required"`
}
