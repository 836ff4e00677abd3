package service

// SubmissionInput carries one incoming feedback submission from any entry
// point (HTTP handler, console collector) into the service.
type SubmissionInput struct {
	Subject    string
	Respondent string
	Ratings    map[string]int
	Comment    string
}
