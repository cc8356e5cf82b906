package v1

// AttachmentFormatImage marks an attachment whose content is an inline image reference.
const AttachmentFormatImage = "image"

// Attachment is a single artifact captured alongside a test case. Currently only inline image references
// are extracted from reports.
type Attachment struct {
	Name       string `json:"name"`
	FormatType string `json:"format_type"`
	Content    string `json:"content"`
}

// NewImageAttachment returns an Attachment for an inline screenshot reference.
func NewImageAttachment(content string) Attachment {
	return Attachment{
		Name:       "Screenshot",
		FormatType: AttachmentFormatImage,
		Content:    content,
	}
}

// TestCaseRecord is one test case of a report. The result label is reporter-defined (e.g. "Passed", "Failed",
// "Skipped") and passed through without validation. The duration keeps the reporter's formatting.
type TestCaseRecord struct {
	TestID      string       `json:"testId"`
	Result      string       `json:"result"`
	Duration    string       `json:"duration"`
	Log         string       `json:"log"`
	Attachments []Attachment `json:"attachments,omitempty"`
}
