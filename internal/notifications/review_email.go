package notifications

import (
	"bytes"
	"html/template"

	"botscope/internal/reviews"
)

const reviewSubmissionTemplate = `<!DOCTYPE html>
<html>
<body>
  <h3>New review submitted</h3>
  <p><strong>Bot:</strong> {{.BotName}}</p>
  <p><strong>Link:</strong> {{.Link}}</p>
  <p><strong>Rating:</strong> {{.Rating}}/5</p>
  <p><strong>Submitted:</strong> {{.SubmittedAt.Format "2006-01-02 15:04 MST"}}</p>
  <p><strong>ID:</strong> {{.ID}}</p>
  <p><strong>Review:</strong><br/>{{.Body}}</p>
</body>
</html>`

var reviewSubmissionTmpl = template.Must(template.New("review_submission").Parse(reviewSubmissionTemplate))

func buildReviewSubmissionHTML(review reviews.Review) (string, error) {
	var buf bytes.Buffer
	if err := reviewSubmissionTmpl.Execute(&buf, review); err != nil {
		return "", err
	}
	return buf.String(), nil
}
