package reviews

import (
	"strings"
	"time"
)

const (
	MinStars     = 1
	MaxStars     = 5
	DefaultStars = 4
)

// Form is the "add review" dialog state.
type Form struct {
	BotName string
	Link    string
	Body    string
	Rating  int
	Agreed  bool
}

// NewForm returns the dialog defaults: four stars, rules accepted.
func NewForm() Form {
	return Form{Rating: DefaultStars, Agreed: true}
}

func (f *Form) SetRating(n int) {
	f.Rating = ClampStars(n)
}

// CanSubmit gates the submit button.
func (f Form) CanSubmit() bool {
	return strings.TrimSpace(f.BotName) != "" &&
		strings.TrimSpace(f.Link) != "" &&
		strings.TrimSpace(f.Body) != "" &&
		f.Rating >= MinStars && f.Rating <= MaxStars &&
		f.Agreed
}

func ClampStars(n int) int {
	if n < MinStars {
		return MinStars
	}
	if n > MaxStars {
		return MaxStars
	}
	return n
}

// Review is a submitted form. It is handed to a Submitter and not stored.
type Review struct {
	ID          string    `json:"id"`
	BotName     string    `json:"bot_name"`
	Link        string    `json:"link"`
	Body        string    `json:"body"`
	Rating      int       `json:"rating"`
	SubmittedAt time.Time `json:"submitted_at"`
}

type SubmitRequest struct {
	BotName string `json:"bot_name" validate:"required,notblank,max=120"`
	Link    string `json:"link" validate:"required,botlink,max=500"`
	Body    string `json:"body" validate:"required,notblank,max=4000"`
	Rating  int    `json:"rating" validate:"required,gte=1,lte=5"`
	Agree   bool   `json:"agree" validate:"required"`
}

func (r SubmitRequest) Form() Form {
	return Form{
		BotName: r.BotName,
		Link:    r.Link,
		Body:    r.Body,
		Rating:  r.Rating,
		Agreed:  r.Agree,
	}
}
