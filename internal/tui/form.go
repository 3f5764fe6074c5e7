package tui

import (
	"strings"

	"botscope/internal/reviews"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type formField int

const (
	fieldName formField = iota
	fieldLink
	fieldBody
	fieldRating
	fieldAgree
	fieldSubmit
	fieldCount
)

// reviewForm is the modal "add review" dialog. Input widgets own the text;
// rating and agreement live in reviews.Form.
type reviewForm struct {
	name  textinput.Model
	link  textinput.Model
	body  textarea.Model
	state reviews.Form
	focus formField
	err   string
	busy  bool
}

func newReviewForm() *reviewForm {
	name := textinput.New()
	name.Placeholder = "e.g. @my_favorite_bot"
	name.CharLimit = 120
	name.Width = 48

	link := textinput.New()
	link.Placeholder = "https://t.me/..."
	link.CharLimit = 500
	link.Width = 48

	body := textarea.New()
	body.Placeholder = "What you liked, what to improve, use cases..."
	body.CharLimit = 4000
	body.SetWidth(50)
	body.SetHeight(5)
	body.ShowLineNumbers = false

	return &reviewForm{
		name:  name,
		link:  link,
		body:  body,
		state: reviews.NewForm(),
	}
}

// Form returns the current values as a reviews.Form.
func (f *reviewForm) Form() reviews.Form {
	out := f.state
	out.BotName = f.name.Value()
	out.Link = f.link.Value()
	out.Body = f.body.Value()
	return out
}

func (f *reviewForm) CanSubmit() bool {
	return f.Form().CanSubmit()
}

func (f *reviewForm) setFocus(field formField) tea.Cmd {
	f.focus = (field + fieldCount) % fieldCount
	f.name.Blur()
	f.link.Blur()
	f.body.Blur()

	switch f.focus {
	case fieldName:
		return f.name.Focus()
	case fieldLink:
		return f.link.Focus()
	case fieldBody:
		return f.body.Focus()
	}
	return nil
}

// update applies one key press. submit reports that the user asked to send
// a complete form.
func (f *reviewForm) update(msg tea.KeyMsg, keys KeyMap) (submit bool, cmd tea.Cmd) {
	switch {
	case key.Matches(msg, keys.NextField):
		return false, f.setFocus(f.focus + 1)
	case key.Matches(msg, keys.PrevField):
		return false, f.setFocus(f.focus - 1)
	}

	switch f.focus {
	case fieldRating:
		switch {
		case key.Matches(msg, keys.Left):
			f.state.SetRating(f.state.Rating - 1)
			return false, nil
		case key.Matches(msg, keys.Right):
			f.state.SetRating(f.state.Rating + 1)
			return false, nil
		}
	case fieldAgree:
		if key.Matches(msg, keys.Toggle) {
			f.state.Agreed = !f.state.Agreed
			return false, nil
		}
	case fieldBody:
		// enter is a newline inside the body; ctrl+s still submits
		if msg.String() != "enter" && key.Matches(msg, keys.Submit) {
			return f.trySubmit(), nil
		}
		f.body, cmd = f.body.Update(msg)
		return false, cmd
	}

	if key.Matches(msg, keys.Submit) {
		return f.trySubmit(), nil
	}

	switch f.focus {
	case fieldName:
		f.name, cmd = f.name.Update(msg)
	case fieldLink:
		f.link, cmd = f.link.Update(msg)
	}
	return false, cmd
}

func (f *reviewForm) trySubmit() bool {
	if f.busy {
		return false
	}
	if !f.CanSubmit() {
		f.err = "Fill in the name, link and review, and accept the moderation rules."
		return false
	}
	f.err = ""
	f.busy = true
	return true
}

func (f *reviewForm) View(s Styles) string {
	label := func(field formField, text string) string {
		if f.focus == field {
			return s.FocusedLabel.Render("> " + text)
		}
		return s.Label.Render("  " + text)
	}

	agree := s.CheckboxOff
	if f.state.Agreed {
		agree = s.Checkbox
	}

	submit := s.Muted.Render("[ Send ]")
	if f.CanSubmit() {
		submit = s.TabActive.Render("Send")
	}

	var b strings.Builder
	b.WriteString(s.Header.Render("Add review") + "\n\n")
	b.WriteString(label(fieldName, "Bot name") + "\n" + f.name.View() + "\n\n")
	b.WriteString(label(fieldLink, "Link") + "\n" + f.link.View() + "\n\n")
	b.WriteString(label(fieldBody, "Your experience") + "\n" + f.body.View() + "\n\n")
	b.WriteString(label(fieldRating, "Rating") + "  " + s.Stars.Render(stars(f.state.Rating)) + "\n")
	b.WriteString(label(fieldAgree, "I accept the moderation rules") + "  " + agree + "\n\n")
	b.WriteString(label(fieldSubmit, "") + submit)
	if f.busy {
		b.WriteString("  " + s.Muted.Render("sending..."))
	}
	if f.err != "" {
		b.WriteString("\n\n" + s.Error.Render(f.err))
	}
	return s.Dialog.Render(b.String())
}
