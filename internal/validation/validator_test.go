package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Lang string `validate:"omitempty,langfilter"`
	Name string `validate:"required,notblank"`
	Link string `validate:"required,botlink"`
}

func TestCustomValidators(t *testing.T) {
	v := New()

	cases := []struct {
		name  string
		input sample
		ok    bool
		field string
	}{
		{name: "valid url", input: sample{Lang: "ru", Name: "SongGift", Link: "https://t.me/songgift_bot"}, ok: true},
		{name: "valid handle", input: sample{Lang: "ALL", Name: "SongGift", Link: "@songgift_bot"}, ok: true},
		{name: "empty lang allowed", input: sample{Name: "x", Link: "https://example.com"}, ok: true},
		{name: "bad lang", input: sample{Lang: "r1", Name: "x", Link: "https://example.com"}, field: "Lang"},
		{name: "blank name", input: sample{Name: "   ", Link: "https://example.com"}, field: "Name"},
		{name: "ftp link", input: sample{Name: "x", Link: "ftp://example.com"}, field: "Link"},
		{name: "bare handle", input: sample{Name: "x", Link: "@"}, field: "Link"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := v.Struct(tc.input)
			if tc.ok {
				assert.NoError(t, err)
				return
			}
			errs := v.ValidationErrors(err)
			if assert.Len(t, errs, 1) {
				assert.Equal(t, tc.field, errs[0].Field())
			}
		})
	}
}

func TestValidationErrorsNil(t *testing.T) {
	assert.Nil(t, New().ValidationErrors(nil))
}
