package catalog

const (
	// LanguageAll is the language filter sentinel that matches every entry.
	LanguageAll = "ALL"

	TagAI = "AI"

	MinRating = 0
	MaxRating = 5
)

// BotEntry is one catalog record. Entries are treated as immutable once loaded.
type BotEntry struct {
	ID          string   `bson:"_id,omitempty" json:"id"`
	Slug        string   `bson:"slug" json:"slug"`
	Title       string   `bson:"title" json:"title"`
	Description string   `bson:"description" json:"description"`
	Tags        []string `bson:"tags" json:"tags"`
	Languages   []string `bson:"languages" json:"languages"`
	Rating      int      `bson:"rating" json:"rating"`
	Votes       int      `bson:"votes" json:"votes"`
	Rank        int      `bson:"rank" json:"rank"`
}

func (e BotEntry) HasTag(tag string) bool {
	return contains(e.Tags, tag)
}

func (e BotEntry) HasLanguage(code string) bool {
	return contains(e.Languages, code)
}

// Clone returns a copy that shares no slices with e.
func (e BotEntry) Clone() BotEntry {
	out := e
	out.Tags = append([]string(nil), e.Tags...)
	out.Languages = append([]string(nil), e.Languages...)
	return out
}

func contains(values []string, want string) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}

// FacetItem is a filter option with the number of entries carrying it.
type FacetItem struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type Facets struct {
	Languages []FacetItem `json:"languages"`
	Tags      []FacetItem `json:"tags"`
	Tabs      []string    `json:"tabs"`
	Total     int         `json:"total"`
}

// ListQuery is the raw listing filter as received from the query string.
type ListQuery struct {
	Query     string `validate:"max=200"`
	MinRating string `validate:"omitempty,numeric"`
	Language  string `validate:"omitempty,langfilter"`
	Tab       string `validate:"omitempty,max=16"`
	Compact   string `validate:"omitempty,oneof=true false 1 0"`
}
