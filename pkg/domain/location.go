package domain

// Language selects which name of a city is searched and rendered.
type Language string

const (
	LanguageUK Language = "uk"
	LanguageEN Language = "en"
)

// City is a settlement of the address registry.
type City struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	NameEn string `json:"nameEn,omitempty"`
	Oblast string `json:"oblast"`
}

// Label renders the city as "<name> (<oblast>)" in the requested language,
// falling back to the Ukrainian name when no English one is known.
func (c City) Label(lang Language) string {
	name := c.Name
	if lang == LanguageEN && c.NameEn != "" {
		name = c.NameEn
	}
	if c.Oblast == "" {
		return name
	}

	return name + " (" + c.Oblast + ")"
}

// CityRef names a city the way the address registry does. The name alone
// is ambiguous, several oblasts have a Миколаїв.
type CityRef struct {
	Name   string
	Oblast string
}

// Street belongs to a city.
type Street struct {
	ID     int64  `json:"id"`
	CityID int64  `json:"cityId"`
	Name   string `json:"name"`
}
