package location

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	settlementPrefixRe = regexp.MustCompile(`(?i)^(м\.|с\.|смт\.|пгт\.|сщ\.)\s*`)
	adminUnitRe        = regexp.MustCompile(`(?i)^(с[-/\\]?рада\.?|сільрада\.?|рада\.?)`)
	streetTypeRe       = regexp.MustCompile(`(?i)^(вул\.|просп\.|пр\.|пров\.|пл\.|бул\.)\s*`)
	houseNumberRe      = regexp.MustCompile(`\s*,?\s*\d[\d/]*.*`)
	cyrillicRe         = regexp.MustCompile(`[а-яА-ЯіїєґІЇЄҐ]`)
)

// bareStreetTypes are street names that consist of a type word only.
var bareStreetTypes = map[string]struct{}{ //nolint: gochecknoglobals
	"вул.": {}, "пр.": {}, "пров.": {}, "пл.": {}, "просп.": {}, "бул.": {},
}

const minStreetNameLength = 5

// NormalizeCityName strips a settlement type prefix such as "м." or "смт.".
func NormalizeCityName(name string) string {
	return strings.TrimSpace(settlementPrefixRe.ReplaceAllString(strings.TrimSpace(name), ""))
}

// IsAdministrativeUnit reports whether a registry settlement name denotes a
// council rather than a place people live in.
func IsAdministrativeUnit(name string) bool {
	return adminUnitRe.MatchString(strings.TrimSpace(name))
}

// CleanStreetName cuts house numbers off a registry street name. It returns
// an empty string for names that are only a street type, are shorter than
// five letters or have no Cyrillic letters at all.
func CleanStreetName(name string) string {
	name = strings.TrimSpace(houseNumberRe.ReplaceAllString(name, ""))

	if _, ok := bareStreetTypes[strings.ToLower(name)]; ok {
		return ""
	}
	if utf8.RuneCountInString(name) < minStreetNameLength || !cyrillicRe.MatchString(name) {
		return ""
	}

	return name
}

// BareStreetName drops a leading street type, "вул. Хрещатик" becomes "Хрещатик".
func BareStreetName(name string) string {
	return strings.TrimSpace(streetTypeRe.ReplaceAllString(strings.TrimSpace(name), ""))
}

var translit = map[rune]string{ //nolint: gochecknoglobals
	'а': "a", 'б': "b", 'в': "v", 'г': "h", 'ґ': "g", 'д': "d", 'е': "e", 'є': "ie",
	'ж': "zh", 'з': "z", 'и': "y", 'і': "i", 'ї': "i", 'й': "i", 'к': "k", 'л': "l",
	'м': "m", 'н': "n", 'о': "o", 'п': "p", 'р': "r", 'с': "s", 'т': "t", 'у': "u",
	'ф': "f", 'х': "kh", 'ц': "ts", 'ч': "ch", 'ш': "sh", 'щ': "shch", 'ю': "iu", 'я': "ia",
	'ь': "", '\'': "", '’': "", 'ʼ': "",
}

// at the start of a word these letters are spelled differently
var translitInitial = map[rune]string{ //nolint: gochecknoglobals
	'є': "ye", 'ї': "yi", 'й': "y", 'ю': "yu", 'я': "ya",
}

// Transliterate renders Ukrainian text in Latin letters following the
// national transliteration table. Characters outside the alphabet are kept.
func Transliterate(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	prev := ' '
	for _, r := range s {
		lower := unicode.ToLower(r)
		latin, ok := translit[lower]
		if !ok {
			b.WriteRune(r)
			prev = r

			continue
		}

		initial := !unicode.IsLetter(prev) && prev != '\'' && prev != '’' && prev != 'ʼ'
		if v, ok := translitInitial[lower]; ok && initial {
			latin = v
		}
		// "зг" is written "zgh" to tell it from "ж"
		if lower == 'г' && unicode.ToLower(prev) == 'з' {
			latin = "gh"
		}

		if latin != "" && lower != r {
			first, size := utf8.DecodeRuneInString(latin)
			latin = string(unicode.ToUpper(first)) + latin[size:]
		}
		b.WriteString(latin)
		prev = r
	}

	return b.String()
}
