package location_test

import (
	"testing"

	"easyrent/internal/location"

	"github.com/stretchr/testify/require"
)

func TestNormalizeCityName(t *testing.T) {
	cases := map[string]string{
		"м.Київ":           "Київ",
		"с. Калинівка":     "Калинівка",
		"смт. Ворзель":     "Ворзель",
		"  Львів ":         "Львів",
		"Мукачево":         "Мукачево",
		"ПГТ. Коцюбинське": "Коцюбинське",
	}
	for in, want := range cases {
		require.Equal(t, want, location.NormalizeCityName(in), in)
	}

	require.True(t, location.IsAdministrativeUnit("с/рада. Іванівська"))
	require.True(t, location.IsAdministrativeUnit("сільрада Петрівська"))
	require.False(t, location.IsAdministrativeUnit("с. Радивонівка"))
}

func TestCleanStreetName(t *testing.T) {
	cases := []struct {
		name string
		in   string
		out  string
	}{
		{name: "cut house number", in: "вул. Хрещатик, 22", out: "вул. Хрещатик"},
		{name: "cut fraction number", in: "вул. Січових Стрільців 12/4 кв. 5", out: "вул. Січових Стрільців"},
		{name: "bare type", in: "вул.", out: ""},
		{name: "bare type with number", in: "пров. 3", out: ""},
		{name: "too short", in: "Лип", out: ""},
		{name: "latin only", in: "Main Street", out: ""},
		{name: "kept", in: "просп. Перемоги", out: "просп. Перемоги"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.out, location.CleanStreetName(tc.in))
		})
	}
}

func TestBareStreetName(t *testing.T) {
	require.Equal(t, "Хрещатик", location.BareStreetName("вул. Хрещатик"))
	require.Equal(t, "Перемоги", location.BareStreetName("Просп.Перемоги"))
	require.Equal(t, "Хорива", location.BareStreetName("Хорива"))
}

func TestTransliterate(t *testing.T) {
	cases := map[string]string{
		"Київ":             "Kyiv",
		"Харків":           "Kharkiv",
		"Запоріжжя":        "Zaporizhzhia",
		"Івано-Франківськ": "Ivano-Frankivsk",
		"Згурівка":         "Zghurivka",
		"Яготин":           "Yahotyn",
		"Розсошенці":       "Rozsoshentsi",
		"Знам'янка":        "Znamianka",
		"Чернігів (обл.)":  "Chernihiv (obl.)",
	}
	for in, want := range cases {
		require.Equal(t, want, location.Transliterate(in), in)
	}
}
