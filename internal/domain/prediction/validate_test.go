package prediction

import (
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/yanqian/astropredict-web/pkg/errors"
)

func validForm() Form {
	return Form{
		Name:      "Ada",
		BirthDate: "1990-01-01",
		BirthTime: "12:00",
		Latitude:  "40.7",
		Longitude: "-74.0",
		Gender:    "Female",
	}
}

func TestParseForm(t *testing.T) {
	tests := []struct {
		name         string
		mutate       func(f *Form)
		wantCategory string
		wantField    string
	}{
		{name: "valid", mutate: func(f *Form) {}},
		{name: "equator and meridian are valid", mutate: func(f *Form) { f.Latitude = "0"; f.Longitude = "0" }},
		{name: "range bounds inclusive", mutate: func(f *Form) { f.Latitude = "-90"; f.Longitude = "180" }},
		{name: "empty name", mutate: func(f *Form) { f.Name = "" }, wantCategory: CategoryMissingField, wantField: "name"},
		{name: "blank name", mutate: func(f *Form) { f.Name = "   " }, wantCategory: CategoryMissingField, wantField: "name"},
		{name: "missing date", mutate: func(f *Form) { f.BirthDate = "" }, wantCategory: CategoryMissingField, wantField: "birth_date"},
		{name: "missing time", mutate: func(f *Form) { f.BirthTime = "" }, wantCategory: CategoryMissingField, wantField: "birth_time"},
		{name: "missing gender", mutate: func(f *Form) { f.Gender = "" }, wantCategory: CategoryMissingField, wantField: "gender"},
		{name: "missing latitude", mutate: func(f *Form) { f.Latitude = "" }, wantCategory: CategoryMissingField, wantField: "latitude"},
		{name: "latitude too large", mutate: func(f *Form) { f.Latitude = "95" }, wantCategory: CategoryInvalidCoordinates, wantField: "latitude"},
		{name: "longitude too small", mutate: func(f *Form) { f.Latitude = "45"; f.Longitude = "-200" }, wantCategory: CategoryInvalidCoordinates, wantField: "longitude"},
		{name: "latitude not numeric", mutate: func(f *Form) { f.Latitude = "north" }, wantCategory: CategoryInvalidCoordinates, wantField: "latitude"},
		{name: "missing field wins over range", mutate: func(f *Form) { f.Name = ""; f.Latitude = "95" }, wantCategory: CategoryMissingField, wantField: "name"},
		{name: "missing field wins over unparsable coordinate", mutate: func(f *Form) { f.Gender = ""; f.Longitude = "west" }, wantCategory: CategoryMissingField, wantField: "gender"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			form := validForm()
			tt.mutate(&form)

			in, err := ParseForm(form)
			if tt.wantCategory == "" {
				require.NoError(t, err)
				require.Equal(t, "Ada", in.Name)
				return
			}
			require.Error(t, err)
			require.True(t, apperrors.IsCode(err, "invalid_input"))
			require.Equal(t, tt.wantCategory, ValidationCategory(err))

			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			require.Equal(t, tt.wantField, vErr.Field)
		})
	}
}

func TestParseFormTrimsAndConverts(t *testing.T) {
	form := validForm()
	form.Name = "  Ada  "
	in, err := ParseForm(form)
	require.NoError(t, err)
	require.Equal(t, BirthInput{
		Name:      "Ada",
		BirthDate: "1990-01-01",
		BirthTime: "12:00",
		Latitude:  40.7,
		Longitude: -74.0,
		Gender:    "Female",
	}, in)
}

func TestParseFormUsesBackendGenderSpelling(t *testing.T) {
	for raw, want := range map[string]string{
		"female":  GenderFemale,
		" MALE ":  GenderMale,
		"Other":   GenderOther,
		"unknown": "unknown",
	} {
		form := validForm()
		form.Gender = raw
		in, err := ParseForm(form)
		require.NoError(t, err)
		require.Equal(t, want, in.Gender, raw)
	}
}

func TestValidationMessages(t *testing.T) {
	_, err := ParseForm(Form{})
	require.Equal(t, "Please fill all required fields", apperrors.MessageOf(err))

	form := validForm()
	form.Latitude = "95"
	_, err = ParseForm(form)
	require.Equal(t, "Invalid coordinates. Latitude: -90 to 90, Longitude: -180 to 180", apperrors.MessageOf(err))
}

func TestValidateSigns(t *testing.T) {
	_, err := validateSigns(CompatibilityForm{Sign1: "Leo"})
	require.True(t, apperrors.IsCode(err, "invalid_input"))
	require.Equal(t, "Please select both zodiac signs", apperrors.MessageOf(err))

	got, err := validateSigns(CompatibilityForm{Sign1: " Leo ", Sign2: "Aries"})
	require.NoError(t, err)
	require.Equal(t, CompatibilityForm{Sign1: "Leo", Sign2: "Aries"}, got)
}
