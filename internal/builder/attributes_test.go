package builder

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reqif-exporter/internal/model"
	"reqif-exporter/internal/reqif"
	"reqif-exporter/internal/settings"
)

func TestParseBool(t *testing.T) {
	tests := []struct {
		in      string
		want    bool
		wantErr bool
	}{
		{in: "true", want: true},
		{in: "False", want: false},
		{in: " 1 ", want: true},
		{in: "0", want: false},
		{in: "YES", want: true},
		{in: "no", want: false},
		{in: "maybe", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseBool(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{in: "2024-03-13T10:15:09.017Z", want: time.Date(2024, 3, 13, 10, 15, 9, 17e6, time.UTC)},
		{in: "2024-03-13T10:15:09", want: time.Date(2024, 3, 13, 10, 15, 9, 0, time.UTC)},
		{in: "2024-03-13", want: time.Date(2024, 3, 13, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseDate(tt.in)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s", got)
		})
	}

	_, err := parseDate("13/03/2024")
	assert.Error(t, err)
}

func TestParseInteger(t *testing.T) {
	n, err := parseInteger("-5")
	require.NoError(t, err)
	assert.Equal(t, int64(-5), n)

	n, err = parseInteger("3.0")
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	_, err = parseInteger("3.5")
	assert.Error(t, err)

	_, err = parseInteger("1e300")
	assert.Error(t, err)
}

func TestIsUnset(t *testing.T) {
	assert.True(t, isUnset(""))
	assert.True(t, isUnset(" - "))
	assert.False(t, isUnset("0"))
}

func TestEnumerationValue_MultiSelect(t *testing.T) {
	template := newTemplate()
	objectType := template.CoreContent.SpecTypes[1]

	def, ok := reqif.FindAttributeDefinition(objectType, "_req-status")
	require.True(t, ok)

	enumDef := def.(*reqif.AttributeDefinitionEnumeration)
	multi := &model.EnumerationParameterType{AllowMultiSelect: true}

	single := enumerationValue(enumDef, multi, "closed | open")
	require.NotNil(t, single)
	assert.Len(t, single.(*reqif.AttributeValueEnumeration).Values, 1)

	multiDef := *enumDef
	multiDef.MultiValued = true

	both := enumerationValue(&multiDef, multi, "closed | unknown | open")
	require.NotNil(t, both)

	values := both.(*reqif.AttributeValueEnumeration).Values
	require.Len(t, values, 2)
	assert.Equal(t, "_ev-closed", values[0].Identifier)
	assert.Equal(t, "_ev-open", values[1].Identifier)

	assert.Nil(t, enumerationValue(&multiDef, multi, "unknown"))
}

func TestCoerce_Incompatible(t *testing.T) {
	conv := conversion{settings: &settings.ExportSettings{}}
	template := newTemplate()
	objectType := template.CoreContent.SpecTypes[1]

	priorityDef, _ := reqif.FindAttributeDefinition(objectType, "_req-priority")
	statusDef, _ := reqif.FindAttributeDefinition(objectType, "_req-status")

	_, err := conv.coerce(model.ParameterValue{ParameterType: comment, Value: []string{"text"}}, priorityDef)
	assert.ErrorIs(t, err, ErrIncompatibleValue)

	_, err = conv.coerce(model.ParameterValue{ParameterType: mass, Value: []string{"1.5"}}, statusDef)
	assert.ErrorIs(t, err, ErrIncompatibleValue)

	v, err := conv.coerce(model.ParameterValue{ParameterType: mass}, statusDef)
	require.NoError(t, err)
	assert.Nil(t, v)
}
