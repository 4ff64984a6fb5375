package contract

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-builder/resume/model"
)

func TestDecodeAcceptsUnknownAndMissingFields(t *testing.T) {
	body := []byte(`{
		"name": "Jane Doe",
		"favouriteColour": "teal",
		"experience": [{"role": "Engineer", "company": "Acme", "achievements": ["Shipped v2"], "team": 4}]
	}`)

	resume, err := Decode(body)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", resume.Name)
	require.Len(t, resume.Experience, 1)
	assert.Equal(t, []string{"Shipped v2"}, resume.Experience[0].Achievements)
	assert.Empty(t, resume.Education)
}

func TestDecodeAcceptsNulls(t *testing.T) {
	resume, err := Decode([]byte(`{"name": null, "skills": null, "address": ["1 Main St", null]}`))
	require.NoError(t, err)
	assert.Equal(t, "", resume.Name)
	assert.Equal(t, []string{"1 Main St", ""}, resume.Address)
}

func TestDecodeRejectsMistypedValues(t *testing.T) {
	_, err := Decode([]byte(`{"name": "Jane", "skills": "Go, SQL", "experience": [{"achievements": [1, 2]}]}`))
	require.Error(t, err)

	var shapeErr ShapeError
	require.True(t, errors.As(err, &shapeErr))
	assert.GreaterOrEqual(t, len(shapeErr.Fields), 2)
	fields := make([]string, 0, len(shapeErr.Fields))
	for _, f := range shapeErr.Fields {
		fields = append(fields, f.Field)
	}
	assert.Contains(t, fields, "skills")
}

func TestDecodeRejectsNonObject(t *testing.T) {
	_, err := Decode([]byte(`["Jane"]`))
	assert.Error(t, err)

	_, err = Decode([]byte(`{"name": `))
	assert.Error(t, err)
}

func TestNormalizeAppliesPlaceholders(t *testing.T) {
	resume := model.ResumeInput{Name: "  ", Phone: " 555 ", Skills: []string{" Go "}}
	Normalize(&resume)

	assert.Equal(t, PlaceholderName, resume.Name)
	assert.Equal(t, PlaceholderJobTitle, resume.JobTitle)
	assert.Equal(t, "555", resume.Phone)
	assert.Equal(t, []string{" Go "}, resume.Skills)

	resume = model.ResumeInput{Name: " Jane Doe ", JobTitle: "Engineer"}
	Normalize(&resume)
	assert.Equal(t, "Jane Doe", resume.Name)
	assert.Equal(t, "Engineer", resume.JobTitle)
}
