package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatient_Age(t *testing.T) {
	dob := time.Date(1950, time.June, 15, 0, 0, 0, 0, time.UTC)
	p := Patient{DateOfBirth: &dob}

	before := p.Age(time.Date(2024, time.June, 14, 12, 0, 0, 0, time.UTC))
	require.NotNil(t, before)
	assert.Equal(t, 73, *before)

	on := p.Age(time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC))
	require.NotNil(t, on)
	assert.Equal(t, 74, *on)

	assert.Nil(t, (&Patient{}).Age(time.Now()))
}

func TestFilterPatients(t *testing.T) {
	patients := []Patient{
		{FirstName: "John", LastName: "Doe", Phone: "555-0100", MedicalConditions: "Diabetes"},
		{FirstName: "Mary", LastName: "Smith", Phone: "555-0199"},
		{FirstName: "Alan", LastName: "Ray", MedicalConditions: "Hypertension"},
	}

	assert.Len(t, FilterPatients(patients, ""), 3)

	byName := FilterPatients(patients, "john d")
	require.Len(t, byName, 1)
	assert.Equal(t, "Doe", byName[0].LastName)

	byPhone := FilterPatients(patients, "0199")
	require.Len(t, byPhone, 1)
	assert.Equal(t, "Smith", byPhone[0].LastName)

	byCondition := FilterPatients(patients, "HYPER")
	require.Len(t, byCondition, 1)
	assert.Equal(t, "Ray", byCondition[0].LastName)

	assert.Empty(t, FilterPatients(patients, "zzz"))
}
