// internal/models/common_test.go
package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeStringArray(t *testing.T) {
	payload := EncodeStringArray([]string{"Pool", "Garden"})
	assert.Equal(t, `["Pool","Garden"]`, payload)
	assert.Equal(t, []string{"Pool", "Garden"}, DecodeStringArray(payload))
}

func TestEncodeStringArrayEmpty(t *testing.T) {
	assert.Equal(t, "", EncodeStringArray(nil))
	assert.Equal(t, "", EncodeStringArray([]string{}))
}

func TestDecodeStringArrayForgiving(t *testing.T) {
	assert.Equal(t, []string{}, DecodeStringArray(""))
	assert.Equal(t, []string{}, DecodeStringArray("not json"))
	assert.Equal(t, []string{}, DecodeStringArray(`{"oops":"object"}`))
	assert.Equal(t, []string{}, DecodeStringArray("null"))
}

func TestPropertyFeatureSet(t *testing.T) {
	p := Property{Features: EncodeStringArray([]string{"Pool", "Garage"})}
	assert.Equal(t, []string{"Pool", "Garage"}, p.FeatureSet())
	assert.True(t, p.HasFeature("Pool"))
	assert.False(t, p.HasFeature("Gym"))

	bare := Property{}
	assert.Empty(t, bare.FeatureSet())
	assert.Empty(t, bare.ImageList())
}
