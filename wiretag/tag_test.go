package wiretag

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTagString(t *testing.T) {
	assert.Equal(t, "Literal", Literal.String())
	assert.Equal(t, "UserDefined", UserDefined.String())
	assert.Equal(t, "Tag(99)", Tag(99).String())
}

func TestTagValid(t *testing.T) {
	valid := []Tag{Literal, String, WString, Vector, Map, List, Set, Endian, UserDefined}
	for _, tg := range valid {
		assert.True(t, tg.Valid(), tg.String())
	}
	assert.False(t, Unknown.Valid())
	assert.False(t, Tag(200).Valid())
}

func TestTagIsContainer(t *testing.T) {
	for _, tg := range []Tag{Vector, Map, List, Set} {
		assert.True(t, tg.IsContainer())
	}
	for _, tg := range []Tag{Literal, String, WString, Endian, UserDefined} {
		assert.False(t, tg.IsContainer())
	}
}

func TestTagIsVariableLength(t *testing.T) {
	for _, tg := range []Tag{String, WString, Vector, Map, List, Set, UserDefined} {
		assert.True(t, tg.IsVariableLength())
	}
	for _, tg := range []Tag{Literal, Endian} {
		assert.False(t, tg.IsVariableLength())
	}
}
