package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProfanityFilterMask(t *testing.T) {
	pf := NewProfanityFilter([]string{"shit", "motherfucker", "fucker", "  ", "Shit", "ñoño"})

	cases := map[string]string{
		"":                  "",
		"clean text":        "clean text",
		"oh SHIT that hurt": "oh **** that hurt",
		"shitake mushrooms": "shitake mushrooms",
		"you motherfucker":  "you ************",
		"what a ñoño":       "what a ****",
		"fucker, shit":      "******, ****",
	}
	for in, want := range cases {
		assert.Equal(t, want, pf.Mask(in), in)
	}
}

func TestProfanityFilterEmpty(t *testing.T) {
	var nilFilter *ProfanityFilter
	assert.Equal(t, "shit", nilFilter.Mask("shit"))
	assert.Equal(t, "shit", NewProfanityFilter(nil).Mask("shit"))
}
