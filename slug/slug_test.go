package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/minivan/slug"
)

func TestMake(t *testing.T) {
	cases := map[string]string{
		"category":                     "category",
		"Design & User Research":       "design-user-research",
		"  graphic-and-visual-design ": "graphic-and-visual-design",
		"Élève":                        "eleve",
		"Pays d'origine":               "pays-d-origine",
		"nb_2020":                      "nb-2020",
		"!!!":                          slug.Fallback,
		"":                             slug.Fallback,
	}
	for in, want := range cases {
		assert.Equal(t, want, slug.Make(in), "Make(%q)", in)
	}
}

func TestAllocator_Collisions(t *testing.T) {
	a := slug.NewAllocator()

	assert.Equal(t, "design", a.Allocate("Design"))
	assert.Equal(t, "design0", a.Allocate("design"))
	assert.Equal(t, "design1", a.Allocate("DESIGN"))
	assert.Equal(t, "other", a.Allocate("other"))

	a.Reserve("weight")
	assert.True(t, a.Taken("weight"))
	assert.Equal(t, "weight0", a.Allocate("weight"))

	// independent sets do not collide
	b := slug.NewAllocator()
	assert.Equal(t, "design", b.Allocate("design"))
}

func TestAllocator_FallbackCollisions(t *testing.T) {
	a := slug.NewAllocator()

	assert.Equal(t, slug.Fallback, a.Allocate("名前"))
	assert.Equal(t, "attribute-0", a.Allocate("名前"))
	assert.Equal(t, "attribute-1", a.Allocate("年齢"))
	assert.Equal(t, "attribute0", a.Allocate("attribute"), "a literal key keeps the name suffix")
	assert.Equal(t, "x", a.Allocate("名x"))
}
