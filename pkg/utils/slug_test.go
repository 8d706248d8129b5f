package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	assert.Equal(t, "i-will-build-your-landing-page", Slugify("I will build your landing page"))
	assert.Equal(t, "logo-design-24h-delivery", Slugify("Logo Design!! (24h delivery)"))
	assert.Equal(t, "seo-audit", Slugify("  SEO & Audit  "))
	assert.Equal(t, "", Slugify("!!!"))
}
