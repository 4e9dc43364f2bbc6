package infra_s3

import (
	"strings"
	"testing"

	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
)

type S3UnitSuite struct {
	suite.Suite
}

func (s *S3UnitSuite) TestBuildKey(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		parts []string
		want  string
	}{
		{name: "Should join with single slashes", parts: []string{"uploads/", "profiles/abc", "x.png"}, want: "uploads/profiles/abc/x.png"},
		{name: "Should drop empty prefix", parts: []string{"", "matches/1", "y.jpg"}, want: "matches/1/y.jpg"},
		{name: "Should strip backslashes", parts: []string{"up\\loads", "a.png"}, want: "uploads/a.png"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			assert.Equal(t, tc.want, buildKey(tc.parts...))
		})
	}
}

func (s *S3UnitSuite) TestUniqueNameKeepsExtension(t provider.T) {
	a := uniqueName("C:\\fotos\\Perfil.PNG")
	b := uniqueName("Perfil.PNG")

	assert.True(t, strings.HasSuffix(a, ".png"))
	assert.NotEqual(t, a, b)
	assert.NotContains(t, a, "fotos")
}

func TestS3Suite(t *testing.T) {
	suite.RunSuite(t, new(S3UnitSuite))
}
