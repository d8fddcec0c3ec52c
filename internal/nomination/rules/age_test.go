package rules

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"dematkyc/internal/nomination/models"
)

type AgeSuite struct {
	suite.Suite
	now time.Time
}

func TestAgeSuite(t *testing.T) {
	suite.Run(t, new(AgeSuite))
}

func (s *AgeSuite) SetupTest() {
	s.now = time.Date(2026, time.October, 16, 11, 30, 0, 0, time.UTC)
}

func (s *AgeSuite) dob(years, months, days int) string {
	return s.now.AddDate(-years, -months, -days).Format(models.DateLayout)
}

func (s *AgeSuite) TestAgeOn() {
	s.Run("counts completed years only", func() {
		dob := time.Date(2000, time.December, 1, 0, 0, 0, 0, time.UTC)
		s.Equal(25, AgeOn(dob, s.now))
	})

	s.Run("birthday today completes the year", func() {
		dob := time.Date(2000, time.October, 16, 0, 0, 0, 0, time.UTC)
		s.Equal(26, AgeOn(dob, s.now))
	})

	s.Run("birthday tomorrow does not", func() {
		dob := time.Date(2000, time.October, 17, 0, 0, 0, 0, time.UTC)
		s.Equal(25, AgeOn(dob, s.now))
	})
}

func (s *AgeSuite) TestIsMinorBoundary() {
	s.Run("exactly eighteen today is not a minor", func() {
		s.False(IsMinor(s.dob(18, 0, 0), s.now))
	})

	s.Run("one day short of eighteen is a minor", func() {
		dob := s.now.AddDate(-18, 0, 1).Format(models.DateLayout)
		s.True(IsMinor(dob, s.now))
	})

	s.Run("ten year old is a minor", func() {
		s.True(IsMinor(s.dob(10, 0, 0), s.now))
	})

	s.Run("unparseable dob is not a minor", func() {
		s.False(IsMinor("16/10/2016", s.now))
		s.False(IsMinor("", s.now))
	})
}

func (s *AgeSuite) TestEffectiveMinor() {
	s.Run("explicit toggle makes an adult a minor", func() {
		n := models.Nominee{DOB: s.dob(30, 0, 0), IsMinor: true}
		s.True(EffectiveMinor(n, s.now))
		s.False(MinorLocked(n, s.now))
	})

	s.Run("dob makes a minor regardless of toggle", func() {
		n := models.Nominee{DOB: s.dob(5, 0, 0), IsMinor: false}
		s.True(EffectiveMinor(n, s.now))
		s.True(MinorLocked(n, s.now))
	})

	s.Run("adult without toggle", func() {
		n := models.Nominee{DOB: s.dob(40, 0, 0)}
		s.False(EffectiveMinor(n, s.now))
	})
}
