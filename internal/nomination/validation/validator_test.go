package validation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"dematkyc/internal/nomination/models"
	"dematkyc/pkg/requestcontext"
)

var fixedNow = time.Date(2026, time.October, 16, 10, 0, 0, 0, time.UTC)

func address() models.Address {
	return models.Address{Line: "12 MG Road", Country: "IN", State: "KA", PinCode: "560001"}
}

func adultNominee() models.Nominee {
	return models.Nominee{
		Name:                "Ravi Kumar",
		DOB:                 "1990-04-12",
		ProofType:           models.ProofPAN,
		ProofNumber:         "ABCDE1234F",
		Mobile:              "9876543210",
		Email:               "ravi@example.com",
		Address:             address(),
		FatherOrHusbandName: "Suresh Kumar",
		Gender:              models.GenderMale,
		PAN:                 "ABCDE1234F",
		Relation:            "Son",
		PercentageShares:    100,
	}
}

func guardian() *models.Guardian {
	return &models.Guardian{
		Name:                "Lakshmi Kumar",
		DOB:                 "1975-01-01",
		Mobile:              "9123456780",
		Address:             address(),
		FatherOrHusbandName: "Mohan Rao",
		Gender:              models.GenderFemale,
		PAN:                 "PQRST6789K",
		Aadhar:              "123456789012",
		Relation:            "Mother",
	}
}

func holder() *models.Holder {
	return &models.Holder{
		Name:                "Anita Kumar",
		FatherOrHusbandName: "Ravi Kumar",
		PAN:                 "LMNOP4321Q",
		Mobile:              "9000000001",
		Email:               "anita@example.com",
		DOB:                 "1985-06-30",
		Aadhar:              "xxxxxxxx4321",
		Gender:              models.GenderFemale,
		Nationality:         "Indian",
	}
}

func poa() models.POAGrant {
	return models.POAGrant{
		ID:          "poa-1",
		SetupDate:   "2026-10-01",
		FromDate:    "2026-10-01",
		PurposeCode: "DDPI",
		Flags:       []models.POAFlag{models.POASettlement, models.POAMarginPledge},
	}
}

func validSubmission() models.Submission {
	return models.Submission{
		WishToNominate: models.Yes,
		WishToPOA:      models.Yes,
		Nominees:       []models.Nominee{adultNominee()},
		POAs:           []models.POAGrant{poa()},
	}
}

type ValidatorSuite struct {
	suite.Suite
	v   *Validator
	ctx context.Context
}

func TestValidatorSuite(t *testing.T) {
	suite.Run(t, new(ValidatorSuite))
}

func (s *ValidatorSuite) SetupSuite() {
	v, err := New()
	s.Require().NoError(err)
	s.v = v
	s.ctx = requestcontext.WithTime(context.Background(), fixedNow)
}

func (s *ValidatorSuite) messageAt(errs ErrorList, path string) string {
	for _, fe := range errs {
		if fe.Path == path {
			return fe.Message
		}
	}
	return ""
}

func (s *ValidatorSuite) TestValidSubmission() {
	errs := s.v.Validate(s.ctx, validSubmission())
	s.Empty(errs)
	s.Equal(100, s.v.Progress(s.ctx, validSubmission()))
}

func (s *ValidatorSuite) TestPAN() {
	s.Run("lower-case input is normalised and passes", func() {
		sub := validSubmission()
		sub.Nominees[0].PAN = "abcde1234f"
		s.Empty(s.v.Validate(s.ctx, sub).Under("nominees.0.pan"))
		s.Equal("ABCDE1234F", Normalize(sub).Nominees[0].PAN)
	})

	s.Run("wrong letter digit arrangement fails", func() {
		sub := validSubmission()
		sub.Nominees[0].PAN = "ABCD1234EF"
		s.Equal(messages["pan"], s.messageAt(s.v.Validate(s.ctx, sub), "nominees.0.pan"))
	})
}

func (s *ValidatorSuite) TestAadhar() {
	cases := []struct {
		value string
		ok    bool
	}{
		{"123456789012", true},
		{"********1234", true},
		{"xxXX****1234", true},
		{"12345678901", false},
		{"*******12345", false},
		{"********123", false},
		{"abcdefgh1234", false},
	}
	for _, tc := range cases {
		s.Run(tc.value, func() {
			sub := validSubmission()
			sub.AddSecondHolder = true
			sub.Holders.Second = holder()
			sub.Holders.Second.Aadhar = tc.value

			errs := s.v.Validate(s.ctx, sub).Under("holders.secondHolder.aadhar")
			if tc.ok {
				s.Empty(errs)
			} else {
				s.NotEmpty(errs)
			}
		})
	}
}

func (s *ValidatorSuite) TestShareTotal() {
	s.Run("shares summing to 90 fail at the nominees path", func() {
		sub := validSubmission()
		sub.Nominees = []models.Nominee{adultNominee(), adultNominee(), adultNominee()}
		sub.Nominees[0].PercentageShares = 40
		sub.Nominees[1].PercentageShares = 40
		sub.Nominees[2].PercentageShares = 10

		msg := s.messageAt(s.v.Validate(s.ctx, sub), "nominees")
		s.Contains(msg, "must equal 100%")
	})

	s.Run("sum is ignored when not nominating", func() {
		sub := validSubmission()
		sub.WishToNominate = models.No
		sub.Nominees[0].PercentageShares = 10
		s.Empty(s.v.Validate(s.ctx, sub))
	})

	s.Run("share outside 1 to 100 is a field error", func() {
		sub := validSubmission()
		sub.Nominees[0].PercentageShares = 0
		s.NotEmpty(s.messageAt(s.v.Validate(s.ctx, sub), "nominees.0.percentageShares"))
	})
}

func (s *ValidatorSuite) TestGuardianOnlyForMinors() {
	minorDOB := fixedNow.AddDate(-10, 0, 0).Format(models.DateLayout)

	s.Run("minor by dob without guardian", func() {
		sub := validSubmission()
		sub.Nominees[0].DOB = minorDOB
		s.Equal(RequiredMessage, s.messageAt(s.v.Validate(s.ctx, sub), "nominees.0.guardian"))
	})

	s.Run("minor guardian is fully validated", func() {
		sub := validSubmission()
		sub.Nominees[0].DOB = minorDOB
		sub.Nominees[0].Guardian = &models.Guardian{}

		errs := s.v.Validate(s.ctx, sub)
		s.Equal(RequiredMessage, s.messageAt(errs, "nominees.0.guardian.name"))
		s.Equal(RequiredMessage, s.messageAt(errs, "nominees.0.guardian.aadhar"))
		s.Equal(RequiredMessage, s.messageAt(errs, "nominees.0.guardian.address.pinCode"))
		s.Empty(s.messageAt(errs, "nominees.0.guardian.email"), "guardian email is optional")
	})

	s.Run("explicit toggle on an adult requires a guardian", func() {
		sub := validSubmission()
		sub.Nominees[0].IsMinor = true
		s.Equal(RequiredMessage, s.messageAt(s.v.Validate(s.ctx, sub), "nominees.0.guardian"))
	})

	s.Run("adult with an invalid guardian still passes", func() {
		sub := validSubmission()
		sub.Nominees[0].Guardian = &models.Guardian{PAN: "nonsense"}
		s.Empty(s.v.Validate(s.ctx, sub))
	})

	s.Run("minor with a valid guardian passes", func() {
		sub := validSubmission()
		sub.Nominees[0].DOB = minorDOB
		sub.Nominees[0].Guardian = guardian()
		s.Empty(s.v.Validate(s.ctx, sub))
	})
}

func (s *ValidatorSuite) TestDates() {
	s.Run("future dob fails", func() {
		sub := validSubmission()
		sub.Nominees[0].DOB = "2026-10-17"
		s.Equal(messages["pastdate"], s.messageAt(s.v.Validate(s.ctx, sub), "nominees.0.dob"))
	})

	s.Run("dob of today passes", func() {
		sub := validSubmission()
		sub.Nominees[0].DOB = "2026-10-16"
		sub.Nominees[0].Guardian = guardian()
		s.Empty(s.v.Validate(s.ctx, sub).Under("nominees.0.dob"))
	})

	s.Run("malformed date fails format check", func() {
		sub := validSubmission()
		sub.Nominees[0].DOB = "16/10/1990"
		s.Equal(messages["isodate"], s.messageAt(s.v.Validate(s.ctx, sub), "nominees.0.dob"))
	})

	s.Run("poa to date before from date", func() {
		sub := validSubmission()
		sub.POAs[0].ToDate = "2026-09-30"
		s.Equal(MsgToDateBeforeFrom, s.messageAt(s.v.Validate(s.ctx, sub), "poas.0.toDate"))
	})
}

func (s *ValidatorSuite) TestRequiredAndFieldPaths() {
	sub := validSubmission()
	sub.Nominees[0].Name = "  "
	sub.Nominees[0].Address.PinCode = "5600"
	sub.Nominees[0].Mobile = "98765"
	sub.Nominees[0].Relation = "Cousin"

	errs := s.v.Validate(s.ctx, sub)
	s.Equal(RequiredMessage, s.messageAt(errs, "nominees.0.name"))
	s.Equal("Must be exactly 6 characters.", s.messageAt(errs, "nominees.0.address.pinCode"))
	s.Equal(messages["mobile"], s.messageAt(errs, "nominees.0.mobile"))
	s.Equal(messages["relation"], s.messageAt(errs, "nominees.0.relation"))
	s.Len(errs.Under("nominees.0"), 4, "every violation is reported")
}

func (s *ValidatorSuite) TestSectionPresence() {
	s.Run("opted in without nominees", func() {
		sub := validSubmission()
		sub.Nominees = nil
		s.Equal(MsgNomineeRequired, s.messageAt(s.v.Validate(s.ctx, sub), "nominees"))
	})

	s.Run("opted in without POA", func() {
		sub := validSubmission()
		sub.POAs = nil
		s.Equal(MsgPOARequired, s.messageAt(s.v.Validate(s.ctx, sub), "poas"))
	})

	s.Run("unanswered choices", func() {
		errs := s.v.Validate(s.ctx, models.Submission{})
		s.Equal(RequiredMessage, s.messageAt(errs, "wishToNominate"))
		s.Equal(RequiredMessage, s.messageAt(errs, "wishToPOA"))
	})
}

func (s *ValidatorSuite) TestPOAFlags() {
	s.Run("single flag", func() {
		sub := validSubmission()
		sub.POAs[0].Flags = []models.POAFlag{models.POASettlement}
		s.Equal(MsgPOAFlagsMin, s.messageAt(s.v.Validate(s.ctx, sub), "poas.0.flags"))
	})

	s.Run("duplicates count once", func() {
		sub := validSubmission()
		sub.POAs[0].Flags = []models.POAFlag{models.POASettlement, models.POASettlement}
		s.Equal(MsgPOAFlagsMin, s.messageAt(s.v.Validate(s.ctx, sub), "poas.0.flags"))
	})

	s.Run("unknown flag reported by index", func() {
		sub := validSubmission()
		sub.POAs[0].Flags = []models.POAFlag{models.POASettlement, "gift"}
		s.NotEmpty(s.messageAt(s.v.Validate(s.ctx, sub), "poas.0.flags.1"))
	})
}

func (s *ValidatorSuite) TestHolders() {
	s.Run("flagged second holder must exist", func() {
		sub := validSubmission()
		sub.AddSecondHolder = true
		s.Equal(RequiredMessage, s.messageAt(s.v.Validate(s.ctx, sub), "holders.secondHolder"))
	})

	s.Run("unflagged holders are not validated", func() {
		sub := validSubmission()
		sub.Holders.Second = &models.Holder{}
		s.Empty(s.v.Validate(s.ctx, sub))
	})

	s.Run("third holder email is required", func() {
		sub := validSubmission()
		sub.AddSecondHolder, sub.AddThirdHolder = true, true
		sub.Holders.Second = holder()
		sub.Holders.Third = holder()
		sub.Holders.Third.Email = ""
		s.Equal(RequiredMessage, s.messageAt(s.v.Validate(s.ctx, sub), "holders.thirdHolder.email"))
	})

	s.Run("third without second", func() {
		sub := validSubmission()
		sub.AddThirdHolder = true
		sub.Holders.Third = holder()
		s.Equal(MsgThirdNeedsSecond, s.messageAt(s.v.Validate(s.ctx, sub), "addThirdHolder"))
	})
}

func (s *ValidatorSuite) TestProgress() {
	sub := validSubmission()
	sub.Nominees[0].PercentageShares = 60
	s.Equal(80, s.v.Progress(s.ctx, sub))

	s.Equal(0, ProgressOf(ErrorList{
		{Path: "wishToNominate"}, {Path: "nominees"}, {Path: "wishToPOA"},
		{Path: "poas.0.id"}, {Path: "holders.secondHolder"},
	}))
}

func TestNormalizeDoesNotMutateInput(t *testing.T) {
	sub := validSubmission()
	sub.Nominees[0].PAN = " abcde1234f "
	sub.POAs[0].Flags = []models.POAFlag{models.POASettlement, models.POASettlement}

	out := Normalize(sub)
	require.Len(t, out.POAs[0].Flags, 1)
	assert.Equal(t, "ABCDE1234F", out.Nominees[0].PAN)
	assert.Equal(t, " abcde1234f ", sub.Nominees[0].PAN)
	assert.Len(t, sub.POAs[0].Flags, 2)
}

func TestJoinPath(t *testing.T) {
	assert.Equal(t, "poas.0.flags.1", joinPath("poas.0", "POAGrant.flags[1]"))
	assert.Equal(t, "nominees.2.address.line", joinPath("nominees.2", "Nominee.address.line"))
	assert.Equal(t, "holders.secondHolder", joinPath("holders.secondHolder", "Holder"))
}
