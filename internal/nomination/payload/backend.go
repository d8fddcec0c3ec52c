package payload

import (
	"cmp"
	"slices"
	"strings"

	"dematkyc/internal/nomination/models"
)

// FromBackend rebuilds an editable submission from the profile and the
// existing backend records. POA records are regrouped into grants by poaId
// in first-seen order. Opt-in answers and holder flags follow from which
// records exist; minor toggles are left to rules.Derive.
func FromBackend(profile Profile, nominees []NomineeRecord, poas []POARecord, holders []HolderRecord) models.Submission {
	s := models.Submission{
		Holders: models.Holders{First: firstHolder(profile)},
	}

	nominees = slices.Clone(nominees)
	slices.SortStableFunc(nominees, func(a, b NomineeRecord) int { return cmp.Compare(a.NomSerialNo, b.NomSerialNo) })
	for _, r := range nominees {
		s.Nominees = append(s.Nominees, nomineeFrom(r))
	}

	index := map[string]int{}
	for _, r := range poas {
		i, ok := index[r.POAID]
		if !ok {
			i = len(s.POAs)
			index[r.POAID] = i
			s.POAs = append(s.POAs, models.POAGrant{
				ID:          r.POAID,
				SetupDate:   r.POASetupDate,
				FromDate:    r.POAFromDate,
				ToDate:      r.POAToDate,
				PurposeCode: r.POAPurposeCode,
				Remarks:     r.POARemarks,
				Flags:       []models.POAFlag{},
			})
		}
		if r.POANatureType != "" {
			s.POAs[i].Flags = append(s.POAs[i].Flags, models.POAFlag(r.POANatureType))
		}
	}

	for _, r := range holders {
		h := holderFrom(r)
		switch r.HoldSerialNo {
		case 2:
			s.Holders.Second = &h
			s.AddSecondHolder = true
		case 3:
			s.Holders.Third = &h
			s.AddThirdHolder = true
		}
	}

	s.WishToNominate = answer(len(s.Nominees) > 0)
	s.WishToPOA = answer(len(s.POAs) > 0)
	return s
}

func answer(present bool) models.YesNo {
	if present {
		return models.Yes
	}
	return models.No
}

func firstHolder(p Profile) models.FirstHolder {
	return models.FirstHolder{
		Holder: models.Holder{
			Name:                fullName(p.FirstName, p.MiddleName, p.LastName),
			FatherOrHusbandName: p.FatherOrHusbandName,
			PAN:                 strings.ToUpper(p.PAN),
			ISDCode:             p.ISDCode,
			Mobile:              p.Mobile,
			Email:               p.Email,
			DOB:                 p.DOB,
			Aadhar:              p.Aadhar,
			Gender:              models.Gender(p.Gender),
			Nationality:         p.Nationality,
		},
		PermanentAddress:      address(p.PermanentAddress),
		CorrespondenceAddress: address(p.CorrespondenceAddress),
		OccupationType:        p.Occupation,
		AnnualIncome:          p.AnnualIncome,
	}
}

func nomineeFrom(r NomineeRecord) models.Nominee {
	n := models.Nominee{
		Name:        r.NomName,
		DOB:         r.NomDOB,
		ProofType:   models.ProofType(r.NomProofType),
		ProofNumber: r.NomProofNumber,
		ISDCode:     r.NomISDCode,
		Mobile:      r.NomMobile,
		Email:       r.NomEmail,
		Address: models.Address{
			Line:    r.NomAddress,
			Country: r.NomCountry,
			State:   r.NomState,
			PinCode: r.NomPinCode,
		},
		FatherOrHusbandName: r.NomFatherOrHusbandName,
		Gender:              models.Gender(r.NomGender),
		PAN:                 r.NomPAN,
		Relation:            r.NomRelation,
		PercentageShares:    r.NomShare,
		IsMinor:             r.NomIsMinor == "Y",
	}
	if n.IsMinor || r.GuardName != "" {
		n.Guardian = &models.Guardian{
			Name:    r.GuardName,
			DOB:     r.GuardDOB,
			ISDCode: r.GuardISDCode,
			Mobile:  r.GuardMobile,
			Email:   r.GuardEmail,
			Address: models.Address{
				Line:    r.GuardAddress,
				Country: r.GuardCountry,
				State:   r.GuardState,
				PinCode: r.GuardPinCode,
			},
			FatherOrHusbandName: r.GuardFatherOrHusbandName,
			Gender:              models.Gender(r.GuardGender),
			PAN:                 r.GuardPAN,
			Aadhar:              r.GuardAadhar,
			Relation:            r.GuardRelation,
		}
	}
	return n
}

func holderFrom(r HolderRecord) models.Holder {
	return models.Holder{
		Name:                r.HoldName,
		FatherOrHusbandName: r.HoldFatherOrHusbandName,
		PAN:                 r.HoldPAN,
		ISDCode:             r.HoldISDCode,
		Mobile:              r.HoldMobile,
		Email:               r.HoldEmail,
		DOB:                 r.HoldDOB,
		Aadhar:              r.HoldAadhar,
		Gender:              models.Gender(r.HoldGender),
		Nationality:         r.HoldNationality,
	}
}

func address(a ProfileAddress) models.Address {
	return models.Address{Line: a.Line, Country: a.Country, State: a.State, PinCode: a.PinCode}
}

func fullName(parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " ")
}
