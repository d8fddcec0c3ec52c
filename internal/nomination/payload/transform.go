package payload

import (
	"time"

	"dematkyc/internal/nomination/models"
	"dematkyc/internal/nomination/rules"
)

// occupationCodes maps form occupation values onto the backend vocabulary.
// Values not listed are sent unchanged.
var occupationCodes = map[string]string{
	"BusinessOwner": "Business",
	"SelfEmployed":  "Others",
	"Other":         "Others",
}

// Occupation maps a form occupation value to the backend vocabulary.
func Occupation(v string) string {
	if code, ok := occupationCodes[v]; ok {
		return code
	}
	return v
}

// ToNomineeRecords builds one record per nominee, or none when the
// submission opts out of nomination. Minor status and the
// minor-indicator code are evaluated on now.
func ToNomineeRecords(s models.Submission, now time.Time) []NomineeRecord {
	if s.WishToNominate != models.Yes {
		return []NomineeRecord{}
	}
	minors := rules.MinorPattern(s.Nominees, now)
	codes := rules.MinorIndicators(minors)

	records := make([]NomineeRecord, 0, len(s.Nominees))
	for i, n := range s.Nominees {
		rec := NomineeRecord{
			NomSerialNo:            i + 1,
			NomName:                n.Name,
			NomDOB:                 n.DOB,
			NomProofType:           string(n.ProofType),
			NomProofNumber:         n.ProofNumber,
			NomISDCode:             isdOrDefault(n.ISDCode),
			NomMobile:              n.Mobile,
			NomEmail:               n.Email,
			NomAddress:             n.Address.Line,
			NomCountry:             n.Address.Country,
			NomState:               n.Address.State,
			NomPinCode:             n.Address.PinCode,
			NomFatherOrHusbandName: n.FatherOrHusbandName,
			NomGender:              string(n.Gender),
			NomPAN:                 n.PAN,
			NomRelation:            n.Relation,
			NomShare:               n.PercentageShares,
			NomIsMinor:             flag(minors[i]),
			NomMinorIndicator:      codes[i],
		}
		if minors[i] && n.Guardian != nil {
			g := n.Guardian
			rec.GuardName = g.Name
			rec.GuardDOB = g.DOB
			rec.GuardISDCode = isdOrDefault(g.ISDCode)
			rec.GuardMobile = g.Mobile
			rec.GuardEmail = g.Email
			rec.GuardAddress = g.Address.Line
			rec.GuardCountry = g.Address.Country
			rec.GuardState = g.Address.State
			rec.GuardPinCode = g.Address.PinCode
			rec.GuardFatherOrHusbandName = g.FatherOrHusbandName
			rec.GuardGender = string(g.Gender)
			rec.GuardPAN = g.PAN
			rec.GuardAadhar = g.Aadhar
			rec.GuardRelation = g.Relation
		}
		records = append(records, rec)
	}
	return records
}

// ToPOARecords expands every POA grant into one record per selected nature
// type. Nothing is sent unless the submission opts into POA.
func ToPOARecords(s models.Submission) []POARecord {
	records := []POARecord{}
	if s.WishToPOA != models.Yes {
		return records
	}
	for _, p := range s.POAs {
		for _, f := range p.Flags {
			records = append(records, POARecord{
				POAID:          p.ID,
				POASetupDate:   p.SetupDate,
				POAFromDate:    p.FromDate,
				POAToDate:      p.ToDate,
				POAPurposeCode: p.PurposeCode,
				POARemarks:     p.Remarks,
				POANatureType:  string(f),
			})
		}
	}
	return records
}

// ToHolderRecords numbers the first holder 1 and adds the second and third
// holders when their flags are set.
func ToHolderRecords(s models.Submission) []HolderRecord {
	first := s.Holders.First
	rec := holderRecord(1, first.Holder)
	rec.HoldPermAddress = first.PermanentAddress.Line
	rec.HoldPermCountry = first.PermanentAddress.Country
	rec.HoldPermState = first.PermanentAddress.State
	rec.HoldPermPinCode = first.PermanentAddress.PinCode
	rec.HoldCorrAddress = first.CorrespondenceAddress.Line
	rec.HoldCorrCountry = first.CorrespondenceAddress.Country
	rec.HoldCorrState = first.CorrespondenceAddress.State
	rec.HoldCorrPinCode = first.CorrespondenceAddress.PinCode
	rec.HoldOccupation = Occupation(first.OccupationType)
	rec.HoldAnnualIncome = first.AnnualIncome

	records := []HolderRecord{rec}
	if s.AddSecondHolder && s.Holders.Second != nil {
		records = append(records, holderRecord(len(records)+1, *s.Holders.Second))
		if s.AddThirdHolder && s.Holders.Third != nil {
			records = append(records, holderRecord(len(records)+1, *s.Holders.Third))
		}
	}
	return records
}

func holderRecord(serial int, h models.Holder) HolderRecord {
	return HolderRecord{
		HoldSerialNo:            serial,
		HoldName:                h.Name,
		HoldFatherOrHusbandName: h.FatherOrHusbandName,
		HoldPAN:                 h.PAN,
		HoldISDCode:             isdOrDefault(h.ISDCode),
		HoldMobile:              h.Mobile,
		HoldEmail:               h.Email,
		HoldDOB:                 h.DOB,
		HoldAadhar:              h.Aadhar,
		HoldGender:              string(h.Gender),
		HoldNationality:         h.Nationality,
	}
}

func isdOrDefault(code string) string {
	if code == "" {
		return models.DefaultISDCode
	}
	return code
}

func flag(b bool) string {
	if b {
		return "Y"
	}
	return "N"
}
