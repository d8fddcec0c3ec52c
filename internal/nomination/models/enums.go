package models

// YesNo is the answer to an opt-in question on the form.
type YesNo string

const (
	Yes YesNo = "yes"
	No  YesNo = "no"
)

// ProofType identifies the document a nominee uses as identity proof.
type ProofType string

const (
	ProofPAN            ProofType = "pan"
	ProofUID            ProofType = "uid"
	ProofPassport       ProofType = "passport"
	ProofDrivingLicense ProofType = "driving_license"
	ProofVoterID        ProofType = "voter_id"
)

// Gender values as the depository expects them. "Fmale" is the backend's
// spelling and must be preserved.
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Fmale"
	GenderOther  Gender = "Other"
)

// POAFlag is a nature-of-authorisation type on a POA/DDPI grant.
type POAFlag string

const (
	POAGeneralPurpose POAFlag = "general_purpose"
	POABankSpecific   POAFlag = "bank_specific"
	POASettlement     POAFlag = "settlement"
	POAMarginPledge   POAFlag = "margin_pledge"
	POAMutualFund     POAFlag = "mutual_fund"
	POATenderOffer    POAFlag = "tender_offer"
)

// POAFlags lists every nature type in display order.
var POAFlags = []POAFlag{
	POAGeneralPurpose,
	POABankSpecific,
	POASettlement,
	POAMarginPledge,
	POAMutualFund,
	POATenderOffer,
}

// IsValid checks the flag against the fixed set.
func (f POAFlag) IsValid() bool {
	for _, known := range POAFlags {
		if f == known {
			return true
		}
	}
	return false
}

// NomineeRelations is the fixed list a nominee's relation to the primary
// holder is chosen from.
var NomineeRelations = []string{
	"Spouse",
	"Son",
	"Daughter",
	"Father",
	"Mother",
	"Brother",
	"Sister",
	"Grandson",
	"Granddaughter",
	"Grandfather",
	"Grandmother",
	"Others",
}

// GuardianRelations is the fixed list a guardian's relation to the minor
// nominee is chosen from.
var GuardianRelations = []string{
	"Father",
	"Mother",
	"Grandfather",
	"Grandmother",
	"Brother",
	"Sister",
	"Uncle",
	"Aunt",
	"Court Appointed",
	"Others",
}

// Section limits.
const (
	MaxNominees = 3
	MaxPOAs     = 2
	MaxHolders  = 3

	// MinPOAFlags is the smallest number of nature types a POA may carry.
	MinPOAFlags = 2

	// DefaultISDCode applies when a contact carries no ISD code.
	DefaultISDCode = "91"

	// DateLayout is the wire layout of every date on the form.
	DateLayout = "2006-01-02"
)
