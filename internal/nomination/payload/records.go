// Package payload converts a validated submission into the brokerage
// backend's record arrays and back.
//
// The backend names every field with a section prefix: nom* for nominees,
// guard* for guardians, poa* for POA grants and hold* for holders. Records
// carry empty strings for absent optional values; the backend rejects nulls.
package payload

// NomineeRecord is one nominee row. Guardian columns are filled only for a
// minor nominee.
type NomineeRecord struct {
	NomSerialNo            int    `json:"nomSerialNo"`
	NomName                string `json:"nomName"`
	NomDOB                 string `json:"nomDob"`
	NomProofType           string `json:"nomProofType"`
	NomProofNumber         string `json:"nomProofNumber"`
	NomISDCode             string `json:"nomIsdCode"`
	NomMobile              string `json:"nomMobile"`
	NomEmail               string `json:"nomEmail"`
	NomAddress             string `json:"nomAddress"`
	NomCountry             string `json:"nomCountry"`
	NomState               string `json:"nomState"`
	NomPinCode             string `json:"nomPinCode"`
	NomFatherOrHusbandName string `json:"nomFatherOrHusbandName"`
	NomGender              string `json:"nomGender"`
	NomPAN                 string `json:"nomPan"`
	NomRelation            string `json:"nomRelation"`
	NomShare               int    `json:"nomPercentageShare"`
	NomIsMinor             string `json:"nomIsMinor"`
	NomMinorIndicator      string `json:"nomMinorIndicator"`

	GuardName                string `json:"guardName"`
	GuardDOB                 string `json:"guardDob"`
	GuardISDCode             string `json:"guardIsdCode"`
	GuardMobile              string `json:"guardMobile"`
	GuardEmail               string `json:"guardEmail"`
	GuardAddress             string `json:"guardAddress"`
	GuardCountry             string `json:"guardCountry"`
	GuardState               string `json:"guardState"`
	GuardPinCode             string `json:"guardPinCode"`
	GuardFatherOrHusbandName string `json:"guardFatherOrHusbandName"`
	GuardGender              string `json:"guardGender"`
	GuardPAN                 string `json:"guardPan"`
	GuardAadhar              string `json:"guardAadhar"`
	GuardRelation            string `json:"guardRelation"`
}

// POARecord is one nature type of one POA grant. Records of the same grant
// share poaId and the date and purpose columns.
type POARecord struct {
	POAID          string `json:"poaId"`
	POASetupDate   string `json:"poaSetupDate"`
	POAFromDate    string `json:"poaFromDate"`
	POAToDate      string `json:"poaToDate"`
	POAPurposeCode string `json:"poaPurposeCode"`
	POARemarks     string `json:"poaRemarks"`
	POANatureType  string `json:"poaNatureType"`
}

// HolderRecord is one account holder. Address, occupation and income
// columns are filled for the first holder only.
type HolderRecord struct {
	HoldSerialNo            int    `json:"holdSerialNo"`
	HoldName                string `json:"holdName"`
	HoldFatherOrHusbandName string `json:"holdFatherOrHusbandName"`
	HoldPAN                 string `json:"holdPan"`
	HoldISDCode             string `json:"holdIsdCode"`
	HoldMobile              string `json:"holdMobile"`
	HoldEmail               string `json:"holdEmail"`
	HoldDOB                 string `json:"holdDob"`
	HoldAadhar              string `json:"holdAadhar"`
	HoldGender              string `json:"holdGender"`
	HoldNationality         string `json:"holdNationality"`
	HoldPermAddress         string `json:"holdPermAddress"`
	HoldPermCountry         string `json:"holdPermCountry"`
	HoldPermState           string `json:"holdPermState"`
	HoldPermPinCode         string `json:"holdPermPinCode"`
	HoldCorrAddress         string `json:"holdCorrAddress"`
	HoldCorrCountry         string `json:"holdCorrCountry"`
	HoldCorrState           string `json:"holdCorrState"`
	HoldCorrPinCode         string `json:"holdCorrPinCode"`
	HoldOccupation          string `json:"holdOccupation"`
	HoldAnnualIncome        string `json:"holdAnnualIncome"`
}

// Profile is the read-only customer record the first holder is built from.
type Profile struct {
	AccountID             string         `json:"accountId"`
	FirstName             string         `json:"firstName"`
	MiddleName            string         `json:"middleName"`
	LastName              string         `json:"lastName"`
	FatherOrHusbandName   string         `json:"fatherOrHusbandName"`
	PAN                   string         `json:"pan"`
	Email                 string         `json:"email"`
	ISDCode               string         `json:"isdCode"`
	Mobile                string         `json:"mobile"`
	DOB                   string         `json:"dob"`
	Aadhar                string         `json:"aadhar"`
	Gender                string         `json:"gender"`
	Nationality           string         `json:"nationality"`
	PermanentAddress      ProfileAddress `json:"permanentAddress"`
	CorrespondenceAddress ProfileAddress `json:"correspondenceAddress"`
	Occupation            string         `json:"occupation"`
	AnnualIncome          string         `json:"annualIncome"`
}

// ProfileAddress is an address as the profile service returns it.
type ProfileAddress struct {
	Line    string `json:"line"`
	Country string `json:"country"`
	State   string `json:"state"`
	PinCode string `json:"pinCode"`
}
