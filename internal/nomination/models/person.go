package models

// Address is a postal address as captured on the form.
type Address struct {
	Line    string `json:"line" validate:"required,max=250"`
	Country string `json:"country" validate:"required"`
	State   string `json:"state" validate:"required"`
	PinCode string `json:"pinCode" validate:"required,numeric,len=6"`
}

// Guardian is the legal guardian of a minor nominee.
type Guardian struct {
	Name                string  `json:"name" validate:"required,max=100"`
	DOB                 string  `json:"dob" validate:"required,isodate,pastdate"`
	ISDCode             string  `json:"isdCode,omitempty" validate:"omitempty,numeric,max=4"`
	Mobile              string  `json:"mobile" validate:"required,mobile"`
	Email               string  `json:"email,omitempty" validate:"omitempty,email"`
	Address             Address `json:"address"`
	FatherOrHusbandName string  `json:"fatherOrHusbandName" validate:"required,max=100"`
	Gender              Gender  `json:"gender" validate:"required,oneof=Male Fmale Other"`
	PAN                 string  `json:"pan" validate:"required,pan"`
	Aadhar              string  `json:"aadhar" validate:"required,aadhar"`
	Relation            string  `json:"relation" validate:"required,guardianrelation"`
}

// Nominee is one of up to three people designated to inherit holdings.
// IsMinor is the explicit toggle; the effective minor status also depends on
// DOB (see rules.EffectiveMinor).
type Nominee struct {
	Name                string    `json:"name" validate:"required,max=100"`
	DOB                 string    `json:"dob" validate:"required,isodate,pastdate"`
	ProofType           ProofType `json:"proofType" validate:"required,oneof=pan uid passport driving_license voter_id"`
	ProofNumber         string    `json:"proofNumber" validate:"required,max=30"`
	ISDCode             string    `json:"isdCode,omitempty" validate:"omitempty,numeric,max=4"`
	Mobile              string    `json:"mobile" validate:"required,mobile"`
	Email               string    `json:"email" validate:"required,email"`
	Address             Address   `json:"address"`
	FatherOrHusbandName string    `json:"fatherOrHusbandName" validate:"required,max=100"`
	Gender              Gender    `json:"gender" validate:"required,oneof=Male Fmale Other"`
	PAN                 string    `json:"pan" validate:"required,pan"`
	Relation            string    `json:"relation" validate:"required,relation"`
	PercentageShares    int       `json:"percentageShares" validate:"min=1,max=100"`
	IsMinor             bool      `json:"isMinor"`
	Guardian            *Guardian `json:"guardian,omitempty" validate:"-"`
}

// Holder is a second or third account holder.
type Holder struct {
	Name                string `json:"name" validate:"required,max=100"`
	FatherOrHusbandName string `json:"fatherOrHusbandName" validate:"required,max=100"`
	PAN                 string `json:"pan" validate:"required,pan"`
	ISDCode             string `json:"isdCode,omitempty" validate:"omitempty,numeric,max=4"`
	Mobile              string `json:"mobile" validate:"required,mobile"`
	Email               string `json:"email" validate:"required,email"`
	DOB                 string `json:"dob" validate:"required,isodate,pastdate"`
	Aadhar              string `json:"aadhar" validate:"required,aadhar"`
	Gender              Gender `json:"gender" validate:"required,oneof=Male Fmale Other"`
	Nationality         string `json:"nationality" validate:"required"`
}

// FirstHolder is the primary holder. It is sourced from the profile record
// and never validated.
type FirstHolder struct {
	Holder
	PermanentAddress      Address `json:"permanentAddress"`
	CorrespondenceAddress Address `json:"correspondenceAddress"`
	OccupationType        string  `json:"occupationType"`
	AnnualIncome          string  `json:"annualIncome"`
}

// Holders groups the account holders. SecondHolder and ThirdHolder are nil
// unless the matching Add flag on the submission is set.
type Holders struct {
	First  FirstHolder `json:"firstHolder"`
	Second *Holder     `json:"secondHolder,omitempty"`
	Third  *Holder     `json:"thirdHolder,omitempty"`
}
