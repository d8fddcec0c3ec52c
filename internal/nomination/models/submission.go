package models

// POAGrant is one power-of-attorney entry on the form. A single entry fans
// out to one backend record per selected flag.
type POAGrant struct {
	ID          string    `json:"id" validate:"required"`
	SetupDate   string    `json:"setupDate" validate:"required,isodate"`
	FromDate    string    `json:"fromDate" validate:"required,isodate"`
	ToDate      string    `json:"toDate,omitempty" validate:"omitempty,isodate"`
	PurposeCode string    `json:"purposeCode" validate:"required,max=10"`
	Remarks     string    `json:"remarks,omitempty" validate:"max=250"`
	Flags       []POAFlag `json:"flags" validate:"dive,oneof=general_purpose bank_specific settlement margin_pledge mutual_fund tender_offer"`
}

// Submission is the whole KYC nomination form.
type Submission struct {
	WishToNominate  YesNo      `json:"wishToNominate"`
	WishToPOA       YesNo      `json:"wishToPOA"`
	Nominees        []Nominee  `json:"nominees"`
	POAs            []POAGrant `json:"poas"`
	Holders         Holders    `json:"holders"`
	AddSecondHolder bool       `json:"addSecondHolder"`
	AddThirdHolder  bool       `json:"addThirdHolder"`
}

// Clone returns a deep copy so reducers can treat submissions as values.
func (s Submission) Clone() Submission {
	out := s
	if s.Nominees != nil {
		out.Nominees = make([]Nominee, len(s.Nominees))
		for i, n := range s.Nominees {
			out.Nominees[i] = n
			if n.Guardian != nil {
				g := *n.Guardian
				out.Nominees[i].Guardian = &g
			}
		}
	}
	if s.POAs != nil {
		out.POAs = make([]POAGrant, len(s.POAs))
		for i, p := range s.POAs {
			out.POAs[i] = p
			out.POAs[i].Flags = append([]POAFlag(nil), p.Flags...)
		}
	}
	if s.Holders.Second != nil {
		h := *s.Holders.Second
		out.Holders.Second = &h
	}
	if s.Holders.Third != nil {
		h := *s.Holders.Third
		out.Holders.Third = &h
	}
	return out
}
