package payload

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dematkyc/internal/nomination/models"
	"dematkyc/internal/nomination/rules"
)

func TestFromBackend(t *testing.T) {
	profile := Profile{
		FirstName:  "Arun",
		MiddleName: " ",
		LastName:   "Sen",
		PAN:        "pqrst6789k",
		Occupation: "BusinessOwner",
		PermanentAddress: ProfileAddress{
			Line: "4 Park Street", Country: "IN", State: "WB", PinCode: "700016",
		},
	}
	nominees := []NomineeRecord{
		{NomSerialNo: 2, NomName: "Tara Sen", NomDOB: "1988-07-01", NomShare: 40, NomIsMinor: "N"},
		{NomSerialNo: 1, NomName: "Mira Sen", NomDOB: "2016-10-16", NomShare: 60, NomIsMinor: "Y", GuardName: "Arun Sen", GuardAadhar: "123456789012"},
	}
	poas := []POARecord{
		{POAID: "a", POASetupDate: "2026-01-01", POAFromDate: "2026-01-01", POAPurposeCode: "DDPI", POANatureType: "settlement"},
		{POAID: "b", POASetupDate: "2026-02-01", POAFromDate: "2026-02-01", POAPurposeCode: "DDPI", POANatureType: "mutual_fund"},
		{POAID: "a", POASetupDate: "2026-01-01", POAFromDate: "2026-01-01", POAPurposeCode: "DDPI", POANatureType: "margin_pledge"},
	}
	holders := []HolderRecord{
		{HoldSerialNo: 1, HoldName: "ignored, profile wins"},
		{HoldSerialNo: 2, HoldName: "Rita Sen", HoldPAN: "LMNOP4321Q"},
	}

	sub := rules.Derive(FromBackend(profile, nominees, poas, holders), now)

	t.Run("first holder comes from the profile", func(t *testing.T) {
		assert.Equal(t, "Arun Sen", sub.Holders.First.Name)
		assert.Equal(t, "PQRST6789K", sub.Holders.First.PAN)
		assert.Equal(t, "BusinessOwner", sub.Holders.First.OccupationType)
		assert.Equal(t, "700016", sub.Holders.First.PermanentAddress.PinCode)
	})

	t.Run("nominees in serial order with guardian for the minor", func(t *testing.T) {
		require.Len(t, sub.Nominees, 2)
		assert.Equal(t, "Mira Sen", sub.Nominees[0].Name)
		assert.True(t, sub.Nominees[0].IsMinor)
		require.NotNil(t, sub.Nominees[0].Guardian)
		assert.Equal(t, "123456789012", sub.Nominees[0].Guardian.Aadhar)
		assert.Nil(t, sub.Nominees[1].Guardian)
		assert.Equal(t, models.Yes, sub.WishToNominate)
	})

	t.Run("poa records regrouped by id", func(t *testing.T) {
		require.Len(t, sub.POAs, 2)
		assert.Equal(t, "a", sub.POAs[0].ID)
		assert.Equal(t, []models.POAFlag{models.POASettlement, models.POAMarginPledge}, sub.POAs[0].Flags)
		assert.Equal(t, "b", sub.POAs[1].ID)
		assert.Equal(t, []models.POAFlag{models.POAMutualFund}, sub.POAs[1].Flags)
		assert.Equal(t, models.Yes, sub.WishToPOA)
	})

	t.Run("holder flags follow the records", func(t *testing.T) {
		assert.True(t, sub.AddSecondHolder)
		require.NotNil(t, sub.Holders.Second)
		assert.Equal(t, "Rita Sen", sub.Holders.Second.Name)
		assert.False(t, sub.AddThirdHolder)
	})
}

func TestRoundTripPOA(t *testing.T) {
	sub := scenario()
	back := FromBackend(Profile{}, nil, ToPOARecords(sub), nil)
	require.Len(t, back.POAs, 1)
	assert.Equal(t, sub.POAs[0].Flags, back.POAs[0].Flags)
	assert.Equal(t, sub.POAs[0].ID, back.POAs[0].ID)
}

func TestFromBackendEmpty(t *testing.T) {
	sub := rules.Derive(FromBackend(Profile{FirstName: "Solo"}, nil, nil, nil), now)
	assert.Equal(t, models.No, sub.WishToNominate)
	assert.Equal(t, models.No, sub.WishToPOA)
	assert.Empty(t, sub.Nominees)
	assert.Equal(t, "Solo", sub.Holders.First.Name)
}
