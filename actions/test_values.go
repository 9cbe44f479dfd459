// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"strings"

	"github.com/toanbt173404/two-sided-services-marketplace/storage"
)

const (
	RoyaltyFeeBasisPoints        uint16 = 500
	UpdatedRoyaltyFeeBasisPoints uint16 = 750

	ServicePriceOne uint64 = 1_000
	ServicePriceTwo uint64 = 2_500

	AskPriceOne uint64 = 800
	AskPriceTwo uint64 = 1_200

	AgreementTitleOne   = "Support"
	AgreementDetailsOne = "Around the clock coverage with a four hour response window"
	AgreementTitleTwo   = "Maintenance"
	AgreementDetailsTwo = "Quarterly dependency and security updates"
)

var (
	TooLargeAgreementTitle   = strings.Repeat("t", storage.MaxAgreementTitleSize+1)
	TooLargeAgreementDetails = strings.Repeat("d", storage.MaxAgreementDetailsSize+1)
)

func baseAgreements() []storage.Agreement {
	return []storage.Agreement{
		{Title: AgreementTitleOne, Details: AgreementDetailsOne},
		{Title: AgreementTitleTwo, Details: AgreementDetailsTwo},
	}
}

func tooManyAgreements() []storage.Agreement {
	agreements := make([]storage.Agreement, 0, storage.MaxServiceAgreements+1)
	for i := 0; i < storage.MaxServiceAgreements+1; i++ {
		agreements = append(agreements, storage.Agreement{Title: AgreementTitleOne, Details: AgreementDetailsOne})
	}
	return agreements
}
